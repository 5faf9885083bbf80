package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-bytestream/flags"
	"github.com/rony4d/go-bytestream/stream"
	"github.com/rony4d/go-bytestream/substream"
	"github.com/rony4d/go-bytestream/transport"
)

// dumpWidth is the number of bytes per dump row.
const dumpWidth = 16

// session is what a command body works with: the resolved config, a logger
// and the buffered ends of the input and output.
type session struct {
	cfg Config
	log *logrus.Logger
	in  *stream.BufferedReader
	out *stream.BufferedWriter
}

func commandFlags() []cli.Flag {
	var all []cli.Flag
	all = append(all, flags.CommonFlags()...)
	all = append(all, flags.BufferFlags()...)
	all = append(all, flags.FramingFlags()...)
	return all
}

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:   "lines",
			Usage:  "Print the input as numbered lines",
			Flags:  commandFlags(),
			Action: action("lines", runLines),
		},
		{
			Name:   "frame",
			Usage:  "Cut the input into --frame.chunk sized length-prefixed frames",
			Flags:  commandFlags(),
			Action: action("frame", runFrame),
		},
		{
			Name:   "split",
			Usage:  "Cut the input at --frame.delim and emit each piece as a frame",
			Flags:  commandFlags(),
			Action: action("split", runSplit),
		},
		{
			Name:   "unframe",
			Usage:  "Read length-prefixed frames and write their payloads back to back",
			Flags:  commandFlags(),
			Action: action("unframe", runUnframe),
		},
		{
			Name:   "dump",
			Usage:  "Print the input as offset-prefixed hex rows",
			Flags:  commandFlags(),
			Action: action("dump", runDump),
		},
	}
}

// action wraps a command body: it resolves the config, opens the endpoints,
// runs the body and flushes the output. The body reports how many records it
// produced.
func action(name string, body func(*session) (int, error)) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		cfg, err := MakeAllConfigs(ctx)
		if err != nil {
			return err
		}
		logOut := ctx.App.ErrWriter
		if logOut == nil {
			logOut = os.Stderr
		}
		log, err := newLogger(cfg.Logging, logOut)
		if err != nil {
			return err
		}

		sigctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		src, err := transport.OpenSource(sigctx, cfg.Input)
		if err != nil {
			return err
		}
		defer src.Close()
		dst, err := transport.OpenSink(sigctx, cfg.Output)
		if err != nil {
			return err
		}

		s := &session{
			cfg: cfg,
			log: log,
			in:  stream.NewBufferedReader(src, cfg.Reader.Capacity, !cfg.Reader.Fixed),
			out: stream.NewBufferedWriter(dst, cfg.Writer.Capacity),
		}
		log.WithFields(logrus.Fields{
			"command": name,
			"input":   cfg.Input,
			"output":  cfg.Output,
		}).Debug("Streams opened")

		records, err := body(s)
		if ferr := s.out.Flush(); err == nil {
			err = ferr
		}
		if cerr := dst.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			log.WithError(err).WithField("command", name).Error("Command failed")
			return fmt.Errorf("%s: %w", name, err)
		}
		log.WithFields(logrus.Fields{
			"command":  name,
			"records":  records,
			"capacity": s.in.Capacity(),
		}).Info("Command finished")
		return nil
	}
}

func runLines(s *session) (int, error) {
	n := 0
	for {
		line, err := stream.ReadLine(s.in)
		switch {
		case errors.Is(err, io.EOF):
			return n, nil
		case errors.Is(err, stream.ErrInsufficientData):
			// last line without a terminator
			rest, err := stream.ReadUntilEnd(s.in)
			if err != nil {
				return n, err
			}
			line = string(rest)
		case err != nil:
			return n, err
		}
		n++
		if _, err := fmt.Fprintf(s.out, "%6d\t%s\n", n, line); err != nil {
			return n, err
		}
		s.log.WithField("line", n).Trace("Line read")
	}
}

// nextChunk returns up to size bytes, fewer only at the end of the input.
func nextChunk(in *stream.BufferedReader, size int) ([]byte, error) {
	ok, err := in.Cache(size)
	if err != nil {
		return nil, err
	}
	if !ok {
		size = in.Buffered()
	}
	return in.Next(size)
}

func runFrame(s *session) (int, error) {
	n := 0
	for {
		payload, err := nextChunk(s.in, s.cfg.Framing.Chunk)
		if err != nil {
			return n, err
		}
		if len(payload) == 0 {
			return n, nil
		}
		if err := writeFrame(s.out, s.cfg.Framing, payload); err != nil {
			return n, err
		}
		n++
	}
}

func runSplit(s *session) (int, error) {
	delim, err := s.cfg.Framing.delimiter()
	if err != nil {
		return 0, err
	}
	n := 0
	for {
		ok, err := s.in.Cache(1)
		if err != nil || !ok {
			return n, err
		}
		piece, err := stream.ReadUntil(s.in, delim)
		if errors.Is(err, stream.ErrInsufficientData) {
			piece, err = stream.ReadUntilEnd(s.in)
		}
		if err != nil {
			return n, err
		}
		if err := writeFrame(s.out, s.cfg.Framing, piece); err != nil {
			return n, err
		}
		n++
		if _, err := s.in.ConsumeByte(delim); err != nil && !errors.Is(err, stream.ErrInsufficientData) {
			return n, err
		}
	}
}

func runUnframe(s *session) (int, error) {
	n := 0
	for {
		ok, err := s.in.Cache(1)
		if err != nil || !ok {
			return n, err
		}
		payload, err := readFrame(s.in, s.cfg.Framing)
		if err != nil {
			return n, fmt.Errorf("frame %d: %w", n, err)
		}
		if _, err := s.out.Write(payload); err != nil {
			return n, err
		}
		n++
	}
}

func runDump(s *session) (int, error) {
	offset := 0
	for rows := 0; ; rows++ {
		row, err := nextChunk(s.in, dumpWidth)
		if err != nil {
			return rows, err
		}
		if len(row) == 0 {
			return rows, nil
		}
		if _, err := fmt.Fprintf(s.out, "%08x  %s\n", offset, hexutil.Encode(row)); err != nil {
			return rows, err
		}
		offset += len(row)
	}
}

func writeFrame(w stream.Writer, f FramingConfig, payload []byte) error {
	task := func(sw substream.Writer) error {
		_, err := sw.Write(payload)
		return err
	}
	switch f.HeaderBits {
	case 8:
		return substream.WithWriterSizedBy[uint8](w, f.IncludeHeader, task)
	case 16:
		return substream.WithWriterSizedBy[uint16](w, f.IncludeHeader, task)
	case 32:
		return substream.WithWriterSizedBy[uint32](w, f.IncludeHeader, task)
	case 64:
		return substream.WithWriterSizedBy[uint64](w, f.IncludeHeader, task)
	}
	return fmt.Errorf("%w: %d", errHeaderBits, f.HeaderBits)
}

// readFrame returns the payload of the next frame. The slice is only valid
// until the next read from r.
func readFrame(r stream.Reader, f FramingConfig) ([]byte, error) {
	body := func(sr substream.Reader) ([]byte, error) {
		return stream.ReadUntilEnd(sr)
	}
	switch f.HeaderBits {
	case 8:
		return substream.WithReaderSizedBy[uint8](r, f.IncludeHeader, body)
	case 16:
		return substream.WithReaderSizedBy[uint16](r, f.IncludeHeader, body)
	case 32:
		return substream.WithReaderSizedBy[uint32](r, f.IncludeHeader, body)
	case 64:
		return substream.WithReaderSizedBy[uint64](r, f.IncludeHeader, body)
	}
	return nil, fmt.Errorf("%w: %d", errHeaderBits, f.HeaderBits)
}
