package stream

import (
	"bytes"
	"errors"
	"io"
)

func notByte(delim byte) func(byte) bool {
	return func(b byte) bool { return b != delim }
}

func anyByte(byte) bool { return true }

// ReadUntil returns the bytes before the first delim, leaving delim unread.
// It fails with ErrInsufficientData, consuming nothing, when the input ends
// before delim shows up.
func ReadUntil(r Reader, delim byte) ([]byte, error) {
	return r.ReadWhile(Strict, notByte(delim))
}

// ConsumeUntil skips everything before the first delim, leaving delim unread.
func ConsumeUntil(r Reader, delim byte) error {
	return r.ConsumeWhile(Strict, notByte(delim))
}

// ReadUntilEnd returns every remaining byte of the input.
func ReadUntilEnd(r Reader) ([]byte, error) {
	return r.ReadWhile(UntilEnd, anyByte)
}

// ReadBytes is Next followed by a copy, for callers that keep the bytes past
// the next call on r.
func ReadBytes(r Reader, n int) ([]byte, error) {
	window, err := r.Next(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(window))
	copy(out, window)
	return out, nil
}

// NextIs reports whether the input continues with seq, without consuming it.
func NextIs(r Reader, seq []byte) (bool, error) {
	window, err := r.Peek(len(seq))
	if err != nil {
		return false, err
	}
	return bytes.Equal(window, seq), nil
}

// ConsumeSequence consumes seq if the input continues with it and reports
// whether it did. Input shorter than seq is ErrInsufficientData.
func ConsumeSequence(r Reader, seq []byte) (bool, error) {
	ok, err := r.Cache(len(seq))
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrInsufficientData
	}
	match, err := NextIs(r, seq)
	if err != nil || !match {
		return false, err
	}
	return true, r.Discard(len(seq))
}

func isLineByte(b byte) bool { return b != '\r' && b != '\n' }

// ReadLine returns the next line without its terminator. Lines end with
// "\n" or "\r\n"; a lone "\r" is accepted too, including one that ends the
// input, so this is looser than a strict CR?LF terminator.
//
// It returns io.EOF when the input is already exhausted, and
// ErrInsufficientData, consuming nothing, when the last line has no
// terminator.
func ReadLine(r Reader) (string, error) {
	ok, err := r.Cache(1)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", io.EOF
	}
	window, err := r.ReadWhile(Strict, isLineByte)
	if err != nil {
		return "", err
	}
	// copy out before the terminator lookups can refill the buffer
	line := string(window)

	cr, err := r.ConsumeByte('\r')
	if err != nil {
		return line, err
	}
	if _, err := r.ConsumeByte('\n'); err != nil {
		if cr && errors.Is(err, ErrInsufficientData) {
			return line, nil
		}
		return line, err
	}
	return line, nil
}

// WriteString writes s to w.
func WriteString(w Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
