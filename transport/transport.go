// Package transport resolves the sources and sinks the command line works
// with: files, standard streams, TCP connections and websockets.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"strings"
)

// Stdio is the target naming standard input or standard output.
const Stdio = "-"

// ErrUnsupportedScheme is returned for network addresses with an unknown
// scheme.
var ErrUnsupportedScheme = errors.New("transport: unsupported scheme")

// Dial connects to addr. It accepts tcp://host:port, ws://, wss:// and a bare
// host:port, which is dialed over TCP.
func Dial(ctx context.Context, addr string) (net.Conn, error) {
	u, err := url.Parse(addr)
	if err != nil || u.Host == "" {
		// Try as plain host:port (assume tcp)
		return dialTCP(ctx, addr)
	}

	switch strings.ToLower(u.Scheme) {
	case "", "tcp":
		return dialTCP(ctx, u.Host)
	case "ws", "wss":
		return dialWebSocket(ctx, u.String())
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, u.Scheme)
	}
}

func dialTCP(ctx context.Context, addr string) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, "tcp", addr)
}

// IsNetwork reports whether target names a network endpoint rather than a
// file.
func IsNetwork(target string) bool {
	for _, scheme := range []string{"tcp://", "ws://", "wss://"} {
		if strings.HasPrefix(strings.ToLower(target), scheme) {
			return true
		}
	}
	return false
}

// OpenSource opens target for reading: "-" is standard input, a network
// address is dialed, anything else is a file path.
func OpenSource(ctx context.Context, target string) (io.ReadCloser, error) {
	switch {
	case target == "" || target == Stdio:
		return io.NopCloser(os.Stdin), nil
	case IsNetwork(target):
		conn, err := Dial(ctx, target)
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", target, err)
		}
		return conn, nil
	}
	f, err := os.Open(target)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	return f, nil
}

// OpenSink opens target for writing: "-" is standard output, a network
// address is dialed, anything else is a file that is created or truncated.
func OpenSink(ctx context.Context, target string) (io.WriteCloser, error) {
	switch {
	case target == "" || target == Stdio:
		return nopWriteCloser{os.Stdout}, nil
	case IsNetwork(target):
		conn, err := Dial(ctx, target)
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", target, err)
		}
		return conn, nil
	}
	f, err := os.Create(target)
	if err != nil {
		return nil, fmt.Errorf("open sink: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
