package stream

import "io"

// copyChunk is the scratch size used by Copy.
const copyChunk = 4096

// Copy moves everything from src into dst and flushes dst once src is
// exhausted. It returns the number of bytes copied.
func Copy(dst Writer, src io.Reader) (int64, error) {
	n, err := io.CopyBuffer(struct{ io.Writer }{dst}, src, make([]byte, copyChunk))
	if err != nil {
		return n, err
	}
	return n, dst.Flush()
}
