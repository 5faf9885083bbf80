package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// BufferFlags tune the buffered reader and writer placed around the input and
// output.

func BufferFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "preset",
			Usage: "Buffer sizing profile (default|lite|network|bulk), applied before the flags below",
		},
		cli.IntFlag{
			Name:  "reader.capacity",
			Usage: "Initial read buffer size in bytes (0 allocates on first use)",
			Value: 4096,
		},
		cli.BoolFlag{
			Name:  "reader.fixed",
			Usage: "Never grow the read buffer; oversized requests fail instead",
		},
		cli.IntFlag{
			Name:  "writer.capacity",
			Usage: "Write buffer size in bytes",
			Value: 4096,
		},
	}
}

// FramingFlags describe the length-prefixed frames produced by frame/split and
// consumed by unframe.

func FramingFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "frame.header",
			Usage: "Width of the big-endian length header in bits (8|16|32|64)",
			Value: 32,
		},
		cli.BoolFlag{
			Name:  "frame.include-header",
			Usage: "Length header counts its own bytes as well as the payload",
		},
		cli.IntFlag{
			Name:  "frame.chunk",
			Usage: "Payload size used by the frame command",
			Value: 1024,
		},
		cli.StringFlag{
			Name:  "frame.delim",
			Usage: "Hex encoded delimiter byte used by the split command",
			Value: "0x0a",
		},
	}
}
