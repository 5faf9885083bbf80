package launcher

// Defaults bundles the baseline configuration values the launcher uses before
// config files and flags override them.

type Defaults struct {
	Endpoints EndpointDefaults
	Reader    ReaderDefaults
	Writer    WriterDefaults
	Framing   FramingDefaults
	Logging   LoggingDefaults
}

// EndpointDefaults name where bytes come from and go to.
type EndpointDefaults struct {
	Input  string //	Source of the command: a file path, "-" for stdin, or a tcp:// / ws:// / wss:// address that is dialed.
	Output string //	Sink of the command, same forms as Input. Files are created or truncated.
}

// ReaderDefaults configure the buffered reader around the input.
type ReaderDefaults struct {
	Capacity int  //	Initial read buffer size in bytes. Zero defers allocation to the first request, which then sizes the buffer.
	Fixed    bool //	When true the buffer never grows; requests larger than Capacity fail with "not enough space" instead of reallocating.
}

// WriterDefaults configure the buffered writer around the output.
type WriterDefaults struct {
	Capacity int //	Write buffer size in bytes. A full buffer is flushed at once; writes larger than the buffer go straight to the sink.
}

// FramingDefaults describe length-prefixed frames.
type FramingDefaults struct {
	HeaderBits    int    //	Width of the big-endian length header: 8, 16, 32 or 64 bits.
	IncludeHeader bool   //	Whether the header value counts its own width in addition to the payload length.
	Chunk         int    //	Payload size the frame command cuts its input into; the last frame may be shorter.
	Delimiter     string //	Hex encoded byte (e.g. 0x0a) at which the split command cuts its input. The delimiter itself is dropped.
}

// LoggingDefaults controls log verbosity/format.
type LoggingDefaults struct {
	Verbosity int    //	Log level numeric (0=fatal, 1=error, 2=warn, 3=info, 4=debug, 5=trace).
	Format    string //	Log output format (text vs json).
	Color     bool   //	Whether to use ANSI color codes in logs (helpful on terminals, best disabled when piping to files).
	SentryDSN string //	When set, error level entries are also reported to this Sentry project.
}

// DefaultConfig returns a fully populated Defaults instance.

func DefaultConfig() Defaults {
	return Defaults{
		Endpoints: EndpointDefaults{
			Input:  "-",
			Output: "-",
		},
		Reader: ReaderDefaults{
			Capacity: 4096,
			Fixed:    false,
		},
		Writer: WriterDefaults{
			Capacity: 4096,
		},
		Framing: FramingDefaults{
			HeaderBits:    32,
			IncludeHeader: false,
			Chunk:         1024,
			Delimiter:     "0x0a",
		},
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
			Color:     false,
		},
	}
}
