package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// CommonFlags returns the base set of CLI flags shared across commands.

func CommonFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "YAML configuration file applied before command-line flags",
		},
		cli.StringFlag{
			Name:  "input",
			Usage: "Source to read from: file path, - for stdin, tcp://host:port or ws://host/path",
			Value: "-",
		},
		cli.StringFlag{
			Name:  "output",
			Usage: "Sink to write to: file path, - for stdout, tcp://host:port or ws://host/path",
			Value: "-",
		},
		cli.StringFlag{
			Name:  "log.format",
			Usage: "Log output format (text|json)",
			Value: "text",
		},
		cli.IntFlag{
			Name:  "log.verbosity",
			Usage: "Logging verbosity (0=fatal,1=error,2=warn,3=info,4=debug,5=trace)",
			Value: 3,
		},
		cli.BoolFlag{
			Name:  "log.color",
			Usage: "Enable colored log output",
		},
		cli.StringFlag{
			Name:  "log.sentry",
			Usage: "Sentry DSN receiving error level log entries",
		},
	}
}
