package launcher

import (
	"github.com/rony4d/go-bytestream/flags"
)

var app = flags.NewApp()

func init() {
	app.Commands = commands()
}

// Launch runs the command line described by args (os.Args style).
func Launch(args []string) error {
	return app.Run(args)
}
