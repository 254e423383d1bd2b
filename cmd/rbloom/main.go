package main

import (
	"fmt"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/urfave/cli"
)

const defaultLogLevel = "INFO"

// log is set up by the app's Before hook.
var log logger.Logger

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[rbloom] %v\n", err)
	os.Exit(1)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rbloom"
	app.Usage = "build, query and combine persisted bloom filters"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "loglevel",
			Value: defaultLogLevel,
			Usage: "log level: DEBUG, INFO, WARN, ERROR or NOOP",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		logger.New(ctx.GlobalString("loglevel"))
		log = logger.Sugar.WithServiceName("rbloom")
		return nil
	}
	app.After = func(ctx *cli.Context) error {
		logger.OnExit()
		return nil
	}
	app.Commands = []cli.Command{
		buildCommand,
		queryCommand,
		infoCommand,
		mergeCommand,
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fatal(err)
	}
}
