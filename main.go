package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gitlab.dafni.rl.ac.uk/dafni/tools/hello-board/internal/pkg/banner"
	"gitlab.dafni.rl.ac.uk/dafni/tools/hello-board/internal/pkg/kernel"
	"gitlab.dafni.rl.ac.uk/dafni/tools/hello-board/internal/pkg/metrics"
	"gitlab.dafni.rl.ac.uk/dafni/tools/hello-board/internal/pkg/report"
)

func runHello(cc *cli.Context, provider kernel.Provider) error {
	out := cc.App.Writer
	quiet := cc.Bool("no-banner")
	if !quiet {
		fmt.Fprint(out, banner.Greeting(cc.String("board"), runtime.GOARCH))
	}
	report.New(provider, out).Report()
	if !quiet {
		fmt.Fprint(out, banner.Closing())
	}
	if path := cc.String("textfile"); path != "" {
		// Not fatal, the hello program always succeeds
		if err := metrics.WriteTextfile(path, provider); err != nil {
			log.WithError(err).WithField("path", path).Warn("unable to write metrics textfile")
		} else {
			log.WithField("path", path).Debug("wrote metrics textfile")
		}
	}
	return nil
}

func newApp(provider kernel.Provider, out io.Writer) *cli.App {
	return &cli.App{
		Name:   "hello-board",
		Usage:  "say hello and show what kernel we are running on",
		Writer: out,
		Action: func(cc *cli.Context) error {
			return runHello(cc, provider)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "board",
				EnvVars: []string{"BOARD"},
				Value:   banner.DefaultBoard,
			},
			&cli.BoolFlag{
				Name:    "no-banner",
				EnvVars: []string{"NO_BANNER"},
				Value:   false,
			},
			&cli.StringFlag{
				Name:    "textfile",
				EnvVars: []string{"TEXTFILE"},
				Usage:   "also write the identity to this Prometheus textfile",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				EnvVars: []string{"VERBOSE"},
				Value:   false,
			},
		},
		Before: func(cc *cli.Context) error {
			if cc.Bool("verbose") {
				log.SetLevel(log.TraceLevel)
			}
			return nil
		},
	}
}

func main() {
	err := newApp(kernel.Default(), os.Stdout).Run(os.Args)
	if err == nil {
		return
	}
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		log.WithError(err).Error("application exited with error")
		os.Exit(exitErr.ExitCode())
	} else {
		log.WithError(err).Fatal("application exited with error")
	}
}
