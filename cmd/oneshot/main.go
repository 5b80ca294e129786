package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gitlab.dafni.rl.ac.uk/dafni/tools/hello-board/internal/pkg/kernel"
	"gitlab.dafni.rl.ac.uk/dafni/tools/hello-board/internal/pkg/report"
)

func run(provider kernel.Provider, out io.Writer) {
	log.Info("querying kernel identification")
	report.New(provider, out).Report()
}

func main() {
	run(kernel.Default(), os.Stdout)
}
