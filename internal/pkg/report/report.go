// Package report prints the kernel identification block of the hello
// program.
package report

import (
	"bytes"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"gitlab.dafni.rl.ac.uk/dafni/tools/hello-board/internal/pkg/kernel"
)

const (
	Header = "=== System Information ==="
	Footer = "=========================="
)

// Reporter asks a kernel.Provider for the host identity and prints it.
type Reporter struct {
	provider kernel.Provider
	out      io.Writer
}

func New(provider kernel.Provider, out io.Writer) *Reporter {
	return &Reporter{provider: provider, out: out}
}

// Report prints the identity block. If the query fails nothing is printed at
// all and the failure is only visible at debug level.
func (r *Reporter) Report() {
	id, err := r.provider.Fetch()
	if err != nil {
		// only shown with --verbose
		log.WithError(err).Debug("skipping system information")
		return
	}
	var buf bytes.Buffer
	Render(&buf, id)
	if _, err := r.out.Write(buf.Bytes()); err != nil {
		log.WithError(err).Debug("unable to write system information")
	}
}

// Render writes the framed five line block for id.
func Render(w io.Writer, id kernel.Identity) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, Header)
	fmt.Fprintf(w, "System:    %s\n", id.Sysname)
	fmt.Fprintf(w, "Node:      %s\n", id.Nodename)
	fmt.Fprintf(w, "Release:   %s\n", id.Release)
	fmt.Fprintf(w, "Version:   %s\n", id.Version)
	fmt.Fprintf(w, "Machine:   %s\n", id.Machine)
	fmt.Fprintln(w, Footer)
	fmt.Fprintln(w)
}
