package kernel

import (
	"errors"
	"fmt"
)

// ErrQueryFailed is wrapped by every error a Provider returns.
var ErrQueryFailed = errors.New("kernel identification query failed")

// Identity is a snapshot of the uname(2) fields for the running kernel. It is
// filled by a single query and never modified afterwards.
type Identity struct {
	Sysname  string
	Nodename string
	Release  string
	Version  string
	Machine  string
}

// Provider fetches the identity of the host. Implementations either return
// all five fields or an error, never a partially filled Identity.
type Provider interface {
	Fetch() (Identity, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func() (Identity, error)

func (f ProviderFunc) Fetch() (Identity, error) {
	return f()
}

// StaticProvider always returns the same identity, used by --pretend.
type StaticProvider Identity

func (s StaticProvider) Fetch() (Identity, error) {
	return Identity(s), nil
}

// Version returns the kernel release string of the host.
func Version() (string, error) {
	id, err := Default().Fetch()
	if err != nil {
		return "error", err
	}
	return id.Release, nil
}

func queryError(source string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrQueryFailed, source, err)
}
