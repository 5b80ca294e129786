package kernel

import (
	"context"
	"errors"

	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var errNoHostInfo = errors.New("no host information returned")

// HostInfoProvider builds an Identity from gopsutil's host information. It
// is the fallback for platforms without uname(2).
type HostInfoProvider struct {
	info func(ctx context.Context) (*host.InfoStat, error)
}

func NewHostInfoProvider() *HostInfoProvider {
	return &HostInfoProvider{info: host.InfoWithContext}
}

func (p *HostInfoProvider) Fetch() (Identity, error) {
	// gopsutil may hand back a half populated InfoStat together with an
	// error; that counts as a failed query
	st, err := p.info(context.Background())
	if err != nil {
		return Identity{}, queryError("host info", err)
	}
	if st == nil {
		return Identity{}, queryError("host info", errNoHostInfo)
	}
	return Identity{
		Sysname:  cases.Title(language.Und).String(st.OS),
		Nodename: st.Hostname,
		Release:  st.KernelVersion,
		Version:  st.PlatformVersion,
		Machine:  st.KernelArch,
	}, nil
}
