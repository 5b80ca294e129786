package kernel

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider(t *testing.T) {
	want := Identity{Sysname: "Linux", Nodename: "beagleplay", Release: "6.6.32-ti", Version: "#1 SMP PREEMPT", Machine: "aarch64"}
	got, err := StaticProvider(want).Fetch()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProviderFunc(t *testing.T) {
	calls := 0
	p := ProviderFunc(func() (Identity, error) {
		calls++
		return Identity{}, queryError("uname", errors.New("ENOSYS"))
	})
	_, err := p.Fetch()
	assert.ErrorIs(t, err, ErrQueryFailed)
	assert.Contains(t, err.Error(), "ENOSYS")
	assert.Equal(t, 1, calls)
}

func TestDefaultProviderFillsEveryField(t *testing.T) {
	id, err := Default().Fetch()
	if err != nil {
		t.Skipf("host identification unavailable: %v", err)
	}
	assert.NotEmpty(t, id.Sysname)
	assert.NotEmpty(t, id.Release)
	assert.NotEmpty(t, id.Machine)
}

func TestVersionMatchesDefaultRelease(t *testing.T) {
	id, err := Default().Fetch()
	if err != nil {
		t.Skipf("host identification unavailable: %v", err)
	}
	release, err := Version()
	require.NoError(t, err)
	assert.Equal(t, id.Release, release)
}

func TestHostInfoProvider(t *testing.T) {
	p := &HostInfoProvider{info: func(context.Context) (*host.InfoStat, error) {
		return &host.InfoStat{
			Hostname:        "lab-pc",
			OS:              "windows",
			PlatformVersion: "10.0.19045",
			KernelVersion:   "10.0.19045 Build 19045",
			KernelArch:      "x86_64",
		}, nil
	}}
	id, err := p.Fetch()
	require.NoError(t, err)
	assert.Equal(t, Identity{
		Sysname:  "Windows",
		Nodename: "lab-pc",
		Release:  "10.0.19045 Build 19045",
		Version:  "10.0.19045",
		Machine:  "x86_64",
	}, id)
}

func TestHostInfoProviderPartialResultIsFailure(t *testing.T) {
	p := &HostInfoProvider{info: func(context.Context) (*host.InfoStat, error) {
		return &host.InfoStat{Hostname: "lab-pc"}, errors.New("platform information unavailable")
	}}
	id, err := p.Fetch()
	assert.ErrorIs(t, err, ErrQueryFailed)
	assert.Equal(t, Identity{}, id)
}

func TestHostInfoProviderNilResult(t *testing.T) {
	p := &HostInfoProvider{info: func(context.Context) (*host.InfoStat, error) {
		return nil, nil
	}}
	_, err := p.Fetch()
	assert.ErrorIs(t, err, ErrQueryFailed)
}
