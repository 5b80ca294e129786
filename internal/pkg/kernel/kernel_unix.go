//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd || solaris

package kernel

// Everything with a uname(2) syscall goes through x/sys/unix, the other
// platforms fall back to gopsutil (see kernel.go)

import "golang.org/x/sys/unix"

// UnameProvider queries the kernel with uname(2).
type UnameProvider struct{}

func (UnameProvider) Fetch() (Identity, error) {
	var utsname unix.Utsname
	if err := unix.Uname(&utsname); err != nil {
		return Identity{}, queryError("uname", err)
	}
	return Identity{
		Sysname:  unix.ByteSliceToString(utsname.Sysname[:]),
		Nodename: unix.ByteSliceToString(utsname.Nodename[:]),
		Release:  unix.ByteSliceToString(utsname.Release[:]),
		Version:  unix.ByteSliceToString(utsname.Version[:]),
		Machine:  unix.ByteSliceToString(utsname.Machine[:]),
	}, nil
}

// Default returns the native provider for this platform.
func Default() Provider {
	return UnameProvider{}
}
