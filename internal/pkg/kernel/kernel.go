//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd || solaris)

package kernel

// No uname(2) here, so the identity is assembled from what gopsutil can
// find out about the host instead

// Default returns the native provider for this platform.
func Default() Provider {
	return NewHostInfoProvider()
}
