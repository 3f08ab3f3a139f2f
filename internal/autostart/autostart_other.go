//go:build !windows

package autostart

// New returns the Capability for this platform.
func New(appName string) Capability {
	return Unsupported{}
}
