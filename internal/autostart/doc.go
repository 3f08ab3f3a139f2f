// Package autostart registers tcountdown to start when the user logs in.
//
// New returns the Capability for the running OS. On Windows the program is
// registered under the current user's Run key. Every other platform gets
// Unsupported, which reports autostart as disabled, accepts disabling, and
// returns ErrAutostartUnsupported when asked to enable it.
package autostart
