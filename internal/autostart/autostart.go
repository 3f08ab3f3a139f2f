package autostart

import (
	kerrors "github.com/PolarWolf314/tcountdown/internal/errors"
)

// Capability reads and changes login autostart registration.
type Capability interface {
	Enabled() (bool, error)
	SetEnabled(enabled bool) error
}

// Unsupported is the Capability for platforms without autostart support.
type Unsupported struct{}

func (Unsupported) Enabled() (bool, error) {
	return false, nil
}

func (Unsupported) SetEnabled(enabled bool) error {
	if enabled {
		return kerrors.ErrAutostartUnsupported
	}
	return nil
}
