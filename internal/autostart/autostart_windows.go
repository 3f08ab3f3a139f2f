//go:build windows

package autostart

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/windows/registry"
)

const runKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

// New returns the Capability for this platform.
func New(appName string) Capability {
	return &runKey{name: appName}
}

// runKey registers the executable, without arguments, under HKCU\...\Run.
type runKey struct {
	name string
}

func (r *runKey) Enabled() (bool, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("open run key: %w", err)
	}
	defer k.Close()

	if _, _, err := k.GetStringValue(r.name); err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("get run value: %w", err)
	}
	return true, nil
}

func (r *runKey) SetEnabled(enabled bool) error {
	k, _, err := registry.CreateKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open run key: %w", err)
	}
	defer k.Close()

	if !enabled {
		// Missing values are fine.
		_ = k.DeleteValue(r.name)
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("os.Executable: %w", err)
	}
	exe = strings.TrimSpace(exe)
	if exe == "" {
		return errors.New("empty executable path")
	}

	if err := k.SetStringValue(r.name, fmt.Sprintf(`"%s"`, exe)); err != nil {
		return fmt.Errorf("set run value: %w", err)
	}
	return nil
}
