package bootstrap

import (
	"os/exec"
	"time"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/dotMeeko/dotfiles/pkg/errors"
	"github.com/dotMeeko/dotfiles/pkg/pkgmgr"
	"github.com/dotMeeko/dotfiles/pkg/winenv"
)

// HostReport is a read-only snapshot of the machine for `meeko doctor`.
// Nothing here mutates host state.
type HostReport struct {
	Hostname        string
	Platform        string
	PlatformVersion string
	KernelArch      string
	Uptime          time.Duration

	Elevated      bool
	DeveloperMode bool
	Managers      map[string]bool
	DotbotOnPath  bool
}

// Doctor collects the host report against the live system
func Doctor(reg winenv.Registry) (*HostReport, error) {
	info, err := host.Info()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "reading host information")
	}

	report := &HostReport{
		Hostname:        info.Hostname,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelArch:      info.KernelArch,
		Uptime:          time.Duration(info.Uptime) * time.Second,
		Elevated:        isElevated(),
		Managers:        make(map[string]bool),
	}

	enabled, err := winenv.DeveloperModeEnabled(reg)
	if err == nil {
		report.DeveloperMode = enabled
	}

	runner := pkgmgr.NewRunner()
	for _, name := range []string{"winget", "choco"} {
		m, _ := pkgmgr.ByName(name)
		report.Managers[name] = runner.Available(m)
	}

	_, err = exec.LookPath("dotbot")
	report.DotbotOnPath = err == nil

	return report, nil
}
