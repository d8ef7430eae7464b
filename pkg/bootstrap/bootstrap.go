// Package bootstrap orchestrates the full machine setup: precondition
// checks, the package batch, the environment steps, and the final
// verification pass, in that fixed order.
package bootstrap

import (
	"github.com/dotMeeko/dotfiles/pkg/batch"
	"github.com/dotMeeko/dotfiles/pkg/config"
	"github.com/dotMeeko/dotfiles/pkg/errors"
	"github.com/dotMeeko/dotfiles/pkg/logging"
	"github.com/dotMeeko/dotfiles/pkg/pkgmgr"
	"github.com/dotMeeko/dotfiles/pkg/types"
	"github.com/dotMeeko/dotfiles/pkg/winenv"
)

// isElevated is abstracted for testing
var isElevated = winenv.IsElevated

// Sequence is one full bootstrap run
type Sequence struct {
	Manifest *config.Manifest
	Registry winenv.Registry
	Runner   batch.Runner

	UpdateOnly   bool
	SkipOptional bool
	DryRun       bool
	// PackagesOnly runs the batch and nothing else: no environment
	// steps, no verification. Used by `meeko install`.
	PackagesOnly bool
}

// Report collects everything a run did, for display and exit-code
// computation.
type Report struct {
	Summary types.RunSummary
	Steps   []winenv.StepResult
	Probes  []ProbeResult
}

// New creates a sequence against the live host
func New(manifest *config.Manifest) *Sequence {
	return &Sequence{
		Manifest: manifest,
		Registry: winenv.NewSystemRegistry(),
		Runner:   pkgmgr.NewRunner(),
	}
}

// Preconditions verifies the run can start at all: elevation for the
// registry writes and the active package manager on PATH. Failures
// here are fatal, unlike per-package failures later.
func (s *Sequence) Preconditions() error {
	if !s.DryRun && !isElevated() {
		return errors.New(errors.ErrPrivilege, "administrator privileges required for bootstrap")
	}

	manager, err := pkgmgr.ByName(s.Manifest.Manager)
	if err != nil {
		return err
	}

	if r, ok := s.Runner.(*pkgmgr.Runner); ok && !r.Available(manager) {
		return errors.Newf(errors.ErrToolMissing, "%s not found on PATH", manager.Executable)
	}

	return nil
}

// Run executes the whole sequence: package install, PATH refresh,
// developer mode, execution policy, then verification. Environment
// step failures are recorded, not fatal; only precondition failures
// abort the run.
func (s *Sequence) Run() (*Report, error) {
	logger := logging.GetLogger("bootstrap")

	if err := s.Preconditions(); err != nil {
		return nil, err
	}

	manager, err := pkgmgr.ByName(s.Manifest.Manager)
	if err != nil {
		return nil, err
	}

	mode := types.ModeInstall
	if s.UpdateOnly {
		mode = types.ModeUpgrade
	}

	report := &Report{}

	report.Summary = batch.Run(batch.Options{
		Runner:  s.Runner,
		Manager: manager,
		Mode:    mode,
		DryRun:  s.DryRun,
	}, s.Manifest.Requests(s.SkipOptional))

	if s.DryRun {
		logger.Info().Msg("Dry run - environment steps and verification skipped")
		return report, nil
	}

	if s.PackagesOnly {
		logger.Debug().Msg("Package-only run - environment steps and verification skipped")
		return report, nil
	}

	// Environment steps run after the batch so freshly installed tools
	// land on the refreshed PATH.
	report.Steps = append(report.Steps, winenv.RefreshPath(s.Registry))
	report.Steps = append(report.Steps, winenv.EnsureDeveloperMode(s.Registry))
	if s.Manifest.ExecutionPolicy != "" {
		report.Steps = append(report.Steps, winenv.EnsureExecutionPolicy(s.Manifest.ExecutionPolicy))
	}

	for _, step := range report.Steps {
		if !step.OK() {
			logger.Error().Err(step.Err).Str("step", step.Name).Msg("Bootstrap step failed")
		}
	}

	report.Probes = s.verify()

	return report, nil
}

// ExitCode computes the process exit code for a completed run
func (r *Report) ExitCode(strict bool) int {
	if code := r.Summary.ExitCode(strict); code != 0 {
		return code
	}
	for _, step := range r.Steps {
		if !step.OK() {
			return 1
		}
	}
	for _, probe := range r.Probes {
		if !probe.OK {
			return 1
		}
	}
	return 0
}
