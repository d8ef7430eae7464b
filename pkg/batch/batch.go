// Package batch runs a list of package requests strictly in sequence
// and aggregates the classified results. There is no parallelism, no
// retry, and no rollback: a failed package is recorded and the run
// moves on to the next one.
package batch

import (
	"time"

	"github.com/dotMeeko/dotfiles/pkg/logging"
	"github.com/dotMeeko/dotfiles/pkg/pkgmgr"
	"github.com/dotMeeko/dotfiles/pkg/types"
)

// Runner is the per-package execution dependency, satisfied by
// *pkgmgr.Runner and by stubs in tests.
type Runner interface {
	Run(m pkgmgr.Manager, req types.PackageRequest, mode types.InstallMode) types.PackageResult
}

// Options configures a batch run
type Options struct {
	Runner  Runner
	Manager pkgmgr.Manager
	Mode    types.InstallMode
	DryRun  bool
}

// Run processes the requests one at a time and returns the summary.
// Packages pinned to a different manager than the active one are
// skipped with a note rather than failed.
func Run(opts Options, requests []types.PackageRequest) types.RunSummary {
	logger := logging.GetLogger("batch")

	summary := types.RunSummary{
		Manager: opts.Manager.Name,
		Mode:    opts.Mode,
		Started: time.Now(),
	}

	for _, req := range requests {
		if req.Manager != "" && req.Manager != opts.Manager.Name {
			logger.Debug().
				Str("package", req.ID).
				Str("pinned", req.Manager).
				Str("active", opts.Manager.Name).
				Msg("Package pinned to another manager, skipping")
			summary.Add(types.PackageResult{
				Request: req,
				Outcome: types.OutcomeSkipped,
				Message: "pinned to manager " + req.Manager,
			})
			continue
		}

		if opts.DryRun {
			summary.Add(types.PackageResult{
				Request: req,
				Outcome: types.OutcomeSkipped,
				Message: "dry run - no changes made",
			})
			continue
		}

		result := opts.Runner.Run(opts.Manager, req, opts.Mode)
		summary.Add(result)
	}

	summary.Elapsed = time.Since(summary.Started)

	logger.Info().
		Str("manager", summary.Manager).
		Str("mode", summary.Mode.String()).
		Int("requested", len(requests)).
		Int("failed", len(summary.Failures())).
		Dur("elapsed", summary.Elapsed).
		Msg("Batch finished")

	return summary
}
