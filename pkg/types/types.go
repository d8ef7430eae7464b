// Package types defines the core value types shared across meeko:
// package install requests, per-package results, and run summaries.
package types

import "time"

// InstallMode selects whether a batch installs or upgrades packages.
type InstallMode int

const (
	// ModeInstall installs packages that are not yet present
	ModeInstall InstallMode = iota
	// ModeUpgrade upgrades packages that are already present
	ModeUpgrade
)

// String returns the human-readable name of the mode
func (m InstallMode) String() string {
	if m == ModeUpgrade {
		return "upgrade"
	}
	return "install"
}

// Outcome classifies the result of a single package-manager invocation.
type Outcome int

const (
	// OutcomeInstalled means the package was freshly installed
	OutcomeInstalled Outcome = iota
	// OutcomeUpgraded means the package was upgraded to a newer version
	OutcomeUpgraded
	// OutcomeAlreadyCurrent means the package was already at or above
	// the desired version; not a failure
	OutcomeAlreadyCurrent
	// OutcomeFailed means the invocation did not succeed
	OutcomeFailed
	// OutcomeSkipped means the invocation was not performed (dry run)
	OutcomeSkipped
)

// String returns the human-readable name of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeInstalled:
		return "installed"
	case OutcomeUpgraded:
		return "upgraded"
	case OutcomeAlreadyCurrent:
		return "already current"
	case OutcomeFailed:
		return "failed"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// PackageRequest describes one package to install or upgrade.
type PackageRequest struct {
	// ID is the package-manager identifier (e.g. "Git.Git")
	ID string
	// Name is the display name; falls back to ID when empty
	Name string
	// MinVersion is an optional minimum acceptable version
	MinVersion string
	// Manager optionally pins this package to a specific manager
	Manager string
	// Hard marks the package as required: its failure makes the
	// whole run exit non-zero even without --strict
	Hard bool
}

// DisplayName returns the name to show in output and logs
func (r PackageRequest) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// PackageResult is the classified result of one package invocation.
type PackageResult struct {
	Request  PackageRequest
	Outcome  Outcome
	ExitCode int
	// Message carries the diagnostic line for failures, empty otherwise
	Message  string
	Duration time.Duration
}

// Failed reports whether this result is a failure
func (r PackageResult) Failed() bool {
	return r.Outcome == OutcomeFailed
}

// RunSummary aggregates the results of a sequential package batch.
type RunSummary struct {
	Manager string
	Mode    InstallMode
	Results []PackageResult
	Started time.Time
	Elapsed time.Duration
}

// Add appends a result to the summary
func (s *RunSummary) Add(r PackageResult) {
	s.Results = append(s.Results, r)
}

// Failures returns the failed results, in the order they occurred
func (s RunSummary) Failures() []PackageResult {
	var failed []PackageResult
	for _, r := range s.Results {
		if r.Failed() {
			failed = append(failed, r)
		}
	}
	return failed
}

// AlreadyCurrent reports whether every result was already satisfied
func (s RunSummary) AlreadyCurrent() bool {
	if len(s.Results) == 0 {
		return false
	}
	for _, r := range s.Results {
		if r.Outcome != OutcomeAlreadyCurrent {
			return false
		}
	}
	return true
}

// ExitCode computes the process exit code for this run. Failures of
// hard packages always produce a non-zero code; soft failures only do
// so when strict is set.
func (s RunSummary) ExitCode(strict bool) int {
	for _, r := range s.Failures() {
		if r.Request.Hard || strict {
			return 1
		}
	}
	return 0
}
