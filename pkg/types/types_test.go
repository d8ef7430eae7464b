// pkg/types/types_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test run summary aggregation and exit code semantics

package types_test

import (
	"testing"

	"github.com/dotMeeko/dotfiles/pkg/types"
	"github.com/stretchr/testify/assert"
)

func failedResult(id string, hard bool) types.PackageResult {
	return types.PackageResult{
		Request:  types.PackageRequest{ID: id, Hard: hard},
		Outcome:  types.OutcomeFailed,
		ExitCode: 1,
	}
}

func okResult(id string, outcome types.Outcome) types.PackageResult {
	return types.PackageResult{
		Request: types.PackageRequest{ID: id},
		Outcome: outcome,
	}
}

func TestRunSummaryFailures(t *testing.T) {
	var s types.RunSummary
	s.Add(okResult("Git.Git", types.OutcomeInstalled))
	s.Add(failedResult("Python.Python.3.12", false))
	s.Add(okResult("Microsoft.VisualStudioCode", types.OutcomeAlreadyCurrent))
	s.Add(failedResult("7zip.7zip", false))

	failures := s.Failures()
	assert.Len(t, failures, 2)
	assert.Equal(t, "Python.Python.3.12", failures[0].Request.ID)
	assert.Equal(t, "7zip.7zip", failures[1].Request.ID)
}

func TestRunSummaryExitCode(t *testing.T) {
	tests := []struct {
		name    string
		results []types.PackageResult
		strict  bool
		want    int
	}{
		{
			name:    "all_ok",
			results: []types.PackageResult{okResult("a", types.OutcomeInstalled)},
			strict:  true,
			want:    0,
		},
		{
			name:    "soft_failure_lenient",
			results: []types.PackageResult{failedResult("a", false)},
			strict:  false,
			want:    0,
		},
		{
			name:    "soft_failure_strict",
			results: []types.PackageResult{failedResult("a", false)},
			strict:  true,
			want:    1,
		},
		{
			name:    "hard_failure_always_fails",
			results: []types.PackageResult{failedResult("a", true)},
			strict:  false,
			want:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := types.RunSummary{Results: tt.results}
			assert.Equal(t, tt.want, s.ExitCode(tt.strict))
		})
	}
}

func TestRunSummaryAlreadyCurrent(t *testing.T) {
	var empty types.RunSummary
	assert.False(t, empty.AlreadyCurrent())

	all := types.RunSummary{Results: []types.PackageResult{
		okResult("a", types.OutcomeAlreadyCurrent),
		okResult("b", types.OutcomeAlreadyCurrent),
	}}
	assert.True(t, all.AlreadyCurrent())

	mixed := types.RunSummary{Results: []types.PackageResult{
		okResult("a", types.OutcomeAlreadyCurrent),
		okResult("b", types.OutcomeInstalled),
	}}
	assert.False(t, mixed.AlreadyCurrent())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Git", types.PackageRequest{ID: "Git.Git", Name: "Git"}.DisplayName())
	assert.Equal(t, "Git.Git", types.PackageRequest{ID: "Git.Git"}.DisplayName())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "installed", types.OutcomeInstalled.String())
	assert.Equal(t, "upgraded", types.OutcomeUpgraded.String())
	assert.Equal(t, "already current", types.OutcomeAlreadyCurrent.String())
	assert.Equal(t, "failed", types.OutcomeFailed.String())
	assert.Equal(t, "skipped", types.OutcomeSkipped.String())
}
