// pkg/display/display_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test summary rendering content (not styling)

package display

import (
	"bytes"
	"testing"

	"github.com/dotMeeko/dotfiles/pkg/types"
	"github.com/stretchr/testify/assert"
)

func sampleSummary() types.RunSummary {
	return types.RunSummary{
		Manager: "winget",
		Mode:    types.ModeInstall,
		Results: []types.PackageResult{
			{Request: types.PackageRequest{ID: "Git.Git", Name: "Git"}, Outcome: types.OutcomeInstalled},
			{Request: types.PackageRequest{ID: "7zip.7zip"}, Outcome: types.OutcomeAlreadyCurrent},
			{Request: types.PackageRequest{ID: "Python.Python.3.12", Name: "Python"},
				Outcome: types.OutcomeFailed, ExitCode: 1603, Message: "Installer failed"},
		},
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.RenderSummary(sampleSummary())

	out := buf.String()
	assert.Contains(t, out, "Git")
	assert.Contains(t, out, "already current")
	assert.Contains(t, out, "1 package(s) failed")
	assert.Contains(t, out, "Installer failed")
}

func TestRenderSummaryNoFailures(t *testing.T) {
	s := sampleSummary()
	s.Results = s.Results[:2]

	var buf bytes.Buffer
	NewRenderer(&buf).RenderSummary(s)

	assert.NotContains(t, buf.String(), "failed")
}

func TestPlain(t *testing.T) {
	out := Plain(sampleSummary())
	assert.Contains(t, out, "Git: installed\n")
	assert.Contains(t, out, "7zip.7zip: already current\n")
	assert.Contains(t, out, "Python: failed\n")
}

func TestOutcomeStyleCoversAllOutcomes(t *testing.T) {
	for _, o := range []types.Outcome{
		types.OutcomeInstalled, types.OutcomeUpgraded, types.OutcomeAlreadyCurrent,
		types.OutcomeFailed, types.OutcomeSkipped,
	} {
		assert.NotNil(t, OutcomeStyle(o))
	}
}
