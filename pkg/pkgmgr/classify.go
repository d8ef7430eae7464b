package pkgmgr

import (
	"strings"

	"github.com/dotMeeko/dotfiles/pkg/types"
)

// Classify decides the outcome of a package-manager invocation from
// its exit code and combined output. It is a pure function; process
// spawning lives in Runner.
//
// There is no single source of truth in the tools themselves, so the
// decision is an OR of independent signals:
//
//  1. any already-current phrase in the output wins, regardless of
//     exit code (winget is known to exit non-zero for "already
//     installed")
//  2. otherwise a zero exit code, or any success phrase, means the
//     requested change was applied
//  3. otherwise the invocation failed
func Classify(exitCode int, output string, mode types.InstallMode, vocab Vocabulary) types.Outcome {
	if containsAny(output, vocab.AlreadyCurrent) {
		return types.OutcomeAlreadyCurrent
	}

	if exitCode == 0 || containsAny(output, vocab.Success) {
		if mode == types.ModeUpgrade {
			return types.OutcomeUpgraded
		}
		return types.OutcomeInstalled
	}

	return types.OutcomeFailed
}

func containsAny(output string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(output, phrase) {
			return true
		}
	}
	return false
}
