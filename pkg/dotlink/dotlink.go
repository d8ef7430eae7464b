// Package dotlink is a thin wrapper around dotbot, the third-party
// dotfile-linking tool. It validates the dotbot config and invokes the
// tool with the dotfiles directory and config path; it does not
// reimplement any linking behavior.
package dotlink

import (
	"os"
	"os/exec"

	"gopkg.in/yaml.v3"

	"github.com/dotMeeko/dotfiles/pkg/errors"
	"github.com/dotMeeko/dotfiles/pkg/logging"
)

// execCommand is abstracted for testing
var execCommand = exec.Command

// Linker invokes dotbot
type Linker struct {
	// Executable is the dotbot binary; when it is not on PATH the
	// linker falls back to "python -m dotbot"
	Executable string
}

// New creates a linker with the standard dotbot executable
func New() *Linker {
	return &Linker{Executable: "dotbot"}
}

// Validate parses the dotbot config and rejects anything that is not
// a YAML list of directives, catching the common mistake of pointing
// meeko at a non-dotbot YAML file.
func Validate(configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrNotFound, "reading dotbot config %s", configPath)
	}

	var directives []map[string]interface{}
	if err := yaml.Unmarshal(data, &directives); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "dotbot config %s is not a YAML directive list", configPath)
	}
	if len(directives) == 0 {
		return errors.Newf(errors.ErrConfigValid, "dotbot config %s has no directives", configPath)
	}
	return nil
}

// command resolves the executable and arguments for the invocation
func (l *Linker) command(dir, configPath string) (string, []string) {
	if _, err := exec.LookPath(l.Executable); err == nil {
		return l.Executable, []string{"-d", dir, "-c", configPath}
	}
	return "python", []string{"-m", "dotbot", "-d", dir, "-c", configPath}
}

// Run validates the config and invokes dotbot against the dotfiles
// directory, forwarding its output to the user.
func (l *Linker) Run(dir, configPath string) error {
	logger := logging.GetLogger("dotlink")

	if err := Validate(configPath); err != nil {
		return err
	}

	name, args := l.command(dir, configPath)
	logger.Info().
		Str("executable", name).
		Str("dir", dir).
		Str("config", configPath).
		Msg("Invoking dotbot")

	cmd := execCommand(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrLinkRun, "dotbot failed for %s", configPath)
	}

	logger.Info().Str("config", configPath).Msg("Dotfiles linked")
	return nil
}
