package meeko

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dotMeeko/dotfiles/pkg/bootstrap"
	"github.com/dotMeeko/dotfiles/pkg/config"
	"github.com/dotMeeko/dotfiles/pkg/display"
	"github.com/dotMeeko/dotfiles/pkg/dotlink"
	"github.com/dotMeeko/dotfiles/pkg/errors"
	"github.com/dotMeeko/dotfiles/pkg/paths"
	"github.com/dotMeeko/dotfiles/pkg/winenv"
)

// loadManifest resolves paths and loads the layered manifest
func loadManifest() (*config.Manifest, *paths.Paths, error) {
	p, err := paths.New()
	if err != nil {
		return nil, nil, err
	}
	m, err := config.Load(p.ManifestFile())
	if err != nil {
		return nil, nil, err
	}
	return m, p, nil
}

func newInstallCmd(dryRun *bool) *cobra.Command {
	var (
		updateOnly   bool
		skipOptional bool
		strict       bool
		managerName  string
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: MsgInstallShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, _, err := loadManifest()
			if err != nil {
				return err
			}
			if managerName != "" {
				manifest.Manager = managerName
			}

			seq := bootstrap.New(manifest)
			seq.UpdateOnly = updateOnly
			seq.SkipOptional = skipOptional
			seq.DryRun = *dryRun
			// env steps and verification belong to bootstrap/env
			seq.PackagesOnly = true

			report, err := seq.Run()
			if err != nil {
				return err
			}

			r := display.NewRenderer(os.Stdout)
			r.RenderSummary(report.Summary)
			if *dryRun {
				fmt.Println(MsgDryRunNotice)
				return nil
			}
			if report.Summary.AlreadyCurrent() {
				fmt.Println(MsgAllCurrent)
			}

			if code := report.Summary.ExitCode(strict); code != 0 {
				return errors.Newf(errors.ErrPackageRun, "%d package(s) failed", len(report.Summary.Failures()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&updateOnly, "update-only", false, "Upgrade packages instead of installing them")
	cmd.Flags().BoolVar(&skipOptional, "skip-optional", false, "Skip the optional package list")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any package fails")
	cmd.Flags().StringVar(&managerName, "manager", "", "Package manager to use (winget or choco)")

	return cmd
}

func newBootstrapCmd(dryRun *bool) *cobra.Command {
	var (
		updateOnly   bool
		skipOptional bool
		strict       bool
	)

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: MsgBootstrapShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, p, err := loadManifest()
			if err != nil {
				return err
			}

			seq := bootstrap.New(manifest)
			seq.UpdateOnly = updateOnly
			seq.SkipOptional = skipOptional
			seq.DryRun = *dryRun

			report, err := seq.Run()
			if err != nil {
				return err
			}

			r := display.NewRenderer(os.Stdout)
			r.RenderReport(report)
			if *dryRun {
				fmt.Println(MsgDryRunNotice)
				return nil
			}

			// dotfile linking closes the bootstrap once the environment
			// steps made symlinks possible
			dir := manifest.Dotfiles.Dir
			if dir == "" {
				dir = p.DotfilesRoot
			}
			if err := dotlink.New().Run(dir, configPath(dir, manifest, p)); err != nil {
				return err
			}

			if code := report.ExitCode(strict); code != 0 {
				return errors.Newf(errors.ErrPackageRun, "bootstrap finished with failures")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&updateOnly, "update-only", false, "Upgrade packages instead of installing them")
	cmd.Flags().BoolVar(&skipOptional, "skip-optional", false, "Skip the optional package list")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any package fails")

	return cmd
}

func newLinkCmd() *cobra.Command {
	var (
		dir        string
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "link",
		Short: MsgLinkShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, p, err := loadManifest()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = manifest.Dotfiles.Dir
			}
			if dir == "" {
				dir = p.DotfilesRoot
			}
			if configFile == "" {
				configFile = configPath(dir, manifest, p)
			}
			return dotlink.New().Run(dir, configFile)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Dotfiles directory (default: DOTFILES_ROOT)")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "dotbot config file (default: install.conf.yaml in the dotfiles dir)")

	return cmd
}

func newEnvCmd(dryRun *bool) *cobra.Command {
	var checkOnly bool

	cmd := &cobra.Command{
		Use:   "env",
		Short: MsgEnvShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, _, err := loadManifest()
			if err != nil {
				return err
			}

			reg := winenv.NewSystemRegistry()
			r := display.NewRenderer(os.Stdout)

			if checkOnly || *dryRun {
				enabled, err := winenv.DeveloperModeEnabled(reg)
				if err != nil {
					return err
				}
				detail := "disabled"
				if enabled {
					detail = "enabled"
				}
				r.RenderSteps([]winenv.StepResult{{Name: "Developer Mode", Detail: detail}})
				return nil
			}

			if !winenv.IsElevated() {
				return errors.New(errors.ErrPrivilege, "administrator privileges required for environment bootstrap")
			}

			steps := []winenv.StepResult{
				winenv.RefreshPath(reg),
				winenv.EnsureDeveloperMode(reg),
			}
			if manifest.ExecutionPolicy != "" {
				steps = append(steps, winenv.EnsureExecutionPolicy(manifest.ExecutionPolicy))
			}

			r.RenderSteps(steps)
			for _, step := range steps {
				if !step.OK() {
					return errors.Wrap(step.Err, errors.ErrInternal, "environment bootstrap failed")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "Only report current state")

	return cmd
}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: MsgDoctorShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := bootstrap.Doctor(winenv.NewSystemRegistry())
			if err != nil {
				return err
			}
			display.NewRenderer(os.Stdout).RenderDoctor(report)
			return nil
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, _, err := loadManifest()
			if err != nil {
				return err
			}
			out, err := config.Emit(manifest)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}
}

// configPath resolves the dotbot config relative to the dotfiles dir
func configPath(dir string, manifest *config.Manifest, p *paths.Paths) string {
	if manifest.Dotfiles.Config != "" {
		return filepath.Join(dir, manifest.Dotfiles.Config)
	}
	return p.DotbotConfig()
}
