// Package display renders run summaries, bootstrap steps, and doctor
// reports for the terminal.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/dotMeeko/dotfiles/pkg/bootstrap"
	"github.com/dotMeeko/dotfiles/pkg/types"
	"github.com/dotMeeko/dotfiles/pkg/winenv"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// Renderer writes human output. Color is dropped automatically when
// the writer is not a terminal.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer for w
func NewRenderer(w io.Writer) *Renderer {
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		pterm.DisableColor()
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{out: w}
}

// OutcomeStyle returns the pterm style for an outcome
func OutcomeStyle(o types.Outcome) *pterm.Style {
	switch o {
	case types.OutcomeInstalled, types.OutcomeUpgraded:
		return pterm.NewStyle(pterm.FgGreen)
	case types.OutcomeAlreadyCurrent:
		return pterm.NewStyle(pterm.FgCyan)
	case types.OutcomeFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// RenderSummary prints one line per package and a failure recap
func (r *Renderer) RenderSummary(s types.RunSummary) {
	fmt.Fprintln(r.out, headerStyle.Render(fmt.Sprintf("Packages (%s via %s)", s.Mode, s.Manager)))

	for _, result := range s.Results {
		label := fmt.Sprintf("%-16s", result.Outcome)
		fmt.Fprintf(r.out, "  %s %s\n", OutcomeStyle(result.Outcome).Sprint(label), result.Request.DisplayName())
	}

	failures := s.Failures()
	if len(failures) == 0 {
		return
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, headerStyle.Render(fmt.Sprintf("%d package(s) failed:", len(failures))))
	for _, f := range failures {
		detail := f.Message
		if detail == "" {
			detail = fmt.Sprintf("exit code %d", f.ExitCode)
		}
		fmt.Fprintf(r.out, "  %s %s: %s\n",
			OutcomeStyle(types.OutcomeFailed).Sprint("✗"), f.Request.DisplayName(), detail)
	}
}

// RenderSteps prints the environment bootstrap steps
func (r *Renderer) RenderSteps(steps []winenv.StepResult) {
	if len(steps) == 0 {
		return
	}
	fmt.Fprintln(r.out, headerStyle.Render("Environment"))
	for _, step := range steps {
		switch {
		case !step.OK():
			fmt.Fprintf(r.out, "  %s %s: %v\n",
				pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("✗"), step.Name, step.Err)
		case step.Changed:
			fmt.Fprintf(r.out, "  %s %s: %s\n",
				pterm.NewStyle(pterm.FgGreen).Sprint("✓"), step.Name, step.Detail)
		default:
			fmt.Fprintf(r.out, "  %s %s: %s\n",
				pterm.NewStyle(pterm.FgCyan).Sprint("="), step.Name, step.Detail)
		}
	}
}

// RenderProbes prints the verification results
func (r *Renderer) RenderProbes(probes []bootstrap.ProbeResult) {
	if len(probes) == 0 {
		return
	}
	fmt.Fprintln(r.out, headerStyle.Render("Verification"))
	for _, p := range probes {
		if p.OK {
			version := p.Version
			if version == "" {
				version = "ok"
			}
			fmt.Fprintf(r.out, "  %s %s %s\n", pterm.NewStyle(pterm.FgGreen).Sprint("✓"), p.Name, version)
		} else {
			fmt.Fprintf(r.out, "  %s %s: %s\n", pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("✗"), p.Name, p.Detail)
		}
	}
}

// RenderReport prints a full bootstrap report
func (r *Renderer) RenderReport(report *bootstrap.Report) {
	r.RenderSummary(report.Summary)
	fmt.Fprintln(r.out)
	r.RenderSteps(report.Steps)
	r.RenderProbes(report.Probes)
}

// RenderDoctor prints the host report
func (r *Renderer) RenderDoctor(h *bootstrap.HostReport) {
	fmt.Fprintln(r.out, headerStyle.Render("Host"))
	fmt.Fprintf(r.out, "  %-16s %s\n", "hostname", h.Hostname)
	fmt.Fprintf(r.out, "  %-16s %s %s (%s)\n", "platform", h.Platform, h.PlatformVersion, h.KernelArch)
	fmt.Fprintf(r.out, "  %-16s %s\n", "uptime", h.Uptime)

	fmt.Fprintln(r.out, headerStyle.Render("Checks"))
	fmt.Fprintf(r.out, "  %-16s %s\n", "elevated", yesNo(h.Elevated))
	fmt.Fprintf(r.out, "  %-16s %s\n", "developer mode", yesNo(h.DeveloperMode))
	for _, name := range []string{"winget", "choco"} {
		fmt.Fprintf(r.out, "  %-16s %s\n", name, yesNo(h.Managers[name]))
	}
	fmt.Fprintf(r.out, "  %-16s %s\n", "dotbot", yesNo(h.DotbotOnPath))
}

func yesNo(b bool) string {
	if b {
		return pterm.NewStyle(pterm.FgGreen).Sprint("yes")
	}
	return pterm.NewStyle(pterm.FgYellow).Sprint("no")
}

// Plain renders a summary without any styling, for logs and tests
func Plain(s types.RunSummary) string {
	var b strings.Builder
	for _, result := range s.Results {
		fmt.Fprintf(&b, "%s: %s\n", result.Request.DisplayName(), result.Outcome)
	}
	return b.String()
}
