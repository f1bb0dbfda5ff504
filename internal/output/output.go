// Package output renders workflow progress to a terminal. All writers are
// plain io.Writer based so tests can capture output in a buffer.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	actionStyle = lipgloss.NewStyle().Bold(true)
	stepStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	skipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// Reporter writes step-by-step workflow progress.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Action announces the workflow action that is starting.
func (r *Reporter) Action(name string) {
	fmt.Fprintln(r.w, actionStyle.Render(name))
}

// Step reports a pipeline step about to run.
func (r *Reporter) Step(name string) {
	fmt.Fprintf(r.w, "  %s %s\n", stepStyle.Render("→"), name)
}

// Skip reports a conditionally disabled step.
func (r *Reporter) Skip(name string) {
	fmt.Fprintf(r.w, "  %s\n", skipStyle.Render("- "+name+" (skipped)"))
}

// Info reports an informational note from inside a step.
func (r *Reporter) Info(format string, args ...any) {
	fmt.Fprintf(r.w, "    %s\n", infoStyle.Render(fmt.Sprintf(format, args...)))
}

// Done reports successful completion of the action.
func (r *Reporter) Done(name string) {
	fmt.Fprintf(r.w, "%s %s\n", okStyle.Render("✓"), name+" completed")
}
