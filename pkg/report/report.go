// Package report turns the statics of a checked term into something a
// person or another tool can read: a styled problem listing for
// terminals, and a per-node JSON dump keyed by id for everything else.
package report

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-isatty"

	"github.com/lacuna-lang/lacuna/pkg/statics"
	"github.com/lacuna-lang/lacuna/pkg/syntax"
)

var (
	problemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	formStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	typeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Report is a read-only view over one checked term.
type Report struct {
	infos statics.InfoMap
}

// New builds a report over the statics of a checked term.
func New(infos statics.InfoMap) *Report {
	return &Report{infos: infos}
}

// Options controls human-readable rendering.
type Options struct {
	// Color applies terminal styles. Leave false when writing to a pipe.
	Color bool
}

// DetectColor reports whether f is an interactive terminal worth styling.
func DetectColor(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Diagnostic is one node in error.
type Diagnostic struct {
	// ID is the node's primary id.
	ID syntax.ID
	// Form names the node's syntactic form, as on the wire.
	Form string
	// Message is the node's error.
	Message string
	// Fixed is the type the node contributes despite the error.
	Fixed string
}

// Diagnostics lists every node in error, ascending by id. A node spanning
// several ids appears once, under its primary id.
func (r *Report) Diagnostics() []Diagnostic {
	seen := map[syntax.ID]bool{}
	var diags []Diagnostic
	for _, id := range r.infos.ErrorIDs() {
		info, err := r.infos.Get(id)
		if err != nil {
			continue
		}
		primary := syntax.PrimaryID(info.Term())
		if seen[primary] {
			continue
		}
		seen[primary] = true

		d := Diagnostic{
			ID:      primary,
			Form:    syntax.FormName(info.Term()),
			Message: statics.ErrOf(info).Error(),
		}
		if ty, err := r.infos.FixedType(primary); err == nil {
			d.Fixed = ty.String()
		}
		diags = append(diags, d)
	}
	slices.SortFunc(diags, func(a, b Diagnostic) int { return int(a.ID) - int(b.ID) })
	return diags
}

// Text renders the human-readable report.
func (r *Report) Text(opts Options) string {
	paint := func(style lipgloss.Style, s string) string {
		if !opts.Color {
			return s
		}
		return style.Render(s)
	}
	checked := fmt.Sprintf("%d nodes checked", len(r.infos))

	var out strings.Builder
	diags := r.Diagnostics()
	if len(diags) == 0 {
		fmt.Fprintf(&out, "%s %s\n", paint(okStyle, "ok"), paint(dimStyle, checked))
		return out.String()
	}

	fmt.Fprintf(&out, "%s\n\n", paint(problemStyle, countProblems(len(diags))))
	for _, d := range diags {
		fmt.Fprintf(&out, "%s %s: %s\n",
			paint(dimStyle, fmt.Sprintf("#%d", d.ID)),
			paint(formStyle, d.Form),
			d.Message)
		if d.Fixed != "" {
			fmt.Fprintf(&out, "   %s %s\n", paint(dimStyle, "fixed"), paint(typeStyle, d.Fixed))
		}
	}
	fmt.Fprintf(&out, "\n%s\n", paint(dimStyle, checked))
	return out.String()
}

// Render writes the human-readable report to w.
func (r *Report) Render(w io.Writer, opts Options) error {
	_, err := io.WriteString(w, r.Text(opts))
	return err
}

func countProblems(n int) string {
	if n == 1 {
		return "1 problem"
	}
	return fmt.Sprintf("%d problems", n)
}
