package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"stackit.dev/gitkit/internal/object"
	"stackit.dev/gitkit/internal/protocol"
)

// ConfigureColor disables styling when w is not a terminal, so piped output
// stays byte-for-byte parseable.
func ConfigureColor(w io.Writer) {
	if f, ok := w.(*os.File); ok && isTerminal(f) && os.Getenv("NO_COLOR") == "" {
		lipgloss.SetColorProfile(termenv.NewOutput(f).EnvColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Render(text)
}

// ColorDim renders text in a muted grey
func ColorDim(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(text)
}

func kindColor(k object.ObjectKind) func(string) string {
	switch k {
	case object.KindTree:
		return ColorCyan
	case object.KindCommit:
		return ColorGreen
	case object.KindTag:
		return ColorYellow
	default:
		return func(s string) string { return s }
	}
}

// EntryRow renders a tree entry in ls-tree layout. With the ASCII profile
// the result is exactly object.FormatEntry without its newline.
func EntryRow(e object.TreeEntry) string {
	return ColorDim(e.EffectiveMode()) + " " +
		kindColor(e.Kind)(e.Kind.String()) + " " +
		ColorYellow(e.ID) + "\t" + e.Name
}

// RefRow renders one show-ref line.
func RefRow(ref, id string) string {
	return ColorYellow(id) + " " + ref
}

// BranchRow renders one branch listing line with git's two-column prefix.
func BranchRow(b protocol.Branch) string {
	name := b.Name
	if b.Detached {
		name = "(HEAD detached)"
	}
	switch {
	case b.Current:
		return "* " + ColorGreen(name)
	case b.Worktree:
		return "+ " + ColorCyan(name)
	default:
		return "  " + name
	}
}

// ColorMagenta colors text magenta
func ColorMagenta(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Render(text)
}
