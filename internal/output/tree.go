package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"stackit.dev/gitkit/internal/object"
)

// depthPalette colors tree connectors by nesting depth
var depthPalette = [][]int{
	{76, 203, 241},  // Light blue
	{77, 202, 125},  // Green
	{110, 173, 38},  // Dark green
	{245, 200, 0},   // Yellow
	{248, 144, 72},  // Orange
	{244, 98, 81},   // Red
	{235, 130, 188}, // Pink
	{159, 131, 228}, // Purple
	{80, 132, 243},  // Blue
}

// DepthColor renders text in the palette color for depth.
func DepthColor(text string, depth int) string {
	color := depthPalette[depth%len(depthPalette)]
	hexColor := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", color[0], color[1], color[2]))
	return lipgloss.NewStyle().Foreground(hexColor).Render(text)
}

// TreeRenderOptions configures rendering behavior
type TreeRenderOptions struct {
	// MaxDepth stops descent below this many levels; 0 is unlimited.
	MaxDepth int
	// ShowIDs prefixes each name with its abbreviated object id.
	ShowIDs bool
}

// TreeRenderer draws a tree object and its subtrees with box-drawing
// connectors. Only tree entries are descended into; submodule commits are
// leaves.
type TreeRenderer struct {
	getChildren func(entry object.TreeEntry) ([]object.TreeEntry, error)
}

// NewTreeRenderer creates a renderer that loads subtrees with getChildren.
func NewTreeRenderer(getChildren func(entry object.TreeEntry) ([]object.TreeEntry, error)) *TreeRenderer {
	return &TreeRenderer{getChildren: getChildren}
}

// Render returns one line per entry, depth first.
func (r *TreeRenderer) Render(entries []object.TreeEntry, opts TreeRenderOptions) ([]string, error) {
	return r.renderLevel(entries, "", 0, opts)
}

func (r *TreeRenderer) renderLevel(entries []object.TreeEntry, prefix string, depth int, opts TreeRenderOptions) ([]string, error) {
	var result []string
	for i, e := range entries {
		connector, indent := "├── ", "│   "
		if i == len(entries)-1 {
			connector, indent = "└── ", "    "
		}
		result = append(result, prefix+DepthColor(connector, depth)+r.label(e, opts))

		if e.Kind != object.KindTree || (opts.MaxDepth > 0 && depth+1 >= opts.MaxDepth) {
			continue
		}
		children, err := r.getChildren(e)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", e.Name, err)
		}
		lines, err := r.renderLevel(children, prefix+DepthColor(indent, depth), depth+1, opts)
		if err != nil {
			return nil, err
		}
		result = append(result, lines...)
	}
	return result, nil
}

func (r *TreeRenderer) label(e object.TreeEntry, opts TreeRenderOptions) string {
	var label string
	if opts.ShowIDs {
		label = ColorDim(e.ID[:7]) + " "
	}
	switch {
	case e.Kind == object.KindTree:
		return label + ColorCyan(e.Name+"/")
	case e.Kind == object.KindCommit:
		return label + ColorGreen(e.Name) + ColorDim(" @ "+e.ID[:7])
	case e.EffectiveMode() == object.ModeSymlink:
		return label + ColorMagenta(e.Name)
	case e.EffectiveMode() == object.ModeExecutable:
		return label + ColorGreen(e.Name+"*")
	default:
		return label + e.Name
	}
}
