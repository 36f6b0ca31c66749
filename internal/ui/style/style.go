// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
	Circle  = "○"
)

// Node styles used by the graph renderer.
var (
	// Entry renders entry-point nodes.
	Entry = lipgloss.NewStyle().Foreground(Iris).Bold(true)
	// Source renders TypeScript source nodes.
	Source = lipgloss.NewStyle().Foreground(Slate)
	// Resource renders template and stylesheet nodes.
	Resource = lipgloss.NewStyle().Foreground(Green)
)
