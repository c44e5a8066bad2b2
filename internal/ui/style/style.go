// Package style provides the brand colours and icons shared by the pretty
// logger and the terminal renderer.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Mist   = lipgloss.Color("#D0D5DD")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	// Skeleton marks an icon whose asset is still loading.
	Skeleton = "░"
	// Separator is drawn before the composite icon of an expanded match.
	Separator = "│"
	// Icon marks a resolved inline preview in text renderings.
	Icon = "◆"
)

