// Package icon provides a multi-variant rendering engine for UI symbols and feedback indicators.
package icon

import (
	"github.com/cadence-dl/cadence/key"
	"github.com/spf13/viper"
)

// Visual variant identifiers supported for icon rendering.
const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// Icon identifies a single UI symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Warning
	Progress
	Note
)

// iconDef encapsulates the visual representations of a single UI symbol across all supported variants.
type iconDef struct {
	emoji string
	nerd  string
	plain string
}

var icons = map[Icon]iconDef{
	Success:  {emoji: "✅", nerd: "", plain: "+"},
	Fail:     {emoji: "❌", nerd: "", plain: "x"},
	Warning:  {emoji: "⚠️", nerd: "", plain: "!"},
	Progress: {emoji: "⏳", nerd: "", plain: "*"},
	Note:     {emoji: "📝", nerd: "", plain: ">"},
}

// Get returns the rendered string for a specified Icon identifier based on the global icons variant configuration.
func Get(i Icon) string {
	d := icons[i]
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return d.plain
	}
}
