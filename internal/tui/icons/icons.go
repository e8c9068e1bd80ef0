// Package icons provides icon constants with Nerd Font and ASCII fallbacks.
package icons

import (
	"os"
	"strings"

	"github.com/aam-007/syswiz/internal/risk"
)

// IconSet defines the icons used by the TUI.
type IconSet struct {
	Category string
	Action   string
	Back     string

	Info     string
	Normal   string
	High     string
	Critical string

	Success string
	Failed  string
	Running string
	Warning string
}

var useNerdFonts = detectNerdFonts()

// detectNerdFonts checks environment hints for Nerd Font support.
func detectNerdFonts() bool {
	if v := os.Getenv("SYSWIZ_ICONS"); v != "" {
		v = strings.ToLower(v)
		return v == "nerd" || v == "1" || v == "true"
	}
	termProgram := os.Getenv("TERM_PROGRAM")
	for _, t := range []string{"kitty", "wezterm", "alacritty", "iTerm.app"} {
		if strings.Contains(termProgram, t) {
			return true
		}
	}
	// Default to ASCII for safety.
	return false
}

// SetNerdFonts explicitly enables or disables Nerd Font icons.
func SetNerdFonts(enabled bool) {
	useNerdFonts = enabled
}

func nerd() *IconSet {
	return &IconSet{
		Category: "",
		Action:   "",
		Back:     "",
		Info:     "",
		Normal:   "",
		High:     "",
		Critical: "",
		Success:  "",
		Failed:   "",
		Running:  "",
		Warning:  "",
	}
}

func ascii() *IconSet {
	return &IconSet{
		Category: "[/]",
		Action:   ">",
		Back:     "..",
		Info:     "[i]",
		Normal:   "[*]",
		High:     "[! ]",
		Critical: "[!!]",
		Success:  "[OK]",
		Failed:   "[XX]",
		Running:  "[>>]",
		Warning:  "[!]",
	}
}

// Current returns the active icon set.
func Current() *IconSet {
	if useNerdFonts {
		return nerd()
	}
	return ascii()
}

// TierIcon returns the icon for a risk tier.
func TierIcon(tier risk.Tier) string {
	ic := Current()
	switch tier {
	case risk.TierInfo:
		return ic.Info
	case risk.TierNormal:
		return ic.Normal
	case risk.TierHigh:
		return ic.High
	case risk.TierCritical:
		return ic.Critical
	default:
		return ic.Normal
	}
}
