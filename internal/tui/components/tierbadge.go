// Package components provides small reusable TUI renderers.
package components

import (
	"github.com/aam-007/syswiz/internal/risk"
	"github.com/aam-007/syswiz/internal/tui/icons"
	"github.com/aam-007/syswiz/internal/tui/styles"
	"github.com/aam-007/syswiz/internal/tui/theme"
)

// TierBadge renders a risk tier as a colored badge.
type TierBadge struct {
	Tier     risk.Tier
	ShowIcon bool
}

// NewTierBadge creates a badge for the given tier.
func NewTierBadge(tier risk.Tier) *TierBadge {
	return &TierBadge{Tier: tier, ShowIcon: true}
}

// WithIcon enables or disables the tier icon.
func (b *TierBadge) WithIcon(show bool) *TierBadge {
	b.ShowIcon = show
	return b
}

// Render renders the badge with the active theme.
func (b *TierBadge) Render() string {
	label := b.Tier.Label()
	if b.ShowIcon {
		label = icons.TierIcon(b.Tier) + " " + label
	}
	return styles.TierBanner(theme.Current, b.Tier).Render(label)
}

// RenderTierBadge is a convenience wrapper.
func RenderTierBadge(tier risk.Tier) string {
	return NewTierBadge(tier).Render()
}
