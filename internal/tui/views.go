package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aam-007/syswiz/internal/runner"
	"github.com/aam-007/syswiz/internal/tui/components"
	"github.com/aam-007/syswiz/internal/tui/icons"
	"github.com/aam-007/syswiz/internal/tui/styles"
	"github.com/aam-007/syswiz/internal/tui/theme"
)

const logo = `
 ::::::::  :::   :::  ::::::::                :::       ::: ::::::::::: :::::::::
:+:    :+: :+:   :+: :+:    :+:               :+:       :+:     :+:          :+:
+:+         +:+ +:+  +:+                      +:+       +:+     +:+         +:+
+#++:++#++   +#++:   +#++:++#++ +#++:++#++:++ +#+  +:+  +#+     +#+        +#+
       +#+    +#+           +#+               +#+ +#+#+ +#+     +#+       +#+
#+#    #+#    #+#    #+#    #+#                #+#+# #+#+#      #+#      #+#
 ########     ###     ########                  ###   ###   ########### #########
`

func (m *Model) viewSplash() string {
	s := m.styles
	info := m.opts.Info

	var b strings.Builder
	b.WriteString(s.Title.Render(strings.TrimRight(logo, "\n")))
	b.WriteString("\n\n")
	b.WriteString(s.Subtitle.Render(fmt.Sprintf("syswiz %s | a transparent, guided wizard for Fedora package management", m.opts.Version)))
	b.WriteString("\n\n")
	if info != nil {
		b.WriteString(s.Normal.Render(fmt.Sprintf("OS:  %s %s", info.OS, info.OSVersion)))
		b.WriteString("\n")
		b.WriteString(s.Normal.Render(fmt.Sprintf("DNF: %s (%s)", info.DNFVersion, info.DNFPath)))
		b.WriteString("\n")
		user := "user"
		if info.Root {
			user = "root"
		}
		b.WriteString(s.Normal.Render("Running as: " + user))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.Help.Render("enter: continue • esc/q: quit"))
	return s.Panel.Render(b.String())
}

func (m *Model) viewMenu() string {
	s := m.styles
	ic := icons.Current()

	var b strings.Builder
	b.WriteString(m.breadcrumb())
	b.WriteString("\n\n")

	if m.atRoot() {
		for i, cat := range m.opts.Catalog {
			b.WriteString(m.menuLine(i == m.rootCur, ic.Category+" "+cat.Title))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(s.Help.Render("↑/↓: move • enter: open • esc/q: quit"))
		return b.String()
	}

	for i, action := range m.currentCategory().Actions {
		label := fmt.Sprintf("%s %s  %s", icons.TierIcon(action.Tier()), action.Title,
			s.Dim.Render(action.Tier().String()))
		b.WriteString(m.menuLine(i == m.actionCur, label))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.Help.Render("↑/↓: move • enter: select • esc: back"))
	return b.String()
}

func (m *Model) menuLine(selected bool, label string) string {
	if selected {
		return m.styles.Cursor.Render("> ") + m.styles.Selected.Render(label)
	}
	return "  " + m.styles.Normal.Render(label)
}

func (m *Model) viewInput() string {
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Title.Render("Input required: " + m.pending.Title))
	b.WriteString("\n\n")
	b.WriteString(s.Normal.Render(m.input.prompt))
	b.WriteString("\n\n")
	b.WriteString(m.input.view())
	b.WriteString("\n")
	if m.inputErr != "" {
		b.WriteString("\n")
		b.WriteString(s.Error.Render(icons.Current().Warning + " " + m.inputErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.Help.Render("enter: continue • esc: back"))
	return s.Panel.Render(b.String())
}

func (m *Model) viewConfirm() string {
	s := m.styles
	in := m.intent
	tier := in.Tier

	var b strings.Builder
	b.WriteString(components.RenderTierBadge(tier))
	b.WriteString("  ")
	b.WriteString(s.Title.Render(in.Action.Title))
	b.WriteString("\n\n")
	b.WriteString(s.Normal.Render(in.Action.Description))
	b.WriteString("\n\n")
	b.WriteString(styles.TierBanner(theme.Current, tier).Render(tier.PromptFraming()))
	b.WriteString("\n\n")
	b.WriteString(s.Subtitle.Render("This exact command will run:"))
	b.WriteString("\n")
	b.WriteString(s.CodeBlock.Render("$ " + in.Preview()))
	b.WriteString("\n\n")

	yes := s.ButtonInactive.Render("Proceed")
	no := s.ButtonInactive.Render("Cancel")
	if m.confirmYes {
		yes = s.ButtonActive.Render("Proceed")
	} else {
		no = s.ButtonActive.Render("Cancel")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, no, "  ", yes))
	b.WriteString("\n\n")
	b.WriteString(s.Help.Render("y: proceed • n/esc: cancel • tab: switch • enter: apply"))
	return s.Panel.Render(b.String())
}

func (m *Model) viewRunning() string {
	s := m.styles

	var b strings.Builder
	b.WriteString(m.spin.view())
	b.WriteString(s.Title.Render(" Running: " + m.intent.Action.Title))
	b.WriteString("\n")
	b.WriteString(s.CodeBlock.Render("$ " + m.intent.Preview()))
	b.WriteString("\n\n")
	b.WriteString(m.outputWindow())
	b.WriteString("\n")
	b.WriteString(s.Help.Render("executing, please wait (cannot be cancelled)"))
	return b.String()
}

func (m *Model) outputWindow() string {
	lines := m.lines
	if len(lines) > maxVisibleOutput {
		lines = lines[len(lines)-maxVisibleOutput:]
	}
	return m.styles.Dim.Render(strings.Join(lines, "\n"))
}

func (m *Model) viewDone() string {
	s := m.styles
	ic := icons.Current()

	var b strings.Builder
	b.WriteString(s.CodeBlock.Render("$ " + m.intent.Preview()))
	b.WriteString("\n\n")
	b.WriteString(m.outputWindow())
	b.WriteString("\n\n")

	switch {
	case m.execErr != nil:
		b.WriteString(s.Error.Render(fmt.Sprintf("%s ERROR: %v", ic.Failed, m.execErr)))
	case m.result == nil:
		b.WriteString(s.Error.Render(ic.Failed + " ERROR: no result"))
	case m.result.Outcome == runner.OutcomeSuccess:
		b.WriteString(s.Success.Render(ic.Success + " SUCCESS: operation completed."))
	case m.result.Outcome == runner.OutcomeKnownNonzero:
		b.WriteString(s.Warning.Render(fmt.Sprintf("%s NOTE: %s (exit code %d)",
			ic.Warning, m.result.Message, m.result.ExitCode)))
	default:
		b.WriteString(s.Error.Render(fmt.Sprintf("%s FAILURE: process exited with code %d",
			ic.Failed, m.result.ExitCode)))
	}

	b.WriteString("\n\n")
	b.WriteString(s.Help.Render("enter/esc: back to menu"))
	return b.String()
}
