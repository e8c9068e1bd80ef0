// Package catalog defines the static table of guided dnf operations.
package catalog

import (
	"strings"

	"github.com/aam-007/syswiz/internal/risk"
	"github.com/aam-007/syswiz/internal/validate"
)

// Placeholder marks the argv position where validated user input is
// substituted. At most one placeholder appears per action, always last.
const Placeholder = "{}"

// Action is one selectable operation. Instances are built once at startup
// and never mutated.
type Action struct {
	// ID is the stable action identifier used for risk classification
	// and journaling.
	ID string
	// Title is the short menu label.
	Title string
	// Description is the plain-language explanation shown before confirmation.
	Description string
	// Argv is the command template as an ordered token list. Tokens are
	// passed to the process verbatim; no shell ever re-parses them.
	Argv []string
	// Input declares the kind of free-text input the action needs, or
	// validate.KindNone.
	Input validate.Kind
	// Prompt is the input prompt text when Input != KindNone.
	Prompt string
	// Privileged marks actions that must run under elevated privileges.
	Privileged bool
	// KnownExitCodes maps action-specific nonzero exit codes to the
	// message reported for them (e.g. dnf check-update exits 100 when
	// updates exist).
	KnownExitCodes map[int]string
}

// NeedsInput reports whether the action requires user-supplied input.
func (a Action) NeedsInput() bool {
	return a.Input != validate.KindNone
}

// Tier returns the action's risk classification.
func (a Action) Tier() risk.Tier {
	return risk.Classify(a.ID)
}

// Category groups related actions under a menu heading.
type Category struct {
	Title   string
	Actions []Action
}

// Options parameterizes catalog construction with values probed at startup.
type Options struct {
	// ReleaseVer is the Fedora release number, used to resolve repository
	// release package URLs without shell substitution.
	ReleaseVer string
}

// Catalog returns the full static menu tree.
func Catalog(opts Options) []Category {
	rel := opts.ReleaseVer
	if rel == "" {
		rel = "rawhide"
	}

	return []Category{
		{
			Title: "System Health",
			Actions: []Action{
				{
					ID:          "upgrade",
					Title:       "Update System",
					Description: "Downloads and installs updates for all packages. Safe standard procedure.",
					Argv:        []string{"dnf", "upgrade", "--refresh"},
					Privileged:  true,
				},
				{
					ID:          "check-update",
					Title:       "Check for Updates",
					Description: "Lists available updates without installing anything.",
					Argv:        []string{"dnf", "check-update"},
					KnownExitCodes: map[int]string{
						100: "updates are available",
					},
				},
				{
					ID:          "clean-packages",
					Title:       "Clean Package Cache",
					Description: "Removes cached packages and metadata to free disk space.",
					Argv:        []string{"dnf", "clean", "packages"},
					Privileged:  true,
				},
				{
					ID:          "check-broken",
					Title:       "Check Broken Dependencies",
					Description: "Scans for packages with missing requirements.",
					Argv:        []string{"dnf", "repoquery", "--unsatisfied"},
				},
				{
					ID:          "list-orphans",
					Title:       "List Orphaned Packages",
					Description: "Lists packages installed as dependencies that are no longer needed.",
					Argv:        []string{"dnf", "autoremove", "--assumeno"},
					Privileged:  true,
					KnownExitCodes: map[int]string{
						1: "unneeded packages are present",
					},
				},
			},
		},
		{
			Title: "Install / Remove",
			Actions: []Action{
				{
					ID:          "search",
					Title:       "Search Packages",
					Description: "Search repositories for a package by keyword.",
					Argv:        []string{"dnf", "search", Placeholder},
					Input:       validate.KindPackage,
					Prompt:      "Enter keyword to search:",
				},
				{
					ID:          "install",
					Title:       "Install Package",
					Description: "Installs a specific package.",
					Argv:        []string{"dnf", "install", Placeholder},
					Input:       validate.KindPackage,
					Prompt:      "Enter package name:",
					Privileged:  true,
				},
				{
					ID:          "install-local",
					Title:       "Install Local RPM",
					Description: "Installs a downloaded .rpm file from disk.",
					Argv:        []string{"dnf", "install", Placeholder},
					Input:       validate.KindPath,
					Prompt:      "Enter path to the .rpm file:",
					Privileged:  true,
				},
				{
					ID:          "remove",
					Title:       "Remove Package",
					Description: "Removes a package. Check dependencies before confirming.",
					Argv:        []string{"dnf", "remove", Placeholder},
					Input:       validate.KindPackage,
					Prompt:      "Enter package name to remove:",
					Privileged:  true,
				},
				{
					ID:          "reinstall",
					Title:       "Reinstall Package",
					Description: "Re-downloads and installs the current version of a package.",
					Argv:        []string{"dnf", "reinstall", Placeholder},
					Input:       validate.KindPackage,
					Prompt:      "Enter package name:",
					Privileged:  true,
				},
				{
					ID:          "autoremove",
					Title:       "Remove Orphaned Packages",
					Description: "Removes packages installed as dependencies that nothing requires anymore.",
					Argv:        []string{"dnf", "autoremove"},
					Privileged:  true,
				},
			},
		},
		{
			Title: "Discovery",
			Actions: []Action{
				{
					ID:          "list-installed",
					Title:       "Show Installed Packages",
					Description: "Lists all currently installed RPMs.",
					Argv:        []string{"dnf", "list", "installed"},
				},
				{
					ID:          "info",
					Title:       "Package Information",
					Description: "Show details about a specific package.",
					Argv:        []string{"dnf", "info", Placeholder},
					Input:       validate.KindPackage,
					Prompt:      "Enter package name:",
				},
			},
		},
		{
			Title: "Modules",
			Actions: []Action{
				{
					ID:          "module-reset",
					Title:       "Reset Module Stream",
					Description: "Resets a module to its default stream selection.",
					Argv:        []string{"dnf", "module", "reset", Placeholder},
					Input:       validate.KindModule,
					Prompt:      "Enter module name (e.g. nodejs:20):",
					Privileged:  true,
				},
			},
		},
		{
			Title: "Repositories",
			Actions: []Action{
				{
					ID:          "list-repos",
					Title:       "List Enabled Repos",
					Description: "Shows which software sources are currently active.",
					Argv:        []string{"dnf", "repolist"},
				},
				{
					ID:          "enable-repo",
					Title:       "Enable Repository",
					Description: "Enables a configured repository by id.",
					Argv:        []string{"dnf", "config-manager", "--set-enabled", Placeholder},
					Input:       validate.KindID,
					Prompt:      "Enter repository id:",
					Privileged:  true,
				},
				{
					ID:          "disable-repo",
					Title:       "Disable Repository",
					Description: "Disables a configured repository by id.",
					Argv:        []string{"dnf", "config-manager", "--set-disabled", Placeholder},
					Input:       validate.KindID,
					Prompt:      "Enter repository id:",
					Privileged:  true,
				},
				{
					ID:          "enable-fusion",
					Title:       "Enable RPM Fusion (Free/Nonfree)",
					Description: "Enables the standard third-party repos for codecs and drivers.",
					Argv: []string{
						"dnf", "install",
						"https://mirrors.rpmfusion.org/free/fedora/rpmfusion-free-release-" + rel + ".noarch.rpm",
						"https://mirrors.rpmfusion.org/nonfree/fedora/rpmfusion-nonfree-release-" + rel + ".noarch.rpm",
					},
					Privileged: true,
				},
			},
		},
		{
			Title: "Power / Risky",
			Actions: []Action{
				{
					ID:          "distro-sync",
					Title:       "Distro Sync",
					Description: "Synchronizes installed packages to the latest available versions. Can downgrade packages.",
					Argv:        []string{"dnf", "distro-sync"},
					Privileged:  true,
				},
				{
					ID:          "history-rollback",
					Title:       "Rollback (Last Transaction)",
					Description: "Undoes the very last DNF action. Use with extreme caution.",
					Argv:        []string{"dnf", "history", "undo", "last"},
					Privileged:  true,
				},
				{
					ID:          "clean-all",
					Title:       "Clean All Caches",
					Description: "Removes all cached metadata and packages. Forces full redownload next time.",
					Argv:        []string{"dnf", "clean", "all"},
					Privileged:  true,
				},
			},
		},
	}
}

// Lookup finds an action by id across all categories.
func Lookup(cats []Category, id string) (Action, bool) {
	for _, c := range cats {
		for _, a := range c.Actions {
			if a.ID == id {
				return a, true
			}
		}
	}
	return Action{}, false
}

// HasPlaceholder reports whether the action's template contains the
// input placeholder.
func (a Action) HasPlaceholder() bool {
	for _, tok := range a.Argv {
		if strings.Contains(tok, Placeholder) {
			return true
		}
	}
	return false
}
