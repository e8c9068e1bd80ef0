// Package risk classifies catalog actions into severity tiers.
package risk

// Tier is the severity classification of an action. Tiers are totally
// ordered: Info < Normal < High < Critical.
type Tier int

const (
	// TierInfo covers read-only lookups with no system effect.
	TierInfo Tier = iota
	// TierNormal covers routine modifications (install, upgrade, cache cleanup).
	TierNormal
	// TierHigh covers removals and repository configuration changes.
	TierHigh
	// TierCritical covers full resynchronization and transaction rollback.
	TierCritical
)

// String returns the lowercase tier name.
func (t Tier) String() string {
	switch t {
	case TierInfo:
		return "info"
	case TierNormal:
		return "normal"
	case TierHigh:
		return "high"
	case TierCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Label returns the uppercase display label.
func (t Tier) Label() string {
	switch t {
	case TierInfo:
		return "INFO"
	case TierNormal:
		return "NORMAL"
	case TierHigh:
		return "HIGH"
	case TierCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// DefaultDecline reports whether confirmation prompts for this tier must
// highlight "No" as the default choice.
func (t Tier) DefaultDecline() bool {
	return t >= TierHigh
}

// PromptFraming returns the warning copy shown above the command preview.
func (t Tier) PromptFraming() string {
	switch t {
	case TierInfo:
		return "This is a read-only query. Run it?"
	case TierNormal:
		return "This will modify the system."
	case TierHigh:
		return "WARNING: this changes installed software or repository configuration. Review the command carefully."
	case TierCritical:
		return "DANGER: this can downgrade or rewrite large parts of the system. Only proceed if you understand the consequences."
	default:
		return "This will modify the system."
	}
}

// tierByAction is the fixed action-id to tier mapping. Unlisted ids fall
// back to TierNormal so an unrecognized action is never treated as harmless.
var tierByAction = map[string]Tier{
	// Read-only lookups.
	"search":         TierInfo,
	"info":           TierInfo,
	"list-installed": TierInfo,
	"list-repos":     TierInfo,
	"check-update":   TierInfo,
	"check-broken":   TierInfo,
	"list-orphans":   TierInfo,

	// Routine modifications.
	"install":        TierNormal,
	"install-local":  TierNormal,
	"upgrade":        TierNormal,
	"reinstall":      TierNormal,
	"module-reset":   TierNormal,
	"clean-packages": TierNormal,
	"clean-all":      TierNormal,

	// Removals and repository changes.
	"remove":        TierHigh,
	"autoremove":    TierHigh,
	"enable-repo":   TierHigh,
	"disable-repo":  TierHigh,
	"enable-fusion": TierHigh,

	// System-wide resync and rollback.
	"distro-sync":      TierCritical,
	"history-rollback": TierCritical,
}

// Classify returns the tier for an action id. Unknown ids classify as
// TierNormal, failing toward caution rather than silence.
func Classify(actionID string) Tier {
	if t, ok := tierByAction[actionID]; ok {
		return t
	}
	return TierNormal
}
