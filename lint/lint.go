// Package lint defines lint descriptors and diagnostic levels.
package lint

// Level is the effective severity of a lint at an emission point.
type Level uint8

const (
	// LevelAllow suppresses the lint entirely.
	LevelAllow Level = iota
	// LevelWarn reports the lint without failing the run.
	LevelWarn
	// LevelDeny reports the lint and fails the run.
	LevelDeny
	// LevelForbid is LevelDeny that attributes cannot downgrade.
	LevelForbid
)

func (l Level) String() string {
	switch l {
	case LevelAllow:
		return "allow"
	case LevelWarn:
		return "warn"
	case LevelDeny:
		return "deny"
	case LevelForbid:
		return "forbid"
	}
	return "unknown"
}

// ParseLevel converts a config string into a Level.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "allow":
		return LevelAllow, true
	case "warn":
		return LevelWarn, true
	case "deny":
		return LevelDeny, true
	case "forbid":
		return LevelForbid, true
	}
	return LevelAllow, false
}

// MacroReport is a lint's policy for code produced by macro expansion.
type MacroReport uint8

const (
	// MacroReportNo never reports the lint inside macro expansions.
	// Users usually cannot fix expanded code, so this is the default.
	MacroReportNo MacroReport = iota
	// MacroReportAll reports the lint regardless of provenance.
	MacroReportAll
)

// Lint describes one registered lint. Values are created once by the
// plugin, registered through the lint pass, and shared by pointer: the
// host keys its level tables by the pointer identity.
type Lint struct {
	// Name is the unique, user-facing lint identifier, written in
	// lower_snake_case like "static_name_case".
	Name string
	// Description is a short explanation shown in lint listings.
	Description string
	// DefaultLevel applies when no attribute or config overrides it.
	DefaultLevel Level
	// ReportInMacro is the macro-suppression policy.
	ReportInMacro MacroReport
}
