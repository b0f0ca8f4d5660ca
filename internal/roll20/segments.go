// Package roll20 renders power records as Roll20 roll-template macros.
package roll20

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/powerconv/internal/power"
)

// ActionMarker follows the action label in the action clause.
const ActionMarker = "♦"

// ErrTooManyAttacks is returned when a power lists more attacks than there
// are attack labels.
var ErrTooManyAttacks = errors.New("roll20: too many attacks")

// attackLabels prefixes the keys of the attack at the matching index.
var attackLabels = [...]string{"", "secondary", "tertiary"}

// MaxAttacks is the number of attacks a single macro can carry.
const MaxAttacks = len(attackLabels)

// Clause renders "{{key=value}}", or "" when value is empty.
func Clause(key, value string) string {
	if value == "" {
		return ""
	}
	return "{{" + key + "=" + value + "}}"
}

// Header renders the template header for a hyphenated template name.
func Header(template string) string {
	return "&{template:" + strings.ReplaceAll(template, "-", "") + "}"
}

// Segments maps p onto the ordered list of macro segments. Clauses with no
// value are returned as empty strings so every power yields the same
// 11 leading positions followed by one segment per attack.
//
// Precondition: p must be non-nil.
// Postcondition: returns the same segments for the same p, or wraps
// ErrTooManyAttacks when len(p.Attacks) > MaxAttacks.
func Segments(p *power.Power) ([]string, error) {
	if len(p.Attacks) > MaxAttacks {
		return nil, fmt.Errorf("%w: %d listed, at most %d supported", ErrTooManyAttacks, len(p.Attacks), MaxAttacks)
	}

	typeClause := ""
	if t, ok := power.ParseType(p.Type); ok {
		typeClause = Clause(t.Token(), "1")
	}
	actionClause := ""
	if a, ok := power.ParseAction(p.Action); ok {
		actionClause = Clause("action", a.Label()+" "+ActionMarker)
	}

	segments := make([]string, 0, 11+len(p.Attacks))
	segments = append(segments,
		Header(p.Template),
		typeClause,
		"{{name="+p.Name+"}}",
		Clause("level", p.Level),
		Clause("keywords", strings.Join(p.Keywords, ", ")),
		actionClause,
		Clause("range", p.Range),
		Clause("target", p.Target),
		Clause("special", p.Special),
		Clause("trigger", p.Trigger),
		Clause("effect", p.Effect),
	)
	for i, a := range p.Attacks {
		segments = append(segments, attackSegment(attackLabels[i], a))
	}
	return segments, nil
}

// attackSegment joins the attack roll, damage and critical sub-clauses with a
// single space. Empty sub-clauses stay in the join.
func attackSegment(label string, a power.Attack) string {
	roll := ""
	if a.Attack != "" {
		roll = "{{" + label + "attack=" + a.Attack + " vs **" + a.Vs + "**}}"
	}
	parts := []string{
		roll,
		damageClause(label+"damage", a.Damage),
		damageClause(label+"critical", a.Critical),
	}
	return strings.Join(parts, " ")
}

func damageClause(key, value string) string {
	if value == "" {
		return ""
	}
	return Clause(key, value+" damage")
}

// Join drops empty segments and joins the rest with a single space.
func Join(segments []string) string {
	kept := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, " ")
}
