package roll20_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/cory-johannsen/powerconv/internal/power"
	"github.com/cory-johannsen/powerconv/internal/roll20"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func swordStrike() *power.Power {
	return &power.Power{
		Template: "basic-attack",
		Name:     "Sword Strike",
		Type:     "at-will",
		Action:   "standard",
		Attacks: []power.Attack{
			{Attack: "+7", Vs: "AC", Damage: "1d8+4"},
		},
	}
}

func TestSegments_SwordStrike(t *testing.T) {
	segs, err := roll20.Segments(swordStrike())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"&{template:basicattack}",
		"{{atwill=1}}",
		"{{name=Sword Strike}}",
		"", "",
		"{{action=Standard ♦}}",
		"", "", "", "", "",
		"{{attack=+7 vs **AC**}} {{damage=1d8+4 damage}} ",
	}, segs)

	assert.Equal(t,
		"&{template:basicattack} {{atwill=1}} {{name=Sword Strike}} {{action=Standard ♦}} {{attack=+7 vs **AC**}} {{damage=1d8+4 damage}} ",
		roll20.Join(segs))
}

func TestSegments_FullRecordOrder(t *testing.T) {
	p := &power.Power{
		Template: "daily-power",
		Name:     "Blade Storm",
		Type:     "daily",
		Level:    "15",
		Keywords: []string{"Martial", "Weapon"},
		Action:   "imm-interrupt",
		Range:    "Close burst 1",
		Target:   "Each enemy",
		Special:  "Once per day",
		Trigger:  "An enemy moves adjacent",
		Effect:   "You shift 1",
	}
	segs, err := roll20.Segments(p)
	require.NoError(t, err)
	assert.Equal(t,
		"&{template:dailypower} {{daily=1}} {{name=Blade Storm}} {{level=15}} {{keywords=Martial, Weapon}} "+
			"{{action=Imm Interrupt ♦}} {{range=Close burst 1}} {{target=Each enemy}} {{special=Once per day}} "+
			"{{trigger=An enemy moves adjacent}} {{effect=You shift 1}}",
		roll20.Join(segs))
}

func TestSegments_UnknownTypeAndAction_Omitted(t *testing.T) {
	p := &power.Power{Template: "x", Name: "Odd", Type: "utility", Action: "opportunity"}
	segs, err := roll20.Segments(p)
	require.NoError(t, err)
	assert.Equal(t, "&{template:x} {{name=Odd}}", roll20.Join(segs))
}

func TestSegments_DamageOnlyAttack(t *testing.T) {
	p := &power.Power{Name: "Burn", Attacks: []power.Attack{{Damage: "2d6"}}}
	segs, err := roll20.Segments(p)
	require.NoError(t, err)
	last := segs[len(segs)-1]
	assert.Equal(t, " {{damage=2d6 damage}} ", last)
	assert.NotContains(t, last, "attack=")
	assert.NotContains(t, last, "critical=")
}

func TestSegments_SecondaryAttackLabel(t *testing.T) {
	p := &power.Power{Name: "Twin", Attacks: []power.Attack{
		{Attack: "+7", Vs: "AC"},
		{Attack: "+5", Vs: "AC", Critical: "2d8"},
		{Attack: "+3", Vs: "Will", Damage: "1d4"},
	}}
	segs, err := roll20.Segments(p)
	require.NoError(t, err)
	require.Len(t, segs, 14)
	assert.Equal(t, "{{attack=+7 vs **AC**}}  ", segs[11])
	assert.Equal(t, "{{secondaryattack=+5 vs **AC**}}  {{secondarycritical=2d8 damage}}", segs[12])
	assert.Equal(t, "{{tertiaryattack=+3 vs **Will**}} {{tertiarydamage=1d4 damage}} ", segs[13])
}

func TestSegments_AttackWithoutVs(t *testing.T) {
	p := &power.Power{Name: "Bolt", Attacks: []power.Attack{{Attack: "+4"}}}
	segs, err := roll20.Segments(p)
	require.NoError(t, err)
	assert.Equal(t, "{{attack=+4 vs ****}}  ", segs[len(segs)-1])
}

func TestSegments_TooManyAttacks(t *testing.T) {
	p := &power.Power{Name: "Flurry", Attacks: make([]power.Attack, roll20.MaxAttacks+1)}
	_, err := roll20.Segments(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, roll20.ErrTooManyAttacks))
}

func TestClause(t *testing.T) {
	assert.Equal(t, "", roll20.Clause("range", ""))
	assert.Equal(t, "{{range=Ranged 10}}", roll20.Clause("range", "Ranged 10"))
}

func TestJoin_DropsEmpty(t *testing.T) {
	assert.Equal(t, "a b", roll20.Join([]string{"", "a", "", "", "b", ""}))
	assert.Equal(t, "", roll20.Join(nil))
}

func genPower(t *rapid.T) *power.Power {
	text := rapid.StringMatching(`[A-Za-z0-9 +]{0,12}`)
	attacks := rapid.SliceOfN(rapid.Custom(func(t *rapid.T) power.Attack {
		return power.Attack{
			Attack:   text.Draw(t, "attack"),
			Vs:       text.Draw(t, "vs"),
			Damage:   text.Draw(t, "damage"),
			Critical: text.Draw(t, "critical"),
		}
	}), 0, roll20.MaxAttacks).Draw(t, "attacks")
	return &power.Power{
		Template: rapid.StringMatching(`[a-z]{1,8}(-[a-z]{1,8}){0,2}`).Draw(t, "template"),
		Name:     rapid.StringMatching(`[A-Za-z][A-Za-z ]{0,15}`).Draw(t, "name"),
		Type:     rapid.SampledFrom([]string{"at-will", "encounter", "daily", "utility", ""}).Draw(t, "type"),
		Level:    text.Draw(t, "level"),
		Keywords: rapid.SliceOfN(rapid.StringMatching(`[A-Z][a-z]{1,8}`), 0, 3).Draw(t, "keywords"),
		Action:   rapid.SampledFrom([]string{"free", "minor", "standard", "move", "imm-interrupt", "imm-reaction", "bonus"}).Draw(t, "action"),
		Range:    text.Draw(t, "range"),
		Target:   text.Draw(t, "target"),
		Special:  text.Draw(t, "special"),
		Trigger:  text.Draw(t, "trigger"),
		Effect:   text.Draw(t, "effect"),
		Attacks:  attacks,
	}
}

func TestSegments_TypeClauseMatchesTable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genPower(t)
		segs, err := roll20.Segments(p)
		require.NoError(t, err)
		typ, known := power.ParseType(p.Type)
		if known {
			assert.Equal(t, "{{"+typ.Token()+"=1}}", segs[1])
		} else {
			assert.Empty(t, segs[1])
		}
	})
}

func TestSegments_NameClauseExactlyOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genPower(t)
		segs, err := roll20.Segments(p)
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(roll20.Join(segs), "{{name="+p.Name+"}}"))
	})
}

func TestSegments_ShapeAndDeterminism(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genPower(t)
		first, err := roll20.Segments(p)
		require.NoError(t, err)
		second, err := roll20.Segments(p)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, first, 11+len(p.Attacks))
		assert.True(t, strings.HasPrefix(first[0], "&{template:"))
		assert.NotContains(t, first[0], "-")
	})
}
