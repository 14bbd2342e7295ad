package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyKnownLanguages(t *testing.T) {
	cases := []struct {
		language string
		class    CharacterClass
		race     CharacterRace
	}{
		{"Python", "Wizard", "Human"},
		{"JavaScript", "Rogue", "Halfling"},
		{"TypeScript", "Rogue", "Halfling"},
		{"Java", "Paladin", "Dwarf"},
		{"C++", "Warrior", "Orc"},
		{"C", "Warrior", "Orc"},
		{"Go", "Ranger", "Elf"},
		{"Rust", "Blacksmith", "Dwarf"},
		{"Ruby", "Bard", "Gnome"},
		{"PHP", "Necromancer", "Undead"},
		{"C#", "Cleric", "Human"},
		{"Swift", "Monk", "Elf"},
		{"Kotlin", "Samurai", "Half-Elf"},
	}

	for _, tc := range cases {
		t.Run(tc.language, func(t *testing.T) {
			class, race := Classify(tc.language)
			assert.Equal(t, tc.class, class)
			assert.Equal(t, tc.race, race)
		})
	}
}

func TestClassifyUnknownLanguageFallsBack(t *testing.T) {
	class, race := Classify("COBOL")
	assert.Equal(t, FallbackClass, class)
	assert.Equal(t, FallbackRace, race)

	class, race = Classify("")
	assert.Equal(t, FallbackClass, class)
	assert.Equal(t, FallbackRace, race)
}

func TestClassifyStatsPicksDominantLanguage(t *testing.T) {
	primary, class, race := ClassifyStats(map[string]int{
		"Python":     65,
		"JavaScript": 20,
		"Go":         15,
	})
	assert.Equal(t, "Python", primary)
	assert.Equal(t, CharacterClass("Wizard"), class)
	assert.Equal(t, CharacterRace("Human"), race)
}

func TestMaxHPForLevelStrictlyIncreasing(t *testing.T) {
	for level := 1; level < 50; level++ {
		assert.Greater(t, MaxHPForLevel(level+1), MaxHPForLevel(level))
	}
	assert.Equal(t, 100, MaxHPForLevel(1))
}

func TestNewCharacterStartsAtLevelOne(t *testing.T) {
	c := NewCharacter("Brave Adventurer", "Go")

	assert.Equal(t, 1, c.Level)
	assert.Equal(t, 0, c.XP)
	assert.Equal(t, 100, c.MaxHP)
	assert.Equal(t, 100, c.CurrentHP)
	assert.Equal(t, CharacterClass("Ranger"), c.Class)
	assert.Empty(t, c.Inventory)
}

func TestGainXPSingleLevelUpHealsFully(t *testing.T) {
	c := NewCharacter("x", "Go")
	c.CurrentHP = 40

	levels := c.GainXP(100)

	require.Equal(t, 1, levels)
	assert.Equal(t, 2, c.Level)
	assert.Equal(t, 0, c.XP)
	assert.Equal(t, MaxHPForLevel(2), c.MaxHP)
	assert.Equal(t, c.MaxHP, c.CurrentHP)
}

func TestGainXPMultipleLevelUpsFromOneGrant(t *testing.T) {
	c := NewCharacter("x", "Go")

	// 升到3级需要 100 + 200 经验
	levels := c.GainXP(300)

	require.Equal(t, 2, levels)
	assert.Equal(t, 3, c.Level)
	assert.Equal(t, 0, c.XP)
	assert.Equal(t, MaxHPForLevel(3), c.MaxHP)
	assert.Equal(t, c.MaxHP, c.CurrentHP)
}

func TestGainXPAssociativity(t *testing.T) {
	// 一次性加入和分多次加入等量经验，结果必须一致
	one := NewCharacter("a", "Go")
	many := NewCharacter("b", "Go")

	one.GainXP(475)
	for i := 0; i < 19; i++ {
		many.GainXP(25)
	}

	assert.Equal(t, one.Level, many.Level)
	assert.Equal(t, one.XP, many.XP)
	assert.Equal(t, one.MaxHP, many.MaxHP)
}

func TestGainXPIgnoresNonPositiveAmounts(t *testing.T) {
	c := NewCharacter("x", "Go")

	assert.Equal(t, 0, c.GainXP(0))
	assert.Equal(t, 0, c.GainXP(-50))
	assert.Equal(t, 1, c.Level)
	assert.Equal(t, 0, c.XP)
}

func TestTakeItemKeepsAcquisitionOrder(t *testing.T) {
	c := NewCharacter("x", "Go")

	first := Item{Name: "Rusty Sword", Type: ItemWeapon, Rarity: RarityCommon, Source: SourceMobDrop}
	second := Item{Name: "Epic Staff", Type: ItemWeapon, Rarity: RarityLegendary, Source: SourceMergeRequest}

	c.TakeItem(first)
	c.TakeItem(second)

	require.Len(t, c.Inventory, 2)
	assert.Equal(t, "Rusty Sword", c.Inventory[0].Name)
	assert.Equal(t, "Epic Staff", c.Inventory[1].Name)
	assert.Equal(t, 2, c.Stats.ItemsCollected)
}
