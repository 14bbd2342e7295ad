// character.go

package models

// CharacterClass 角色职业
type CharacterClass string

// CharacterRace 角色种族
type CharacterRace string

const (
	// FallbackClass 未知语言时的缺省职业
	FallbackClass CharacterClass = "Adventurer"
	// FallbackRace 未知语言时的缺省种族
	FallbackRace CharacterRace = "Human"
)

// 角色成长常量
const (
	// BaseMaxHP 1级角色的最大生命值
	BaseMaxHP = 100
	// MaxHPPerLevel 每级提升的最大生命值
	MaxHPPerLevel = 10
	// XPPerLevelStep 升级所需经验 = 当前等级 * XPPerLevelStep
	XPPerLevelStep = 100
)

// languageClasses 编程语言到职业的映射表
var languageClasses = map[string]CharacterClass{
	"Python":     "Wizard",
	"JavaScript": "Rogue",
	"TypeScript": "Rogue",
	"Java":       "Paladin",
	"C++":        "Warrior",
	"C":          "Warrior",
	"Go":         "Ranger",
	"Rust":       "Blacksmith",
	"Ruby":       "Bard",
	"PHP":        "Necromancer",
	"C#":         "Cleric",
	"Swift":      "Monk",
	"Kotlin":     "Samurai",
}

// languageRaces 编程语言到种族的映射表
var languageRaces = map[string]CharacterRace{
	"Python":     "Human",
	"JavaScript": "Halfling",
	"TypeScript": "Halfling",
	"Java":       "Dwarf",
	"C++":        "Orc",
	"C":          "Orc",
	"Go":         "Elf",
	"Rust":       "Dwarf",
	"Ruby":       "Gnome",
	"PHP":        "Undead",
	"C#":         "Human",
	"Swift":      "Elf",
	"Kotlin":     "Half-Elf",
}

// Statistics 角色统计数据
type Statistics struct {
	TotalCommits          int `json:"total_commits"`
	TotalDamageDealt      int `json:"total_damage_dealt"`
	MobsDefeated          int `json:"mobs_defeated"`
	MergeRequestsApproved int `json:"merge_requests_approved"`
	ItemsCollected        int `json:"items_collected"`
}

// Character 玩家角色模型
type Character struct {
	Name            string         `json:"name"`
	PrimaryLanguage string         `json:"primary_language"`
	Class           CharacterClass `json:"class"`
	Race            CharacterRace  `json:"race"`
	Level           int            `json:"level"`
	XP              int            `json:"xp"`
	MaxHP           int            `json:"max_hp"`
	CurrentHP       int            `json:"current_hp"`
	Inventory       []Item         `json:"inventory"`
	Stats           Statistics     `json:"stats"`
}

// NewCharacter 创建1级新角色，根据主要语言确定职业和种族
func NewCharacter(name, primaryLanguage string) *Character {
	class, race := Classify(primaryLanguage)
	return &Character{
		Name:            name,
		PrimaryLanguage: primaryLanguage,
		Class:           class,
		Race:            race,
		Level:           1,
		XP:              0,
		MaxHP:           MaxHPForLevel(1),
		CurrentHP:       MaxHPForLevel(1),
		Inventory:       []Item{},
	}
}

// Classify 根据编程语言确定职业和种族。未知语言返回缺省值，不会失败
func Classify(language string) (CharacterClass, CharacterRace) {
	class, ok := languageClasses[language]
	if !ok {
		class = FallbackClass
	}
	race, ok := languageRaces[language]
	if !ok {
		race = FallbackRace
	}
	return class, race
}

// ClassifyStats 根据语言使用统计确定主要语言及其职业和种族
func ClassifyStats(languageStats map[string]int) (string, CharacterClass, CharacterRace) {
	primary := ""
	best := -1
	for lang, count := range languageStats {
		// 并列时取字典序较小者，保证结果确定
		if count > best || (count == best && lang < primary) {
			primary = lang
			best = count
		}
	}
	class, race := Classify(primary)
	return primary, class, race
}

// MaxHPForLevel 计算指定等级的最大生命值，随等级严格递增
func MaxHPForLevel(level int) int {
	return BaseMaxHP + (level-1)*MaxHPPerLevel
}

// XPForNextLevel 升到下一级所需的经验值
func (c *Character) XPForNextLevel() int {
	return c.Level * XPPerLevelStep
}

// GainXP 增加经验值并处理升级，返回本次获得的等级数。
// 一次加入大量经验时会连续升级，每次升级重算最大生命值并恢复满血
func (c *Character) GainXP(amount int) int {
	if amount <= 0 {
		return 0
	}

	c.XP += amount
	levels := 0
	for c.XP >= c.XPForNextLevel() {
		c.XP -= c.XPForNextLevel()
		c.Level++
		c.MaxHP = MaxHPForLevel(c.Level)
		c.CurrentHP = c.MaxHP
		levels++
	}
	return levels
}

// TakeItem 将物品放入背包并更新收集计数
func (c *Character) TakeItem(item Item) {
	c.Inventory = append(c.Inventory, item)
	c.Stats.ItemsCollected++
}
