// mob.go

package models

// MobArchetype 怪物原型，按解锁等级排列
type MobArchetype struct {
	Name     string `json:"name"`
	MinLevel int    `json:"min_level"`
	BaseHP   int    `json:"base_hp"`
}

// 怪物生命值随角色等级的加成
const mobHPPerLevel = 5

// mobTable 怪物原型表，按MinLevel升序排列
var mobTable = []MobArchetype{
	{Name: "Goblin", MinLevel: 1, BaseHP: 30},
	{Name: "Skeleton", MinLevel: 2, BaseHP: 45},
	{Name: "Orc", MinLevel: 3, BaseHP: 70},
	{Name: "Troll", MinLevel: 5, BaseHP: 110},
	{Name: "Dragon", MinLevel: 8, BaseHP: 180},
}

// Mob 敌对怪物
type Mob struct {
	Name      string `json:"name"`
	Level     int    `json:"level"`
	MaxHP     int    `json:"max_hp"`
	CurrentHP int    `json:"current_hp"`
}

// MobTable 返回怪物原型表的副本
func MobTable() []MobArchetype {
	table := make([]MobArchetype, len(mobTable))
	copy(table, mobTable)
	return table
}

// SpawnMobForLevel 根据角色等级生成新怪物。
// 选择MinLevel不超过角色等级的最高档原型（即最近解锁的一档），
// 生命值按 BaseHP + (角色等级-MinLevel)*5 加成。结果完全确定，不含随机量
func SpawnMobForLevel(level int) *Mob {
	if level < 1 {
		level = 1
	}

	archetype := mobTable[0]
	for _, a := range mobTable {
		if a.MinLevel <= level {
			archetype = a
		}
	}

	hp := archetype.BaseHP + (level-archetype.MinLevel)*mobHPPerLevel
	return &Mob{
		Name:      archetype.Name,
		Level:     archetype.MinLevel,
		MaxHP:     hp,
		CurrentHP: hp,
	}
}

// TakeDamage 对怪物造成伤害，生命值下限为0。返回怪物是否被击败
func (m *Mob) TakeDamage(damage int) bool {
	m.CurrentHP -= damage
	if m.CurrentHP < 0 {
		m.CurrentHP = 0
	}
	return m.CurrentHP == 0
}

// IsAlive 怪物是否存活
func (m *Mob) IsAlive() bool {
	return m != nil && m.CurrentHP > 0
}
