// combat.go

package game

import (
	"errors"
	"math/rand"

	"github.com/jackhua-dev/GitQuest-Server/internal/models"
)

// ErrNoActiveMob 伤害结算时没有存活的怪物。
// 击败怪物后会同步刷出下一只，出现该错误说明刷怪逻辑有bug，
// 属于不变量被破坏，不应被静默吞掉
var ErrNoActiveMob = errors.New("没有存活的怪物")

// 战斗常量
const (
	// DamageBase 每次提交的基础伤害
	DamageBase = 10
	// DamagePerLevel 每级附加伤害
	DamagePerLevel = 2
	// XPPerMobLevel 击败怪物获得的经验 = 怪物等级 * XPPerMobLevel
	XPPerMobLevel = 25
	// LootDropChance 击败怪物掉落物品的概率（百分比）
	LootDropChance = 30
)

// CombatResult 一次伤害结算的结果，供调用方展示用，结算本身不做任何IO
type CombatResult struct {
	Damage         int          `json:"damage"`
	MobName        string       `json:"mob_name"`
	MobLevel       int          `json:"mob_level"`
	MobHPRemaining int          `json:"mob_hp_remaining"`
	MobMaxHP       int          `json:"mob_max_hp"`
	MobDefeated    bool         `json:"mob_defeated"`
	XPGained       int          `json:"xp_gained"`
	LevelsGained   int          `json:"levels_gained"`
	Loot           *models.Item `json:"loot,omitempty"`
}

// Resolver 战斗结算器。所有随机量都来自注入的随机源，
// 固定种子即可让战斗完全可复现
type Resolver struct {
	rng *rand.Rand
}

// NewResolver 创建战斗结算器
func NewResolver(rng *rand.Rand) *Resolver {
	return &Resolver{rng: rng}
}

// CommitDamage 计算角色当前等级下每次提交造成的伤害，公式固定不随机
func CommitDamage(level int) int {
	return DamageBase + level*DamagePerLevel
}

// ApplyCommitDamage 将一次提交作为伤害结算到当前怪物上。
// 怪物被击败时发放经验、掷骰掉落，并按角色（可能刚升级后的）等级
// 同步刷出下一只怪物，保证结算结束时始终有一只满血存活的怪物
func (r *Resolver) ApplyCommitDamage(state *models.GameState) (*CombatResult, error) {
	if !state.Mob.IsAlive() {
		return nil, ErrNoActiveMob
	}

	character := state.Character
	mob := state.Mob
	damage := CommitDamage(character.Level)
	defeated := mob.TakeDamage(damage)

	result := &CombatResult{
		Damage:         damage,
		MobName:        mob.Name,
		MobLevel:       mob.Level,
		MobHPRemaining: mob.CurrentHP,
		MobMaxHP:       mob.MaxHP,
		MobDefeated:    defeated,
	}

	if !defeated {
		return result, nil
	}

	character.Stats.MobsDefeated++

	result.XPGained = mob.Level * XPPerMobLevel
	result.LevelsGained = character.GainXP(result.XPGained)

	if r.rng.Intn(100) < LootDropChance {
		item := models.NewDropItem(r.rng, character.Level)
		character.TakeItem(item)
		result.Loot = &item
	}

	state.Mob = models.SpawnMobForLevel(character.Level)

	return result, nil
}
