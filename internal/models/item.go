// item.go

package models

import (
	"fmt"
	"math/rand"
)

// ItemRarity 物品稀有度
type ItemRarity string

const (
	// RarityCommon 普通
	RarityCommon ItemRarity = "common"
	// RarityRare 稀有
	RarityRare ItemRarity = "rare"
	// RarityLegendary 传说
	RarityLegendary ItemRarity = "legendary"
)

// ItemSource 物品来源
type ItemSource string

const (
	// SourceMobDrop 怪物掉落
	SourceMobDrop ItemSource = "mob_drop"
	// SourceMergeRequest 合并请求奖励
	SourceMergeRequest ItemSource = "mr_approval"
)

// ItemType 物品类型
type ItemType string

const (
	// ItemWeapon 武器
	ItemWeapon ItemType = "weapon"
	// ItemArmor 护甲
	ItemArmor ItemType = "armor"
	// ItemConsumable 消耗品
	ItemConsumable ItemType = "consumable"
)

// Item 物品模型，创建后不可变，获取时转移进角色背包
type Item struct {
	Name        string     `json:"name"`
	Type        ItemType   `json:"type"`
	Rarity      ItemRarity `json:"rarity"`
	Source      ItemSource `json:"source"`
	Power       int        `json:"power"`
	Description string     `json:"description"`
}

// RarityWeight 稀有度权重条目
type RarityWeight struct {
	Rarity ItemRarity
	Weight int
}

// 掉落物稀有度权重
var dropRarityWeights = []RarityWeight{
	{RarityCommon, 70},
	{RarityRare, 25},
	{RarityLegendary, 5},
}

// 合并请求奖励稀有度权重，只产出稀有及以上
var mrRarityWeights = []RarityWeight{
	{RarityRare, 70},
	{RarityLegendary, 30},
}

var itemTypes = []ItemType{ItemWeapon, ItemArmor, ItemConsumable}

// 掉落物基础名称表
var dropNames = map[ItemType][]string{
	ItemWeapon:     {"Rusty Sword", "Wooden Staff", "Short Bow", "Iron Dagger"},
	ItemArmor:      {"Leather Cap", "Cloth Armor", "Wooden Shield", "Iron Boots"},
	ItemConsumable: {"Health Potion", "Mana Potion", "Scroll of Knowledge"},
}

// 合并请求奖励的名称词缀和基础名称表
var mrPrefixes = []string{"Legendary", "Epic", "Rare", "Magical", "Enchanted"}

var mrNames = map[ItemType][]string{
	ItemWeapon:     {"Sword", "Axe", "Staff", "Bow", "Dagger"},
	ItemArmor:      {"Helmet", "Chestplate", "Boots", "Shield", "Gauntlets"},
	ItemConsumable: {"Potion", "Elixir", "Scroll", "Tome", "Amulet"},
}

// RollRarity 按权重掷出一个稀有度
func RollRarity(rng *rand.Rand, weights []RarityWeight) ItemRarity {
	total := 0
	for _, w := range weights {
		total += w.Weight
	}
	roll := rng.Intn(total)
	for _, w := range weights {
		roll -= w.Weight
		if roll < 0 {
			return w.Rarity
		}
	}
	return weights[len(weights)-1].Rarity
}

// DropRarityWeights 返回掉落物稀有度权重表的副本
func DropRarityWeights() []RarityWeight {
	weights := make([]RarityWeight, len(dropRarityWeights))
	copy(weights, dropRarityWeights)
	return weights
}

// NewDropItem 生成一件战斗掉落物品，威力随角色等级提升
func NewDropItem(rng *rand.Rand, level int) Item {
	itemType := itemTypes[rng.Intn(len(itemTypes))]
	names := dropNames[itemType]

	return Item{
		Name:        names[rng.Intn(len(names))],
		Type:        itemType,
		Rarity:      RollRarity(rng, dropRarityWeights),
		Source:      SourceMobDrop,
		Power:       rng.Intn(10) + 1 + level,
		Description: fmt.Sprintf("A %s found after battle", itemType),
	}
}

// NewMergeRequestItem 根据合并请求标题生成一件特殊物品
func NewMergeRequestItem(rng *rand.Rand, level int, mrTitle string) Item {
	itemType := itemTypes[rng.Intn(len(itemTypes))]
	prefix := mrPrefixes[rng.Intn(len(mrPrefixes))]
	names := mrNames[itemType]

	// 标题按字符截断到50个，不能切在多字节字符中间
	title := mrTitle
	if runes := []rune(title); len(runes) > 50 {
		title = string(runes[:50])
	}

	return Item{
		Name:        fmt.Sprintf("%s %s", prefix, names[rng.Intn(len(names))]),
		Type:        itemType,
		Rarity:      RollRarity(rng, mrRarityWeights),
		Source:      SourceMergeRequest,
		Power:       rng.Intn(16) + 5 + level*2,
		Description: fmt.Sprintf("Forged from the approval: %s", title),
	}
}
