// state.go

package models

// GameState 单一存档槽位的完整游戏状态。
// 所有操作都显式接收该状态对象，不存在隐藏的全局游戏状态
type GameState struct {
	Character *Character `json:"character"`
	Mob       *Mob       `json:"mob"`
	LastSync  SyncState  `json:"last_sync"`
}

// NewGameState 创建全新游戏状态：1级角色加一只与之匹配的怪物
func NewGameState(playerName, primaryLanguage string) *GameState {
	character := NewCharacter(playerName, primaryLanguage)
	return &GameState{
		Character: character,
		Mob:       SpawnMobForLevel(character.Level),
	}
}
