// storage.go

package storage

import (
	"errors"
	"time"

	"github.com/jackhua-dev/GitQuest-Server/internal/models"
)

// SchemaVersion 当前存档格式版本。新增字段时递增并在Load中迁移
const SchemaVersion = 1

var (
	// ErrNotFound 存档不存在
	ErrNotFound = errors.New("存档不存在")
	// ErrCorrupt 存档损坏或格式版本不兼容
	ErrCorrupt = errors.New("存档损坏")
)

// SaveStore 存档存取接口。
// Save对调用方而言是原子的：保存中途崩溃不会破坏之前的有效存档。
// Load在存档缺失或损坏时分别返回ErrNotFound和ErrCorrupt，
// 由调用方决定是否初始化全新状态，存档层自身不编造缺省数据
type SaveStore interface {
	Save(state *models.GameState) error
	Load() (*models.GameState, error)
}

// saveRecord 落盘的存档记录布局
type saveRecord struct {
	SchemaVersion int               `json:"schema_version"`
	SavedAt       time.Time         `json:"saved_at"`
	Character     *models.Character `json:"character"`
	Mob           *models.Mob       `json:"mob"`
	LastSync      models.SyncState  `json:"last_sync"`
}

// newSaveRecord 将游戏状态打包成当前版本的存档记录
func newSaveRecord(state *models.GameState) *saveRecord {
	return &saveRecord{
		SchemaVersion: SchemaVersion,
		SavedAt:       time.Now().UTC(),
		Character:     state.Character,
		Mob:           state.Mob,
		LastSync:      state.LastSync,
	}
}

// toGameState 校验存档记录并还原游戏状态
func (r *saveRecord) toGameState() (*models.GameState, error) {
	if r.SchemaVersion != SchemaVersion {
		return nil, ErrCorrupt
	}
	if r.Character == nil {
		return nil, ErrCorrupt
	}
	return &models.GameState{
		Character: r.Character,
		Mob:       r.Mob,
		LastSync:  r.LastSync,
	}, nil
}
