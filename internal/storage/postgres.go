// postgres.go

package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jackhua-dev/GitQuest-Server/internal/models"
	"github.com/jackhua-dev/GitQuest-Server/pkg/db"
)

// PostgresStore 基于PostgreSQL的存档后端。
// 每个槽位一行，存档内容作为版本化JSON文档写入game_saves表，
// UPSERT天然保证替换的原子性
type PostgresStore struct {
	slot string
}

// NewPostgresStore 创建PostgreSQL存档后端
func NewPostgresStore(slot string) *PostgresStore {
	return &PostgresStore{slot: slot}
}

// Save 保存游戏状态到数据库
func (s *PostgresStore) Save(state *models.GameState) error {
	record := newSaveRecord(state)

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("序列化存档失败: %w", err)
	}

	query := `
		INSERT INTO game_saves (slot, schema_version, data, saved_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (slot)
		DO UPDATE SET schema_version = EXCLUDED.schema_version,
		              data = EXCLUDED.data,
		              saved_at = EXCLUDED.saved_at
	`

	if _, err := db.DB.Exec(query, s.slot, record.SchemaVersion, data, record.SavedAt); err != nil {
		return fmt.Errorf("写入存档失败: %w", err)
	}

	return nil
}

// Load 从数据库加载游戏状态
func (s *PostgresStore) Load() (*models.GameState, error) {
	query := `SELECT data FROM game_saves WHERE slot = $1`

	var data []byte
	err := db.DB.QueryRow(query, s.slot).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询存档失败: %w", err)
	}

	var record saveRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	return record.toGameState()
}

// RecordSyncBatch 记录一次同步批次的结果摘要
func (s *PostgresStore) RecordSyncBatch(total, processed, skipped, invalid int) error {
	query := `
		INSERT INTO sync_batches (slot, events_total, events_processed, events_skipped, events_invalid)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := db.DB.Exec(query, s.slot, total, processed, skipped, invalid); err != nil {
		return fmt.Errorf("记录同步批次失败: %w", err)
	}

	return nil
}
