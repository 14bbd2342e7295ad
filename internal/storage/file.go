// file.go

package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackhua-dev/GitQuest-Server/internal/models"
)

// FileStore 基于单个JSON文件的存档后端。
// 写入采用"写临时文件再替换"策略，保证崩溃时旧存档完好
type FileStore struct {
	path string
}

// NewFileStore 创建文件存档后端
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save 保存游戏状态到文件
func (s *FileStore) Save(state *models.GameState) error {
	record := newSaveRecord(state)

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化存档失败: %w", err)
	}

	// 临时文件必须和目标文件在同一目录，否则rename不保证原子
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".save-*.tmp")
	if err != nil {
		return fmt.Errorf("创建临时存档文件失败: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("写入临时存档文件失败: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("刷新临时存档文件失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("关闭临时存档文件失败: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("替换存档文件失败: %w", err)
	}

	return nil
}

// Load 从文件加载游戏状态
func (s *FileStore) Load() (*models.GameState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("读取存档文件失败: %w", err)
	}

	var record saveRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	return record.toGameState()
}
