// schema.go

package db

// 统一的数据库表结构定义

// CreateAllTablesSQL 创建所有表的SQL语句
const CreateAllTablesSQL = `
-- 存档表：每个槽位一条记录，存档内容为版本化JSON文档
CREATE TABLE IF NOT EXISTS game_saves (
    slot VARCHAR(50) PRIMARY KEY,
    schema_version INT NOT NULL,
    data JSONB NOT NULL,
    saved_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);

-- 同步批次记录表：记录每次活动同步的结果摘要
CREATE TABLE IF NOT EXISTS sync_batches (
    id SERIAL PRIMARY KEY,
    slot VARCHAR(50) NOT NULL,
    events_total INT NOT NULL DEFAULT 0,
    events_processed INT NOT NULL DEFAULT 0,
    events_skipped INT NOT NULL DEFAULT 0,
    events_invalid INT NOT NULL DEFAULT 0,
    synced_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);

-- 创建索引以提高查询性能
CREATE INDEX IF NOT EXISTS idx_sync_batches_slot ON sync_batches(slot);
`

// InitAllTables 初始化所有数据库表
func InitAllTables() error {
	_, err := DB.Exec(CreateAllTablesSQL)
	if err != nil {
		return err
	}
	return nil
}
