// main.go

package main

import (
	"flag"
	"log"

	"github.com/jackhua-dev/GitQuest-Server/config"
	"github.com/jackhua-dev/GitQuest-Server/internal/models"
	"github.com/jackhua-dev/GitQuest-Server/pkg/db"
)

// 数据库管理工具：初始化/清理存档表

func main() {
	// 解析命令行参数
	configPath := flag.String("config", "config/config.yaml", "配置文件路径")
	action := flag.String("action", "init", "操作类型 (init, reset, status)")
	flag.Parse()

	// 加载配置
	if err := config.LoadConfig(*configPath); err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化数据库连接
	if err := db.InitPostgres(); err != nil {
		log.Fatalf("初始化PostgreSQL失败: %v", err)
	}
	defer db.Close()

	switch *action {
	case "init":
		if err := db.InitAllTables(); err != nil {
			log.Fatalf("初始化数据库表失败: %v", err)
		}
		log.Println("✓ 数据库表初始化完成")
	case "reset":
		if err := resetTables(); err != nil {
			log.Fatalf("清空数据库表失败: %v", err)
		}
		log.Println("✓ 数据库表已清空")
		resetLeaderboard()
	case "status":
		if err := printStatus(); err != nil {
			log.Fatalf("查询数据库状态失败: %v", err)
		}
	default:
		log.Fatalf("未知的操作类型: %s", *action)
	}
}

// resetLeaderboard 清空Redis排行榜，未启用Redis时跳过
func resetLeaderboard() {
	if !config.GlobalConfig.Redis.Enabled {
		return
	}

	if err := db.InitRedis(); err != nil {
		log.Printf("初始化Redis失败，跳过排行榜清空: %v", err)
		return
	}
	defer db.CloseRedis()

	if err := models.NewRedisLeaderboard().Reset(); err != nil {
		log.Printf("清空排行榜失败: %v", err)
		return
	}
	log.Println("✓ 排行榜已清空")
}

// resetTables 清空存档和同步记录
func resetTables() error {
	if _, err := db.DB.Exec(`TRUNCATE TABLE game_saves, sync_batches`); err != nil {
		return err
	}
	return nil
}

// printStatus 打印各槽位存档状态
func printStatus() error {
	rows, err := db.DB.Query(`SELECT slot, schema_version, saved_at FROM game_saves ORDER BY slot`)
	if err != nil {
		return err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var slot string
		var version int
		var savedAt string
		if err := rows.Scan(&slot, &version, &savedAt); err != nil {
			return err
		}
		log.Printf("槽位 %s: 版本 %d, 保存于 %s", slot, version, savedAt)
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if count == 0 {
		log.Println("暂无存档")
	}
	return nil
}
