// main.go

package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackhua-dev/GitQuest-Server/config"
	"github.com/jackhua-dev/GitQuest-Server/internal/game"
	"github.com/jackhua-dev/GitQuest-Server/internal/gateway"
	"github.com/jackhua-dev/GitQuest-Server/internal/models"
	"github.com/jackhua-dev/GitQuest-Server/internal/storage"
	"github.com/jackhua-dev/GitQuest-Server/pkg/db"
)

func main() {
	// 解析命令行参数
	configPath := flag.String("config", "config/config.yaml", "配置文件路径")
	flag.Parse()

	// 加载配置
	if err := config.LoadConfig(*configPath); err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	cfg := &config.GlobalConfig

	// 创建存档后端
	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("初始化存档后端失败: %v", err)
	}
	if cfg.Storage.Backend == "postgres" {
		defer db.Close()
	}

	// 初始化Redis连接（可选，排行榜用）
	if cfg.Redis.Enabled {
		if err := db.InitRedis(); err != nil {
			log.Printf("初始化Redis失败，排行榜已禁用: %v", err)
		} else {
			defer db.CloseRedis()
		}
	}

	// 加载或创建游戏会话
	rng := game.NewRNG(cfg.Game.RandomSeed)
	session, err := game.LoadOrCreate(store, cfg.Game.PlayerName, cfg.Game.PrimaryLanguage, rng)
	if err != nil {
		log.Fatalf("初始化游戏会话失败: %v", err)
	}

	if db.RedisClient != nil {
		session.SetLeaderboard(models.NewRedisLeaderboard())
	}

	// 创建并启动网关
	gatewayServer := gateway.NewGateway(cfg, session)
	session.SetPublisher(gatewayServer.Feed())

	if err := gatewayServer.Start(); err != nil {
		log.Fatalf("启动网关失败: %v", err)
	}

	log.Println("服务器已启动")

	// 等待中断信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("接收到关闭信号，正在关闭服务器...")

	if err := session.Save(); err != nil {
		log.Printf("关闭前保存存档失败: %v", err)
	}

	if err := gatewayServer.Stop(); err != nil {
		log.Printf("关闭网关失败: %v", err)
	}

	log.Println("服务器已安全关闭")
}

// newStore 根据配置创建存档后端
func newStore(cfg *config.Config) (storage.SaveStore, error) {
	switch cfg.Storage.Backend {
	case "postgres":
		if err := db.InitPostgres(); err != nil {
			return nil, err
		}
		if err := db.InitAllTables(); err != nil {
			return nil, err
		}
		return storage.NewPostgresStore(cfg.Storage.Slot), nil
	default:
		return storage.NewFileStore(cfg.Storage.SavePath), nil
	}
}
