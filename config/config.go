// config.go

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config 服务器配置结构
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Game     GameConfig     `mapstructure:"game"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

// ServerConfig 服务器基本配置
type ServerConfig struct {
	GatewayPort int    `mapstructure:"gateway_port"`
	Debug       bool   `mapstructure:"debug"`
	LogLevel    string `mapstructure:"log_level"`
}

// GameConfig 游戏配置
type GameConfig struct {
	PlayerName      string `mapstructure:"player_name"`
	PrimaryLanguage string `mapstructure:"primary_language"`
	// RandomSeed 随机种子，0表示使用时间种子
	RandomSeed int64 `mapstructure:"random_seed"`
}

// StorageConfig 存档配置
type StorageConfig struct {
	// Backend 存档后端类型 (file, postgres)
	Backend  string `mapstructure:"backend"`
	SavePath string `mapstructure:"save_path"`
	// Slot 存档槽位名称，postgres后端使用
	Slot string `mapstructure:"slot"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig Redis配置
type RedisConfig struct {
	// Enabled 是否启用Redis排行榜
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

var (
	// GlobalConfig 全局配置实例
	GlobalConfig Config
)

// LoadConfig 从文件加载配置
func LoadConfig(configPath string) error {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("无法读取配置文件: %w", err)
	}

	if err := viper.Unmarshal(&GlobalConfig); err != nil {
		return fmt.Errorf("无法解析配置文件: %w", err)
	}

	applyDefaults(&GlobalConfig)
	return nil
}

// applyDefaults 填充缺省配置
func applyDefaults(cfg *Config) {
	if cfg.Server.GatewayPort == 0 {
		cfg.Server.GatewayPort = 8090
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "file"
	}
	if cfg.Storage.SavePath == "" {
		cfg.Storage.SavePath = "game_state.json"
	}
	if cfg.Storage.Slot == "" {
		cfg.Storage.Slot = "default"
	}
	if cfg.Game.PlayerName == "" {
		cfg.Game.PlayerName = "Brave Adventurer"
	}
}

// GetDSN 获取PostgreSQL连接字符串
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// GetRedisAddr 获取Redis连接地址
func (c *RedisConfig) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
