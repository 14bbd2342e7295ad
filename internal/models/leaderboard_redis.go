package models

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/jackhua-dev/GitQuest-Server/pkg/db"
)

// RedisLeaderboard Redis排行榜管理器。
// 按仓库累计提交造成的伤害，用于展示"哪个仓库打怪最凶"
type RedisLeaderboard struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisLeaderboard 创建Redis排行榜管理器
func NewRedisLeaderboard() *RedisLeaderboard {
	return &RedisLeaderboard{
		client: db.RedisClient,
		ctx:    context.Background(),
	}
}

// 排行榜Redis键名
const (
	LeaderboardRepoDamageKey = "leaderboard:repo_damage"
)

// RepoDamageEntry 仓库伤害排行榜条目
type RepoDamageEntry struct {
	Repo   string  `json:"repo"`
	Damage float64 `json:"damage"`
	Rank   int     `json:"rank"`
}

// AddRepoDamage 累加仓库造成的伤害
func (rl *RedisLeaderboard) AddRepoDamage(repo string, damage int) error {
	return rl.client.ZIncrBy(rl.ctx, LeaderboardRepoDamageKey, float64(damage), repo).Err()
}

// GetRepoLeaderboard 获取仓库伤害排行榜（按伤害降序）
func (rl *RedisLeaderboard) GetRepoLeaderboard(limit int) ([]RepoDamageEntry, error) {
	members, err := rl.client.ZRevRangeWithScores(rl.ctx, LeaderboardRepoDamageKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]RepoDamageEntry, 0, len(members))
	for i, member := range members {
		repo, ok := member.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, RepoDamageEntry{
			Repo:   repo,
			Damage: member.Score,
			Rank:   i + 1,
		})
	}

	return entries, nil
}

// Reset 清空排行榜
func (rl *RedisLeaderboard) Reset() error {
	return rl.client.Del(rl.ctx, LeaderboardRepoDamageKey).Err()
}
