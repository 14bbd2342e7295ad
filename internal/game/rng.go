// rng.go

package game

import (
	"math/rand"
	"time"
)

// NewRNG 创建游戏随机源。seed为0时使用时间种子，
// 测试中注入固定种子即可复现全部掉落结果
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
