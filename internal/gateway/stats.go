// stats.go

package gateway

import (
	"log"
	"net/http"
	"strconv"

	"github.com/jackhua-dev/GitQuest-Server/internal/models"
	"github.com/jackhua-dev/GitQuest-Server/pkg/db"
)

// StatsHandler 排行榜处理器
type StatsHandler struct {
	redisLeaderboard *models.RedisLeaderboard
	useRedis         bool
}

// NewStatsHandler 创建排行榜处理器
func NewStatsHandler() *StatsHandler {
	useRedis := db.RedisClient != nil
	var redisLeaderboard *models.RedisLeaderboard

	if useRedis {
		redisLeaderboard = models.NewRedisLeaderboard()
	}

	return &StatsHandler{
		redisLeaderboard: redisLeaderboard,
		useRedis:         useRedis,
	}
}

// RegisterHandlers 注册HTTP处理器
func (h *StatsHandler) RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/stats/leaderboard", h.handleLeaderboard)
}

// handleLeaderboard 处理仓库伤害排行榜查询
func (h *StatsHandler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendErrorResponse(w, "仅支持GET方法", http.StatusMethodNotAllowed)
		return
	}

	if !h.useRedis {
		sendSuccessResponse(w, "排行榜未启用", []models.RepoDamageEntry{})
		return
	}

	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	entries, err := h.redisLeaderboard.GetRepoLeaderboard(limit)
	if err != nil {
		log.Printf("查询排行榜失败: %v", err)
		sendErrorResponse(w, "查询排行榜失败", http.StatusInternalServerError)
		return
	}

	sendSuccessResponse(w, "查询成功", entries)
}
