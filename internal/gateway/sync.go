// sync.go

package gateway

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackhua-dev/GitQuest-Server/internal/game"
	"github.com/jackhua-dev/GitQuest-Server/internal/models"
)

// SyncHandler 活动同步处理器。接收外部同步方推送的归一化活动
// 事件批次，是游戏状态唯一的写入入口
type SyncHandler struct {
	session *game.Session
}

// NewSyncHandler 创建活动同步处理器
func NewSyncHandler(session *game.Session) *SyncHandler {
	return &SyncHandler{session: session}
}

// RegisterHandlers 注册HTTP处理器
func (h *SyncHandler) RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/sync/events", h.handleSyncEvents)
}

// SyncRequest 同步请求：按时间升序排列的活动事件批次
type SyncRequest struct {
	Events []models.ActivityEvent `json:"events"`
}

// handleSyncEvents 处理活动事件批次
func (h *SyncHandler) handleSyncEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendErrorResponse(w, "仅支持POST方法", http.StatusMethodNotAllowed)
		return
	}

	var req SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, "无效的请求格式", http.StatusBadRequest)
		return
	}

	report, err := h.session.SyncBatch(req.Events)
	if err != nil {
		log.Printf("同步活动事件失败: %v", err)
		sendErrorResponse(w, "同步活动事件失败", http.StatusInternalServerError)
		return
	}

	sendSuccessResponse(w, "同步完成", report)
}
