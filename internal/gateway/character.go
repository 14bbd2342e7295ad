// character.go

package gateway

import (
	"net/http"

	"github.com/jackhua-dev/GitQuest-Server/internal/game"
	"github.com/jackhua-dev/GitQuest-Server/internal/models"
)

// CharacterHandler 角色查询处理器，全部为只读接口
type CharacterHandler struct {
	session *game.Session
}

// NewCharacterHandler 创建角色查询处理器
func NewCharacterHandler(session *game.Session) *CharacterHandler {
	return &CharacterHandler{session: session}
}

// RegisterHandlers 注册HTTP处理器
func (h *CharacterHandler) RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/character", h.handleCharacterSheet)
	mux.HandleFunc("/character/enemy", h.handleCurrentEnemy)
	mux.HandleFunc("/character/stats", h.handleStatistics)
	mux.HandleFunc("/character/inventory", h.handleInventory)
	mux.HandleFunc("/mobs", h.handleMobTable)
}

// handleCharacterSheet 处理角色面板查询
func (h *CharacterHandler) handleCharacterSheet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendErrorResponse(w, "仅支持GET方法", http.StatusMethodNotAllowed)
		return
	}

	sendSuccessResponse(w, "查询成功", h.session.GetCharacterSheet())
}

// handleCurrentEnemy 处理当前怪物查询
func (h *CharacterHandler) handleCurrentEnemy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendErrorResponse(w, "仅支持GET方法", http.StatusMethodNotAllowed)
		return
	}

	sendSuccessResponse(w, "查询成功", h.session.GetCurrentEnemy())
}

// handleStatistics 处理统计数据查询
func (h *CharacterHandler) handleStatistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendErrorResponse(w, "仅支持GET方法", http.StatusMethodNotAllowed)
		return
	}

	sendSuccessResponse(w, "查询成功", h.session.GetStatistics())
}

// handleInventory 处理背包查询
func (h *CharacterHandler) handleInventory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendErrorResponse(w, "仅支持GET方法", http.StatusMethodNotAllowed)
		return
	}

	sendSuccessResponse(w, "查询成功", h.session.GetInventory())
}

// handleMobTable 处理怪物图鉴查询，返回全部怪物原型及解锁等级
func (h *CharacterHandler) handleMobTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendErrorResponse(w, "仅支持GET方法", http.StatusMethodNotAllowed)
		return
	}

	sendSuccessResponse(w, "查询成功", models.MobTable())
}
