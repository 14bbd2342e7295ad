// feed.go

package gateway

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/jackhua-dev/GitQuest-Server/internal/game"
)

const (
	// 写入超时时间
	writeWait = 10 * time.Second

	// 读取超时时间
	pongWait = 60 * time.Second

	// 发送 ping 的间隔时间
	pingPeriod = (pongWait * 9) / 10

	// 最大消息大小
	maxMessageSize = 4 * 1024 // 4KB，客户端只会发送控制帧
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// 允许所有跨域请求
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// FeedMessage 推送消息结构
type FeedMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// FeedClient 一个已连接的推送客户端
type FeedClient struct {
	ID   string
	Send chan []byte
}

// FeedHub 战斗推送中心。每条处理完的战斗结果都会广播给所有
// 已连接的WebSocket客户端
type FeedHub struct {
	clients   map[string]*FeedClient
	mutex     sync.RWMutex
	broadcast chan []byte
	shutdown  chan struct{}
	stopOnce  sync.Once
}

// NewFeedHub 创建战斗推送中心
func NewFeedHub() *FeedHub {
	return &FeedHub{
		clients:   make(map[string]*FeedClient),
		broadcast: make(chan []byte, 64),
		shutdown:  make(chan struct{}),
	}
}

// Run 运行广播循环
func (h *FeedHub) Run() {
	for {
		select {
		case data := <-h.broadcast:
			h.mutex.RLock()
			for _, client := range h.clients {
				select {
				case client.Send <- data:
					// 消息已发送到通道
				default:
					// 通道已满，跳过该客户端
				}
			}
			h.mutex.RUnlock()
		case <-h.shutdown:
			return
		}
	}
}

// Stop 停止广播循环并断开所有客户端
func (h *FeedHub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)

		h.mutex.Lock()
		for id, client := range h.clients {
			close(client.Send)
			delete(h.clients, id)
		}
		h.mutex.Unlock()
	})
}

// PublishCombat 发布一条战斗结果，实现game.CombatPublisher
func (h *FeedHub) PublishCombat(result *game.CombatResult) {
	msg := FeedMessage{
		Type:    "combat_result",
		Payload: result,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("序列化战斗结果失败: %v", err)
		return
	}

	select {
	case h.broadcast <- data:
		// 已进入广播队列
	default:
		// 队列已满，丢弃最旧的一条
		select {
		case <-h.broadcast:
		default:
		}
		h.broadcast <- data
	}
}

// HandleConnection 处理WebSocket连接
func (h *FeedHub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	// 升级HTTP连接为WebSocket
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket升级失败: %v", err)
		return
	}

	client := &FeedClient{
		ID:   uuid.New().String(),
		Send: make(chan []byte, 64),
	}

	h.mutex.Lock()
	h.clients[client.ID] = client
	h.mutex.Unlock()

	log.Printf("推送客户端 %s 已连接", client.ID)

	// 启动读写协程
	go h.readPump(conn, client)
	go h.writePump(conn, client)
}

// readPump 从WebSocket读取数据，客户端消息只用于保活
func (h *FeedHub) readPump(conn *websocket.Conn, client *FeedClient) {
	defer func() {
		h.removeClient(client)
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket错误: %v", err)
			}
			break
		}
	}
}

// writePump 向WebSocket写入数据
func (h *FeedHub) writePump(conn *websocket.Conn, client *FeedClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// 通道已关闭
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// removeClient 移除客户端
func (h *FeedHub) removeClient(client *FeedClient) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client.ID]; !ok {
		return
	}

	close(client.Send)
	delete(h.clients, client.ID)

	log.Printf("推送客户端 %s 已断开", client.ID)
}
