// session.go

package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"

	"github.com/jackhua-dev/GitQuest-Server/internal/models"
	"github.com/jackhua-dev/GitQuest-Server/internal/storage"
)

// CombatPublisher 战斗结果发布接口，网关的WebSocket推送实现它
type CombatPublisher interface {
	PublishCombat(result *CombatResult)
}

// SyncRecorder 同步批次记录接口，PostgreSQL存档后端实现它
type SyncRecorder interface {
	RecordSyncBatch(total, processed, skipped, invalid int) error
}

// Session 单个存档槽位的游戏会话。
// 所有对角色和怪物的修改都在会话的互斥范围内串行执行，
// 一个槽位一把锁，不需要更细粒度的锁
type Session struct {
	mu        sync.Mutex
	state     *models.GameState
	store     storage.SaveStore
	processor *Processor

	// 可选协作方
	leaderboard *models.RedisLeaderboard
	publisher   CombatPublisher
}

// EventStatus 批次内单个事件的处理状态
type EventStatus string

const (
	// EventProcessed 已处理
	EventProcessed EventStatus = "processed"
	// EventSkipped 已被水位线过滤（重复事件）
	EventSkipped EventStatus = "skipped"
	// EventInvalid 格式非法被跳过
	EventInvalid EventStatus = "invalid"
)

// EventOutcome 批次内单个事件的处理结果
type EventOutcome struct {
	Index  int          `json:"index"`
	Status EventStatus  `json:"status"`
	Result *EventResult `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// SyncReport 一次同步批次的汇总结果
type SyncReport struct {
	Total     int            `json:"total"`
	Processed int            `json:"processed"`
	Skipped   int            `json:"skipped"`
	Invalid   int            `json:"invalid"`
	Outcomes  []EventOutcome `json:"outcomes"`
}

// NewSession 用已有状态创建会话
func NewSession(state *models.GameState, store storage.SaveStore, rng *rand.Rand) *Session {
	return &Session{
		state:     state,
		store:     store,
		processor: NewProcessor(rng),
	}
}

// LoadOrCreate 从存档加载会话。存档缺失或损坏时回退到初始化
// 全新角色（损坏的存档会被下一次保存覆盖）
func LoadOrCreate(store storage.SaveStore, playerName, primaryLanguage string, rng *rand.Rand) (*Session, error) {
	state, err := store.Load()
	switch {
	case err == nil:
		log.Printf("已加载角色: %s (等级 %d)", state.Character.Name, state.Character.Level)
	case errors.Is(err, storage.ErrNotFound):
		log.Println("未找到存档，创建新角色")
		state = models.NewGameState(playerName, primaryLanguage)
	case errors.Is(err, storage.ErrCorrupt):
		log.Printf("存档损坏，创建新角色: %v", err)
		state = models.NewGameState(playerName, primaryLanguage)
	default:
		return nil, fmt.Errorf("加载存档失败: %w", err)
	}

	// 旧版存档可能没有怪物，补一只
	if !state.Mob.IsAlive() {
		state.Mob = models.SpawnMobForLevel(state.Character.Level)
	}

	return NewSession(state, store, rng), nil
}

// SetLeaderboard 挂接Redis排行榜（可选）
func (s *Session) SetLeaderboard(lb *models.RedisLeaderboard) {
	s.leaderboard = lb
}

// SetPublisher 挂接战斗结果发布方（可选）
func (s *Session) SetPublisher(p CombatPublisher) {
	s.publisher = p
}

// SyncBatch 处理一批有序活动事件并保存存档。
// 会话作为同步方持有水位线：批次内每个事件只和批次开始时的
// 水位线快照比较，同一秒内推送的多条不同提交不会互相遮蔽；
// 已处理事件的时间戳在批次结束时一并并入新水位线。
// 格式非法的事件记录警告后继续，一条坏记录不会中断整个批次。
// 同一批次内同一事件不得重复出现，这是对事件来源的契约要求
func (s *Session) SyncBatch(events []models.ActivityEvent) (*SyncReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := &SyncReport{
		Total:    len(events),
		Outcomes: make([]EventOutcome, 0, len(events)),
	}

	seen := s.state.LastSync
	advanced := s.state.LastSync

	for i := range events {
		event := &events[i]

		// 先校验格式：时间戳落后于水位线的坏记录也要报为非法而不是跳过
		if err := event.Validate(); err != nil {
			log.Printf("跳过非法事件 #%d: %v", i, err)
			report.Invalid++
			report.Outcomes = append(report.Outcomes, EventOutcome{
				Index:  i,
				Status: EventInvalid,
				Error:  err.Error(),
			})
			continue
		}

		if seen.Seen(event) {
			report.Skipped++
			report.Outcomes = append(report.Outcomes, EventOutcome{Index: i, Status: EventSkipped})
			continue
		}

		result, err := s.processor.ProcessEvent(s.state, event)
		if err != nil {
			// 格式已校验过，剩下的是不变量被破坏等致命错误，中止批次
			return nil, err
		}

		advanced.Advance(event)
		report.Processed++
		report.Outcomes = append(report.Outcomes, EventOutcome{
			Index:  i,
			Status: EventProcessed,
			Result: result,
		})

		s.publishResult(event, result)
	}

	s.state.LastSync = advanced

	if err := s.store.Save(s.state); err != nil {
		return nil, fmt.Errorf("保存存档失败: %w", err)
	}

	if recorder, ok := s.store.(SyncRecorder); ok {
		if err := recorder.RecordSyncBatch(report.Total, report.Processed, report.Skipped, report.Invalid); err != nil {
			log.Printf("记录同步批次失败: %v", err)
		}
	}

	return report, nil
}

// publishResult 把处理结果推送给可选协作方
func (s *Session) publishResult(event *models.ActivityEvent, result *EventResult) {
	if result.Combat == nil {
		return
	}

	if s.leaderboard != nil {
		if err := s.leaderboard.AddRepoDamage(event.Repo, result.Combat.Damage); err != nil {
			log.Printf("更新仓库伤害排行榜失败: %v", err)
		}
	}

	if s.publisher != nil {
		s.publisher.PublishCombat(result.Combat)
	}
}

// Save 保存当前状态
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Save(s.state)
}

// CharacterSheet 角色面板视图
type CharacterSheet struct {
	Name            string                `json:"name"`
	PrimaryLanguage string                `json:"primary_language"`
	Class           models.CharacterClass `json:"class"`
	Race            models.CharacterRace  `json:"race"`
	Level           int                   `json:"level"`
	XP              int                   `json:"xp"`
	XPForNextLevel  int                   `json:"xp_for_next_level"`
	MaxHP           int                   `json:"max_hp"`
	CurrentHP       int                   `json:"current_hp"`
}

// GetCharacterSheet 获取角色面板（只读）
func (s *Session) GetCharacterSheet() CharacterSheet {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.state.Character
	return CharacterSheet{
		Name:            c.Name,
		PrimaryLanguage: c.PrimaryLanguage,
		Class:           c.Class,
		Race:            c.Race,
		Level:           c.Level,
		XP:              c.XP,
		XPForNextLevel:  c.XPForNextLevel(),
		MaxHP:           c.MaxHP,
		CurrentHP:       c.CurrentHP,
	}
}

// GetCurrentEnemy 获取当前怪物（只读副本）
func (s *Session) GetCurrentEnemy() models.Mob {
	s.mu.Lock()
	defer s.mu.Unlock()

	return *s.state.Mob
}

// GetStatistics 获取统计数据（只读副本）
func (s *Session) GetStatistics() models.Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Character.Stats
}

// GetInventory 获取背包物品，顺序即获得顺序（只读副本）
func (s *Session) GetInventory() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.Item, len(s.state.Character.Inventory))
	copy(items, s.state.Character.Inventory)
	return items
}
