// processor.go

package game

import (
	"fmt"
	"math/rand"

	"github.com/jackhua-dev/GitQuest-Server/internal/models"
)

// ItemAwardResult 合并请求奖励的结算结果
type ItemAwardResult struct {
	Item models.Item `json:"item"`
}

// EventResult 单个活动事件的处理结果，两个字段恰有一个非空
type EventResult struct {
	Combat *CombatResult    `json:"combat,omitempty"`
	Award  *ItemAwardResult `json:"award,omitempty"`
}

// Processor 活动处理器。把归一化的活动事件翻译成对战斗结算器
// 和角色的调用。处理器不做去重：同一事件在一个同步批次内不得
// 重复提交，按水位线去重是同步调用方的契约责任
type Processor struct {
	resolver *Resolver
	rng      *rand.Rand
}

// NewProcessor 创建活动处理器
func NewProcessor(rng *rand.Rand) *Processor {
	return &Processor{
		resolver: NewResolver(rng),
		rng:      rng,
	}
}

// ProcessCommit 处理一条提交事件：结算伤害，计入提交数和总伤害。
// 结算失败时不留下任何统计副作用
func (p *Processor) ProcessCommit(state *models.GameState, event *models.ActivityEvent) (*CombatResult, error) {
	result, err := p.resolver.ApplyCommitDamage(state)
	if err != nil {
		return nil, err
	}

	state.Character.Stats.TotalCommits++
	state.Character.Stats.TotalDamageDealt += result.Damage
	return result, nil
}

// ProcessApprovedMergeRequest 处理一条合并请求批准事件：
// 计入批准数，独立于战斗掷出一件稀有物品放入背包
func (p *Processor) ProcessApprovedMergeRequest(state *models.GameState, event *models.ActivityEvent) (*ItemAwardResult, error) {
	state.Character.Stats.MergeRequestsApproved++

	item := models.NewMergeRequestItem(p.rng, state.Character.Level, event.Title)
	state.Character.TakeItem(item)

	return &ItemAwardResult{Item: item}, nil
}

// ProcessEvent 校验并分发单个活动事件
func (p *Processor) ProcessEvent(state *models.GameState, event *models.ActivityEvent) (*EventResult, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	switch event.Type {
	case models.EventCommit:
		combat, err := p.ProcessCommit(state, event)
		if err != nil {
			return nil, err
		}
		return &EventResult{Combat: combat}, nil
	case models.EventMergeRequestApproved:
		award, err := p.ProcessApprovedMergeRequest(state, event)
		if err != nil {
			return nil, err
		}
		return &EventResult{Award: award}, nil
	default:
		// Validate已拦截未知类型，这里不可达
		return nil, fmt.Errorf("%w: 未知事件类型 %q", models.ErrInvalidEvent, event.Type)
	}
}
