// event.go

package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidEvent 活动事件格式非法
var ErrInvalidEvent = errors.New("非法的活动事件")

// EventType 活动事件类型
type EventType string

const (
	// EventCommit 提交事件
	EventCommit EventType = "commit"
	// EventMergeRequestApproved 合并请求批准事件
	EventMergeRequestApproved EventType = "merge_request_approved"
)

// ActivityEvent 归一化的开发活动事件。
// Type为commit时要求SHA非空，为merge_request_approved时要求MergeRequestID非零
type ActivityEvent struct {
	Type           EventType `json:"type"`
	Repo           string    `json:"repo"`
	SHA            string    `json:"sha,omitempty"`
	MergeRequestID int64     `json:"mr_id,omitempty"`
	Title          string    `json:"title,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// Validate 校验事件格式。格式非法时返回包装了ErrInvalidEvent的错误
func (e *ActivityEvent) Validate() error {
	if e.Repo == "" {
		return fmt.Errorf("%w: repo为空", ErrInvalidEvent)
	}
	if e.Timestamp.IsZero() {
		return fmt.Errorf("%w: timestamp为空", ErrInvalidEvent)
	}

	switch e.Type {
	case EventCommit:
		if e.SHA == "" {
			return fmt.Errorf("%w: commit事件缺少sha", ErrInvalidEvent)
		}
	case EventMergeRequestApproved:
		if e.MergeRequestID == 0 {
			return fmt.Errorf("%w: merge_request_approved事件缺少mr_id", ErrInvalidEvent)
		}
	default:
		return fmt.Errorf("%w: 未知事件类型 %q", ErrInvalidEvent, e.Type)
	}
	return nil
}

// SyncState 同步水位线。记录每类事件最后处理的时间戳，
// 由同步调用方用于过滤已处理过的事件，保证重复同步幂等
type SyncState struct {
	LastCommitAt       time.Time `json:"last_commit_at"`
	LastMergeRequestAt time.Time `json:"last_merge_request_at"`
}

// Seen 判断事件是否已落在水位线之内（已处理过）
func (s *SyncState) Seen(e *ActivityEvent) bool {
	switch e.Type {
	case EventCommit:
		return !e.Timestamp.After(s.LastCommitAt)
	case EventMergeRequestApproved:
		return !e.Timestamp.After(s.LastMergeRequestAt)
	}
	return false
}

// Advance 将对应类型的水位线推进到事件时间戳
func (s *SyncState) Advance(e *ActivityEvent) {
	switch e.Type {
	case EventCommit:
		if e.Timestamp.After(s.LastCommitAt) {
			s.LastCommitAt = e.Timestamp
		}
	case EventMergeRequestApproved:
		if e.Timestamp.After(s.LastMergeRequestAt) {
			s.LastMergeRequestAt = e.Timestamp
		}
	}
}
