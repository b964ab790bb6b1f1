// Package events 写操作提交后发布领域事件
// 尽力投递，失败只记日志
package events

import (
	"context"
	"time"
)

// 路由键
const (
	PersonCreated         = "person.created"
	PersonRenamed         = "person.renamed"
	AstronautDutyRecorded = "astronaut_duty.recorded"
)

// Publisher 按路由键发布事件
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
	Close() error
}

// PersonCreatedEvent PersonCreated 事件内容
type PersonCreatedEvent struct {
	PersonID   uint      `json:"personId"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurredAt"`
}

// PersonRenamedEvent PersonRenamed 事件内容
type PersonRenamedEvent struct {
	PersonID   uint      `json:"personId"`
	OldName    string    `json:"oldName"`
	NewName    string    `json:"newName"`
	OccurredAt time.Time `json:"occurredAt"`
}

// AstronautDutyRecordedEvent AstronautDutyRecorded 事件内容
type AstronautDutyRecordedEvent struct {
	DutyID        uint      `json:"dutyId"`
	PersonID      uint      `json:"personId"`
	PersonName    string    `json:"personName"`
	Rank          string    `json:"rank"`
	DutyTitle     string    `json:"dutyTitle"`
	DutyStartDate string    `json:"dutyStartDate"`
	Retired       bool      `json:"retired"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type nopPublisher struct{}

// NewNopPublisher 返回丢弃所有事件的 Publisher
func NewNopPublisher() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, string, any) error { return nil }
func (nopPublisher) Close() error                               { return nil }
