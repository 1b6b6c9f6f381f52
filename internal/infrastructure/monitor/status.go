package monitor

import (
	"time"

	"github.com/atharsaifi001-eng/NEAT-RE/repository/memory"
)

type Status struct {
	Redis       bool         `json:"redis"`
	RedisInUse  bool         `json:"redis_in_use"`
	Outbox      bool         `json:"outbox"`
	OutboxInUse bool         `json:"outbox_in_use"`
	OutboxSize  int          `json:"outbox_size"`
	Store       memory.Stats `json:"store"`
	LastCheck   time.Time    `json:"last_check"`
}

// Healthy is false only when a configured dependency is unreachable.
func (s Status) Healthy() bool {
	return (!s.OutboxInUse || s.Outbox) && (!s.RedisInUse || s.Redis)
}
