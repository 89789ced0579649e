package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"course-compass/internal/chat"
	"course-compass/internal/chat/repository"
	"course-compass/pkg/log"
)

const (
	DefaultTTL         = 30 * time.Minute
	DefaultMaxSessions = 1000
)

type Config struct {
	TTL         time.Duration
	MaxSessions int
}

type implRepository struct {
	// mu makes Get's lookup and TTL refresh atomic with Delete.
	mu    sync.Mutex
	cache *expirable.LRU[string, *chat.Session]
	l     log.Logger
	now   func() time.Time
}

// New creates an in-memory session store. Sessions idle for longer than
// cfg.TTL are dropped; the least recently used one is dropped when full.
func New(cfg Config, l log.Logger) repository.Repository {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}

	r := &implRepository{l: l, now: time.Now}
	r.cache = expirable.NewLRU[string, *chat.Session](cfg.MaxSessions, r.onEvict, cfg.TTL)
	return r
}
