package conversation

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Registry resolves the Store for a conversation key.
type Registry struct {
	scope        Scope
	systemPrompt string

	global *Store

	mu    sync.Mutex // serializes get-or-create on chats
	chats *lru.Cache[string, *Store]
}

// NewRegistry creates a Registry for cfg.
func NewRegistry(cfg RegistryConfig) (*Registry, error) {
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	if cfg.Scope == "" {
		cfg.Scope = ScopeGlobal
	}

	r := &Registry{
		scope:        cfg.Scope,
		systemPrompt: cfg.SystemPrompt,
	}

	switch cfg.Scope {
	case ScopeGlobal:
		r.global = NewStore(cfg.SystemPrompt)
	case ScopeChat:
		size := cfg.MaxChats
		if size <= 0 {
			size = defaultMaxChats
		}
		cache, err := lru.New[string, *Store](size)
		if err != nil {
			return nil, fmt.Errorf("conversation: failed to create chat cache: %w", err)
		}
		r.chats = cache
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidScope, cfg.Scope)
	}

	return r, nil
}

// Get returns the store for key, creating it on first use.
// In ScopeGlobal the key is ignored.
func (r *Registry) Get(key string) *Store {
	if r.scope == ScopeGlobal {
		return r.global
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.chats.Get(key); ok {
		return s
	}
	s := NewStore(r.systemPrompt)
	r.chats.Add(key, s)
	return s
}

// Scope reports the registry's scope.
func (r *Registry) Scope() Scope {
	return r.scope
}

// Len returns how many stores are live.
func (r *Registry) Len() int {
	if r.scope == ScopeGlobal {
		return 1
	}
	return r.chats.Len()
}
