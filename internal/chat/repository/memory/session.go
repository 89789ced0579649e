package memory

import (
	"context"

	"github.com/google/uuid"

	"course-compass/internal/chat"
	"course-compass/internal/chat/repository"
)

func (r *implRepository) Create(ctx context.Context) (*chat.Session, error) {
	s := chat.NewSession(uuid.NewString(), r.now().UTC())
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Add(s.ID, s)
	return s, nil
}

func (r *implRepository) Get(ctx context.Context, id string) (*chat.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.cache.Get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	// re-adding restarts the TTL
	r.cache.Add(id, s)
	return s, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.cache.Remove(id) {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) Len() int {
	return r.cache.Len()
}

func (r *implRepository) onEvict(id string, s *chat.Session) {
	r.l.Debugf(context.Background(), "internal.chat.repository.memory: session %s evicted after %d turn(s)", id, s.Len())
}
