package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SystemWarning is a non-fatal operational problem surfaced on /health: a
// tool server that stopped answering, a provider pinned at its rate limit.
// Category strings belong to the package that raises the warning.
type SystemWarning struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	SourceID  string    `json:"source_id,omitempty"` // tool server or provider name
	CreatedAt time.Time `json:"created_at"`
}

// SystemWarningsService keeps warnings in memory only; a restart wipes the
// slate, which is the point — a fresh pod re-detects whatever is still wrong.
type SystemWarningsService struct {
	mu       sync.RWMutex
	warnings map[string]*SystemWarning
}

func NewSystemWarningsService() *SystemWarningsService {
	return &SystemWarningsService{warnings: make(map[string]*SystemWarning)}
}

// AddWarning records a warning, replacing any previous one for the same
// category and source so a flapping component yields one entry, not a pile.
// Returns the warning's ID.
func (s *SystemWarningsService) AddWarning(category, message, details, sourceID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.findLocked(category, sourceID); ok {
		delete(s.warnings, id)
	}

	id := uuid.New().String()
	s.warnings[id] = &SystemWarning{
		ID:        id,
		Category:  category,
		Message:   message,
		Details:   details,
		SourceID:  sourceID,
		CreatedAt: time.Now(),
	}
	return id
}

// GetWarnings snapshots the active warnings. The returned structs are
// copies; callers read them without locking.
func (s *SystemWarningsService) GetWarnings() []*SystemWarning {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*SystemWarning, 0, len(s.warnings))
	for _, w := range s.warnings {
		cp := *w
		out = append(out, &cp)
	}
	return out
}

// ClearBySource drops the warning for a recovered source. Reports whether
// anything was removed.
func (s *SystemWarningsService) ClearBySource(category, sourceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.findLocked(category, sourceID)
	if ok {
		delete(s.warnings, id)
	}
	return ok
}

func (s *SystemWarningsService) findLocked(category, sourceID string) (string, bool) {
	for id, w := range s.warnings {
		if w.Category == category && w.SourceID == sourceID {
			return id, true
		}
	}
	return "", false
}
