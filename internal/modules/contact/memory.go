package contact

import (
	"context"
	"sync"
	"time"
)

type memoryRepo struct {
	mu          sync.Mutex
	submissions []*Submission
	signups     map[string]time.Time
}

// NewMemoryRepository keeps submissions and signups in process memory.
// There is no real mail backend; the storefront only simulates submission.
func NewMemoryRepository() Repository {
	return &memoryRepo{signups: make(map[string]time.Time)}
}

func (r *memoryRepo) SaveSubmission(_ context.Context, s *Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, s)
	return nil
}

func (r *memoryRepo) SaveSignup(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.signups[email]; ok {
		return false, nil
	}
	r.signups[email] = time.Now()
	return true, nil
}
