package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/coworker-service/internal/domain"
)

// MemoryStore keeps coworkers and departments in process memory. It backs the
// service when no postgres DSN is configured and in tests.
type MemoryStore struct {
	mu          sync.RWMutex
	coworkers   []domain.Coworker
	byID        map[string]int
	departments map[string]domain.Department
	now         func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:        make(map[string]int),
		departments: make(map[string]domain.Department),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Coworkers exposes the store as a CoworkerRepository.
func (s *MemoryStore) Coworkers() CoworkerRepository { return memoryCoworkers{s} }

// Departments exposes the store as a DepartmentRepository.
func (s *MemoryStore) Departments() DepartmentRepository { return memoryDepartments{s} }

type memoryCoworkers struct{ s *MemoryStore }

func (m memoryCoworkers) Create(_ context.Context, coworker *domain.Coworker) error {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.departments[coworker.Department]; !ok {
		s.departments[coworker.Department] = domain.Department{
			ID:        uuid.NewString(),
			Name:      coworker.Department,
			CreatedAt: s.now(),
		}
	}
	if coworker.ID == "" {
		coworker.ID = uuid.NewString()
	}
	coworker.CreatedAt = s.now()
	s.byID[coworker.ID] = len(s.coworkers)
	s.coworkers = append(s.coworkers, *coworker)
	return nil
}

func (m memoryCoworkers) GetByID(_ context.Context, id string) (*domain.Coworker, error) {
	s := m.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cw := s.coworkers[idx]
	return &cw, nil
}

func (m memoryCoworkers) List(_ context.Context, filter CoworkerFilter) ([]domain.Coworker, error) {
	s := m.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var term string
	if filter.SearchTerm != nil {
		term = strings.ToLower(*filter.SearchTerm)
	}
	result := make([]domain.Coworker, 0, len(s.coworkers))
	for _, cw := range s.coworkers {
		if filter.Department != nil && *filter.Department != "" && cw.Department != *filter.Department {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(cw.Name), term) &&
			!strings.Contains(strings.ToLower(cw.Role), term) {
			continue
		}
		result = append(result, cw)
	}
	return result, nil
}

type memoryDepartments struct{ s *MemoryStore }

func (m memoryDepartments) List(_ context.Context) ([]domain.Department, error) {
	s := m.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Department, 0, len(s.departments))
	for _, d := range s.departments {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}
