package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/coworker-service/internal/domain"
	"github.com/spec-kit/coworker-service/internal/events"
	"github.com/spec-kit/coworker-service/internal/repository"
	apperrors "github.com/spec-kit/coworker-service/pkg/util/errorutil"
)

// CoworkerService coordinates coworker workflows.
type CoworkerService struct {
	coworkers   repository.CoworkerRepository
	departments repository.DepartmentRepository
	cache       *DepartmentCache
	dispatcher  events.Dispatcher
}

// CoworkerDependencies bundles collaborators for the coworker service.
type CoworkerDependencies struct {
	CoworkerRepo   repository.CoworkerRepository
	DepartmentRepo repository.DepartmentRepository
	Cache          *DepartmentCache
	Dispatcher     events.Dispatcher
}

// CoworkerCreateInput describes coworker creation payload.
type CoworkerCreateInput struct {
	Name       string
	Role       string
	Department string
	Salary     float64
}

// CoworkerListFilter narrows listings. Empty strings mean no constraint.
type CoworkerListFilter struct {
	Search     string
	Department string
}

// NewCoworkerService constructs the service.
func NewCoworkerService(deps CoworkerDependencies) *CoworkerService {
	return &CoworkerService{
		coworkers:   deps.CoworkerRepo,
		departments: deps.DepartmentRepo,
		cache:       deps.Cache,
		dispatcher:  deps.Dispatcher,
	}
}

// CreateCoworker validates and persists a new coworker.
func (s *CoworkerService) CreateCoworker(ctx context.Context, input CoworkerCreateInput) (*domain.Coworker, error) {
	coworker := &domain.Coworker{
		Name:       strings.TrimSpace(input.Name),
		Role:       strings.TrimSpace(input.Role),
		Department: strings.TrimSpace(input.Department),
		Salary:     input.Salary,
	}
	if err := validateCoworker(coworker); err != nil {
		return nil, err
	}
	coworker.ID = uuid.NewString()

	// A list read racing this insert may repopulate the cache with the old
	// names between the two invalidations; the second one drops it.
	s.cache.Invalidate(ctx)
	if err := s.coworkers.Create(ctx, coworker); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	s.publishEvent(ctx, events.Event{
		Type:       events.EventCoworkerCreated,
		CoworkerID: coworker.ID,
		Payload: events.CoworkerCreatedPayload{
			Name:       coworker.Name,
			Role:       coworker.Role,
			Department: coworker.Department,
		},
	})
	return coworker, nil
}

// GetCoworker fetches a coworker by id.
func (s *CoworkerService) GetCoworker(ctx context.Context, id string) (*domain.Coworker, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NewNotFound("coworker", map[string]any{"id": id})
	}
	coworker, err := s.coworkers.GetByID(ctx, id)
	if err != nil {
		if apperrors.ToDomainError(err).Code == "NOT_FOUND" {
			return nil, apperrors.NewNotFound("coworker", map[string]any{"id": id})
		}
		return nil, err
	}
	return coworker, nil
}

// ListCoworkers returns coworkers matching the filter in creation order.
func (s *CoworkerService) ListCoworkers(ctx context.Context, filter CoworkerListFilter) ([]domain.Coworker, error) {
	repoFilter := repository.CoworkerFilter{}
	if search := strings.TrimSpace(filter.Search); search != "" {
		repoFilter.SearchTerm = &search
	}
	if dept := strings.TrimSpace(filter.Department); dept != "" {
		repoFilter.Department = &dept
	}
	return s.coworkers.List(ctx, repoFilter)
}

// ListDepartmentNames returns the distinct department names, sorted.
func (s *CoworkerService) ListDepartmentNames(ctx context.Context) ([]string, error) {
	if names, ok := s.cache.Get(ctx); ok {
		return names, nil
	}
	depts, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(depts))
	for _, d := range depts {
		names = append(names, d.Name)
	}
	s.cache.Set(ctx, names)
	return names, nil
}

func validateCoworker(c *domain.Coworker) error {
	missing := make([]string, 0, 3)
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Role == "" {
		missing = append(missing, "role")
	}
	if c.Department == "" {
		missing = append(missing, "department")
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("name, role, department required", map[string]any{"missing": missing})
	}
	if math.IsNaN(c.Salary) || math.IsInf(c.Salary, 0) || c.Salary < 0 {
		return apperrors.NewValidationError("salary must be a non-negative number", map[string]any{"salary": c.Salary})
	}
	return nil
}

func (s *CoworkerService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
