package crud

import (
	"context"

	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
)

// Service implements the generic business logic for one entity type on top
// of a Repository. A per-entity beforeSave hook normalizes foreign key
// columns from nested relation values before any write.
type Service[T Entity] struct {
	repo       Repository[T]
	beforeSave func(*T) error
}

// ServiceOption customizes a Service.
type ServiceOption[T Entity] func(*Service[T])

// WithBeforeSave installs a hook invoked before every create, update, and
// partial update.
func WithBeforeSave[T Entity](fn func(*T) error) ServiceOption[T] {
	return func(s *Service[T]) {
		s.beforeSave = fn
	}
}

// NewService creates a generic Service with the given repository.
func NewService[T Entity](repo Repository[T], opts ...ServiceOption[T]) *Service[T] {
	s := &Service[T]{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create persists a new entity and returns the stored representation with
// relations resolved. The entity must not carry an identifier yet.
func (s *Service[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if (*entity).GetID() != "" {
		return nil, domain.NewAppError(domain.CodeValidation, "a new entity cannot already have an id", nil)
	}
	if err := s.runBeforeSave(entity); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, (*entity).GetID())
}

// Get retrieves one entity by identifier.
func (s *Service[T]) Get(ctx context.Context, id string) (*T, error) {
	return s.repo.Get(ctx, id)
}

// List returns a page of entities.
func (s *Service[T]) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[T], error) {
	return s.repo.List(ctx, req)
}

// Update replaces the full stored state of an existing entity and returns
// the stored representation. The entity must already exist.
func (s *Service[T]) Update(ctx context.Context, entity *T) (*T, error) {
	id := (*entity).GetID()
	if id == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "an existing entity must have an id", nil)
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.runBeforeSave(entity); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// PartialUpdate loads the existing entity, applies the given merge function,
// and saves the result. Fields the merge function does not touch keep their
// stored values.
func (s *Service[T]) PartialUpdate(ctx context.Context, id string, apply func(*T)) (*T, error) {
	entity, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(entity)
	if err := s.runBeforeSave(entity); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes an entity by identifier.
func (s *Service[T]) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service[T]) runBeforeSave(entity *T) error {
	if s.beforeSave == nil {
		return nil
	}
	return s.beforeSave(entity)
}
