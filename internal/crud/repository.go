package crud

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
	"github.com/monjurmorshed793/banbeis-blog/internal/pkg"
)

// Entity is the constraint every managed domain model satisfies through
// domain.BaseModel: an opaque string identifier that is empty for
// not-yet-persisted instances.
type Entity interface {
	GetID() string
}

// Options configures a repository for one entity type.
type Options struct {
	// SortFields and FilterFields are the column allowlists for List queries.
	SortFields   []string
	FilterFields []string
	// Preloads names the relation fields loaded on reads.
	Preloads []string
	// Cascade removes dependent rows inside the same transaction as
	// Delete. The entity delete is rolled back if it fails.
	Cascade func(tx *gorm.DB, id string) error
}

// Repository defines the generic data access interface for one entity type.
type Repository[T Entity] interface {
	Create(ctx context.Context, entity *T) error
	Get(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[T], error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id string) error
}

// gormRepository implements Repository using GORM.
type gormRepository[T Entity] struct {
	db   *gorm.DB
	opts Options
}

// NewRepository creates a generic Repository backed by the given GORM database.
func NewRepository[T Entity](db *gorm.DB, opts Options) Repository[T] {
	return &gormRepository[T]{db: db, opts: opts}
}

// Create inserts a new entity. Relation structs are not cascaded; foreign key
// columns must already be normalized by the service layer.
func (r *gormRepository[T]) Create(ctx context.Context, entity *T) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(entity).Error
	if err != nil {
		return mapError(err)
	}
	return nil
}

// Get retrieves an entity by its identifier with relations preloaded.
func (r *gormRepository[T]) Get(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.preloaded(r.db.WithContext(ctx)).First(&entity, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &entity, nil
}

// List returns a paginated, sorted, and filtered page of entities.
func (r *gormRepository[T]) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[T], error) {
	var model T
	var total int64

	base := r.db.WithContext(ctx).Model(&model).
		Scopes(pkg.Filter(req, r.opts.FilterFields))

	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var items []T
	if err := r.preloaded(base).Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, r.opts.SortFields),
	).Find(&items).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPageResult(items, total, req), nil
}

// Update saves the full entity state, replacing every column except the
// creation timestamp. Relation structs are not cascaded.
func (r *gormRepository[T]) Update(ctx context.Context, entity *T) error {
	err := r.db.WithContext(ctx).
		Omit("CreatedAt").
		Omit(clause.Associations).
		Save(entity).Error
	if err != nil {
		return mapError(err)
	}
	return nil
}

// Delete removes an entity by identifier. When a Cascade is configured it
// runs in one transaction with the entity delete.
func (r *gormRepository[T]) Delete(ctx context.Context, id string) error {
	if r.opts.Cascade == nil {
		return deleteByID[T](r.db.WithContext(ctx), id)
	}
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := r.opts.Cascade(tx, id); err != nil {
			return mapError(err)
		}
		return deleteByID[T](tx, id)
	})
}

func deleteByID[T Entity](db *gorm.DB, id string) error {
	var model T
	result := db.Delete(&model, "id = ?", id)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *gormRepository[T]) preloaded(db *gorm.DB) *gorm.DB {
	for _, preload := range r.opts.Preloads {
		db = db.Preload(preload)
	}
	return db
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. This is needed because not all GORM dialectors translate
// driver-level errors to gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
