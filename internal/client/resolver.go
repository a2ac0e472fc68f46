package client

import "context"

// Navigator is the navigation side-effect surface the resolver and form
// controller drive. Implementations route the user; they carry no data.
type Navigator interface {
	// Back returns to the previous view after a successful save.
	Back()
	// NotFound redirects to the not-found view when a requested entity
	// is missing.
	NotFound()
}

// Resolver supplies the entity an edit or detail view needs before it
// renders.
type Resolver[T Entity] struct {
	resource *Resource[T]
	nav      Navigator
}

// NewResolver creates a Resolver backed by the given resource.
func NewResolver[T Entity](resource *Resource[T], nav Navigator) *Resolver[T] {
	if resource == nil {
		panic("client.NewResolver: resource must not be nil")
	}
	if nav == nil {
		panic("client.NewResolver: navigator must not be nil")
	}
	return &Resolver[T]{resource: resource, nav: nav}
}

// Resolve maps a navigation parameter to the entity the view renders:
//
//   - empty id: a fresh zero-valued entity, without a remote call;
//   - id found: the server's representation;
//   - id missing remotely: a NotFound navigation and a nil result, which
//     suppresses the view.
//
// Transport failures propagate unchanged; there are no retries.
func (r *Resolver[T]) Resolve(ctx context.Context, id string) (*T, error) {
	if id == "" {
		var fresh T
		return &fresh, nil
	}

	entity, err := r.resource.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		r.nav.NotFound()
		return nil, nil
	}
	return entity, nil
}
