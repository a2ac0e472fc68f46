package client

import (
	"context"
	"fmt"
)

// SharedCollection is the option list for one relation field, private to a
// form instance. It keeps identifier uniqueness through Reconcile whichever
// of "apply resolved entity" or "apply queried option page" lands first.
type SharedCollection[R Entity] struct {
	items []R
}

// Items returns the current option list.
func (s *SharedCollection[R]) Items() []R {
	return s.items
}

// Include reconciles candidates into the collection so a currently selected
// relation value is displayable before the full option list has loaded.
func (s *SharedCollection[R]) Include(candidates ...*R) {
	s.items = Reconcile(s.items, candidates...)
}

// LoadFrom queries the relation's resource for an option page and reconciles
// the selected values into it. The queried page becomes the base, so a
// selection absent from the first page (deleted or renamed upstream, or
// beyond the page) remains present in the list.
func (s *SharedCollection[R]) LoadFrom(ctx context.Context, resource *Resource[R], opts QueryOptions, selected ...*R) error {
	loaded, err := resource.Query(ctx, opts)
	if err != nil {
		return err
	}
	s.items = Reconcile(loaded, selected...)
	return nil
}

// FormOption configures a Form.
type FormOption[T Entity] func(*Form[T])

// WithDefaults registers a hook applied to freshly created (identifier-less)
// entities on Init, typically to seed date fields with "now". It never runs
// for entities being edited.
func WithDefaults[T Entity](fn func(*T)) FormOption[T] {
	return func(f *Form[T]) {
		f.defaults = fn
	}
}

// Form bridges a resolved entity to the edit flow: it holds the working
// copy, tracks the in-progress save flag, and dispatches create or update
// on submit. Relation option lists live in per-relation SharedCollection
// values owned by the same controller instance.
type Form[T Entity] struct {
	resource *Resource[T]
	nav      Navigator
	defaults func(*T)

	entity *T
	saving bool
}

// NewForm creates a Form over the given resource and navigator.
func NewForm[T Entity](resource *Resource[T], nav Navigator, opts ...FormOption[T]) *Form[T] {
	if resource == nil {
		panic("client.NewForm: resource must not be nil")
	}
	if nav == nil {
		panic("client.NewForm: navigator must not be nil")
	}
	f := &Form[T]{resource: resource, nav: nav}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Init populates the form with the resolved entity. A nil entity (the
// resolver's not-found outcome) leaves the form empty. New entities get the
// registered defaults applied.
func (f *Form[T]) Init(entity *T) {
	f.entity = entity
	if f.entity != nil && (*f.entity).GetID() == "" && f.defaults != nil {
		f.defaults(f.entity)
	}
}

// Entity returns the working copy the form edits.
func (f *Form[T]) Entity() *T {
	return f.entity
}

// Saving reports whether a save is in flight.
func (f *Form[T]) Saving() bool {
	return f.saving
}

// Save submits the working copy: update when it has an identifier, create
// otherwise. The saving flag is raised before the call and cleared exactly
// once on either outcome. Only a successful save replaces the working copy
// with the server's representation and navigates back; a failed save leaves
// the form editable with the error surfaced to the caller, no retry.
func (f *Form[T]) Save(ctx context.Context) error {
	if f.entity == nil {
		return fmt.Errorf("save: form has no entity")
	}

	f.saving = true

	snapshot := *f.entity
	var saved *T
	var err error
	if snapshot.GetID() != "" {
		saved, err = f.resource.Update(ctx, &snapshot)
	} else {
		saved, err = f.resource.Create(ctx, &snapshot)
	}

	f.saving = false

	if err != nil {
		return err
	}

	f.entity = saved
	f.nav.Back()
	return nil
}
