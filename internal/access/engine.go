package access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

// Record is an owned entity handled by the engine. Implemented by the domain
// entity pointer types.
type Record interface {
	Owned
	RecordID() uuid.UUID
	AssignOwner(owner uuid.UUID)
}

// Store is the storage engine for one entity. Every method reads and writes
// through the transaction carried by ctx when there is one.
type Store[R Record] interface {
	Insert(ctx context.Context, rec R) error
	Get(ctx context.Context, id uuid.UUID) (R, error)
	// GetForUpdate reads the row and locks it until the transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (R, error)
	Patch(ctx context.Context, id uuid.UUID, patch domain.Patch) error
	// Scan returns the owner's rows that satisfy plan.Bounds using plan.Index.
	Scan(ctx context.Context, owner uuid.UUID, plan Plan) ([]R, error)
}

type referenceValidator interface {
	Validate(ctx context.Context, owner uuid.UUID, refs ...Ref) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Engine serves list/get and the mutation pipeline for one entity.
type Engine[R Record] struct {
	schema Schema[R]
	store  Store[R]
	refs   referenceValidator
	tx     txManager
	log    *slog.Logger
}

// NewEngine creates an engine for the entity described by schema.
func NewEngine[R Record](
	log *slog.Logger,
	schema Schema[R],
	store Store[R],
	refs referenceValidator,
	tx txManager,
) *Engine[R] {
	return &Engine[R]{
		schema: schema,
		store:  store,
		refs:   refs,
		tx:     tx,
		log:    log.With("engine", schema.Kind.String()),
	}
}

// Schema returns the entity schema.
func (e *Engine[R]) Schema() Schema[R] { return e.schema }

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// List returns the owner's records that satisfy every predicate, in the
// entity's canonical order.
func (e *Engine[R]) List(ctx context.Context, owner uuid.UUID, preds ...Predicate) ([]R, error) {
	if owner == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	preds, err := e.schema.canonical(preds)
	if err != nil {
		return nil, err
	}
	if err := e.checkFilterRefs(ctx, owner, preds); err != nil {
		return nil, err
	}

	plan := e.schema.Plan(preds)
	e.log.DebugContext(ctx, "index selected",
		slog.String("index", plan.Index.Name),
		slog.Int("bounds", len(plan.Bounds)),
		slog.Int("residual", len(plan.Residual)),
	)

	rows, err := e.store.Scan(ctx, owner, plan)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", e.schema.Kind, err)
	}

	out := make([]R, 0, len(rows))
	for _, rec := range rows {
		if rec.OwnerID() != owner {
			continue
		}
		if e.schema.matches(rec, plan.Residual) {
			out = append(out, rec)
		}
	}
	e.schema.sort(out)
	return out, nil
}

// Get returns one record after the ownership check.
func (e *Engine[R]) Get(ctx context.Context, owner, id uuid.UUID) (R, error) {
	var zero R
	if owner == uuid.Nil {
		return zero, domain.ErrUnauthenticated
	}

	rec, err := e.store.Get(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("get %s: %w", e.schema.Kind, err)
	}
	rec, err = Authorize(rec, owner)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", e.schema.Kind, id, err)
	}
	return rec, nil
}

// checkFilterRefs requires id filters to name a record of the right kind
// owned by the caller. Anything else is a validation failure.
func (e *Engine[R]) checkFilterRefs(ctx context.Context, owner uuid.UUID, preds []Predicate) error {
	for _, p := range preds {
		rf, ok := e.refField(p.Field)
		if !ok || p.IsRange() {
			continue
		}
		id, ok := p.Eq.(uuid.UUID)
		if !ok {
			return domain.NewValidationError(p.Field, "must be an id")
		}
		err := e.refs.Validate(ctx, owner, Ref{Field: p.Field, Kind: rf.Kind, ID: id})
		if errors.Is(err, domain.ErrInvalidReference) {
			return domain.NewValidationError(p.Field, "must be the id of one of your "+rf.Kind.String()+" records")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mutation pipeline
// ---------------------------------------------------------------------------

// Create stamps rec with owner, validates its references and inserts it.
// The record's id must already be set.
func (e *Engine[R]) Create(ctx context.Context, owner uuid.UUID, rec R) (uuid.UUID, error) {
	if owner == uuid.Nil {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	if rec.RecordID() == uuid.Nil {
		return uuid.Nil, fmt.Errorf("create %s: record has no id", e.schema.Kind)
	}

	// The client never chooses the owner.
	rec.AssignOwner(owner)

	refs, err := e.recordRefs(rec)
	if err != nil {
		return uuid.Nil, err
	}

	err = e.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := e.refs.Validate(txCtx, owner, refs...); err != nil {
			return err
		}
		if err := e.store.Insert(txCtx, rec); err != nil {
			return fmt.Errorf("insert %s: %w", e.schema.Kind, err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return rec.RecordID(), nil
}

// Update applies patch to the owner's record. Any reference column in the
// patch is validated against the owner before the write.
func (e *Engine[R]) Update(ctx context.Context, owner, id uuid.UUID, patch domain.Patch) error {
	return e.mutate(ctx, owner, id, patch, true)
}

// Transition applies a single-field status change. References are not
// re-validated since a transition never touches them.
func (e *Engine[R]) Transition(ctx context.Context, owner, id uuid.UUID, patch domain.Patch) error {
	for _, rf := range e.schema.Refs {
		if patch.Has(rf.Field) {
			return fmt.Errorf("transition %s: patch touches reference %s", e.schema.Kind, rf.Field)
		}
	}
	return e.mutate(ctx, owner, id, patch, false)
}

func (e *Engine[R]) mutate(ctx context.Context, owner, id uuid.UUID, patch domain.Patch, checkRefs bool) error {
	if owner == uuid.Nil {
		return domain.ErrUnauthenticated
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	var refs []Ref
	if checkRefs {
		var err error
		if refs, err = e.patchRefs(patch); err != nil {
			return err
		}
	}

	return e.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cur, err := e.store.GetForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("get %s: %w", e.schema.Kind, err)
		}
		if _, err := Authorize(cur, owner); err != nil {
			return fmt.Errorf("%s %s: %w", e.schema.Kind, id, err)
		}
		if err := e.refs.Validate(txCtx, owner, refs...); err != nil {
			return err
		}
		if err := e.store.Patch(txCtx, id, patch); err != nil {
			return fmt.Errorf("patch %s: %w", e.schema.Kind, err)
		}
		return nil
	})
}

// recordRefs collects the references held by a new record. A required
// reference that is absent is a validation failure.
func (e *Engine[R]) recordRefs(rec R) ([]Ref, error) {
	var (
		refs []Ref
		errs []domain.FieldError
	)
	for _, rf := range e.schema.Refs {
		id, ok := e.schema.Value(rec, rf.Field).(uuid.UUID)
		if !ok || id == uuid.Nil {
			if rf.Required {
				errs = append(errs, domain.FieldError{Field: rf.Field, Message: "required"})
			}
			continue
		}
		refs = append(refs, Ref{Field: rf.Field, Kind: rf.Kind, ID: id})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return refs, nil
}

func (e *Engine[R]) patchRefs(patch domain.Patch) ([]Ref, error) {
	var refs []Ref
	for _, rf := range e.schema.Refs {
		v, ok := patch[rf.Field]
		if !ok {
			continue
		}
		id, ok := v.(uuid.UUID)
		if !ok {
			return nil, domain.NewValidationError(rf.Field, "must be an id")
		}
		refs = append(refs, Ref{Field: rf.Field, Kind: rf.Kind, ID: id})
	}
	return refs, nil
}

func (e *Engine[R]) refField(field string) (RefField, bool) {
	for _, rf := range e.schema.Refs {
		if rf.Field == field {
			return rf, true
		}
	}
	return RefField{}, false
}
