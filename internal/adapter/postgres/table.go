package postgres

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/access"
	"github.com/heartmarshall/advocacy-backend/internal/domain"
)

// Builder returns a squirrel statement builder with PostgreSQL placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// TableDef maps one owned entity onto its table.
type TableDef[T any] struct {
	// Name is the table name.
	Name string
	// Entity names the record in errors, e.g. "task".
	Entity string
	// Columns are read back on every select and insert. Patch and scan
	// only accept these columns.
	Columns []string
	// Values returns the insert assignments for rec. Columns left out take
	// their database default.
	Values func(rec *T) map[string]any
}

// Table is the storage engine for one owned entity. It implements
// access.Store and access.OwnerLookup.
type Table[T any, R interface {
	*T
	access.Record
}] struct {
	def  TableDef[T]
	pool Querier
}

// NewTable creates a table over def. pool is used whenever ctx carries no
// transaction.
func NewTable[T any, R interface {
	*T
	access.Record
}](pool Querier, def TableDef[T]) *Table[T, R] {
	return &Table[T, R]{def: def, pool: pool}
}

// Def returns the table definition.
func (t *Table[T, R]) Def() TableDef[T] { return t.def }

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Insert writes rec and reads the stored row back into it, so database
// defaults (timestamps, reminder_sent) are visible to the caller.
func (t *Table[T, R]) Insert(ctx context.Context, rec R) error {
	query, args, err := Builder().
		Insert(t.def.Name).
		SetMap(t.def.Values((*T)(rec))).
		Suffix("RETURNING " + strings.Join(t.def.Columns, ", ")).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert %s: %w", t.def.Name, err)
	}

	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, t.pool), rec, query, args...); err != nil {
		return MapError(err, t.def.Entity, rec.RecordID())
	}
	return nil
}

// Patch assigns the patch columns on row id and bumps updated_at.
func (t *Table[T, R]) Patch(ctx context.Context, id uuid.UUID, patch domain.Patch) error {
	set := make(map[string]any, len(patch))
	for _, col := range patch.Columns() {
		if !slices.Contains(t.def.Columns, col) {
			return fmt.Errorf("patch %s: unknown column %q", t.def.Name, col)
		}
		set[col] = patch[col]
	}

	query, args, err := Builder().
		Update(t.def.Name).
		SetMap(set).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build patch %s: %w", t.def.Name, err)
	}

	tag, err := QuerierFromCtx(ctx, t.pool).Exec(ctx, query, args...)
	if err != nil {
		return MapError(err, t.def.Entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", t.def.Entity, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// Get returns the row with the given id.
func (t *Table[T, R]) Get(ctx context.Context, id uuid.UUID) (R, error) {
	return t.get(ctx, id, "")
}

// GetForUpdate returns the row and holds a row lock until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (t *Table[T, R]) GetForUpdate(ctx context.Context, id uuid.UUID) (R, error) {
	return t.get(ctx, id, "FOR UPDATE")
}

func (t *Table[T, R]) get(ctx context.Context, id uuid.UUID, suffix string) (R, error) {
	b := Builder().
		Select(t.def.Columns...).
		From(t.def.Name).
		Where(squirrel.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get %s: %w", t.def.Name, err)
	}

	var rec T
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, t.pool), &rec, query, args...); err != nil {
		return nil, MapError(err, t.def.Entity, id)
	}
	return R(&rec), nil
}

// Scan reads the owner's rows bounded by the plan's covered predicates and
// ordered by the entity order. Residual predicates are left to the caller.
func (t *Table[T, R]) Scan(ctx context.Context, owner uuid.UUID, plan access.Plan) ([]R, error) {
	b := Builder().
		Select(t.def.Columns...).
		From(t.def.Name).
		Where(squirrel.Eq{"user_id": owner})

	for _, p := range plan.Bounds {
		if !slices.Contains(t.def.Columns, p.Field) {
			return nil, fmt.Errorf("scan %s: unknown column %q", t.def.Name, p.Field)
		}
		if !p.IsRange() {
			b = b.Where(squirrel.Eq{p.Field: p.Eq})
			continue
		}
		if p.From != nil {
			b = b.Where(squirrel.GtOrEq{p.Field: *p.From})
		}
		if p.To != nil {
			b = b.Where(squirrel.LtOrEq{p.Field: *p.To})
		}
	}

	if plan.Order.Field != "" {
		if !slices.Contains(t.def.Columns, plan.Order.Field) {
			return nil, fmt.Errorf("scan %s: unknown order column %q", t.def.Name, plan.Order.Field)
		}
		dir := "ASC"
		if plan.Order.Desc {
			dir = "DESC"
		}
		b = b.OrderBy(plan.Order.Field+" "+dir, "id ASC")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build scan %s: %w", t.def.Name, err)
	}

	var rows []T
	if err := pgxscan.Select(ctx, QuerierFromCtx(ctx, t.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("scan %s via %s: %w", t.def.Name, plan.Index.Name, err)
	}

	out := make([]R, len(rows))
	for i := range rows {
		out[i] = R(&rows[i])
	}
	return out, nil
}

// OwnerOf returns the owner of row id.
func (t *Table[T, R]) OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	query, args, err := Builder().
		Select("user_id").
		From(t.def.Name).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build owner lookup %s: %w", t.def.Name, err)
	}

	var owner uuid.UUID
	if err := QuerierFromCtx(ctx, t.pool).QueryRow(ctx, query, args...).Scan(&owner); err != nil {
		return uuid.Nil, MapError(err, t.def.Entity, id)
	}
	return owner, nil
}
