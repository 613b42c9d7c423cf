package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/medcore/hospital-admin/internal/core/ports"
)

// Assignments collects column/value pairs for INSERT and UPDATE statements.
type Assignments struct {
	cols []string
	args []any
}

func (a *Assignments) Set(col string, v any) {
	a.cols = append(a.cols, col)
	a.args = append(a.args, v)
}

// SetIfPresent adds the column only when v is non-nil.
func SetIfPresent[V any](a *Assignments, col string, v *V) {
	if v != nil {
		a.Set(col, *v)
	}
}

// Table describes how one entity maps onto its table. Every table carries
// created_at, updated_at and deleted_at.
type Table[T, C, U any] struct {
	Name    string
	Key     string
	Columns []string // selected columns, in Scan order
	Scan    func(row pgx.Row) (*T, error)
	Insert  func(in C) Assignments
	Patch   func(in U) Assignments
}

// TableGateway implements ports.Gateway for a single table. Soft-deleted rows
// are invisible to every operation.
type TableGateway[T, C, U any] struct {
	db      DB
	table   Table[T, C, U]
	cols    string
	timeout time.Duration
}

func NewTableGateway[T, C, U any](db DB, table Table[T, C, U], timeout time.Duration) *TableGateway[T, C, U] {
	return &TableGateway[T, C, U]{
		db:      db,
		table:   table,
		cols:    strings.Join(table.Columns, ", "),
		timeout: timeout,
	}
}

func (g *TableGateway[T, C, U]) List(ctx context.Context, page ports.Page) ([]T, int, error) {
	ctx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	var total int
	if err := g.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM `+g.table.Name+` WHERE deleted_at IS NULL`).Scan(&total); err != nil {
		return nil, 0, translate(err)
	}

	rows, err := g.db.Query(ctx,
		`SELECT `+g.cols+` FROM `+g.table.Name+`
		WHERE deleted_at IS NULL
		ORDER BY `+g.table.Key+`
		LIMIT $1 OFFSET $2`, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, translate(err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := g.table.Scan(rows)
		if err != nil {
			return nil, 0, translate(err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, translate(err)
	}
	return items, total, nil
}

func (g *TableGateway[T, C, U]) GetByID(ctx context.Context, id int64) (*T, error) {
	ctx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	return g.one(g.db.QueryRow(ctx,
		`SELECT `+g.cols+` FROM `+g.table.Name+`
		WHERE `+g.table.Key+` = $1 AND deleted_at IS NULL`, id))
}

func (g *TableGateway[T, C, U]) Create(ctx context.Context, in C) (*T, error) {
	a := g.table.Insert(in)
	placeholders := make([]string, len(a.cols))
	for i := range a.cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	ctx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	return g.one(g.db.QueryRow(ctx,
		`INSERT INTO `+g.table.Name+` (`+strings.Join(a.cols, ", ")+`)
		VALUES (`+strings.Join(placeholders, ", ")+`)
		RETURNING `+g.cols, a.args...))
}

// Update changes only the columns present in the patch and bumps updated_at.
func (g *TableGateway[T, C, U]) Update(ctx context.Context, id int64, in U) (*T, error) {
	a := g.table.Patch(in)
	sets := make([]string, 0, len(a.cols)+1)
	for i, col := range a.cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
	}
	sets = append(sets, "updated_at = NOW()")
	args := append(a.args, id)

	ctx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	return g.one(g.db.QueryRow(ctx,
		`UPDATE `+g.table.Name+` SET `+strings.Join(sets, ", ")+`
		WHERE `+g.table.Key+fmt.Sprintf(" = $%d", len(args))+` AND deleted_at IS NULL
		RETURNING `+g.cols, args...))
}

func (g *TableGateway[T, C, U]) SoftDelete(ctx context.Context, id int64) (*T, error) {
	ctx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	return g.one(g.db.QueryRow(ctx,
		`UPDATE `+g.table.Name+` SET deleted_at = NOW()
		WHERE `+g.table.Key+` = $1 AND deleted_at IS NULL
		RETURNING `+g.cols, id))
}

func (g *TableGateway[T, C, U]) one(row pgx.Row) (*T, error) {
	item, err := g.table.Scan(row)
	if err != nil {
		return nil, translate(err)
	}
	return item, nil
}
