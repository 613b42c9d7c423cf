package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcore/hospital-admin/internal/core/domain"
	"github.com/medcore/hospital-admin/internal/core/ports"
)

var hospitalColumns = []string{"id_hospital", "name", "address", "created_at", "updated_at", "deleted_at"}

const hospitalSelect = `id_hospital, name, address, created_at, updated_at, deleted_at`

func hospitalRow(rows *pgxmock.Rows, id int64, name string, createdAt time.Time) *pgxmock.Rows {
	return rows.AddRow(id, name, "Cra 7 # 40-62", createdAt, (*time.Time)(nil), (*time.Time)(nil))
}

func newHospitalGateway(t *testing.T) (pgxmock.PgxPoolIface, *TableGateway[domain.Hospital, domain.HospitalInput, domain.HospitalPatch]) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(mock.Close)
	return mock, NewTableGateway(mock, HospitalTable, time.Second)
}

func TestTableGateway_List(t *testing.T) {
	mock, gw := newHospitalGateway(t)
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM hospitals WHERE deleted_at IS NULL`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	rows := pgxmock.NewRows(hospitalColumns)
	hospitalRow(rows, 2, "San Ignacio", now)
	hospitalRow(rows, 3, "Santa Fe", now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+hospitalSelect+` FROM hospitals`)+`\s+WHERE deleted_at IS NULL\s+ORDER BY id_hospital\s+LIMIT \$1 OFFSET \$2`).
		WithArgs(2, 1).
		WillReturnRows(rows)

	items, total, err := gw.List(context.Background(), ports.Page{Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Santa Fe", items[1].Name)
	assert.Equal(t, now, items[0].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableGateway_GetByID_NotFound(t *testing.T) {
	mock, gw := newHospitalGateway(t)

	mock.ExpectQuery(`FROM hospitals\s+WHERE id_hospital = \$1 AND deleted_at IS NULL`).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	_, err := gw.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableGateway_Create(t *testing.T) {
	mock, gw := newHospitalGateway(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO hospitals (name, address)`)+`\s+`+regexp.QuoteMeta(`VALUES ($1, $2)`)+`\s+RETURNING `).
		WithArgs("San Ignacio", "Cra 7 # 40-62").
		WillReturnRows(hospitalRow(pgxmock.NewRows(hospitalColumns), 10, "San Ignacio", now))

	got, err := gw.Create(context.Background(), domain.HospitalInput{Name: "San Ignacio", Address: "Cra 7 # 40-62"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableGateway_Create_Conflict(t *testing.T) {
	mock, gw := newHospitalGateway(t)

	mock.ExpectQuery(`INSERT INTO hospitals`).
		WithArgs("San Ignacio", "Cra 7").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "hospitals_name_key"})

	_, err := gw.Create(context.Background(), domain.HospitalInput{Name: "San Ignacio", Address: "Cra 7"})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableGateway_Update_OnlyPresentFields(t *testing.T) {
	mock, gw := newHospitalGateway(t)
	name := "Renamed"

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE hospitals SET name = $1, updated_at = NOW()`)+`\s+WHERE id_hospital = \$2 AND deleted_at IS NULL`).
		WithArgs("Renamed", int64(3)).
		WillReturnRows(hospitalRow(pgxmock.NewRows(hospitalColumns), 3, "Renamed", time.Now()))

	got, err := gw.Update(context.Background(), 3, domain.HospitalPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableGateway_SoftDelete(t *testing.T) {
	mock, gw := newHospitalGateway(t)
	deletedAt := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE hospitals SET deleted_at = NOW()`) + `\s+WHERE id_hospital = \$1 AND deleted_at IS NULL`).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(hospitalColumns).AddRow(int64(3), "Santa Fe", "Cra 7", deletedAt, (*time.Time)(nil), &deletedAt))

	got, err := gw.SoftDelete(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, got.DeletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableGateway_SoftDelete_AlreadyDeleted(t *testing.T) {
	mock, gw := newHospitalGateway(t)

	mock.ExpectQuery(`UPDATE hospitals SET deleted_at = NOW\(\)`).
		WithArgs(int64(3)).
		WillReturnError(pgx.ErrNoRows)

	_, err := gw.SoftDelete(context.Background(), 3)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserTable_NeverSelectsPasswordHash(t *testing.T) {
	for _, col := range UserTable.Columns {
		assert.NotEqual(t, "password_hash", col)
	}
	a := UserTable.Insert(domain.UserInput{Username: "drsmith", PasswordHash: "$2a$10$hash", Role: domain.RoleDoctor})
	assert.Contains(t, a.cols, "password_hash")
	assert.Contains(t, a.args, "doctor")
}

func TestSetIfPresent(t *testing.T) {
	var a Assignments
	name := "x"
	SetIfPresent(&a, "name", &name)
	SetIfPresent[string](&a, "address", nil)
	assert.Equal(t, []string{"name"}, a.cols)
	assert.Equal(t, []any{"x"}, a.args)
}
