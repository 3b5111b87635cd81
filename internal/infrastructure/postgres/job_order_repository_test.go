package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

// capturingQuerier guarda la consulta y los argumentos para inspeccionarlos.
type capturingQuerier struct {
	sql  string
	args []any
}

func (q *capturingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql, q.args = sql, args
	return pgconn.CommandTag{}, nil
}

func (q *capturingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql, q.args = sql, args
	return emptyRows{}, nil
}

func (q *capturingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql, q.args = sql, args
	return noRow{}
}

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(...any) error                            { return pgx.ErrNoRows }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

type noRow struct{}

func (noRow) Scan(...any) error { return pgx.ErrNoRows }

// Sin filtro de cliente llega '' como argumento. El planificador de
// PostgreSQL evalúa los casts constantes aunque el OR los proteja, así que
// un ''::uuid directo rompería el listado completo: el parámetro solo puede
// castearse envuelto en NULLIF.
func TestJobOrderList_FiltroClienteVacioNoCasteaUUID(t *testing.T) {
	q := &capturingQuerier{}
	repo := NewJobOrderRepository(q)

	orders, err := repo.List(repository.JobOrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders)

	assert.NotContains(t, q.sql, "$2::uuid")
	assert.Contains(t, q.sql, "NULLIF($2, '')::uuid")
	assert.Equal(t, []any{"", ""}, q.args)
}

func TestJobOrderList_FiltrosLleganComoArgumentos(t *testing.T) {
	q := &capturingQuerier{}
	repo := NewJobOrderRepository(q)

	clientID := uuid.NewString()
	_, err := repo.List(repository.JobOrderFilter{Status: "open", ClientID: clientID})
	require.NoError(t, err)

	assert.Equal(t, []any{"open", clientID}, q.args)
}
