package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/taller-pro/internal/application/inventory"
	"github.com/tu-usuario/taller-pro/internal/domain"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

// IDs de los fixtures; ausenteID nunca se inserta.
var (
	partID    = uuid.NewString()
	ordenID   = uuid.NewString()
	ausenteID = uuid.NewString()
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type fakeStore struct {
	mu           sync.Mutex
	parts        map[string]*entity.Part
	movements    []*entity.StockMovement
	consumptions []*entity.PartConsumption
	orders       map[string]*entity.JobOrder
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		parts:  make(map[string]*entity.Part),
		orders: make(map[string]*entity.JobOrder),
	}
}

// fakeTxRunner serializa cada Run con un mutex, igual que el bloqueo de fila
// serializa la sección crítica en PostgreSQL.
type fakeTxRunner struct{ store *fakeStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	partRepo repository.PartRepository,
	movRepo repository.StockMovementRepository,
	consRepo repository.PartConsumptionRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(&fakePartRepo{store: r.store}, &fakeMovementRepo{store: r.store}, &fakeConsumptionRepo{store: r.store})
}

type fakePartRepo struct{ store *fakeStore }

func (r *fakePartRepo) Create(p *entity.Part) error { r.store.parts[p.ID] = p; return nil }
func (r *fakePartRepo) GetByID(id string) (*entity.Part, error) {
	if p, ok := r.store.parts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}
func (r *fakePartRepo) GetByCode(code string) (*entity.Part, error) {
	for _, p := range r.store.parts {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakePartRepo) GetForUpdate(id string) (*entity.Part, error) { return r.GetByID(id) }
func (r *fakePartRepo) UpdateQuantity(partID string, quantity int64) error {
	if p, ok := r.store.parts[partID]; ok {
		p.Quantity = quantity
	}
	return nil
}
func (r *fakePartRepo) Update(p *entity.Part) error { r.store.parts[p.ID] = p; return nil }
func (r *fakePartRepo) List(repository.PartFilter) ([]*entity.Part, error) { return nil, nil }
func (r *fakePartRepo) Delete(id string) error { delete(r.store.parts, id); return nil }

type fakeMovementRepo struct{ store *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.store.movements = append(r.store.movements, m)
	return nil
}
func (r *fakeMovementRepo) ListByPart(partID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.store.movements {
		if m.PartID == partID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeConsumptionRepo struct{ store *fakeStore }

func (r *fakeConsumptionRepo) Create(c *entity.PartConsumption) error {
	r.store.consumptions = append(r.store.consumptions, c)
	return nil
}
func (r *fakeConsumptionRepo) ListByJobOrder(jobOrderID string) ([]*entity.PartConsumption, error) {
	var out []*entity.PartConsumption
	for _, c := range r.store.consumptions {
		if c.JobOrderID == jobOrderID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeJobOrderRepo struct{ store *fakeStore }

func (r *fakeJobOrderRepo) Create(o *entity.JobOrder) error { r.store.orders[o.ID] = o; return nil }
func (r *fakeJobOrderRepo) GetByID(id string) (*entity.JobOrder, error) {
	if o, ok := r.store.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}
func (r *fakeJobOrderRepo) GetByCode(string) (*entity.JobOrder, error)      { return nil, nil }
func (r *fakeJobOrderRepo) Update(*entity.JobOrder) error                   { return nil }
func (r *fakeJobOrderRepo) List(repository.JobOrderFilter) ([]*entity.JobOrder, error) {
	return nil, nil
}
func (r *fakeJobOrderRepo) Delete(string) error                  { return nil }
func (r *fakeJobOrderRepo) CountDependents(string) (int64, error) { return 0, nil }

// ── Setup ─────────────────────────────────────────────────────────────────────

func newUseCase(t *testing.T, initialQty int64) (*inventory.StockUseCase, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	store.parts[partID] = &entity.Part{
		ID:            partID,
		Code:          "FLT-001",
		Description:   "Filtro olio",
		Quantity:      initialQty,
		PurchasePrice: decimal.RequireFromString("12.50"),
	}
	store.orders[ordenID] = &entity.JobOrder{ID: ordenID, Code: "COM-2024-001", Status: entity.JobOrderStatusOpen}
	uc := inventory.NewStockUseCase(&fakeTxRunner{store: store}, &fakeJobOrderRepo{store: store})
	return uc, store
}

// ── StockIn ───────────────────────────────────────────────────────────────────

func TestStockIn_SumaYRegistraMovimiento(t *testing.T) {
	uc, store := newUseCase(t, 5)

	res, err := uc.StockIn(context.Background(), inventory.StockInInput{
		PartID: partID, Quantity: 7, Reason: "reposición", Operator: "mario",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), res.PreviousQuantity)
	assert.Equal(t, int64(12), res.NewQuantity)
	assert.Equal(t, int64(12), store.parts[partID].Quantity)

	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementTypeStockIn, mov.Type)
	assert.Equal(t, int64(7), mov.Quantity)
	assert.Equal(t, int64(5), mov.QuantityBefore)
	assert.Equal(t, int64(12), mov.QuantityAfter)
}

func TestStockIn_CantidadNoPositiva(t *testing.T) {
	uc, store := newUseCase(t, 5)

	_, err := uc.StockIn(context.Background(), inventory.StockInInput{PartID: partID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.StockIn(context.Background(), inventory.StockInInput{PartID: partID, Quantity: -3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Equal(t, int64(5), store.parts[partID].Quantity, "sin mutación")
	assert.Empty(t, store.movements)
}

func TestStockIn_RepuestoInexistente(t *testing.T) {
	uc, _ := newUseCase(t, 5)

	_, err := uc.StockIn(context.Background(), inventory.StockInInput{PartID: ausenteID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un ID sin forma de UUID se rechaza como entrada inválida antes de tocar
// la transacción.
func TestStockIn_IDMalFormado(t *testing.T) {
	uc, store := newUseCase(t, 5)

	_, err := uc.StockIn(context.Background(), inventory.StockInInput{PartID: "abc", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.movements)
}

// ── Consume ───────────────────────────────────────────────────────────────────

func TestConsume_DescuentaConSnapshotDePrecio(t *testing.T) {
	uc, store := newUseCase(t, 10)

	cons, err := uc.Consume(context.Background(), inventory.ConsumeInput{
		JobOrderID: ordenID, PartID: partID, Quantity: 4, Operator: "luigi", Note: "cambio filtro",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(6), store.parts[partID].Quantity)
	assert.True(t, cons.UnitPrice.Equal(decimal.RequireFromString("12.50")))
	assert.True(t, cons.TotalPrice.Equal(decimal.RequireFromString("50.00")))

	// El libro refleja el mismo antes/después
	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementTypeConsumption, mov.Type)
	assert.Equal(t, int64(-4), mov.Quantity)
	assert.Equal(t, int64(10), mov.QuantityBefore)
	assert.Equal(t, int64(6), mov.QuantityAfter)
	require.NotNil(t, mov.JobOrderID)
	assert.Equal(t, ordenID, *mov.JobOrderID)
}

// El snapshot no sigue al precio: subir el precio de compra después no cambia
// el consumo registrado.
func TestConsume_SnapshotNoRetroactivo(t *testing.T) {
	uc, store := newUseCase(t, 10)

	cons, err := uc.Consume(context.Background(), inventory.ConsumeInput{
		JobOrderID: ordenID, PartID: partID, Quantity: 2,
	})
	require.NoError(t, err)

	store.parts[partID].PurchasePrice = decimal.RequireFromString("99.00")

	assert.True(t, cons.UnitPrice.Equal(decimal.RequireFromString("12.50")))
	assert.True(t, store.consumptions[0].UnitPrice.Equal(decimal.RequireFromString("12.50")))
}

func TestConsume_StockInsuficienteSinMutacion(t *testing.T) {
	uc, store := newUseCase(t, 3)

	_, err := uc.Consume(context.Background(), inventory.ConsumeInput{
		JobOrderID: ordenID, PartID: partID, Quantity: 5,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insErr)
	assert.Equal(t, int64(3), insErr.Available)
	assert.Equal(t, int64(5), insErr.Requested)

	// Ni cantidad, ni libro, ni consumos tocados
	assert.Equal(t, int64(3), store.parts[partID].Quantity)
	assert.Empty(t, store.movements)
	assert.Empty(t, store.consumptions)
}

func TestConsume_OrdenInexistente(t *testing.T) {
	uc, store := newUseCase(t, 10)

	_, err := uc.Consume(context.Background(), inventory.ConsumeInput{
		JobOrderID: ausenteID, PartID: partID, Quantity: 1,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(10), store.parts[partID].Quantity)
}

func TestConsume_IDMalFormado(t *testing.T) {
	uc, store := newUseCase(t, 10)

	_, err := uc.Consume(context.Background(), inventory.ConsumeInput{
		JobOrderID: "abc", PartID: partID, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Consume(context.Background(), inventory.ConsumeInput{
		JobOrderID: ordenID, PartID: "abc", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(10), store.parts[partID].Quantity)
}

// Dos consumos concurrentes de 6 sobre stock 10: exactamente uno pasa, el
// otro recibe stock insuficiente, y el stock final es 4 (nunca negativo,
// nunca doble descuento).
func TestConsume_ConcurrenciaUnSoloGanador(t *testing.T) {
	uc, store := newUseCase(t, 10)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Consume(context.Background(), inventory.ConsumeInput{
				JobOrderID: ordenID, PartID: partID, Quantity: 6,
			})
		}(i)
	}
	wg.Wait()

	var ok, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			insufficient++
		}
	}
	assert.Equal(t, 1, ok, "exactamente un consumo debe pasar")
	assert.Equal(t, 1, insufficient, "el otro debe fallar por stock")
	assert.Equal(t, int64(4), store.parts[partID].Quantity)
	assert.Len(t, store.movements, 1)
	assert.Len(t, store.consumptions, 1)
}

// La cantidad nunca queda negativa tras cualquier secuencia de operaciones.
func TestStock_NuncaNegativo(t *testing.T) {
	uc, store := newUseCase(t, 2)
	ctx := context.Background()

	_, _ = uc.Consume(ctx, inventory.ConsumeInput{JobOrderID: ordenID, PartID: partID, Quantity: 1})
	_, _ = uc.Consume(ctx, inventory.ConsumeInput{JobOrderID: ordenID, PartID: partID, Quantity: 5}) // falla
	_, _ = uc.StockIn(ctx, inventory.StockInInput{PartID: partID, Quantity: 3})
	_, _ = uc.Consume(ctx, inventory.ConsumeInput{JobOrderID: ordenID, PartID: partID, Quantity: 4})

	assert.GreaterOrEqual(t, store.parts[partID].Quantity, int64(0))
	assert.Equal(t, int64(0), store.parts[partID].Quantity)

	// Cada movimiento del libro encadena before/after coherentes
	for _, m := range store.movements {
		assert.Equal(t, m.QuantityAfter, m.QuantityBefore+m.Quantity)
		assert.GreaterOrEqual(t, m.QuantityAfter, int64(0))
	}
}
