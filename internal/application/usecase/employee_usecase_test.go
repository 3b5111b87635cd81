package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/taller-pro/internal/application/dto"
	"github.com/tu-usuario/taller-pro/internal/domain"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

type fakeEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*entity.Employee)}
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmployeeRepo) Update(e *entity.Employee) error {
	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) List(activeOnly *bool) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range r.employees {
		if activeOnly != nil && *activeOnly && !e.Active {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Delete(id string) error {
	delete(r.employees, id)
	return nil
}

// Las tarifas alimentan los snapshots del registro de horas: un valor
// negativo produciría costos de mano de obra negativos.
func TestEmployeeCreate_TarifaNegativa(t *testing.T) {
	uc := NewEmployeeUseCase(newFakeEmployeeRepo())

	_, err := uc.Create(dto.CreateEmployeeRequest{
		FirstName:  "Mario",
		LastName:   "Rossi",
		HourlyCost: decimal.RequireFromString("-5.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateEmployeeRequest{
		FirstName:  "Mario",
		LastName:   "Rossi",
		ClientRate: decimal.RequireFromString("-1.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeUpdate_TarifaNegativa(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := NewEmployeeUseCase(repo)

	created, err := uc.Create(dto.CreateEmployeeRequest{
		FirstName:  "Mario",
		LastName:   "Rossi",
		HourlyCost: decimal.RequireFromString("22.50"),
		ClientRate: decimal.RequireFromString("35.00"),
	})
	require.NoError(t, err)

	neg := decimal.RequireFromString("-10.00")
	_, err = uc.Update(created.ID, dto.UpdateEmployeeRequest{HourlyCost: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(created.ID, dto.UpdateEmployeeRequest{ClientRate: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// la tarifa persistida no se tocó
	resp, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, resp.HourlyCost.Equal(decimal.RequireFromString("22.50")))
	assert.True(t, resp.ClientRate.Equal(decimal.RequireFromString("35.00")))
}

func TestEmployeeIDMalFormado_EsEntradaInvalida(t *testing.T) {
	uc := NewEmployeeUseCase(newFakeEmployeeRepo())

	_, err := uc.GetByID("abc")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update("abc", dto.UpdateEmployeeRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.ErrorIs(t, uc.Delete("abc"), domain.ErrInvalidInput)
}
