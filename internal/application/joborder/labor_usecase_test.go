package joborder

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/taller-pro/internal/application/dto"
	"github.com/tu-usuario/taller-pro/internal/domain"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

func laborFixture(t *testing.T) (*LaborUseCase, *fakeOrderRepo, *fakeEmployeeRepo, *fakeLaborRepo) {
	t.Helper()
	orderRepo := newFakeOrderRepo()
	employeeRepo := newFakeEmployeeRepo()
	laborRepo := &fakeLaborRepo{}

	require.NoError(t, orderRepo.Create(&entity.JobOrder{ID: ordenID, Code: "COM-001"}))
	require.NoError(t, employeeRepo.Create(&entity.Employee{
		ID:         empleadoID,
		FirstName:  "Mario",
		LastName:   "Rossi",
		HourlyCost: decimal.RequireFromString("22.50"),
		ClientRate: decimal.RequireFromString("35.00"),
		Active:     true,
	}))
	return NewLaborUseCase(laborRepo, employeeRepo, orderRepo), orderRepo, employeeRepo, laborRepo
}

func TestRecord_SnapshotDeTarifas(t *testing.T) {
	uc, _, employeeRepo, _ := laborFixture(t)

	resp, err := uc.Record(dto.RecordLaborRequest{
		JobOrderID:    ordenID,
		EmployeeID:    empleadoID,
		Date:          "2026-03-10",
		OrdinaryHours: decimal.NewFromInt(8),
		OvertimeHours: decimal.NewFromInt(2),
		Activity:      "desmontaje",
	})
	require.NoError(t, err)

	// (8 + 2) * 22.50 = 225.00
	assert.True(t, resp.TotalCost.Equal(decimal.RequireFromString("225.00")), "total: %s", resp.TotalCost)
	assert.True(t, resp.HourlyCost.Equal(decimal.RequireFromString("22.50")))
	assert.True(t, resp.ClientRate.Equal(decimal.RequireFromString("35.00")))
	assert.Equal(t, "Rossi Mario", resp.EmployeeName)

	// la tarifa del empleado sube; la entrada ya registrada no cambia
	emp, err := employeeRepo.GetByID(empleadoID)
	require.NoError(t, err)
	emp.HourlyCost = decimal.RequireFromString("30.00")
	require.NoError(t, employeeRepo.Update(emp))

	assert.True(t, resp.HourlyCost.Equal(decimal.RequireFromString("22.50")),
		"el snapshot no se recalcula con la tarifa nueva")

	// una entrada nueva sí toma la tarifa vigente
	resp2, err := uc.Record(dto.RecordLaborRequest{
		JobOrderID:    ordenID,
		EmployeeID:    empleadoID,
		Date:          "2026-03-11",
		OrdinaryHours: decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	assert.True(t, resp2.HourlyCost.Equal(decimal.RequireFromString("30.00")))
	assert.True(t, resp2.TotalCost.Equal(decimal.RequireFromString("120.00")))
}

func TestRecord_EmpleadoInexistente(t *testing.T) {
	uc, _, _, laborRepo := laborFixture(t)

	_, err := uc.Record(dto.RecordLaborRequest{
		JobOrderID:    ordenID,
		EmployeeID:    ausenteID,
		OrdinaryHours: decimal.NewFromInt(1),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, laborRepo.rows)
}

func TestRecord_OrdenInexistente(t *testing.T) {
	uc, _, _, _ := laborFixture(t)

	_, err := uc.Record(dto.RecordLaborRequest{
		JobOrderID:    ausenteID,
		EmployeeID:    empleadoID,
		OrdinaryHours: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecord_IDMalFormado(t *testing.T) {
	uc, _, _, laborRepo := laborFixture(t)

	_, err := uc.Record(dto.RecordLaborRequest{
		JobOrderID:    "abc",
		EmployeeID:    empleadoID,
		OrdinaryHours: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Record(dto.RecordLaborRequest{
		JobOrderID:    ordenID,
		EmployeeID:    "abc",
		OrdinaryHours: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, laborRepo.rows)
}

func TestRecord_HorasInvalidas(t *testing.T) {
	uc, _, _, _ := laborFixture(t)

	_, err := uc.Record(dto.RecordLaborRequest{
		JobOrderID:    ordenID,
		EmployeeID:    empleadoID,
		OrdinaryHours: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// cero horas en total tampoco
	_, err = uc.Record(dto.RecordLaborRequest{
		JobOrderID: ordenID,
		EmployeeID: empleadoID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Record(dto.RecordLaborRequest{
		JobOrderID:    ordenID,
		EmployeeID:    empleadoID,
		Date:          "10/03/2026",
		OrdinaryHours: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
