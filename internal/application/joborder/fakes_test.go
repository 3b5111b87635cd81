package joborder

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

// IDs compartidos por los fixtures; ausenteID nunca se inserta.
var (
	ordenID    = uuid.NewString()
	empleadoID = uuid.NewString()
	clienteID  = uuid.NewString()
	ausenteID  = uuid.NewString()
)

// Fakes en memoria de los puertos de persistencia.

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.JobOrder

	// dependientes contados por CountDependents
	consumptions map[string]int64
	labor        map[string]int64
	costs        map[string]int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:       make(map[string]*entity.JobOrder),
		consumptions: make(map[string]int64),
		labor:        make(map[string]int64),
		costs:        make(map[string]int64),
	}
}

func (r *fakeOrderRepo) Create(order *entity.JobOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.JobOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) GetByCode(code string) (*entity.JobOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.Code == code {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) Update(order *entity.JobOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) List(filter repository.JobOrderFilter) ([]*entity.JobOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.JobOrder
	for _, o := range r.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.ClientID != "" && (o.ClientID == nil || *o.ClientID != filter.ClientID) {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) CountDependents(id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.consumptions[id] + r.labor[id] + r.costs[id], nil
}

type fakeConsumptionRepo struct {
	mu   sync.Mutex
	rows []*entity.PartConsumption
}

func (r *fakeConsumptionRepo) Create(c *entity.PartConsumption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeConsumptionRepo) ListByJobOrder(jobOrderID string) ([]*entity.PartConsumption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.PartConsumption
	for _, c := range r.rows {
		if c.JobOrderID == jobOrderID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeLaborRepo struct {
	mu   sync.Mutex
	rows []*entity.LaborEntry
}

func (r *fakeLaborRepo) Create(e *entity.LaborEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeLaborRepo) GetByID(id string) (*entity.LaborEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.rows {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLaborRepo) ListByJobOrder(jobOrderID string) ([]*entity.LaborEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.LaborEntry
	for _, e := range r.rows {
		if e.JobOrderID == jobOrderID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCostRepo struct {
	mu   sync.Mutex
	rows []*entity.AdditionalCost
}

func (r *fakeCostRepo) Create(c *entity.AdditionalCost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeCostRepo) ListByJobOrder(jobOrderID string) ([]*entity.AdditionalCost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.AdditionalCost
	for _, c := range r.rows {
		if c.JobOrderID == jobOrderID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*entity.Employee)}
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmployeeRepo) Update(e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) List(activeOnly *bool) ([]*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
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
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.employees, id)
	return nil
}
