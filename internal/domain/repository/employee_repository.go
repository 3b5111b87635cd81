package repository

import "github.com/tu-usuario/taller-pro/internal/domain/entity"

// EmployeeRepository puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	// List lista empleados; con activeOnly != nil filtra por Active.
	List(activeOnly *bool) ([]*entity.Employee, error)
	Delete(id string) error
}
