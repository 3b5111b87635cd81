package repository

import "github.com/tu-usuario/taller-pro/internal/domain/entity"

// ClientRepository puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	List() ([]*entity.Client, error)
	Delete(id string) error
}
