package domain

import "github.com/google/uuid"

// ValidID indica si s tiene forma de UUID. Los IDs llegan como texto por la
// ruta o el cuerpo de la petición; un valor mal formado debe rechazarse como
// entrada inválida antes de llegar a una comparación con columnas uuid.
func ValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
