package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrParentNotFound = errors.New("categoría padre no encontrada")
	ErrOwnParent      = errors.New("una categoría no puede ser su propio padre")
	ErrCycle          = errors.New("el cambio de padre crearía un ciclo en el árbol")
	ErrHasChildren    = errors.New("la categoría tiene subcategorías")
	ErrParentInactive = errors.New("la categoría padre no está activa")
)

// ValidationError agrupa todas las reglas violadas de una entidad en un solo error,
// para que el llamador vea todos los problemas de una vez y no uno por uno.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validación: " + strings.Join(e.Violations, "; ")
}

// Unwrap permite detectar el error con errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// PartialError reporta una operación masiva best-effort que terminó con fallos
// parciales (cascada de desactivación, reordenamiento). Los elementos que sí
// se aplicaron quedan persistidos.
type PartialError struct {
	Op        string
	FailedIDs []string
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("%s: fallaron %d elementos (%s)", e.Op, len(e.FailedIDs), strings.Join(e.FailedIDs, ", "))
}
