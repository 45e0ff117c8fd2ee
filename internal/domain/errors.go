package domain

import "errors"

// Errores de dominio por tipo (sin dependencias externas).
// La capa HTTP traduce cada tipo a un código de estado; ver interfaces/http/errors.go.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Errores concretos con mensaje estable expuesto al cliente.
var (
	ErrUserNotFound    = NewError(ErrNotFound, "User not found")
	ErrClientNotFound  = NewError(ErrNotFound, "Client not found.")
	ErrProductNotFound = NewError(ErrNotFound, "Product not found.")
	ErrOrderNotFound   = NewError(ErrNotFound, "Order not found.")

	ErrUsernameExists = NewError(ErrConflict, "Username already exists")
	ErrEmailExists    = NewError(ErrConflict, "Email already exists")

	ErrInvalidCredentials = NewError(ErrUnauthorized, "Incorrect email or password")
	ErrInvalidToken       = NewError(ErrUnauthorized, "Could not validate credentials")
	ErrNotEnoughRights    = NewError(ErrForbidden, "Not enough permissions")

	ErrInvalidCategory   = NewError(ErrInvalidInput, "Invalid category")
	ErrInvalidOrderState = NewError(ErrInvalidInput, "Invalid order state")
	ErrInvalidRole       = NewError(ErrInvalidInput, "Invalid role")
	ErrInvalidValue      = NewError(ErrInvalidInput, "Invalid value")
	ErrOrderClientAbsent = NewError(ErrInvalidInput, "Client not found.")
)

// Error es un error de dominio con mensaje propio que se resuelve a su tipo con errors.Is.
type Error struct {
	kind error
	msg  string
}

// NewError construye un error de dominio del tipo indicado.
func NewError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// Kind devuelve el sentinel de tipo (ErrNotFound, ErrConflict, ...) de err, o nil si no es de dominio.
func Kind(err error) error {
	for _, k := range []error{ErrInvalidInput, ErrUnauthorized, ErrForbidden, ErrNotFound, ErrConflict} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
