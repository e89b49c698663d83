package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores de dominio. Cada kind tiene un status HTTP
// estable en la capa de interfaces (ver internal/interfaces/http).
type Kind string

const (
	KindNotFound   Kind = "NOT_FOUND"  // 404
	KindValidation Kind = "VALIDATION" // 400
	KindConflict   Kind = "CONFLICT"   // 409
	KindAuth       Kind = "AUTH"       // 403
	KindInternal   Kind = "INTERNAL"   // 500
)

// Error es el error de dominio (sin dependencias externas). Message es apto
// para el cliente; Err conserva la causa original solo para diagnóstico y
// nunca se serializa hacia afuera.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap expone la causa para errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// NotFound construye un error NOT_FOUND.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Validation construye un error VALIDATION con mensaje literal.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Validationf construye un error VALIDATION con formato.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflict construye un error CONFLICT (ej. código de cupón duplicado).
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Forbidden construye un error AUTH.
func Forbidden(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

// Internal envuelve una falla de infraestructura. La causa queda adjunta para
// los logs; el cliente solo ve msg.
func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: cause}
}

// KindOf devuelve el kind de un error de dominio; cualquier otro error se
// trata como INTERNAL.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// MessageOf devuelve el mensaje apto para cliente, o uno genérico si el error
// no es de dominio (nunca filtrar causas de storage).
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "error interno"
}
