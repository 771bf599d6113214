// Package simerr clasifica los errores del simulador para que el observador pueda mostrar un mensaje
// específico según el tipo de falla.
package simerr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	ConfigurationError Kind = "CONFIGURATION_ERROR"
	InvalidState       Kind = "INVALID_STATE"
	UnknownProcess     Kind = "UNKNOWN_PROCESS"
	ResourceExhausted  Kind = "RESOURCE_EXHAUSTED"
	InvalidRequest     Kind = "INVALID_REQUEST"
)

// Error asocia un Kind a la operación que falló.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New arma un error del tipo kind con un mensaje formateado.
//
// Ejemplo:
//
//	return simerr.New(simerr.UnknownProcess, "memoria.Access", "PID %d no registrado", pid)
func New(kind Kind, op string, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// Wrap envuelve err con un kind; devuelve nil si err es nil.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf devuelve el Kind del primer *Error de la cadena, o "" si no hay ninguno.
func KindOf(err error) Kind {
	var simErr *Error
	if errors.As(err, &simErr) {
		return simErr.Kind
	}
	return ""
}

// Is indica si err (o alguno que envuelva) es del tipo kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
