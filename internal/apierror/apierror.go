// Package apierror defines the business error values shared by the service
// and REST layers. Every rule violation carries a kind so the API boundary
// can translate it into a concrete HTTP status without inspecting messages.
package apierror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindInterno covers persistence or runtime failures.
	KindInterno Kind = iota
	// KindNoEncontrado: the entity does not exist for the given key.
	KindNoEncontrado
	// KindConflicto: uniqueness violation or rule conflict.
	KindConflicto
	// KindInvalido: malformed input or an unresolvable reference.
	KindInvalido
)

type Error struct {
	Kind    Kind
	Mensaje string
}

func (e *Error) Error() string { return e.Mensaje }

func NoEncontrado(format string, args ...any) *Error {
	return &Error{Kind: KindNoEncontrado, Mensaje: fmt.Sprintf(format, args...)}
}

func Conflicto(format string, args ...any) *Error {
	return &Error{Kind: KindConflicto, Mensaje: fmt.Sprintf(format, args...)}
}

func Invalido(format string, args ...any) *Error {
	return &Error{Kind: KindInvalido, Mensaje: fmt.Sprintf(format, args...)}
}

// KindDe extracts the kind from err; anything that is not an *Error is
// reported as internal.
func KindDe(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInterno
}

func EsNoEncontrado(err error) bool { return KindDe(err) == KindNoEncontrado }
func EsConflicto(err error) bool    { return KindDe(err) == KindConflicto }
func EsInvalido(err error) bool     { return KindDe(err) == KindInvalido }
