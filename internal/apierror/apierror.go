// Package apierror clasifica los errores de negocio con un tipo estructurado
// en lugar de comparar substrings del mensaje. Los handlers mapean el Kind a
// un status HTTP; el texto interno nunca llega al cliente en errores 500.
package apierror

import "errors"

// Kind etiqueta la clase de error que el handler traduce a status HTTP.
type Kind int

const (
	KindInterno      Kind = iota // 500
	KindValidacion               // 400 — formato/longitud/campos requeridos
	KindConflicto                // 400 — duplicados, dependencias, sin campos
	KindNoEncontrado             // 404
	KindNoDisponible             // 503 — sin conexión a la base de datos
)

// Error es el error canónico de la capa de servicio.
type Error struct {
	Kind    Kind
	Mensaje string
	// Campos lleva detalle por campo cuando la validación de un request
	// falla en varios lugares a la vez.
	Campos map[string]string
}

func (e *Error) Error() string { return e.Mensaje }

func Validacion(mensaje string) *Error {
	return &Error{Kind: KindValidacion, Mensaje: mensaje}
}

func ValidacionCampos(mensaje string, campos map[string]string) *Error {
	return &Error{Kind: KindValidacion, Mensaje: mensaje, Campos: campos}
}

func Conflicto(mensaje string) *Error {
	return &Error{Kind: KindConflicto, Mensaje: mensaje}
}

func NoEncontrado(mensaje string) *Error {
	return &Error{Kind: KindNoEncontrado, Mensaje: mensaje}
}

func NoDisponible(mensaje string) *Error {
	return &Error{Kind: KindNoDisponible, Mensaje: mensaje}
}

// KindOf extrae el Kind de cualquier error de la cadena; los errores no
// clasificados cuentan como internos.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInterno
}

// CamposDe devuelve el detalle por campo si el error lo trae.
func CamposDe(err error) map[string]string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Campos
	}
	return nil
}
