package apierror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidacion, KindOf(Validacion("x")))
	assert.Equal(t, KindConflicto, KindOf(Conflicto("x")))
	assert.Equal(t, KindNoEncontrado, KindOf(NoEncontrado("x")))
	assert.Equal(t, KindNoDisponible, KindOf(NoDisponible("x")))

	// Errores sin clasificar cuentan como internos.
	assert.Equal(t, KindInterno, KindOf(errors.New("pq: deadlock detected")))
	assert.Equal(t, KindInterno, KindOf(nil))
}

func TestKindOfConWrap(t *testing.T) {
	envuelto := fmt.Errorf("crear color: %w", Conflicto("El color ya existe"))
	assert.Equal(t, KindConflicto, KindOf(envuelto))
}

func TestCamposDe(t *testing.T) {
	err := ValidacionCampos("Datos inválidos", map[string]string{"Nombre": "required"})
	campos := CamposDe(err)
	assert.Equal(t, "required", campos["Nombre"])

	assert.Nil(t, CamposDe(Conflicto("sin campos")))
	assert.Nil(t, CamposDe(errors.New("otro")))
}
