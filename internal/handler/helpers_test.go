package handler

// Tests de los tags de validación propios y del mapeo de errores a status
// HTTP. El envelope de error interno jamás filtra el mensaje original.

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/apierror"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Tags de validación ────────────────────────────────────────────────────────

func TestTagLetrasEspacios(t *testing.T) {
	valido := dto.CrearColorRequest{Nombre: "Azul marino"}
	assert.NoError(t, validate.Struct(valido))

	conAcentos := dto.CrearColorRequest{Nombre: "Añil"}
	assert.NoError(t, validate.Struct(conAcentos))

	conDigitos := dto.CrearColorRequest{Nombre: "Azul 2"}
	assert.Error(t, validate.Struct(conDigitos))

	conSimbolos := dto.CrearColorRequest{Nombre: "Azul-marino"}
	assert.Error(t, validate.Struct(conSimbolos))
}

func TestTagSoloLetras(t *testing.T) {
	assert.NoError(t, validate.Struct(dto.CrearTallaRequest{Nombre: "XL"}))
	assert.Error(t, validate.Struct(dto.CrearTallaRequest{Nombre: "X L"}))
	assert.Error(t, validate.Struct(dto.CrearTallaRequest{Nombre: "38"}))
}

func TestTagAlfanumGuion(t *testing.T) {
	assert.NoError(t, validate.Struct(dto.CrearInsumoRequest{Nombre: "Tinta negra 500ml"}))
	assert.NoError(t, validate.Struct(dto.CrearInsumoRequest{Nombre: "Vinilo_DTF-A3"}))
	assert.Error(t, validate.Struct(dto.CrearInsumoRequest{Nombre: "Tinta (negra)"}))
}

func TestTagNumerico(t *testing.T) {
	req := dto.CrearProveedorRequest{
		Nit:       "900123456",
		Nombre:    "Textiles del Norte",
		Correo:    "ventas@textilesnorte.com",
		Telefono:  "6012345678",
		Direccion: "Calle 10 # 20-30",
	}
	assert.NoError(t, validate.Struct(req))

	req.Nit = "900-123456"
	assert.Error(t, validate.Struct(req))
}

func TestTagClaveFuerte(t *testing.T) {
	base := dto.CrearUsuarioRequest{
		DocumentoID: "1034567890",
		Nombre:      "Laura Gómez",
		Correo:      "laura@example.com",
		Direccion:   "Carrera 45 # 12-30",
		Telefono:    "3001234567",
		RolID:       1,
	}

	base.Contrasena = "Segura123*"
	assert.NoError(t, validate.Struct(base))

	// Sin símbolo.
	base.Contrasena = "Segura12345"
	assert.Error(t, validate.Struct(base))

	// Sin mayúscula.
	base.Contrasena = "segura123*"
	assert.Error(t, validate.Struct(base))

	// Sin dígito.
	base.Contrasena = "Segurísima*"
	assert.Error(t, validate.Struct(base))

	// Corta, la atrapa min=8.
	base.Contrasena = "Se1*"
	assert.Error(t, validate.Struct(base))
}

func TestTagEstadoPedido(t *testing.T) {
	req := dto.CrearPedidoRequest{Nit: "900123456"}

	for _, estado := range model.EstadosPedido {
		req.Estado = &estado
		assert.NoError(t, validate.Struct(req), "estado %q", estado)
	}

	invalido := "Despachado"
	req.Estado = &invalido
	assert.Error(t, validate.Struct(req))

	// Omitido pasa: el servicio aplica Pendiente por defecto.
	req.Estado = nil
	assert.NoError(t, validate.Struct(req))
}

func TestTagEstadoCotizacion(t *testing.T) {
	req := dto.ActualizarCotizacionRequest{}

	for _, estado := range model.EstadosCotizacion {
		req.Estado = &estado
		assert.NoError(t, validate.Struct(req), "estado %q", estado)
	}

	invalido := "Cancelada"
	req.Estado = &invalido
	assert.Error(t, validate.Struct(req))
}

func TestDecimalConTagGt(t *testing.T) {
	req := dto.CrearVarianteRequest{
		ProductoID: 1,
		ColorID:    1,
		TallaID:    1,
		Precio:     decimal.RequireFromString("35000.00"),
	}
	assert.NoError(t, validate.Struct(req))

	req.Precio = decimal.Zero
	assert.Error(t, validate.Struct(req), "precio cero no pasa gt=0")
}

// ── parseID ───────────────────────────────────────────────────────────────────

func TestParseID(t *testing.T) {
	casos := []struct {
		param string
		ok    bool
	}{
		{"7", true},
		{"0", false},
		{"-3", false},
		{"abc", false},
		{"", false},
	}

	for _, caso := range casos {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: caso.param}}

		id, ok := parseID(c)
		assert.Equal(t, caso.ok, ok, "param %q", caso.param)
		if caso.ok {
			assert.Equal(t, 7, id)
		} else {
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}

// ── respondError ──────────────────────────────────────────────────────────────

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRespondErrorNoEncontrado(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, apierror.NoEncontrado("El color no existe"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := envelope(t, w)
	assert.Equal(t, false, body["estado"])
	assert.Equal(t, "El color no existe", body["mensaje"])
}

func TestRespondErrorConflicto(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, apierror.Conflicto("El color ya existe"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "El color ya existe", envelope(t, w)["mensaje"])
}

func TestRespondErrorNoDisponible(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, apierror.NoDisponible("La cola de envío no está disponible"))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRespondErrorInternoNoFiltraDetalle(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, errors.New("pq: connection refused on host 10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := envelope(t, w)
	assert.Equal(t, "Error interno del servidor", body["mensaje"])
	assert.Equal(t, "ERR_INTERNO", body["error"])
	assert.NotContains(t, w.Body.String(), "10.0.0.5", "el detalle interno no viaja al cliente")
}

func TestRespondErrorConCampos(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, apierror.ValidacionCampos("Datos inválidos", map[string]string{"Nombre": "letras_espacios"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := envelope(t, w)
	campos, ok := body["campos"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "letras_espacios", campos["Nombre"])
}
