package handler

import (
	"net/http"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"time"
	"unicode"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/apierror"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

var (
	reLetrasEspacios = regexp.MustCompile(`^[\p{L} ]+$`)
	reSoloLetras     = regexp.MustCompile(`^\p{L}+$`)
	reAlfanumGuion   = regexp.MustCompile(`^[\p{L}\p{N} _-]+$`)
	reNumerico       = regexp.MustCompile(`^[0-9]+$`)
)

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = validate.RegisterValidation("letras_espacios", func(fl validator.FieldLevel) bool {
		return reLetrasEspacios.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("solo_letras", func(fl validator.FieldLevel) bool {
		return reSoloLetras.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("alfanum_guion", func(fl validator.FieldLevel) bool {
		return reAlfanumGuion.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("numerico", func(fl validator.FieldLevel) bool {
		return reNumerico.MatchString(fl.Field().String())
	})
	// Los estados aceptados salen de las listas del modelo; así un estado
	// nuevo se agrega en un solo lugar.
	_ = validate.RegisterValidation("estado_pedido", func(fl validator.FieldLevel) bool {
		return slices.Contains(model.EstadosPedido, fl.Field().String())
	})
	_ = validate.RegisterValidation("estado_cotizacion", func(fl validator.FieldLevel) bool {
		return slices.Contains(model.EstadosCotizacion, fl.Field().String())
	})
	// clave_fuerte: mayúscula, minúscula, dígito y símbolo. El largo lo
	// cubren min/max en el tag.
	_ = validate.RegisterValidation("clave_fuerte", func(fl validator.FieldLevel) bool {
		var mayus, minus, digito, simbolo bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsUpper(r):
				mayus = true
			case unicode.IsLower(r):
				minus = true
			case unicode.IsDigit(r):
				digito = true
			case unicode.IsPunct(r) || unicode.IsSymbol(r):
				simbolo = true
			}
		}
		return mayus && minus && digito && simbolo
	})
}

func timestamp() string { return time.Now().UTC().Format(time.RFC3339) }

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"estado":    false,
			"mensaje":   "JSON inválido: " + err.Error(),
			"timestamp": timestamp(),
		})
		return false
	}
	if err := validate.Struct(req); err != nil {
		campos := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			campos[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"estado":    false,
			"mensaje":   "Datos inválidos",
			"campos":    campos,
			"timestamp": timestamp(),
		})
		return false
	}
	return true
}

// parseID lee el :id numérico de la ruta; con basura responde 400 y
// devuelve false.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"estado":    false,
			"mensaje":   "ID inválido",
			"timestamp": timestamp(),
		})
		return 0, false
	}
	return id, true
}

func respondOK(c *gin.Context, status int, mensaje string, datos interface{}) {
	c.JSON(status, gin.H{
		"estado":    true,
		"mensaje":   mensaje,
		"datos":     datos,
		"timestamp": timestamp(),
	})
}

// respondList agrega cantidad, que el frontend usa para los contadores.
func respondList(c *gin.Context, mensaje string, datos interface{}, cantidad int) {
	c.JSON(http.StatusOK, gin.H{
		"estado":    true,
		"mensaje":   mensaje,
		"datos":     datos,
		"cantidad":  cantidad,
		"timestamp": timestamp(),
	})
}

func respondDeleted(c *gin.Context, mensaje string, datos interface{}, filas int64) {
	c.JSON(http.StatusOK, gin.H{
		"estado":          true,
		"mensaje":         mensaje,
		"datosEliminados": datos,
		"filasAfectadas":  filas,
		"timestamp":       timestamp(),
	})
}

// respondError traduce el Kind del error a un status HTTP. El texto de un
// error interno jamás viaja al cliente: va al log y afuera sale un código
// estable.
func respondError(c *gin.Context, err error) {
	kind := apierror.KindOf(err)

	if kind == apierror.KindInterno {
		log.Error().Err(err).
			Str("ruta", c.FullPath()).
			Str("request_id", c.GetString("request_id")).
			Msg("error interno")
		c.JSON(http.StatusInternalServerError, gin.H{
			"estado":    false,
			"mensaje":   "Error interno del servidor",
			"error":     "ERR_INTERNO",
			"timestamp": timestamp(),
		})
		return
	}

	status := http.StatusBadRequest
	switch kind {
	case apierror.KindNoEncontrado:
		status = http.StatusNotFound
	case apierror.KindNoDisponible:
		status = http.StatusServiceUnavailable
	}

	body := gin.H{
		"estado":    false,
		"mensaje":   err.Error(),
		"timestamp": timestamp(),
	}
	if campos := apierror.CamposDe(err); campos != nil {
		body["campos"] = campos
	}
	c.JSON(status, body)
}
