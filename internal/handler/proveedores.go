package handler

import (
	"net/http"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/service"

	"github.com/gin-gonic/gin"
)

// ProveedoresHandler identifica al proveedor por su NIT en la ruta,
// no por un serial.
type ProveedoresHandler struct{ svc service.ProveedorService }

func NewProveedoresHandler(svc service.ProveedorService) *ProveedoresHandler {
	return &ProveedoresHandler{svc: svc}
}

func nitParam(c *gin.Context) (string, bool) {
	nit := c.Param("nit")
	if nit == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"estado":    false,
			"mensaje":   "NIT inválido",
			"timestamp": timestamp(),
		})
		return "", false
	}
	return nit, true
}

// Listar GET /proveedores
func (h *ProveedoresHandler) Listar(c *gin.Context) {
	proveedores, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Proveedores obtenidos correctamente", proveedores, len(proveedores))
}

// Obtener GET /proveedores/:nit
func (h *ProveedoresHandler) Obtener(c *gin.Context) {
	nit, ok := nitParam(c)
	if !ok {
		return
	}
	proveedor, err := h.svc.Obtener(c.Request.Context(), nit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Proveedor obtenido correctamente", proveedor)
}

// Crear POST /proveedores
func (h *ProveedoresHandler) Crear(c *gin.Context) {
	var req dto.CrearProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	proveedor, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Proveedor creado correctamente", proveedor)
}

// Actualizar PUT /proveedores/:nit
func (h *ProveedoresHandler) Actualizar(c *gin.Context) {
	nit, ok := nitParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	proveedor, err := h.svc.Actualizar(c.Request.Context(), nit, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Proveedor actualizado correctamente", proveedor)
}

// Eliminar DELETE /proveedores/:nit
func (h *ProveedoresHandler) Eliminar(c *gin.Context) {
	nit, ok := nitParam(c)
	if !ok {
		return
	}
	proveedor, err := h.svc.Obtener(c.Request.Context(), nit)
	if err != nil {
		respondError(c, err)
		return
	}
	filas, err := h.svc.Eliminar(c.Request.Context(), nit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Proveedor eliminado correctamente", proveedor, filas)
}
