package handler

import (
	"net/http"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/service"

	"github.com/gin-gonic/gin"
)

// ── Productos ─────────────────────────────────────────────────────────────────

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Listar GET /productos
func (h *ProductosHandler) Listar(c *gin.Context) {
	productos, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Productos obtenidos correctamente", productos, len(productos))
}

// Obtener GET /productos/:id
func (h *ProductosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	producto, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Producto obtenido correctamente", producto)
}

// ObtenerDetalle GET /productos/:id/detalle — producto con variantes,
// servido desde cache cuando está caliente.
func (h *ProductosHandler) ObtenerDetalle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	producto, err := h.svc.ObtenerDetalle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Detalle del producto obtenido correctamente", producto)
}

// Crear POST /productos
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Producto creado correctamente", producto)
}

// Actualizar PUT /productos/:id
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Producto actualizado correctamente", producto)
}

// Eliminar DELETE /productos/:id
func (h *ProductosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	producto, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	filas, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Producto eliminado correctamente", producto, filas)
}

// ── Variantes ─────────────────────────────────────────────────────────────────

type VariantesHandler struct{ svc service.VarianteService }

func NewVariantesHandler(svc service.VarianteService) *VariantesHandler {
	return &VariantesHandler{svc: svc}
}

// Listar GET /productosVariantes
func (h *VariantesHandler) Listar(c *gin.Context) {
	variantes, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Variantes obtenidas correctamente", variantes, len(variantes))
}

// Obtener GET /productosVariantes/:id
func (h *VariantesHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	variante, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Variante obtenida correctamente", variante)
}

// Crear POST /productosVariantes
func (h *VariantesHandler) Crear(c *gin.Context) {
	var req dto.CrearVarianteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	variante, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Variante creada correctamente", variante)
}

// Actualizar PUT /productosVariantes/:id
func (h *VariantesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarVarianteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	variante, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Variante actualizada correctamente", variante)
}

// Eliminar DELETE /productosVariantes/:id
func (h *VariantesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	variante, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	filas, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Variante eliminada correctamente", variante, filas)
}
