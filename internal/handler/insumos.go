package handler

import (
	"net/http"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/service"

	"github.com/gin-gonic/gin"
)

type InsumosHandler struct{ svc service.InsumoService }

func NewInsumosHandler(svc service.InsumoService) *InsumosHandler {
	return &InsumosHandler{svc: svc}
}

// Listar GET /insumos
func (h *InsumosHandler) Listar(c *gin.Context) {
	insumos, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Insumos obtenidos correctamente", insumos, len(insumos))
}

// ListarActivos GET /insumos/activos
func (h *InsumosHandler) ListarActivos(c *gin.Context) {
	insumos, err := h.svc.ListarActivos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Insumos activos obtenidos correctamente", insumos, len(insumos))
}

// Obtener GET /insumos/:id
func (h *InsumosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	insumo, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Insumo obtenido correctamente", insumo)
}

// Crear POST /insumos
func (h *InsumosHandler) Crear(c *gin.Context) {
	var req dto.CrearInsumoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	insumo, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Insumo creado correctamente", insumo)
}

// Actualizar PUT /insumos/:id
func (h *InsumosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarInsumoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	insumo, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Insumo actualizado correctamente", insumo)
}

// AjustarStock PATCH /insumos/:id/stock
func (h *InsumosHandler) AjustarStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AjustarStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ajuste, err := h.svc.AjustarStock(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Stock ajustado correctamente", ajuste)
}

// Eliminar DELETE /insumos/:id
func (h *InsumosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	insumo, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	filas, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Insumo eliminado correctamente", insumo, filas)
}
