package handler

import (
	"net/http"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/service"

	"github.com/gin-gonic/gin"
)

// Handlers de los catálogos simples: colores, tallas, telas y partes.

// ── Colores ───────────────────────────────────────────────────────────────────

type ColoresHandler struct{ svc service.ColorService }

func NewColoresHandler(svc service.ColorService) *ColoresHandler {
	return &ColoresHandler{svc: svc}
}

// Listar GET /colores
func (h *ColoresHandler) Listar(c *gin.Context) {
	colores, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Colores obtenidos correctamente", colores, len(colores))
}

// Obtener GET /colores/:id
func (h *ColoresHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	color, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Color obtenido correctamente", color)
}

// Crear POST /colores
func (h *ColoresHandler) Crear(c *gin.Context) {
	var req dto.CrearColorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	color, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Color creado correctamente", color)
}

// Actualizar PUT /colores/:id
func (h *ColoresHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarColorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	color, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Color actualizado correctamente", color)
}

// Eliminar DELETE /colores/:id
func (h *ColoresHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	color, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	filas, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Color eliminado correctamente", color, filas)
}

// ── Tallas ────────────────────────────────────────────────────────────────────

type TallasHandler struct{ svc service.TallaService }

func NewTallasHandler(svc service.TallaService) *TallasHandler {
	return &TallasHandler{svc: svc}
}

// Listar GET /tallas
func (h *TallasHandler) Listar(c *gin.Context) {
	tallas, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Tallas obtenidas correctamente", tallas, len(tallas))
}

// Obtener GET /tallas/:id
func (h *TallasHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	talla, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Talla obtenida correctamente", talla)
}

// Crear POST /tallas
func (h *TallasHandler) Crear(c *gin.Context) {
	var req dto.CrearTallaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	talla, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Talla creada correctamente", talla)
}

// Actualizar PUT /tallas/:id
func (h *TallasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarTallaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	talla, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Talla actualizada correctamente", talla)
}

// Eliminar DELETE /tallas/:id
func (h *TallasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	talla, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	filas, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Talla eliminada correctamente", talla, filas)
}

// ── Telas ─────────────────────────────────────────────────────────────────────

type TelasHandler struct{ svc service.TelaService }

func NewTelasHandler(svc service.TelaService) *TelasHandler {
	return &TelasHandler{svc: svc}
}

// Listar GET /telas
func (h *TelasHandler) Listar(c *gin.Context) {
	telas, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Telas obtenidas correctamente", telas, len(telas))
}

// Obtener GET /telas/:id
func (h *TelasHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tela, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Tela obtenida correctamente", tela)
}

// Crear POST /telas
func (h *TelasHandler) Crear(c *gin.Context) {
	var req dto.CrearTelaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tela, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Tela creada correctamente", tela)
}

// Actualizar PUT /telas/:id
func (h *TelasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarTelaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tela, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Tela actualizada correctamente", tela)
}

// Eliminar DELETE /telas/:id
func (h *TelasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tela, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	filas, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Tela eliminada correctamente", tela, filas)
}

// ── Partes ────────────────────────────────────────────────────────────────────

type PartesHandler struct{ svc service.ParteService }

func NewPartesHandler(svc service.ParteService) *PartesHandler {
	return &PartesHandler{svc: svc}
}

// Listar GET /partes
func (h *PartesHandler) Listar(c *gin.Context) {
	partes, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Partes obtenidas correctamente", partes, len(partes))
}

// Obtener GET /partes/:id
func (h *PartesHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	parte, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Parte obtenida correctamente", parte)
}

// Crear POST /partes
func (h *PartesHandler) Crear(c *gin.Context) {
	var req dto.CrearParteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	parte, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Parte creada correctamente", parte)
}

// Actualizar PUT /partes/:id
func (h *PartesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarParteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	parte, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Parte actualizada correctamente", parte)
}

// Eliminar DELETE /partes/:id
func (h *PartesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	parte, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	filas, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Parte eliminada correctamente", parte, filas)
}
