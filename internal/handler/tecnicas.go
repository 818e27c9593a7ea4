package handler

import (
	"net/http"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/service"

	"github.com/gin-gonic/gin"
)

type TecnicasHandler struct{ svc service.TecnicaService }

func NewTecnicasHandler(svc service.TecnicaService) *TecnicasHandler {
	return &TecnicasHandler{svc: svc}
}

// Listar GET /tecnicas
func (h *TecnicasHandler) Listar(c *gin.Context) {
	tecnicas, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Técnicas obtenidas correctamente", tecnicas, len(tecnicas))
}

// Obtener GET /tecnicas/:id
func (h *TecnicasHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tecnica, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Técnica obtenida correctamente", tecnica)
}

// Crear POST /tecnicas
func (h *TecnicasHandler) Crear(c *gin.Context) {
	var req dto.CrearTecnicaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tecnica, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Técnica creada correctamente", tecnica)
}

// Actualizar PUT /tecnicas/:id
func (h *TecnicasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarTecnicaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tecnica, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Técnica actualizada correctamente", tecnica)
}

// Eliminar DELETE /tecnicas/:id
func (h *TecnicasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tecnica, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	filas, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Técnica eliminada correctamente", tecnica, filas)
}
