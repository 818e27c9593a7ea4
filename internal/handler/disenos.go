package handler

import (
	"net/http"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/service"

	"github.com/gin-gonic/gin"
)

// DisenosHandler expone los diseños en solo lectura.
type DisenosHandler struct{ svc service.DisenoService }

func NewDisenosHandler(svc service.DisenoService) *DisenosHandler {
	return &DisenosHandler{svc: svc}
}

// Listar GET /disenos
func (h *DisenosHandler) Listar(c *gin.Context) {
	disenos, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Diseños obtenidos correctamente", disenos, len(disenos))
}

// Obtener GET /disenos/:id
func (h *DisenosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	diseno, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Diseño obtenido correctamente", diseno)
}

// ListarDetalles GET /detalleDiseno
func (h *DisenosHandler) ListarDetalles(c *gin.Context) {
	detalles, err := h.svc.ListarDetalles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Detalles de diseño obtenidos correctamente", detalles, len(detalles))
}

// ObtenerDetalle GET /detalleDiseno/:id
func (h *DisenosHandler) ObtenerDetalle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	detalle, err := h.svc.ObtenerDetalle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Detalle de diseño obtenido correctamente", detalle)
}
