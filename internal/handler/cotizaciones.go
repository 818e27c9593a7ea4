package handler

import (
	"net/http"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/service"

	"github.com/gin-gonic/gin"
)

// ── Cotizaciones ──────────────────────────────────────────────────────────────

type CotizacionesHandler struct{ svc service.CotizacionService }

func NewCotizacionesHandler(svc service.CotizacionService) *CotizacionesHandler {
	return &CotizacionesHandler{svc: svc}
}

// Listar GET /cotizaciones
func (h *CotizacionesHandler) Listar(c *gin.Context) {
	cotizaciones, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Cotizaciones obtenidas correctamente", cotizaciones, len(cotizaciones))
}

// Obtener GET /cotizaciones/:id
func (h *CotizacionesHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cotizacion, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Cotización obtenida correctamente", cotizacion)
}

// Crear POST /cotizaciones
func (h *CotizacionesHandler) Crear(c *gin.Context) {
	var req dto.CrearCotizacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cotizacion, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Cotización creada correctamente", cotizacion)
}

// Actualizar PUT /cotizaciones/:id
func (h *CotizacionesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarCotizacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cotizacion, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Cotización actualizada correctamente", cotizacion)
}

// Eliminar DELETE /cotizaciones/:id
func (h *CotizacionesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cotizacion, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	filas, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Cotización eliminada correctamente", cotizacion, filas)
}

// DescargarPDF GET /cotizaciones/:id/pdf — genera y sirve el PDF.
func (h *CotizacionesHandler) DescargarPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ruta, err := h.svc.GenerarPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(ruta, "cotizacion.pdf")
}

// Enviar POST /cotizaciones/:id/enviar — encola el correo y responde 202.
func (h *CotizacionesHandler) Enviar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.EnviarCotizacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	correo, err := h.svc.Enviar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusAccepted, "Cotización encolada para envío", gin.H{
		"CotizacionID": id,
		"Correo":       correo,
	})
}

// ── Detalles de cotización ────────────────────────────────────────────────────

type DetalleCotizacionHandler struct{ svc service.DetalleCotizacionService }

func NewDetalleCotizacionHandler(svc service.DetalleCotizacionService) *DetalleCotizacionHandler {
	return &DetalleCotizacionHandler{svc: svc}
}

// Listar GET /detalleCotizacion
func (h *DetalleCotizacionHandler) Listar(c *gin.Context) {
	detalles, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Detalles de cotización obtenidos correctamente", detalles, len(detalles))
}

// Obtener GET /detalleCotizacion/:id
func (h *DetalleCotizacionHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	detalle, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Detalle de cotización obtenido correctamente", detalle)
}

// Crear POST /detalleCotizacion
func (h *DetalleCotizacionHandler) Crear(c *gin.Context) {
	var req dto.CrearDetalleCotizacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	detalle, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Detalle de cotización creado correctamente", detalle)
}

// Eliminar DELETE /detalleCotizacion/:id
func (h *DetalleCotizacionHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	detalle, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	filas, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Detalle de cotización eliminado correctamente", detalle, filas)
}
