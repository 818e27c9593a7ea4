package handler

import (
	"net/http"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/service"

	"github.com/gin-gonic/gin"
)

// ── Pedidos ───────────────────────────────────────────────────────────────────

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Listar GET /pedidos
func (h *PedidosHandler) Listar(c *gin.Context) {
	pedidos, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Pedidos obtenidos correctamente", pedidos, len(pedidos))
}

// Obtener GET /pedidos/:id
func (h *PedidosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pedido, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Pedido obtenido correctamente", pedido)
}

// Crear POST /pedidos
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pedido, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Pedido creado correctamente", pedido)
}

// Actualizar PUT /pedidos/:id
func (h *PedidosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pedido, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Pedido actualizado correctamente", pedido)
}

// Eliminar DELETE /pedidos/:id
func (h *PedidosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pedido, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	filas, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Pedido eliminado correctamente", pedido, filas)
}

// ── Detalles de pedido ────────────────────────────────────────────────────────

type DetallePedidoHandler struct{ svc service.DetallePedidoService }

func NewDetallePedidoHandler(svc service.DetallePedidoService) *DetallePedidoHandler {
	return &DetallePedidoHandler{svc: svc}
}

// Listar GET /detallePedido
func (h *DetallePedidoHandler) Listar(c *gin.Context) {
	detalles, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Detalles de pedido obtenidos correctamente", detalles, len(detalles))
}

// Obtener GET /detallePedido/:id
func (h *DetallePedidoHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	detalle, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Detalle de pedido obtenido correctamente", detalle)
}

// Crear POST /detallePedido
func (h *DetallePedidoHandler) Crear(c *gin.Context) {
	var req dto.CrearDetallePedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	detalle, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Detalle de pedido creado correctamente", detalle)
}

// Eliminar DELETE /detallePedido/:id
func (h *DetallePedidoHandler) Eliminar(c *gin.Context) {
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
	respondDeleted(c, "Detalle de pedido eliminado correctamente", detalle, filas)
}
