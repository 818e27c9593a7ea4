package handler

import (
	"net/http"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/service"

	"github.com/gin-gonic/gin"
)

type RolesHandler struct{ svc service.RolService }

func NewRolesHandler(svc service.RolService) *RolesHandler {
	return &RolesHandler{svc: svc}
}

// Listar GET /roles
func (h *RolesHandler) Listar(c *gin.Context) {
	roles, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Roles obtenidos correctamente", roles, len(roles))
}

// ListarActivos GET /roles/activos
func (h *RolesHandler) ListarActivos(c *gin.Context) {
	roles, err := h.svc.ListarActivos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Roles activos obtenidos correctamente", roles, len(roles))
}

// Obtener GET /roles/:id
func (h *RolesHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rol, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Rol obtenido correctamente", rol)
}

// Crear POST /roles
func (h *RolesHandler) Crear(c *gin.Context) {
	var req dto.CrearRolRequest
	if !bindAndValidate(c, &req) {
		return
	}
	rol, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Rol creado correctamente", rol)
}

// Actualizar PUT /roles/:id
func (h *RolesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarRolRequest
	if !bindAndValidate(c, &req) {
		return
	}
	rol, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Rol actualizado correctamente", rol)
}

// CambiarEstado PATCH /roles/:id/estado
func (h *RolesHandler) CambiarEstado(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CambiarEstadoRolRequest
	if !bindAndValidate(c, &req) {
		return
	}
	rol, err := h.svc.CambiarEstado(c.Request.Context(), id, *req.Estado)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Estado del rol actualizado correctamente", rol)
}

// Eliminar DELETE /roles/:id
func (h *RolesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rol, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	filas, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Rol eliminado correctamente", rol, filas)
}
