package handler

import (
	"net/http"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/service"

	"github.com/gin-gonic/gin"
)

// UsuariosHandler identifica al usuario por su documento en la ruta.
type UsuariosHandler struct{ svc service.UsuarioService }

func NewUsuariosHandler(svc service.UsuarioService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

func documentoParam(c *gin.Context) (string, bool) {
	doc := c.Param("documentoId")
	if doc == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"estado":    false,
			"mensaje":   "Documento inválido",
			"timestamp": timestamp(),
		})
		return "", false
	}
	return doc, true
}

// Listar GET /usuarios
func (h *UsuariosHandler) Listar(c *gin.Context) {
	usuarios, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Usuarios obtenidos correctamente", usuarios, len(usuarios))
}

// Obtener GET /usuarios/:documentoId
func (h *UsuariosHandler) Obtener(c *gin.Context) {
	doc, ok := documentoParam(c)
	if !ok {
		return
	}
	usuario, err := h.svc.Obtener(c.Request.Context(), doc)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Usuario obtenido correctamente", usuario)
}

// Crear POST /usuarios
func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuario, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Usuario creado correctamente", usuario)
}

// Actualizar PUT /usuarios/:documentoId
func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	doc, ok := documentoParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuario, err := h.svc.Actualizar(c.Request.Context(), doc, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Usuario actualizado correctamente", usuario)
}

// Eliminar DELETE /usuarios/:documentoId
func (h *UsuariosHandler) Eliminar(c *gin.Context) {
	doc, ok := documentoParam(c)
	if !ok {
		return
	}
	usuario, err := h.svc.Obtener(c.Request.Context(), doc)
	if err != nil {
		respondError(c, err)
		return
	}
	filas, err := h.svc.Eliminar(c.Request.Context(), doc)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Usuario eliminado correctamente", usuario, filas)
}

// RolesParaFormulario GET /usuarios/util/roles
func (h *UsuariosHandler) RolesParaFormulario(c *gin.Context) {
	roles, err := h.svc.RolesParaFormulario(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Roles activos obtenidos correctamente", roles, len(roles))
}
