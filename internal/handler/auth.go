package handler

import (
	"net/http"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/middleware"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Inicio de sesión correcto", resp)
}

// Refresh POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Token renovado correctamente", resp)
}

// Perfil GET /auth/perfil — requiere JWT.
func (h *AuthHandler) Perfil(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Perfil(c.Request.Context(), claims.DocumentoID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Perfil obtenido correctamente", resp)
}
