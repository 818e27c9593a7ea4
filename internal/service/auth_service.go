package service

import (
	"context"
	"errors"
	"time"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/apierror"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/config"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/middleware"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	Perfil(ctx context.Context, documentoID string) (*dto.UsuarioResponse, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	// Mensaje único para correo inexistente y contraseña mala: no se le
	// regala a un atacante saber cuál de los dos falló.
	u, err := s.repo.FindByCorreo(ctx, req.Correo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Validacion("Credenciales inválidas")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.ContrasenaHash), []byte(req.Contrasena)); err != nil {
		return nil, apierror.Validacion("Credenciales inválidas")
	}

	if u.Rol != nil && !u.Rol.Estado {
		return nil, apierror.Validacion("El rol del usuario está inactivo")
	}

	return s.emitirTokens(u)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	claims := &middleware.JWTClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apierror.Validacion("Refresh token inválido o expirado")
	}

	u, err := s.repo.FindByDocumento(ctx, claims.DocumentoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Validacion("El usuario del token ya no existe")
		}
		return nil, err
	}

	return s.emitirTokens(u)
}

func (s *authService) Perfil(ctx context.Context, documentoID string) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByDocumento(ctx, documentoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El usuario no existe")
		}
		return nil, err
	}
	return mapUsuario(u), nil
}

func (s *authService) emitirTokens(u *model.Usuario) (*dto.LoginResponse, error) {
	access, err := s.firmarToken(u, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refresh, err := s.firmarToken(u, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		Usuario:      *mapUsuario(u),
	}, nil
}

func (s *authService) firmarToken(u *model.Usuario, duracion time.Duration) (string, error) {
	rol := ""
	if u.Rol != nil {
		rol = u.Rol.Nombre
	}
	claims := middleware.JWTClaims{
		DocumentoID: u.DocumentoID,
		Nombre:      u.Nombre,
		Rol:         rol,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duracion)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
