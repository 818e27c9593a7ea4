package service

import (
	"context"
	"errors"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/apierror"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type UsuarioService interface {
	Listar(ctx context.Context) ([]dto.UsuarioResponse, error)
	Obtener(ctx context.Context, documentoID string) (*dto.UsuarioResponse, error)
	Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	Actualizar(ctx context.Context, documentoID string, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	Eliminar(ctx context.Context, documentoID string) (int64, error)
	// RolesParaFormulario alimenta el combo de roles del formulario de alta.
	RolesParaFormulario(ctx context.Context) ([]model.Rol, error)
}

type usuarioService struct {
	repo    repository.UsuarioRepository
	rolRepo repository.RolRepository
}

func NewUsuarioService(repo repository.UsuarioRepository, rolRepo repository.RolRepository) UsuarioService {
	return &usuarioService{repo: repo, rolRepo: rolRepo}
}

// mapUsuario arma la respuesta sin rastro de la contraseña.
func mapUsuario(u *model.Usuario) *dto.UsuarioResponse {
	resp := &dto.UsuarioResponse{
		DocumentoID: u.DocumentoID,
		Nombre:      u.Nombre,
		Correo:      u.Correo,
		Direccion:   u.Direccion,
		Telefono:    u.Telefono,
		RolID:       u.RolID,
	}
	if u.Rol != nil {
		resp.Rol = u.Rol.Nombre
	}
	return resp
}

func (s *usuarioService) Listar(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		resp = append(resp, *mapUsuario(&usuarios[i]))
	}
	return resp, nil
}

func (s *usuarioService) Obtener(ctx context.Context, documentoID string) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByDocumento(ctx, documentoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El usuario no existe")
		}
		return nil, err
	}
	return mapUsuario(u), nil
}

// validarRolActivo exige que el rol exista y esté activo antes de asignarlo.
func (s *usuarioService) validarRolActivo(ctx context.Context, rolID int) error {
	rol, err := s.rolRepo.FindByID(ctx, rolID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.Conflicto("El rol asignado no existe")
		}
		return err
	}
	if !rol.Estado {
		return apierror.Conflicto("El rol asignado está inactivo")
	}
	return nil
}

func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	existente, err := s.repo.FindByDocumento(ctx, req.DocumentoID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, apierror.Conflicto("Ya existe un usuario con ese documento")
	}

	porCorreo, err := s.repo.FindByCorreo(ctx, req.Correo)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if porCorreo != nil {
		return nil, apierror.Conflicto("Ya existe un usuario con ese correo")
	}

	if err := s.validarRolActivo(ctx, req.RolID); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &model.Usuario{
		DocumentoID:    req.DocumentoID,
		Nombre:         req.Nombre,
		Correo:         req.Correo,
		Direccion:      req.Direccion,
		Telefono:       req.Telefono,
		ContrasenaHash: string(hash),
		RolID:          req.RolID,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("Ya existe un usuario con ese documento o correo")
		}
		return nil, err
	}

	// Recarga con el rol para la respuesta.
	creado, err := s.repo.FindByDocumento(ctx, u.DocumentoID)
	if err != nil {
		return mapUsuario(u), nil
	}
	return mapUsuario(creado), nil
}

func (s *usuarioService) Actualizar(ctx context.Context, documentoID string, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	if req.Nombre == nil && req.Correo == nil && req.Direccion == nil &&
		req.Telefono == nil && req.Contrasena == nil && req.RolID == nil {
		return nil, apierror.Conflicto("No se proporcionaron campos para actualizar")
	}

	u, err := s.repo.FindByDocumento(ctx, documentoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El usuario no existe")
		}
		return nil, err
	}

	if req.Correo != nil {
		porCorreo, err := s.repo.FindByCorreo(ctx, *req.Correo)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if porCorreo != nil && porCorreo.DocumentoID != documentoID {
			return nil, apierror.Conflicto("Ya existe otro usuario con ese correo")
		}
		u.Correo = *req.Correo
	}
	if req.RolID != nil {
		if err := s.validarRolActivo(ctx, *req.RolID); err != nil {
			return nil, err
		}
		u.RolID = *req.RolID
		u.Rol = nil
	}
	if req.Nombre != nil {
		u.Nombre = *req.Nombre
	}
	if req.Direccion != nil {
		u.Direccion = *req.Direccion
	}
	if req.Telefono != nil {
		u.Telefono = *req.Telefono
	}
	if req.Contrasena != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Contrasena), bcryptCost)
		if err != nil {
			return nil, err
		}
		u.ContrasenaHash = string(hash)
	}

	if err := s.repo.Update(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("Ya existe otro usuario con ese correo")
		}
		return nil, err
	}

	actualizado, err := s.repo.FindByDocumento(ctx, documentoID)
	if err != nil {
		return mapUsuario(u), nil
	}
	return mapUsuario(actualizado), nil
}

func (s *usuarioService) Eliminar(ctx context.Context, documentoID string) (int64, error) {
	if _, err := s.repo.FindByDocumento(ctx, documentoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierror.NoEncontrado("El usuario no existe")
		}
		return 0, err
	}

	dependientes, err := s.repo.CountCotizaciones(ctx, documentoID)
	if err != nil {
		return 0, err
	}
	if dependientes > 0 {
		return 0, apierror.Conflicto("No se puede eliminar el usuario porque tiene cotizaciones asociadas")
	}

	return s.repo.Delete(ctx, documentoID)
}

func (s *usuarioService) RolesParaFormulario(ctx context.Context) ([]model.Rol, error) {
	return s.rolRepo.ListActivos(ctx)
}
