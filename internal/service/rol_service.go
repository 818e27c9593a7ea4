package service

import (
	"context"
	"errors"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/apierror"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/repository"

	"gorm.io/gorm"
)

// RolService protege los roles sembrados (administrador, cliente): no se
// renombran, no se desactivan y no se eliminan. La marca vive en la columna
// Protegido, no en una comparación de nombres que un rename rompería.
type RolService interface {
	Listar(ctx context.Context) ([]model.Rol, error)
	ListarActivos(ctx context.Context) ([]model.Rol, error)
	Obtener(ctx context.Context, id int) (*model.Rol, error)
	Crear(ctx context.Context, req dto.CrearRolRequest) (*model.Rol, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarRolRequest) (*model.Rol, error)
	CambiarEstado(ctx context.Context, id int, estado bool) (*model.Rol, error)
	Eliminar(ctx context.Context, id int) (int64, error)
}

type rolService struct {
	repo repository.RolRepository
}

func NewRolService(repo repository.RolRepository) RolService {
	return &rolService{repo: repo}
}

func (s *rolService) Listar(ctx context.Context) ([]model.Rol, error) {
	return s.repo.List(ctx)
}

func (s *rolService) ListarActivos(ctx context.Context) ([]model.Rol, error) {
	return s.repo.ListActivos(ctx)
}

func (s *rolService) Obtener(ctx context.Context, id int) (*model.Rol, error) {
	rol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El rol no existe")
		}
		return nil, err
	}
	return rol, nil
}

func (s *rolService) Crear(ctx context.Context, req dto.CrearRolRequest) (*model.Rol, error) {
	existente, err := s.repo.FindByNombre(ctx, req.Nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, apierror.Conflicto("El rol ya existe")
	}

	rol := &model.Rol{Nombre: req.Nombre, Descripcion: req.Descripcion, Estado: true}
	if req.Estado != nil {
		rol.Estado = *req.Estado
	}
	if err := s.repo.Create(ctx, rol); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("El rol ya existe")
		}
		return nil, err
	}
	return rol, nil
}

func (s *rolService) Actualizar(ctx context.Context, id int, req dto.ActualizarRolRequest) (*model.Rol, error) {
	if req.Nombre == nil && req.Descripcion == nil && req.Estado == nil {
		return nil, apierror.Conflicto("No se proporcionaron campos para actualizar")
	}

	rol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El rol no existe")
		}
		return nil, err
	}

	if rol.Protegido {
		if req.Nombre != nil && *req.Nombre != rol.Nombre {
			return nil, apierror.Conflicto("No se puede renombrar un rol protegido del sistema")
		}
		if req.Estado != nil && !*req.Estado {
			return nil, apierror.Conflicto("No se puede desactivar un rol protegido del sistema")
		}
	}

	if req.Nombre != nil {
		existente, err := s.repo.FindByNombre(ctx, *req.Nombre)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existente != nil && existente.RolID != id {
			return nil, apierror.Conflicto("Ya existe otro rol con ese nombre")
		}
		rol.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		rol.Descripcion = *req.Descripcion
	}
	if req.Estado != nil {
		rol.Estado = *req.Estado
	}

	if err := s.repo.Update(ctx, rol); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("Ya existe otro rol con ese nombre")
		}
		return nil, err
	}
	return rol, nil
}

func (s *rolService) CambiarEstado(ctx context.Context, id int, estado bool) (*model.Rol, error) {
	rol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El rol no existe")
		}
		return nil, err
	}

	if rol.Protegido && !estado {
		return nil, apierror.Conflicto("No se puede desactivar un rol protegido del sistema")
	}

	rol.Estado = estado
	if err := s.repo.Update(ctx, rol); err != nil {
		return nil, err
	}
	return rol, nil
}

func (s *rolService) Eliminar(ctx context.Context, id int) (int64, error) {
	rol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierror.NoEncontrado("El rol no existe")
		}
		return 0, err
	}

	if rol.Protegido {
		return 0, apierror.Conflicto("No se puede eliminar un rol protegido del sistema")
	}

	usuarios, err := s.repo.CountUsuarios(ctx, id)
	if err != nil {
		return 0, err
	}
	if usuarios > 0 {
		return 0, apierror.Conflicto("No se puede eliminar el rol porque tiene usuarios asociados")
	}

	return s.repo.Delete(ctx, id)
}
