package service_test

// Tests de roles: los protegidos (administrador, cliente) no se renombran,
// no se desactivan y no se eliminan; el resto sigue las reglas comunes.

import (
	"context"
	"strings"
	"testing"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/apierror"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/repository"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stub RolRepository ────────────────────────────────────────────────────────

type stubRolRepo struct {
	roles    map[int]*model.Rol
	nextID   int
	usuarios map[int]int64 // rolID → usuarios que lo tienen asignado
}

func newStubRolRepo() *stubRolRepo {
	return &stubRolRepo{roles: make(map[int]*model.Rol), nextID: 1, usuarios: make(map[int]int64)}
}

// seed agrega un rol directo al stub, como lo harían las migraciones.
func (r *stubRolRepo) seed(rol model.Rol) *model.Rol {
	rol.RolID = r.nextID
	r.nextID++
	r.roles[rol.RolID] = &rol
	return &rol
}

func (r *stubRolRepo) List(_ context.Context) ([]model.Rol, error) {
	var out []model.Rol
	for _, rol := range r.roles {
		out = append(out, *rol)
	}
	return out, nil
}

func (r *stubRolRepo) ListActivos(_ context.Context) ([]model.Rol, error) {
	var out []model.Rol
	for _, rol := range r.roles {
		if rol.Estado {
			out = append(out, *rol)
		}
	}
	return out, nil
}

func (r *stubRolRepo) FindByID(_ context.Context, id int) (*model.Rol, error) {
	rol, ok := r.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clon := *rol
	return &clon, nil
}

func (r *stubRolRepo) FindByNombre(_ context.Context, nombre string) (*model.Rol, error) {
	for _, rol := range r.roles {
		if strings.EqualFold(rol.Nombre, nombre) {
			clon := *rol
			return &clon, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRolRepo) Create(_ context.Context, rol *model.Rol) error {
	rol.RolID = r.nextID
	r.nextID++
	clon := *rol
	r.roles[rol.RolID] = &clon
	return nil
}

func (r *stubRolRepo) Update(_ context.Context, rol *model.Rol) error {
	clon := *rol
	r.roles[rol.RolID] = &clon
	return nil
}

func (r *stubRolRepo) Delete(_ context.Context, id int) (int64, error) {
	if _, ok := r.roles[id]; !ok {
		return 0, nil
	}
	delete(r.roles, id)
	return 1, nil
}

func (r *stubRolRepo) CountUsuarios(_ context.Context, id int) (int64, error) {
	return r.usuarios[id], nil
}

var _ repository.RolRepository = (*stubRolRepo)(nil)

func strPtr(v string) *string { return &v }

// ── Roles protegidos ──────────────────────────────────────────────────────────

func TestRolProtegidoNoSeRenombra(t *testing.T) {
	repo := newStubRolRepo()
	admin := repo.seed(model.Rol{Nombre: model.RolAdministrador, Descripcion: "Acceso total al sistema", Estado: true, Protegido: true})
	svc := service.NewRolService(repo)

	_, err := svc.Actualizar(context.Background(), admin.RolID, dto.ActualizarRolRequest{Nombre: strPtr("superadmin")})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflicto, apierror.KindOf(err))
	assert.Equal(t, "No se puede renombrar un rol protegido del sistema", err.Error())
}

func TestRolProtegidoPermiteCambiarDescripcion(t *testing.T) {
	repo := newStubRolRepo()
	admin := repo.seed(model.Rol{Nombre: model.RolAdministrador, Descripcion: "Acceso total al sistema", Estado: true, Protegido: true})
	svc := service.NewRolService(repo)

	actualizado, err := svc.Actualizar(context.Background(), admin.RolID, dto.ActualizarRolRequest{
		Descripcion: strPtr("Administra todos los módulos del taller"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Administra todos los módulos del taller", actualizado.Descripcion)
}

func TestRolProtegidoNoSeDesactiva(t *testing.T) {
	repo := newStubRolRepo()
	cliente := repo.seed(model.Rol{Nombre: model.RolCliente, Descripcion: "Cliente del taller de estampados", Estado: true, Protegido: true})
	svc := service.NewRolService(repo)
	ctx := context.Background()

	_, err := svc.CambiarEstado(ctx, cliente.RolID, false)
	require.Error(t, err)
	assert.Equal(t, "No se puede desactivar un rol protegido del sistema", err.Error())

	// Por la vía del PUT tampoco.
	_, err = svc.Actualizar(ctx, cliente.RolID, dto.ActualizarRolRequest{Estado: boolPtr(false)})
	require.Error(t, err)
	assert.Equal(t, "No se puede desactivar un rol protegido del sistema", err.Error())
}

func TestRolProtegidoNoSeElimina(t *testing.T) {
	repo := newStubRolRepo()
	admin := repo.seed(model.Rol{Nombre: model.RolAdministrador, Descripcion: "Acceso total al sistema", Estado: true, Protegido: true})
	svc := service.NewRolService(repo)

	_, err := svc.Eliminar(context.Background(), admin.RolID)
	require.Error(t, err)
	assert.Equal(t, "No se puede eliminar un rol protegido del sistema", err.Error())
}

// ── Roles comunes ─────────────────────────────────────────────────────────────

func TestRolCrearDuplicado(t *testing.T) {
	repo := newStubRolRepo()
	repo.seed(model.Rol{Nombre: "vendedor", Descripcion: "Atiende el mostrador del taller", Estado: true})
	svc := service.NewRolService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearRolRequest{
		Nombre:      "Vendedor",
		Descripcion: "Atiende el mostrador del taller",
	})
	require.Error(t, err)
	assert.Equal(t, "El rol ya existe", err.Error())
}

func TestRolEliminarBloqueadoPorUsuarios(t *testing.T) {
	repo := newStubRolRepo()
	vendedor := repo.seed(model.Rol{Nombre: "vendedor", Descripcion: "Atiende el mostrador del taller", Estado: true})
	repo.usuarios[vendedor.RolID] = 4
	svc := service.NewRolService(repo)

	_, err := svc.Eliminar(context.Background(), vendedor.RolID)
	require.Error(t, err)
	assert.Equal(t, "No se puede eliminar el rol porque tiene usuarios asociados", err.Error())
}

func TestRolComunSeDesactivaYReactiva(t *testing.T) {
	repo := newStubRolRepo()
	vendedor := repo.seed(model.Rol{Nombre: "vendedor", Descripcion: "Atiende el mostrador del taller", Estado: true})
	svc := service.NewRolService(repo)
	ctx := context.Background()

	apagado, err := svc.CambiarEstado(ctx, vendedor.RolID, false)
	require.NoError(t, err)
	assert.False(t, apagado.Estado)

	encendido, err := svc.CambiarEstado(ctx, vendedor.RolID, true)
	require.NoError(t, err)
	assert.True(t, encendido.Estado)
}

func TestRolListarActivosExcluyeInactivos(t *testing.T) {
	repo := newStubRolRepo()
	repo.seed(model.Rol{Nombre: "vendedor", Descripcion: "Atiende el mostrador del taller", Estado: true})
	repo.seed(model.Rol{Nombre: "bodeguero", Descripcion: "Controla el inventario de insumos", Estado: false})
	svc := service.NewRolService(repo)

	activos, err := svc.ListarActivos(context.Background())
	require.NoError(t, err)
	require.Len(t, activos, 1)
	assert.Equal(t, "vendedor", activos[0].Nombre)
}
