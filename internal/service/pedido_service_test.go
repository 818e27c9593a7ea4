package service_test

// Tests de proveedores, pedidos y técnicas: NIT como clave natural, el
// proveedor inactivo no recibe pedidos nuevos y la imagen de la técnica pasa
// por la validación de URL.

import (
	"context"
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

// ── Stub ProveedorRepository ──────────────────────────────────────────────────

type stubProveedorRepo struct {
	proveedores map[string]*model.Proveedor
	pedidos     map[string]int64
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{proveedores: make(map[string]*model.Proveedor), pedidos: make(map[string]int64)}
}

func (r *stubProveedorRepo) List(_ context.Context) ([]model.Proveedor, error) {
	var out []model.Proveedor
	for _, p := range r.proveedores {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProveedorRepo) FindByNit(_ context.Context, nit string) (*model.Proveedor, error) {
	p, ok := r.proveedores[nit]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clon := *p
	return &clon, nil
}

func (r *stubProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	clon := *p
	r.proveedores[p.Nit] = &clon
	return nil
}

func (r *stubProveedorRepo) Update(_ context.Context, p *model.Proveedor) error {
	clon := *p
	r.proveedores[p.Nit] = &clon
	return nil
}

func (r *stubProveedorRepo) Delete(_ context.Context, nit string) (int64, error) {
	if _, ok := r.proveedores[nit]; !ok {
		return 0, nil
	}
	delete(r.proveedores, nit)
	return 1, nil
}

func (r *stubProveedorRepo) CountPedidos(_ context.Context, nit string) (int64, error) {
	return r.pedidos[nit], nil
}

var _ repository.ProveedorRepository = (*stubProveedorRepo)(nil)

// ── Stub PedidoRepository ─────────────────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos  map[int]*model.Pedido
	nextID   int
	detalles map[int]int64
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[int]*model.Pedido), nextID: 1, detalles: make(map[int]int64)}
}

func (r *stubPedidoRepo) List(_ context.Context) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id int) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clon := *p
	return &clon, nil
}

func (r *stubPedidoRepo) Create(_ context.Context, p *model.Pedido) error {
	p.PedidoID = r.nextID
	r.nextID++
	clon := *p
	r.pedidos[p.PedidoID] = &clon
	return nil
}

func (r *stubPedidoRepo) Update(_ context.Context, p *model.Pedido) error {
	clon := *p
	r.pedidos[p.PedidoID] = &clon
	return nil
}

func (r *stubPedidoRepo) Delete(_ context.Context, id int) (int64, error) {
	if _, ok := r.pedidos[id]; !ok {
		return 0, nil
	}
	delete(r.pedidos, id)
	return 1, nil
}

func (r *stubPedidoRepo) CountDetalles(_ context.Context, id int) (int64, error) {
	return r.detalles[id], nil
}

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

func proveedorActivo() *model.Proveedor {
	return &model.Proveedor{
		Nit:       "900123456",
		Nombre:    "Textiles del Norte",
		Correo:    "ventas@textilesnorte.com",
		Telefono:  "6012345678",
		Direccion: "Calle 10 # 20-30",
		Estado:    true,
	}
}

// ── Proveedores ───────────────────────────────────────────────────────────────

func TestProveedorCrearNitDuplicado(t *testing.T) {
	repo := newStubProveedorRepo()
	require.NoError(t, repo.Create(context.Background(), proveedorActivo()))
	svc := service.NewProveedorService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{
		Nit:       "900123456",
		Nombre:    "Otro Textil",
		Correo:    "otro@example.com",
		Telefono:  "6019876543",
		Direccion: "Carrera 7 # 45-10",
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflicto, apierror.KindOf(err))
	assert.Equal(t, "Ya existe un proveedor con ese NIT", err.Error())
}

func TestProveedorEliminarBloqueadoPorPedidos(t *testing.T) {
	repo := newStubProveedorRepo()
	require.NoError(t, repo.Create(context.Background(), proveedorActivo()))
	repo.pedidos["900123456"] = 2
	svc := service.NewProveedorService(repo)

	_, err := svc.Eliminar(context.Background(), "900123456")
	require.Error(t, err)
	assert.Equal(t, "No se puede eliminar el proveedor porque tiene pedidos asociados", err.Error())
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

func TestPedidoCrearConEstadoPorDefecto(t *testing.T) {
	proveedores := newStubProveedorRepo()
	require.NoError(t, proveedores.Create(context.Background(), proveedorActivo()))
	svc := service.NewPedidoService(newStubPedidoRepo(), proveedores)

	fecha := "2026-08-15"
	pedido, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{Nit: "900123456", Fecha: &fecha})
	require.NoError(t, err)
	assert.Equal(t, model.PedidoPendiente, pedido.Estado)
	assert.Equal(t, "2026-08-15", pedido.Fecha.Format("2006-01-02"))
}

func TestPedidoCrearConProveedorInactivo(t *testing.T) {
	proveedores := newStubProveedorRepo()
	inactivo := proveedorActivo()
	inactivo.Estado = false
	require.NoError(t, proveedores.Create(context.Background(), inactivo))
	svc := service.NewPedidoService(newStubPedidoRepo(), proveedores)

	_, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{Nit: "900123456"})
	require.Error(t, err)
	assert.Equal(t, "El proveedor del pedido está inactivo", err.Error())
}

func TestPedidoCrearConProveedorInexistente(t *testing.T) {
	svc := service.NewPedidoService(newStubPedidoRepo(), newStubProveedorRepo())

	_, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{Nit: "111111111"})
	require.Error(t, err)
	assert.Equal(t, "El proveedor del pedido no existe", err.Error())
}

func TestPedidoEliminarBloqueadoPorDetalles(t *testing.T) {
	proveedores := newStubProveedorRepo()
	require.NoError(t, proveedores.Create(context.Background(), proveedorActivo()))
	pedidos := newStubPedidoRepo()
	svc := service.NewPedidoService(pedidos, proveedores)
	ctx := context.Background()

	pedido, err := svc.Crear(ctx, dto.CrearPedidoRequest{Nit: "900123456"})
	require.NoError(t, err)
	pedidos.detalles[pedido.PedidoID] = 3

	_, err = svc.Eliminar(ctx, pedido.PedidoID)
	require.Error(t, err)
	assert.Equal(t, "No se puede eliminar el pedido porque tiene detalles asociados", err.Error())
}

// ── Técnicas ──────────────────────────────────────────────────────────────────

func TestTecnicaCrearConImagenBase64(t *testing.T) {
	svc := service.NewTecnicaService(newStubTecnicaRepo())

	_, err := svc.Crear(context.Background(), dto.CrearTecnicaRequest{
		Nombre:        "Serigrafía",
		ImagenTecnica: "data:image/png;base64,iVBORw0KGgo=",
		Descripcion:   "Estampado con marcos y tintas",
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidacion, apierror.KindOf(err))
}

func TestTecnicaCrearOKYEliminarBloqueada(t *testing.T) {
	repo := newStubTecnicaRepo()
	svc := service.NewTecnicaService(repo)
	ctx := context.Background()

	creada, err := svc.Crear(ctx, dto.CrearTecnicaRequest{
		Nombre:        "Serigrafía",
		ImagenTecnica: "https://i.imgur.com/serigrafia.png",
		Descripcion:   "Estampado con marcos y tintas",
	})
	require.NoError(t, err)
	assert.True(t, creada.Estado)

	repo.cotizaciones[creada.TecnicaID] = 1
	_, err = svc.Eliminar(ctx, creada.TecnicaID)
	require.Error(t, err)
	assert.Equal(t, "No se puede eliminar la técnica porque tiene cotizaciones asociadas", err.Error())
}
