package service_test

// Tests de cotizaciones: subtotal = precio de la variante × cantidad, el
// total de la cabecera sincronizado con los detalles, referencias inactivas
// rechazadas y el encolado del envío por correo.

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/apierror"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/config"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/repository"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stub CotizacionRepository ─────────────────────────────────────────────────

type stubCotizacionRepo struct {
	cotizaciones map[int]*model.Cotizacion
	nextID       int
	usuarios     *stubUsuarioRepo // para simular el Preload("Usuario")
}

func newStubCotizacionRepo(usuarios *stubUsuarioRepo) *stubCotizacionRepo {
	return &stubCotizacionRepo{cotizaciones: make(map[int]*model.Cotizacion), nextID: 1, usuarios: usuarios}
}

func (r *stubCotizacionRepo) conUsuario(c *model.Cotizacion) *model.Cotizacion {
	clon := *c
	if r.usuarios != nil {
		if u, ok := r.usuarios.usuarios[c.DocumentoID]; ok {
			uClon := *u
			clon.Usuario = &uClon
		}
	}
	return &clon
}

func (r *stubCotizacionRepo) List(_ context.Context) ([]model.Cotizacion, error) {
	var out []model.Cotizacion
	for _, c := range r.cotizaciones {
		out = append(out, *r.conUsuario(c))
	}
	return out, nil
}

func (r *stubCotizacionRepo) FindByID(_ context.Context, id int) (*model.Cotizacion, error) {
	c, ok := r.cotizaciones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.conUsuario(c), nil
}

func (r *stubCotizacionRepo) FindCompleta(ctx context.Context, id int) (*model.Cotizacion, error) {
	return r.FindByID(ctx, id)
}

func (r *stubCotizacionRepo) Create(_ context.Context, c *model.Cotizacion) error {
	c.CotizacionID = r.nextID
	r.nextID++
	clon := *c
	r.cotizaciones[c.CotizacionID] = &clon
	return nil
}

func (r *stubCotizacionRepo) Update(_ context.Context, c *model.Cotizacion) error {
	clon := *c
	clon.Usuario = nil
	r.cotizaciones[c.CotizacionID] = &clon
	return nil
}

func (r *stubCotizacionRepo) Delete(_ context.Context, id int) (int64, error) {
	if _, ok := r.cotizaciones[id]; !ok {
		return 0, nil
	}
	delete(r.cotizaciones, id)
	return 1, nil
}

func (r *stubCotizacionRepo) CountDetalles(_ context.Context, id int) (int64, error) {
	c, ok := r.cotizaciones[id]
	if !ok {
		return 0, nil
	}
	return int64(len(c.Detalles)), nil
}

var _ repository.CotizacionRepository = (*stubCotizacionRepo)(nil)

// ── Stub DetalleCotizacionRepository ──────────────────────────────────────────

// stubDetalleCotRepo replica la invariante del repositorio real: cada alta o
// baja de detalle deja ValorTotal de la cabecera igual a la suma de subtotales.
type stubDetalleCotRepo struct {
	detalles     map[int]*model.DetalleCotizacion
	nextID       int
	cotizaciones *stubCotizacionRepo
}

func newStubDetalleCotRepo(cotizaciones *stubCotizacionRepo) *stubDetalleCotRepo {
	return &stubDetalleCotRepo{detalles: make(map[int]*model.DetalleCotizacion), nextID: 1, cotizaciones: cotizaciones}
}

func (r *stubDetalleCotRepo) recalcularTotal(cotizacionID int) {
	total := decimal.Zero
	var vivos []model.DetalleCotizacion
	for _, d := range r.detalles {
		if d.CotizacionID == cotizacionID {
			total = total.Add(d.Subtotal)
			vivos = append(vivos, *d)
		}
	}
	if c, ok := r.cotizaciones.cotizaciones[cotizacionID]; ok {
		c.ValorTotal = total
		c.Detalles = vivos
	}
}

func (r *stubDetalleCotRepo) List(_ context.Context) ([]model.DetalleCotizacion, error) {
	var out []model.DetalleCotizacion
	for _, d := range r.detalles {
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDetalleCotRepo) ListByCotizacion(_ context.Context, cotizacionID int) ([]model.DetalleCotizacion, error) {
	var out []model.DetalleCotizacion
	for _, d := range r.detalles {
		if d.CotizacionID == cotizacionID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *stubDetalleCotRepo) FindByID(_ context.Context, id int) (*model.DetalleCotizacion, error) {
	d, ok := r.detalles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clon := *d
	return &clon, nil
}

func (r *stubDetalleCotRepo) CreateConTotal(_ context.Context, d *model.DetalleCotizacion) error {
	d.DetalleID = r.nextID
	r.nextID++
	clon := *d
	r.detalles[d.DetalleID] = &clon
	r.recalcularTotal(d.CotizacionID)
	return nil
}

func (r *stubDetalleCotRepo) DeleteConTotal(_ context.Context, id int) (int64, error) {
	d, ok := r.detalles[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	delete(r.detalles, id)
	r.recalcularTotal(d.CotizacionID)
	return 1, nil
}

var _ repository.DetalleCotizacionRepository = (*stubDetalleCotRepo)(nil)

// ── Stub TecnicaRepository ────────────────────────────────────────────────────

type stubTecnicaRepo struct {
	tecnicas     map[int]*model.Tecnica
	nextID       int
	cotizaciones map[int]int64
}

func newStubTecnicaRepo() *stubTecnicaRepo {
	return &stubTecnicaRepo{tecnicas: make(map[int]*model.Tecnica), nextID: 1, cotizaciones: make(map[int]int64)}
}

func (r *stubTecnicaRepo) List(_ context.Context) ([]model.Tecnica, error) {
	var out []model.Tecnica
	for _, tec := range r.tecnicas {
		out = append(out, *tec)
	}
	return out, nil
}

func (r *stubTecnicaRepo) FindByID(_ context.Context, id int) (*model.Tecnica, error) {
	tec, ok := r.tecnicas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clon := *tec
	return &clon, nil
}

func (r *stubTecnicaRepo) FindByNombre(_ context.Context, nombre string) (*model.Tecnica, error) {
	for _, tec := range r.tecnicas {
		if strings.EqualFold(tec.Nombre, nombre) {
			clon := *tec
			return &clon, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTecnicaRepo) Create(_ context.Context, tec *model.Tecnica) error {
	tec.TecnicaID = r.nextID
	r.nextID++
	clon := *tec
	r.tecnicas[tec.TecnicaID] = &clon
	return nil
}

func (r *stubTecnicaRepo) Update(_ context.Context, tec *model.Tecnica) error {
	clon := *tec
	r.tecnicas[tec.TecnicaID] = &clon
	return nil
}

func (r *stubTecnicaRepo) Delete(_ context.Context, id int) (int64, error) {
	if _, ok := r.tecnicas[id]; !ok {
		return 0, nil
	}
	delete(r.tecnicas, id)
	return 1, nil
}

func (r *stubTecnicaRepo) CountDetallesCotizacion(_ context.Context, id int) (int64, error) {
	return r.cotizaciones[id], nil
}

var _ repository.TecnicaRepository = (*stubTecnicaRepo)(nil)

// ── Stub ColaCorreos ──────────────────────────────────────────────────────────

type stubColaCorreos struct {
	encolados []string // "cotizacionID|correo"
	fallar    bool
}

func (c *stubColaCorreos) EncolarCotizacion(_ context.Context, cotizacionID int, correo string) error {
	if c.fallar {
		return errors.New("redis caído")
	}
	c.encolados = append(c.encolados, correo)
	return nil
}

var _ service.ColaCorreos = (*stubColaCorreos)(nil)

// ── Armado común ──────────────────────────────────────────────────────────────

type entornoCotizaciones struct {
	cotSvc     service.CotizacionService
	detalleSvc service.DetalleCotizacionService
	cotRepo    *stubCotizacionRepo
	varRepo    *stubVarianteRepo
	cola       *stubColaCorreos
	variante   *model.ProductoVariante
	tecnica    *model.Tecnica
	cotizacion *model.Cotizacion
}

func armarCotizaciones(t *testing.T) *entornoCotizaciones {
	t.Helper()
	ctx := context.Background()

	roles := newStubRolRepo()
	cliente := roles.seed(model.Rol{Nombre: model.RolCliente, Descripcion: "Cliente del taller de estampados", Estado: true, Protegido: true})
	usuarios := newStubUsuarioRepo(roles)
	require.NoError(t, usuarios.Create(ctx, &model.Usuario{
		DocumentoID: "1034567890",
		Nombre:      "Laura Gómez",
		Correo:      "laura@example.com",
		RolID:       cliente.RolID,
	}))

	variantes := newStubVarianteRepo()
	variante := &model.ProductoVariante{
		ProductoID: 1, ColorID: 1, TallaID: 1,
		Precio: decimal.RequireFromString("35000.00"),
		Estado: true,
	}
	require.NoError(t, variantes.Create(ctx, variante))

	tecnicas := newStubTecnicaRepo()
	tecnica := &model.Tecnica{Nombre: "Serigrafía", ImagenTecnica: "https://i.imgur.com/serigrafia.png", Descripcion: "Estampado con marcos y tintas", Estado: true}
	require.NoError(t, tecnicas.Create(ctx, tecnica))

	cotRepo := newStubCotizacionRepo(usuarios)
	cotizacion := &model.Cotizacion{
		DocumentoID: "1034567890",
		Fecha:       time.Now(),
		ValorTotal:  decimal.Zero,
		Estado:      model.CotizacionPendiente,
	}
	require.NoError(t, cotRepo.Create(ctx, cotizacion))

	cola := &stubColaCorreos{}
	cotSvc := service.NewCotizacionService(cotRepo, usuarios, cola, &config.Config{PDFStoragePath: t.TempDir()})
	detalleSvc := service.NewDetalleCotizacionService(newStubDetalleCotRepo(cotRepo), cotRepo, variantes, tecnicas)

	return &entornoCotizaciones{
		cotSvc:     cotSvc,
		detalleSvc: detalleSvc,
		cotRepo:    cotRepo,
		varRepo:    variantes,
		cola:       cola,
		variante:   variante,
		tecnica:    tecnica,
		cotizacion: cotizacion,
	}
}

// ── Detalles ──────────────────────────────────────────────────────────────────

func TestDetalleCotizacionSubtotalYTotal(t *testing.T) {
	env := armarCotizaciones(t)
	ctx := context.Background()

	detalle, err := env.detalleSvc.Crear(ctx, dto.CrearDetalleCotizacionRequest{
		CotizacionID: env.cotizacion.CotizacionID,
		VarianteID:   env.variante.VarianteID,
		TecnicaID:    env.tecnica.TecnicaID,
		Cantidad:     3,
	})
	require.NoError(t, err)

	// 35000.00 × 3
	assert.True(t, detalle.Subtotal.Equal(decimal.RequireFromString("105000.00")),
		"subtotal %s", detalle.Subtotal)

	cot, err := env.cotSvc.Obtener(ctx, env.cotizacion.CotizacionID)
	require.NoError(t, err)
	assert.True(t, cot.ValorTotal.Equal(decimal.RequireFromString("105000.00")),
		"total %s", cot.ValorTotal)
}

func TestDetalleCotizacionEliminarRecalculaTotal(t *testing.T) {
	env := armarCotizaciones(t)
	ctx := context.Background()

	primero, err := env.detalleSvc.Crear(ctx, dto.CrearDetalleCotizacionRequest{
		CotizacionID: env.cotizacion.CotizacionID,
		VarianteID:   env.variante.VarianteID,
		TecnicaID:    env.tecnica.TecnicaID,
		Cantidad:     2,
	})
	require.NoError(t, err)
	_, err = env.detalleSvc.Crear(ctx, dto.CrearDetalleCotizacionRequest{
		CotizacionID: env.cotizacion.CotizacionID,
		VarianteID:   env.variante.VarianteID,
		TecnicaID:    env.tecnica.TecnicaID,
		Cantidad:     1,
	})
	require.NoError(t, err)

	filas, err := env.detalleSvc.Eliminar(ctx, primero.DetalleID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), filas)

	cot, err := env.cotSvc.Obtener(ctx, env.cotizacion.CotizacionID)
	require.NoError(t, err)
	assert.True(t, cot.ValorTotal.Equal(decimal.RequireFromString("35000.00")),
		"total %s", cot.ValorTotal)
}

func TestDetalleCotizacionVarianteInactiva(t *testing.T) {
	env := armarCotizaciones(t)
	env.varRepo.variantes[env.variante.VarianteID].Estado = false

	_, err := env.detalleSvc.Crear(context.Background(), dto.CrearDetalleCotizacionRequest{
		CotizacionID: env.cotizacion.CotizacionID,
		VarianteID:   env.variante.VarianteID,
		TecnicaID:    env.tecnica.TecnicaID,
		Cantidad:     1,
	})
	require.Error(t, err)
	assert.Equal(t, "La variante del detalle está inactiva", err.Error())
}

func TestDetalleCotizacionTecnicaInexistente(t *testing.T) {
	env := armarCotizaciones(t)

	_, err := env.detalleSvc.Crear(context.Background(), dto.CrearDetalleCotizacionRequest{
		CotizacionID: env.cotizacion.CotizacionID,
		VarianteID:   env.variante.VarianteID,
		TecnicaID:    44,
		Cantidad:     1,
	})
	require.Error(t, err)
	assert.Equal(t, "La técnica del detalle no existe", err.Error())
}

// ── Cabecera ──────────────────────────────────────────────────────────────────

func TestCotizacionCrearConUsuarioInexistente(t *testing.T) {
	env := armarCotizaciones(t)

	_, err := env.cotSvc.Crear(context.Background(), dto.CrearCotizacionRequest{DocumentoID: "9999999999"})
	require.Error(t, err)
	assert.Equal(t, "El usuario de la cotización no existe", err.Error())
}

func TestCotizacionEliminarBloqueadaPorDetalles(t *testing.T) {
	env := armarCotizaciones(t)
	ctx := context.Background()

	_, err := env.detalleSvc.Crear(ctx, dto.CrearDetalleCotizacionRequest{
		CotizacionID: env.cotizacion.CotizacionID,
		VarianteID:   env.variante.VarianteID,
		TecnicaID:    env.tecnica.TecnicaID,
		Cantidad:     1,
	})
	require.NoError(t, err)

	_, err = env.cotSvc.Eliminar(ctx, env.cotizacion.CotizacionID)
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflicto, apierror.KindOf(err))
	assert.Equal(t, "No se puede eliminar la cotización porque tiene detalles asociados", err.Error())
}

// ── Envío por correo ──────────────────────────────────────────────────────────

func TestCotizacionEnviarUsaCorreoDelUsuario(t *testing.T) {
	env := armarCotizaciones(t)

	correo, err := env.cotSvc.Enviar(context.Background(), env.cotizacion.CotizacionID, dto.EnviarCotizacionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "laura@example.com", correo)
	assert.Equal(t, []string{"laura@example.com"}, env.cola.encolados)
}

func TestCotizacionEnviarConCorreoExplicito(t *testing.T) {
	env := armarCotizaciones(t)

	correo, err := env.cotSvc.Enviar(context.Background(), env.cotizacion.CotizacionID, dto.EnviarCotizacionRequest{
		Correo: strPtr("gerencia@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "gerencia@example.com", correo)
}

func TestCotizacionEnviarConColaCaida(t *testing.T) {
	env := armarCotizaciones(t)
	env.cola.fallar = true

	_, err := env.cotSvc.Enviar(context.Background(), env.cotizacion.CotizacionID, dto.EnviarCotizacionRequest{})
	require.Error(t, err)
	assert.Equal(t, apierror.KindNoDisponible, apierror.KindOf(err))
	assert.Equal(t, "La cola de envío no está disponible", err.Error())
}
