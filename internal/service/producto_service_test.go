package service_test

// Tests de productos y variantes: tela obligatoria, combinación
// producto+color+talla única y la validación de la URL de imagen.

import (
	"context"
	"strings"
	"testing"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/apierror"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/repository"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stub ProductoRepository ───────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[int]*model.Producto
	nextID    int
	variantes map[int]int64
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[int]*model.Producto), nextID: 1, variantes: make(map[int]int64)}
}

func (r *stubProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id int) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clon := *p
	return &clon, nil
}

func (r *stubProductoRepo) FindByNombre(_ context.Context, nombre string) (*model.Producto, error) {
	for _, p := range r.productos {
		if strings.EqualFold(p.Nombre, nombre) {
			clon := *p
			return &clon, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) FindDetalle(ctx context.Context, id int) (*model.Producto, error) {
	return r.FindByID(ctx, id)
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	p.ProductoID = r.nextID
	r.nextID++
	clon := *p
	r.productos[p.ProductoID] = &clon
	return nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	clon := *p
	r.productos[p.ProductoID] = &clon
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id int) (int64, error) {
	if _, ok := r.productos[id]; !ok {
		return 0, nil
	}
	delete(r.productos, id)
	return 1, nil
}

func (r *stubProductoRepo) CountVariantes(_ context.Context, id int) (int64, error) {
	return r.variantes[id], nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── Stub VarianteRepository ───────────────────────────────────────────────────

type stubVarianteRepo struct {
	variantes    map[int]*model.ProductoVariante
	nextID       int
	cotizaciones map[int]int64
}

func newStubVarianteRepo() *stubVarianteRepo {
	return &stubVarianteRepo{variantes: make(map[int]*model.ProductoVariante), nextID: 1, cotizaciones: make(map[int]int64)}
}

func (r *stubVarianteRepo) List(_ context.Context) ([]model.ProductoVariante, error) {
	var out []model.ProductoVariante
	for _, v := range r.variantes {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVarianteRepo) FindByID(_ context.Context, id int) (*model.ProductoVariante, error) {
	v, ok := r.variantes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clon := *v
	return &clon, nil
}

func (r *stubVarianteRepo) FindByCombinacion(_ context.Context, productoID, colorID, tallaID int) (*model.ProductoVariante, error) {
	for _, v := range r.variantes {
		if v.ProductoID == productoID && v.ColorID == colorID && v.TallaID == tallaID {
			clon := *v
			return &clon, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubVarianteRepo) Create(_ context.Context, v *model.ProductoVariante) error {
	v.VarianteID = r.nextID
	r.nextID++
	clon := *v
	r.variantes[v.VarianteID] = &clon
	return nil
}

func (r *stubVarianteRepo) Update(_ context.Context, v *model.ProductoVariante) error {
	clon := *v
	r.variantes[v.VarianteID] = &clon
	return nil
}

func (r *stubVarianteRepo) Delete(_ context.Context, id int) (int64, error) {
	if _, ok := r.variantes[id]; !ok {
		return 0, nil
	}
	delete(r.variantes, id)
	return 1, nil
}

func (r *stubVarianteRepo) CountDetallesCotizacion(_ context.Context, id int) (int64, error) {
	return r.cotizaciones[id], nil
}

var _ repository.VarianteRepository = (*stubVarianteRepo)(nil)

// ── Stub TallaRepository ──────────────────────────────────────────────────────

type stubTallaRepo struct {
	tallas    map[int]*model.Talla
	nextID    int
	variantes map[int]int64
}

func newStubTallaRepo() *stubTallaRepo {
	return &stubTallaRepo{tallas: make(map[int]*model.Talla), nextID: 1, variantes: make(map[int]int64)}
}

func (r *stubTallaRepo) List(_ context.Context) ([]model.Talla, error) {
	var out []model.Talla
	for _, t := range r.tallas {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTallaRepo) FindByID(_ context.Context, id int) (*model.Talla, error) {
	t, ok := r.tallas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clon := *t
	return &clon, nil
}

func (r *stubTallaRepo) FindByNombre(_ context.Context, nombre string) (*model.Talla, error) {
	for _, t := range r.tallas {
		if strings.EqualFold(t.Nombre, nombre) {
			clon := *t
			return &clon, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTallaRepo) Create(_ context.Context, t *model.Talla) error {
	t.TallaID = r.nextID
	r.nextID++
	clon := *t
	r.tallas[t.TallaID] = &clon
	return nil
}

func (r *stubTallaRepo) Update(_ context.Context, t *model.Talla) error {
	clon := *t
	r.tallas[t.TallaID] = &clon
	return nil
}

func (r *stubTallaRepo) Delete(_ context.Context, id int) (int64, error) {
	if _, ok := r.tallas[id]; !ok {
		return 0, nil
	}
	delete(r.tallas, id)
	return 1, nil
}

func (r *stubTallaRepo) CountVariantes(_ context.Context, id int) (int64, error) {
	return r.variantes[id], nil
}

var _ repository.TallaRepository = (*stubTallaRepo)(nil)

// armarCatalogoVariantes deja un producto, un color y una talla listos.
func armarCatalogoVariantes(t *testing.T) (service.VarianteService, *stubVarianteRepo, *model.Producto, *model.Color, *model.Talla) {
	t.Helper()
	ctx := context.Background()

	productos := newStubProductoRepo()
	colores := newStubColorRepo()
	tallas := newStubTallaRepo()
	variantes := newStubVarianteRepo()

	producto := &model.Producto{Nombre: "Camiseta clásica", TelaID: 1}
	require.NoError(t, productos.Create(ctx, producto))
	color := &model.Color{Nombre: "Negro"}
	require.NoError(t, colores.Create(ctx, color))
	talla := &model.Talla{Nombre: "M"}
	require.NoError(t, tallas.Create(ctx, talla))

	svc := service.NewVarianteService(variantes, productos, colores, tallas, nil)
	return svc, variantes, producto, color, talla
}

// ── Productos ─────────────────────────────────────────────────────────────────

func TestProductoCrearConTelaInexistente(t *testing.T) {
	svc := service.NewProductoService(newStubProductoRepo(), newStubTelaRepo(), nil)

	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{Nombre: "Camiseta clásica", TelaID: 9})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflicto, apierror.KindOf(err))
	assert.Equal(t, "La tela asignada no existe", err.Error())
}

func TestProductoCrearYActualizar(t *testing.T) {
	productos := newStubProductoRepo()
	telas := newStubTelaRepo()
	svc := service.NewProductoService(productos, telas, nil)
	ctx := context.Background()

	algodon := &model.Tela{Nombre: "Algodón"}
	require.NoError(t, telas.Create(ctx, algodon))

	creado, err := svc.Crear(ctx, dto.CrearProductoRequest{Nombre: "Camiseta clásica", TelaID: algodon.TelaID})
	require.NoError(t, err)

	actualizado, err := svc.Actualizar(ctx, creado.ProductoID, dto.ActualizarProductoRequest{Nombre: strPtr("Camiseta premium")})
	require.NoError(t, err)
	assert.Equal(t, "Camiseta premium", actualizado.Nombre)
}

func TestProductoEliminarBloqueadoPorVariantes(t *testing.T) {
	productos := newStubProductoRepo()
	telas := newStubTelaRepo()
	svc := service.NewProductoService(productos, telas, nil)
	ctx := context.Background()

	algodon := &model.Tela{Nombre: "Algodón"}
	require.NoError(t, telas.Create(ctx, algodon))
	creado, err := svc.Crear(ctx, dto.CrearProductoRequest{Nombre: "Camiseta clásica", TelaID: algodon.TelaID})
	require.NoError(t, err)
	productos.variantes[creado.ProductoID] = 2

	_, err = svc.Eliminar(ctx, creado.ProductoID)
	require.Error(t, err)
	assert.Equal(t, "No se puede eliminar el producto porque tiene variantes asociadas", err.Error())
}

// ── Variantes ─────────────────────────────────────────────────────────────────

func TestVarianteCrearOK(t *testing.T) {
	svc, _, producto, color, talla := armarCatalogoVariantes(t)

	creada, err := svc.Crear(context.Background(), dto.CrearVarianteRequest{
		ProductoID: producto.ProductoID,
		ColorID:    color.ColorID,
		TallaID:    talla.TallaID,
		Stock:      intPtr(20),
		Precio:     decimal.RequireFromString("35000.00"),
	})
	require.NoError(t, err)
	assert.True(t, creada.Estado)
	assert.Equal(t, 20, creada.Stock)
}

func TestVarianteCombinacionDuplicada(t *testing.T) {
	svc, _, producto, color, talla := armarCatalogoVariantes(t)
	ctx := context.Background()

	req := dto.CrearVarianteRequest{
		ProductoID: producto.ProductoID,
		ColorID:    color.ColorID,
		TallaID:    talla.TallaID,
		Precio:     decimal.RequireFromString("35000.00"),
	}
	_, err := svc.Crear(ctx, req)
	require.NoError(t, err)

	_, err = svc.Crear(ctx, req)
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflicto, apierror.KindOf(err))
	assert.Equal(t, "Ya existe una variante con esa combinación de producto, color y talla", err.Error())
}

func TestVarianteImagenBase64Rechazada(t *testing.T) {
	svc, _, producto, color, talla := armarCatalogoVariantes(t)

	_, err := svc.Crear(context.Background(), dto.CrearVarianteRequest{
		ProductoID: producto.ProductoID,
		ColorID:    color.ColorID,
		TallaID:    talla.TallaID,
		Imagen:     strPtr("data:image/png;base64,iVBORw0KGgo="),
		Precio:     decimal.RequireFromString("35000.00"),
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidacion, apierror.KindOf(err))
	assert.Equal(t, "La imagen debe ser una URL, no contenido embebido en base64", err.Error())
}

func TestVarianteColorInexistente(t *testing.T) {
	svc, _, producto, _, talla := armarCatalogoVariantes(t)

	_, err := svc.Crear(context.Background(), dto.CrearVarianteRequest{
		ProductoID: producto.ProductoID,
		ColorID:    77,
		TallaID:    talla.TallaID,
		Precio:     decimal.RequireFromString("35000.00"),
	})
	require.Error(t, err)
	assert.Equal(t, "El color de la variante no existe", err.Error())
}

func TestVarianteEliminarBloqueadaPorCotizaciones(t *testing.T) {
	svc, variantes, producto, color, talla := armarCatalogoVariantes(t)
	ctx := context.Background()

	creada, err := svc.Crear(ctx, dto.CrearVarianteRequest{
		ProductoID: producto.ProductoID,
		ColorID:    color.ColorID,
		TallaID:    talla.TallaID,
		Precio:     decimal.RequireFromString("35000.00"),
	})
	require.NoError(t, err)
	variantes.cotizaciones[creada.VarianteID] = 1

	_, err = svc.Eliminar(ctx, creada.VarianteID)
	require.Error(t, err)
	assert.Equal(t, "No se puede eliminar la variante porque tiene cotizaciones asociadas", err.Error())
}
