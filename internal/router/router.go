package router

import (
	"net/http"
	"time"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/config"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/handler"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/middleware"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/repository"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/service"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	colorRepo := repository.NewColorRepository(db)
	tallaRepo := repository.NewTallaRepository(db)
	telaRepo := repository.NewTelaRepository(db)
	parteRepo := repository.NewParteRepository(db)
	tecnicaRepo := repository.NewTecnicaRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	insumoRepo := repository.NewInsumoRepository(db)
	rolRepo := repository.NewRolRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	varianteRepo := repository.NewVarianteRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	detallePedidoRepo := repository.NewDetallePedidoRepository(db)
	cotizacionRepo := repository.NewCotizacionRepository(db)
	detalleCotizacionRepo := repository.NewDetalleCotizacionRepository(db)
	disenoRepo := repository.NewDisenoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	cache := service.NewProductoCache(rdb)
	dispatcher := worker.NewDispatcher(rdb)

	colorSvc := service.NewColorService(colorRepo)
	tallaSvc := service.NewTallaService(tallaRepo)
	telaSvc := service.NewTelaService(telaRepo)
	parteSvc := service.NewParteService(parteRepo)
	tecnicaSvc := service.NewTecnicaService(tecnicaRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	insumoSvc := service.NewInsumoService(insumoRepo)
	rolSvc := service.NewRolService(rolRepo)
	usuarioSvc := service.NewUsuarioService(usuarioRepo, rolRepo)
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	productoSvc := service.NewProductoService(productoRepo, telaRepo, cache)
	varianteSvc := service.NewVarianteService(varianteRepo, productoRepo, colorRepo, tallaRepo, cache)
	pedidoSvc := service.NewPedidoService(pedidoRepo, proveedorRepo)
	detallePedidoSvc := service.NewDetallePedidoService(detallePedidoRepo, pedidoRepo, insumoRepo)
	cotizacionSvc := service.NewCotizacionService(cotizacionRepo, usuarioRepo, dispatcher, cfg)
	detalleCotizacionSvc := service.NewDetalleCotizacionService(detalleCotizacionRepo, cotizacionRepo, varianteRepo, tecnicaRepo)
	disenoSvc := service.NewDisenoService(disenoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	coloresH := handler.NewColoresHandler(colorSvc)
	tallasH := handler.NewTallasHandler(tallaSvc)
	telasH := handler.NewTelasHandler(telaSvc)
	partesH := handler.NewPartesHandler(parteSvc)
	tecnicasH := handler.NewTecnicasHandler(tecnicaSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	insumosH := handler.NewInsumosHandler(insumoSvc)
	rolesH := handler.NewRolesHandler(rolSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	variantesH := handler.NewVariantesHandler(varianteSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	detallePedidoH := handler.NewDetallePedidoHandler(detallePedidoSvc)
	cotizacionesH := handler.NewCotizacionesHandler(cotizacionSvc)
	detalleCotizacionH := handler.NewDetalleCotizacionHandler(detalleCotizacionSvc)
	disenosH := handler.NewDisenosHandler(disenoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/", handler.Root())
	r.GET("/test-db", handler.TestDB(db))
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimiter(10, time.Minute), authH.Login)
		auth.POST("/refresh", authH.Refresh)
		auth.GET("/perfil", middleware.JWTAuth(cfg.JWTSecret), authH.Perfil)
	}

	colores := r.Group("/colores")
	{
		colores.GET("", coloresH.Listar)
		colores.GET("/:id", coloresH.Obtener)
		colores.POST("", coloresH.Crear)
		colores.PUT("/:id", coloresH.Actualizar)
		colores.DELETE("/:id", coloresH.Eliminar)
	}

	tallas := r.Group("/tallas")
	{
		tallas.GET("", tallasH.Listar)
		tallas.GET("/:id", tallasH.Obtener)
		tallas.POST("", tallasH.Crear)
		tallas.PUT("/:id", tallasH.Actualizar)
		tallas.DELETE("/:id", tallasH.Eliminar)
	}

	telas := r.Group("/telas")
	{
		telas.GET("", telasH.Listar)
		telas.GET("/:id", telasH.Obtener)
		telas.POST("", telasH.Crear)
		telas.PUT("/:id", telasH.Actualizar)
		telas.DELETE("/:id", telasH.Eliminar)
	}

	partes := r.Group("/partes")
	{
		partes.GET("", partesH.Listar)
		partes.GET("/:id", partesH.Obtener)
		partes.POST("", partesH.Crear)
		partes.PUT("/:id", partesH.Actualizar)
		partes.DELETE("/:id", partesH.Eliminar)
	}

	tecnicas := r.Group("/tecnicas")
	{
		tecnicas.GET("", tecnicasH.Listar)
		tecnicas.GET("/:id", tecnicasH.Obtener)
		tecnicas.POST("", tecnicasH.Crear)
		tecnicas.PUT("/:id", tecnicasH.Actualizar)
		tecnicas.DELETE("/:id", tecnicasH.Eliminar)
	}

	proveedores := r.Group("/proveedores")
	{
		proveedores.GET("", proveedoresH.Listar)
		proveedores.GET("/:nit", proveedoresH.Obtener)
		proveedores.POST("", proveedoresH.Crear)
		proveedores.PUT("/:nit", proveedoresH.Actualizar)
		proveedores.DELETE("/:nit", proveedoresH.Eliminar)
	}

	insumos := r.Group("/insumos")
	{
		insumos.GET("", insumosH.Listar)
		insumos.GET("/activos", insumosH.ListarActivos)
		insumos.GET("/:id", insumosH.Obtener)
		insumos.POST("", insumosH.Crear)
		insumos.PUT("/:id", insumosH.Actualizar)
		insumos.PATCH("/:id/stock", insumosH.AjustarStock)
		insumos.DELETE("/:id", insumosH.Eliminar)
	}

	// Escrituras de roles y usuarios solo para administradores autenticados.
	adminMW := []gin.HandlerFunc{
		middleware.JWTAuth(cfg.JWTSecret),
		middleware.RequireRole(model.RolAdministrador),
	}

	roles := r.Group("/roles")
	{
		roles.GET("", rolesH.Listar)
		roles.GET("/activos", rolesH.ListarActivos)
		roles.GET("/:id", rolesH.Obtener)
		roles.POST("", append(adminMW, rolesH.Crear)...)
		roles.PUT("/:id", append(adminMW, rolesH.Actualizar)...)
		roles.PATCH("/:id/estado", append(adminMW, rolesH.CambiarEstado)...)
		roles.DELETE("/:id", append(adminMW, rolesH.Eliminar)...)
	}

	usuarios := r.Group("/usuarios")
	{
		usuarios.GET("", usuariosH.Listar)
		usuarios.GET("/util/roles", usuariosH.RolesParaFormulario)
		usuarios.GET("/:documentoId", usuariosH.Obtener)
		usuarios.POST("", usuariosH.Crear)
		usuarios.PUT("/:documentoId", usuariosH.Actualizar)
		usuarios.DELETE("/:documentoId", append(adminMW, usuariosH.Eliminar)...)
	}

	productos := r.Group("/productos")
	{
		productos.GET("", productosH.Listar)
		productos.GET("/:id", productosH.Obtener)
		productos.GET("/:id/detalle", productosH.ObtenerDetalle)
		productos.POST("", productosH.Crear)
		productos.PUT("/:id", productosH.Actualizar)
		productos.DELETE("/:id", productosH.Eliminar)
	}

	variantes := r.Group("/productosVariantes")
	{
		variantes.GET("", variantesH.Listar)
		variantes.GET("/:id", variantesH.Obtener)
		variantes.POST("", variantesH.Crear)
		variantes.PUT("/:id", variantesH.Actualizar)
		variantes.DELETE("/:id", variantesH.Eliminar)
	}

	pedidos := r.Group("/pedidos")
	{
		pedidos.GET("", pedidosH.Listar)
		pedidos.GET("/:id", pedidosH.Obtener)
		pedidos.POST("", pedidosH.Crear)
		pedidos.PUT("/:id", pedidosH.Actualizar)
		pedidos.DELETE("/:id", pedidosH.Eliminar)
	}

	detallePedido := r.Group("/detallePedido")
	{
		detallePedido.GET("", detallePedidoH.Listar)
		detallePedido.GET("/:id", detallePedidoH.Obtener)
		detallePedido.POST("", detallePedidoH.Crear)
		detallePedido.DELETE("/:id", detallePedidoH.Eliminar)
	}

	cotizaciones := r.Group("/cotizaciones")
	{
		cotizaciones.GET("", cotizacionesH.Listar)
		cotizaciones.GET("/:id", cotizacionesH.Obtener)
		cotizaciones.GET("/:id/pdf", cotizacionesH.DescargarPDF)
		cotizaciones.POST("", cotizacionesH.Crear)
		cotizaciones.POST("/:id/enviar", cotizacionesH.Enviar)
		cotizaciones.PUT("/:id", cotizacionesH.Actualizar)
		cotizaciones.DELETE("/:id", cotizacionesH.Eliminar)
	}

	detalleCotizacion := r.Group("/detalleCotizacion")
	{
		detalleCotizacion.GET("", detalleCotizacionH.Listar)
		detalleCotizacion.GET("/:id", detalleCotizacionH.Obtener)
		detalleCotizacion.POST("", detalleCotizacionH.Crear)
		detalleCotizacion.DELETE("/:id", detalleCotizacionH.Eliminar)
	}

	disenos := r.Group("/disenos")
	{
		disenos.GET("", disenosH.Listar)
		disenos.GET("/:id", disenosH.Obtener)
	}

	detalleDiseno := r.Group("/detalleDiseno")
	{
		detalleDiseno.GET("", disenosH.ListarDetalles)
		detalleDiseno.GET("/:id", disenosH.ObtenerDetalle)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"estado":    false,
			"mensaje":   "Ruta no encontrada",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	return r
}
