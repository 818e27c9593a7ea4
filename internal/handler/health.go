package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Root GET / — descriptor del servicio con el inventario de rutas, para que
// el frontend (y cualquier curl perdido) sepa qué hay montado.
func Root() gin.HandlerFunc {
	rutas := gin.H{
		"colores":            "/colores",
		"tallas":             "/tallas",
		"telas":              "/telas",
		"partes":             "/partes",
		"tecnicas":           "/tecnicas",
		"proveedores":        "/proveedores",
		"insumos":            "/insumos",
		"roles":              "/roles",
		"usuarios":           "/usuarios",
		"productos":          "/productos",
		"productosVariantes": "/productosVariantes",
		"pedidos":            "/pedidos",
		"detallePedido":      "/detallePedido",
		"cotizaciones":       "/cotizaciones",
		"detalleCotizacion":  "/detalleCotizacion",
		"disenos":            "/disenos",
		"detalleDiseno":      "/detalleDiseno",
		"auth":               "/auth",
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"estado":    true,
			"mensaje":   "API de StampLab funcionando",
			"rutas":     rutas,
			"timestamp": timestamp(),
		})
	}
}

// TestDB GET /test-db — sonda de conectividad contra la base.
func TestDB(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		var uno int
		if err := db.WithContext(ctx).Raw("SELECT 1").Scan(&uno).Error; err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"estado":    false,
				"mensaje":   "Sin conexión a la base de datos",
				"timestamp": timestamp(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"estado":    true,
			"mensaje":   "Conexión a la base de datos correcta",
			"timestamp": timestamp(),
		})
	}
}

// Health GET /health — estado de base y redis; nunca expone credenciales.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		// Correos apartados tras agotar reintentos; si hay, alguien debe mirar.
		var dlqCorreos int64
		if redisStatus == "connected" {
			dlqCorreos, _ = worker.LargoDLQ(ctx, rdb, worker.QueueCotizaciones)
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":          status == http.StatusOK,
			"db":          dbStatus,
			"redis":       redisStatus,
			"dlq_correos": dlqCorreos,
		})
	}
}
