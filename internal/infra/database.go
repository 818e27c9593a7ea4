package infra

import (
	"fmt"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, and seeds the protected system roles.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true, // surfaces gorm.ErrDuplicatedKey on unique violations
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations applies the schema and seeds protected rows. Idempotent; also
// used by integration setups that bring up a throwaway database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Color{},
		&model.Talla{},
		&model.Tela{},
		&model.Parte{},
		&model.Tecnica{},
		&model.Proveedor{},
		&model.Insumo{},
		&model.Rol{},
		&model.Usuario{},
		&model.Producto{},
		&model.ProductoVariante{},
		&model.Pedido{},
		&model.DetallePedido{},
		&model.Cotizacion{},
		&model.DetalleCotizacion{},
		&model.Diseno{},
		&model.DetalleDiseno{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return seedRolesProtegidos(db)
}

// seedRolesProtegidos garantiza que los roles de sistema existan y estén
// marcados como protegidos. ON CONFLICT por nombre: re-ejecutar es un no-op.
func seedRolesProtegidos(db *gorm.DB) error {
	seeds := []struct{ nombre, descripcion string }{
		{model.RolAdministrador, "Rol de sistema con acceso total a la administración"},
		{model.RolCliente, "Rol de sistema para clientes que solicitan cotizaciones"},
	}
	for _, s := range seeds {
		err := db.Exec(`
			INSERT INTO roles (nombre, descripcion, estado, protegido, created_at, updated_at)
			VALUES (?, ?, true, true, now(), now())
			ON CONFLICT (nombre) DO UPDATE SET protegido = true
		`, s.nombre, s.descripcion).Error
		if err != nil {
			return fmt.Errorf("seed rol %q: %w", s.nombre, err)
		}
	}
	return nil
}
