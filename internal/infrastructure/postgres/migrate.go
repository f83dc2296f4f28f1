package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/controlfacil/inventario-api/pkg/config"
)

// MigrationsPath ruta de las migraciones numeradas relativa a la raíz
// del repositorio.
const MigrationsPath = "internal/infrastructure/postgres/migrations"

// Migrate aplica las migraciones pendientes del esquema. golang-migrate
// lleva la versión aplicada en la tabla schema_migrations: re-ejecutar
// sobre una base al día es un no-op. Devuelve la versión resultante.
func Migrate(cfg config.DBConfig, migrationsPath string) (uint, error) {
	m, err := migrate.New("file://"+migrationsPath, migrateURL(cfg.ConnectionString()))
	if err != nil {
		return 0, fmt.Errorf("crear migrador: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("aplicar migraciones: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("leer versión del esquema: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("la migración %d quedó a medias; revisar la base y forzar la versión", version)
	}
	return version, nil
}

// migrateURL reescribe el DSN al esquema del driver pgx/v5 de golang-migrate.
func migrateURL(dsn string) string {
	return "pgx5://" + strings.TrimPrefix(dsn, "postgres://")
}
