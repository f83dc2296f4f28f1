// initdb aplica las migraciones pendientes del esquema sobre la base
// configurada (golang-migrate lleva la versión aplicada; re-ejecutar es
// un no-op).
//
// Uso: go run ./cmd/initdb
// Lee la configuración de conexión igual que la API (DATABASE_URL o DB_*).
package main

import (
	"fmt"
	"os"

	"github.com/controlfacil/inventario-api/internal/infrastructure/postgres"
	"github.com/controlfacil/inventario-api/pkg/config"
	"github.com/controlfacil/inventario-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	version, err := postgres.Migrate(cfg.DB, postgres.MigrationsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Uint("version", version).Msg("base de datos lista")
}
