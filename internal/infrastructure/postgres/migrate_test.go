package postgres_test

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/golang-migrate/migrate/v4/source"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del set de migraciones
// ──────────────────────────────────────────────────────────────────────────────

// El set de migraciones debe ser legible por el driver de golang-migrate:
// archivos NNN_nombre.up.sql / .down.sql, versiones consecutivas desde 1 y
// cada versión con su par up/down. Un archivo mal nombrado no se aplica
// nunca y este test lo detecta sin base de datos.
func TestMigraciones_FuenteBienFormada(t *testing.T) {
	src, err := source.Open("file://migrations")
	require.NoError(t, err, "el directorio de migraciones debe poder abrirse")
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err, "debe existir al menos una migración")
	assert.Equal(t, uint(1), version, "la primera versión es 1")

	for {
		up, _, err := src.ReadUp(version)
		require.NoError(t, err, "la versión %d debe tener archivo up", version)
		cuerpo, err := io.ReadAll(up)
		require.NoError(t, err)
		up.Close()
		assert.NotEmpty(t, cuerpo, "el up de la versión %d no puede estar vacío", version)

		down, _, err := src.ReadDown(version)
		require.NoError(t, err, "la versión %d debe tener archivo down", version)
		down.Close()

		siguiente, err := src.Next(version)
		if errors.Is(err, os.ErrNotExist) {
			break
		}
		require.NoError(t, err)
		require.Equal(t, version+1, siguiente, "las versiones deben ser consecutivas")
		version = siguiente
	}
}

// El esquema inicial crea las cinco tablas y los índices únicos de
// expresión que son la autoridad de unicidad normalizada.
func TestMigraciones_EsquemaInicial(t *testing.T) {
	cuerpo, err := os.ReadFile("migrations/001_init.up.sql")
	require.NoError(t, err)
	sql := string(cuerpo)

	for _, tabla := range []string{"productos", "lotes", "entradas", "salidas", "usuarios"} {
		assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS "+tabla, "falta la tabla %s", tabla)
	}
	assert.Contains(t, sql, "ux_productos_nombre")
	assert.Contains(t, sql, "ux_lotes_producto_numero")
	assert.Contains(t, sql, "lower(btrim(")
}
