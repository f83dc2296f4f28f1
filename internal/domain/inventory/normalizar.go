package inventory

import (
	"strings"

	"golang.org/x/text/cases"
)

// Normalizar devuelve la forma canónica de un nombre de producto o número
// de lote: espacios recortados y case folding Unicode. Toda comparación de
// unicidad (pre-chequeo y camino de inserción) debe pasar por esta función.
// Un cases.Caser mantiene estado, no se comparte entre goroutines.
func Normalizar(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// MismoNombre compara dos nombres bajo la normalización canónica.
func MismoNombre(a, b string) bool {
	return Normalizar(a) == Normalizar(b)
}
