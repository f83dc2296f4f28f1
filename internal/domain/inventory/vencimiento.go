package inventory

import (
	"time"

	"github.com/controlfacil/inventario-api/internal/domain/entity"
)

// DiasProximoVencimiento ventana por defecto para "próximo a vencer".
const DiasProximoVencimiento = 30

// Clasificacion particiona lotes activos según su fecha de vencimiento
// respecto a una fecha de referencia. El orden de entrada (ascendente por
// vencimiento) se preserva dentro de cada grupo.
type Clasificacion struct {
	Vencidos   []entity.LoteConStock
	Proximos   []entity.LoteConStock
	Saludables []entity.LoteConStock
}

// Clasificar agrupa los lotes en vencidos, próximos a vencer y saludables.
// Compara solo la fecha calendario (año/mes/día, sin hora). Un lote está
// vencido si su fecha es anterior a hoy, próximo si cae dentro de los
// siguientes `dias` días inclusive. Lotes sin stock positivo se excluyen.
func Clasificar(lotes []entity.LoteConStock, hoy time.Time, dias int) Clasificacion {
	hoyFecha := SoloFecha(hoy)
	limite := hoyFecha.AddDate(0, 0, dias)

	var c Clasificacion
	for _, l := range lotes {
		if l.Stock <= 0 {
			continue
		}
		venc := SoloFecha(l.FechaVencimiento)
		switch {
		case venc.Before(hoyFecha):
			c.Vencidos = append(c.Vencidos, l)
		case !venc.After(limite):
			c.Proximos = append(c.Proximos, l)
		default:
			c.Saludables = append(c.Saludables, l)
		}
	}
	return c
}

// SoloFecha trunca un instante a su fecha calendario en UTC.
func SoloFecha(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// HoyEn devuelve "hoy" visto desde un offset horario fijo respecto a UTC.
// El negocio opera en hora de Caracas (UTC-4): la regla es un offset
// regional fijo, no la zona local del servidor.
func HoyEn(offsetHoras int) time.Time {
	zona := time.FixedZone("inventario", offsetHoras*3600)
	return time.Now().In(zona)
}
