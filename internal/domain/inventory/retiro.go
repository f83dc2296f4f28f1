package inventory

// DebeRetirarse decide si un lote debe eliminarse del inventario tras una
// salida. Política deliberada: un lote cuyo stock derivado llega a cero (o
// queda negativo por una lectura desfasada) desaparece de las vistas
// activas en vez de quedar en cero.
func DebeRetirarse(stockDerivado int64) bool {
	return stockDerivado <= 0
}
