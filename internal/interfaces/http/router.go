package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/controlfacil/inventario-api/internal/application/auth"
	"github.com/controlfacil/inventario-api/internal/application/inventory"
	"github.com/controlfacil/inventario-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EntradaUC  *inventory.EntradaUseCase
	SalidaUC   *inventory.SalidaUseCase
	LoteUC     *inventory.LoteUseCase
	ProductoUC *inventory.ProductoUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todas pasan por PrincipalMiddleware;
// RequireRol cierra cada ruta mutadora según el rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", PrincipalMiddleware(deps.JWTSecret))

	todos := RequireRol(entity.RolUsuario, entity.RolAdmin, entity.RolSuperAdmin)
	administradores := RequireRol(entity.RolAdmin, entity.RolSuperAdmin)
	soloSuper := RequireRol(entity.RolSuperAdmin)

	// Usuarios (login público; administración solo super admin)
	usuarios := api.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.AuthUC)
	usuarios.Post("/login", usuarioHandler.Login)
	usuarios.Get("/", soloSuper, usuarioHandler.List)
	usuarios.Post("/", soloSuper, usuarioHandler.Crear)
	usuarios.Delete("/:id", soloSuper, usuarioHandler.Eliminar)

	// Entradas (registrar y revertir: solo administradores)
	entradas := api.Group("/entradas")
	entradaHandler := NewEntradaHandler(deps.EntradaUC)
	entradas.Get("/", entradaHandler.List)
	entradas.Post("/", administradores, entradaHandler.Registrar)
	entradas.Delete("/:id", administradores, entradaHandler.Eliminar)

	// Salidas (cualquier rol autenticado puede despachar)
	salidas := api.Group("/salidas")
	salidaHandler := NewSalidaHandler(deps.SalidaUC)
	salidas.Get("/", salidaHandler.List)
	salidas.Post("/", todos, salidaHandler.Registrar)

	// Lotes (consultas de solo lectura, sin gate como el frontend original)
	lotes := api.Group("/lotes")
	loteHandler := NewLoteHandler(deps.LoteUC)
	lotes.Get("/", loteHandler.List)
	lotes.Get("/vencimientos", loteHandler.Vencimientos)
	lotes.Get("/verificar", loteHandler.Verificar)
	lotes.Get("/producto/:id", loteHandler.PorProducto)

	// Productos
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", todos, productoHandler.List)
	productos.Get("/inventario", todos, productoHandler.Inventario)
	productos.Get("/resumen", todos, productoHandler.Resumen)
	productos.Delete("/:id", soloSuper, productoHandler.Eliminar)

	// Reportes (solo administradores)
	reportes := api.Group("/reportes", administradores)
	reporteHandler := NewReporteHandler(deps.SalidaUC)
	reportes.Get("/top-ventas", reporteHandler.TopVentas)
}
