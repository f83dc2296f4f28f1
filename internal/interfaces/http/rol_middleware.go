package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/controlfacil/inventario-api/internal/application/dto"
	pkgjwt "github.com/controlfacil/inventario-api/pkg/jwt"
)

// Locals keys para el principal de la petición.
const (
	LocalUserID = "user_id"
	LocalRol    = "rol"
)

// HeaderRolLegado header con el que el frontend original envía el rol.
const HeaderRolLegado = "user-rol"

// PrincipalMiddleware resuelve el principal de la petición y lo deja en
// c.Locals. Acepta un Bearer Token JWT (camino preferido, el rol viaja
// firmado) o, para clientes legados, el header user-rol en claro. No
// rechaza peticiones: eso es de RequireRol por ruta.
func PrincipalMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authHeader := c.Get("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				userID, rol, err := pkgjwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
				if err != nil {
					return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("token inválido o expirado"))
				}
				c.Locals(LocalUserID, userID)
				c.Locals(LocalRol, rol)
				return c.Next()
			}
		}
		if rol := c.Get(HeaderRolLegado); rol != "" {
			c.Locals(LocalRol, rol)
		}
		return c.Next()
	}
}

// RequireRol autoriza la ruta solo para los roles indicados. Debe usarse
// después de PrincipalMiddleware.
func RequireRol(rolesPermitidos ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := GetRol(c)
		for _, permitido := range rolesPermitidos {
			if rol == permitido {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Error("Acceso denegado: Permisos insuficientes."))
	}
}

// GetRol devuelve el rol del principal (después de PrincipalMiddleware).
func GetRol(c *fiber.Ctx) string {
	v := c.Locals(LocalRol)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserID devuelve el ID del usuario autenticado por JWT; 0 si la
// petición llegó solo con el header legado.
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}
