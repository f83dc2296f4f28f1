package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/controlfacil/inventario-api/internal/application/auth"
	"github.com/controlfacil/inventario-api/internal/application/dto"
)

// UsuarioHandler login y administración de cuentas.
type UsuarioHandler struct {
	uc *auth.AuthUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *auth.AuthUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Verifica credenciales y devuelve un JWT con el rol.
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.RespuestaError
// @Router       /api/usuarios/login [post]
func (h *UsuarioHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar usuarios (sin credenciales)
// @Tags         usuarios
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	usuarios, err := h.uc.ListUsuarios()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": usuarios})
}

// Crear godoc
// @Summary      Crear un usuario
// @Description  Aplica la política de claves y hashea con bcrypt.
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CrearUsuarioRequest  true  "nombre_de_usuario, clave, rol"
// @Success      200   {object}  dto.RespuestaOK
// @Failure      400   {object}  dto.RespuestaError
// @Failure      409   {object}  dto.RespuestaError
// @Router       /api/usuarios [post]
func (h *UsuarioHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if err := h.uc.CrearUsuario(in); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("Usuario creado"))
}

// Eliminar godoc
// @Summary      Eliminar un usuario
// @Tags         usuarios
// @Produce      json
// @Param        id   path      int  true  "ID del usuario"
// @Success      200  {object}  dto.RespuestaOK
// @Router       /api/usuarios/{id} [delete]
func (h *UsuarioHandler) Eliminar(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	}
	if err := h.uc.EliminarUsuario(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("Usuario eliminado"))
}
