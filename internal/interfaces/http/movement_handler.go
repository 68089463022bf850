package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acastellanos/almacen-api/internal/application/dto"
	"github.com/acastellanos/almacen-api/internal/application/inventory"
	"github.com/acastellanos/almacen-api/internal/application/usecase"
	"github.com/acastellanos/almacen-api/internal/domain"
	"github.com/acastellanos/almacen-api/pkg/validator"
)

// MovementHandler maneja las peticiones HTTP de movimientos de stock (protegido).
type MovementHandler struct {
	register *inventory.RegisterMovementUseCase
	queries  *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(register *inventory.RegisterMovementUseCase, queries *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{register: register, queries: queries}
}

// Register godoc
// @Summary      Registrar movimiento de stock
// @Description  add/edit requieren rol admin; withdraw requiere rol employee.
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, movement_type, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /movimientos [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	userID := GetUserID(c)
	role := GetRole(c)
	if userID == "" || role == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fails := validator.ValidateStruct(in); fails != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, movement_type (add|edit|withdraw) y quantity > 0 son requeridos"})
	}
	out, err := h.register.Register(c.Context(), userID, role, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para este tipo de movimiento"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al registrar movimiento"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar todos los movimientos
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /movimientos [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.queries.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al obtener movimientos"})
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Listar movimientos del usuario autenticado
// @Description  El user_id se toma siempre del token; el parámetro de ruta se
// @Description  conserva por compatibilidad con clientes existentes y se ignora.
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true  "Ignorado; se usa el id del token"
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /movimientos/{id} [get]
func (h *MovementHandler) ListMine(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	limit, offset := pageParams(c)
	out, err := h.queries.ListByUser(userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al obtener movimientos"})
	}
	return c.JSON(out)
}
