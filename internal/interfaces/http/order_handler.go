package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
)

// OrderHandler maneja las peticiones HTTP para pedidos.
type OrderHandler struct {
	uc *usecase.OrderUseCase
	v  *Validator
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, v *Validator) *OrderHandler {
	return &OrderHandler{uc: uc, v: v}
}

// Create godoc
// @Summary      Crear pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateOrderRequest  true  "state, client_id, product_ids"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := h.v.Bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        created_start  query     string  false  "YYYY-MM-DD (requiere created_end)"
// @Param        created_end    query     string  false  "YYYY-MM-DD (requiere created_start)"
// @Param        product_secao  query     string  false  "Sección de algún producto del pedido"
// @Param        order_id       query     int     false  "ID del pedido"
// @Param        state          query     string  false  "waiting | paid | cancelled"
// @Param        client_id      query     int     false  "ID del cliente"
// @Param        offset         query     int     false  "Offset"
// @Param        limit          query     int     false  "Límite"
// @Success      200            {object}  dto.OrderListResponse
// @Failure      400            {object}  dto.ErrorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var (
		f   dto.OrderFilter
		err error
	)
	if f.Page, err = queryPage(c); err != nil {
		return err
	}
	if f.CreatedStart, err = queryDate(c, "created_start"); err != nil {
		return err
	}
	if f.CreatedEnd, err = queryDate(c, "created_end"); err != nil {
		return err
	}
	if f.OrderID, err = queryInt64(c, "order_id"); err != nil {
		return err
	}
	if f.ClientID, err = queryInt64(c, "client_id"); err != nil {
		return err
	}
	if f.State, err = queryOrderState(c, "state"); err != nil {
		return err
	}
	f.ProductSection = queryString(c, "product_secao")

	out, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar pedido (parcial)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "ID del pedido"
// @Param        body  body      dto.UpdateOrderRequest  true  "Campos a actualizar; product_ids reemplaza el conjunto"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /orders/{id} [put]
// @Router       /orders/{id} [patch]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in dto.UpdateOrderRequest
	if err := h.v.Bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pedido
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID del pedido"
// @Success      200  {object}  dto.Message
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.Message{Message: "Order has been deleted successfully."})
}
