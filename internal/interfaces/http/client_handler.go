package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP para clientes.
type ClientHandler struct {
	uc *usecase.ClientUseCase
	v  *Validator
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase, v *Validator) *ClientHandler {
	return &ClientHandler{uc: uc, v: v}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateClientRequest  true  "nome_completo, cpf, email"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
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
// @Summary      Listar clientes
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        nome_completo  query     string  false  "Contiene"
// @Param        cpf            query     string  false  "Contiene"
// @Param        email          query     string  false  "Exacto"
// @Param        offset         query     int     false  "Offset"
// @Param        limit          query     int     false  "Límite"
// @Success      200            {object}  dto.ClientListResponse
// @Router       /clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	page, err := queryPage(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), dto.ClientFilter{
		FullName: queryString(c, "nome_completo"),
		TaxID:    queryString(c, "cpf"),
		Email:    queryString(c, "email"),
		Page:     page,
	})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID del cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar cliente (parcial)
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                      true  "ID del cliente"
// @Param        body  body      dto.UpdateClientRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /clients/{id} [put]
// @Router       /clients/{id} [patch]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in dto.UpdateClientRequest
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
// @Summary      Eliminar cliente (y sus pedidos)
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID del cliente"
// @Success      200  {object}  dto.Message
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.Message{Message: "Client has been deleted successfully."})
}
