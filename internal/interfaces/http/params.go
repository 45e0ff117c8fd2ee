package http

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/filter"
)

// ErrInvalidID id de ruta no numérico.
var ErrInvalidID = domain.NewError(domain.ErrInvalidInput, "Invalid id")

func invalidParam(key string) error {
	return domain.NewError(domain.ErrInvalidInput, fmt.Sprintf("Invalid query parameter: %s", key))
}

// paramID lee el :id de la ruta.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

// queryString devuelve nil si el parámetro no viene o viene vacío.
func queryString(c *fiber.Ctx, key string) *string {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	return &v
}

func queryInt64(c *fiber.Ctx, key string) (*int64, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, invalidParam(key)
	}
	return &n, nil
}

func queryBool(c *fiber.Ctx, key string) (bool, error) {
	v := c.Query(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		return false, invalidParam(key)
	}
	return b, nil
}

// queryDate interpreta YYYY-MM-DD en la zona local del servidor.
func queryDate(c *fiber.Ctx, key string) (*time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dto.DateLayout, v, time.Local)
	if err != nil {
		return nil, invalidParam(key)
	}
	return &t, nil
}

// queryPage lee offset y limit. Ausente es nil (sin límite); negativos son inválidos.
func queryPage(c *fiber.Ctx) (filter.Page, error) {
	var page filter.Page
	fields := []struct {
		key string
		dst **int
	}{{"offset", &page.Offset}, {"limit", &page.Limit}}
	for _, f := range fields {
		v := c.Query(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter.Page{}, invalidParam(f.key)
		}
		*f.dst = &n
	}
	return page, nil
}

func queryCategory(c *fiber.Ctx, key string) (*entity.Category, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	cat, err := entity.ParseCategory(v)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func queryOrderState(c *fiber.Ctx, key string) (*entity.OrderState, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	st, err := entity.ParseOrderState(v)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
