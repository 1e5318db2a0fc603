package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/joyeria-api/internal/application/dto"
	"github.com/jhoicas/joyeria-api/internal/domain"
)

const dateLayout = "2006-01-02"

// parsePage lee limit/offset con los valores por defecto de dto.PageRequest.
func parsePage(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	p.DefaultPage()
	return p
}

// parseDateRange lee dos parámetros de fecha (RFC3339 o AAAA-MM-DD).
// Una fecha sin hora en el extremo final cubre el día completo.
func parseDateRange(c *fiber.Ctx, startKey, endKey string) (start, end *time.Time, err error) {
	if start, err = parseDate(c.Query(startKey), false); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, startKey, err)
	}
	if end, err = parseDate(c.Query(endKey), true); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, endKey, err)
	}
	return start, end, nil
}

func parseDate(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("formato de fecha inválido %q", raw)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
