package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/inmobiliaria/api-inmobiliaria/internal/types"
	"github.com/inmobiliaria/api-inmobiliaria/internal/utils"
)

var errBadParam = errors.New("bad query parameter")

// parseID extracts the :id path parameter as an unsigned integer.
func parseID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, errBadParam
	}
	return id, nil
}

// queryString returns a pointer to the query parameter value, nil when the
// parameter was not supplied at all. An explicit empty value counts as set.
func queryString(c *fiber.Ctx, key string) *string {
	if !c.Context().QueryArgs().Has(key) {
		return nil
	}
	v := c.Query(key)
	return &v
}

func queryInt(c *fiber.Ctx, key string) (*int, error) {
	raw := queryString(c, key)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.Atoi(*raw)
	if err != nil {
		return nil, errBadParam
	}
	return &v, nil
}

func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := queryString(c, key)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		return nil, errBadParam
	}
	return &v, nil
}

func queryBool(c *fiber.Ctx, key string) (*bool, error) {
	raw := queryString(c, key)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.ParseBool(*raw)
	if err != nil {
		return nil, errBadParam
	}
	return &v, nil
}

func queryDateTime(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := queryString(c, key)
	if raw == nil {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t, nil
		}
	}
	return nil, errBadParam
}

// serviceError maps a service failure onto the wire error schema. Lookup
// misses become 404s, everything else surfaces as a 500.
func serviceError(c *fiber.Ctx, err error) error {
	var nf *types.NotFoundError
	if errors.As(err, &nf) {
		return utils.NotFoundResponse(c, nf.Message)
	}
	return utils.GeneralError(c, fiber.StatusInternalServerError, "internal-server-error", err.Error())
}
