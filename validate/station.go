package validate

import (
	"github.com/gofiber/fiber/v2"

	"metroll_cms/model"
)

func SaveStation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SaveStationInput
		if ok, resp := parseAndValidate(c, &input); !ok {
			return resp
		}
		c.Locals("inputSaveStation", input)
		return c.Next()
	}
}

func UpdateStation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateStationInput
		if ok, resp := parseAndValidate(c, &input); !ok {
			return resp
		}
		c.Locals("inputUpdateStation", input)
		return c.Next()
	}
}

func StationStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input struct {
			Status model.StationStatus `json:"status" validate:"required,oneof=OPERATIONAL UNDER_MAINTENANCE CLOSED"`
		}
		if ok, resp := parseAndValidate(c, &input); !ok {
			return resp
		}
		c.Locals("inputStatus", input.Status)
		return c.Next()
	}
}
