package validate

import (
	"github.com/gofiber/fiber/v2"

	"metroll_cms/model"
)

func CreateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAccountInput
		if ok, resp := parseAndValidate(c, &input); !ok {
			return resp
		}
		c.Locals("inputCreateAccount", input)
		return c.Next()
	}
}

func UpdateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateAccountInput
		if ok, resp := parseAndValidate(c, &input); !ok {
			return resp
		}
		c.Locals("inputUpdateAccount", input)
		return c.Next()
	}
}

func ActiveAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input struct {
			Active *bool `json:"active" validate:"required"`
		}
		if ok, resp := parseAndValidate(c, &input); !ok {
			return resp
		}
		c.Locals("isActive", *input.Active)
		return c.Next()
	}
}

func AssignStation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AssignStationInput
		if ok, resp := parseAndValidate(c, &input); !ok {
			return resp
		}
		c.Locals("inputAssignStation", input)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if ok, resp := parseAndValidate(c, &input); !ok {
			return resp
		}
		c.Locals("inputLogin", input)
		return c.Next()
	}
}
