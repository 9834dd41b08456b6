package validate

import (
	"github.com/gofiber/fiber/v2"

	"metroll_cms/model"
)

func CreateVoucher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateVoucherInput
		if ok, resp := parseAndValidate(c, &input); !ok {
			return resp
		}
		c.Locals("inputCreateVoucher", input)
		return c.Next()
	}
}

func UpdateVoucher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateVoucherInput
		if ok, resp := parseAndValidate(c, &input); !ok {
			return resp
		}
		c.Locals("inputUpdateVoucher", input)
		return c.Next()
	}
}
