package validate

import (
	"github.com/gofiber/fiber/v2"

	"metroll_cms/model"
)

func SaveDiscountPackage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SaveDiscountPackageInput
		if ok, resp := parseAndValidate(c, &input); !ok {
			return resp
		}
		c.Locals("inputSavePackage", input)
		return c.Next()
	}
}

// AssignPackage reads the multipart form fields; the optional supporting
// document stays on the request for the handler to stream through.
func AssignPackage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := model.AssignPackageInput{
			AccountID:         c.FormValue("accountId"),
			DiscountPackageID: c.FormValue("discountPackageId"),
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		c.Locals("inputAssignPackage", input)
		return c.Next()
	}
}
