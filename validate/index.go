package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseAndValidate parses the JSON body into input and runs struct
// validation. ok is false when the 400 response has already been written.
func parseAndValidate(c *fiber.Ctx, input any) (ok bool, resp error) {
	if err := c.BodyParser(input); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid input %s", err.Error()),
		})
	}
	if err := validate.Struct(input); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return true, nil
}
