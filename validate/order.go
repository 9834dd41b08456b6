package validate

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"metroll_cms/constants"
	"metroll_cms/model"
	"metroll_cms/utils"
)

func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckoutInput
		if ok, resp := parseAndValidate(c, &input); !ok {
			return resp
		}
		// P2P rows must carry a journey; timed rows must not.
		for _, item := range input.Items {
			if item.TicketType == model.TicketP2P && (item.StartStationCode == nil || item.EndStationCode == nil) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("P2P item needs start and end stations"))
			}
		}
		c.Locals("inputCheckout", input)
		return c.Next()
	}
}
