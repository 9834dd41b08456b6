package validate

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"metroll_cms/constants"
	"metroll_cms/helper"
	"metroll_cms/model"
	"metroll_cms/utils"
)

// SaveLine validates the line payload and its full segment chain. The
// empty-segment and path-continuity checks run here so a bad draft is
// blocked before any upstream call is attempted.
func SaveLine() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SaveLineInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if len(input.Segments) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.LINE_NEEDS_SEGMENTS, errors.New("empty segment list"))
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if err := helper.ValidateSegments(input.Segments); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		c.Locals("inputSaveLine", input)
		return c.Next()
	}
}

func LineStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input struct {
			Status model.LineStatus `json:"status" validate:"required,oneof=PLANNED OPERATIONAL UNDER_MAINTENANCE CLOSED"`
		}
		if ok, resp := parseAndValidate(c, &input); !ok {
			return resp
		}
		c.Locals("inputStatus", input.Status)
		return c.Next()
	}
}

func SegmentCandidates() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SegmentCandidatesInput
		if ok, resp := parseAndValidate(c, &input); !ok {
			return resp
		}
		c.Locals("inputSegmentCandidates", input)
		return c.Next()
	}
}
