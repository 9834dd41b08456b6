package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"metroll_cms/constants"
	"metroll_cms/model"
	"metroll_cms/service"
	"metroll_cms/utils"
)

type DiscountHandler struct {
	Discounts *service.DiscountService
}

func (h *DiscountHandler) GetPackages(c *fiber.Ctx) error {
	pageable := utils.ParsePageable(c)
	filters := utils.ParseFilters(c, "search", "status")
	page, err := h.Discounts.ListPackages(sessionContext(c), pageable, filters)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func (h *DiscountHandler) GetPackageById(c *fiber.Ctx) error {
	pkg, err := h.Discounts.GetPackage(sessionContext(c), c.Params("packageId"))
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, pkg)
}

func (h *DiscountHandler) CreatePackage(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSavePackage").(model.SaveDiscountPackageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse save package fail"))
	}
	pkg, err := h.Discounts.CreatePackage(sessionContext(c), input)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, pkg)
}

func (h *DiscountHandler) UpdatePackage(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSavePackage").(model.SaveDiscountPackageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse save package fail"))
	}
	pkg, err := h.Discounts.UpdatePackage(sessionContext(c), c.Params("packageId"), input)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, pkg)
}

func (h *DiscountHandler) TerminatePackage(c *fiber.Ctx) error {
	pkg, err := h.Discounts.TerminatePackage(sessionContext(c), c.Params("packageId"))
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, pkg)
}

func (h *DiscountHandler) GetAssignments(c *fiber.Ctx) error {
	pageable := utils.ParsePageable(c)
	filters := utils.ParseFilters(c, "accountId", "discountPackageId", "status")
	page, err := h.Discounts.ListAssignments(sessionContext(c), pageable, filters)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

// AssignPackage forwards the multipart assignment upstream, streaming the
// optional supporting document through without landing it on disk.
func (h *DiscountHandler) AssignPackage(c *fiber.Ctx) error {
	input, ok := c.Locals("inputAssignPackage").(model.AssignPackageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse assign package fail"))
	}

	documentName := ""
	var document io.Reader
	if fileHeader, err := c.FormFile("document"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		defer file.Close()
		documentName = fileHeader.Filename
		document = file
	}

	assignment, err := h.Discounts.Assign(sessionContext(c), input, documentName, document)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, assignment)
}

func (h *DiscountHandler) UnassignPackage(c *fiber.Ctx) error {
	if err := h.Discounts.Unassign(sessionContext(c), c.Params("assignmentId")); err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
