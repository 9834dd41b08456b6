package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"metroll_cms/constants"
	"metroll_cms/helper"
	"metroll_cms/model"
	"metroll_cms/service"
	"metroll_cms/utils"
)

type LineHandler struct {
	Lines    *service.LineService
	Stations *service.StationService
}

func (h *LineHandler) GetLines(c *fiber.Ctx) error {
	pageable := utils.ParsePageable(c)
	filters := utils.ParseFilters(c, "search", "status")
	page, err := h.Lines.List(sessionContext(c), pageable, filters)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func (h *LineHandler) GetLineByCode(c *fiber.Ctx) error {
	line, err := h.Lines.GetByCode(sessionContext(c), c.Params("code"))
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, line)
}

func (h *LineHandler) CreateLine(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSaveLine").(model.SaveLineInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse save line fail"))
	}
	line, err := h.Lines.Save(sessionContext(c), input)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, line)
}

// UpdateLine replaces the whole line, segments included; segments have no
// lifecycle of their own.
func (h *LineHandler) UpdateLine(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSaveLine").(model.SaveLineInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse save line fail"))
	}
	line, err := h.Lines.Update(sessionContext(c), c.Params("code"), input)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, line)
}

func (h *LineHandler) LineStatus(c *fiber.Ctx) error {
	status, ok := c.Locals("inputStatus").(model.LineStatus)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse status fail"))
	}
	line, err := h.Lines.SetStatus(sessionContext(c), c.Params("code"), status)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, line)
}

func (h *LineHandler) GetLineSummary(c *fiber.Ctx) error {
	summary, err := h.Lines.Summary(sessionContext(c))
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, summary)
}

// SegmentCandidates serves the line editor while a draft is being
// assembled: the locked start station for the next segment and the legal
// end-station choices given every endpoint already spent.
func (h *LineHandler) SegmentCandidates(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSegmentCandidates").(model.SegmentCandidatesInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse segment candidates fail"))
	}

	page, err := h.Stations.List(sessionContext(c), &model.Pageable{Page: 0, Size: 1000}, nil)
	if err != nil {
		return utils.RespondClientError(c, err)
	}

	editor := helper.SegmentEditor{Segments: input.Segments}
	start := input.StartStation
	if editor.StartLocked(input.EditingIndex) {
		start = editor.NextStart()
	}
	result := model.SegmentCandidates{
		NextStart:   editor.NextStart(),
		StartLocked: editor.StartLocked(input.EditingIndex),
		Candidates:  editor.EndCandidates(page.Content, input.EditingIndex, start),
	}
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}
