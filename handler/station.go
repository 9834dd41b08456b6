package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"metroll_cms/constants"
	"metroll_cms/model"
	"metroll_cms/service"
	"metroll_cms/utils"
)

type StationHandler struct {
	Stations *service.StationService
}

func (h *StationHandler) GetStations(c *fiber.Ctx) error {
	pageable := utils.ParsePageable(c)
	filters := utils.ParseFilters(c, "search", "status", "lineCode")
	page, err := h.Stations.List(sessionContext(c), pageable, filters)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func (h *StationHandler) GetStationByCode(c *fiber.Ctx) error {
	station, err := h.Stations.GetByCode(sessionContext(c), c.Params("code"))
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, station)
}

func (h *StationHandler) CreateStation(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSaveStation").(model.SaveStationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse save station fail"))
	}
	station, err := h.Stations.Save(sessionContext(c), input)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, station)
}

func (h *StationHandler) UpdateStation(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateStation").(model.UpdateStationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse update station fail"))
	}
	station, err := h.Stations.Update(sessionContext(c), c.Params("code"), input)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, station)
}

func (h *StationHandler) StationStatus(c *fiber.Ctx) error {
	status, ok := c.Locals("inputStatus").(model.StationStatus)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse status fail"))
	}
	station, err := h.Stations.SetStatus(sessionContext(c), c.Params("code"), status)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, station)
}

func (h *StationHandler) GetStationSummary(c *fiber.Ctx) error {
	summary, err := h.Stations.Summary(sessionContext(c))
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, summary)
}
