package validate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metroll_cms/constants"
	"metroll_cms/model"
)

func lineApp() *fiber.App {
	app := fiber.New()
	app.Post("/line", SaveLine(), func(c *fiber.Ctx) error {
		input := c.Locals("inputSaveLine").(model.SaveLineInput)
		return c.JSON(fiber.Map{"segments": len(input.Segments)})
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSaveLine_EmptySegmentsRejected(t *testing.T) {
	app := lineApp()

	resp := postJSON(t, app, "/line", `{
		"name": "Line 1",
		"color": "#ff0000",
		"operatingHours": "05:00-23:00",
		"status": "PLANNED",
		"segments": []
	}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, constants.LINE_NEEDS_SEGMENTS, body["message"])
}

func TestSaveLine_BrokenChainRejected(t *testing.T) {
	app := lineApp()

	resp := postJSON(t, app, "/line", `{
		"name": "Line 1",
		"color": "#ff0000",
		"operatingHours": "05:00-23:00",
		"status": "PLANNED",
		"segments": [
			{"sequence": 1, "distanceKm": 2, "travelTimeMin": 4, "startStationCode": "A", "endStationCode": "B"},
			{"sequence": 2, "distanceKm": 2, "travelTimeMin": 4, "startStationCode": "C", "endStationCode": "D"}
		]
	}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSaveLine_ClosedLoopRejected(t *testing.T) {
	app := lineApp()

	resp := postJSON(t, app, "/line", `{
		"name": "Loop",
		"color": "#00ff00",
		"operatingHours": "05:00-23:00",
		"status": "PLANNED",
		"segments": [
			{"sequence": 1, "distanceKm": 2, "travelTimeMin": 4, "startStationCode": "A", "endStationCode": "B"},
			{"sequence": 2, "distanceKm": 2, "travelTimeMin": 4, "startStationCode": "B", "endStationCode": "C"},
			{"sequence": 3, "distanceKm": 2, "travelTimeMin": 4, "startStationCode": "C", "endStationCode": "A"}
		]
	}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSaveLine_ValidChainPasses(t *testing.T) {
	app := lineApp()

	resp := postJSON(t, app, "/line", `{
		"name": "Line 1",
		"color": "#ff0000",
		"operatingHours": "05:00-23:00",
		"status": "OPERATIONAL",
		"segments": [
			{"sequence": 1, "distanceKm": 2, "travelTimeMin": 4, "startStationCode": "A", "endStationCode": "B"},
			{"sequence": 2, "distanceKm": 3, "travelTimeMin": 5, "startStationCode": "B", "endStationCode": "C"}
		]
	}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body["segments"])
}
