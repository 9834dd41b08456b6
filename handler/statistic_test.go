package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatusMetaServesEveryTable(t *testing.T) {
	app := fiber.New()
	app.Get("/meta/statuses", GetStatusMeta)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/meta/statuses", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body struct {
		Status string `json:"status"`
		Data   map[string]map[string]struct {
			Label string `json:"label"`
			Color string `json:"color"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "success", body.Status)

	for _, table := range []string{
		"roles", "stationStatuses", "lineStatuses", "ticketStatuses",
		"ticketTypes", "voucherStatuses", "packageStatuses",
		"assignmentStatuses", "orderStatuses",
	} {
		assert.NotEmpty(t, body.Data[table], "table %s", table)
	}
	assert.Equal(t, "Operational", body.Data["stationStatuses"]["OPERATIONAL"].Label)
	assert.Equal(t, "purple", body.Data["roles"]["ADMIN"].Color)
}
