package model

type StationStatus string

const (
	StationOperational      StationStatus = "OPERATIONAL"
	StationUnderMaintenance StationStatus = "UNDER_MAINTENANCE"
	StationClosed           StationStatus = "CLOSED"
)

// LineRef is a back-reference from a station to a line it belongs to.
type LineRef struct {
	LineCode string `json:"lineCode"`
	Sequence int    `json:"sequence"`
}

// Station code is the stable external identifier and never changes after
// creation; updates go out without it.
type Station struct {
	Code        string        `json:"code"`
	Name        string        `json:"name"`
	Address     string        `json:"address"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	Status      StationStatus `json:"status"`
	Description string        `json:"description,omitempty"`
	Lines       []LineRef     `json:"lines,omitempty"`
}

type StationSummary struct {
	TotalStations    int `json:"totalStations"`
	Operational      int `json:"operational"`
	UnderMaintenance int `json:"underMaintenance"`
	Closed           int `json:"closed"`
}

type SaveStationInput struct {
	Code        string        `json:"code" validate:"omitempty,max=30"`
	Name        string        `json:"name" validate:"required"`
	Address     string        `json:"address" validate:"required"`
	Latitude    float64       `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude   float64       `json:"longitude" validate:"required,gte=-180,lte=180"`
	Status      StationStatus `json:"status" validate:"required,oneof=OPERATIONAL UNDER_MAINTENANCE CLOSED"`
	Description string        `json:"description" validate:"omitempty"`
}

// UpdateStationInput has no code field; the code is fixed at creation.
type UpdateStationInput struct {
	Name        *string        `json:"name" validate:"omitempty"`
	Address     *string        `json:"address" validate:"omitempty"`
	Latitude    *float64       `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64       `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Status      *StationStatus `json:"status" validate:"omitempty,oneof=OPERATIONAL UNDER_MAINTENANCE CLOSED"`
	Description *string        `json:"description" validate:"omitempty"`
}
