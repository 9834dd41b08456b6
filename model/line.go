package model

type LineStatus string

const (
	LinePlanned          LineStatus = "PLANNED"
	LineOperational      LineStatus = "OPERATIONAL"
	LineUnderMaintenance LineStatus = "UNDER_MAINTENANCE"
	LineClosed           LineStatus = "CLOSED"
)

// Segment is one station-to-station leg of a line. Segments are owned by
// their line and replaced as a whole on every line update.
type Segment struct {
	Sequence         int     `json:"sequence"`
	DistanceKm       float64 `json:"distanceKm"`
	TravelTimeMin    int     `json:"travelTimeMin"`
	Description      string  `json:"description,omitempty"`
	StartStationCode string  `json:"startStationCode"`
	EndStationCode   string  `json:"endStationCode"`
}

type MetroLine struct {
	Code           string     `json:"code"`
	Name           string     `json:"name"`
	Color          string     `json:"color"`
	OperatingHours string     `json:"operatingHours"`
	Status         LineStatus `json:"status"`
	Segments       []Segment  `json:"segments"`
}

type LineSummary struct {
	TotalLines       int `json:"totalLines"`
	Planned          int `json:"planned"`
	Operational      int `json:"operational"`
	UnderMaintenance int `json:"underMaintenance"`
	Closed           int `json:"closed"`
}

type SegmentInput struct {
	Sequence         int     `json:"sequence" validate:"required,gte=1"`
	DistanceKm       float64 `json:"distanceKm" validate:"required,gt=0"`
	TravelTimeMin    int     `json:"travelTimeMin" validate:"required,gt=0"`
	Description      string  `json:"description" validate:"omitempty"`
	StartStationCode string  `json:"startStationCode" validate:"required"`
	EndStationCode   string  `json:"endStationCode" validate:"required"`
}

type SaveLineInput struct {
	Code           string         `json:"code" validate:"omitempty,max=30"`
	Name           string         `json:"name" validate:"required"`
	Color          string         `json:"color" validate:"required"`
	OperatingHours string         `json:"operatingHours" validate:"required"`
	Status         LineStatus     `json:"status" validate:"required,oneof=PLANNED OPERATIONAL UNDER_MAINTENANCE CLOSED"`
	Segments       []SegmentInput `json:"segments" validate:"required,min=1,dive"`
}

// SegmentCandidatesInput is what the line editor sends while the operator
// assembles a draft: the segments so far, which entry is being edited
// (-1 when appending), and the chosen start station.
type SegmentCandidatesInput struct {
	Segments     []SegmentInput `json:"segments" validate:"omitempty,dive"`
	EditingIndex int            `json:"editingIndex" validate:"gte=-1"`
	StartStation string         `json:"startStation" validate:"omitempty"`
}

type SegmentCandidates struct {
	NextStart   string    `json:"nextStart"`
	StartLocked bool      `json:"startLocked"`
	Candidates  []Station `json:"candidates"`
}
