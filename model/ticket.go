package model

import "time"

type TicketType string

const (
	TicketP2P   TicketType = "P2P"
	TicketTimed TicketType = "TIMED"
)

type TicketStatus string

const (
	TicketValid     TicketStatus = "VALID"
	TicketUsed      TicketStatus = "USED"
	TicketExpired   TicketStatus = "EXPIRED"
	TicketCancelled TicketStatus = "CANCELLED"
)

type Ticket struct {
	ID            string       `json:"id"`
	TicketType    TicketType   `json:"ticketType"`
	TicketNumber  string       `json:"ticketNumber"`
	OrderDetailID string       `json:"orderDetailId"`
	PurchaseDate  time.Time    `json:"purchaseDate"`
	ValidUntil    time.Time    `json:"validUntil"`
	Status        TicketStatus `json:"status"`
}

type ValidationType string

const (
	ValidationEntry ValidationType = "ENTRY"
	ValidationExit  ValidationType = "EXIT"
)

// TicketValidation is an append-only log entry; there is no update or
// delete for it anywhere in the system.
type TicketValidation struct {
	ID             string         `json:"id"`
	TicketID       string         `json:"ticketId"`
	StationCode    string         `json:"stationCode"`
	ValidationType ValidationType `json:"validationType"`
	ValidationTime time.Time      `json:"validationTime"`
	ValidatorID    string         `json:"validatorId"`
}

type TicketSummary struct {
	TotalTickets int `json:"totalTickets"`
	Valid        int `json:"valid"`
	Used         int `json:"used"`
	Expired      int `json:"expired"`
	Cancelled    int `json:"cancelled"`
	P2P          int `json:"p2p"`
	Timed        int `json:"timed"`
}
