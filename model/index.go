package model

import "time"

// SortDirection is the wire form of a sort order (lower-cased on the query
// string, per the upstream API contract).
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Pageable describes one page request against the upstream API.
type Pageable struct {
	Page int                      `json:"page"`
	Size int                      `json:"size"`
	Sort map[string]SortDirection `json:"sort,omitempty"`
}

// Page is the standard paginated envelope returned by every upstream list
// endpoint.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

// Session is the CMS-side login session. UpstreamToken is the short-lived
// bearer credential injected into every outbound Metroll API call.
type Session struct {
	ID            string    `json:"id"`
	AccountID     string    `json:"accountId"`
	Email         string    `json:"email"`
	Role          Role      `json:"role"`
	UpstreamToken string    `json:"upstreamToken"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// TokenClaim is what goes into the CMS session JWT.
type TokenClaim struct {
	SessionID string `json:"sessionId"`
	AccountID string `json:"accountId"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}
