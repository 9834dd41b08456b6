package model

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleStaff    Role = "STAFF"
	RoleCustomer Role = "CUSTOMER"
)

// Account is a CMS/backend user. Accounts are never deleted, only
// deactivated.
type Account struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	FullName        string  `json:"fullName"`
	PhoneNumber     string  `json:"phoneNumber"`
	Role            Role    `json:"role"`
	Active          bool    `json:"active"`
	AssignedStation *string `json:"assignedStation,omitempty"`
}

type AccountSummary struct {
	TotalAccounts    int `json:"totalAccounts"`
	TotalAdmins      int `json:"totalAdmins"`
	TotalStaff       int `json:"totalStaff"`
	TotalCustomers   int `json:"totalCustomers"`
	ActiveAccounts   int `json:"activeAccounts"`
	InactiveAccounts int `json:"inactiveAccounts"`
}

type CreateAccountInput struct {
	Email       string `json:"email" validate:"required,email"`
	FullName    string `json:"fullName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty"`
	Role        Role   `json:"role" validate:"required,oneof=ADMIN STAFF CUSTOMER"`
}

type UpdateAccountInput struct {
	FullName    *string `json:"fullName" validate:"omitempty"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty"`
	Role        *Role   `json:"role" validate:"omitempty,oneof=ADMIN STAFF CUSTOMER"`
}

// AssignStationInput binds a staff account to the station it works at.
type AssignStationInput struct {
	StationCode string `json:"stationCode" validate:"required"`
}

// LoginInput carries the identity-provider bearer token the admin UI
// obtained from its sign-in popup.
type LoginInput struct {
	IDToken string `json:"idToken" validate:"required"`
}

// LoginResult is what the upstream login endpoint answers when it
// exchanges the identity-provider token for an application role.
type LoginResult struct {
	AccountID string `json:"accountId"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	Role      Role   `json:"role"`
}
