package model

// StatusMeta carries the display metadata for one enum value. The tables
// below are the authoritative value set per enum: the meta endpoint serves
// them to the admin screens and TallyStatus counts against them in the
// summary fallbacks.
type StatusMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// TallyStatus counts items into one bucket per enum value known to the
// meta table. Values missing from the table count toward the total only.
func TallyStatus[S comparable, T any](meta map[S]StatusMeta, items []T, status func(T) S) (total int, counts map[S]int) {
	counts = make(map[S]int, len(meta))
	for _, item := range items {
		total++
		s := status(item)
		if _, ok := meta[s]; ok {
			counts[s]++
		}
	}
	return total, counts
}

var RoleMeta = map[Role]StatusMeta{
	RoleAdmin:    {Label: "Admin", Color: "purple"},
	RoleStaff:    {Label: "Staff", Color: "blue"},
	RoleCustomer: {Label: "Customer", Color: "gray"},
}

var StationStatusMeta = map[StationStatus]StatusMeta{
	StationOperational:      {Label: "Operational", Color: "green"},
	StationUnderMaintenance: {Label: "Under maintenance", Color: "amber"},
	StationClosed:           {Label: "Closed", Color: "red"},
}

var LineStatusMeta = map[LineStatus]StatusMeta{
	LinePlanned:          {Label: "Planned", Color: "gray"},
	LineOperational:      {Label: "Operational", Color: "green"},
	LineUnderMaintenance: {Label: "Under maintenance", Color: "amber"},
	LineClosed:           {Label: "Closed", Color: "red"},
}

var TicketStatusMeta = map[TicketStatus]StatusMeta{
	TicketValid:     {Label: "Valid", Color: "green"},
	TicketUsed:      {Label: "Used", Color: "blue"},
	TicketExpired:   {Label: "Expired", Color: "gray"},
	TicketCancelled: {Label: "Cancelled", Color: "red"},
}

var TicketTypeMeta = map[TicketType]StatusMeta{
	TicketP2P:   {Label: "Point to point", Color: "blue"},
	TicketTimed: {Label: "Timed", Color: "purple"},
}

var VoucherStatusMeta = map[VoucherStatus]StatusMeta{
	VoucherPreserved: {Label: "Preserved", Color: "gray"},
	VoucherValid:     {Label: "Valid", Color: "green"},
	VoucherUsed:      {Label: "Used", Color: "blue"},
	VoucherExpired:   {Label: "Expired", Color: "amber"},
	VoucherRevoked:   {Label: "Revoked", Color: "red"},
}

var PackageStatusMeta = map[PackageStatus]StatusMeta{
	PackageActive:     {Label: "Active", Color: "green"},
	PackageTerminated: {Label: "Terminated", Color: "red"},
}

var AssignmentStatusMeta = map[AssignmentStatus]StatusMeta{
	AssignmentActivated: {Label: "Activated", Color: "green"},
	AssignmentExpired:   {Label: "Expired", Color: "gray"},
	AssignmentCancelled: {Label: "Cancelled", Color: "red"},
}

var OrderStatusMeta = map[OrderStatus]StatusMeta{
	OrderPending:   {Label: "Pending", Color: "amber"},
	OrderCompleted: {Label: "Completed", Color: "green"},
	OrderFailed:    {Label: "Failed", Color: "red"},
}
