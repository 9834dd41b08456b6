package constants

// User-facing message constants shared by handlers and middlewares.
const (
	ERROR_INPUT                = "Invalid input data"
	ERROR_PARSE_DATA_TO_LOCALS = "Internal error while reading validated input"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_UNKNOWN              = "unknown error"

	NOT_ADMIN         = "Admin permission required"
	NOT_STAFF         = "Staff permission required"
	NOT_FOUND_RECORDS = "Record not found"

	MISSING_TOKEN       = "Missing token"
	INVALID_TOKEN       = "Invalid token"
	SESSION_EXPIRED     = "Session expired, please sign in again"
	MISSING_LOGIN_INPUT = "Missing login input"

	DATA_INPUT_IS_NOT_NUMBER = "Input must be a number"
	ROLE_NOT_EXISTS          = "Role does not exist"
	STATUS_NOT_EXISTS        = "Status does not exist"

	LINE_NEEDS_SEGMENTS   = "A metro line needs at least one segment"
	SEGMENT_CHAIN_BROKEN  = "Segments must form one continuous path"
	SEGMENT_STATION_REUSE = "A station cannot be revisited by the same line"

	UPSTREAM_UNREACHABLE = "Cannot reach the Metroll API"
)

// Route the admin UI is sent back to when the session dies.
const SIGN_IN_ROUTE = "/auth/login"
