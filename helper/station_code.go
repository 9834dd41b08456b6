package helper

import (
	"strings"

	"github.com/gosimple/slug"
)

// StationCode derives a stable station code from the station name when the
// operator leaves the code blank, e.g. "Bến Thành" -> "BEN-THANH".
func StationCode(name string) string {
	return strings.ToUpper(slug.Make(name))
}
