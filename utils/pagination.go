package utils

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"metroll_cms/model"
)

// ParsePageable reads page/size/sort query parameters. Sort entries use
// the "field,direction" form; direction defaults to asc.
func ParsePageable(c *fiber.Ctx) *model.Pageable {
	pageable := &model.Pageable{Page: 0, Size: 20}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v >= 0 {
		pageable.Page = v
	}
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		pageable.Size = v
	}
	if raw := c.Query("sort"); raw != "" {
		pageable.Sort = map[string]model.SortDirection{}
		for _, entry := range strings.Split(raw, ";") {
			parts := strings.SplitN(entry, ",", 2)
			dir := model.SortAsc
			if len(parts) == 2 && strings.EqualFold(parts[1], "desc") {
				dir = model.SortDesc
			}
			if parts[0] != "" {
				pageable.Sort[parts[0]] = dir
			}
		}
	}
	return pageable
}

// ParseFilters collects the allowed filter keys from the query string,
// dropping blanks so they are never forwarded as empty parameters.
func ParseFilters(c *fiber.Ctx, keys ...string) map[string]string {
	filters := map[string]string{}
	for _, key := range keys {
		if v := c.Query(key); v != "" {
			filters[key] = v
		}
	}
	return filters
}
