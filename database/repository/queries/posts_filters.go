package queries

import (
	"strings"

	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

type PostFilters struct {
	Search   string // Will perform a case-insensitive partial match on the title.
	Category string
}

func (f PostFilters) GetSearch() string {
	return f.sanitiseString(f.Search)
}

func (f PostFilters) GetCategory() string {
	return f.sanitiseString(f.Category)
}

func (f PostFilters) sanitiseString(seed string) string {
	str := portal.NewStringable(seed)

	return strings.TrimSpace(str.ToLower())
}
