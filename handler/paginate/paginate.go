package paginate

import (
	"net/url"
	"strconv"

	"github.com/Samuel-Loga/Personal-Website/database/repository/pagination"
)

func NewFrom(u *url.URL, defaultLimit int) pagination.Paginate {
	values := u.Query()

	page := pagination.MinPage
	pageSize := defaultLimit

	if pageSize < 1 || pageSize > pagination.MaxLimit {
		pageSize = pagination.MaxLimit
	}

	if values.Get("page") != "" {
		if tPage, err := strconv.Atoi(values.Get("page")); err == nil {
			page = tPage
		}
	}

	if values.Get("limit") != "" {
		if limit, err := strconv.Atoi(values.Get("limit")); err == nil {
			pageSize = limit
		}
	}

	if page < pagination.MinPage {
		page = pagination.MinPage
	}

	if pageSize > pagination.MaxLimit || pageSize < 1 {
		pageSize = pagination.MaxLimit
	}

	return pagination.Paginate{
		Page:  page,
		Limit: pageSize,
	}
}
