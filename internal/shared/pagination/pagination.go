package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	DefaultMaxSize  = 100

	PageQuery     = "page"
	PageSizeQuery = "page_size"
)

// Params is a resolved page-number request. Page is 1-based.
type Params struct {
	Page     int
	PageSize int
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Config holds the fixed page size and the ceiling a client may request.
type Config struct {
	PageSize    int
	MaxPageSize int
}

func (c Config) normalized() Config {
	if c.PageSize < 1 {
		c.PageSize = DefaultPageSize
	}
	if c.MaxPageSize < c.PageSize {
		c.MaxPageSize = DefaultMaxSize
		if c.MaxPageSize < c.PageSize {
			c.MaxPageSize = c.PageSize
		}
	}
	return c
}

// Resolve clamps raw query values to the configured bounds.
func (c Config) Resolve(rawPage, rawSize string) Params {
	cfg := c.normalized()

	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		page = 1
	}

	size := cfg.PageSize
	if rawSize != "" {
		if n, err := strconv.Atoi(rawSize); err == nil && n > 0 {
			size = n
		}
	}
	if size > cfg.MaxPageSize {
		size = cfg.MaxPageSize
	}

	return Params{Page: page, PageSize: size}
}

func (c Config) FromQuery(ctx *gin.Context) Params {
	return c.Resolve(ctx.Query(PageQuery), ctx.Query(PageSizeQuery))
}
