package http

import "github.com/devfolio-app/portfolio-backend/internal/catalog"

type listResponse struct {
	OK    bool             `json:"ok"`
	Tag   string           `json:"tag,omitempty"`
	Query string           `json:"query,omitempty"`
	View  catalog.PageView `json:"view"`
}
