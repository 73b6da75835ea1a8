package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shinyyama/omnicopy-backend/internal/ai"
	"github.com/shinyyama/omnicopy-backend/internal/export"
	"github.com/shinyyama/omnicopy-backend/internal/model"
)

type toneOption struct {
	Value model.Tone `json:"value"`
	Label string     `json:"label"`
}

type CatalogResponse struct {
	Tones         []toneOption     `json:"tones"`
	Categories    []string         `json:"categories"`
	Platforms     []model.Platform `json:"platforms"`
	ExportFormats []export.Format  `json:"exportFormats"`
	PromptVersion ai.PromptVersion `json:"promptVersion"`
}

// Catalog serves the static option lists the product form renders.
func Catalog(version ai.PromptVersion) echo.HandlerFunc {
	resp := CatalogResponse{
		Categories:    model.Categories,
		Platforms:     []model.Platform{model.PlatformShopify, model.PlatformWooCommerce},
		ExportFormats: export.Formats,
		PromptVersion: version,
	}
	for _, t := range model.Tones {
		resp.Tones = append(resp.Tones, toneOption{Value: t, Label: t.Label()})
	}
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, resp)
	}
}
