package export

import (
	"github.com/shinyyama/omnicopy-backend/internal/model"
)

const (
	defaultOption1Name  = "Title"
	defaultOption1Value = "Default Title"
)

// ShopifyCSV builds the single-product Shopify import file.
func ShopifyCSV(c model.GeneratedContent, in model.ProductInput, opts Options) (Payload, error) {
	optName, optValue := c.Option1Name, c.Option1Value
	if optName == "" || optValue == "" {
		optName, optValue = defaultOption1Name, defaultOption1Value
	}
	seoTitle := c.SEOTitle
	if seoTitle == "" {
		seoTitle = c.Title
	}
	imagePosition := ""
	if in.ImageURL != "" {
		imagePosition = "1"
	}

	header, row := splitColumns([]column{
		{"Handle", handleFor(c.Handle, in.Name)},
		{"Title", c.Title},
		{"Body (HTML)", c.Description},
		{"Vendor", opts.vendor(c)},
		{"Type", in.Category},
		{"Tags", joinTags(c.Tags)},
		{"Published", "true"},
		{"Option1 Name", optName},
		{"Option1 Value", optValue},
		{"Variant SKU", ""},
		{"Variant Grams", "0"},
		{"Variant Inventory Tracker", "shopify"},
		{"Variant Inventory Qty", "1"},
		{"Variant Inventory Policy", "deny"},
		{"Variant Fulfillment Service", "manual"},
		{"Variant Price", in.Price},
		{"Variant Requires Shipping", "true"},
		{"Variant Taxable", "true"},
		{"Image Src", in.ImageURL},
		{"Image Position", imagePosition},
		{"SEO Title", seoTitle},
		{"SEO Description", c.MetaDescription},
	})
	body, err := writeTable(header, row)
	if err != nil {
		return Payload{}, err
	}
	return Payload{Filename: "shopify_import.csv", MimeType: MimeCSV, Body: body}, nil
}
