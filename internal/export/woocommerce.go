package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shinyyama/omnicopy-backend/internal/model"
)

const (
	metaYoastTitle    = "_yoast_wpseo_title"
	metaYoastMetaDesc = "_yoast_wpseo_metadesc"
	metaGenerated     = "_omnicopy_generated"
)

// WooCommerceCSV builds the single-product WooCommerce CSV import file.
func WooCommerceCSV(c model.GeneratedContent, in model.ProductInput, _ Options) (Payload, error) {
	seoTitle := c.SEOTitle
	if seoTitle == "" {
		seoTitle = c.Title
	}
	header, row := splitColumns([]column{
		{"Name", c.Title},
		{"Description", c.Description},
		{"Short description", c.ShortDescription},
		{"Categories", in.Category},
		{"Tags", joinTags(c.Tags)},
		{"Regular price", in.Price},
		{"Images", in.ImageURL},
		{"Meta: " + metaYoastTitle, seoTitle},
		{"Meta: " + metaYoastMetaDesc, c.MetaDescription},
	})
	body, err := writeTable(header, row)
	if err != nil {
		return Payload{}, err
	}
	return Payload{Filename: "woocommerce_import.csv", MimeType: MimeCSV, Body: body}, nil
}

type wooName struct {
	Name string `json:"name"`
}

type wooImage struct {
	Src string `json:"src"`
}

type wooMeta struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// wooProduct field order is the serialized key order.
type wooProduct struct {
	Name             string     `json:"name"`
	Slug             string     `json:"slug"`
	Type             string     `json:"type"`
	RegularPrice     string     `json:"regular_price"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"short_description"`
	Categories       []wooName  `json:"categories"`
	Images           []wooImage `json:"images"`
	Tags             []wooName  `json:"tags"`
	MetaData         []wooMeta  `json:"meta_data"`
}

// WooCommerceJSON builds a one-element product array for the WooCommerce REST importer.
func WooCommerceJSON(c model.GeneratedContent, in model.ProductInput, _ Options) (Payload, error) {
	images := []wooImage{}
	if in.ImageURL != "" {
		images = append(images, wooImage{Src: in.ImageURL})
	}
	tags := make([]wooName, 0, len(c.Tags))
	for _, t := range c.Tags {
		tags = append(tags, wooName{Name: t})
	}
	products := []wooProduct{{
		Name:             c.Title,
		Slug:             handleFor(c.Handle, in.Name),
		Type:             "simple",
		RegularPrice:     in.Price,
		Description:      c.Description,
		ShortDescription: c.ShortDescription,
		Categories:       []wooName{{Name: in.Category}},
		Images:           images,
		Tags:             tags,
		MetaData: []wooMeta{
			{Key: metaYoastMetaDesc, Value: c.MetaDescription},
			{Key: metaGenerated, Value: "true"},
		},
	}}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(products); err != nil {
		return Payload{}, fmt.Errorf("encode woocommerce json: %w", err)
	}
	return Payload{Filename: "woo_import.json", MimeType: MimeJSON, Body: bytes.TrimRight(buf.Bytes(), "\n")}, nil
}
