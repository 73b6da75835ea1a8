package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shinyyama/omnicopy-backend/internal/model"
)

const (
	MimeCSV  = "text/csv;charset=utf-8;"
	MimeJSON = "application/json"

	DefaultVendor = "OmniCopy AI Store"
)

// Payload is a downloadable import file.
type Payload struct {
	Filename string
	MimeType string
	Body     []byte
}

// Options carries the store-level defaults applied when the model left a field empty.
type Options struct {
	DefaultVendor string
}

func (o Options) vendor(c model.GeneratedContent) string {
	if v := strings.TrimSpace(c.Vendor); v != "" {
		return v
	}
	if o.DefaultVendor != "" {
		return o.DefaultVendor
	}
	return DefaultVendor
}

type Format string

const (
	FormatShopifyCSV      Format = "shopify-csv"
	FormatWooCommerceCSV  Format = "woocommerce-csv"
	FormatWooCommerceJSON Format = "woocommerce-json"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatShopifyCSV, FormatWooCommerceCSV, FormatWooCommerceJSON}

var ErrUnknownFormat = errors.New("unknown export format")

// Func maps a generation result to one import file. Implementations are pure.
type Func func(content model.GeneratedContent, input model.ProductInput, opts Options) (Payload, error)

func ByFormat(format string) (Func, error) {
	switch Format(strings.ToLower(strings.TrimSpace(format))) {
	case FormatShopifyCSV:
		return ShopifyCSV, nil
	case FormatWooCommerceCSV:
		return WooCommerceCSV, nil
	case FormatWooCommerceJSON:
		return WooCommerceJSON, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
