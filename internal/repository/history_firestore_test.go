package repository

import (
	"reflect"
	"testing"
	"time"

	"github.com/shinyyama/omnicopy-backend/internal/model"
)

func TestHistoryDocRoundTrip(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := model.ProductDescription{
		ID:       "doc1",
		UserID:   "u1",
		Platform: model.PlatformWooCommerce,
		Content: model.GeneratedContent{
			Title:            "Câble USB-C tressé",
			Description:      "<p>Solide.</p>",
			ShortDescription: "Court.",
			MetaDescription:  "Méta.",
			Tags:             []string{"usb-c", "tech"},
			Handle:           "cable-usb-c",
			Vendor:           "Acme",
			SEOTitle:         "Câble USB-C | Acme",
			Option1Name:      "Longueur",
			Option1Value:     "1m",
		},
		InputData: model.ProductInput{
			Name:     "Câble USB-C",
			Features: "1m, nylon tressé",
			Category: "Tech",
			Price:    "12.99",
			Tone:     model.ToneTechnical,
			ImageURL: "https://cdn.example.com/c.png",
		},
		CreatedAt: created,
	}

	doc := toHistoryDoc(&rec)
	if !doc.CreatedAt.IsZero() {
		t.Fatal("createdAt must be left to the server timestamp")
	}
	doc.CreatedAt = created
	if got := doc.record("doc1"); !reflect.DeepEqual(got, rec) {
		t.Fatalf("round trip mismatch:\n got=%+v\nwant=%+v", got, rec)
	}
}

func TestHistoryDocEmptyTags(t *testing.T) {
	doc := toHistoryDoc(&model.ProductDescription{UserID: "u1", Content: model.GeneratedContent{Title: "T"}})
	if doc.Tags == nil || len(doc.Tags) != 0 {
		t.Fatalf("tags=%#v", doc.Tags)
	}
}
