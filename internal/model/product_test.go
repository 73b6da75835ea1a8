package model

import (
	"errors"
	"testing"
)

func validInput() ProductInput {
	return ProductInput{
		Name:     "Pro Watch",
		Features: "GPS, étanche 50m, autonomie 7 jours",
		Category: "Tech",
		Price:    "149.99",
		Tone:     ToneMarketing,
	}
}

func TestProductInputValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*ProductInput)
		wantFields []string
	}{
		{"valid", func(*ProductInput) {}, nil},
		{"valid data uri", func(in *ProductInput) { in.ImageURL = "data:image/png;base64,iVBORw0KGgo=" }, nil},
		{"valid url", func(in *ProductInput) { in.ImageURL = "https://cdn.example.com/w.png" }, nil},
		{"short name", func(in *ProductInput) { in.Name = "ab" }, []string{"name"}},
		{"accented name counts runes", func(in *ProductInput) { in.Name = "Été" }, nil},
		{"short features", func(in *ProductInput) { in.Features = "court" }, []string{"features"}},
		{"missing category", func(in *ProductInput) { in.Category = "" }, []string{"category"}},
		{"unknown category", func(in *ProductInput) { in.Category = "Voitures" }, []string{"category"}},
		{"missing price", func(in *ProductInput) { in.Price = " " }, []string{"price"}},
		{"non numeric price", func(in *ProductInput) { in.Price = "douze" }, []string{"price"}},
		{"negative price", func(in *ProductInput) { in.Price = "-1" }, []string{"price"}},
		{"NaN price", func(in *ProductInput) { in.Price = "NaN" }, []string{"price"}},
		{"infinite price", func(in *ProductInput) { in.Price = "Inf" }, []string{"price"}},
		{"signed infinity price", func(in *ProductInput) { in.Price = "+Infinity" }, []string{"price"}},
		{"hex price", func(in *ProductInput) { in.Price = "0x10" }, []string{"price"}},
		{"hex float price", func(in *ProductInput) { in.Price = "0x1p4" }, []string{"price"}},
		{"exponent price", func(in *ProductInput) { in.Price = "1e3" }, []string{"price"}},
		{"three decimals", func(in *ProductInput) { in.Price = "12.999" }, []string{"price"}},
		{"integer price", func(in *ProductInput) { in.Price = "0" }, nil},
		{"comma price", func(in *ProductInput) { in.Price = "12,99" }, nil},
		{"bad tone", func(in *ProductInput) { in.Tone = "CASUAL" }, []string{"tone"}},
		{"bad image", func(in *ProductInput) { in.ImageURL = "ftp://x" }, []string{"imageUrl"}},
		{"several", func(in *ProductInput) { in.Name = ""; in.Price = "" }, []string{"name", "price"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := in.Validate()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("want *ValidationError, got %v", err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Fatalf("fields=%v want=%v", verr.Fields, tt.wantFields)
			}
			for i, f := range tt.wantFields {
				if verr.Fields[i].Field != f {
					t.Fatalf("field[%d]=%s want=%s", i, verr.Fields[i].Field, f)
				}
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	in := ProductInput{Name: "  Pro Watch ", Tone: " friendly", Price: " 12 "}.Normalize()
	if in.Name != "Pro Watch" || in.Tone != ToneFriendly || in.Price != "12" {
		t.Fatalf("got=%+v", in)
	}
}

func TestNormalizeCommaPrice(t *testing.T) {
	tests := map[string]string{
		"12,99":  "12.99",
		" 12,5 ": "12.5",
		"12.99":  "12.99",
		"1,2,3":  "1,2,3",
		"douze":  "douze",
	}
	for in, want := range tests {
		if got := (ProductInput{Price: in}).Normalize().Price; got != want {
			t.Errorf("Normalize(%q).Price=%q want %q", in, got, want)
		}
	}
}

func TestToneLabel(t *testing.T) {
	if got := ToneTechnical.Label(); got != "Technique & Précis" {
		t.Fatalf("got=%q", got)
	}
	if got := Tone("OTHER").Label(); got != "OTHER" {
		t.Fatalf("got=%q", got)
	}
}
