package model

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

type Tone string

const (
	ToneLuxury    Tone = "LUXURY"
	ToneTechnical Tone = "TECHNICAL"
	ToneFriendly  Tone = "FRIENDLY"
	ToneMarketing Tone = "MARKETING"
)

var toneLabels = map[Tone]string{
	ToneLuxury:    "Luxe & Élégant",
	ToneTechnical: "Technique & Précis",
	ToneFriendly:  "Convivial & Accessible",
	ToneMarketing: "Marketing & Percutant",
}

// Tones lists the tones in display order.
var Tones = []Tone{ToneLuxury, ToneTechnical, ToneFriendly, ToneMarketing}

// Categories is the fixed category list offered by the product form.
var Categories = []string{
	"Mode",
	"Tech",
	"Déco",
	"Alimentaire",
	"Beauté",
	"Sport",
	"Maison",
	"Autres",
}

func (t Tone) Valid() bool {
	_, ok := toneLabels[t]
	return ok
}

// Label returns the French register label sent to the model.
func (t Tone) Label() string {
	if l, ok := toneLabels[t]; ok {
		return l
	}
	return string(t)
}

func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// ProductInput is the form submission a generation starts from.
type ProductInput struct {
	Name     string `json:"name" firestore:"name"`
	Features string `json:"features" firestore:"features"`
	Category string `json:"category" firestore:"category"`
	Price    string `json:"price" firestore:"price"`
	Tone     Tone   `json:"tone" firestore:"tone"`
	ImageURL string `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"`
}

const (
	minNameLen     = 3
	minFeaturesLen = 10
)

// pricePattern accepts plain decimals with at most two fraction digits; "12,99" is allowed.
var pricePattern = regexp.MustCompile(`^\d+(?:[.,]\d{1,2})?$`)

// Normalize trims surrounding whitespace of every field and writes a valid
// comma price with a dot, the separator the import formats expect.
func (in ProductInput) Normalize() ProductInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Features = strings.TrimSpace(in.Features)
	in.Category = strings.TrimSpace(in.Category)
	in.Price = strings.TrimSpace(in.Price)
	if pricePattern.MatchString(in.Price) {
		in.Price = strings.Replace(in.Price, ",", ".", 1)
	}
	in.Tone = Tone(strings.ToUpper(strings.TrimSpace(string(in.Tone))))
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	return in
}

// Validate checks the shape constraints of the form. All failing fields are reported at once.
func (in ProductInput) Validate() error {
	verr := &ValidationError{}
	if utf8.RuneCountInString(strings.TrimSpace(in.Name)) < minNameLen {
		verr.add("name", fmt.Sprintf("Le nom du produit doit contenir au moins %d caractères.", minNameLen))
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Features)) < minFeaturesLen {
		verr.add("features", fmt.Sprintf("Veuillez décrire quelques caractéristiques (au moins %d caractères).", minFeaturesLen))
	}
	if strings.TrimSpace(in.Category) == "" {
		verr.add("category", "La catégorie est requise.")
	} else if !IsCategory(in.Category) {
		verr.add("category", "Catégorie inconnue.")
	}
	if price := strings.TrimSpace(in.Price); price == "" {
		verr.add("price", "Le prix est requis.")
	} else if !pricePattern.MatchString(price) {
		verr.add("price", "Le prix doit être un nombre positif.")
	}
	if !in.Tone.Valid() {
		verr.add("tone", "Ton inconnu.")
	}
	if img := strings.TrimSpace(in.ImageURL); img != "" && !isImageRef(img) {
		verr.add("imageUrl", "L'image doit être une data URI ou une URL http(s).")
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func isImageRef(s string) bool {
	low := strings.ToLower(s)
	if strings.HasPrefix(low, "data:") {
		return strings.Contains(low, ";base64,")
	}
	return strings.HasPrefix(low, "http://") || strings.HasPrefix(low, "https://")
}

// FieldError is one failing form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError blocks a submission before any model call.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid product input: " + strings.Join(parts, "; ")
}
