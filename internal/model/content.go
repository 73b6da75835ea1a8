package model

import (
	"encoding/json"
	"time"
)

type Platform string

const (
	PlatformShopify     Platform = "shopify"
	PlatformWooCommerce Platform = "woocommerce"
)

func (p Platform) Valid() bool {
	return p == PlatformShopify || p == PlatformWooCommerce
}

// GeneratedContent is one validated model answer. Handle, Vendor, SEOTitle and
// the option pair are optional: exporters fill them with defaults when empty.
type GeneratedContent struct {
	Title            string   `json:"title" firestore:"title"`
	Description      string   `json:"description" firestore:"description"`
	ShortDescription string   `json:"shortDescription" firestore:"shortDescription"`
	MetaDescription  string   `json:"metaDescription" firestore:"metaDescription"`
	Tags             []string `json:"tags" firestore:"tags"`
	Handle           string   `json:"handle,omitempty" firestore:"handle,omitempty"`
	Vendor           string   `json:"vendor,omitempty" firestore:"vendor,omitempty"`
	SEOTitle         string   `json:"seoTitle,omitempty" firestore:"seoTitle,omitempty"`
	Option1Name      string   `json:"option1Name,omitempty" firestore:"option1Name,omitempty"`
	Option1Value     string   `json:"option1Value,omitempty" firestore:"option1Value,omitempty"`
}

// ProductDescription is the persisted history record of one generation.
type ProductDescription struct {
	ID        string           `json:"id" firestore:"-" gorm:"primaryKey;size:64"`
	UserID    string           `json:"userId" firestore:"userId" gorm:"column:user_id;size:128;index:idx_user_created,priority:1;not null"`
	Platform  Platform         `json:"platform" firestore:"platform" gorm:"column:platform;size:32;not null"`
	Content   GeneratedContent `json:"-" firestore:"-" gorm:"column:content;type:json;serializer:json"`
	InputData ProductInput     `json:"inputData" firestore:"inputData" gorm:"column:input_data;type:json;serializer:json"`
	CreatedAt time.Time        `json:"createdAt" firestore:"createdAt,serverTimestamp" gorm:"column:created_at;autoCreateTime;index:idx_user_created,priority:2"`
}

func (ProductDescription) TableName() string {
	return "product_descriptions"
}

// MarshalJSON flattens the generated content next to the record metadata.
func (d ProductDescription) MarshalJSON() ([]byte, error) {
	type meta struct {
		ID        string       `json:"id"`
		UserID    string       `json:"userId"`
		Platform  Platform     `json:"platform"`
		CreatedAt string       `json:"createdAt"`
		InputData ProductInput `json:"inputData"`
	}
	type flat struct {
		GeneratedContent
		meta
	}
	created := ""
	if !d.CreatedAt.IsZero() {
		created = d.CreatedAt.UTC().Format(time.RFC3339)
	}
	return json.Marshal(flat{
		GeneratedContent: d.Content,
		meta: meta{
			ID:        d.ID,
			UserID:    d.UserID,
			Platform:  d.Platform,
			CreatedAt: created,
			InputData: d.InputData,
		},
	})
}
