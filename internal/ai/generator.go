package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// TextGenerator is the outbound model call. Implementations return the raw answer text.
type TextGenerator interface {
	GenerateText(ctx context.Context, req GenerationRequest) (string, error)
	Name() string
}

type GenerationRequest struct {
	Prompt string
	Image  *ImageRef
}

// ImageRef is either inline bytes decoded from a data URI or an external URL.
type ImageRef struct {
	MimeType string
	Data     []byte
	URL      string
}

func (r *ImageRef) Inline() bool {
	return r != nil && len(r.Data) > 0
}

// DataURI re-encodes inline bytes; external references return their URL.
func (r *ImageRef) DataURI() string {
	if r == nil {
		return ""
	}
	if !r.Inline() {
		return r.URL
	}
	return fmt.Sprintf("data:%s;base64,%s", r.MimeType, base64.StdEncoding.EncodeToString(r.Data))
}

var ErrInvalidImage = errors.New("invalid image reference")

// ParseImageRef accepts "data:<mime>;base64,<payload>" or an http(s) URL. Empty input yields nil.
func ParseImageRef(s string) (*ImageRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	low := strings.ToLower(s)
	if strings.HasPrefix(low, "http://") || strings.HasPrefix(low, "https://") {
		return &ImageRef{URL: s, MimeType: mimeFromExt(low)}, nil
	}
	if !strings.HasPrefix(low, "data:") {
		return nil, fmt.Errorf("%w: unsupported scheme", ErrInvalidImage)
	}
	meta, payload, ok := strings.Cut(s[len("data:"):], ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing payload", ErrInvalidImage)
	}
	mimeType, enc, _ := strings.Cut(meta, ";")
	if !strings.EqualFold(enc, "base64") {
		return nil, fmt.Errorf("%w: only base64 data URIs are supported", ErrInvalidImage)
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}
	return &ImageRef{MimeType: strings.ToLower(mimeType), Data: data}, nil
}

func mimeFromExt(u string) string {
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	switch {
	case strings.HasSuffix(u, ".png"):
		return "image/png"
	case strings.HasSuffix(u, ".webp"):
		return "image/webp"
	case strings.HasSuffix(u, ".gif"):
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
