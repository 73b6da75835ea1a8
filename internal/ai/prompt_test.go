package ai

import (
	"strings"
	"testing"

	"github.com/shinyyama/omnicopy-backend/internal/model"
)

func sampleInput() model.ProductInput {
	return model.ProductInput{
		Name:     "Câble USB-C",
		Features: "1m, nylon tressé",
		Category: "Tech",
		Price:    "12.99",
		Tone:     model.ToneTechnical,
	}
}

func TestBuildProductPromptDeterministic(t *testing.T) {
	for _, v := range []PromptVersion{PromptV1, PromptV2, PromptV3} {
		a := BuildProductPrompt(v, sampleInput())
		b := BuildProductPrompt(v, sampleInput())
		if a != b {
			t.Fatalf("version %s is not deterministic", v)
		}
	}
}

func TestBuildProductPromptEmbedsInput(t *testing.T) {
	in := sampleInput()
	for _, v := range []PromptVersion{PromptV1, PromptV2, PromptV3} {
		p := BuildProductPrompt(v, in)
		for _, want := range []string{in.Name, in.Features, in.Category, in.Price, "Technique & Précis"} {
			if !strings.Contains(p, want) {
				t.Fatalf("version %s: prompt missing %q", v, want)
			}
		}
		if strings.Contains(p, "photo du produit est jointe") {
			t.Fatalf("version %s mentions an image that is absent", v)
		}
	}
}

func TestBuildProductPromptVersions(t *testing.T) {
	in := sampleInput()
	if p := BuildProductPrompt(PromptV1, in); !strings.Contains(p, `"slug"`) {
		t.Fatal("v1 asks for slug")
	}
	if p := BuildProductPrompt(PromptV2, in); !strings.Contains(p, `"handle"`) {
		t.Fatal("v2 asks for handle")
	}
	p3 := BuildProductPrompt(PromptV3, in)
	for _, want := range []string{`"seoTitle"`, `"vendor"`, `"option1Name"`, "RANK MATH", "max 60 caractères", "Max 160 caractères"} {
		if !strings.Contains(p3, want) {
			t.Fatalf("v3 missing %q", want)
		}
	}
	if got := BuildProductPrompt("v9", in); got != p3 {
		t.Fatal("unknown version must fall back to the default template")
	}
}

func TestBuildProductPromptMentionsImage(t *testing.T) {
	in := sampleInput()
	in.ImageURL = "https://cdn.example.com/cable.png"
	p := BuildProductPrompt(PromptV3, in)
	if !strings.Contains(p, "photo du produit est jointe") {
		t.Fatal("image hint missing")
	}
	if strings.Contains(p, in.ImageURL) {
		t.Fatal("image reference must travel as an attachment, not as prompt text")
	}
}

func TestParsePromptVersion(t *testing.T) {
	tests := map[string]PromptVersion{"v1": PromptV1, " V2 ": PromptV2, "v3": PromptV3, "": DefaultPromptVersion, "latest": DefaultPromptVersion}
	for in, want := range tests {
		if got := ParsePromptVersion(in); got != want {
			t.Fatalf("ParsePromptVersion(%q)=%s want %s", in, got, want)
		}
	}
}
