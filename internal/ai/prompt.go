package ai

import (
	"fmt"
	"strings"

	"github.com/shinyyama/omnicopy-backend/internal/model"
)

type PromptVersion string

const (
	PromptV1 PromptVersion = "v1"
	PromptV2 PromptVersion = "v2"
	PromptV3 PromptVersion = "v3"

	DefaultPromptVersion = PromptV3
)

// ParsePromptVersion falls back to the default version for unknown values.
func ParsePromptVersion(s string) PromptVersion {
	v := PromptVersion(strings.TrimSpace(strings.ToLower(s)))
	if _, ok := promptBodies[v]; ok {
		return v
	}
	return DefaultPromptVersion
}

const expertIntro = `Tu es un expert SEO E-Commerce et Rédacteur Web de haut niveau (spécialisé WooCommerce et Shopify).

TÂCHE : Générer une fiche produit optimisée pour le référencement naturel (SEO) et la conversion.`

const seoRules = `INSTRUCTIONS SEO STRICTES :
1. **Title (Titre H1)** : Doit être accrocheur, contenir le mot-clé principal, faire max 60 caractères.
2. **Slug (URL)** : Génère un slug court, en minuscules, avec des tirets, basé sur le titre généré. Pas d'accents ni de caractères spéciaux. Ex: "montre-sport-pro".
3. **Description (HTML)** :
   - Structure en HTML5 (<h2>, <ul>, <li>, <p>, <strong>). Aucune autre balise.
   - Le mot-clé principal (le nom du produit) doit apparaître dans les **100 premiers mots** du premier paragraphe.
   - Au moins 300 mots.
   - Utilise au moins un titre <h2> pour structurer (ex: "Pourquoi choisir ce %s ?", "Caractéristiques techniques").
   - Mets les points clés en liste à puces (<ul><li>) pour la lisibilité.
   - Adopte le ton demandé : %s.
4. **Short Description** : Résumé percutant de 2 phrases maximum pour l'affichage liste.
5. **Meta Description** : Max 160 caractères. Doit inclure le mot-clé principal et un verbe d'action (ex: "Achetez", "Découvrez").
6. **Tags** : Génère 5 tags pertinents pour le référencement interne.`

const rankMathRules = `CHECKLIST RANK MATH (indicatif) :
- Densité du mot-clé principal proche de 1% dans la description.
- Le mot-clé principal apparaît dans le SEO Title, la Meta Description et un sous-titre <h2>.
- Prévois un lien interne sous la forme <a href="{{internal_link}}">...</a> et un lien externe sous la forme <a href="{{external_link}}" rel="nofollow">...</a>.
- Si une image est fournie, décris-la dans un attribut alt contenant le mot-clé.
- SEO Title : max 60 caractères, commence par le mot-clé principal.`

const v1Output = `FORMAT DE SORTIE ATTENDU (JSON STRICT, sans markdown) :
{
  "title": "Titre optimisé",
  "slug": "slug-du-produit",
  "description": "<p>Paragraphe d'introduction avec mot clé...</p><h2>Sous-titre H2</h2><ul><li>Point 1</li></ul>",
  "shortDescription": "Résumé court...",
  "metaDescription": "Description pour Google avec CTA...",
  "tags": ["tag1", "tag2", "tag3"]
}`

const v2Output = `Générez le contenu marketing en français, au format JSON strict (pas de markdown) avec cette structure:
{
  "title": "Titre optimisé SEO (max 60 caractères)",
  "description": "Description HTML complète (<p>, <ul>, <strong>)",
  "shortDescription": "Résumé concis (2 phrases)",
  "metaDescription": "Méta-description SEO (max 160 caractères)",
  "tags": ["tag1", "tag2", "tag3"],
  "handle": "slug-produit-pour-url"
}`

const v3Output = `FORMAT DE SORTIE ATTENDU (JSON STRICT, sans markdown, aucune autre clé) :
{
  "title": "Titre optimisé",
  "handle": "slug-du-produit",
  "description": "<p>Paragraphe d'introduction avec mot clé...</p><h2>Sous-titre H2</h2><ul><li>Point 1</li></ul>",
  "shortDescription": "Résumé court...",
  "metaDescription": "Description pour Google avec CTA...",
  "seoTitle": "Mot-clé principal - accroche (max 60 caractères)",
  "vendor": "Marque si elle est connue, sinon chaîne vide",
  "option1Name": "Nom de la variante principale si pertinente (ex: Couleur), sinon chaîne vide",
  "option1Value": "Valeur de cette variante, sinon chaîne vide",
  "tags": ["tag1", "tag2", "tag3", "tag4", "tag5"]
}`

type promptBody func(in model.ProductInput) []string

var promptBodies = map[PromptVersion]promptBody{
	PromptV1: func(in model.ProductInput) []string {
		return []string{expertIntro, inputBlock(in), fmt.Sprintf(seoRules, in.Category, in.Tone.Label()), v1Output}
	},
	PromptV2: func(in model.ProductInput) []string {
		return []string{
			fmt.Sprintf("Agissez en tant qu'expert rédacteur e-commerce avec le ton %s.", in.Tone.Label()),
			inputBlock(in),
			v2Output,
		}
	},
	PromptV3: func(in model.ProductInput) []string {
		return []string{expertIntro, inputBlock(in), fmt.Sprintf(seoRules, in.Category, in.Tone.Label()), rankMathRules, v3Output}
	},
}

func inputBlock(in model.ProductInput) string {
	var b strings.Builder
	b.WriteString("DONNÉES D'ENTRÉE :\n")
	fmt.Fprintf(&b, "- Nom du produit : \"%s\"\n", in.Name)
	fmt.Fprintf(&b, "- Caractéristiques : %s\n", in.Features)
	fmt.Fprintf(&b, "- Catégorie : %s\n", in.Category)
	fmt.Fprintf(&b, "- Prix : %s\n", in.Price)
	fmt.Fprintf(&b, "- Ton/Rédaction : %s", in.Tone.Label())
	if in.ImageURL != "" {
		b.WriteString("\n- Image : une photo du produit est jointe, appuie-toi dessus pour la description.")
	}
	return b.String()
}

// BuildProductPrompt renders the instruction set of the given template version.
// The same input and version always produce the same text.
func BuildProductPrompt(version PromptVersion, in model.ProductInput) string {
	body, ok := promptBodies[version]
	if !ok {
		body = promptBodies[DefaultPromptVersion]
	}
	return strings.Join(body(in), "\n\n")
}
