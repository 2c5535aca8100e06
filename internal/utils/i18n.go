package utils

// Minimal i18n for labels the core hands to the front end.
// Question and category text is product content and is not translated here.

var translations = map[string]map[string]string{
	"pt": {
		"health.ok":           "ok",
		"answer.not":          "Não",
		"answer.sometimes":    "Ocasionalmente",
		"answer.often":        "Frequentemente",
		"severity.low":        "Baixo",
		"severity.moderate":   "Moderado",
		"severity.high":       "Alto",
		"identify.not_found":  "Nenhum cadastro encontrado para este e-mail.",
		"identify.incomplete": "Preencha nome, e-mail, data de nascimento e gênero.",
		"pain.invalid_level":  "A intensidade da dor deve estar entre 0 e 10.",
	},
	"en": {
		"health.ok":           "ok",
		"answer.not":          "No",
		"answer.sometimes":    "Sometimes",
		"answer.often":        "Often",
		"severity.low":        "Low",
		"severity.moderate":   "Moderate",
		"severity.high":       "High",
		"identify.not_found":  "No record found for this e-mail.",
		"identify.incomplete": "Name, e-mail, birth date and gender are required.",
		"pain.invalid_level":  "Pain level must be between 0 and 10.",
	},
}

// DefaultLocale is the product's source language.
const DefaultLocale = "pt"

// SupportedLocales lists locales with a translation table, default first.
var SupportedLocales = []string{"pt", "en"}

// T returns the translated string for key in locale; falls back to Portuguese.
func T(locale, key string) string {
	if m, ok := translations[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := translations[DefaultLocale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}
