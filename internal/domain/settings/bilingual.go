package settings

import (
	"panaderia/internal/domain/entity"

	"github.com/pkg/errors"
)

// FillPolicy decides how the English half of a bilingual pair is derived
// when the editor writes the Spanish half.
type FillPolicy string

const (
	// FillPlaceholder wraps the Spanish value: "[EN: <es>]". It is a visual
	// reminder that no real translation was entered, not a translation.
	FillPlaceholder FillPolicy = "placeholder"
	// FillFixedPhrase substitutes a hardcoded English phrase when the
	// Spanish value matches exactly, falling back to the placeholder.
	FillFixedPhrase FillPolicy = "fixed-phrase"
	// FillManualOnly never derives anything; the field is written verbatim.
	FillManualOnly FillPolicy = "manual-only"
)

// pairedFields maps the Spanish half of every document-level bilingual pair
// to its English half.
var pairedFields = map[string]string{
	"heroBadgeEs":          "heroBadgeEn",
	"heroDescEs":           "heroDescEn",
	"aboutDescEs":          "aboutDescEn",
	"footerDescEs":         "footerDescEn",
	"hoursWeekdaysEs":      "hoursWeekdaysEn",
	"hoursSaturdayEs":      "hoursSaturdayEn",
	"hoursSundayEs":        "hoursSundayEn",
	"directionsTextEs":     "directionsTextEn",
	"orderButtonEs":        "orderButtonEn",
	"specialEventsTitleEs": "specialEventsTitleEn",
	"specialEventsDescEs":  "specialEventsDescEn",
}

// fixedPhrases holds the exact-match phrase substitutions that replace the
// placeholder convention for specific fields.
var fixedPhrases = map[string]map[string]string{
	"directionsTextEs": {
		"CÓMO LLEGAR": "DIRECTIONS",
	},
}

// Placeholder returns the "[EN: ...]" auto-fill for a Spanish value.
func Placeholder(es string) string {
	return "[EN: " + es + "]"
}

// PolicyFor reports how writes to the given document field propagate to its
// English counterpart.
func PolicyFor(field string) FillPolicy {
	if _, ok := fixedPhrases[field]; ok {
		return FillFixedPhrase
	}
	if _, ok := pairedFields[field]; ok {
		return FillPlaceholder
	}

	return FillManualOnly
}

// FillEn derives the English value for the Spanish half of a pair.
func FillEn(field, es string) string {
	if phrases, ok := fixedPhrases[field]; ok {
		if en, ok := phrases[es]; ok {
			return en
		}
	}

	return Placeholder(es)
}

// SetText overwrites one document-level text field, addressed by its JSON
// name, and returns the updated document. Writing the Spanish half of a
// bilingual pair also overwrites the English half per the field's policy;
// every other field is written verbatim.
func SetText(doc entity.SiteSettings, field, value string) (entity.SiteSettings, error) {
	out := doc
	target := textFieldRef(&out, field)
	if target == nil {
		return doc, errors.Errorf("unknown settings field %q", field)
	}
	*target = value

	if enField, ok := pairedFields[field]; ok {
		*textFieldRef(&out, enField) = FillEn(field, value)
	}

	return out, nil
}

// textFieldRef resolves a JSON field name to the matching struct field.
// Returns nil for unknown names and for non-text fields.
func textFieldRef(doc *entity.SiteSettings, field string) *string {
	switch field {
	case "heroBadgeEs":
		return &doc.HeroBadgeEs
	case "heroBadgeEn":
		return &doc.HeroBadgeEn
	case "heroTitle":
		return &doc.HeroTitle
	case "heroDescEs":
		return &doc.HeroDescEs
	case "heroDescEn":
		return &doc.HeroDescEn
	case "aboutDescEs":
		return &doc.AboutDescEs
	case "aboutDescEn":
		return &doc.AboutDescEn
	case "footerDescEs":
		return &doc.FooterDescEs
	case "footerDescEn":
		return &doc.FooterDescEn
	case "hoursWeekdaysEs":
		return &doc.HoursWeekdaysEs
	case "hoursWeekdaysEn":
		return &doc.HoursWeekdaysEn
	case "hoursSaturdayEs":
		return &doc.HoursSaturdayEs
	case "hoursSaturdayEn":
		return &doc.HoursSaturdayEn
	case "hoursSundayEs":
		return &doc.HoursSundayEs
	case "hoursSundayEn":
		return &doc.HoursSundayEn
	case "address":
		return &doc.Address
	case "phone":
		return &doc.Phone
	case "directionsTextEs":
		return &doc.DirectionsTextEs
	case "directionsTextEn":
		return &doc.DirectionsTextEn
	case "orderButtonEs":
		return &doc.OrderButtonEs
	case "orderButtonEn":
		return &doc.OrderButtonEn
	case "avgPrice":
		return &doc.AvgPrice
	case "specialEventsTitleEs":
		return &doc.SpecialEventsTitleEs
	case "specialEventsTitleEn":
		return &doc.SpecialEventsTitleEn
	case "specialEventsDescEs":
		return &doc.SpecialEventsDescEs
	case "specialEventsDescEn":
		return &doc.SpecialEventsDescEn
	case "specialEventsImage":
		return &doc.SpecialEventsImage
	case "promoMessage":
		return &doc.PromoMessage
	case "promoDiscount":
		return &doc.PromoDiscount
	default:
		return nil
	}
}
