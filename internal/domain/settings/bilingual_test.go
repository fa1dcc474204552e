package settings

import (
	"testing"

	"panaderia/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyFor(t *testing.T) {
	assert.Equal(t, FillFixedPhrase, PolicyFor("directionsTextEs"))
	assert.Equal(t, FillPlaceholder, PolicyFor("heroBadgeEs"))
	assert.Equal(t, FillPlaceholder, PolicyFor("hoursSundayEs"))
	// English halves and unpaired fields are manual.
	assert.Equal(t, FillManualOnly, PolicyFor("heroBadgeEn"))
	assert.Equal(t, FillManualOnly, PolicyFor("heroTitle"))
	assert.Equal(t, FillManualOnly, PolicyFor("phone"))
}

func TestFillEn(t *testing.T) {
	assert.Equal(t, "[EN: Bienvenidos]", FillEn("heroBadgeEs", "Bienvenidos"))
	// Exact fixed-phrase match substitutes the real translation.
	assert.Equal(t, "DIRECTIONS", FillEn("directionsTextEs", "CÓMO LLEGAR"))
	// Anything else on the same field falls back to the placeholder.
	assert.Equal(t, "[EN: Cómo llegar]", FillEn("directionsTextEs", "Cómo llegar"))
}

func TestSetText_PairedField(t *testing.T) {
	doc := entity.SiteSettings{HeroBadgeEn: "Handmade"}

	out, err := SetText(doc, "heroBadgeEs", "Hecho a mano")
	require.NoError(t, err)
	assert.Equal(t, "Hecho a mano", out.HeroBadgeEs)
	// Writing Spanish overwrites English, even a manual translation.
	assert.Equal(t, "[EN: Hecho a mano]", out.HeroBadgeEn)
	assert.Equal(t, "Handmade", doc.HeroBadgeEn)
}

func TestSetText_EnglishHalfIsVerbatim(t *testing.T) {
	out, err := SetText(entity.SiteSettings{}, "heroBadgeEn", "Handmade")
	require.NoError(t, err)
	assert.Equal(t, "Handmade", out.HeroBadgeEn)
	assert.Empty(t, out.HeroBadgeEs)
}

func TestSetText_FixedPhrase(t *testing.T) {
	out, err := SetText(entity.SiteSettings{}, "directionsTextEs", "CÓMO LLEGAR")
	require.NoError(t, err)
	assert.Equal(t, "CÓMO LLEGAR", out.DirectionsTextEs)
	assert.Equal(t, "DIRECTIONS", out.DirectionsTextEn)
}

func TestSetText_UnpairedField(t *testing.T) {
	out, err := SetText(entity.SiteSettings{}, "heroTitle", "Panaderia La Francesa")
	require.NoError(t, err)
	assert.Equal(t, "Panaderia La Francesa", out.HeroTitle)
}

func TestSetText_UnknownField(t *testing.T) {
	_, err := SetText(entity.SiteSettings{}, "noSuchField", "x")
	require.Error(t, err)
}

func TestPairedFields_AllResolvable(t *testing.T) {
	// Every pair must address real document fields, both halves.
	var doc entity.SiteSettings
	for es, en := range pairedFields {
		assert.NotNil(t, textFieldRef(&doc, es), "es field %s", es)
		assert.NotNil(t, textFieldRef(&doc, en), "en field %s", en)
	}
}
