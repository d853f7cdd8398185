package server_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.openly.dev/pointy"

	"pouringat.com/PouringAt/pkg/server"
	"pouringat.com/PouringAt/pkg/server/api"
)

func TestIsReservedSlug(t *testing.T) {
	assert.True(t, server.IsReservedSlug("admin"))
	assert.True(t, server.IsReservedSlug("Sign-In"))
	assert.False(t, server.IsReservedSlug("admin-arms"))
	assert.False(t, server.IsReservedSlug("free-trade"))
}

func TestValidator_Postcodes(t *testing.T) {
	validate := server.NewValidator()

	for _, postcode := range []string{"NE6 1AP", "ne61ap", "SW1A 1AA", "M1 1AE", "B33 8TH", "CR2 6XH", "DN55 1PT"} {
		assert.NoError(t, validate.Var(postcode, "postcode"), postcode)
	}

	for _, postcode := range []string{"", "12345", "NE6", "NE6 1A", "N3 1AAA", "6NE 1AP"} {
		assert.Error(t, validate.Var(postcode, "postcode"), postcode)
	}
}

func TestValidator_Slugs(t *testing.T) {
	validate := server.NewValidator()

	assert.NoError(t, validate.Var("free-trade-2", "slug"))
	assert.Error(t, validate.Var("free trade", "slug"))
	assert.Error(t, validate.Var("free_trade", "slug"))
	assert.Error(t, validate.Var("café", "slug"))
}

func TestValidator_Colours(t *testing.T) {
	validate := server.NewValidator()

	assert.NoError(t, validate.Struct(api.Colours{Foreground: pointy.String("#A1b2C3")}))
	assert.NoError(t, validate.Struct(api.Colours{}))
	assert.Error(t, validate.Struct(api.Colours{Accent: pointy.String("#abc")}))
	assert.Error(t, validate.Struct(api.Colours{Background: pointy.String("ffffff")}))
}

func TestValidator_OneDecimalPlace(t *testing.T) {
	validate := server.NewValidator()

	for _, abv := range []float64{0, 4, 4.5, 12.3, 100} {
		assert.NoError(t, validate.Var(abv, "onedecimal"), abv)
	}

	for _, abv := range []float64{4.55, 0.01, 12.345} {
		assert.Error(t, validate.Var(abv, "onedecimal"), abv)
	}
}
