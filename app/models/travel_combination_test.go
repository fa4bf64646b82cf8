package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleNames(t *testing.T) {
	combo := &TravelCombination{
		TravelStyles: []TravelStyle{
			{ID: 1, Name: "Cultural"},
			{ID: 2, Name: "Adventure"},
		},
	}

	assert.Equal(t, []string{"Cultural", "Adventure"}, combo.StyleNames())
	assert.Empty(t, (&TravelCombination{}).StyleNames())
}

func TestItineraryMapScanRoundTrip(t *testing.T) {
	accommodation := "Hotel in Kandy"
	itinerary := ItineraryMap{
		"day1": {
			Locations:     []string{"temple-of-tooth"},
			Description:   "Temple visit",
			Meals:         "Breakfast",
			Accommodation: &accommodation,
			Transport:     "Private car",
		},
	}

	value, err := itinerary.Value()
	require.NoError(t, err)

	var decoded ItineraryMap
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, itinerary, decoded)
}

func TestEstimatedCostScanRoundTrip(t *testing.T) {
	guide := 15000
	cost := EstimatedCost{
		EntranceFees: 2000,
		Meals:        18000,
		Transport:    35000,
		Guide:        &guide,
		Total:        70000,
	}

	value, err := cost.Value()
	require.NoError(t, err)

	var decoded EstimatedCost
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, cost, decoded)

	// Optional cost lines stay absent instead of becoming zeroes.
	assert.Nil(t, decoded.Accommodation)
}
