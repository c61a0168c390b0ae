package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_ExactCentroid(t *testing.T) {
	r := NewResolver(nil)

	// The board-bridge centroid itself resolves to its own district.
	district := r.Nearest(Coordinate{Lat: 25.0112, Lon: 121.4637})
	assert.Equal(t, "新北市板橋區", district)
}

func TestResolver_NearbyPoints(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		name     string
		coord    Coordinate
		expected string
	}{
		{name: "near zhonghe", coord: Coordinate{Lat: 24.9985, Lon: 121.4875}, expected: "新北市中和區"},
		{name: "near songshan", coord: Coordinate{Lat: 25.0525, Lon: 121.5555}, expected: "台北市松山區"},
		{name: "near tucheng", coord: Coordinate{Lat: 24.9731, Lon: 121.4442}, expected: "新北市土城區"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Nearest(tt.coord))
		})
	}
}

func TestResolver_TieBreaksToFirstRegistryEntry(t *testing.T) {
	r := NewResolver([]Centroid{
		{District: "first", Lat: 25.0, Lon: 121.5},
		{District: "second", Lat: 25.0, Lon: 121.5},
	})

	// Exact distance tie: registry definition order wins.
	assert.Equal(t, "first", r.Nearest(Coordinate{Lat: 25.1, Lon: 121.6}))
}

func TestResolver_EmptyRegistryUsesDefaults(t *testing.T) {
	r := NewResolver(nil)
	district := r.Nearest(Coordinate{Lat: 25.0620, Lon: 121.5330})
	assert.Equal(t, "台北市中山區", district)
}
