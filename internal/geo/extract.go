package geo

import (
	"regexp"
	"strconv"
)

// Coordinate is a (latitude, longitude) pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Map URLs embed the pin position as !3d<lat>!4d<lon>.
var coordPattern = regexp.MustCompile(`!3d([0-9.+-]+)!4d([0-9.+-]+)`)

// ExtractCoordinate returns the first coordinate pair embedded in a map URL.
// A URL without the marker pattern, or with unparsable numbers, returns
// ok=false; that is an expected outcome, not an error.
func ExtractCoordinate(url string) (Coordinate, bool) {
	m := coordPattern.FindStringSubmatch(url)
	if m == nil {
		return Coordinate{}, false
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Coordinate{}, false
	}
	lon, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Coordinate{}, false
	}
	return Coordinate{Lat: lat, Lon: lon}, true
}
