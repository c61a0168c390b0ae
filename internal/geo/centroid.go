package geo

// Centroid is a representative anchor point for a district.
type Centroid struct {
	District string  `yaml:"district"`
	Lat      float64 `yaml:"lat"`
	Lon      float64 `yaml:"lon"`
}

// DefaultCentroids are approximate but stable anchors for the target districts.
// Registry order is the tie-break order for equidistant points.
var DefaultCentroids = []Centroid{
	{District: "新北市板橋區", Lat: 25.0112, Lon: 121.4637},
	{District: "新北市中和區", Lat: 24.9990, Lon: 121.4870},
	{District: "新北市永和區", Lat: 25.0090, Lon: 121.5150},
	{District: "新北市土城區", Lat: 24.9730, Lon: 121.4440},
	{District: "新北市新莊區", Lat: 25.0370, Lon: 121.4510},
	{District: "台北市松山區", Lat: 25.0520, Lon: 121.5560},
	{District: "台北市中山區", Lat: 25.0620, Lon: 121.5330},
	{District: "台北市文山區", Lat: 24.9950, Lon: 121.5540},
}

// Resolver assigns coordinates to the nearest district centroid.
type Resolver struct {
	centroids []Centroid
}

// NewResolver creates a Resolver over the given centroid registry. An empty
// registry falls back to DefaultCentroids.
func NewResolver(centroids []Centroid) *Resolver {
	if len(centroids) == 0 {
		centroids = DefaultCentroids
	}
	return &Resolver{centroids: centroids}
}

// Nearest returns the district of the minimum-distance centroid. Exact
// distance ties resolve to the centroid appearing first in registry order.
func (r *Resolver) Nearest(c Coordinate) string {
	var nearest string
	minDist := -1.0
	for _, cen := range r.centroids {
		dist := Haversine(c.Lat, c.Lon, cen.Lat, cen.Lon)
		if minDist < 0 || dist < minDist {
			minDist = dist
			nearest = cen.District
		}
	}
	return nearest
}
