// Package model defines the directory records flowing through the tagging pipeline.
package model

// Record is one cleaned directory row as produced by the clean step. All fields
// are optionally-empty UTF-8 strings; a Record is never mutated after it is read.
type Record struct {
	Name        string `csv:"name" json:"name"`
	Address     string `csv:"address" json:"address"`
	URL         string `csv:"url" json:"url"`
	Rating      string `csv:"rating" json:"rating"`
	ReviewCount string `csv:"review_count" json:"review_count"`
	Phone       string `csv:"phone" json:"phone"`
	ImageURL    string `csv:"image_url" json:"image_url"`
}

// TaggedRecord is a Record plus its inferred district label. Field order defines
// the output CSV column order.
type TaggedRecord struct {
	Name        string `csv:"name" json:"name"`
	Address     string `csv:"address" json:"address"`
	URL         string `csv:"url" json:"url"`
	Rating      string `csv:"rating" json:"rating"`
	RatingCount string `csv:"rating_count" json:"rating_count"`
	Phone       string `csv:"phone" json:"phone"`
	Image       string `csv:"image" json:"image"`
	District    string `csv:"district" json:"district"`
}

// Tagged returns the record with the given district label attached.
func (r Record) Tagged(district string) TaggedRecord {
	return TaggedRecord{
		Name:        r.Name,
		Address:     r.Address,
		URL:         r.URL,
		Rating:      r.Rating,
		RatingCount: r.ReviewCount,
		Phone:       r.Phone,
		Image:       r.ImageURL,
		District:    district,
	}
}

// DistrictCounts maps a district label to its occurrence count.
type DistrictCounts map[string]int

// DistrictCount is one entry of the ordered count summary.
type DistrictCount struct {
	District string `json:"district"`
	Count    int    `json:"count"`
}
