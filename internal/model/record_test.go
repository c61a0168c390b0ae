package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Tagged(t *testing.T) {
	rec := Record{
		Name:        "板橋花坊",
		Address:     "文化路一段1號",
		URL:         "https://example.com",
		Rating:      "4.8",
		ReviewCount: "120",
		Phone:       "02-1234-5678",
		ImageURL:    "https://img.example.com/1.jpg",
	}

	tr := rec.Tagged("新北市板橋區")

	assert.Equal(t, TaggedRecord{
		Name:        "板橋花坊",
		Address:     "文化路一段1號",
		URL:         "https://example.com",
		Rating:      "4.8",
		RatingCount: "120",
		Phone:       "02-1234-5678",
		Image:       "https://img.example.com/1.jpg",
		District:    "新北市板橋區",
	}, tr)
}
