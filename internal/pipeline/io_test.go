package pipeline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petalworks/florist-cli/internal/model"
)

func TestReadRecords(t *testing.T) {
	csvData := `name,address,url,rating,review_count,phone,image_url
板橋花坊,文化路一段1號,https://example.com/!3d25.0112!4d121.4637,4.8,120,02-1234-5678,https://img.example.com/1.jpg
小花店,某某路1號,,,,,
`
	records, err := ReadRecords(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "板橋花坊", records[0].Name)
	assert.Equal(t, "文化路一段1號", records[0].Address)
	assert.Equal(t, "120", records[0].ReviewCount)
	assert.Empty(t, records[1].Rating)
}

func TestReadRecords_ColumnOrderIndependent(t *testing.T) {
	csvData := `address,name,url,rating,review_count,phone,image_url
文化路一段1號,板橋花坊,,,,,
`
	records, err := ReadRecords(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "板橋花坊", records[0].Name)
	assert.Equal(t, "文化路一段1號", records[0].Address)
}

func TestWriteTagged_HeaderAndOrder(t *testing.T) {
	tagged := []model.TaggedRecord{
		{Name: "b店", Address: "addr-b", District: "新北市板橋區"},
		{Name: "a店", Address: "addr-a", District: "待確認"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTagged(&buf, tagged))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,address,url,rating,rating_count,phone,image,district", lines[0])
	assert.Contains(t, lines[1], "b店")
	assert.Contains(t, lines[2], "a店")
}

func TestWriteTagged_RoundTrip(t *testing.T) {
	tagged := []model.TaggedRecord{
		{Name: "板橋花坊", Address: "文化路一段1號", URL: "https://example.com", Rating: "4.8", RatingCount: "120", District: "新北市板橋區"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTagged(&buf, tagged))

	got, err := ReadTagged(&buf)
	require.NoError(t, err)
	assert.Equal(t, tagged, got)
}

func TestWriteCounts_LiteralUTF8PrettyPrinted(t *testing.T) {
	counts := model.DistrictCounts{
		"新北市板橋區": 12,
		"待確認":    3,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCounts(&buf, counts))

	out := buf.String()
	assert.Contains(t, out, "\"新北市板橋區\": 12")
	assert.Contains(t, out, "\"待確認\": 3")
	assert.NotContains(t, out, `\u`)
	assert.Contains(t, out, "\n  ")
}
