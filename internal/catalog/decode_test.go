package catalog

import (
	"bytes"
	"compress/gzip"
	"strings"
	"testing"

	"glucoguide/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, content []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecodeDocument_MissingNutrition(t *testing.T) {
	tests := []struct {
		name     string
		food     string
		errorMsg string
	}{
		{
			name:     "No nutrition at all",
			food:     `{"id":"1","name":"Manzana","category":"fruits"}`,
			errorMsg: "glycemicIndex is required",
		},
		{
			name:     "Glycemic index omitted",
			food:     `{"id":"1","name":"Manzana","category":"fruits","carbohydrates":14,"fiber":2.4,"sugars":10}`,
			errorMsg: "glycemicIndex is required",
		},
		{
			name:     "Sugars omitted",
			food:     `{"id":"1","name":"Manzana","category":"fruits","glycemicIndex":36,"carbohydrates":14,"fiber":2.4}`,
			errorMsg: "sugars is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `{"data":{"foods":[` + tt.food + `],"education":[]}}`

			catalog, err := decodeDocument(strings.NewReader(doc))

			require.Error(t, err)
			assert.Nil(t, catalog)
			assert.ErrorIs(t, err, model.ErrMalformedCatalog)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestDecodeDocument_ExplicitZerosAccepted(t *testing.T) {
	doc := `{"data":{"foods":[{"id":"16","name":"Stevia","category":"sweeteners","glycemicIndex":0,"carbohydrates":0,"fiber":0,"sugars":0,"portion":"1 g","commonNames":["stevia"]}],"education":[]}}`

	catalog, err := decodeDocument(strings.NewReader(doc))

	require.NoError(t, err)
	require.Len(t, catalog.Foods, 1)
	assert.Equal(t, model.Nutrition{}, catalog.Foods[0].Nutrition)
	assert.Equal(t, []string{"stevia"}, catalog.Foods[0].CommonNames)
}

func TestDecodeLimited(t *testing.T) {
	const limit = 4096

	valid := encodeEnvelope(t, testCatalog())
	require.Less(t, len(valid), limit)

	// JSON allows leading whitespace, so padding keeps the document valid.
	padded := func(size int) []byte {
		return append(bytes.Repeat([]byte(" "), size-len(valid)), valid...)
	}

	// A megabyte of spaces compresses to about a kilobyte.
	bomb := gzipBytes(t, padded(1<<20))
	require.Less(t, len(bomb), limit)

	tests := []struct {
		name      string
		content   []byte
		expectErr bool
	}{
		{name: "Plain at the limit", content: padded(limit)},
		{name: "Gzip inflating to the limit", content: gzipBytes(t, padded(limit))},
		{name: "Plain over the limit", content: padded(limit + 1), expectErr: true},
		{name: "Gzip inflating past the limit", content: bomb, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := decodeLimited(bytes.NewReader(tt.content), limit)

			if tt.expectErr {
				require.Error(t, err)
				assert.Nil(t, catalog)
				assert.ErrorIs(t, err, errDocumentTooLarge)
				assert.ErrorIs(t, err, model.ErrMalformedCatalog)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCatalog(), catalog)
		})
	}
}
