package catalog

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"

	"glucoguide/internal/model"
)

// maxDocumentSize bounds how much of a catalog document is read, before and
// after decompression.
const maxDocumentSize = 64 << 20

var gzipMagic = []byte{0x1f, 0x8b}

// errDocumentTooLarge is reported when a document reaches maxDocumentSize.
var errDocumentTooLarge = fmt.Errorf("catalog document is too large: %w", model.ErrMalformedCatalog)

// document is the wire form of a catalog. Food nutrition values are pointers
// so that a missing field is rejected instead of read as zero.
type document struct {
	Foods     []foodDocument           `json:"foods"`
	Education []model.EducationContent `json:"education"`
}

type foodDocument struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category model.Category `json:"category"`
	model.NutritionInput
	Portion      string       `json:"portion"`
	TrafficLight model.Rating `json:"trafficLight,omitempty"`
	CommonNames  []string     `json:"commonNames"`
}

// catalog converts d, requiring every food to carry all nutrition fields.
func (d document) catalog() (*model.Catalog, error) {
	c := &model.Catalog{
		Foods:     make([]model.FoodItem, 0, len(d.Foods)),
		Education: d.Education,
	}
	for i, f := range d.Foods {
		n, err := f.Resolve()
		if err != nil {
			return nil, fmt.Errorf("food #%d (%q): %v: %w", i, f.ID, err, model.ErrMalformedCatalog)
		}
		c.Foods = append(c.Foods, model.FoodItem{
			ID:           f.ID,
			Name:         f.Name,
			Category:     f.Category,
			Nutrition:    n,
			Portion:      f.Portion,
			TrafficLight: f.TrafficLight,
			CommonNames:  f.CommonNames,
		})
	}
	return c, nil
}

// limitedReader fails with errDocumentTooLarge as soon as more than limit
// bytes come out of r, so truncation is never mistaken for a short document.
type limitedReader struct {
	r         io.Reader
	remaining int64 // limit + 1
	exceeded  bool
}

func newLimitedReader(r io.Reader, limit int64) *limitedReader {
	return &limitedReader{r: r, remaining: limit + 1}
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.exceeded {
		return 0, errDocumentTooLarge
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining <= 0 {
		l.exceeded = true
		return n, errDocumentTooLarge
	}
	return n, err
}

// decodeDocument reads a catalog envelope from r, transparently
// decompressing gzip input, and validates the result.
func decodeDocument(r io.Reader) (*model.Catalog, error) {
	return decodeLimited(r, maxDocumentSize)
}

func decodeLimited(r io.Reader, limit int64) (*model.Catalog, error) {
	raw := newLimitedReader(r, limit)
	inflated := raw
	br := bufio.NewReader(raw)

	var src io.Reader = br
	if head, err := br.Peek(len(gzipMagic)); err == nil && head[0] == gzipMagic[0] && head[1] == gzipMagic[1] {
		gzipReader, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		inflated = newLimitedReader(gzipReader, limit)
		src = inflated
	}

	env, err := model.DecodeEnvelope[document](src)
	if raw.exceeded || inflated.exceeded {
		return nil, errDocumentTooLarge
	}
	if err != nil {
		return nil, err
	}
	if env.Error != nil {
		return nil, fmt.Errorf("catalog source reported %s: %s", env.Error.Error, env.Error.Message)
	}

	catalog, err := env.Data.catalog()
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	return catalog, nil
}
