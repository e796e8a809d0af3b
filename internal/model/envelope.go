package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Envelope is the single response shape used by the HTTP API and by remote
// catalog documents. Exactly one of Data or Error is meaningful.
type Envelope[T any] struct {
	Data  T              `json:"data"`
	Error *ErrorResponse `json:"error,omitempty"`
}

// DecodeEnvelope strictly decodes an Envelope from r. Unknown fields, trailing
// data and a missing data member are all reported as ErrMalformedCatalog.
func DecodeEnvelope[T any](r io.Reader) (*Envelope[T], error) {
	var raw struct {
		Data  json.RawMessage `json:"data"`
		Error *ErrorResponse  `json:"error,omitempty"`
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode envelope: %v: %w", err, ErrMalformedCatalog)
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after envelope: %w", ErrMalformedCatalog)
	}

	env := &Envelope[T]{Error: raw.Error}
	if raw.Error != nil {
		return env, nil
	}

	if len(raw.Data) == 0 || bytes.Equal(raw.Data, []byte("null")) {
		return nil, fmt.Errorf("envelope has no data: %w", ErrMalformedCatalog)
	}

	dataDec := json.NewDecoder(bytes.NewReader(raw.Data))
	dataDec.DisallowUnknownFields()
	if err := dataDec.Decode(&env.Data); err != nil {
		return nil, fmt.Errorf("failed to decode envelope data: %v: %w", err, ErrMalformedCatalog)
	}

	return env, nil
}
