package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var schemaJSON []byte

// Validate checks raw resume JSON against resume.schema.json. Malformed
// input is rejected here, at the mutation boundary; the renderer itself
// never validates.
func Validate(doc []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(doc)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}

// ParseResume validates and decodes raw JSON into a ResumeData.
func ParseResume(doc []byte) (*ResumeData, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}
	var r ResumeData
	if err := json.Unmarshal(doc, &r); err != nil {
		return nil, fmt.Errorf("decode resume: %w", err)
	}
	return &r, nil
}
