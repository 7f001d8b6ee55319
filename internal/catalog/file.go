package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

var _ Fetcher = FileSource("")

// FileSource reads a catalog Document from a JSON file.
type FileSource string

// Fetch reads and validates the file.
func (f FileSource) Fetch(ctx context.Context) ([]Filter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := ReadFile(string(f))
	if err != nil {
		return nil, err
	}
	return doc.FilterItems, nil
}

// ReadFile loads a catalog document from path, validating it.
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read catalog: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := Validate(doc.FilterItems); err != nil {
		return Document{}, err
	}
	doc.FilterItems = normalize(doc.FilterItems)
	return doc, nil
}
