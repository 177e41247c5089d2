// Package docstore is a small hierarchical document store. Documents are
// JSON objects addressed by slash separated paths that alternate
// collection and document ids, e.g. users/{uid}/customRoutines/{id}.
//
// Updates and merge writes are shallow: top level fields of the partial
// document replace the stored ones wholesale, nested arrays and objects
// are never merged element-wise.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrDocumentExists   = errors.New("document already exists")
	ErrInvalidPath      = errors.New("invalid document path")
)

type Store interface {
	Get(ctx context.Context, path string) (*Snapshot, error)
	// Set writes the whole document, or merges its top level fields into
	// the stored one when opts.Merge is set. Missing documents are created.
	Set(ctx context.Context, path string, doc any, opts SetOptions) error
	// Create writes a new document and fails with ErrDocumentExists if
	// there is one under path already.
	Create(ctx context.Context, path string, doc any) error
	// Update merges fields into an existing document.
	Update(ctx context.Context, path string, fields map[string]any) error
	Delete(ctx context.Context, path string) error
	List(ctx context.Context, collectionPath string, orderBy OrderBy) ([]Snapshot, error)
}

type SetOptions struct {
	Merge bool
}

type OrderBy struct {
	Field string
	Desc  bool
}

type Snapshot struct {
	ID   string
	Path string
	Data json.RawMessage
}

// DataTo decodes the document into v.
func (s *Snapshot) DataTo(v any) error {
	if err := json.Unmarshal(s.Data, v); err != nil {
		return fmt.Errorf("decode document %s: %w", s.Path, err)
	}
	return nil
}

// Doc joins path segments into a document or collection path.
func Doc(segments ...string) string {
	return strings.Join(segments, "/")
}

// splitDocPath validates a document path and returns its collection and id.
func splitDocPath(path string) (collection, id string, err error) {
	segments := strings.Split(path, "/")
	if len(segments)%2 != 0 {
		return "", "", fmt.Errorf("%w: [%s] does not point to a document", ErrInvalidPath, path)
	}
	for _, s := range segments {
		if s == "" {
			return "", "", fmt.Errorf("%w: [%s] has an empty segment", ErrInvalidPath, path)
		}
	}
	return strings.Join(segments[:len(segments)-1], "/"), segments[len(segments)-1], nil
}

func validateCollectionPath(path string) error {
	segments := strings.Split(path, "/")
	if len(segments)%2 != 1 {
		return fmt.Errorf("%w: [%s] does not point to a collection", ErrInvalidPath, path)
	}
	for _, s := range segments {
		if s == "" {
			return fmt.Errorf("%w: [%s] has an empty segment", ErrInvalidPath, path)
		}
	}
	return nil
}

// encodeObject marshals doc and makes sure the result is a JSON object.
func encodeObject(doc any) ([]byte, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if len(b) == 0 || b[0] != '{' {
		return nil, fmt.Errorf("encode document: %T is not an object", doc)
	}
	return b, nil
}

// mergeObjects overlays the top level fields of partial onto base.
func mergeObjects(base, partial []byte) ([]byte, error) {
	merged := map[string]json.RawMessage{}
	if len(base) > 0 {
		if err := json.Unmarshal(base, &merged); err != nil {
			return nil, fmt.Errorf("decode stored document: %w", err)
		}
	}
	var overlay map[string]json.RawMessage
	if err := json.Unmarshal(partial, &overlay); err != nil {
		return nil, fmt.Errorf("decode partial document: %w", err)
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return json.Marshal(merged)
}
