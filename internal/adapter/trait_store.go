package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	m "traitpack.dev/pkg/traitpack/internal/model"
)

// TraitStore persists and loads exported trait documents.
type TraitStore interface {
	SaveTraits(ctx context.Context, path m.Path, traits m.TraitMap) error
	LoadTraits(ctx context.Context, path m.Path) (m.TraitMap, error)
}

const outputFilePerm = 0o644

// JSONTraitStore writes trait documents as pretty-printed JSON.
type JSONTraitStore struct {
	fs TraitFSAdapter
}

// NewJSONTraitStore creates a store that reads and writes through fsAdapter.
func NewJSONTraitStore(fsAdapter TraitFSAdapter) *JSONTraitStore {
	return &JSONTraitStore{fs: fsAdapter}
}

// SaveTraits encodes traits and replaces the file at path.
func (s *JSONTraitStore) SaveTraits(ctx context.Context, path m.Path, traits m.TraitMap) error {
	content, err := EncodeTraits(traits)
	if err != nil {
		return err
	}

	if err := s.fs.WriteFile(ctx, path, content, outputFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// LoadTraits reads a document previously written by SaveTraits.
func (s *JSONTraitStore) LoadTraits(ctx context.Context, path m.Path) (m.TraitMap, error) {
	content, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	traits := m.TraitMap{}
	if err := json.Unmarshal(content, &traits); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return traits, nil
}

// EncodeTraits renders traits with two-space indentation. HTML escaping is
// disabled so raw SVG markup is kept verbatim.
func EncodeTraits(traits m.TraitMap) ([]byte, error) {
	if traits == nil {
		traits = m.TraitMap{}
	}

	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(traits); err != nil {
		return nil, fmt.Errorf("encode traits: %w", err)
	}

	return buf.Bytes(), nil
}
