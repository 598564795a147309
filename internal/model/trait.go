package model

// Trait is one exported asset with its derived metadata and encoded content.
type Trait struct {
	Name     string  `json:"name"`
	Filename string  `json:"filename"`
	MimeType string  `json:"mimeType"`
	Data     string  `json:"data"`
	Rarity   float64 `json:"rarity"`
	Order    uint32  `json:"order"`
}

// TraitMap maps a category name to its traits in traversal order.
//
// encoding/json writes map keys in sorted byte order, so the exported
// document is deterministic without a separate ordered container.
type TraitMap map[string][]Trait

// Append adds traits to a category, creating the entry on first use.
// Nothing is created for an empty slice.
func (t TraitMap) Append(category string, traits ...Trait) {
	if len(traits) == 0 {
		return
	}

	t[category] = append(t[category], traits...)
}

// Len returns the total number of traits across all categories.
func (t TraitMap) Len() int {
	total := 0
	for _, traits := range t {
		total += len(traits)
	}

	return total
}

// CategorySummary holds display statistics for one category.
type CategorySummary struct {
	Name   string
	Order  uint32
	Traits int
	Bytes  int64
}
