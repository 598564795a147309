package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraitMap_Append(t *testing.T) {
	traits := TraitMap{}

	traits.Append("hats")
	_, ok := traits["hats"]
	assert.False(t, ok, "empty append must not create a category")

	traits.Append("hats", Trait{Name: "Cap"})
	traits.Append("hats", Trait{Name: "Beret"}, Trait{Name: "Fez"})

	require.Len(t, traits["hats"], 3)
	assert.Equal(t, "Cap", traits["hats"][0].Name)
	assert.Equal(t, "Fez", traits["hats"][2].Name)
	assert.Equal(t, 3, traits.Len())
}

func TestParseImageFormat(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    ImageFormat
		wantErr bool
	}{
		{"raw", "raw", FormatRaw, false},
		{"base64", "base64", FormatBase64, false},
		{"upper case", "BASE64", FormatBase64, false},
		{"padded", " raw ", FormatRaw, false},
		{"empty", "", "", true},
		{"unknown", "png", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseImageFormat(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
