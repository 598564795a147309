package domain

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultRarity is used when a file stem carries no numeric suffix.
const DefaultRarity = 1.0

// DefaultCategoryOrder is used when a category folder has no numeric prefix.
const DefaultCategoryOrder uint32 = 1

// ParseNameAndRarity derives the display name and rarity weight from a file
// stem such as "gold_crown.0.25".
//
// Only the text after the last dot is tried as a rarity, so "sword.2.5"
// yields ("Sword.2", 5).
func ParseNameAndRarity(stem string) (string, float64) {
	idx := strings.LastIndexByte(stem, '.')
	if idx < 0 {
		return TitleCase(stem), DefaultRarity
	}

	suffix := stem[idx+1:]
	if strings.ContainsAny(suffix, "xX_") {
		return TitleCase(stem), DefaultRarity
	}

	rarity, err := strconv.ParseFloat(suffix, 64)
	if err != nil || math.IsInf(rarity, 0) || math.IsNaN(rarity) {
		return TitleCase(stem), DefaultRarity
	}

	return TitleCase(stem[:idx]), rarity
}

// TitleCase turns underscores into spaces and upper-cases the first rune of
// every whitespace-separated word. The rest of each word is left untouched.
func TitleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))

	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}

	return strings.Join(words, " ")
}

// CategoryOrder parses the leading ASCII digits of a category folder name,
// e.g. "03_hats" -> 3.
func CategoryOrder(name string) uint32 {
	end := 0
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}

	if end == 0 {
		return DefaultCategoryOrder
	}

	order, err := strconv.ParseUint(name[:end], 10, 32)
	if err != nil {
		return DefaultCategoryOrder
	}

	return uint32(order)
}

// splitExtension separates a base name into stem and lower-cased extension.
// A name whose only dot is the leading one (".png") has no extension.
func splitExtension(base string) (string, string) {
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return base, ""
	}

	return base[:idx], strings.ToLower(base[idx+1:])
}
