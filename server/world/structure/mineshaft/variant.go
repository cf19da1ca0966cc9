package mineshaft

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Variant is the type of a mineshaft, which decides the blocks it is built from. Variants are usually
// picked according to the biome a mineshaft starts in.
type Variant int

const (
	Normal Variant = iota
	Mesa
	Jungle
	Snow
	Ice
	Desert
	RedDesert
	Savanna
	Mushroom
)

// Variants returns all mineshaft variants.
func Variants() []Variant {
	return []Variant{Normal, Mesa, Jungle, Snow, Ice, Desert, RedDesert, Savanna, Mushroom}
}

// String ...
func (v Variant) String() string {
	switch v {
	case Normal:
		return "normal"
	case Mesa:
		return "mesa"
	case Jungle:
		return "jungle"
	case Snow:
		return "snow"
	case Ice:
		return "ice"
	case Desert:
		return "desert"
	case RedDesert:
		return "red_desert"
	case Savanna:
		return "savanna"
	case Mushroom:
		return "mushroom"
	}
	return "unknown"
}

// DisplayName returns a human readable name of the variant, such as "Red Desert".
func (v Variant) DisplayName() string {
	return cases.Title(language.English).String(strings.ReplaceAll(v.String(), "_", " "))
}

// ParseVariant parses a variant name as returned by Variant.String. Parsing is case-insensitive.
func ParseVariant(s string) (Variant, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, v := range Variants() {
		if v.String() == s {
			return v, true
		}
	}
	return Normal, false
}
