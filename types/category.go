package types

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category classifies a model record. All is only meaningful as a filter
// value; records always carry one of the four concrete categories.
type Category int

const (
	All Category = iota
	Multimodal
	Image
	Video
	Audio
)

// ErrUnknownCategory is returned when a category name cannot be parsed.
var ErrUnknownCategory = errors.New("unknown category")

// Categories lists the concrete record categories in display order.
var Categories = []Category{Multimodal, Image, Video, Audio}

// FilterCategories lists the category filter buttons in display order.
var FilterCategories = []Category{All, Multimodal, Image, Video, Audio}

// String returns the display name of the category
func (c Category) String() string {
	switch c {
	case All:
		return "All"
	case Multimodal:
		return "Multimodal"
	case Image:
		return "Image"
	case Video:
		return "Video"
	case Audio:
		return "Audio"
	default:
		return "Unknown"
	}
}

// Icon returns the card glyph shown before a record name.
func (c Category) Icon() string {
	switch c {
	case Image:
		return "🎨"
	case Video:
		return "🎬"
	case Audio:
		return "🎵"
	default:
		return "🤖"
	}
}

// Valid reports whether c is a concrete record category.
func (c Category) Valid() bool {
	return c >= Multimodal && c <= Audio
}

// Next returns the filter category after c, wrapping back to All.
func (c Category) Next() Category {
	return FilterCategories[(indexOf(c)+1)%len(FilterCategories)]
}

// Prev returns the filter category before c, wrapping to Audio.
func (c Category) Prev() Category {
	n := len(FilterCategories)
	return FilterCategories[(indexOf(c)+n-1)%n]
}

func indexOf(c Category) int {
	for i, fc := range FilterCategories {
		if fc == c {
			return i
		}
	}
	return 0
}

// ParseCategory parses a category name case-insensitively. An empty string
// parses as All.
func ParseCategory(raw string) (Category, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return All, nil
	}
	// Casers are stateful, so one is built per call.
	switch cases.Title(language.English).String(v) {
	case "All":
		return All, nil
	case "Multimodal":
		return Multimodal, nil
	case "Image":
		return Image, nil
	case "Video":
		return Video, nil
	case "Audio":
		return Audio, nil
	default:
		return All, fmt.Errorf("%w %q; expected all|multimodal|image|video|audio", ErrUnknownCategory, raw)
	}
}
