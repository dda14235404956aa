package dto

import (
	"regexp"
	"strings"

	"github.com/qyinm/modeldeck/browse"
	"github.com/qyinm/modeldeck/types"
)

var amountRe = regexp.MustCompile(`\$\s*[0-9]+(?:\.[0-9]{1,4})?`)

func FromModel(r types.ModelRecord) Model {
	pricingType, pricingAmount, pricingPeriod := parsePricing(r.Price())
	return Model{
		ID:            r.ID(),
		Name:          r.Name(),
		Developer:     r.Developer(),
		ReleaseDate:   r.ReleaseDate(),
		Category:      r.Category().String(),
		Price:         r.Price(),
		APIPrice:      r.APIPrice(),
		PriceValue:    browse.PriceValue(r.Price()),
		PriceKnown:    browse.PriceKnown(r.Price()),
		PricingType:   pricingType,
		PricingAmount: pricingAmount,
		PricingPeriod: pricingPeriod,
		Description:   r.Description(),
		Features:      nonNil(r.Features()),
		Tags:          nonNil(r.Tags()),
		Badge:         r.Badge(),
		Link:          r.Link(),
	}
}

func FromModels(records []types.ModelRecord) []Model {
	out := make([]Model, 0, len(records))
	for _, r := range records {
		out = append(out, FromModel(r))
	}
	return out
}

func FromCategory(c types.Category, count int) Category {
	return Category{Name: c.String(), Icon: c.Icon(), Count: count}
}

func FromStats(s browse.Stats) Stats {
	byCategory := make(map[string]int, len(types.Categories))
	for _, c := range types.Categories {
		byCategory[c.String()] = s.Count(c)
	}
	return Stats{Total: s.Total, ByCategory: byCategory}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func parsePricing(price string) (string, string, string) {
	s := strings.TrimSpace(price)
	if s == "" {
		return "", "", ""
	}

	lower := strings.ToLower(s)
	pricingType := "unknown"
	if strings.Contains(lower, "contact") {
		pricingType = "contact"
	}
	if strings.Contains(lower, "free") {
		pricingType = "free"
	}
	if strings.Contains(s, "$") {
		pricingType = "paid"
	}

	pricingAmount := strings.TrimSpace(amountRe.FindString(s))

	pricingPeriod := ""
	switch {
	case strings.Contains(lower, "/month"), strings.Contains(lower, "per month"), strings.Contains(lower, "/mo"):
		pricingPeriod = "month"
	case strings.Contains(lower, "/year"), strings.Contains(lower, "per year"), strings.Contains(lower, "/yr"):
		pricingPeriod = "year"
	case strings.Contains(lower, "per second"), strings.Contains(lower, "/sec"), strings.Contains(lower, "/s"):
		pricingPeriod = "second"
	case strings.Contains(lower, "per minute"), strings.Contains(lower, "/min"):
		pricingPeriod = "minute"
	case strings.Contains(lower, "per image"), strings.Contains(lower, "/image"):
		pricingPeriod = "image"
	case strings.Contains(lower, "token"):
		pricingPeriod = "tokens"
	}

	return pricingType, pricingAmount, pricingPeriod
}
