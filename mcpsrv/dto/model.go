package dto

type Model struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Developer     string   `json:"developer"`
	ReleaseDate   string   `json:"release_date"`
	Category      string   `json:"category"`
	Price         string   `json:"price"`
	APIPrice      string   `json:"api_price,omitempty"`
	PriceValue    float64  `json:"price_value"`
	PriceKnown    bool     `json:"price_known"`
	PricingType   string   `json:"pricing_type"`
	PricingAmount string   `json:"pricing_amount"`
	PricingPeriod string   `json:"pricing_period"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	Tags          []string `json:"tags"`
	Badge         string   `json:"badge,omitempty"`
	Link          string   `json:"link,omitempty"`
}

type Category struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

type Stats struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"by_category"`
}
