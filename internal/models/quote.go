package models

// Quote is a single result from the external market-data provider.
type Quote struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Price    float64 `json:"currentPrice"`
	Currency string  `json:"currency"`
}
