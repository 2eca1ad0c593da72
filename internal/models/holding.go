package models

// Holding is one position in a user's stock portfolio.
type Holding struct {
	ID     int     `json:"id"`
	UserID int     `json:"-"`
	Symbol string  `json:"symbol"`
	Shares float64 `json:"shares"`
	Price  float64 `json:"price"` // purchase price per share
}

// Position is a holding revalued at the latest known quote. Live is false
// when the quote lookup failed and Current falls back to the stored price.
type Position struct {
	Holding
	Current     float64 `json:"current_price"`
	MarketValue float64 `json:"market_value"`
	Live        bool    `json:"live"`
}
