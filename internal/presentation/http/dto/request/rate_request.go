package request

// UpdateRatesRequest replaces all four rates on the shop rate board.
// Gold rates are per 10 grams, silver per kilogram, in whole rupees.
type UpdateRatesRequest struct {
	GoldBuy    int64 `json:"gold_buy" binding:"required,min=1"`
	GoldSell   int64 `json:"gold_sell" binding:"required,min=1"`
	SilverBuy  int64 `json:"silver_buy" binding:"required,min=1"`
	SilverSell int64 `json:"silver_sell" binding:"required,min=1"`
}

// RateHistoryFilterRequest represents rate history query parameters
type RateHistoryFilterRequest struct {
	Limit int `form:"limit"`
}
