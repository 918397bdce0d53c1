package dto

type PersonQuoteResponse struct {
	Age           int     `json:"age"`
	Nights        int     `json:"nights"`
	Category      string  `json:"category"`
	StayPriceUSD  float64 `json:"stay_price_usd"`
	StayPriceRWF  float64 `json:"stay_price_rwf"`
	EntryPriceUSD float64 `json:"entry_price_usd"`
	EntryPriceRWF float64 `json:"entry_price_rwf"`
}

type QuoteResponse struct {
	AmountUSD float64 `json:"amount_usd"`
	AmountRWF float64 `json:"amount_rwf"`
}

type ValidationError struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorListResponse struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}
