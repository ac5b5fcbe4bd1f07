package yahoo

// chartResponse is the response structure from the Yahoo Finance chart API.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []chartQuote `json:"quote"`
	} `json:"indicators"`
}

// chartQuote carries one field array per OHLCV component. Elements are
// decoded as `any`: Yahoo interleaves numbers and nulls, and batch
// downloads occasionally nest values one level deep.
type chartQuote struct {
	Open   []any `json:"open"`
	High   []any `json:"high"`
	Low    []any `json:"low"`
	Close  []any `json:"close"`
	Volume []any `json:"volume"`
}

// quoteResponse is the response structure from the Yahoo Finance quote API.
type quoteResponse struct {
	QuoteResponse struct {
		Result []quoteResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"quoteResponse"`
}

type quoteResult struct {
	CurrentPrice        *float64 `json:"currentPrice"`
	RegularMarketPrice  *float64 `json:"regularMarketPrice"`
	PreviousClose       *float64 `json:"regularMarketPreviousClose"`
	RegularMarketVolume *int64   `json:"regularMarketVolume"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
