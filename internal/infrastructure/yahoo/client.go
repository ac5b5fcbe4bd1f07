package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/ohlc"
	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/provider"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/config"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/errors"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/logger"
)

// Client implements provider.MarketData against the Yahoo Finance public API.
type Client struct {
	httpClient *http.Client
	config     config.YahooConfig
	logger     logger.Interface
}

// NewClient creates a new Yahoo Finance client.
func NewClient(cfg config.YahooConfig, log logger.Interface) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
		logger:     log,
	}
}

// FetchSeries downloads one (period, interval) candle series and maps it
// into rows at the ingress boundary. A response without data yields nil
// rows and a nil error.
func (c *Client) FetchSeries(ctx context.Context, symbol, period, interval string) (ohlc.Rows, error) {
	u := fmt.Sprintf("%s/%s?range=%s&interval=%s",
		c.config.ChartBaseURL, url.PathEscape(symbol), url.QueryEscape(period), url.QueryEscape(interval))

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("failed to decode chart response: %v", err),
			string(errors.ProviderDecodeError), "chart")
	}
	if chart.Chart.Error != nil {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("yahoo chart api error: %s", chart.Chart.Error.Description),
			string(errors.ProviderFetchError), "chart")
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		c.logger.Debug("yahoo chart returned no data",
			logger.Field{Key: "symbol", Value: symbol},
			logger.Field{Key: "period", Value: period},
			logger.Field{Key: "interval", Value: interval})
		return nil, nil
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}

	return toRows(result), nil
}

// FetchQuote downloads the current-price snapshot for one symbol.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (*provider.Quote, error) {
	u := fmt.Sprintf("%s?symbols=%s", c.config.QuoteBaseURL, url.QueryEscape(symbol))

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var quote quoteResponse
	if err := json.Unmarshal(body, &quote); err != nil {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("failed to decode quote response: %v", err),
			string(errors.ProviderDecodeError), "quote")
	}
	if quote.QuoteResponse.Error != nil {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("yahoo quote api error: %s", quote.QuoteResponse.Error.Description),
			string(errors.ProviderFetchError), "quote")
	}
	if len(quote.QuoteResponse.Result) == 0 {
		return &provider.Quote{}, nil
	}

	result := quote.QuoteResponse.Result[0]
	snapshot := &provider.Quote{
		CurrentPrice:       result.CurrentPrice,
		RegularMarketPrice: result.RegularMarketPrice,
		PreviousClose:      result.PreviousClose,
	}
	if result.RegularMarketVolume != nil {
		snapshot.RegularMarketVolume = *result.RegularMarketVolume
	}

	return snapshot, nil
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("yahoo fetch failed: %v", err),
			string(errors.ProviderFetchError), "fetch")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("yahoo read body failed: %v", err),
			string(errors.ProviderFetchError), "fetch")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("yahoo returned status %d", resp.StatusCode),
			string(errors.ProviderFetchError), "fetch")
	}

	return body, nil
}

// toRows maps one chart result into boundary rows, one per timestamp slot.
func toRows(result chartResult) ohlc.Rows {
	quote := result.Indicators.Quote[0]
	rows := make(ohlc.Rows, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		rows = append(rows, ohlc.Row{
			Timestamp: ohlc.Scalar(float64(ts)),
			Open:      toValue(quote.Open, i),
			High:      toValue(quote.High, i),
			Low:       toValue(quote.Low, i),
			Close:     toValue(quote.Close, i),
			Volume:    toValue(quote.Volume, i),
		})
	}

	return rows
}

// toValue resolves one slot of a field array into the closed Value variant.
func toValue(field []any, i int) ohlc.Value {
	if i >= len(field) || field[i] == nil {
		return ohlc.Missing()
	}
	switch v := field[i].(type) {
	case float64:
		return ohlc.Scalar(v)
	case []any:
		nested := make([]float64, 0, len(v))
		for _, item := range v {
			if n, ok := item.(float64); ok {
				nested = append(nested, n)
			}
		}
		return ohlc.Nested(nested...)
	default:
		return ohlc.Missing()
	}
}
