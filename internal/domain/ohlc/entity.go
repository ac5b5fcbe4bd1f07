package ohlc

import (
	"math"
	"time"
)

// Record is one canonical OHLC candle. JSON keys match the historical
// bundle payload served to clients.
type Record struct {
	Datetime string  `json:"Datetime"`
	Open     float64 `json:"Open"`
	High     float64 `json:"High"`
	Low      float64 `json:"Low"`
	Close    float64 `json:"Close"`
	Volume   int64   `json:"Volume"`
}

// Bundle maps a resolution name to its ordered candle sequence.
// All configured resolutions are always present, possibly empty.
type Bundle map[string][]Record

// Tick is one live price point pushed over the stream. Open, high, low and
// close carry the same rounded price.
type Tick struct {
	Time        string  `json:"time"`
	TimestampMS int64   `json:"timestamp"`
	Open        float64 `json:"open"`
	High        float64 `json:"high"`
	Low         float64 `json:"low"`
	Close       float64 `json:"close"`
	Volume      int64   `json:"volume"`
	Symbol      string  `json:"symbol"`
}

// NewTick builds a tick from a quote price and volume at the given instant.
func NewTick(symbol string, price float64, volume int64, now time.Time) Tick {
	rounded := math.Round(price*100) / 100
	if volume < 0 {
		volume = 0
	}
	return Tick{
		Time:        now.Format("15:04"),
		TimestampMS: now.UnixMilli(),
		Open:        rounded,
		High:        rounded,
		Low:         rounded,
		Close:       rounded,
		Volume:      volume,
		Symbol:      symbol,
	}
}

// Value is a closed variant for one upstream field: a plain scalar, a
// container whose first element is taken, or missing entirely. Upstream
// shapes are mapped into Values at the provider boundary so nothing
// downstream branches on shape again.
type Value struct {
	scalar  float64
	nested  []float64
	present bool
	isList  bool
}

// Scalar wraps a plain numeric field.
func Scalar(v float64) Value {
	return Value{scalar: v, present: true}
}

// Nested wraps a container-like field; extraction takes the first element.
func Nested(vs ...float64) Value {
	return Value{nested: vs, present: true, isList: true}
}

// Missing marks an absent field.
func Missing() Value {
	return Value{}
}

// Present reports whether the field existed upstream at all.
func (v Value) Present() bool {
	return v.present
}

// Extract resolves the Value to a usable scalar. NaN and empty containers
// report ok=false, the same as missing fields.
func (v Value) Extract() (float64, bool) {
	if !v.present {
		return 0, false
	}
	out := v.scalar
	if v.isList {
		if len(v.nested) == 0 {
			return 0, false
		}
		out = v.nested[0]
	}
	if math.IsNaN(out) {
		return 0, false
	}
	return out, true
}

// Row is one upstream bar before normalization. Timestamp is epoch seconds.
type Row struct {
	Timestamp Value
	Open      Value
	High      Value
	Low       Value
	Close     Value
	Volume    Value
}

// Rows is an ordered upstream bar sequence.
type Rows []Row
