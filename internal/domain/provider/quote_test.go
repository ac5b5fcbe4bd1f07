package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 {
	return &v
}

func TestQuote_Price(t *testing.T) {
	testCases := []struct {
		name     string
		quote    Quote
		expected float64
		ok       bool
	}{
		{
			name:     "live price wins",
			quote:    Quote{CurrentPrice: ptr(101), RegularMarketPrice: ptr(102), PreviousClose: ptr(103)},
			expected: 101,
			ok:       true,
		},
		{
			name:     "regular market price when live absent",
			quote:    Quote{RegularMarketPrice: ptr(102), PreviousClose: ptr(103)},
			expected: 102,
			ok:       true,
		},
		{
			name:     "previous close as last resort",
			quote:    Quote{PreviousClose: ptr(103)},
			expected: 103,
			ok:       true,
		},
		{
			name:  "no source present",
			quote: Quote{RegularMarketVolume: 42},
			ok:    false,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			price, ok := testCase.quote.Price()
			assert.Equal(t, testCase.ok, ok)
			if testCase.ok {
				assert.Equal(t, testCase.expected, price)
			}
		})
	}
}
