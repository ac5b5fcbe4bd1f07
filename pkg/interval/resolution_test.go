package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdered(t *testing.T) {
	ordered := Ordered()

	names := make([]string, 0, len(ordered))
	for _, resolution := range ordered {
		names = append(names, resolution.Name)
	}
	assert.Equal(t, []string{"1m", "5m", "15m", "1h", "1d"}, names)

	// mutating the returned slice must not affect the registry
	ordered[0] = Resolution{Name: "bogus"}
	assert.Equal(t, "1m", Ordered()[0].Name)
}

func TestResolutionBindings(t *testing.T) {
	testCases := []struct {
		name     string
		period   string
		interval string
	}{
		{name: "1m", period: "7d", interval: "1m"},
		{name: "5m", period: "60d", interval: "5m"},
		{name: "15m", period: "90d", interval: "15m"},
		{name: "1h", period: "6mo", interval: "1h"},
		{name: "1d", period: "1y", interval: "1d"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			resolution, err := Get(testCase.name)
			assert.NoError(t, err)
			assert.Equal(t, testCase.period, resolution.Period)
			assert.Equal(t, testCase.interval, resolution.Interval)
		})
	}
}

func TestGet_Unsupported(t *testing.T) {
	_, err := Get("4h")
	assert.Error(t, err)

	assert.False(t, IsValid("1w"))
	assert.True(t, IsValid("1d"))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"1m", "5m", "15m", "1h", "1d"}, Names())
}
