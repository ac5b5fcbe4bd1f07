package ohlc

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
}

func scalarRow(ts int64, o, h, l, c, v float64) Row {
	return Row{
		Timestamp: Scalar(float64(ts)),
		Open:      Scalar(o),
		High:      Scalar(h),
		Low:       Scalar(l),
		Close:     Scalar(c),
		Volume:    Scalar(v),
	}
}

func TestNormalize(t *testing.T) {
	base := int64(1710496800) // 2024-03-15T10:00:00Z

	testCases := []struct {
		name     string
		rows     Rows
		assertFn func(t *testing.T, records []Record)
	}{
		{
			name: "plain scalar rows",
			rows: Rows{
				scalarRow(base, 100, 110, 95, 105, 5000),
				scalarRow(base+60, 105, 112, 101, 108, 6000),
			},
			assertFn: func(t *testing.T, records []Record) {
				assert.Len(t, records, 2)
				assert.Equal(t, "2024-03-15T10:00:00Z", records[0].Datetime)
				assert.Equal(t, 100.0, records[0].Open)
				assert.Equal(t, 110.0, records[0].High)
				assert.Equal(t, 95.0, records[0].Low)
				assert.Equal(t, 105.0, records[0].Close)
				assert.Equal(t, int64(5000), records[0].Volume)
			},
		},
		{
			name: "missing price field coerces to zero",
			rows: Rows{
				{
					Timestamp: Scalar(float64(base)),
					Open:      Missing(),
					High:      Scalar(110),
					Low:       Scalar(95),
					Close:     Scalar(105),
					Volume:    Scalar(5000),
				},
			},
			assertFn: func(t *testing.T, records []Record) {
				assert.Len(t, records, 1)
				assert.Equal(t, 0.0, records[0].Open)
				assert.Equal(t, 110.0, records[0].High)
			},
		},
		{
			name: "NaN price coerces to zero",
			rows: Rows{
				{
					Timestamp: Scalar(float64(base)),
					Open:      Scalar(math.NaN()),
					High:      Scalar(math.NaN()),
					Low:       Scalar(95),
					Close:     Scalar(105),
					Volume:    Scalar(math.NaN()),
				},
			},
			assertFn: func(t *testing.T, records []Record) {
				assert.Len(t, records, 1)
				assert.Equal(t, 0.0, records[0].Open)
				assert.Equal(t, 0.0, records[0].High)
				assert.Equal(t, int64(0), records[0].Volume)
			},
		},
		{
			name: "nested container fields take first element",
			rows: Rows{
				{
					Timestamp: Scalar(float64(base)),
					Open:      Nested(101, 999),
					High:      Nested(111),
					Low:       Nested(96),
					Close:     Nested(106),
					Volume:    Nested(7000),
				},
			},
			assertFn: func(t *testing.T, records []Record) {
				assert.Len(t, records, 1)
				assert.Equal(t, 101.0, records[0].Open)
				assert.Equal(t, 111.0, records[0].High)
				assert.Equal(t, int64(7000), records[0].Volume)
			},
		},
		{
			name: "row with absent timestamp is skipped",
			rows: Rows{
				scalarRow(base, 100, 110, 95, 105, 5000),
				{
					Timestamp: Missing(),
					Open:      Scalar(105),
					High:      Scalar(112),
					Low:       Scalar(101),
					Close:     Scalar(108),
					Volume:    Scalar(6000),
				},
				scalarRow(base+120, 108, 115, 104, 111, 4000),
			},
			assertFn: func(t *testing.T, records []Record) {
				assert.Len(t, records, 2)
				assert.Equal(t, 100.0, records[0].Open)
				assert.Equal(t, 108.0, records[1].Open)
			},
		},
		{
			name: "present but unextractable timestamp falls back to now",
			rows: Rows{
				{
					Timestamp: Nested(),
					Open:      Scalar(105),
					High:      Scalar(112),
					Low:       Scalar(101),
					Close:     Scalar(108),
					Volume:    Scalar(6000),
				},
			},
			assertFn: func(t *testing.T, records []Record) {
				assert.Len(t, records, 1)
				assert.Equal(t, fixedNow().Format(time.RFC3339), records[0].Datetime)
			},
		},
		{
			name: "negative volume coerces to zero",
			rows: Rows{
				scalarRow(base, 100, 110, 95, 105, -42),
			},
			assertFn: func(t *testing.T, records []Record) {
				assert.Len(t, records, 1)
				assert.Equal(t, int64(0), records[0].Volume)
			},
		},
		{
			name: "nil input yields empty sequence",
			rows: nil,
			assertFn: func(t *testing.T, records []Record) {
				assert.NotNil(t, records)
				assert.Empty(t, records)
			},
		},
		{
			name: "empty input yields empty sequence",
			rows: Rows{},
			assertFn: func(t *testing.T, records []Record) {
				assert.NotNil(t, records)
				assert.Empty(t, records)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			records := Normalize(testCase.rows, fixedNow)
			testCase.assertFn(t, records)
		})
	}
}

func TestNormalize_OrderPreserved(t *testing.T) {
	base := int64(1710496800)
	rows := make(Rows, 0, 10)
	for i := 0; i < 10; i++ {
		rows = append(rows, scalarRow(base+int64(i)*60, float64(100+i), 0, 0, 0, 0))
	}

	records := Normalize(rows, fixedNow)
	assert.Len(t, records, 10)
	for i, record := range records {
		assert.Equal(t, float64(100+i), record.Open)
	}
}

func TestNewTick(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 5, 9, 0, time.UTC)

	tick := NewTick("INFY.NS", 1534.5678, 12345, now)

	assert.Equal(t, "14:05", tick.Time)
	assert.Equal(t, now.UnixMilli(), tick.TimestampMS)
	assert.Equal(t, 1534.57, tick.Open)
	assert.Equal(t, tick.Open, tick.High)
	assert.Equal(t, tick.Open, tick.Low)
	assert.Equal(t, tick.Open, tick.Close)
	assert.Equal(t, int64(12345), tick.Volume)
	assert.Equal(t, "INFY.NS", tick.Symbol)
}

func TestNewTick_NegativeVolume(t *testing.T) {
	tick := NewTick("INFY.NS", 10, -5, fixedNow())
	assert.Equal(t, int64(0), tick.Volume)
}
