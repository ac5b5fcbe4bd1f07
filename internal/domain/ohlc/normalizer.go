package ohlc

import "time"

// Normalize converts upstream rows into canonical records. Each field is
// resolved independently: unavailable price fields coerce to 0, a row whose
// timestamp cannot be determined is skipped entirely. Row order is
// preserved. A nil or empty input yields an empty sequence, never an error.
func Normalize(rows Rows, now func() time.Time) []Record {
	records := make([]Record, 0, len(rows))
	if len(rows) == 0 {
		return records
	}
	if now == nil {
		now = time.Now
	}

	for _, row := range rows {
		record, ok := normalizeRow(row, now)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	return records
}

func normalizeRow(row Row, now func() time.Time) (Record, bool) {
	// A record without any time field is meaningless: the row is skipped
	// rather than substituted.
	if !row.Timestamp.Present() {
		return Record{}, false
	}

	instant := now()
	if ts, ok := row.Timestamp.Extract(); ok {
		instant = time.Unix(int64(ts), 0).UTC()
	}

	return Record{
		Datetime: instant.UTC().Format(time.RFC3339),
		Open:     priceOrZero(row.Open),
		High:     priceOrZero(row.High),
		Low:      priceOrZero(row.Low),
		Close:    priceOrZero(row.Close),
		Volume:   volumeOrZero(row.Volume),
	}, true
}

func priceOrZero(v Value) float64 {
	out, ok := v.Extract()
	if !ok {
		return 0
	}
	return out
}

func volumeOrZero(v Value) int64 {
	out, ok := v.Extract()
	if !ok || out < 0 {
		return 0
	}
	return int64(out)
}
