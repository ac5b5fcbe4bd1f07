package interval

import (
	"fmt"
	"time"
)

// Resolution represents a candle granularity the provider understands,
// bound to the lookback period it is fetched with.
type Resolution struct {
	Name     string
	Period   string
	Interval string
	Duration time.Duration
}

// Supported resolutions configuration
var (
	Resolution1m  = Resolution{Name: "1m", Period: "7d", Interval: "1m", Duration: time.Minute}
	Resolution5m  = Resolution{Name: "5m", Period: "60d", Interval: "5m", Duration: 5 * time.Minute}
	Resolution15m = Resolution{Name: "15m", Period: "90d", Interval: "15m", Duration: 15 * time.Minute}
	Resolution1h  = Resolution{Name: "1h", Period: "6mo", Interval: "1h", Duration: time.Hour}
	Resolution1d  = Resolution{Name: "1d", Period: "1y", Interval: "1d", Duration: 24 * time.Hour}
)

// AllResolutions lists the supported resolutions in fetch order.
// The order is fixed: historical bundles are assembled shortest first.
var AllResolutions = []Resolution{
	Resolution1m, Resolution5m, Resolution15m, Resolution1h, Resolution1d,
}

// Resolution registry for lookup
var resolutionRegistry = make(map[string]Resolution)

func init() {
	for _, resolution := range AllResolutions {
		resolutionRegistry[resolution.Name] = resolution
	}
}

// Ordered returns the fixed fetch sequence for historical bundles.
func Ordered() []Resolution {
	ordered := make([]Resolution, len(AllResolutions))
	copy(ordered, AllResolutions)
	return ordered
}

// Get returns a resolution by name.
func Get(name string) (Resolution, error) {
	resolution, exists := resolutionRegistry[name]
	if !exists {
		return Resolution{}, fmt.Errorf("unsupported resolution: %s", name)
	}
	return resolution, nil
}

// IsValid checks if a resolution name is supported.
func IsValid(name string) bool {
	_, exists := resolutionRegistry[name]
	return exists
}

// Names returns all supported resolution names in fetch order.
func Names() []string {
	names := make([]string, 0, len(AllResolutions))
	for _, resolution := range AllResolutions {
		names = append(names, resolution.Name)
	}
	return names
}
