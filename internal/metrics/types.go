package metrics

import "time"

type HTTPMetric struct {
	Method     string
	Route      string
	StatusCode int
	Duration   time.Duration
}

// UnknownRoute labels requests that matched no route, keeping client-chosen
// paths out of the label set.
const UnknownRoute = "unknown"

// DurationBuckets are the request duration histogram boundaries in seconds.
var DurationBuckets = []float64{0.1, 0.5, 1, 2, 5, 10}
