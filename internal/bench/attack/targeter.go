package attack

import (
	"math/rand/v2"
	"net/http"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const bypassHeader = "X-Rate-Limit-Bypass"

const (
	PathHealth = "/health"
	PathUsers  = "/api/users"
	PathStatus = "/api/status"
	PathError  = "/api/error"
)

type weightedPath struct {
	path   string
	weight float64
}

// mixedPaths weights must sum to 1.
var mixedPaths = []weightedPath{
	{PathHealth, 0.2},
	{PathUsers, 0.3},
	{PathStatus, 0.2},
	{PathError, 0.3},
}

func bypass(secret string) http.Header {
	if secret == "" {
		return nil
	}
	return http.Header{bypassHeader: []string{secret}}
}

func PathTargeter(baseURL, path, bypassSecret string) vegeta.Targeter {
	header := bypass(bypassSecret)
	url := baseURL + path

	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = url
		t.Header = header
		return nil
	}
}

func MixedTargeter(baseURL, bypassSecret string) vegeta.Targeter {
	return mixedTargeter(baseURL, bypassSecret, rand.Float64)
}

func mixedTargeter(baseURL, bypassSecret string, float func() float64) vegeta.Targeter {
	header := bypass(bypassSecret)

	return func(t *vegeta.Target) error {
		r := float()
		path := mixedPaths[len(mixedPaths)-1].path
		for _, wp := range mixedPaths {
			if r < wp.weight {
				path = wp.path
				break
			}
			r -= wp.weight
		}

		t.Method = http.MethodGet
		t.URL = baseURL + path
		t.Header = header
		return nil
	}
}
