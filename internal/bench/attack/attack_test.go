package attack

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const baseURL = "http://localhost:3000"

func TestPathTargeter(t *testing.T) {
	targeter := PathTargeter(baseURL, PathUsers, "secret")

	var target vegeta.Target
	require.NoError(t, targeter(&target))

	assert.Equal(t, http.MethodGet, target.Method)
	assert.Equal(t, baseURL+PathUsers, target.URL)
	assert.Equal(t, "secret", target.Header.Get(bypassHeader))
}

func TestPathTargeter_NoBypassHeader(t *testing.T) {
	var target vegeta.Target
	require.NoError(t, PathTargeter(baseURL, PathHealth, "")(&target))
	assert.Nil(t, target.Header)
}

func TestMixedTargeter_Weights(t *testing.T) {
	tests := []struct {
		draw float64
		want string
	}{
		{0.0, PathHealth},
		{0.19, PathHealth},
		{0.2, PathUsers},
		{0.49, PathUsers},
		{0.5, PathStatus},
		{0.69, PathStatus},
		{0.7, PathError},
		{0.999, PathError},
	}

	for _, tt := range tests {
		targeter := mixedTargeter(baseURL, "", func() float64 { return tt.draw })
		var target vegeta.Target
		require.NoError(t, targeter(&target))
		assert.Equal(t, baseURL+tt.want, target.URL, "draw %v", tt.draw)
	}
}

func TestTargeter(t *testing.T) {
	for _, typ := range []string{"health", "users", "status", "error", "mixed"} {
		targeter, err := Targeter(&Config{BaseURL: baseURL, Type: typ})
		require.NoError(t, err, typ)
		assert.NotNil(t, targeter, typ)
	}

	_, err := Targeter(&Config{BaseURL: baseURL, Type: "create"})
	assert.Error(t, err)
}

func TestErrorRate(t *testing.T) {
	var rate ErrorRate
	for _, res := range []vegeta.Result{
		{URL: baseURL + PathError, Code: http.StatusOK},
		{URL: baseURL + PathError, Code: http.StatusInternalServerError},
		{URL: baseURL + PathError, Code: http.StatusOK},
		{URL: baseURL + PathError, Code: http.StatusTooManyRequests},
		{URL: baseURL + PathHealth, Code: http.StatusInternalServerError},
	} {
		rate.Add(&res)
	}

	assert.Equal(t, 4, rate.Total)
	assert.Equal(t, 1, rate.Failures)
	assert.Equal(t, 1, rate.Unexpected)
	assert.InDelta(t, 0.25, rate.Ratio(), 1e-9)

	var buf bytes.Buffer
	require.NoError(t, rate.Report(&buf))
	assert.Contains(t, buf.String(), "/api/error failure rate: 25.00% (1/4, unexpected 1)")
}

func TestErrorRate_Empty(t *testing.T) {
	var rate ErrorRate
	assert.Zero(t, rate.Ratio())

	var buf bytes.Buffer
	require.NoError(t, rate.Report(&buf))
	assert.Empty(t, buf.String())
}
