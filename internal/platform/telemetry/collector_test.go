package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		endpoint     string
		wantHost     string
		wantInsecure bool
	}{
		{"http://otel-collector:4318", "otel-collector:4318", true},
		{"https://otlp.example.com", "otlp.example.com", false},
		{"otel-collector:4318", "otel-collector:4318", true},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			t.Parallel()
			host, insecure, err := collector(tt.endpoint)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantInsecure, insecure)
		})
	}

	_, _, err := collector("")
	assert.ErrorIs(t, err, errNoEndpoint)
}
