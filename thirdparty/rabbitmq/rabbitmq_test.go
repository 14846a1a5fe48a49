package rabbitmq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDelayMillis(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(30*60*1000), delayMillis(now.Add(30*time.Minute), now))
	assert.Equal(t, int64(0), delayMillis(now.Add(-time.Second), now))
}

func TestConsumer_CallExpireAPI(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "success: purged", status: http.StatusOK},
		{name: "success: already gone", status: http.StatusNotFound},
		{name: "error: server failure is retried", status: http.StatusInternalServerError, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotAuth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotAuth = r.Header.Get("Authorization")
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := &Consumer{apiURL: srv.URL, apiKey: "internal-key", httpClient: srv.Client()}
			err := c.callExpireAPI(context.Background(), "7c9e6679-7425-40de-944b-e07fc1f90ae7")

			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, "/internal/v1/services/7c9e6679-7425-40de-944b-e07fc1f90ae7/expire", gotPath)
			assert.Equal(t, "Bearer internal-key", gotAuth)
		})
	}
}
