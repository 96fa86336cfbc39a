package s3_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"desk/config"
	otelMocks "desk/infras/otel/mocks"
	"desk/infras/s3"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) *config.Config {
	cfg := &config.Config{}
	cfg.External.S3.APIEndpoint = endpoint
	cfg.External.S3.AccessKeyID = "key"
	cfg.External.S3.SecretAccessKey = "secret"
	cfg.External.S3.Region = "auto"
	cfg.External.S3.BucketName = "desk"

	return cfg
}

func TestPublicURL(t *testing.T) {
	cfg := testConfig("http://minio:9000/")
	assert.Equal(t, "http://minio:9000/desk/reports/2026-13.csv", s3.PublicURL(cfg, "reports/2026-13.csv"))

	cfg.External.S3.PublicDomain = "https://files.example.com/"
	assert.Equal(t, "https://files.example.com/reports/2026-13.csv", s3.PublicURL(cfg, "/reports/2026-13.csv"))
}

func TestObjectKeyFromURL(t *testing.T) {
	cfg := testConfig("http://minio:9000")
	cfg.External.S3.PublicDomain = "https://files.example.com"

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "public domain", url: "https://files.example.com/reports/a.csv", want: "reports/a.csv"},
		{name: "api endpoint", url: "http://minio:9000/desk/reports/a.csv", want: "reports/a.csv"},
		{name: "foreign host", url: "https://elsewhere.example.com/reports/a.csv", want: ""},
		{name: "bare prefix", url: "https://files.example.com/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s3.ObjectKeyFromURL(cfg, tt.url))
		})
	}
}

func TestPutAndDeleteObject(t *testing.T) {
	type call struct {
		method string
		path   string
		body   string
	}

	var calls []call

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, call{method: r.Method, path: r.URL.Path, body: string(body)})

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	store := s3.New(cfg, otelMocks.NewOtel())

	url, err := store.PutObject(context.Background(), "reports/bookings", "2026-13.csv", "text/csv", []byte("seat,date\n"))
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/desk/reports/bookings/2026-13.csv", url)

	key := store.ObjectKeyFromURL(url)
	assert.Equal(t, "reports/bookings/2026-13.csv", key)

	require.NoError(t, store.DeleteObject(context.Background(), key))

	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodPut, calls[0].method)
	assert.Equal(t, "/desk/reports/bookings/2026-13.csv", calls[0].path)
	assert.Contains(t, calls[0].body, "seat,date")
	assert.Equal(t, http.MethodDelete, calls[1].method)
	assert.Equal(t, "/desk/reports/bookings/2026-13.csv", calls[1].path)
}
