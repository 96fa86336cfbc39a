package config_test

import (
	"testing"

	"desk/config"

	"github.com/stretchr/testify/assert"
)

func valid() *config.Config {
	cfg := &config.Config{}
	cfg.Booking.Timezone = "Asia/Kolkata"
	cfg.Booking.CutoffHour = 15
	cfg.Booking.StorageTimeoutSeconds = 5

	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		errMsg string
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "midnight cutoff", mutate: func(c *config.Config) { c.Booking.CutoffHour = 0 }},
		{name: "cutoff past the day", mutate: func(c *config.Config) { c.Booking.CutoffHour = 24 }, errMsg: "BOOKING_CUTOFF_HOUR"},
		{name: "unknown zone", mutate: func(c *config.Config) { c.Booking.Timezone = "Mars/Olympus" }, errMsg: "BOOKING_TIMEZONE"},
		{name: "negative timeout", mutate: func(c *config.Config) { c.Booking.StorageTimeoutSeconds = -1 }, errMsg: "BOOKING_STORAGE_TIMEOUT_SECONDS"},
		{
			name: "limiter without window",
			mutate: func(c *config.Config) {
				c.App.RateLimiter.Enable = true
				c.App.RateLimiter.MaxRequests = 10
			},
			errMsg: "APP_RATE_LIMITER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}
