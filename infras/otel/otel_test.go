package otel_test

import (
	"context"
	"testing"
	"time"

	"desk/config"
	"desk/infras/otel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNewWithoutEndpoint(t *testing.T) {
	o := otel.New(&config.Config{})

	ctx, scope := o.NewScope(context.Background(), "service", "booking.create")
	assert.NotNil(t, ctx)

	scope.SetAttributes(map[string]any{"seat": 7, "batch": "A"})
	scope.TraceIfError(nil)
	scope.End()

	assert.NoError(t, o.Shutdown(context.Background()))
}

func TestAttribute(t *testing.T) {
	id := uuid.MustParse("8a0c3c52-5d6f-4a55-a11e-3a0f4e6b8c01")

	tests := []struct {
		name  string
		value any
		want  attribute.Value
	}{
		{name: "bool", value: true, want: attribute.BoolValue(true)},
		{name: "string", value: "A", want: attribute.StringValue("A")},
		{name: "int", value: 15, want: attribute.IntValue(15)},
		{name: "int64", value: int64(3), want: attribute.Int64Value(3)},
		{name: "slice", value: []string{"MONDAY"}, want: attribute.StringSliceValue([]string{"MONDAY"})},
		{name: "calendar date", value: time.Date(2026, 3, 23, 0, 0, 0, 0, time.UTC), want: attribute.StringValue("2026-03-23")},
		{name: "instant", value: time.Date(2026, 3, 20, 9, 31, 0, 0, time.UTC), want: attribute.StringValue("2026-03-20T09:31:00Z")},
		{name: "stringer", value: id, want: attribute.StringValue(id.String())},
		{name: "fallback", value: 1.5, want: attribute.StringValue("1.5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := otel.Attribute("key", tt.value)
			assert.Equal(t, attribute.Key("key"), kv.Key)
			assert.Equal(t, tt.want, kv.Value)
		})
	}
}
