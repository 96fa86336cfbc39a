package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"desk/shared/constant"
	"desk/shared/dto"
	"desk/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 3, 25, 9, 30, 0, 0, time.UTC)

	metadata := dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: createdAt,
		CreatedBy:  "alice",
		ModifiedBy: "alice",
	})

	parsed, err := time.Parse(constant.DateFormat, metadata.CreatedAt)
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(createdAt))
	assert.Equal(t, "alice", metadata.CreatedBy)
	assert.Equal(t, "alice", metadata.ModifiedBy)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		group     dto.FilterGroup
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "empty group",
			group:     dto.FilterGroup{},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name: "single equality with table",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "user_id", Operator: dto.FilterOperatorEq, Value: "u-1", Table: "seat_bookings"},
			}},
			wantWhere: "(seat_bookings.user_id = :user_id)",
			wantArgs:  map[string]any{"user_id": "u-1"},
		},
		{
			name: "in over slice expands named args",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "date", Operator: dto.FilterOperatorIn, Value: []string{"2026-03-23", "2026-03-24"}},
			}},
			wantWhere: "(date IN (:date_0, :date_1))",
			wantArgs:  map[string]any{"date_0": "2026-03-23", "date_1": "2026-03-24"},
		},
		{
			name: "and combination with custom arg name",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "date", Operator: dto.FilterOperatorGreaterEq, Value: "2026-03-23", ArgName: "from"},
					dto.Filter{Field: "date", Operator: dto.FilterOperatorLessEq, Value: "2026-03-27", ArgName: "to"},
				},
			},
			wantWhere: "(date >= :from AND date <= :to)",
			wantArgs:  map[string]any{"from": "2026-03-23", "to": "2026-03-27"},
		},
		{
			name: "operator defaults to and",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "is_active", Operator: dto.FilterOperatorEq, Value: true},
				dto.Filter{Field: "deleted_at", Operator: dto.FilterIsNull},
			}},
			wantWhere: "(is_active = :is_active AND deleted_at IS NULL)",
			wantArgs:  map[string]any{"is_active": true},
		},
		{
			name: "nested or group",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "user_id", Operator: dto.FilterOperatorEq, Value: "u-1"},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "type", Operator: dto.FilterOperatorEq, Value: "FLOATER"},
						dto.Filter{Field: "seat_number", Operator: dto.FilterOperatorGreaterEq, Value: 41},
					},
				},
			}},
			wantWhere: "(user_id = :user_id AND (type = :type OR seat_number >= :seat_number))",
			wantArgs:  map[string]any{"user_id": "u-1", "type": "FLOATER", "seat_number": 41},
		},
		{
			name: "empty in matches nothing",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "date", Operator: dto.FilterOperatorIn, Value: []string{}},
			}},
			wantWhere: "(FALSE)",
			wantArgs:  map[string]any{},
		},
		{
			name: "unknown operators and items are skipped",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "name", Operator: "like", Value: "x"},
				"raw sql",
				dto.Filter{Field: "id", Operator: dto.FilterOperatorNotEq, Value: "s-1"},
			}},
			wantWhere: "(id != :id)",
			wantArgs:  map[string]any{"id": "s-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			target:   "/v1/admin/bookings?page=2&limit=20&sort_by=date&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortDir: dto.SortDirAsc},
		},
		{
			name:     "limit is capped",
			target:   "/v1/admin/bookings?limit=5000&sort_dir=DESC",
			expected: dto.QueryParams{Limit: dto.MaxLimit, SortDir: dto.SortDirDesc},
		},
		{
			name:           "defaults applied",
			target:         "/v1/admin/bookings",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "invalid values ignored",
			target:         "/v1/admin/bookings?page=-1&limit=abc&sort_dir=sideways",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults",
			target:   "/v1/admin/bookings",
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}
