// Package docs holds the OpenAPI document served under /swagger.
// Regenerate from the handler annotations with `swag init -g cmd/app/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        },
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/health": {
            "get": {"tags": ["Health"], "summary": "Liveness", "responses": {"200": {"description": "OK"}, "503": {"description": "Draining"}}}
        },
        "/health/ready": {
            "get": {"tags": ["Health"], "summary": "Readiness", "responses": {"200": {"description": "OK"}, "503": {"description": "Dependency down"}}}
        },
        "/v1/auth/refresh": {
            "post": {"tags": ["Auth"], "summary": "Refresh access token", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/v1/auth/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Current identity", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/seats": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Seat"], "summary": "List seats", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/seats/availability": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["Seat"], "summary": "Seat availability",
                "parameters": [{"type": "string", "description": "YYYY-MM-DD", "name": "date", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/eligibility": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["Booking"], "summary": "Check eligibility",
                "parameters": [
                    {"type": "string", "description": "designated or floater", "name": "seat_type", "in": "query", "required": true},
                    {"type": "string", "description": "YYYY-MM-DD", "name": "date", "in": "query", "required": true},
                    {"type": "string", "description": "A or B", "name": "batch", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/calendar/weeks/{year}/{week}": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["Calendar"], "summary": "Week calendar",
                "parameters": [
                    {"type": "integer", "name": "year", "in": "path", "required": true},
                    {"type": "integer", "name": "week", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/calendar/next-bookable": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Calendar"], "summary": "Next bookable date", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/bookings": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["Booking"], "summary": "Bookings of a week",
                "parameters": [{"type": "string", "description": "YYYY-WW", "name": "week", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["Booking"], "summary": "Book a seat",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Rejected"}, "404": {"description": "Seat not found"}, "409": {"description": "Already booked"}, "503": {"description": "Storage unavailable"}}
            }
        },
        "/v1/bookings/mine": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Booking"], "summary": "My bookings", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/bookings/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}], "tags": ["Booking"], "summary": "Cancel a booking",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Not the owner"}, "404": {"description": "Not found"}}
            }
        },
        "/v1/holidays": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Holiday"], "summary": "List holidays", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Holiday"], "summary": "Add a holiday", "responses": {"201": {"description": "Created"}, "409": {"description": "Duplicate date"}}}
        },
        "/v1/holidays/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}], "tags": ["Holiday"], "summary": "Remove a holiday",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/v1/admin/bookings": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Admin"], "summary": "All bookings", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        },
        "/v1/admin/bookings/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}], "tags": ["Admin"], "summary": "Force release a booking",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/v1/admin/seats/{id}/disable": {
            "patch": {
                "security": [{"BearerAuth": []}], "tags": ["Admin"], "summary": "Disable a seat",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/v1/admin/seats/{id}/enable": {
            "patch": {
                "security": [{"BearerAuth": []}], "tags": ["Admin"], "summary": "Enable a seat",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/v1/admin/reports/weeks/{week}": {
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["Admin"], "summary": "Export a week of bookings",
                "parameters": [{"type": "string", "name": "week", "in": "path", "required": true, "description": "ISO week, YYYY-WW"}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad request"}, "503": {"description": "Storage unavailable"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Desk API",
	Description:      "Seat booking for a two-batch rotating office.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
