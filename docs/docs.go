// Package docs holds the Swagger document served at /swagger/*any.
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
    "paths": {
        "/authorize": {
            "post": {
                "description": "Binds the credentials, then returns an HS512 JWT valid for 24 hours. The token is also set as an HttpOnly cookie scoped to /api, next to an informational user_id cookie.",
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["Auth"],
                "summary": "Issue a token",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.authorizeReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "Token", "schema": {"type": "string"}},
                    "400": {"description": "Malformed request", "schema": {"type": "string"}},
                    "401": {"description": "Authentication error", "schema": {"type": "string"}},
                    "500": {"description": "Group lookup failed", "schema": {"type": "string"}}
                }
            }
        },
        "/api/users": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Returns users ordered by user_id. Requires a token of a member of lldap_admin, sent as a bearer header or the token cookie.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["User"],
                "summary": "List users",
                "parameters": [
                    {
                        "description": "Filter",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.listUsersReq"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/http.userItemResp"}}
                    },
                    "400": {"description": "Malformed request or filter", "schema": {"type": "string"}},
                    "401": {"description": "Invalid JWT, Expired JWT or missing group", "schema": {"type": "string"}},
                    "500": {"description": "Database error", "schema": {"type": "string"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "Service is healthy", "schema": {"type": "object"}},
                    "503": {"description": "Database unreachable", "schema": {"type": "string"}}
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "Service is ready", "schema": {"type": "object"}},
                    "503": {"description": "Service is not ready", "schema": {"type": "string"}}
                }
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {
                    "200": {"description": "Service is alive", "schema": {"type": "object"}}
                }
            }
        }
    },
    "definitions": {
        "http.authorizeReq": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "http.listUsersReq": {
            "type": "object",
            "properties": {
                "filters": {"type": "object", "description": "Filter tree: {\"And\": [...]}, {\"Or\": [...]}, {\"Not\": {...}} or {\"Equality\": [field, value]}"}
            }
        },
        "http.userItemResp": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "email": {"type": "string"},
                "display_name": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "creation_date": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:17170",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "LLDAP Gateway API",
	Description:      "Token issuance and the administrative user API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
