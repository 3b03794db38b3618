// Package docs holds the Swagger document served at /swagger/*any.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/api/v1/agent/chat": {
            "post": {
                "description": "Classifies the prompt, resolves any activity it names and dispatches it to the matching handler.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Agent"],
                "summary": "Run one agent turn",
                "parameters": [
                    {"type": "string", "description": "Bearer token forwarded to the Activity service", "name": "Authorization", "in": "header"},
                    {"description": "User turn", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.chatReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.chatResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/conversations/sessions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Conversation"],
                "summary": "List a user's sessions",
                "parameters": [{"type": "string", "description": "User ID", "name": "user_id", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Conversation"],
                "summary": "Start a new session",
                "parameters": [{"description": "Session owner", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createSessionReq"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/api/v1/conversations/sessions/{id}/messages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Conversation"],
                "summary": "Session history",
                "parameters": [{"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Conversation"],
                "summary": "Append a message",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"description": "Message", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.addMessageReq"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/api/v1/conversations/sessions/{id}/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Conversation"],
                "summary": "Substring search",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Search term", "name": "q", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/api/v1/conversations/sessions/{id}/semantic": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Conversation"],
                "summary": "Semantic search",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Query text", "name": "q", "in": "query", "required": true},
                    {"type": "integer", "description": "Number of results (default 5)", "name": "top_k", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}, "503": {"description": "Embedding provider unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/health": {"get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/live": {"get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}},
        "/ready": {"get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "A dependency is unreachable"}}}}
    },
    "definitions": {
        "http.chatReq": {
            "type": "object",
            "required": ["prompt"],
            "properties": {
                "prompt": {"type": "string"},
                "user_id": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "http.chatResp": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "intent": {"type": "string"},
                "confidence": {"type": "number"},
                "corrected_text": {"type": "string"},
                "result": {"type": "object", "additionalProperties": true},
                "error": {"type": "string"}
            }
        },
        "http.createSessionReq": {
            "type": "object",
            "required": ["user_id"],
            "properties": {"user_id": {"type": "string"}, "name": {"type": "string"}}
        },
        "http.addMessageReq": {
            "type": "object",
            "required": ["role", "content"],
            "properties": {
                "role": {"type": "string", "enum": ["user", "assistant"]},
                "content": {"type": "string"},
                "intent": {"type": "string"},
                "topic": {"type": "string"},
                "embed": {"type": "boolean"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Learning Activity Agent API",
	Description:      "Conversational agent that routes learner requests to learning activities: start, create, edit, delete, list and evaluate.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
