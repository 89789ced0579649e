// Package docs holds the Swagger spec served at /swagger.
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
        "/api/v1/chat/sessions": {
            "post": {
                "description": "Creates an empty conversation and returns its id.",
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Start a chat session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.startResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/chat/sessions/{id}": {
            "get": {
                "description": "Returns the ordered turns of a session.",
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Get a transcript",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.transcriptResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "delete": {
                "description": "Discards the session and its transcript.",
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "End a chat session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/chat/sessions/{id}/messages": {
            "post": {
                "description": "Sends one user message and returns the advisor reply with the updated transcript.\nWhen the advisor fails the reply is an apology, failed is true and the transcript is unchanged.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Send a message",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"description": "Message", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.sendReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.sendResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Not ready", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "http.sendReq": {
            "type": "object",
            "required": ["text"],
            "properties": {"text": {"type": "string"}}
        },
        "http.turnResp": {
            "type": "object",
            "properties": {
                "role": {"type": "string"},
                "text": {"type": "string"},
                "at": {"type": "string"}
            }
        },
        "http.startResp": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "http.sendResp": {
            "type": "object",
            "properties": {
                "reply": {"type": "string"},
                "failed": {"type": "boolean"},
                "transcript": {"type": "array", "items": {"$ref": "#/definitions/http.turnResp"}}
            }
        },
        "http.transcriptResp": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "created_at": {"type": "string"},
                "transcript": {"type": "array", "items": {"$ref": "#/definitions/http.turnResp"}}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:7860",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "AUB Compass API",
	Description:      "Course advising chat with lead and feedback logging.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
