// Package docs registers the swagger document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Reports whether the game record storage is reachable",
                "produces": ["application/json"],
                "tags": ["HEALTH"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/http.ResponseBody"}}
                }
            }
        },
        "/slack/command": {
            "get": {
                "produces": ["application/json"],
                "tags": ["GAME"],
                "summary": "Slash command liveness",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ResponseBody"}}
                }
            },
            "post": {
                "description": "Applies a chat command to the channel's game",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["GAME"],
                "summary": "Slash command",
                "parameters": [
                    {"type": "string", "description": "channel id", "name": "channel_id", "in": "formData", "required": true},
                    {"type": "string", "description": "channel name", "name": "channel_name", "in": "formData", "required": true},
                    {"type": "string", "description": "user id", "name": "user_id", "in": "formData", "required": true},
                    {"type": "string", "description": "user name", "name": "user_name", "in": "formData", "required": true},
                    {"type": "string", "description": "trigger, eg /ttt", "name": "command", "in": "formData", "required": true},
                    {"type": "string", "description": "eg start, put 1 2, status", "name": "text", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SlashCommandResponse"}}
                }
            }
        },
        "/v1/api/channels/{channel}/history": {
            "get": {
                "description": "Finished sessions kept in memory for a channel, oldest first",
                "produces": ["application/json"],
                "tags": ["GAME"],
                "summary": "Channel history",
                "parameters": [
                    {"type": "string", "description": "channel id", "name": "channel", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ResponseBody"}}
                }
            }
        },
        "/v1/api/records": {
            "get": {
                "description": "Archived game results with filtering and pagination",
                "produces": ["application/json"],
                "tags": ["RECORD"],
                "summary": "List finished games",
                "parameters": [
                    {"type": "string", "description": "channel id", "name": "channel_id", "in": "query"},
                    {"type": "string", "description": "user in either seat", "name": "player", "in": "query"},
                    {"type": "string", "description": "win, draw or concede", "name": "outcome", "in": "query"},
                    {"type": "integer", "description": "page", "name": "page", "in": "query"},
                    {"type": "integer", "description": "limit", "name": "limit", "in": "query"},
                    {"type": "string", "description": "finished_at, moves or channel_id", "name": "order_by", "in": "query"},
                    {"type": "boolean", "description": "asc", "name": "asc", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ResponseBody"}}
                }
            }
        },
        "/webhook/line": {
            "post": {
                "description": "Plays the game in LINE groups, rooms and one-to-one chats",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["LINE"],
                "summary": "LINE Webhook",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "http.ResponseBody": {
            "type": "object",
            "properties": {
                "current_page": {"type": "integer"},
                "data": {},
                "per_page": {"type": "integer"},
                "status": {"$ref": "#/definitions/http.Status"},
                "total_item": {"type": "integer"}
            }
        },
        "http.SlashCommandResponse": {
            "type": "object",
            "properties": {
                "response_type": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "http.Status": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:9089",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Tic-tac-toe chat bot APIs",
	Description:      "Slash command and LINE webhook endpoints for per-channel tic-tac-toe games.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
