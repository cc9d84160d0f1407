// Package docs holds the Swagger specification served at /docs/doc.json.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/api/player/{gameName}/{tagLine}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["player"],
                "summary": "Resolve a Riot ID",
                "parameters": [
                    {"type": "string", "name": "gameName", "in": "path", "required": true},
                    {"type": "string", "name": "tagLine", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "403": {"description": "Forbidden", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"type": "object"}}
                }
            }
        },
        "/api/matches/{puuid}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["matches"],
                "summary": "Recent match history",
                "parameters": [
                    {"type": "string", "name": "puuid", "in": "path", "required": true},
                    {"type": "integer", "name": "count", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/api/arena/matches/{puuid}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["matches"],
                "summary": "Arena match history",
                "parameters": [
                    {"type": "string", "name": "puuid", "in": "path", "required": true},
                    {"type": "integer", "name": "count", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/api/arena/matches/{puuid}/csv": {
            "get": {
                "produces": ["text/csv"],
                "tags": ["matches"],
                "summary": "Arena match history as CSV",
                "parameters": [
                    {"type": "string", "name": "puuid", "in": "path", "required": true},
                    {"type": "integer", "name": "count", "in": "query"},
                    {"type": "string", "name": "filename", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "CSV document", "schema": {"type": "string"}}
                }
            }
        },
        "/api/images/champion/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "Champion image URL",
                "parameters": [
                    {"type": "string", "name": "name", "in": "path", "required": true},
                    {"type": "string", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/api/images/item/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "Item image URL",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/api/images/augment/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "Augment image URL",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"type": "object"}}
                }
            }
        },
        "/api/images/champions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "Batch champion image URLs",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object"}}
                }
            }
        },
        "/api/images/items": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "Batch item image URLs",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object"}}
                }
            }
        },
        "/api/augments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reference"],
                "summary": "Augment reference table",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/api/predict-arena-win": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["predict"],
                "summary": "Predict Arena outcome for one match",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object"}}
                }
            }
        },
        "/api/predict-arena-placements": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["predict"],
                "summary": "Predict Arena placements for a batch of matches",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object"}}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3001",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Arenascope API",
	Description:      "Proxy API serving League of Legends Arena match data, static reference lookups, and win/placement predictions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
