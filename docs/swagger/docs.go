// Package swagger содержит спецификацию OpenAPI, отдаваемую по /swagger/*.
// Обновляется командой: swag init -g cmd/api/main.go -o docs/swagger
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@tour-microservice.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/api/v1/regions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Regions"],
                "summary": "List regions",
                "parameters": [
                    {"type": "string", "name": "parent", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/api/v1/listings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "List tourism listings",
                "parameters": [
                    {"type": "string", "name": "keyword", "in": "query"},
                    {"type": "string", "name": "region", "in": "query"},
                    {"type": "string", "name": "categories", "in": "query"},
                    {"type": "string", "name": "sort", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/api/v1/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "Search listings by keyword",
                "parameters": [
                    {"type": "string", "name": "keyword", "in": "query", "required": true},
                    {"type": "string", "name": "region", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/listings/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "Get listing detail",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "contentTypeId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/listings/{id}/images": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "Get listing images",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/listings/{id}/intro": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "Get listing operating info",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "contentTypeId", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/listings/{id}/nearby": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "Get listings near a reference listing",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "radius", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/listings/{id}/pet": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "Get pet tour info",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Statistics"],
                "summary": "Get stats summary",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/api/v1/stats/regions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Statistics"],
                "summary": "Get per-region counts",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/api/v1/stats/types": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Statistics"],
                "summary": "Get per-type counts",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/api/v1/bookmarks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Bookmarks"],
                "summary": "List bookmarks",
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Bookmarks"],
                "summary": "Add bookmark",
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/v1/bookmarks/{contentId}/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Bookmarks"],
                "summary": "Get bookmark status",
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "name": "contentId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/v1/bookmarks/{contentId}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Bookmarks"],
                "summary": "Remove bookmark",
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "name": "contentId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/v1/debug/tourapi/calls": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Debug"],
                "summary": "Recent upstream API calls",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Tour Microservice API",
	Description:      "Микросервис-шлюз к публичному туристическому API Кореи (KorService2)",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
