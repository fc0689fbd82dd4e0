package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the articles service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>articles - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// OpenAPI document for the article endpoints. tags may be sent as an array or
// as a string holding a JSON array.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "articles", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Article": { "type": "object", "properties": {
        "id": {"type":"string","format":"uuid"}, "name": {"type":"string"}, "description": {"type":"string"},
        "tags": {"type":"array","items":{"type":"string"}},
        "created_at": {"type":"string","format":"date-time"}, "updated_at": {"type":"string","format":"date-time"} } },
      "ArticleInput": { "type": "object", "properties": {
        "name": {"type":"string"}, "description": {"type":"string"},
        "tags": { "oneOf": [ {"type":"array","items":{"type":"string"}}, {"type":"string","description":"JSON-encoded array of strings"} ] } } },
      "Error": { "type": "object", "properties": { "error": {"type":"string"} } }
    }
  },
  "paths": {
    "/articles": {
      "get": { "summary": "List articles", "responses": { "200": { "description": "all articles", "content": { "application/json": { "schema": {"type":"array","items":{"$ref":"#/components/schemas/Article"}} } } } } },
      "post": {
        "summary": "Create article",
        "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/ArticleInput"} } } },
        "responses": { "200": { "description": "created article" }, "400": { "description": "capacity, validation or persistence error" } }
      }
    },
    "/articles/{id}": {
      "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type":"string"} } ],
      "put": {
        "summary": "Replace article fields",
        "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/ArticleInput"} } } },
        "responses": { "200": { "description": "updated article" }, "400": { "description": "validation or persistence error" }, "404": { "description": "Article not found" } }
      },
      "delete": { "summary": "Delete article", "responses": { "200": { "description": "deleted article" }, "400": { "description": "persistence error" }, "404": { "description": "Article not found" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "exposition format" } } } }
  }
}`
