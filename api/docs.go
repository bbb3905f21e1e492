// Package api contains the OpenAPI documentation of the backend.
//
// The paths are generated from the handler annotations with swag, run
// "swag init --output api" after changing them.
package api

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
        "/": {
            "get": {"tags": ["General"], "summary": "API root", "responses": {"200": {"description": "OK"}}},
            "options": {"tags": ["General"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/healthz": {
            "get": {"tags": ["General"], "summary": "Get health", "responses": {"204": {"description": "No Content"}, "500": {"description": "Internal Server Error"}}}
        },
        "/version": {
            "get": {"tags": ["General"], "summary": "API version", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/preferences": {
            "get": {"tags": ["Preferences"], "summary": "Get preferences", "parameters": [{"name": "user", "in": "query", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}},
            "patch": {"tags": ["Preferences"], "summary": "Update preferences", "parameters": [{"name": "user", "in": "query", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}}
        },
        "/v1/periods": {
            "get": {"tags": ["Periods"], "summary": "Get periods", "parameters": [{"name": "user", "in": "query", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}}
        },
        "/v1/periods/current": {
            "get": {"tags": ["Periods"], "summary": "Get current period", "parameters": [{"name": "user", "in": "query", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}}
        },
        "/v1/summaries": {
            "get": {"tags": ["Summaries"], "summary": "Get summary", "parameters": [{"name": "user", "in": "query", "required": true, "type": "string"}, {"name": "start", "in": "query", "type": "string"}, {"name": "end", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}}
        },
        "/v1/summaries/legacy": {
            "get": {"tags": ["Summaries"], "summary": "Get legacy summary", "parameters": [{"name": "user", "in": "query", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}}
        },
        "/v1/budgets": {
            "put": {"tags": ["Budgets"], "summary": "Set budget", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "500": {"description": "Internal Server Error"}}}
        },
        "/v1/budgets/snapshot": {
            "post": {"tags": ["Budgets"], "summary": "Create budget snapshot", "parameters": [{"name": "user", "in": "query", "required": true, "type": "string"}, {"name": "start", "in": "query", "type": "string"}, {"name": "end", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}}
        },
        "/v1/cache": {
            "delete": {"tags": ["Cache"], "summary": "Clear cache", "responses": {"204": {"description": "No Content"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
