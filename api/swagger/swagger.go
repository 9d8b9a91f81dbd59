package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "UTA Ingest API",
        "description": "Course offering ingestion, normalization and class metadata resolution",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Operator login"},
        {"name": "Import", "description": "Document ingestion and templates"},
        {"name": "Resolver", "description": "Class metadata inference"},
        {"name": "Export", "description": "Normalized data rendering"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate operator",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/import/timetable": {
            "post": {
                "tags": ["Import"],
                "summary": "Import a timetable document",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ImportRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "413": {"description": "Document too large", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Structural error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/import/template": {
            "get": {
                "tags": ["Import"],
                "summary": "Download the sample document",
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "CSV content"}
                }
            }
        },
        "/classes/resolve": {
            "post": {
                "tags": ["Resolver"],
                "summary": "Resolve class metadata",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResolveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/export/normalized": {
            "post": {
                "tags": ["Export"],
                "summary": "Export a normalized collection",
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExportRequest"}}
                ],
                "responses": {
                    "200": {"description": "CSV content"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "ImportRequest": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "variant": {"type": "string", "enum": ["plan-of-study", "complete-timetable"]},
                "disableMerge": {"type": "boolean"}
            },
            "required": ["content"]
        },
        "ResolveRequest": {
            "type": "object",
            "properties": {
                "classIds": {"type": "array", "items": {"type": "string"}},
                "allotments": {"type": "array", "items": {"type": "object"}},
                "courses": {"type": "array", "items": {"type": "object"}},
                "departments": {"type": "array", "items": {"type": "object"}},
                "semesters": {"type": "array", "items": {"type": "object"}},
                "semesterSchemas": {"type": "array", "items": {"type": "object"}}
            },
            "required": ["classIds"]
        },
        "ExportRequest": {
            "type": "object",
            "properties": {
                "dataset": {"type": "object"},
                "entity": {"type": "string", "enum": ["courses", "faculty", "rooms", "allotments"]}
            },
            "required": ["dataset", "entity"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
