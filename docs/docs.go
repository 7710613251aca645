// Package docs registers the OpenAPI description served under /swagger.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.healthResponse"}}}
            }
        },
        "/invoices": {
            "get": {
                "description": "Newest first. An unknown status value is ignored.",
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "List invoices",
                "parameters": [
                    {"type": "string", "description": "draft, pending or paid", "name": "status", "in": "query"},
                    {"type": "string", "description": "Full-text search over client name, email, description and status", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.listResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}}
                }
            },
            "post": {
                "description": "Assigns a fresh invoice code and computes totals and the due date. Status defaults to pending.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Create invoice",
                "parameters": [
                    {"description": "Invoice contents", "name": "invoice", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.InvoicePayload"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/httpserver.dataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}}
                }
            }
        },
        "/invoices/preview": {
            "post": {
                "description": "Validates and normalizes a payload without storing it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Preview invoice",
                "parameters": [
                    {"description": "Invoice contents", "name": "invoice", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.InvoicePayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.dataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}}
                }
            }
        },
        "/invoices/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Get invoice",
                "parameters": [{"type": "string", "description": "Invoice store id (UUID)", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.dataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}}
                }
            },
            "put": {
                "description": "Replaces all user fields and recomputes derived ones. The invoice code never changes.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Update invoice",
                "parameters": [
                    {"type": "string", "description": "Invoice store id (UUID)", "name": "id", "in": "path", "required": true},
                    {"description": "Invoice contents", "name": "invoice", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.InvoicePayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.dataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Delete invoice",
                "parameters": [{"type": "string", "description": "Invoice store id (UUID)", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.dataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}}
                }
            }
        },
        "/invoices/{id}/status": {
            "patch": {
                "description": "Touches only status and updatedAt.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Update invoice status",
                "parameters": [
                    {"type": "string", "description": "Invoice store id (UUID)", "name": "id", "in": "path", "required": true},
                    {"description": "New status", "name": "status", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.StatusPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.dataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}}
                }
            }
        },
        "/invoices/{id}/pdf": {
            "get": {
                "produces": ["application/pdf"],
                "tags": ["invoices"],
                "summary": "Download invoice PDF",
                "parameters": [{"type": "string", "description": "Invoice store id (UUID)", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}}
                }
            }
        },
        "/users/preferences/theme": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get theme preference",
                "parameters": [{"type": "string", "description": "User id", "name": "X-User-Id", "in": "header", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.dataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update theme preference",
                "parameters": [
                    {"type": "string", "description": "User id", "name": "X-User-Id", "in": "header", "required": true},
                    {"description": "light or dark", "name": "theme", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.ThemePayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.dataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}}
                }
            }
        },
        "/users/profile-image": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get profile image",
                "parameters": [{"type": "string", "description": "User id", "name": "X-User-Id", "in": "header", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.dataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update profile image",
                "parameters": [
                    {"type": "string", "description": "User id", "name": "X-User-Id", "in": "header", "required": true},
                    {"description": "Data URL or link, at most 2 MiB", "name": "profileImage", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.ProfileImagePayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.dataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "httpserver.dataResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "data": {}}
        },
        "httpserver.listResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "count": {"type": "integer"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/domain.Invoice"}}
            }
        },
        "httpserver.errorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/validation.FieldError"}}
            }
        },
        "httpserver.healthResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "timestamp": {"type": "string"},
                "environment": {"type": "string"}
            }
        },
        "validation.FieldError": {
            "type": "object",
            "properties": {"field": {"type": "string"}, "formField": {"type": "string"}, "message": {"type": "string"}}
        },
        "validation.AddressPayload": {
            "type": "object",
            "properties": {
                "street": {"type": "string"}, "city": {"type": "string"},
                "postCode": {"type": "string"}, "country": {"type": "string"}
            }
        },
        "validation.ClientPayload": {
            "type": "object",
            "properties": {
                "clientName": {"type": "string"}, "clientEmail": {"type": "string"},
                "street": {"type": "string"}, "city": {"type": "string"},
                "postCode": {"type": "string"}, "country": {"type": "string"}
            }
        },
        "validation.ItemPayload": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "quantity": {"type": "number"}, "price": {"type": "number"}}
        },
        "validation.InvoicePayload": {
            "type": "object",
            "properties": {
                "billFrom": {"$ref": "#/definitions/validation.AddressPayload"},
                "billTo": {"$ref": "#/definitions/validation.ClientPayload"},
                "invoiceDate": {"type": "string", "example": "2024-01-31"},
                "paymentTerms": {"type": "integer", "enum": [1, 7, 14, 30]},
                "projectDescription": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/validation.ItemPayload"}},
                "status": {"type": "string", "enum": ["draft", "pending", "paid"]}
            }
        },
        "validation.StatusPayload": {
            "type": "object",
            "properties": {"status": {"type": "string", "enum": ["draft", "pending", "paid"]}}
        },
        "validation.ThemePayload": {
            "type": "object",
            "properties": {"theme": {"type": "string", "enum": ["light", "dark"]}}
        },
        "validation.ProfileImagePayload": {
            "type": "object",
            "properties": {"profileImage": {"type": "string"}}
        },
        "domain.Item": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "quantity": {"type": "number"}, "price": {"type": "number"}, "total": {"type": "number"}}
        },
        "domain.Invoice": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "invoiceId": {"type": "string", "example": "#RT3080"},
                "billFrom": {"$ref": "#/definitions/validation.AddressPayload"},
                "billTo": {"$ref": "#/definitions/validation.ClientPayload"},
                "invoiceDate": {"type": "string"},
                "paymentTerms": {"type": "integer"},
                "paymentDue": {"type": "string"},
                "projectDescription": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.Item"}},
                "totalAmount": {"type": "number"},
                "status": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Invoice API",
	Description:      "Create, edit, and track client invoices and per-user preferences.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
