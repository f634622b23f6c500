// Package swagger holds the OpenAPI document served at /swagger/*any.
// Regenerate it with `go generate ./cmd/api` after changing handler
// annotations.
package swagger

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
        "/api/calculations": {
            "post": {
                "description": "Computes import duty, excise, VAT, IDF and RDL for a vehicle, motorcycle or cargo item",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "calculations"
                ],
                "summary": "Calculate import taxes",
                "parameters": [
                    {
                        "description": "Calculator form",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.CalculateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.CalculationResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/api/hs-codes": {
            "get": {
                "description": "Paginated HS classification catalog in display order; the last entry is the fallback",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "hs-codes"
                ],
                "summary": "List HS codes",
                "parameters": [
                    {
                        "type": "integer",
                        "default": 1,
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "description": "Items per page",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.HSCodeListResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/hs-codes/{code}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "hs-codes"
                ],
                "summary": "Get HS code",
                "parameters": [
                    {
                        "type": "string",
                        "description": "HS code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.HSCodeResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/api/rates": {
            "get": {
                "description": "Returns the statutory rates and depreciation schedule used by the calculator",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "calculations"
                ],
                "summary": "Active rate table",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/handler.RatesResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/ws": {
            "get": {
                "description": "Upgrades to a websocket. Each text frame is a websocket.LiveRequest and is answered by one websocket.LiveReply",
                "tags": [
                    "calculations"
                ],
                "summary": "Live calculator",
                "responses": {
                    "101": {
                        "description": "Switching Protocols",
                        "schema": {
                            "$ref": "#/definitions/websocket.LiveReply"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "calculator.LineItem": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "display": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "total": {
                    "type": "boolean"
                }
            }
        },
        "calculator.Result": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "customs_value": {
                    "type": "number"
                },
                "excise": {
                    "type": "number"
                },
                "excise_base": {
                    "type": "number"
                },
                "excise_percent": {
                    "type": "string"
                },
                "excise_rate": {
                    "type": "number"
                },
                "idf": {
                    "type": "number"
                },
                "import_duty": {
                    "type": "number"
                },
                "import_duty_percent": {
                    "type": "string"
                },
                "import_duty_rate": {
                    "type": "number"
                },
                "rdl": {
                    "type": "number"
                },
                "total_landed": {
                    "type": "number"
                },
                "total_taxes": {
                    "type": "number"
                },
                "vat": {
                    "type": "number"
                },
                "vat_base": {
                    "type": "number"
                }
            }
        },
        "handler.RatesResponse": {
            "type": "object",
            "properties": {
                "assessment_year": {
                    "type": "integer"
                },
                "rates": {
                    "$ref": "#/definitions/tariff.RateTable"
                }
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {
                    "type": "string"
                },
                "fields": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "status": {
                    "type": "string"
                },
                "status_code": {
                    "type": "integer"
                }
            }
        },
        "service.CalculateRequest": {
            "type": "object",
            "required": [
                "category"
            ],
            "properties": {
                "category": {
                    "type": "string"
                },
                "cif": {
                    "type": "number"
                },
                "crsp": {
                    "type": "number"
                },
                "electric": {
                    "type": "boolean"
                },
                "engine_cc": {
                    "type": "integer"
                },
                "hs_code": {
                    "type": "string"
                },
                "manual_duty_percent": {
                    "type": "number"
                },
                "shipping": {
                    "type": "number"
                },
                "year": {
                    "type": "integer"
                }
            }
        },
        "service.CalculationResponse": {
            "type": "object",
            "properties": {
                "assessment_year": {
                    "type": "integer"
                },
                "category": {
                    "type": "string"
                },
                "currency": {
                    "type": "string"
                },
                "hs_code": {
                    "$ref": "#/definitions/service.HSCodeResponse"
                },
                "id": {
                    "type": "string"
                },
                "line_items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/calculator.LineItem"
                    }
                },
                "result": {
                    "$ref": "#/definitions/calculator.Result"
                },
                "valuation": {
                    "$ref": "#/definitions/service.VehicleValuation"
                }
            }
        },
        "service.HSCodeListResponse": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.HSCodeResponse"
                    }
                },
                "limit": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            }
        },
        "service.HSCodeResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "duty_percent": {
                    "type": "number"
                },
                "excise_by_engine": {
                    "type": "boolean"
                },
                "excise_percent": {
                    "type": "number"
                },
                "manual_duty": {
                    "type": "boolean"
                }
            }
        },
        "service.VehicleValuation": {
            "type": "object",
            "properties": {
                "age": {
                    "type": "integer"
                },
                "depreciated_value": {
                    "type": "number"
                },
                "depreciation_percent": {
                    "type": "number"
                }
            }
        },
        "tariff.MotorcycleExcise": {
            "type": "object",
            "properties": {
                "above_500": {
                    "type": "number"
                },
                "up_to_500": {
                    "type": "number"
                }
            }
        },
        "tariff.RateTable": {
            "type": "object",
            "properties": {
                "depreciation": {
                    "type": "array",
                    "items": {
                        "type": "number"
                    }
                },
                "idf": {
                    "type": "number"
                },
                "motorcycle_duty": {
                    "type": "number"
                },
                "motorcycle_excise": {
                    "$ref": "#/definitions/tariff.MotorcycleExcise"
                },
                "rdl": {
                    "type": "number"
                },
                "vat": {
                    "type": "number"
                },
                "vehicle_duty": {
                    "type": "number"
                },
                "vehicle_excise": {
                    "$ref": "#/definitions/tariff.VehicleExcise"
                }
            }
        },
        "tariff.VehicleExcise": {
            "type": "object",
            "properties": {
                "above_3000": {
                    "type": "number"
                },
                "electric": {
                    "type": "number"
                },
                "from_1501_to_3000": {
                    "type": "number"
                },
                "up_to_1500": {
                    "type": "number"
                }
            }
        },
        "websocket.LiveReply": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/service.CalculationResponse"
                },
                "error": {
                    "type": "string"
                },
                "fields": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "request_id": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Kenya Import Duty Calculator API",
	Description:      "Computes import duty, excise, VAT, IDF and RDL for vehicles, motorcycles and general cargo.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
