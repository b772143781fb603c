// Package docs registers the OpenAPI document served at /swagger/*any.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"termsOfService": "http://swagger.io/terms/",
		"contact": {
			"name": "API Support",
			"url": "http://www.swagger.io/support",
			"email": "support@swagger.io"
		},
		"license": {
			"name": "Apache 2.0",
			"url": "http://www.apache.org/licenses/LICENSE-2.0.html"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/ping": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Liveness probe",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/orders": {
			"post": {
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"orders"
				],
				"summary": "Create the gateway order for a platform order",
				"parameters": [
					{
						"description": "Platform order",
						"name": "order",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.CreateOrderRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/response.OrderDetailsResponse"
						}
					},
					"400": {
						"description": "Invalid request or payment failed",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"409": {
						"description": "Order already exists",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/orders/{code}": {
			"get": {
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"orders"
				],
				"summary": "Get a platform order and its gateway order",
				"parameters": [
					{
						"type": "string",
						"description": "Platform order code",
						"name": "code",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.OrderDetailsResponse"
						}
					},
					"404": {
						"description": "Order not found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/orders/{code}/cancel": {
			"post": {
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"orders"
				],
				"summary": "Cancel every charge of the order at the gateway",
				"parameters": [
					{
						"type": "string",
						"description": "Platform order code",
						"name": "code",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.CancelOrderResponse"
						}
					},
					"404": {
						"description": "Order not found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"502": {
						"description": "Payment provider unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/orders/{code}/sync": {
			"post": {
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"orders"
				],
				"summary": "Rewrite platform totals and status from the local charges",
				"parameters": [
					{
						"type": "string",
						"description": "Platform order code",
						"name": "code",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.OrderDetailsResponse"
						}
					},
					"404": {
						"description": "Order not found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"pkg.HTTPError": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"kind": {
					"type": "string"
				}
			}
		},
		"request.CustomerRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"document": {
					"type": "string"
				},
				"type": {
					"type": "string"
				}
			},
			"required": [
				"name",
				"email"
			]
		},
		"request.PaymentRequest": {
			"type": "object",
			"properties": {
				"method": {
					"type": "string"
				},
				"amount": {
					"type": "string",
					"example": "100.00"
				},
				"installments": {
					"type": "integer"
				},
				"card_token": {
					"type": "string"
				},
				"card_id": {
					"type": "string"
				},
				"brand": {
					"type": "string"
				},
				"save_on_success": {
					"type": "boolean"
				}
			},
			"required": [
				"method",
				"amount"
			]
		},
		"request.ItemRequest": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"amount": {
					"type": "string",
					"example": "50.00"
				}
			},
			"required": [
				"code",
				"quantity",
				"amount"
			]
		},
		"request.ShippingRequest": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "string",
					"example": "10.00"
				},
				"description": {
					"type": "string"
				},
				"recipient_name": {
					"type": "string"
				},
				"address": {
					"type": "string"
				}
			}
		},
		"request.CreateOrderRequest": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"grand_total": {
					"type": "string",
					"example": "100.00"
				},
				"payment_method": {
					"type": "string"
				},
				"customer": {
					"$ref": "#/definitions/request.CustomerRequest"
				},
				"payments": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/request.PaymentRequest"
					}
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/request.ItemRequest"
					}
				},
				"shipping": {
					"$ref": "#/definitions/request.ShippingRequest"
				}
			},
			"required": [
				"code",
				"grand_total"
			]
		},
		"response.ChargeResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"payment_method": {
					"type": "string"
				},
				"amount": {
					"type": "string"
				},
				"paid_amount": {
					"type": "string"
				},
				"canceled_amount": {
					"type": "string"
				},
				"refunded_amount": {
					"type": "string"
				},
				"boleto_url": {
					"type": "string"
				},
				"card_last_four": {
					"type": "string"
				}
			}
		},
		"response.OrderResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"code": {
					"type": "string"
				},
				"platform_id": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"charges": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/response.ChargeResponse"
					}
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"response.HistoryResponse": {
			"type": "object",
			"properties": {
				"comment": {
					"type": "string"
				},
				"customer_notified": {
					"type": "boolean"
				},
				"created_at": {
					"type": "string"
				}
			}
		},
		"response.PlatformOrderResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"gateway_id": {
					"type": "string"
				},
				"state": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"grand_total": {
					"type": "string"
				},
				"total_paid": {
					"type": "string"
				},
				"base_total_paid": {
					"type": "string"
				},
				"total_canceled": {
					"type": "string"
				},
				"base_total_canceled": {
					"type": "string"
				},
				"total_refunded": {
					"type": "string"
				},
				"base_total_refunded": {
					"type": "string"
				},
				"history": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/response.HistoryResponse"
					}
				}
			}
		},
		"response.OrderDetailsResponse": {
			"type": "object",
			"properties": {
				"order": {
					"$ref": "#/definitions/response.OrderResponse"
				},
				"platform_order": {
					"$ref": "#/definitions/response.PlatformOrderResponse"
				}
			}
		},
		"response.CancelOrderResponse": {
			"type": "object",
			"properties": {
				"canceled": {
					"type": "boolean"
				},
				"failures": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				},
				"platform_order": {
					"$ref": "#/definitions/response.PlatformOrderResponse"
				}
			}
		}
	},
	"securityDefinitions": {
		"Bearer": {
			"description": "Type \"Bearer\" followed by a space and JWT token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Payment Sync API",
	Description:      "Keeps platform orders, local orders and gateway charges reconciled.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
