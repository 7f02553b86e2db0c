// Package docs holds the OpenAPI document served on /swagger.
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
		"/api/register": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"account"
				],
				"summary": "Register a new user",
				"parameters": [
					{
						"description": "Account details",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.registerRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.successResponse"
						}
					},
					"400": {
						"description": "missing field or user already exists",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/login": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"account"
				],
				"summary": "Login",
				"parameters": [
					{
						"description": "Login credentials",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.loginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.loginResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/saveTheme": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"theme"
				],
				"summary": "Save theme",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Theme",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.saveThemeRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.successResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/getTheme": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"theme"
				],
				"summary": "Get theme",
				"description": "Returns \"dark\" when no theme was saved. The username \"__ping__\" answers without touching storage.",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Owner",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.getThemeRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.themeResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/addLawsuit": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"lawsuits"
				],
				"summary": "Add a lawsuit",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Lawsuit",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.addLawsuitRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.successResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/getLawsuits": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"lawsuits"
				],
				"summary": "List lawsuits",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Owner",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.ownerRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.lawsuitsResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/updateLawsuit": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"lawsuits"
				],
				"summary": "Update lawsuit status",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Status change",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.updateLawsuitRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.successResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/deleteLawsuit": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"lawsuits"
				],
				"summary": "Delete a lawsuit",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Lawsuit to delete",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.deleteLawsuitRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.successResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/addUserDoc": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"userdocs"
				],
				"summary": "Add a document link",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Document link",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.addUserDocRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.successResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/getUserDocs": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"userdocs"
				],
				"summary": "List document links",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Owner",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.ownerRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.linksResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/health": {
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
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.healthResponse"
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Liveness probe",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.healthResponse"
						}
					}
				}
			}
		},
		"/health/ready": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Readiness probe",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.readinessResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/handler.readinessResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"handler.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string",
					"example": "missing required field"
				},
				"message": {
					"type": "string",
					"example": "username is required"
				},
				"request_id": {
					"type": "string"
				},
				"success": {
					"type": "boolean",
					"example": false
				}
			}
		},
		"handler.successResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean",
					"example": true
				}
			}
		},
		"handler.loginResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean",
					"example": true
				},
				"token": {
					"type": "string"
				}
			}
		},
		"handler.themeResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean",
					"example": true
				},
				"theme": {
					"type": "string",
					"example": "dark"
				}
			}
		},
		"handler.registerRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"vk": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"password"
			]
		},
		"handler.loginRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"password"
			]
		},
		"handler.saveThemeRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"theme": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"theme"
			]
		},
		"handler.getThemeRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				}
			},
			"required": [
				"username"
			]
		},
		"handler.ownerRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				}
			},
			"required": [
				"username"
			]
		},
		"handler.addLawsuitRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"url": {
					"type": "string"
				},
				"plaintiff": {
					"type": "string"
				},
				"defendant": {
					"type": "string"
				},
				"note": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"created": {
					"type": "integer",
					"description": "Created is epoch milliseconds; the server time is used when omitted."
				}
			},
			"required": [
				"username"
			]
		},
		"handler.updateLawsuitRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"id",
				"status"
			]
		},
		"handler.deleteLawsuitRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"id": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"id"
			]
		},
		"handler.lawsuitResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"url": {
					"type": "string"
				},
				"plaintiff": {
					"type": "string"
				},
				"defendant": {
					"type": "string"
				},
				"note": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"created": {
					"type": "integer"
				}
			}
		},
		"handler.lawsuitsResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean",
					"example": true
				},
				"lawsuits": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/handler.lawsuitResponse"
					}
				}
			}
		},
		"handler.addUserDocRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"url": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"url"
			]
		},
		"handler.linkResponse": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"url": {
					"type": "string"
				}
			}
		},
		"handler.linksResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean",
					"example": true
				},
				"links": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/handler.linkResponse"
					}
				}
			}
		},
		"handler.healthResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "ok"
				},
				"timestamp": {
					"type": "integer",
					"example": 1700000000000
				}
			}
		},
		"handler.dependencyStatus": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"error": {
					"type": "string"
				}
			}
		},
		"handler.readinessResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"dependencies": {
					"type": "object",
					"additionalProperties": {
						"$ref": "#/definitions/handler.dependencyStatus"
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and the JWT returned by login.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Lawsuit Tracker API",
	Description:      "Accounts, themes, lawsuits and document links for the lawsuit tracker front end.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
