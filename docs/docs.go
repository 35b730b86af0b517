// Package docs registers the OpenAPI document served under /swagger.
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
		"/v1/rooms": {
			"get": {
				"tags": [
					"Room"
				],
				"summary": "List rooms",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/rooms/statistics": {
			"get": {
				"tags": [
					"Room"
				],
				"summary": "Room statistics",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/rooms/{id}": {
			"get": {
				"tags": [
					"Room"
				],
				"summary": "Get room",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/rooms/{id}/quick-actions": {
			"get": {
				"tags": [
					"Room"
				],
				"summary": "Room quick actions",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/rooms/{id}/status": {
			"patch": {
				"tags": [
					"Room"
				],
				"summary": "Update room status",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/reservations": {
			"get": {
				"tags": [
					"Reservation"
				],
				"summary": "List reservations",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"tags": [
					"Reservation"
				],
				"summary": "Create reservation",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/reservations/{id}": {
			"get": {
				"tags": [
					"Reservation"
				],
				"summary": "Get reservation",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/reservations/{id}/status": {
			"patch": {
				"tags": [
					"Reservation"
				],
				"summary": "Update reservation status",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/reservations/{id}/check-in": {
			"post": {
				"tags": [
					"Reservation"
				],
				"summary": "Check in",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/reservations/{id}/cancel": {
			"post": {
				"tags": [
					"Reservation"
				],
				"summary": "Cancel reservation",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/inspections/catalog": {
			"get": {
				"tags": [
					"Inspection"
				],
				"summary": "Inspection catalog",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/inspections/{roomId}": {
			"post": {
				"tags": [
					"Inspection"
				],
				"summary": "Begin inspection",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"get": {
				"tags": [
					"Inspection"
				],
				"summary": "Get inspection draft",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/inspections/{roomId}/history": {
			"get": {
				"tags": [
					"Inspection"
				],
				"summary": "Inspection history",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/inspections/{roomId}/readiness": {
			"get": {
				"tags": [
					"Inspection"
				],
				"summary": "Checkout readiness",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/inspections/{roomId}/consumptions": {
			"post": {
				"tags": [
					"Inspection"
				],
				"summary": "Add consumption",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/inspections/{roomId}/consumptions/{lineId}": {
			"delete": {
				"tags": [
					"Inspection"
				],
				"summary": "Remove consumption",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/inspections/{roomId}/damages": {
			"post": {
				"tags": [
					"Inspection"
				],
				"summary": "Add damage",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/inspections/{roomId}/damages/{lineId}": {
			"delete": {
				"tags": [
					"Inspection"
				],
				"summary": "Remove damage",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/inspections/{roomId}/submit": {
			"post": {
				"tags": [
					"Inspection"
				],
				"summary": "Submit inspection",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/housekeeping/board": {
			"get": {
				"tags": [
					"Housekeeping"
				],
				"summary": "Housekeeping board",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/housekeeping/tasks": {
			"get": {
				"tags": [
					"Housekeeping"
				],
				"summary": "List tasks",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"tags": [
					"Housekeeping"
				],
				"summary": "Create task",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/housekeeping/tasks/{id}": {
			"get": {
				"tags": [
					"Housekeeping"
				],
				"summary": "Get task",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"patch": {
				"tags": [
					"Housekeeping"
				],
				"summary": "Advance task",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/housekeeping/staff": {
			"get": {
				"tags": [
					"Housekeeping"
				],
				"summary": "List staff",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"tags": [
					"Housekeeping"
				],
				"summary": "Add staff",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/housekeeping/staff/{id}": {
			"patch": {
				"tags": [
					"Housekeeping"
				],
				"summary": "Set staff active",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/checkout": {
			"get": {
				"tags": [
					"Checkout"
				],
				"summary": "Checkout state",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/checkout/records": {
			"get": {
				"tags": [
					"Checkout"
				],
				"summary": "Checkout records",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/checkout/select": {
			"post": {
				"tags": [
					"Checkout"
				],
				"summary": "Select reservation",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/checkout/summary": {
			"post": {
				"tags": [
					"Checkout"
				],
				"summary": "Generate summary",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/checkout/invoice": {
			"post": {
				"tags": [
					"Checkout"
				],
				"summary": "Generate invoice",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/checkout/payments": {
			"post": {
				"tags": [
					"Checkout"
				],
				"summary": "Record payment",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/checkout/complete": {
			"post": {
				"tags": [
					"Checkout"
				],
				"summary": "Complete checkout",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/checkout/cancel": {
			"post": {
				"tags": [
					"Checkout"
				],
				"summary": "Cancel checkout",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/guests": {
			"get": {
				"tags": [
					"Guest"
				],
				"summary": "List guests",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"tags": [
					"Guest"
				],
				"summary": "Create guest",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/guests/{id}": {
			"get": {
				"tags": [
					"Guest"
				],
				"summary": "Get guest",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/events": {
			"get": {
				"tags": [
					"Event"
				],
				"summary": "Event history",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Frontdesk API",
	Description:      "Room lifecycle, inspections, housekeeping and checkout for the front desk.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
