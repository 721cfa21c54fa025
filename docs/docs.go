// Package docs serves the OpenAPI description of the CareerFit API.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Admin login",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/model.LoginRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.LoginResponse"}}}
            }
        },
        "/assessments": {
            "get": {
                "tags": ["assessments"],
                "summary": "List published assessments",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/assessments/{id}": {
            "get": {
                "tags": ["assessments"],
                "summary": "Get a published assessment",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/assessments/{id}/attempts": {
            "post": {
                "tags": ["attempts"],
                "summary": "Start an attempt",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}
            }
        },
        "/score": {
            "post": {
                "tags": ["scoring"],
                "summary": "Score a full answer set without storing it",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/model.SectionAnswers"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AssessmentResult"}},
                    "400": {"description": "Bad Request"},
                    "413": {"description": "Request Entity Too Large"}
                }
            }
        },
        "/attempts/{sessionId}/sections/{section}/answers/{questionId}": {
            "put": {
                "tags": ["attempts"],
                "summary": "Record or overwrite one answer",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "sessionId", "type": "string", "required": true},
                    {"in": "path", "name": "section", "type": "string", "required": true, "enum": ["psychometric", "technical", "wiscar"]},
                    {"in": "path", "name": "questionId", "type": "string", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}, "409": {"description": "Section completed or attempt finished"}}
            }
        },
        "/attempts/{sessionId}/sections/{section}/complete": {
            "post": {
                "tags": ["attempts"],
                "summary": "Complete a section and score it",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/attempts/{sessionId}/finish": {
            "post": {
                "tags": ["attempts"],
                "summary": "Finish an attempt and score it",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AssessmentResult"}}}
            }
        },
        "/attempts/{sessionId}/result": {
            "get": {
                "tags": ["results"],
                "summary": "Get the stored result of an attempt",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AssessmentResult"}}, "404": {"description": "Not Found"}}
            }
        },
        "/attempts/{sessionId}/standing": {
            "get": {
                "tags": ["results"],
                "summary": "Rank and percentile of an attempt within its assessment",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Standing"}}}
            }
        }
    },
    "definitions": {
        "model.LoginRequest": {
            "type": "object",
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "model.LoginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "adminId": {"type": "string"}}
        },
        "model.SectionAnswers": {
            "type": "object",
            "properties": {
                "psychometric": {"type": "object", "additionalProperties": {}},
                "technical": {"type": "object", "additionalProperties": {}},
                "wiscar": {"type": "object", "additionalProperties": {}}
            }
        },
        "model.SectionScore": {
            "type": "object",
            "properties": {
                "overall": {"type": "integer"},
                "categories": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "model.Standing": {
            "type": "object",
            "properties": {"rank": {"type": "integer"}, "total": {"type": "integer"}, "percentile": {"type": "integer"}}
        },
        "model.AssessmentResult": {
            "type": "object",
            "properties": {
                "assessmentId": {"type": "string"},
                "sessionId": {"type": "string"},
                "overallScore": {"type": "integer"},
                "confidenceScore": {"type": "number"},
                "recommendation": {"type": "string", "enum": ["YES", "MAYBE", "NO"]},
                "recommendationReason": {"type": "string"},
                "psychometric": {"$ref": "#/definitions/model.SectionScore"},
                "technical": {"$ref": "#/definitions/model.SectionScore"},
                "wiscar": {"$ref": "#/definitions/model.SectionScore"},
                "careerMatches": {"type": "array", "items": {"type": "object"}},
                "skillGaps": {"type": "array", "items": {"type": "object"}},
                "improvementAreas": {"type": "array", "items": {"type": "object"}},
                "learningPath": {"type": "array", "items": {"type": "object"}},
                "completedAt": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "CareerFit Assessment API",
	Description:      "Career-fit assessments: catalog, attempts, scoring and results",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
