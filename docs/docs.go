// Package docs registers the OpenAPI document served at /swagger/.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Counselor login",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/v1/assessments": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assessments"],
                "summary": "Start an assessment",
                "description": "Opens a session and returns its token and the first question",
                "parameters": [
                    {"description": "Student and profile", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.StartRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.StartResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/v1/assessments/{id}/question": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Assessments"],
                "summary": "Current question",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Progress"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/v1/assessments/{id}/answers": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assessments"],
                "summary": "Submit an answer",
                "description": "Records an answer and returns the next question. Shape errors are 422.",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"description": "Answer", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.AnswerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Progress"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/v1/assessments/{id}/undo": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Assessments"],
                "summary": "Undo the last answer",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Progress"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/v1/assessments/{id}/finish": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Assessments"],
                "summary": "Finish and get recommendations",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AssessmentResult"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/v1/assessments/{id}/result": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Assessments"],
                "summary": "Stored result",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AssessmentResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/v1/courses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Courses"],
                "summary": "List courses",
                "parameters": [
                    {"type": "string", "description": "class_10 or class_12", "name": "classLevel", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Course"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/v1/courses/trending": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Courses"],
                "summary": "Most often top-recommended courses",
                "parameters": [
                    {"type": "integer", "description": "Max entries (default 10)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/service.TrendingCourse"}}}
                }
            }
        },
        "/v1/courses/{courseId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Courses"],
                "summary": "Get a course",
                "parameters": [
                    {"type": "string", "description": "Course ID", "name": "courseId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Course"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/v1/students/{studentId}/results": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Counselor"],
                "summary": "A student's results, newest first",
                "parameters": [
                    {"type": "string", "description": "Student ID", "name": "studentId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.AssessmentResult"}}}
                }
            }
        },
        "/v1/students/{studentId}/sessions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Counselor"],
                "summary": "A student's sessions, including abandoned ones",
                "parameters": [
                    {"type": "string", "description": "Student ID", "name": "studentId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.AssessmentSession"}}}
                }
            }
        },
        "/v1/stats/questions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Counselor"],
                "summary": "Per-question answer, undo and rejection tallies",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/cache.QuestionStats"}}}
                }
            }
        },
        "/v1/stats/cohort": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Counselor"],
                "summary": "Average interest profile and strongest-dimension counts across finished assessments",
                "parameters": [
                    {"type": "string", "description": "Only results from this class level (class_10, class_12)", "name": "classLevel", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.CohortSummary"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "model.CohortSummary": {
            "type": "object",
            "properties": {
                "classLevel": {"type": "string"},
                "results": {"type": "integer"},
                "averageScores": {"$ref": "#/definitions/model.ScoreVector"},
                "topDimensionCounts": {"type": "array", "items": {"$ref": "#/definitions/model.DimensionCount"}},
                "latestCompletedAt": {"type": "string"}
            }
        },
        "model.DimensionCount": {
            "type": "object",
            "properties": {
                "dimension": {"type": "string"},
                "count": {"type": "integer"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/validation.FieldError"}}
            }
        },
        "validation.FieldError": {
            "type": "object",
            "properties": {
                "namespace": {"type": "string"},
                "field": {"type": "string"},
                "tag": {"type": "string"},
                "param": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "model.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "model.LoginResponse": {
            "type": "object",
            "properties": {
                "counselorId": {"type": "string"},
                "token": {"type": "string"}
            }
        },
        "model.StudentProfile": {
            "type": "object",
            "required": ["classLevel"],
            "properties": {
                "classLevel": {"type": "string", "enum": ["class_10", "class_12"]},
                "stream": {"type": "string", "enum": ["science", "commerce", "arts", "vocational"]},
                "marks": {"type": "number", "minimum": 0, "maximum": 100}
            }
        },
        "model.StartRequest": {
            "type": "object",
            "required": ["profile", "studentId"],
            "properties": {
                "studentId": {"type": "string", "maxLength": 128},
                "profile": {"$ref": "#/definitions/model.StudentProfile"}
            }
        },
        "model.StartResponse": {
            "type": "object",
            "properties": {
                "sessionId": {"type": "string"},
                "token": {"type": "string"},
                "progress": {"$ref": "#/definitions/model.Progress"}
            }
        },
        "model.AnswerRequest": {
            "type": "object",
            "required": ["answer", "questionId"],
            "properties": {
                "questionId": {"type": "string"},
                "answer": {"description": "Raw string form or the JSON value itself"}
            }
        },
        "model.Question": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "text": {"type": "string"},
                "kind": {"type": "string", "enum": ["single_choice", "multi_select", "scenario", "slider", "skill_grid", "ranking"]},
                "partition": {"type": "string"},
                "options": {"type": "array", "items": {"type": "object"}},
                "min": {"type": "integer"},
                "max": {"type": "integer"},
                "skills": {"type": "array", "items": {"type": "object"}}
            }
        },
        "model.ScoreVector": {
            "type": "object",
            "properties": {
                "realistic": {"type": "number"},
                "investigative": {"type": "number"},
                "artistic": {"type": "number"},
                "social": {"type": "number"},
                "enterprising": {"type": "number"},
                "conventional": {"type": "number"}
            }
        },
        "model.Progress": {
            "type": "object",
            "properties": {
                "sessionId": {"type": "string"},
                "status": {"type": "string", "enum": ["fresh", "in_progress", "complete"]},
                "answered": {"type": "integer"},
                "cap": {"type": "integer"},
                "next": {"$ref": "#/definitions/model.Question"},
                "scores": {"$ref": "#/definitions/model.ScoreVector"}
            }
        },
        "model.Recommendation": {
            "type": "object",
            "properties": {
                "courseId": {"type": "string"},
                "name": {"type": "string"},
                "stream": {"type": "string"},
                "score": {"type": "number"},
                "reasons": {"type": "array", "items": {"type": "string"}}
            }
        },
        "model.AssessmentResult": {
            "type": "object",
            "properties": {
                "sessionId": {"type": "string"},
                "studentId": {"type": "string"},
                "profile": {"$ref": "#/definitions/model.StudentProfile"},
                "catalogVersion": {"type": "string"},
                "scores": {"$ref": "#/definitions/model.ScoreVector"},
                "topDimensions": {"type": "array", "items": {"type": "string"}},
                "recommendations": {"type": "array", "items": {"$ref": "#/definitions/model.Recommendation"}},
                "answerCount": {"type": "integer"},
                "answers": {"type": "object", "additionalProperties": {"type": "string"}},
                "completedAt": {"type": "string"}
            }
        },
        "model.AssessmentSession": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "studentId": {"type": "string"},
                "profile": {"$ref": "#/definitions/model.StudentProfile"},
                "catalogVersion": {"type": "string"},
                "status": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "completedAt": {"type": "string"}
            }
        },
        "model.Course": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "fullName": {"type": "string"},
                "stream": {"type": "string"},
                "duration": {"type": "string"},
                "eligibility": {"type": "string"},
                "entranceExams": {"type": "array", "items": {"type": "string"}},
                "careers": {"type": "array", "items": {"type": "string"}},
                "classLevels": {"type": "array", "items": {"type": "string"}},
                "minMarks": {"type": "number"}
            }
        },
        "service.TrendingCourse": {
            "type": "object",
            "properties": {
                "courseId": {"type": "string"},
                "name": {"type": "string"},
                "stream": {"type": "string"},
                "count": {"type": "integer"},
                "rank": {"type": "integer"}
            }
        },
        "cache.QuestionStats": {
            "type": "object",
            "properties": {
                "questionId": {"type": "string"},
                "answered": {"type": "integer"},
                "reverted": {"type": "integer"},
                "invalid": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Career Compass API",
	Description:      "Adaptive RIASEC interest assessment with explained course recommendations",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
