package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Teacher Portal API",
        "description": "Class assignments, marks, attendance, timetable and reports for teaching staff",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {"name": "Auth", "description": "Login and token lifecycle"},
        {"name": "Dashboard", "description": "Teacher landing summary"},
        {"name": "Assignments", "description": "Teaching assignments and rosters"},
        {"name": "Exams", "description": "Exam sessions and mark entry"},
        {"name": "Attendance", "description": "Per-date registers"},
        {"name": "Timetable", "description": "Weekly grid and substitutes"},
        {"name": "Reports", "description": "Per-subject performance reports"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate with email and password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token pair and profile"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange a refresh token for a new pair",
                "responses": {
                    "200": {"description": "New token pair"},
                    "401": {"description": "Unknown or expired token"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke every refresh token of the current user",
                "security": [{"BearerAuth": []}],
                "responses": {"204": {"description": "Logged out"}}
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Teacher dashboard",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Current term summary"}}
            }
        },
        "/assignments": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List the teacher's class assignments",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "yearSem", "in": "query", "type": "string"},
                    {"name": "year", "in": "query", "type": "string"},
                    {"name": "semester", "in": "query", "type": "integer"},
                    {"name": "page", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "Paginated class list"}}
            }
        },
        "/assignments/{id}/students": {
            "get": {
                "tags": ["Assignments"],
                "summary": "Per-student marks and attendance totals",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Enrolled students with their totals"},
                    "403": {"description": "Assignment belongs to another teacher"}
                }
            }
        },
        "/assignments/{id}/exams": {
            "get": {
                "tags": ["Exams"],
                "summary": "List an assignment's exam sessions",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Exam sessions"}}
            },
            "post": {
                "tags": ["Exams"],
                "summary": "Open an exam session",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Session already existed"},
                    "201": {"description": "Session opened"}
                }
            }
        },
        "/exams/{id}/roster": {
            "get": {
                "tags": ["Exams"],
                "summary": "Mark entry sheet",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "Roster with saved scores"}}
            }
        },
        "/exams/{id}/confirm": {
            "post": {
                "tags": ["Exams"],
                "summary": "Save marks and finalize the session",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Marks saved"},
                    "400": {"description": "Score out of range or student not enrolled"}
                }
            }
        },
        "/assignments/{id}/attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "List attendance sessions",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Sessions with stats"}}
            },
            "post": {
                "tags": ["Attendance"],
                "summary": "Open the register for a date",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Register already existed"},
                    "201": {"description": "Register opened"}
                }
            }
        },
        "/attendance/{id}": {
            "get": {
                "tags": ["Attendance"],
                "summary": "One session with stats",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Session"}}
            }
        },
        "/attendance/{id}/records": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Register sheet",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Per-student flags"}}
            }
        },
        "/attendance/{id}/confirm": {
            "post": {
                "tags": ["Attendance"],
                "summary": "Save the register and mark the session taken",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Register saved"}}
            }
        },
        "/timetable": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Weekly grid",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "academicYear", "in": "query", "type": "integer"},
                    {"name": "semester", "in": "query", "type": "integer"},
                    {"name": "weekStart", "in": "query", "type": "string"},
                    {"name": "startDate", "in": "query", "type": "string", "description": "Overrides the semester date range together with endDate"},
                    {"name": "endDate", "in": "query", "type": "string", "description": "Overrides the semester date range together with startDate"}
                ],
                "responses": {"200": {"description": "Grid with break and lunch rows, clipped to the semester"}}
            }
        },
        "/slots/{id}/substitutes": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Cover candidates for a slot",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Teachers of the slot's class split into free, busy and unassigned"}}
            }
        },
        "/assignments/{id}/report": {
            "get": {
                "tags": ["Reports"],
                "summary": "Per-subject performance report",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Rows with attendance, CIE and support flags"}}
            }
        },
        "/assignments/{id}/report/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download the report as csv or pdf",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {"200": {"description": "File download"}}
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
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
                "pagination": {"$ref": "#/definitions/Pagination"},
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
