package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Student Management API",
        "description": "Students, courses, enrollments and grades",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student records and lifecycle"},
        {"name": "Courses", "description": "Course catalogue"},
        {"name": "Enrollments", "description": "Student registrations in course offerings"},
        {"name": "Grades", "description": "Grades recorded against enrollments"}
    ],
    "parameters": {
        "id": {"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"},
        "page": {"name": "page", "in": "query", "type": "integer", "minimum": 0},
        "size": {"name": "size", "in": "query", "type": "integer", "minimum": 1},
        "sort": {"name": "sort", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "field,asc|desc"}
    },
    "paths": {
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "Search students",
                "parameters": [
                    {"name": "q", "in": "query", "type": "string", "description": "Matches first name, last name or email"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"$ref": "#/parameters/page"},
                    {"$ref": "#/parameters/size"},
                    {"$ref": "#/parameters/sort"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PagedEnvelope"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Email already in use", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update student",
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Email already in use", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student without enrollments",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "400": {"description": "Student has enrollments", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/students/{id}/status": {
            "patch": {
                "tags": ["Students"],
                "summary": "Change student status",
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "status", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Unknown status", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/students/{id}/transcript": {
            "get": {
                "tags": ["Students"],
                "summary": "Download transcript",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Transcript file", "schema": {"type": "file"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "Search courses",
                "parameters": [
                    {"name": "q", "in": "query", "type": "string", "description": "Matches code or title"},
                    {"name": "active", "in": "query", "type": "boolean"},
                    {"$ref": "#/parameters/page"},
                    {"$ref": "#/parameters/size"},
                    {"$ref": "#/parameters/sort"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PagedEnvelope"}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "409": {"description": "Course code already in use", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get course",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "put": {
                "tags": ["Courses"],
                "summary": "Update course",
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "409": {"description": "Course code already in use", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete course without enrollments",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "400": {"description": "Course has enrollments", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/courses/{id}/active": {
            "patch": {
                "tags": ["Courses"],
                "summary": "Retire or reinstate course",
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "active", "in": "query", "required": true, "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/enrollments": {
            "get": {
                "tags": ["Enrollments"],
                "summary": "Search enrollments",
                "parameters": [
                    {"name": "studentId", "in": "query", "type": "string"},
                    {"name": "courseId", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "term", "in": "query", "type": "string"},
                    {"$ref": "#/parameters/page"},
                    {"$ref": "#/parameters/size"},
                    {"$ref": "#/parameters/sort"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PagedEnvelope"}}
                }
            },
            "post": {
                "tags": ["Enrollments"],
                "summary": "Enroll student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Student or course not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Already enrolled in offering", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/enrollments/{id}": {
            "get": {
                "tags": ["Enrollments"],
                "summary": "Get enrollment",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "put": {
                "tags": ["Enrollments"],
                "summary": "Update enrollment",
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollmentUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "409": {"description": "Already enrolled in offering", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/enrollments/{id}/status": {
            "patch": {
                "tags": ["Enrollments"],
                "summary": "Change enrollment status",
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "status", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/enrollments/{id}/grades/latest": {
            "get": {
                "tags": ["Grades"],
                "summary": "Latest grade of enrollment",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "No grade recorded", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/grades": {
            "get": {
                "tags": ["Grades"],
                "summary": "Search grades",
                "parameters": [
                    {"name": "enrollmentId", "in": "query", "type": "string"},
                    {"name": "letter", "in": "query", "type": "string"},
                    {"$ref": "#/parameters/page"},
                    {"$ref": "#/parameters/size"},
                    {"$ref": "#/parameters/sort"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PagedEnvelope"}}
                }
            },
            "post": {
                "tags": ["Grades"],
                "summary": "Record grade",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GradeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Enrollment not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/grades/{id}": {
            "get": {
                "tags": ["Grades"],
                "summary": "Get grade",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "put": {
                "tags": ["Grades"],
                "summary": "Update grade",
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GradeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "StudentRequest": {
            "type": "object",
            "required": ["firstName", "lastName", "email", "gender", "birthDate"],
            "properties": {
                "firstName": {"type": "string", "maxLength": 100},
                "lastName": {"type": "string", "maxLength": 100},
                "email": {"type": "string", "format": "email", "maxLength": 320},
                "gender": {"type": "string", "enum": ["MALE", "FEMALE", "OTHER"]},
                "birthDate": {"type": "string", "format": "date"},
                "status": {"type": "string", "enum": ["APPLIED", "ADMITTED", "ENROLLED", "ON_LEAVE", "SUSPENDED", "WITHDRAWN", "GRADUATED", "INACTIVE"]}
            }
        },
        "CourseRequest": {
            "type": "object",
            "required": ["code", "title", "credits"],
            "properties": {
                "code": {"type": "string", "maxLength": 20},
                "title": {"type": "string", "maxLength": 200},
                "description": {"type": "string", "maxLength": 2000},
                "credits": {"type": "integer", "minimum": 0, "maximum": 30},
                "active": {"type": "boolean"}
            }
        },
        "EnrollmentRequest": {
            "type": "object",
            "required": ["studentId", "courseId", "term", "section"],
            "properties": {
                "studentId": {"type": "string", "format": "uuid"},
                "courseId": {"type": "string", "format": "uuid"},
                "term": {"type": "string", "maxLength": 20},
                "section": {"type": "string", "maxLength": 10},
                "status": {"type": "string", "enum": ["REGISTERED", "ENROLLED", "WAITLISTED", "DROPPED", "WITHDRAWN", "COMPLETED", "FAILED", "INCOMPLETE", "CANCELLED"]}
            }
        },
        "EnrollmentUpdateRequest": {
            "type": "object",
            "required": ["term", "section", "status"],
            "properties": {
                "term": {"type": "string", "maxLength": 20},
                "section": {"type": "string", "maxLength": 10},
                "status": {"type": "string"}
            }
        },
        "GradeRequest": {
            "type": "object",
            "required": ["letter", "points"],
            "properties": {
                "enrollmentId": {"type": "string", "format": "uuid"},
                "letter": {"type": "string", "maxLength": 2},
                "points": {"type": "number", "minimum": 0, "maximum": 6, "multipleOf": 0.01},
                "gradedAt": {"type": "string", "format": "date-time"},
                "notes": {"type": "string", "maxLength": 2000}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "size": {"type": "integer"},
                "totalElements": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "first": {"type": "boolean"},
                "last": {"type": "boolean"},
                "sort": {"type": "array", "items": {"type": "string"}}
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"}
            }
        },
        "PagedEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"type": "object"}},
                "pagination": {"$ref": "#/definitions/Pagination"}
            }
        },
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "status": {"type": "integer"},
                        "path": {"type": "string"},
                        "timestamp": {"type": "string", "format": "date-time"}
                    }
                }
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
