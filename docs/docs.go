// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/main.go -o docs
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
        "/directions": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.DirectionResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "List study directions",
                "tags": [
                    "Directions"
                ],
                "produces": [
                    "application/json"
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DirectionResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid body or duplicate name",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Create a study direction",
                "description": "Names are unique; a duplicate name is rejected.",
                "tags": [
                    "Directions"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "direction",
                        "in": "body",
                        "required": true,
                        "description": "Direction name and description",
                        "schema": {
                            "$ref": "#/definitions/dto.DirectionCreateDTO"
                        }
                    }
                ]
            }
        },
        "/directions/{direction_id}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DirectionResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Get a study direction",
                "tags": [
                    "Directions"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "direction_id",
                        "in": "path",
                        "required": true,
                        "description": "Direction ID",
                        "type": "integer"
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Delete a study direction",
                "tags": [
                    "Directions"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "direction_id",
                        "in": "path",
                        "required": true,
                        "description": "Direction ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/exams": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.ExamResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "List exams, newest first",
                "tags": [
                    "Exams"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "direction_id",
                        "in": "query",
                        "required": false,
                        "description": "Filter by direction",
                        "type": "integer"
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "description": "in_progress or completed",
                        "type": "string"
                    }
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ExamDetailResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid body or no questions in the direction",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Direction not found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Start an exam",
                "description": "Draws question_count random questions (default 10) from the direction's materials.",
                "tags": [
                    "Exams"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "exam",
                        "in": "body",
                        "required": true,
                        "description": "Exam settings",
                        "schema": {
                            "$ref": "#/definitions/dto.ExamCreateDTO"
                        }
                    }
                ]
            }
        },
        "/exams/{exam_id}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ExamDetailResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Get an exam with its questions",
                "tags": [
                    "Exams"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "exam_id",
                        "in": "path",
                        "required": true,
                        "description": "Exam ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/exams/{exam_id}/result": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ExamResultResponse"
                        }
                    },
                    "400": {
                        "description": "Exam not completed yet",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Get the graded result of a completed exam",
                "tags": [
                    "Exams"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "exam_id",
                        "in": "path",
                        "required": true,
                        "description": "Exam ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/exams/{exam_id}/submit": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ExamResultResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid body, empty submission or exam already submitted",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Exam not found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Submit answers and grade the exam",
                "description": "Objective questions are graded locally and short answers by the AI grader. An exam can be submitted once. An empty answers list is rejected with 400 and leaves the exam in progress rather than completing it with score 0.",
                "tags": [
                    "Exams"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "exam_id",
                        "in": "path",
                        "required": true,
                        "description": "Exam ID",
                        "type": "integer"
                    },
                    {
                        "name": "submission",
                        "in": "body",
                        "required": true,
                        "description": "Answers",
                        "schema": {
                            "$ref": "#/definitions/dto.ExamSubmitDTO"
                        }
                    }
                ]
            }
        },
        "/health": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    }
                },
                "summary": "Liveness check",
                "tags": [
                    "Ops"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/materials": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.MaterialResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "List study materials",
                "tags": [
                    "Materials"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "direction_id",
                        "in": "query",
                        "required": false,
                        "description": "Only materials of this direction",
                        "type": "integer"
                    }
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MaterialResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Direction not found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "AI service not configured",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Upload a study material",
                "description": "Stores the material, extracts key points and generates questions before answering. When the AI step fails the material comes back with status \"failed\".",
                "tags": [
                    "Materials"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "material",
                        "in": "body",
                        "required": true,
                        "description": "Material",
                        "schema": {
                            "$ref": "#/definitions/dto.MaterialCreateDTO"
                        }
                    }
                ]
            }
        },
        "/materials/{material_id}": {
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Delete a material and its questions",
                "tags": [
                    "Materials"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "material_id",
                        "in": "path",
                        "required": true,
                        "description": "Material ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/materials/{material_id}/progress": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProgressEvent"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Process a pending material with progress events",
                "description": "Server-sent events, one JSON ProgressEvent per message. A material already being processed by another request yields a single \"processing\" event; any other material that is not pending yields a single \"completed\" event.",
                "tags": [
                    "Materials"
                ],
                "produces": [
                    "text/event-stream"
                ],
                "parameters": [
                    {
                        "name": "material_id",
                        "in": "path",
                        "required": true,
                        "description": "Material ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/mistakes": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.MistakeResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "List the mistake log",
                "tags": [
                    "Mistakes"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "direction_id",
                        "in": "query",
                        "required": false,
                        "description": "Filter by direction",
                        "type": "integer"
                    },
                    {
                        "name": "mastered",
                        "in": "query",
                        "required": false,
                        "description": "Filter by mastered flag",
                        "type": "boolean"
                    }
                ]
            }
        },
        "/mistakes/{mistake_id}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MistakeResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Get a mistake with its question",
                "tags": [
                    "Mistakes"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "mistake_id",
                        "in": "path",
                        "required": true,
                        "description": "Mistake ID",
                        "type": "integer"
                    }
                ]
            },
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MistakeResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Record a review of a mistake",
                "description": "Without review_count the counter goes up by one.",
                "tags": [
                    "Mistakes"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "mistake_id",
                        "in": "path",
                        "required": true,
                        "description": "Mistake ID",
                        "type": "integer"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Mastered flag and/or review count",
                        "schema": {
                            "$ref": "#/definitions/dto.MistakeUpdateDTO"
                        }
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Remove a mistake from the log",
                "tags": [
                    "Mistakes"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "mistake_id",
                        "in": "path",
                        "required": true,
                        "description": "Mistake ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/parse/file": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ParseTaskResponse"
                        }
                    },
                    "400": {
                        "description": "Missing file, unsupported type or too large",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Extract knowledge from an uploaded document",
                "description": "Accepts .pdf, .docx, .md and .txt up to the configured size.",
                "tags": [
                    "Parsing"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "title",
                        "in": "formData",
                        "required": true,
                        "description": "Task title",
                        "type": "string"
                    },
                    {
                        "name": "direction_id",
                        "in": "formData",
                        "required": false,
                        "description": "Direction to file the task under",
                        "type": "integer"
                    },
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "description": "Document",
                        "type": "file"
                    }
                ]
            }
        },
        "/parse/tasks": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.TaskListResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "List parse tasks, newest first",
                "tags": [
                    "Parsing"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "skip",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer",
                        "default": 0
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Page size, at most 100",
                        "type": "integer",
                        "default": 20
                    },
                    {
                        "name": "direction_id",
                        "in": "query",
                        "required": false,
                        "description": "Filter by direction",
                        "type": "integer"
                    }
                ]
            }
        },
        "/parse/tasks/{task_id}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ParseTaskResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Get a parse task with its knowledge points and best practices",
                "tags": [
                    "Parsing"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "task_id",
                        "in": "path",
                        "required": true,
                        "description": "Task ID",
                        "type": "integer"
                    }
                ]
            },
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ParseTaskResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Move a parse task to another direction",
                "tags": [
                    "Parsing"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "task_id",
                        "in": "path",
                        "required": true,
                        "description": "Task ID",
                        "type": "integer"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "New direction, null to detach",
                        "schema": {
                            "$ref": "#/definitions/dto.ParseTaskUpdateDTO"
                        }
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Delete a parse task",
                "tags": [
                    "Parsing"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "task_id",
                        "in": "path",
                        "required": true,
                        "description": "Task ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/parse/tasks/{task_id}/generate-questions": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MaterialResponse"
                        }
                    },
                    "400": {
                        "description": "Task not completed, no text or no direction",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Turn a completed parse task into a material with questions",
                "tags": [
                    "Parsing"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "task_id",
                        "in": "path",
                        "required": true,
                        "description": "Task ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/parse/text": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ParseTaskResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Extract knowledge from pasted text",
                "description": "Runs synchronously. Extraction failures come back as a task with status \"failed\".",
                "tags": [
                    "Parsing"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Title and text",
                        "schema": {
                            "$ref": "#/definitions/dto.ParseTextDTO"
                        }
                    }
                ]
            }
        },
        "/parse/url": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ParseTaskResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Extract knowledge from a web page",
                "tags": [
                    "Parsing"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Title and URL",
                        "schema": {
                            "$ref": "#/definitions/dto.ParseURLDTO"
                        }
                    }
                ]
            }
        },
        "/questions": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.QuestionResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "List questions",
                "tags": [
                    "Questions"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "material_id",
                        "in": "query",
                        "required": false,
                        "description": "Filter by material",
                        "type": "integer"
                    },
                    {
                        "name": "direction_id",
                        "in": "query",
                        "required": false,
                        "description": "Filter by direction",
                        "type": "integer"
                    },
                    {
                        "name": "question_type",
                        "in": "query",
                        "required": false,
                        "description": "single_choice, multi_choice, true_false or short_answer",
                        "type": "string"
                    }
                ]
            }
        },
        "/questions/{question_id}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.QuestionResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Get a question",
                "tags": [
                    "Questions"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "question_id",
                        "in": "path",
                        "required": true,
                        "description": "Question ID",
                        "type": "integer"
                    }
                ]
            },
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.QuestionResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Edit a question",
                "description": "Only the fields present in the body change.",
                "tags": [
                    "Questions"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "question_id",
                        "in": "path",
                        "required": true,
                        "description": "Question ID",
                        "type": "integer"
                    },
                    {
                        "name": "question",
                        "in": "body",
                        "required": true,
                        "description": "Fields to change",
                        "schema": {
                            "$ref": "#/definitions/dto.QuestionUpdateDTO"
                        }
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Delete a question",
                "tags": [
                    "Questions"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "question_id",
                        "in": "path",
                        "required": true,
                        "description": "Question ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/questions/{question_id}/rate": {
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.QuestionResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Rate a generated question",
                "tags": [
                    "Questions"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "question_id",
                        "in": "path",
                        "required": true,
                        "description": "Question ID",
                        "type": "integer"
                    },
                    {
                        "name": "rating",
                        "in": "body",
                        "required": true,
                        "description": "good or bad",
                        "schema": {
                            "$ref": "#/definitions/dto.QuestionRateDTO"
                        }
                    }
                ]
            }
        }
    },
    "definitions": {
        "dto.AnswerResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "exam_id": {
                    "type": "integer"
                },
                "question_id": {
                    "type": "integer"
                },
                "user_answer": {
                    "type": "string"
                },
                "is_correct": {
                    "type": "boolean"
                },
                "score": {
                    "type": "number"
                },
                "ai_feedback": {
                    "type": "string"
                },
                "grading_status": {
                    "type": "string"
                },
                "answered_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.AnswerSubmitDTO": {
            "type": "object",
            "properties": {
                "exam_id": {
                    "type": "integer"
                },
                "question_id": {
                    "type": "integer"
                },
                "user_answer": {
                    "type": "string"
                }
            },
            "required": [
                "question_id"
            ]
        },
        "dto.BestPracticeResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "task_id": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "scenario": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.DirectionCreateDTO": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            },
            "required": [
                "name"
            ]
        },
        "dto.DirectionResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "details": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.ExamCreateDTO": {
            "type": "object",
            "properties": {
                "direction_id": {
                    "type": "integer"
                },
                "mode": {
                    "type": "string"
                },
                "time_limit": {
                    "type": "integer"
                },
                "score_type": {
                    "type": "string"
                },
                "question_count": {
                    "type": "integer"
                }
            },
            "required": [
                "direction_id"
            ]
        },
        "dto.ExamDetailResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "direction_id": {
                    "type": "integer"
                },
                "mode": {
                    "type": "string"
                },
                "time_limit": {
                    "type": "integer"
                },
                "score_type": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "score": {
                    "type": "number"
                },
                "grade": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "completed_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "questions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.QuestionResponse"
                    }
                }
            }
        },
        "dto.ExamResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "direction_id": {
                    "type": "integer"
                },
                "mode": {
                    "type": "string"
                },
                "time_limit": {
                    "type": "integer"
                },
                "score_type": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "score": {
                    "type": "number"
                },
                "grade": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "completed_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.ExamResultResponse": {
            "type": "object",
            "properties": {
                "exam_id": {
                    "type": "integer"
                },
                "total_questions": {
                    "type": "integer"
                },
                "correct_count": {
                    "type": "integer"
                },
                "score": {
                    "type": "number"
                },
                "grade": {
                    "type": "string"
                },
                "answers": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AnswerResponse"
                    }
                }
            }
        },
        "dto.ExamSubmitDTO": {
            "type": "object",
            "properties": {
                "answers": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AnswerSubmitDTO"
                    }
                }
            },
            "required": [
                "answers"
            ]
        },
        "dto.KnowledgePointResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "task_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "importance": {
                    "type": "integer"
                },
                "category": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.MaterialCreateDTO": {
            "type": "object",
            "properties": {
                "direction_id": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                }
            },
            "required": [
                "direction_id",
                "title",
                "content"
            ]
        },
        "dto.MaterialResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "direction_id": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "key_points": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.KeyPoint"
                    }
                },
                "status": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.MistakeResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "question_id": {
                    "type": "integer"
                },
                "answer_id": {
                    "type": "integer"
                },
                "review_count": {
                    "type": "integer"
                },
                "mastered": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "question": {
                    "$ref": "#/definitions/dto.QuestionResponse"
                }
            }
        },
        "dto.MistakeUpdateDTO": {
            "type": "object",
            "properties": {
                "mastered": {
                    "type": "boolean"
                },
                "review_count": {
                    "type": "integer"
                }
            }
        },
        "dto.ParseTaskResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "direction_id": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "source_type": {
                    "type": "string"
                },
                "source_content": {
                    "type": "string"
                },
                "source_object": {
                    "type": "string"
                },
                "raw_text": {
                    "type": "string"
                },
                "summary": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "error_message": {
                    "type": "string"
                },
                "knowledge_points": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.KnowledgePointResponse"
                    }
                },
                "best_practices": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.BestPracticeResponse"
                    }
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.ParseTaskUpdateDTO": {
            "type": "object",
            "properties": {
                "direction_id": {
                    "type": "integer"
                }
            }
        },
        "dto.ParseTextDTO": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                },
                "direction_id": {
                    "type": "integer"
                }
            },
            "required": [
                "title",
                "text"
            ]
        },
        "dto.ParseURLDTO": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "direction_id": {
                    "type": "integer"
                }
            },
            "required": [
                "title",
                "url"
            ]
        },
        "dto.ProgressEvent": {
            "type": "object",
            "properties": {
                "step": {
                    "type": "string"
                },
                "progress": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "material_id": {
                    "type": "integer"
                },
                "data": {}
            }
        },
        "dto.QuestionRateDTO": {
            "type": "object",
            "properties": {
                "rating": {
                    "type": "string"
                }
            },
            "required": [
                "rating"
            ]
        },
        "dto.QuestionResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "material_id": {
                    "type": "integer"
                },
                "type": {
                    "type": "string"
                },
                "difficulty": {
                    "type": "integer"
                },
                "content": {
                    "type": "string"
                },
                "options": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "answer": {
                    "type": "string"
                },
                "explanation": {
                    "type": "string"
                },
                "rating": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.QuestionUpdateDTO": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string"
                },
                "options": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "answer": {
                    "type": "string"
                },
                "explanation": {
                    "type": "string"
                },
                "difficulty": {
                    "type": "integer"
                }
            }
        },
        "dto.TaskListResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "direction_id": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "source_type": {
                    "type": "string"
                },
                "summary": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "model.KeyPoint": {
            "type": "object",
            "properties": {
                "point": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "importance": {
                    "type": "integer"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Studynest API",
	Description:      "Study materials, AI-generated questions, exams with objective and AI grading, a mistake log and knowledge parsing.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
