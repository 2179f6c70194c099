package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Club Registry API",
        "description": "School club registry with fetch-level projections",
        "version": "0.3.0"
    },
    "basePath": "/",
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
        {
            "name": "Clubs",
            "description": "Club directory, staff edits and join flow"
        },
        {
            "name": "ClubRequests",
            "description": "Join request review"
        },
        {
            "name": "Students",
            "description": "Student directory"
        },
        {
            "name": "Contacts",
            "description": "Contact channels"
        },
        {
            "name": "Classrooms",
            "description": "Homeroom classrooms"
        }
    ],
    "paths": {
        "/health-check": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    }
                }
            }
        },
        "/clubs": {
            "get": {
                "tags": [
                    "Clubs"
                ],
                "summary": "List clubs",
                "parameters": [
                    {
                        "name": "filter[data][name]",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "filter[data][house]",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "filter[q]",
                        "in": "query",
                        "type": "string",
                        "description": "Free-text search"
                    },
                    {
                        "name": "sorting[by][]",
                        "in": "query",
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi"
                    },
                    {
                        "name": "sorting[ascending]",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "name": "pagination[p]",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "pagination[size]",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    },
                    {
                        "name": "descendant_fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    }
                }
            }
        },
        "/clubs/{id}": {
            "get": {
                "tags": [
                    "Clubs"
                ],
                "summary": "Get club",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    },
                    {
                        "name": "descendant_fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "Clubs"
                ],
                "summary": "Update club",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateClubEnvelope"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/clubs/{id}/contacts": {
            "post": {
                "tags": [
                    "Clubs"
                ],
                "summary": "Attach a contact to a club",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateContactEnvelope"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/clubs/{id}/join": {
            "post": {
                "tags": [
                    "Clubs"
                ],
                "summary": "Request to join a club",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    },
                    {
                        "name": "descendant_fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/clubs/{id}/members/export": {
            "get": {
                "tags": [
                    "Clubs"
                ],
                "summary": "Export club roster",
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Roster file",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    }
                }
            }
        },
        "/join_requests": {
            "get": {
                "tags": [
                    "ClubRequests"
                ],
                "summary": "List join requests",
                "parameters": [
                    {
                        "name": "filter[data][club_id]",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "filter[data][student_id]",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "filter[data][year]",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "filter[data][membership_status]",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "pending",
                            "approved",
                            "declined"
                        ]
                    },
                    {
                        "name": "filter[q]",
                        "in": "query",
                        "type": "string",
                        "description": "Free-text search"
                    },
                    {
                        "name": "sorting[by][]",
                        "in": "query",
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi"
                    },
                    {
                        "name": "sorting[ascending]",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "name": "pagination[p]",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "pagination[size]",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    },
                    {
                        "name": "descendant_fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/join_requests/{id}": {
            "get": {
                "tags": [
                    "ClubRequests"
                ],
                "summary": "Get join request",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    },
                    {
                        "name": "descendant_fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "patch": {
                "tags": [
                    "ClubRequests"
                ],
                "summary": "Approve or decline a join request",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ReviewEnvelope"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/students": {
            "get": {
                "tags": [
                    "Students"
                ],
                "summary": "List students",
                "parameters": [
                    {
                        "name": "filter[data][student_id]",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "filter[data][first_name]",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "filter[data][last_name]",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "filter[q]",
                        "in": "query",
                        "type": "string",
                        "description": "Free-text search"
                    },
                    {
                        "name": "sorting[by][]",
                        "in": "query",
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi"
                    },
                    {
                        "name": "sorting[ascending]",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "name": "pagination[p]",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "pagination[size]",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    },
                    {
                        "name": "descendant_fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/students/{id}": {
            "get": {
                "tags": [
                    "Students"
                ],
                "summary": "Get student",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    },
                    {
                        "name": "descendant_fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/contacts": {
            "get": {
                "tags": [
                    "Contacts"
                ],
                "summary": "List contacts",
                "parameters": [
                    {
                        "name": "filter[data][type]",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "filter[data][value]",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "filter[q]",
                        "in": "query",
                        "type": "string",
                        "description": "Free-text search"
                    },
                    {
                        "name": "sorting[by][]",
                        "in": "query",
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi"
                    },
                    {
                        "name": "sorting[ascending]",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "name": "pagination[p]",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "pagination[size]",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    },
                    {
                        "name": "descendant_fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    }
                }
            }
        },
        "/contacts/{id}": {
            "get": {
                "tags": [
                    "Contacts"
                ],
                "summary": "Get contact",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    },
                    {
                        "name": "descendant_fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    }
                }
            }
        },
        "/classrooms": {
            "get": {
                "tags": [
                    "Classrooms"
                ],
                "summary": "List classrooms",
                "parameters": [
                    {
                        "name": "filter[data][number]",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "filter[data][year]",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "filter[q]",
                        "in": "query",
                        "type": "string",
                        "description": "Free-text search"
                    },
                    {
                        "name": "sorting[by][]",
                        "in": "query",
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi"
                    },
                    {
                        "name": "sorting[ascending]",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "name": "pagination[p]",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "pagination[size]",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    },
                    {
                        "name": "descendant_fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/classrooms/{id}": {
            "get": {
                "tags": [
                    "Classrooms"
                ],
                "summary": "Get classroom",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    },
                    {
                        "name": "descendant_fetch_level",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "id_only",
                            "compact",
                            "default"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/auth/me": {
            "get": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Current user",
                "parameters": [],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "UpdatableClub": {
            "type": "object",
            "properties": {
                "name_th": {
                    "type": "string"
                },
                "name_en": {
                    "type": "string"
                },
                "description_th": {
                    "type": "string"
                },
                "description_en": {
                    "type": "string"
                },
                "logo_url": {
                    "type": "string"
                },
                "background_color": {
                    "type": "string"
                },
                "accent_color": {
                    "type": "string"
                },
                "house": {
                    "type": "string"
                },
                "map_location": {
                    "type": "integer"
                },
                "main_room": {
                    "type": "string"
                }
            }
        },
        "CreatableContact": {
            "type": "object",
            "required": [
                "type",
                "value"
            ],
            "properties": {
                "name_th": {
                    "type": "string"
                },
                "name_en": {
                    "type": "string"
                },
                "value": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "Phone",
                        "Email",
                        "Facebook",
                        "Line",
                        "Instagram",
                        "Website",
                        "Discord",
                        "Other"
                    ]
                },
                "include_students": {
                    "type": "boolean"
                },
                "include_teachers": {
                    "type": "boolean"
                },
                "include_parents": {
                    "type": "boolean"
                }
            }
        },
        "UpdatableClubRequest": {
            "type": "object",
            "required": [
                "membership_status"
            ],
            "properties": {
                "membership_status": {
                    "type": "string",
                    "enum": [
                        "approved",
                        "declined"
                    ]
                }
            }
        },
        "UpdateClubEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/UpdatableClub"
                },
                "fetch_level": {
                    "type": "string"
                },
                "descendant_fetch_level": {
                    "type": "string"
                }
            }
        },
        "CreateContactEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/CreatableContact"
                },
                "fetch_level": {
                    "type": "string"
                },
                "descendant_fetch_level": {
                    "type": "string"
                }
            }
        },
        "ReviewEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/UpdatableClubRequest"
                },
                "fetch_level": {
                    "type": "string"
                },
                "descendant_fetch_level": {
                    "type": "string"
                }
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "first": {
                    "type": "string"
                },
                "last": {
                    "type": "string"
                },
                "next": {
                    "type": "string"
                },
                "prev": {
                    "type": "string"
                },
                "size": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "Meta": {
            "type": "object",
            "properties": {
                "timestamp": {
                    "type": "string",
                    "format": "date-time"
                },
                "pagination": {
                    "$ref": "#/definitions/Pagination"
                }
            }
        },
        "Error": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "code": {
                    "type": "integer"
                },
                "error_type": {
                    "type": "string"
                },
                "detail": {
                    "type": "string"
                },
                "source": {
                    "type": "string"
                }
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "api_version": {
                    "type": "string"
                },
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/Error"
                },
                "meta": {
                    "$ref": "#/definitions/Meta"
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
