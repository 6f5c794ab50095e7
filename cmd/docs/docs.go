// Package docs holds the Swagger document served at /swagger. Regenerate with `swag init -g cmd/ledger_backend/main.go -o cmd/docs`.
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
        "/tenants/{tenant_id}/accounting-config": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the account mapping used for automatic entries. A tenant that never saved one reads as disabled.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounting-config"
                ],
                "summary": "Get the accounting configuration",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Tenant ID",
                        "name": "tenant_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountingConfigResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Replaces the whole configuration in one step. Every referenced account must exist and be postable. Requires the admin role.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounting-config"
                ],
                "summary": "Replace the accounting configuration",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Tenant ID",
                        "name": "tenant_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Configuration",
                        "name": "config",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateAccountingConfigRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountingConfigResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid account reference",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Version mismatch",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/tenants/{tenant_id}/accounts": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists every account of the tenant ordered by code, or only the active accounts of one class",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "List the chart of accounts",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Tenant ID",
                        "name": "tenant_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Account class (1-7)",
                        "name": "class",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.AccountResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid class",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to list accounts",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Adds an account to the tenant's chart. Requires the admin role.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Create an account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Tenant ID",
                        "name": "tenant_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Account details",
                        "name": "account",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateAccountRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Account code already exists",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to create account",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/tenants/{tenant_id}/accounts/{code}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Get an account by code",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Tenant ID",
                        "name": "tenant_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Account code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountResponse"
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Changes the label of an account. Code, class and kind are fixed once created.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Rename an account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Tenant ID",
                        "name": "tenant_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Account code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New label",
                        "name": "account",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateAccountRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/tenants/{tenant_id}/accounts/{code}/deactivate": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Marks an unused account inactive. Accounts referenced by posted lines or an enabled configuration slot stay active.",
                "tags": [
                    "accounts"
                ],
                "summary": "Deactivate an account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Tenant ID",
                        "name": "tenant_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Account code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Account is referenced by posted entries or the accounting configuration",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/tenants/{tenant_id}/entries": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists entries in (date, number) order with optional filters and token pagination",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "entries"
                ],
                "summary": "List posted entries",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Tenant ID",
                        "name": "tenant_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "First date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Last date (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Journal code",
                        "name": "journalCode",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "AUTOMATIC or MANUAL",
                        "name": "origin",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size",
                        "name": "limit",
                        "in": "query",
                        "default": 100
                    },
                    {
                        "type": "string",
                        "description": "Token from the previous page",
                        "name": "nextToken",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListJournalEntriesResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Validates and posts a manual entry. Amounts are integers in minor units. Requires the accountant role.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "entries"
                ],
                "summary": "Post a manual journal entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Tenant ID",
                        "name": "tenant_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Entry",
                        "name": "entry",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateJournalEntryRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.JournalEntryResponse"
                        }
                    },
                    "400": {
                        "description": "Entry refused",
                        "schema": {
                            "$ref": "#/definitions/dto.ValidationErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to post entry",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/tenants/{tenant_id}/entries/{entry_id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "entries"
                ],
                "summary": "Get a posted entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Tenant ID",
                        "name": "tenant_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Entry ID",
                        "name": "entry_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.JournalEntryResponse"
                        }
                    },
                    "404": {
                        "description": "Entry not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/tenants/{tenant_id}/entries/{entry_id}/reverse": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Posts a new entry with every line's debit and credit swapped. The original entry is left untouched.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "entries"
                ],
                "summary": "Reverse a posted entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Tenant ID",
                        "name": "tenant_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Entry ID",
                        "name": "entry_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Optional date and label",
                        "name": "reversal",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/dto.ReverseJournalEntryRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.JournalEntryResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Entry not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Entry already reversed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/tenants/{tenant_id}/events": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Generates and posts the automatic entry for an invoice or payment. Replaying a document returns the entry already posted.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "events"
                ],
                "summary": "Process a business event",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Tenant ID",
                        "name": "tenant_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Business event",
                        "name": "event",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.BusinessEventRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "SUPPRESSED or ALREADY_POSTED",
                        "schema": {
                            "$ref": "#/definitions/dto.EventResultResponse"
                        }
                    },
                    "201": {
                        "description": "POSTED",
                        "schema": {
                            "$ref": "#/definitions/dto.EventResultResponse"
                        }
                    },
                    "400": {
                        "description": "Malformed event",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/tenants/{tenant_id}/ledger/{code}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Opening balance, movements with running balances and closing balance over [from, to]. Header accounts include their descendants.",
                "produces": [
                    "application/json",
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "ledger"
                ],
                "summary": "General ledger of an account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Tenant ID",
                        "name": "tenant_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Account code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "First date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Last date (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Set to xlsx for a spreadsheet",
                        "name": "format",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.LedgerViewResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid period",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/tenants/{tenant_id}/reports/trial-balance": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Generates a trial balance report as of a specific date, subtotaled by account class",
                "produces": [
                    "application/json",
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Generate trial balance report",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Tenant ID",
                        "name": "tenant_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Report date (YYYY-MM-DD)",
                        "name": "asOf",
                        "in": "query",
                        "default": "current date"
                    },
                    {
                        "type": "string",
                        "description": "Set to xlsx for a spreadsheet",
                        "name": "format",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.TrialBalanceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden (User not authorized)",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to generate report",
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
        "domain.AccountKind": {
            "type": "string",
            "enum": [
                "ASSET",
                "LIABILITY",
                "EXPENSE",
                "REVENUE",
                "TREASURY"
            ],
            "x-enum-varnames": [
                "Asset",
                "Liability",
                "Expense",
                "Revenue",
                "Treasury"
            ]
        },
        "domain.EntryOrigin": {
            "type": "string",
            "enum": [
                "AUTOMATIC",
                "MANUAL"
            ],
            "x-enum-varnames": [
                "OriginAutomatic",
                "OriginManual"
            ]
        },
        "domain.EntryStatus": {
            "type": "string",
            "enum": [
                "POSTED"
            ],
            "x-enum-varnames": [
                "Posted"
            ]
        },
        "domain.EventType": {
            "type": "string",
            "enum": [
                "SUPPLIER_INVOICE_RECORDED",
                "SUPPLIER_PAYMENT_MADE",
                "CLIENT_INVOICE_ISSUED",
                "CLIENT_PAYMENT_RECEIVED"
            ],
            "x-enum-varnames": [
                "SupplierInvoiceRecorded",
                "SupplierPaymentMade",
                "ClientInvoiceIssued",
                "ClientPaymentReceived"
            ]
        },
        "domain.GenerationOutcome": {
            "type": "string",
            "enum": [
                "PROPOSED",
                "SUPPRESSED",
                "POSTED",
                "ALREADY_POSTED"
            ],
            "x-enum-varnames": [
                "OutcomeProposed",
                "OutcomeSuppressed",
                "OutcomePosted",
                "OutcomeAlreadyPosted"
            ]
        },
        "domain.PaymentMeans": {
            "type": "string",
            "enum": [
                "bank",
                "cash"
            ],
            "x-enum-varnames": [
                "MeansBank",
                "MeansCash"
            ]
        },
        "domain.Side": {
            "type": "string",
            "enum": [
                "DEBIT",
                "CREDIT"
            ],
            "x-enum-varnames": [
                "Debit",
                "Credit"
            ]
        },
        "dto.AccountResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "class": {
                    "type": "integer"
                },
                "kind": {
                    "$ref": "#/definitions/domain.AccountKind"
                },
                "normalSide": {
                    "$ref": "#/definitions/domain.Side"
                },
                "active": {
                    "type": "boolean"
                },
                "parentCode": {
                    "type": "string"
                },
                "level": {
                    "type": "integer"
                },
                "postable": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                }
            }
        },
        "dto.AccountingConfigResponse": {
            "type": "object",
            "properties": {
                "enabled": {
                    "type": "boolean"
                },
                "suppliers": {
                    "type": "string"
                },
                "clients": {
                    "type": "string"
                },
                "bank": {
                    "type": "string"
                },
                "cash": {
                    "type": "string"
                },
                "vatDeductible": {
                    "type": "string"
                },
                "vatCollected": {
                    "type": "string"
                },
                "purchases": {
                    "type": "string"
                },
                "sales": {
                    "type": "string"
                },
                "version": {
                    "type": "integer"
                },
                "updatedAt": {
                    "type": "string"
                },
                "updatedBy": {
                    "type": "string"
                }
            }
        },
        "dto.Amount": {
            "type": "object",
            "properties": {
                "minor": {
                    "type": "integer"
                },
                "value": {
                    "type": "string"
                }
            }
        },
        "dto.BusinessEventRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "$ref": "#/definitions/domain.EventType"
                },
                "documentRef": {
                    "type": "string",
                    "maxLength": 128
                },
                "date": {
                    "type": "string"
                },
                "label": {
                    "type": "string",
                    "maxLength": 255
                },
                "amountHT": {
                    "type": "integer"
                },
                "amountVAT": {
                    "type": "integer"
                },
                "amountTTC": {
                    "type": "integer"
                },
                "amount": {
                    "type": "integer"
                },
                "means": {
                    "$ref": "#/definitions/domain.PaymentMeans"
                }
            },
            "required": [
                "date",
                "documentRef",
                "type"
            ]
        },
        "dto.ClassSubtotalResponse": {
            "type": "object",
            "properties": {
                "class": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "balanceDebit": {
                    "$ref": "#/definitions/dto.Amount"
                },
                "balanceCredit": {
                    "$ref": "#/definitions/dto.Amount"
                }
            }
        },
        "dto.CreateAccountRequest": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "maxLength": 12,
                    "minLength": 1
                },
                "label": {
                    "type": "string",
                    "maxLength": 255
                },
                "class": {
                    "type": "integer",
                    "maximum": 7,
                    "minimum": 1
                },
                "kind": {
                    "$ref": "#/definitions/domain.AccountKind"
                },
                "parentCode": {
                    "type": "string"
                }
            },
            "required": [
                "class",
                "code",
                "kind",
                "label"
            ]
        },
        "dto.CreateJournalEntryRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "example": "2024-01-31"
                },
                "journalCode": {
                    "type": "string",
                    "example": "Miscellaneous"
                },
                "label": {
                    "type": "string"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CreateJournalLineRequest"
                    }
                }
            }
        },
        "dto.CreateJournalLineRequest": {
            "type": "object",
            "properties": {
                "accountCode": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "debit": {
                    "type": "integer"
                },
                "credit": {
                    "type": "integer"
                }
            }
        },
        "dto.EventResultResponse": {
            "type": "object",
            "properties": {
                "outcome": {
                    "$ref": "#/definitions/domain.GenerationOutcome"
                },
                "entry": {
                    "$ref": "#/definitions/dto.JournalEntryResponse"
                }
            }
        },
        "dto.JournalEntryResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "number": {
                    "type": "integer"
                },
                "date": {
                    "type": "string"
                },
                "journalCode": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "origin": {
                    "$ref": "#/definitions/domain.EntryOrigin"
                },
                "originDocumentType": {
                    "type": "string"
                },
                "originDocumentRef": {
                    "type": "string"
                },
                "reversesEntryID": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/domain.EntryStatus"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.JournalLineResponse"
                    }
                },
                "totalDebit": {
                    "$ref": "#/definitions/dto.Amount"
                },
                "totalCredit": {
                    "$ref": "#/definitions/dto.Amount"
                },
                "postedAt": {
                    "type": "string"
                },
                "postedBy": {
                    "type": "string"
                }
            }
        },
        "dto.JournalLineResponse": {
            "type": "object",
            "properties": {
                "lineNo": {
                    "type": "integer"
                },
                "accountCode": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "debit": {
                    "$ref": "#/definitions/dto.Amount"
                },
                "credit": {
                    "$ref": "#/definitions/dto.Amount"
                }
            }
        },
        "dto.LedgerMovementResponse": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "entryID": {
                    "type": "string"
                },
                "entryNumber": {
                    "type": "integer"
                },
                "accountCode": {
                    "type": "string"
                },
                "journalCode": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "debit": {
                    "$ref": "#/definitions/dto.Amount"
                },
                "credit": {
                    "$ref": "#/definitions/dto.Amount"
                },
                "runningDebit": {
                    "$ref": "#/definitions/dto.Amount"
                },
                "runningCredit": {
                    "$ref": "#/definitions/dto.Amount"
                }
            }
        },
        "dto.LedgerViewResponse": {
            "type": "object",
            "properties": {
                "accountCode": {
                    "type": "string"
                },
                "accountLabel": {
                    "type": "string"
                },
                "normalSide": {
                    "$ref": "#/definitions/domain.Side"
                },
                "from": {
                    "type": "string"
                },
                "to": {
                    "type": "string"
                },
                "openingDebit": {
                    "$ref": "#/definitions/dto.Amount"
                },
                "openingCredit": {
                    "$ref": "#/definitions/dto.Amount"
                },
                "movements": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.LedgerMovementResponse"
                    }
                },
                "closingDebit": {
                    "$ref": "#/definitions/dto.Amount"
                },
                "closingCredit": {
                    "$ref": "#/definitions/dto.Amount"
                },
                "normalBalance": {
                    "$ref": "#/definitions/dto.Amount"
                }
            }
        },
        "dto.ListJournalEntriesResponse": {
            "type": "object",
            "properties": {
                "entries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.JournalEntryResponse"
                    }
                },
                "nextToken": {
                    "type": "string"
                }
            }
        },
        "dto.ReverseJournalEntryRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "label": {
                    "type": "string",
                    "maxLength": 255
                }
            }
        },
        "dto.TrialBalanceResponse": {
            "type": "object",
            "properties": {
                "asOf": {
                    "type": "string"
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.TrialBalanceRowResponse"
                    }
                },
                "classes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ClassSubtotalResponse"
                    }
                },
                "balanced": {
                    "type": "boolean"
                },
                "totals": {
                    "type": "object",
                    "properties": {
                        "debit": {
                            "$ref": "#/definitions/dto.Amount"
                        },
                        "credit": {
                            "$ref": "#/definitions/dto.Amount"
                        }
                    }
                }
            }
        },
        "dto.TrialBalanceRowResponse": {
            "type": "object",
            "properties": {
                "accountCode": {
                    "type": "string"
                },
                "accountLabel": {
                    "type": "string"
                },
                "class": {
                    "type": "integer"
                },
                "movementDebit": {
                    "$ref": "#/definitions/dto.Amount"
                },
                "movementCredit": {
                    "$ref": "#/definitions/dto.Amount"
                },
                "balanceDebit": {
                    "$ref": "#/definitions/dto.Amount"
                },
                "balanceCredit": {
                    "$ref": "#/definitions/dto.Amount"
                }
            }
        },
        "dto.UpdateAccountRequest": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string",
                    "maxLength": 255
                }
            },
            "required": [
                "label"
            ]
        },
        "dto.UpdateAccountingConfigRequest": {
            "type": "object",
            "properties": {
                "enabled": {
                    "type": "boolean"
                },
                "suppliers": {
                    "type": "string"
                },
                "clients": {
                    "type": "string"
                },
                "bank": {
                    "type": "string"
                },
                "cash": {
                    "type": "string"
                },
                "vatDeductible": {
                    "type": "string"
                },
                "vatCollected": {
                    "type": "string"
                },
                "purchases": {
                    "type": "string"
                },
                "sales": {
                    "type": "string"
                },
                "expectedVersion": {
                    "type": "integer",
                    "minimum": 0
                }
            }
        },
        "dto.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                },
                "line": {
                    "type": "integer"
                },
                "accountCode": {
                    "type": "string"
                },
                "field": {
                    "type": "string"
                },
                "gap": {
                    "type": "integer"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "ERP Ledger API",
	Description:      "General ledger, automatic entry generation and trial balance for multi-tenant ERP accounting.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
