// Package docs registers the OpenAPI description served under /swagger.
// It is maintained by hand in swag's output layout.
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
        "/accounts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Retrieves the holding, investment and self-directed accounts of the caller",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "List accounts for the logged-in user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListAccountsResponse"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/accounts/open": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Creates the holding, investment and self-directed accounts if the caller has none. Idempotent.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Open the default accounts",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ListAccountsResponse"}},
                    "400": {"description": "Invalid input"}
                }
            }
        },
        "/accounts/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Get an account by ID",
                "parameters": [{"type": "string", "description": "Account ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AccountResponse"}},
                    "404": {"description": "Account not found"}
                }
            }
        },
        "/ledger/deposit": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Deposit cash",
                "parameters": [{"description": "Deposit", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.DepositRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid input"}, "404": {"description": "Account not found"}}
            }
        },
        "/ledger/withdraw": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Withdraw cash",
                "parameters": [{"description": "Withdrawal", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.WithdrawRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid input or insufficient funds"}}
            }
        },
        "/ledger/transfer": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Transfer cash between accounts",
                "parameters": [{"description": "Transfer", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TransferRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid input or insufficient funds"}}
            }
        },
        "/transactions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "List transactions",
                "parameters": [
                    {"type": "string", "name": "accountId", "in": "query"},
                    {"type": "integer", "default": 50, "name": "limit", "in": "query"},
                    {"type": "string", "name": "nextToken", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid query"}}
            }
        },
        "/orders": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List orders",
                "parameters": [
                    {"type": "string", "name": "accountId", "in": "query"},
                    {"enum": ["pending", "completed", "cancelled"], "type": "string", "name": "status", "in": "query"},
                    {"type": "integer", "default": 50, "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/orders/buy": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Buy at market",
                "parameters": [{"description": "Order", "name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PlaceOrderRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input, not halal approved or insufficient funds"}, "409": {"description": "Concurrent modification"}, "503": {"description": "Price unavailable"}}
            }
        },
        "/orders/sell": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Sell at market",
                "parameters": [{"description": "Order", "name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PlaceOrderRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input or insufficient quantity"}, "404": {"description": "Account or holding not found"}}
            }
        },
        "/portfolio/holdings": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["portfolio"], "summary": "List holdings", "responses": {"200": {"description": "OK"}}}
        },
        "/portfolio/net-worth": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["portfolio"], "summary": "Net worth", "responses": {"200": {"description": "OK"}}}
        },
        "/portfolio/analytics": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["portfolio"], "summary": "Portfolio analytics", "responses": {"200": {"description": "OK"}}}
        },
        "/symbols": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["halal"], "summary": "List approved symbols", "responses": {"200": {"description": "OK"}}}
        },
        "/halal-symbols": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["halal"],
                "summary": "Search approved symbols",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "integer", "default": 100, "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/watchlist": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["watchlist"], "summary": "Get the watchlist", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["watchlist"], "summary": "Add a symbol to the watchlist", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input or not halal approved"}}}
        },
        "/watchlist/{symbol}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["watchlist"],
                "summary": "Remove a symbol from the watchlist",
                "parameters": [{"type": "string", "name": "symbol", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not on the watchlist"}}
            }
        },
        "/market/quotes": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "Quotes for several symbols",
                "parameters": [{"type": "string", "name": "symbols", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/market/{symbol}/quote": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "Quote for one symbol",
                "parameters": [{"type": "string", "name": "symbol", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "No quote"}}
            }
        },
        "/profile": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["profile"], "summary": "Get the investment profile", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["profile"], "summary": "Update the investment profile", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid input"}}}
        }
    },
    "definitions": {
        "dto.AccountResponse": {
            "type": "object",
            "properties": {
                "accountID": {"type": "string"},
                "accountType": {"type": "string"},
                "balanceCents": {"type": "integer"},
                "balanceFormatted": {"type": "string"},
                "createdAt": {"type": "string"},
                "currencyCode": {"type": "string"},
                "lastUpdatedAt": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "dto.ListAccountsResponse": {
            "type": "object",
            "properties": {
                "accounts": {"type": "array", "items": {"$ref": "#/definitions/dto.AccountResponse"}}
            }
        },
        "dto.DepositRequest": {
            "type": "object",
            "required": ["amountCents"],
            "properties": {
                "accountId": {"type": "string"},
                "amountCents": {"type": "integer"},
                "description": {"type": "string", "maxLength": 255}
            }
        },
        "dto.WithdrawRequest": {
            "type": "object",
            "required": ["amountCents"],
            "properties": {
                "accountId": {"type": "string"},
                "amountCents": {"type": "integer"},
                "description": {"type": "string", "maxLength": 255}
            }
        },
        "dto.TransferRequest": {
            "type": "object",
            "required": ["amountCents", "fromAccountId", "toAccountId"],
            "properties": {
                "amountCents": {"type": "integer"},
                "description": {"type": "string", "maxLength": 255},
                "fromAccountId": {"type": "string"},
                "toAccountId": {"type": "string"}
            }
        },
        "dto.PlaceOrderRequest": {
            "type": "object",
            "required": ["symbol"],
            "properties": {
                "accountId": {"type": "string"},
                "priceCents": {"type": "integer"},
                "quantity": {"type": "string"},
                "symbol": {"type": "string"}
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
	Title:            "Amanah Ledger API",
	Description:      "Ledger and order execution core for a halal brokerage.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
