// Package docs - описание API для swagger UI (/swagger/index.html).
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
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/messages/conversations": {
            "get": {"tags": ["messages"], "summary": "Список диалогов", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ConversationResponse"}}}}}
        },
        "/messages": {
            "post": {"tags": ["messages"], "summary": "Отправить сообщение", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.SendMessageRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SendMessageResponse"}},
                    "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}, "429": {"description": "Too Many Requests"}}}
        },
        "/messages/{otherUserId}": {
            "get": {"tags": ["messages"], "summary": "Переписка с пользователем", "security": [{"BearerAuth": []}],
                "parameters": [{"type": "integer", "name": "otherUserId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.MessageResponse"}}}}}
        },
        "/messages/{id}": {
            "delete": {"tags": ["messages"], "summary": "Удалить сообщение", "security": [{"BearerAuth": []}],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        },
        "/notifications": {
            "get": {"tags": ["notifications"], "summary": "Уведомления пользователя", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.NotificationResponse"}}}}},
            "delete": {"tags": ["notifications"], "summary": "Удалить все уведомления", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/notifications/unread-count": {
            "get": {"tags": ["notifications"], "summary": "Число непрочитанных", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UnreadCountResponse"}}}}
        },
        "/notifications/read-all": {
            "put": {"tags": ["notifications"], "summary": "Пометить все прочитанными", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/notifications/{id}/read": {
            "put": {"tags": ["notifications"], "summary": "Пометить прочитанным", "security": [{"BearerAuth": []}],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/notifications/{id}": {
            "delete": {"tags": ["notifications"], "summary": "Удалить уведомление", "security": [{"BearerAuth": []}],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/favorites": {
            "get": {"tags": ["favorites"], "summary": "Избранное пользователя", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.FavoriteResponse"}}}}},
            "post": {"tags": ["favorites"], "summary": "Добавить в избранное", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.AddFavoriteRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        },
        "/favorites/{propertyId}": {
            "delete": {"tags": ["favorites"], "summary": "Убрать из избранного", "security": [{"BearerAuth": []}],
                "parameters": [{"type": "integer", "name": "propertyId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/favorites/check/{propertyId}": {
            "get": {"tags": ["favorites"], "summary": "В избранном ли объявление", "security": [{"BearerAuth": []}],
                "parameters": [{"type": "integer", "name": "propertyId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FavoriteCheckResponse"}}}}
        },
        "/properties": {
            "post": {"tags": ["properties"], "summary": "Создать объявление", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreatePropertyRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.PropertyResponse"}}, "403": {"description": "Forbidden"}}}
        },
        "/properties/{id}": {
            "get": {"tags": ["properties"], "summary": "Получить объявление", "security": [{"BearerAuth": []}],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PropertyResponse"}}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["properties"], "summary": "Удалить объявление", "security": [{"BearerAuth": []}],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        },
        "/properties/{id}/contact": {
            "post": {"tags": ["properties"], "summary": "Связаться с владельцем", "security": [{"BearerAuth": []}],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}}
        },
        "/users/me": {
            "get": {"tags": ["users"], "summary": "Профиль", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}}}},
            "put": {"tags": ["users"], "summary": "Частично обновить профиль", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateProfileRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}}, "400": {"description": "Bad Request"}}}
        }
    },
    "definitions": {
        "dto.SendMessageRequest": {"type": "object", "required": ["receiverId", "message"],
            "properties": {"receiverId": {"type": "integer"}, "message": {"type": "string", "maxLength": 5000}}},
        "dto.SendMessageResponse": {"type": "object",
            "properties": {"message": {"type": "string"}, "messageId": {"type": "integer"}}},
        "dto.MessageResponse": {"type": "object",
            "properties": {"id": {"type": "integer"}, "sender_id": {"type": "integer"}, "receiver_id": {"type": "integer"},
                "message": {"type": "string"}, "is_read": {"type": "boolean"}, "created_at": {"type": "string"},
                "sender_name": {"type": "string"}, "receiver_name": {"type": "string"}}},
        "dto.ConversationResponse": {"type": "object",
            "properties": {"id": {"type": "integer"}, "other_user_id": {"type": "integer"}, "other_user_name": {"type": "string"},
                "other_user_photo": {"type": "string"}, "message": {"type": "string"}, "created_at": {"type": "string"}, "is_read": {"type": "boolean"}}},
        "dto.NotificationResponse": {"type": "object",
            "properties": {"id": {"type": "integer"}, "user_id": {"type": "integer"}, "type": {"type": "string"}, "title": {"type": "string"},
                "message": {"type": "string"}, "data": {"type": "object"}, "is_read": {"type": "boolean"}, "created_at": {"type": "string"}}},
        "dto.UnreadCountResponse": {"type": "object", "properties": {"count": {"type": "integer"}}},
        "dto.AddFavoriteRequest": {"type": "object", "required": ["propertyId"], "properties": {"propertyId": {"type": "integer"}}},
        "dto.FavoriteCheckResponse": {"type": "object", "properties": {"isFavorite": {"type": "boolean"}}},
        "dto.FavoriteResponse": {"type": "object",
            "properties": {"id": {"type": "integer"}, "favorite_id": {"type": "integer"}, "title": {"type": "string"}, "type": {"type": "string"},
                "transaction_type": {"type": "string"}, "price": {"type": "number"}, "city": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}}, "user_id": {"type": "integer"},
                "owner_name": {"type": "string"}, "favorited_at": {"type": "string"}}},
        "dto.CreatePropertyRequest": {"type": "object", "required": ["title", "type", "transactionType", "price", "city"],
            "properties": {"title": {"type": "string"}, "description": {"type": "string"}, "type": {"type": "string"},
                "transactionType": {"type": "string", "enum": ["sale", "rent"]}, "price": {"type": "number"}, "city": {"type": "string"},
                "address": {"type": "string"}, "bedrooms": {"type": "integer"}, "bathrooms": {"type": "integer"}, "area": {"type": "number"},
                "latitude": {"type": "number"}, "longitude": {"type": "number"}, "images": {"type": "array", "items": {"type": "string"}}}},
        "dto.PropertyResponse": {"type": "object",
            "properties": {"id": {"type": "integer"}, "user_id": {"type": "integer"}, "owner_name": {"type": "string"}, "title": {"type": "string"},
                "description": {"type": "string"}, "type": {"type": "string"}, "transaction_type": {"type": "string"}, "price": {"type": "number"},
                "city": {"type": "string"}, "address": {"type": "string"}, "bedrooms": {"type": "integer"}, "bathrooms": {"type": "integer"},
                "area": {"type": "number"}, "latitude": {"type": "number"}, "longitude": {"type": "number"},
                "images": {"type": "array", "items": {"type": "string"}}, "created_at": {"type": "string"}}},
        "dto.UpdateProfileRequest": {"type": "object",
            "properties": {"name": {"type": "string"}, "phone": {"type": "string"}, "bio": {"type": "string"}, "photo": {"type": "string"},
                "role": {"type": "string", "enum": ["visitor", "buyer", "seller"]}}},
        "dto.UserResponse": {"type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "email": {"type": "string"}, "phone": {"type": "string"},
                "photo": {"type": "string"}, "bio": {"type": "string"}, "role": {"type": "string"}, "created_at": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:4000",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "IMMO TN API",
	Description:      "Сообщения, избранное и уведомления площадки объявлений.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
