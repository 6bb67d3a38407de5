// Package docs registers the swagger document served under /swagger.
// Regenerate with `swag init` after changing handler annotations.
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
        "/api/health": {"get": {"tags": ["系统"], "summary": "健康检查", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/api/register": {"post": {"tags": ["认证"], "summary": "用户注册", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controller.RegisterRequest"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}},
        "/api/login": {"post": {"tags": ["认证"], "summary": "用户登录", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controller.LoginRequest"}}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/api/profile": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["用户"], "summary": "当前用户信息", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/api/memory": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["用户"], "summary": "获取用户偏好", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["用户"], "summary": "更新用户偏好", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controller.MemoryUpdateRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/submit-dass21": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["测评"], "summary": "提交 DASS-21 问卷", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controller.SubmitAssessmentRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/submit-phq9": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["测评"], "summary": "提交 PHQ-9 问卷", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controller.SubmitAssessmentRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/assessments": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["测评"], "summary": "最近 10 次测评", "responses": {"200": {"description": "OK"}}}},
        "/api/assessments/{type}/questions": {"get": {"tags": ["测评"], "summary": "问卷题目", "parameters": [{"type": "string", "in": "path", "name": "type", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/mood-entry": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["日志"], "summary": "记录今日心情", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controller.MoodEntryRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/mood-entries": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["日志"], "summary": "最近 30 天心情", "responses": {"200": {"description": "OK"}}}},
        "/api/sleep-entry": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["日志"], "summary": "记录睡眠", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controller.SleepEntryRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/sleep-entries": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["日志"], "summary": "最近 30 天睡眠", "responses": {"200": {"description": "OK"}}}},
        "/api/daily-reflection": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["日志"], "summary": "记录每日反思", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controller.ReflectionRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/daily-reflections": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["日志"], "summary": "最近 30 天反思", "responses": {"200": {"description": "OK"}}}},
        "/api/chat": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["聊天"], "summary": "发送聊天消息", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controller.ChatRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/chat/history": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["聊天"], "summary": "最近 20 条对话", "responses": {"200": {"description": "OK"}}}},
        "/api/mental-health-plan": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["健康"], "summary": "心理健康计划", "responses": {"200": {"description": "OK"}}}},
        "/api/gamification": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["成长"], "summary": "当前经验、等级和徽章", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/gamification/award": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["成长"], "summary": "增加经验值", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controller.AwardRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/gamification/leaderboard": {"get": {"tags": ["成长"], "summary": "经验排行榜前 10", "responses": {"200": {"description": "OK"}}}},
        "/api/gamification/badges": {"get": {"tags": ["成长"], "summary": "徽章列表", "responses": {"200": {"description": "OK"}}}},
        "/api/journeys": {"get": {"tags": ["旅程"], "summary": "自助旅程列表", "responses": {"200": {"description": "OK"}}}},
        "/api/journeys/{id}": {"get": {"tags": ["旅程"], "summary": "旅程详情", "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/journeys/{id}/start": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["旅程"], "summary": "开始（或重新开始）旅程", "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/journeys/{id}/progress": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["旅程"], "summary": "旅程进度", "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/journeys/{id}/advance": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["旅程"], "summary": "完成当前任务", "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/nlp/analyze": {"post": {"tags": ["NLP"], "summary": "文本情绪分析", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controller.AnalyzeRequest"}}], "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/api/nlp/models": {"get": {"tags": ["NLP"], "summary": "可用模型", "responses": {"200": {"description": "OK"}}}},
        "/api/admin/export-data": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["管理"], "summary": "导出匿名研究数据", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}}
    },
    "definitions": {
        "controller.RegisterRequest": {"type": "object", "required": ["email", "password", "confirmPassword", "fullName"], "properties": {"email": {"type": "string"}, "password": {"type": "string", "minLength": 6}, "confirmPassword": {"type": "string"}, "fullName": {"type": "string"}, "age": {"type": "integer"}, "studentLevel": {"type": "string"}, "consentGiven": {"type": "boolean"}}},
        "controller.LoginRequest": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "controller.MemoryUpdateRequest": {"type": "object", "required": ["memory"], "properties": {"memory": {"type": "object"}}},
        "controller.SubmitAssessmentRequest": {"type": "object", "required": ["responses"], "properties": {"responses": {"type": "object", "additionalProperties": {"type": "integer"}}}},
        "controller.MoodEntryRequest": {"type": "object", "required": ["mood_level"], "properties": {"mood_level": {"type": "integer"}, "note": {"type": "string"}}},
        "controller.SleepEntryRequest": {"type": "object", "required": ["hours", "quality"], "properties": {"hours": {"type": "number"}, "quality": {"type": "integer"}, "note": {"type": "string"}}},
        "controller.ReflectionRequest": {"type": "object", "required": ["text"], "properties": {"text": {"type": "string"}}},
        "controller.ChatRequest": {"type": "object", "required": ["message"], "properties": {"message": {"type": "string"}}},
        "controller.AwardRequest": {"type": "object", "properties": {"xp": {"type": "integer", "minimum": 0, "maximum": 1000}}},
        "controller.AnalyzeRequest": {"type": "object", "required": ["text"], "properties": {"text": {"type": "string"}}}
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8001",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "MindCare 后端 API",
	Description:      "心理健康自评与习惯追踪服务",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
