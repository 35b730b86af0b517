package constant

import (
	"time"
)

const (
	RequestParamID          = "id"
	RequestParamRoomID      = "roomId"
	RequestParamLineID      = "lineId"
	RequestParamStatus      = "status"
	RequestParamSearch      = "search"
	RequestParamRoom        = "room_id"
	RequestParamKind        = "kind"
	RequestParamReservation = "reservation_id"
	RequestParamType        = "type"
	RequestParamPage        = "page"
	RequestParamLimit       = "limit"
	RequestParamSortDir     = "sort_dir"
	RequestParamActive      = "active"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 100
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelEventScopeName    = "event"
	OtelExternalScopeName = "external"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	LogFieldRoomID        = "room_id"
	LogFieldReservationID = "reservation_id"
	LogFieldTaskID        = "task_id"
	LogFieldEventType     = "event_type"
)

const (
	Asterix = "*"
	Empty   = ""
)
