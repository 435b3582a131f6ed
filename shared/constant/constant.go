package constant

const (
	RequestParamAction   = "action"
	RequestParamSelected = "selected"
	RequestParamSearch   = "search"
	RequestParamStatus   = "status"
)

const (
	ActionSearch       = "search"
	ActionAddCustomer  = "add"
	ActionApprove      = "approve"
	ActionDecline      = "decline"
	ActionRemove       = "remove"
	ActionConversation = "conversation"
	ActionBack         = "back"
)

const (
	DateFormat = "2006-01-02"
)

const (
	StatusFilterAll = "All"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelCacheScopeName      = "cache"
	OtelStoreScopeName      = "dynamodb"

	OtelAttributeTable      = "dynamodb.table"
	OtelAttributeCustomerID = "customer.id"
	OtelAttributeSessionID  = "session.id"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
