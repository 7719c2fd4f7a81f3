package constant

import "time"

const (
	Empty = ""
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyOwner contextKey = "owner"
)

const (
	RequestParamID       = "id"
	RequestParamOrderID  = "orderId"
	RequestParamFilename = "filename"
	RequestMaxMemory     = 10 << 20 // 10 MB
)

const (
	FormFieldFiles  = "files"
	FormFieldName   = "name"
	FormFieldEmail  = "email"
	FormFieldPhone  = "phone"
	FormFieldCopies = "copies"
	FormFieldColor  = "color"
	FormFieldNotes  = "notes"
)

const (
	OrderStatusPending = "pending"
	OrderStatusPrinted = "printed"

	BookingStatusConfirmed = "confirmed"
)

const (
	ColorModeBW    = "bw"
	ColorModeColor = "color"

	DefaultCopies = "1"
)

const (
	PqErrorCodeUniqueViolation    = "23505"
	MySQLErrNumDuplicateEntry     = 1062
	MaxIdentifierGenerateAttempts = 5
)

const (
	DateFormat        = time.RFC3339
	BookingDateFormat = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelStorageScopeName    = "storage"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentDisposition = "Content-Disposition"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON        = "application/json"
	ContentTypeOctetStream = "application/octet-stream"
)

const (
	ResponseErrorRequestLimitExceeded = "request limit exceeded"
	ResponseErrorPrepareShutdown      = "server is preparing to shut down"
)
