package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"datetime":         "must follow the format %s",
	"clock_hhmm":       "must be a time in HH:MM format",
	"max":              "maximum at %s characters long",
	"oneof":            "must be one of [%s]",
	"required_without": "is required when %s is not present",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"datetime":         true,
	"max":              true,
	"oneof":            true,
	"required_without": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientNotAuthorized                 = "not authorized"
	ErrClientSyncNotConfigured             = "agenda sheet synchronization is not configured"
	ErrClientSpreadsheetAuthFailed         = "could not authenticate against the spreadsheet service"
	ErrClientSheetNotFound                 = "agenda tab not found in the spreadsheet"
	ErrClientHeaderDateNotFound            = "week header date not found in the agenda tab"
	ErrClientTimeRowNotFound               = "appointment time not found in the week block"
	ErrClientUnsupportedWeekday            = "appointments on weekends are not supported by the agenda sheet"
	ErrClientSpreadsheetRead               = "could not read the agenda sheet"
	ErrClientSpreadsheetWrite              = "could not write the appointment to the agenda sheet"
	ErrClientSpreadsheetFormat             = "could not color the appointment cells"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevInvalidAPIKey            = "invalid api key"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevMissingConfiguration     = "missing configuration: %s"
	ErrDevInvalidPrivateKey        = "service account private key cannot be parsed"
	ErrDevSignAssertion            = "failed to sign service account assertion"
	ErrDevTokenExchange            = "token exchange at %s failed"
	ErrDevTokenMissing             = "token endpoint response has no access_token"
	ErrDevSheetNotFound            = "tab %q not found in spreadsheet"
	ErrDevHeaderDateNotFound       = "header date %s not found in grid"
	ErrDevTimeRowNotFound          = "time %s not found in column %d rows %d..%d"
	ErrDevUnsupportedWeekday       = "%s falls on %s"
	ErrDevInvalidClock             = "time %q is not HH:MM"
	ErrDevSpreadsheetService       = "failed to build spreadsheet service"
	ErrDevSpreadsheetMetadata      = "failed to fetch spreadsheet metadata"
	ErrDevSpreadsheetRead          = "failed to read range %s"
	ErrDevSpreadsheetWrite         = "failed to write range %s"
	ErrDevSpreadsheetFormat        = "failed to format range %s"
	ErrDevRabbitMQPublishMessage   = "failed to publish message to queue %s"
	ErrDevRabbitMQConsumeMessage   = "failed to consume messages from queue %s"
	ErrDevRabbitMQMessageUnconfirm = "message not confirmed"
)

// Error kinds rendered to callers and used by the consumer to classify failures
const (
	ErrKindConfiguration      = "ConfigurationError"
	ErrKindAuthentication     = "AuthenticationError"
	ErrKindNotFound           = "NotFoundError"
	ErrKindUnsupportedWeekday = "UnsupportedWeekdayError"
	ErrKindValidation         = "ValidationError"
	ErrKindUpstreamRead       = "UpstreamReadError"
	ErrKindWrite              = "WriteError"
	ErrKindFormat             = "FormatError"
	ErrKindUnauthorized       = "Unauthorized"
	ErrKindInternal           = "InternalError"
)
