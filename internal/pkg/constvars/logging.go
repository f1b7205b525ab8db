package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingSpreadsheetIDKey  = "spreadsheet_id"
	LoggingSheetTitleKey     = "sheet_title"
	LoggingSheetIDKey        = "sheet_id"
	LoggingRangeKey          = "range"
	LoggingTargetRowKey      = "target_row"
	LoggingTargetColumnKey   = "target_column"
	LoggingAppointmentDate   = "appointment_date"
	LoggingAppointmentTime   = "appointment_time"
	LoggingAppointmentStatus = "appointment_status"
	LoggingGridRowsKey       = "grid_rows"
	LoggingDateCellsKey      = "date_cells"
	LoggingQueueNameKey      = "queue_name"
	LoggingDeliveryTagKey    = "delivery_tag"
	LoggingTokenURLKey       = "token_url"
	LoggingIssuerKey         = "issuer"
)
