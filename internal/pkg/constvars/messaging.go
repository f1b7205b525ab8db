package constvars

const (
	DefaultSheetSyncQueueName      = "appointment_sheet_sync_queue"
	DefaultSheetSyncDeadLetterName = "appointment_sheet_sync_dlq"
	MessageHeaderError             = "x-sync-error"
	MessageHeaderErrorKind         = "x-sync-error-kind"
)
