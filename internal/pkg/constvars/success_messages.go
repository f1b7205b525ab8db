package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	SheetSyncSuccessMessage = "appointment written to agenda sheet"
	DebugGridSuccessMessage = "agenda sheet grid fetched"
	HealthySuccessMessage   = "ok"
)
