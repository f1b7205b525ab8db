package constvars

const (
	// RegexSheetDate matches header cells such as 24/11/2025.
	RegexSheetDate = `^\d{2}/\d{2}/\d{4}$`
	// RegexSheetTime matches time labels with optional seconds, e.g. 8:00, 14:30 or 14:30:00.
	RegexSheetTime = `^(\d{1,2}):(\d{2})(?::\d{2})?$`
	RegexClockHHMM = `^([01]\d|2[0-3]):[0-5]\d$`
)
