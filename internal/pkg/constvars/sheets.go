package constvars

import "time"

// MonthNames are the tab title prefixes, indexed by time.Month-1.
var MonthNames = [12]string{
	"Janeiro",
	"Fevereiro",
	"Março",
	"Abril",
	"Maio",
	"Junho",
	"Julho",
	"Agosto",
	"Setembro",
	"Outubro",
	"Novembro",
	"Dezembro",
}

const (
	SheetTitleSeparator = "/"
	SheetDateLayout     = "02/01/2006"
	RequestDateLayout   = time.DateOnly
	ClockLayout         = "15:04"
)

const (
	DefaultWeekBlockWidth      = 5
	DefaultTimeSearchWindow    = 30
	DefaultTimeDiagnosticLimit = 10
	DefaultDebugMaxRows        = 100
	DefaultDebugMaxColumns     = 52
	DefaultDebugDateScanRows   = 10
	DefaultMaxRequestsPerMin   = 60
	AppointmentRowWidth        = 4
	DataColumnOffset           = 1
)

const (
	ValueInputOptionUserEntered = "USER_ENTERED"
	ValueRenderFormattedValue   = "FORMATTED_VALUE"
	BackgroundColorFieldMask    = "userEnteredFormat.backgroundColor"
)

const (
	GoogleTokenURL           = "https://oauth2.googleapis.com/token"
	GoogleSpreadsheetsScope  = "https://www.googleapis.com/auth/spreadsheets"
	GoogleJWTBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	ServiceAccountTokenTTL   = 3600 * time.Second
)
