package config

type (
	DriverConfig struct {
		Logger   Logger
		RabbitMQ RabbitMQ
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
		VHost    string
	}
)

type (
	InternalConfig struct {
		App            App
		Sheets         Sheets
		ServiceAccount ServiceAccount
		RabbitMQ       AppRabbitMQ
	}
	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		Timezone                  string
		EndpointPrefix            string
		APIKey                    string
		MaxRequests               int
		ShutdownTimeout           int
		MaxTimeRequestsPerSeconds int
		AllowedOrigins            []string
	}
	// Sheets holds the spreadsheet target and the layout search settings.
	Sheets struct {
		SpreadsheetID        string
		BaseURL              string
		TokenURL             string
		Scope                string
		WeekBlockWidth       int
		TimeSearchWindow     int
		TimeDiagnosticLimit  int
		DebugMaxRows         int
		DebugMaxColumns      int
		DebugDateScanRows    int
		MaxRequestsPerMinute int
		HTTPTimeoutInSeconds int
	}
	ServiceAccount struct {
		ClientEmail     string
		PrivateKey      string
		CredentialsFile string
	}
	AppRabbitMQ struct {
		SheetSyncQueue      string
		SheetSyncDeadLetter string
	}
)

// HasCredentials reports whether both halves of the credential bundle are set.
func (s ServiceAccount) HasCredentials() bool {
	return s.ClientEmail != "" && s.PrivateKey != ""
}
