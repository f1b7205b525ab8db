package config

import (
	"agenda-sync-service/internal/pkg/constvars"
	"agenda-sync-service/internal/pkg/utils"
	"log"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			VHost:    utils.GetEnvString("RABBITMQ_VHOST", ""),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                      utils.GetEnvString("APP_PORT", "8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			APIKey:                    utils.GetEnvString("APP_API_KEY", ""),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			AllowedOrigins:            splitCSV(utils.GetEnvString("APP_ALLOWED_ORIGINS", "*")),
		},
		Sheets: Sheets{
			SpreadsheetID:        utils.GetEnvString("GOOGLE_SHEETS_SPREADSHEET_ID", ""),
			BaseURL:              utils.GetEnvString("GOOGLE_SHEETS_BASE_URL", ""),
			TokenURL:             utils.GetEnvString("GOOGLE_TOKEN_URL", constvars.GoogleTokenURL),
			Scope:                utils.GetEnvString("GOOGLE_SHEETS_SCOPE", constvars.GoogleSpreadsheetsScope),
			WeekBlockWidth:       utils.GetEnvInt("SHEETS_WEEK_BLOCK_WIDTH", constvars.DefaultWeekBlockWidth),
			TimeSearchWindow:     utils.GetEnvInt("SHEETS_TIME_SEARCH_WINDOW", constvars.DefaultTimeSearchWindow),
			TimeDiagnosticLimit:  utils.GetEnvInt("SHEETS_TIME_DIAGNOSTIC_LIMIT", constvars.DefaultTimeDiagnosticLimit),
			DebugMaxRows:         utils.GetEnvInt("SHEETS_DEBUG_MAX_ROWS", constvars.DefaultDebugMaxRows),
			DebugMaxColumns:      utils.GetEnvInt("SHEETS_DEBUG_MAX_COLUMNS", constvars.DefaultDebugMaxColumns),
			DebugDateScanRows:    utils.GetEnvInt("SHEETS_DEBUG_DATE_SCAN_ROWS", constvars.DefaultDebugDateScanRows),
			MaxRequestsPerMinute: utils.GetEnvInt("SHEETS_MAX_REQUESTS_PER_MINUTE", constvars.DefaultMaxRequestsPerMin),
			HTTPTimeoutInSeconds: utils.GetEnvInt("SHEETS_HTTP_TIMEOUT_IN_SECONDS", 0),
		},
		ServiceAccount: loadServiceAccount(
			utils.GetEnvString("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
			utils.GetEnvString("GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY", ""),
			utils.GetEnvString("GOOGLE_SERVICE_ACCOUNT_FILE", ""),
		),
		RabbitMQ: AppRabbitMQ{
			SheetSyncQueue:      utils.GetEnvString("APP_RABBITMQ_SHEET_SYNC_QUEUE", constvars.DefaultSheetSyncQueueName),
			SheetSyncDeadLetter: utils.GetEnvString("APP_RABBITMQ_SHEET_SYNC_DLQ", constvars.DefaultSheetSyncDeadLetterName),
		},
	}
}

type serviceAccountFile struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// loadServiceAccount merges inline credentials with the service account JSON
// file. Inline values win over the file.
func loadServiceAccount(email, privateKey, credentialsFile string) ServiceAccount {
	account := ServiceAccount{
		ClientEmail:     email,
		PrivateKey:      privateKey,
		CredentialsFile: credentialsFile,
	}

	if credentialsFile != "" && (account.ClientEmail == "" || account.PrivateKey == "") {
		raw, err := os.ReadFile(credentialsFile)
		if err != nil {
			log.Printf("Error reading service account file %s: %v", credentialsFile, err)
		} else {
			var file serviceAccountFile
			if err := json.Unmarshal(raw, &file); err != nil {
				log.Printf("Error parsing service account file %s: %v", credentialsFile, err)
			} else {
				if account.ClientEmail == "" {
					account.ClientEmail = file.ClientEmail
				}
				if account.PrivateKey == "" {
					account.PrivateKey = file.PrivateKey
				}
			}
		}
	}

	account.PrivateKey = strings.ReplaceAll(account.PrivateKey, `\n`, "\n")
	return account
}

func splitCSV(value string) []string {
	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
