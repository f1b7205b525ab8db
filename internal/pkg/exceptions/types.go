package exceptions

import (
	"agenda-sync-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed).
			WithKind(constvars.ErrKindValidation).
			WithDetails(FormatAllValidationErrors(err))
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON).
			WithKind(constvars.ErrKindValidation)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDate).
			WithKind(constvars.ErrKindValidation)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON).
			WithKind(constvars.ErrKindInternal)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded).
			WithKind(constvars.ErrKindInternal)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess).
			WithKind(constvars.ErrKindInternal)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID).
			WithKind(constvars.ErrKindInternal)
	}
	ErrInvalidAPIKey = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevInvalidAPIKey).
			WithKind(constvars.ErrKindUnauthorized)
	}

	// Configuration
	ErrConfiguration = func(settings ...string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSyncNotConfigured, fmt.Sprintf(constvars.ErrDevMissingConfiguration, settings)).
			WithKind(constvars.ErrKindConfiguration).
			WithDetails(settings)
	}
	ErrInvalidPrivateKey = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSyncNotConfigured, constvars.ErrDevInvalidPrivateKey).
			WithKind(constvars.ErrKindConfiguration)
	}

	// Token exchange
	ErrSignAssertion = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSpreadsheetAuthFailed, constvars.ErrDevSignAssertion).
			WithKind(constvars.ErrKindAuthentication)
	}
	ErrAuthentication = func(err error, tokenURL string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSpreadsheetAuthFailed, fmt.Sprintf(constvars.ErrDevTokenExchange, tokenURL)).
			WithKind(constvars.ErrKindAuthentication)
	}
	ErrTokenMissing = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientSpreadsheetAuthFailed, constvars.ErrDevTokenMissing).
			WithKind(constvars.ErrKindAuthentication)
	}

	// Locating
	ErrSheetNotFound = func(title string, availableTitles []string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientSheetNotFound, fmt.Sprintf(constvars.ErrDevSheetNotFound, title)).
			WithKind(constvars.ErrKindNotFound).
			WithDetails(SheetNotFoundDetails{Searched: title, AvailableSheets: availableTitles})
	}
	ErrHeaderDateNotFound = func(header string, availableDates []string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientHeaderDateNotFound, fmt.Sprintf(constvars.ErrDevHeaderDateNotFound, header)).
			WithKind(constvars.ErrKindNotFound).
			WithDetails(HeaderDateNotFoundDetails{Searched: header, AvailableDates: availableDates})
	}
	ErrTimeRowNotFound = func(clock string, column, firstRow, lastRow int, availableTimes []string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientTimeRowNotFound, fmt.Sprintf(constvars.ErrDevTimeRowNotFound, clock, column, firstRow, lastRow)).
			WithKind(constvars.ErrKindNotFound).
			WithDetails(TimeRowNotFoundDetails{Searched: clock, AvailableTimes: availableTimes})
	}
	ErrUnsupportedWeekday = func(date, weekday string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientUnsupportedWeekday, fmt.Sprintf(constvars.ErrDevUnsupportedWeekday, date, weekday)).
			WithKind(constvars.ErrKindUnsupportedWeekday).
			WithDetails(UnsupportedWeekdayDetails{Date: date, Weekday: weekday})
	}

	ErrInvalidClock = func(clock string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidClock, clock)).
			WithKind(constvars.ErrKindValidation)
	}

	// Spreadsheet upstream
	ErrSpreadsheetService = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSpreadsheetRead, constvars.ErrDevSpreadsheetService).
			WithKind(constvars.ErrKindConfiguration)
	}
	ErrSpreadsheetMetadata = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSpreadsheetRead, constvars.ErrDevSpreadsheetMetadata).
			WithKind(constvars.ErrKindUpstreamRead)
	}
	ErrSpreadsheetRead = func(err error, a1Range string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSpreadsheetRead, fmt.Sprintf(constvars.ErrDevSpreadsheetRead, a1Range)).
			WithKind(constvars.ErrKindUpstreamRead)
	}
	ErrSpreadsheetWrite = func(err error, a1Range string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSpreadsheetWrite, fmt.Sprintf(constvars.ErrDevSpreadsheetWrite, a1Range)).
			WithKind(constvars.ErrKindWrite)
	}
	ErrSpreadsheetFormat = func(err error, a1Range string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSpreadsheetFormat, fmt.Sprintf(constvars.ErrDevSpreadsheetFormat, a1Range)).
			WithKind(constvars.ErrKindFormat)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest).
			WithKind(constvars.ErrKindInternal)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName)).
			WithKind(constvars.ErrKindInternal)
	}
	ErrRabbitMQConsumeMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQConsumeMessage, queueName)).
			WithKind(constvars.ErrKindInternal)
	}
)

type SheetNotFoundDetails struct {
	Searched        string   `json:"searched"`
	AvailableSheets []string `json:"available_sheets"`
}

type HeaderDateNotFoundDetails struct {
	Searched       string   `json:"searched"`
	AvailableDates []string `json:"available_dates"`
}

type TimeRowNotFoundDetails struct {
	Searched       string   `json:"searched"`
	AvailableTimes []string `json:"available_times"`
}

type UnsupportedWeekdayDetails struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}
