package utils

import (
	"agenda-sync-service/internal/pkg/constvars"
	"agenda-sync-service/internal/pkg/dto/responses"
	"agenda-sync-service/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	BuildJSONResponse(w, code, response)
}

// BuildJSONResponse writes body as-is, for endpoints whose contract is a flat object.
func BuildJSONResponse(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		Kind:          constvars.ErrKindInternal,
		ClientMessage: constvars.ErrClientSomethingWrongWithApplication,
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		response.StatusCode = customErr.StatusCode
		response.Kind = customErr.Kind
		response.ClientMessage = customErr.ClientMessage
		response.Details = customErr.Details
		if response.Details == nil && customErr.Cause() != "" {
			response.Details = customErr.Cause()
		}
		for _, location := range customErr.Locations {
			log.Error(customErr.DevMessage,
				zap.String("kind", customErr.Kind),
				zap.Any("location", location),
			)
		}
	} else if err != nil {
		response.Details = err.Error()
		log.Error(err.Error())
	}

	appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
	if customErr != nil && appEnvironment != constvars.AppEnvProduction {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}

	BuildJSONResponse(w, response.StatusCode, response)
}
