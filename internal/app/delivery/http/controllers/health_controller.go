package controllers

import (
	"agenda-sync-service/internal/pkg/constvars"
	"agenda-sync-service/internal/pkg/utils"
	"net/http"
)

func Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthySuccessMessage, nil)
}
