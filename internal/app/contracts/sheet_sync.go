package contracts

import (
	"agenda-sync-service/internal/app/models"
	"agenda-sync-service/internal/pkg/dto/requests"
	"agenda-sync-service/internal/pkg/dto/responses"
	"context"
)

type SheetSyncUsecase interface {
	SyncAppointment(ctx context.Context, record models.AppointmentRecord) (*responses.SheetSync, error)
	DebugGrid(ctx context.Context, request *requests.DebugGrid) (*responses.DebugGrid, error)
}
