package v1

import (
	"github.com/shenikar/geofence_monitoring/internal/models"
)

// DTOToGeofenceModel преобразует запрос создания в доменную модель.
// Зона по умолчанию активна.
func DTOToGeofenceModel(subjectID string, dto CreateGeofenceRequest) *models.Geofence {
	isActive := true
	if dto.IsActive != nil {
		isActive = *dto.IsActive
	}
	return &models.Geofence{
		SubjectID:    subjectID,
		Name:         dto.Name,
		Center:       models.LocationPoint{Latitude: *dto.Latitude, Longitude: *dto.Longitude},
		RadiusMeters: dto.RadiusMeters,
		IsActive:     isActive,
		CreatedBy:    dto.CreatedBy,
	}
}

// DTOToGeofencePatch преобразует запрос обновления в набор изменённых полей
func DTOToGeofencePatch(dto UpdateGeofenceRequest) models.GeofencePatch {
	patch := models.GeofencePatch{
		Name:         dto.Name,
		RadiusMeters: dto.RadiusMeters,
		IsActive:     dto.IsActive,
	}
	if dto.Latitude != nil && dto.Longitude != nil {
		patch.Center = &models.LocationPoint{Latitude: *dto.Latitude, Longitude: *dto.Longitude}
	}
	return patch
}

// ModelToGeofenceResponse преобразует доменную модель в DTO для ответа
func ModelToGeofenceResponse(model *models.Geofence) *GeofenceResponse {
	if model == nil {
		return nil
	}
	return &GeofenceResponse{
		ID:           model.ID,
		SubjectID:    model.SubjectID,
		Name:         model.Name,
		Latitude:     model.Center.Latitude,
		Longitude:    model.Center.Longitude,
		RadiusMeters: model.RadiusMeters,
		IsActive:     model.IsActive,
		CreatedBy:    model.CreatedBy,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ModelToSubjectResponse(model *models.Subject) *SubjectResponse {
	resp := &SubjectResponse{
		ID:                model.ID,
		Name:              model.Name,
		Geofence:          ModelToGeofenceResponse(model.Geofence),
		LocationUpdatedAt: model.LocationUpdatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
	if model.LastKnownLocation != nil {
		resp.LastKnownLocation = &LocationResponse{
			Latitude:  model.LastKnownLocation.Latitude,
			Longitude: model.LastKnownLocation.Longitude,
		}
	}
	return resp
}

func ModelToAlertResponse(model *models.GeofenceAlert) *AlertResponse {
	return &AlertResponse{
		ID:                       model.ID,
		SubjectID:                model.SubjectID,
		SubjectName:              model.SubjectName,
		CaregiverID:              model.CaregiverID,
		GeofenceID:               model.GeofenceID,
		GeofenceName:             model.GeofenceName,
		Latitude:                 model.Location.Latitude,
		Longitude:                model.Location.Longitude,
		DistanceFromCenterMeters: model.DistanceFromCenterMeters,
		Timestamp:                model.Timestamp,
		IsRead:                   model.IsRead,
		Severity:                 model.Severity,
	}
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(models []*models.GeofenceAlert) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}
