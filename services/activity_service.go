package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/activi-backend/dto"
	"github.com/activi-backend/models"
	"github.com/activi-backend/repositories"
	"github.com/activi-backend/utils"
)

// Catalog defaults assigned when a create request omits optional fields
const (
	defaultIconName   = "help_outline"
	defaultColorValue = 0xFF2196F3
	defaultOrder      = 999
)

// ActivityService handles business logic for the shared activity catalog
type ActivityService struct {
	activityRepo *repositories.ActivityTypeRepository
}

// NewActivityService creates a new activity service instance
func NewActivityService() *ActivityService {
	return &ActivityService{
		activityRepo: repositories.NewActivityTypeRepository(),
	}
}

// ListActivityTypes returns every catalog entry ascending by display order
func (s *ActivityService) ListActivityTypes() ([]dto.ActivityTypeResponse, error) {
	activities, err := s.activityRepo.FindAllOrdered()
	if err != nil {
		return nil, utils.NewInternalError("server error")
	}

	responses := make([]dto.ActivityTypeResponse, 0, len(activities))
	for _, activity := range activities {
		responses = append(responses, toActivityTypeResponse(activity))
	}
	return responses, nil
}

// GetActivityTypeByName returns the catalog entry with the given machine name
func (s *ActivityService) GetActivityTypeByName(name string) (*dto.ActivityTypeResponse, error) {
	activity, err := s.activityRepo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("activity not found")
		}
		return nil, utils.NewInternalError("server error")
	}

	response := toActivityTypeResponse(activity)
	return &response, nil
}

// CreateActivityType creates a catalog entry, assigning defaults for every
// omitted optional field
func (s *ActivityService) CreateActivityType(req dto.CreateActivityTypeRequest) (*dto.ActivityTypeResponse, error) {
	if req.Name == "" || req.Title == "" {
		return nil, utils.NewValidationError("name and title are required")
	}

	activity := models.ActivityType{
		ID:                    uuid.NewString(),
		Name:                  req.Name,
		Title:                 req.Title,
		IconName:              defaultIconName,
		ColorValue:            defaultColorValue,
		Order:                 defaultOrder,
		IsEnabled:             true,
		Category:              req.Category,
		ActivityPictogramURL:  req.ActivityPictogramURL,
		MaterialPictogramURLs: models.StringArray(req.MaterialPictogramURLs),
	}
	if req.ID != nil && *req.ID != "" {
		activity.ID = *req.ID
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.InfoTooltip != nil {
		activity.InfoTooltip = *req.InfoTooltip
	}
	if req.IconName != nil {
		activity.IconName = *req.IconName
	}
	if req.ColorValue != nil {
		activity.ColorValue = *req.ColorValue
	}
	if req.Order != nil {
		activity.Order = *req.Order
	}
	if req.IsNew != nil {
		activity.IsNew = *req.IsNew
	}
	if req.IsHighlighted != nil {
		activity.IsHighlighted = *req.IsHighlighted
	}
	if req.IsEnabled != nil {
		activity.IsEnabled = *req.IsEnabled
	}

	activity, err := s.activityRepo.Create(activity)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.NewConflictError("an activity with that name already exists")
		}
		return nil, utils.NewInternalError("server error")
	}

	response := toActivityTypeResponse(activity)
	return &response, nil
}

// UpdateActivityType partially updates a catalog entry. Most fields keep
// their stored value when omitted; category and the pictogram fields are
// always overwritten with whatever was supplied, including nothing.
func (s *ActivityService) UpdateActivityType(id string, req dto.UpdateActivityTypeRequest) (*dto.ActivityTypeResponse, error) {
	fields := map[string]interface{}{
		"category":                req.Category,
		"activity_pictogram_url":  req.ActivityPictogramURL,
		"material_pictogram_urls": models.StringArray(req.MaterialPictogramURLs),
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.InfoTooltip != nil {
		fields["info_tooltip"] = *req.InfoTooltip
	}
	if req.IconName != nil {
		fields["icon_name"] = *req.IconName
	}
	if req.ColorValue != nil {
		fields["color_value"] = *req.ColorValue
	}
	if req.Order != nil {
		fields["order"] = *req.Order
	}
	if req.IsNew != nil {
		fields["is_new"] = *req.IsNew
	}
	if req.IsHighlighted != nil {
		fields["is_highlighted"] = *req.IsHighlighted
	}
	if req.IsEnabled != nil {
		fields["is_enabled"] = *req.IsEnabled
	}

	affected, err := s.activityRepo.UpdateFields(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.NewConflictError("an activity with that name already exists")
		}
		return nil, utils.NewInternalError("server error")
	}
	if affected == 0 {
		return nil, utils.NewNotFoundError("activity not found")
	}

	activity, err := s.activityRepo.FindByID(id)
	if err != nil {
		return nil, utils.NewInternalError("server error")
	}

	response := toActivityTypeResponse(activity)
	return &response, nil
}

// DeleteActivityType removes a catalog entry
func (s *ActivityService) DeleteActivityType(id string) error {
	affected, err := s.activityRepo.Delete(id)
	if err != nil {
		return utils.NewInternalError("server error")
	}
	if affected == 0 {
		return utils.NewNotFoundError("activity not found")
	}
	return nil
}

// ReorderActivityTypes applies a batch of {id, order} updates as a single
// all-or-nothing transaction. A validation failure mid-batch rolls back every
// update applied so far. There is no conflict detection between concurrent
// batches; the last committed transaction wins.
func (s *ActivityService) ReorderActivityTypes(req dto.ReorderRequest) error {
	if req.Activities == nil {
		return utils.NewValidationError("activities must be an array")
	}

	err := s.activityRepo.Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Activities {
			if entry.ID == "" || entry.Order == nil {
				return utils.NewValidationError("each activity must have id and order")
			}

			result := tx.Model(&models.ActivityType{}).Where("id = ?", entry.ID).Updates(map[string]interface{}{
				"order":      *entry.Order,
				"updated_at": time.Now(),
			})
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
	if err != nil {
		var appErr *utils.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return utils.NewInternalError("server error")
	}
	return nil
}

// SeedDefaultActivityTypes upserts the fixed default catalog. Idempotent:
// re-running refreshes existing rows by id instead of duplicating them, and
// always switches them back on.
func (s *ActivityService) SeedDefaultActivityTypes() error {
	for _, activity := range defaultActivityTypes() {
		if err := s.activityRepo.UpsertSeed(activity); err != nil {
			return err
		}
	}
	return nil
}

func toActivityTypeResponse(activity models.ActivityType) dto.ActivityTypeResponse {
	return dto.ActivityTypeResponse{
		ID:                    activity.ID,
		Name:                  activity.Name,
		Title:                 activity.Title,
		Description:           activity.Description,
		InfoTooltip:           activity.InfoTooltip,
		IconName:              activity.IconName,
		ColorValue:            activity.ColorValue,
		Order:                 activity.Order,
		IsNew:                 activity.IsNew,
		IsHighlighted:         activity.IsHighlighted,
		IsEnabled:             activity.IsEnabled,
		Category:              activity.Category,
		ActivityPictogramURL:  activity.ActivityPictogramURL,
		MaterialPictogramURLs: activity.MaterialPictogramURLs,
		CreatedAt:             activity.CreatedAt,
		UpdatedAt:             activity.UpdatedAt,
	}
}
