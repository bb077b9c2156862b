package repositories

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/activi-backend/database"
	"github.com/activi-backend/models"
)

// ActivityTypeRepository handles database operations for the shared
// activity catalog
type ActivityTypeRepository struct{}

// NewActivityTypeRepository creates a new activity type repository instance
func NewActivityTypeRepository() *ActivityTypeRepository {
	return &ActivityTypeRepository{}
}

// FindAllOrdered retrieves every catalog entry ascending by display order
func (r *ActivityTypeRepository) FindAllOrdered() ([]models.ActivityType, error) {
	var activities []models.ActivityType
	result := database.DB.Order(`"order" ASC`).Find(&activities)
	return activities, result.Error
}

// FindByName retrieves a catalog entry by its unique machine name
func (r *ActivityTypeRepository) FindByName(name string) (models.ActivityType, error) {
	var activity models.ActivityType
	result := database.DB.First(&activity, "name = ?", name)
	return activity, result.Error
}

// FindByID retrieves a catalog entry by its ID
func (r *ActivityTypeRepository) FindByID(id string) (models.ActivityType, error) {
	var activity models.ActivityType
	result := database.DB.First(&activity, "id = ?", id)
	return activity, result.Error
}

// Create inserts a new catalog entry
func (r *ActivityTypeRepository) Create(activity models.ActivityType) (models.ActivityType, error) {
	result := database.DB.Create(&activity)
	return activity, result.Error
}

// UpdateFields applies the given column assignments to one entry and returns
// the affected row count. Assignments may contain explicit NULLs, which is
// why this takes a map rather than a struct (gorm skips zero struct fields).
func (r *ActivityTypeRepository) UpdateFields(id string, fields map[string]interface{}) (int64, error) {
	fields["updated_at"] = time.Now()
	result := database.DB.Model(&models.ActivityType{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

// Delete removes a catalog entry and returns the affected row count
func (r *ActivityTypeRepository) Delete(id string) (int64, error) {
	result := database.DB.Delete(&models.ActivityType{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// Transaction runs fn inside a single database transaction. Any error
// returned by fn rolls back every statement issued so far.
func (r *ActivityTypeRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return database.DB.Transaction(fn)
}

// UpsertSeed inserts a default entry, or refreshes its descriptive fields
// when the id already exists. The update always forces is_enabled back on
// and leaves the pictogram columns untouched.
func (r *ActivityTypeRepository) UpsertSeed(activity models.ActivityType) error {
	result := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"title":          activity.Title,
			"description":    activity.Description,
			"info_tooltip":   activity.InfoTooltip,
			"icon_name":      activity.IconName,
			"color_value":    activity.ColorValue,
			"order":          activity.Order,
			"is_new":         activity.IsNew,
			"is_highlighted": activity.IsHighlighted,
			"is_enabled":     true,
			"category":       activity.Category,
			"updated_at":     time.Now(),
		}),
	}).Create(&activity)
	return result.Error
}
