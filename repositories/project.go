package repositories

import (
	"gorm.io/gorm/clause"

	"github.com/activi-backend/database"
	"github.com/activi-backend/models"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByUserID retrieves all projects belonging to a user, most recently
// updated first
func (r *ProjectRepository) FindByUserID(userID string) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Where("user_id = ?", userID).Order("updated_at DESC").Find(&projects)
	return projects, result.Error
}

// Upsert inserts the project, or updates it when a row with the same id
// already exists. The update branch is constrained to rows owned by the
// project's user, so the owner check and the write are one atomic statement.
// Returns the affected row count: zero means the id exists under a different
// owner and nothing was written.
func (r *ProjectRepository) Upsert(project *models.Project) (int64, error) {
	result := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"name":            project.Name,
			"data":            project.Data,
			"cover_image_url": project.CoverImageURL,
			"updated_at":      project.UpdatedAt,
		}),
		Where: clause.Where{
			Exprs: []clause.Expression{
				clause.Eq{Column: clause.Column{Table: "project", Name: "user_id"}, Value: project.UserID},
			},
		},
	}).Create(project)
	return result.RowsAffected, result.Error
}

// DeleteOwned deletes the project only when both id and owner match.
// Returns the affected row count: zero covers both "never existed" and
// "belongs to someone else".
func (r *ProjectRepository) DeleteOwned(id, userID string) (int64, error) {
	result := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Project{})
	return result.RowsAffected, result.Error
}
