package services

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/activi-backend/dto"
	"github.com/activi-backend/models"
	"github.com/activi-backend/repositories"
	"github.com/activi-backend/utils"
)

// ProjectService handles business logic for user-owned projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
	}
}

// ListProjects retrieves the caller's projects, most recently updated first
func (s *ProjectService) ListProjects(userID string) ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindByUserID(userID)
	if err != nil {
		return nil, utils.NewInternalError("server error")
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, toProjectResponse(project))
	}
	return responses, nil
}

// SaveProject creates or updates a project for the caller. The update branch
// only fires when the existing row belongs to the caller; a known id owned by
// someone else affects zero rows and is rejected. The returned bool reports
// whether a new project was created.
func (s *ProjectService) SaveProject(userID string, req dto.SaveProjectRequest) (*dto.ProjectResponse, bool, error) {
	if req.Name == "" || emptyDocument(req.Data) {
		return nil, false, utils.NewValidationError("project name and data are required")
	}

	created := req.ID == nil || *req.ID == ""
	projectID := ""
	if created {
		projectID = uuid.NewString()
	} else {
		projectID = *req.ID
	}

	project := models.Project{
		ID:            projectID,
		UserID:        userID,
		Name:          req.Name,
		Data:          models.Document(req.Data),
		CoverImageURL: extractCoverImageURL(req.Data),
		UpdatedAt:     time.Now(),
	}

	affected, err := s.projectRepo.Upsert(&project)
	if err != nil {
		return nil, false, utils.NewInternalError("server error")
	}
	if affected == 0 {
		return nil, false, utils.NewForbiddenError("you do not have permission to modify this project")
	}

	response := toProjectResponse(project)
	return &response, created, nil
}

// DeleteProject deletes a project only when the caller owns it. A missing row
// and a foreign-owned row report the same not-found error.
func (s *ProjectService) DeleteProject(userID, projectID string) error {
	affected, err := s.projectRepo.DeleteOwned(projectID, userID)
	if err != nil {
		return utils.NewInternalError("server error")
	}
	if affected == 0 {
		return utils.NewNotFoundError("project not found")
	}
	return nil
}

// emptyDocument reports whether the data field is missing or carries one of
// the empty scalar literals the save rejects: null, "", 0, false
func emptyDocument(data json.RawMessage) bool {
	switch string(bytes.TrimSpace(data)) {
	case "", "null", `""`, "0", "false":
		return true
	}
	return false
}

// extractCoverImageURL pulls coverImage.imageUrl out of the opaque document.
// A document without that field, or one that does not parse, simply yields no
// cover image; the save proceeds either way.
func extractCoverImageURL(data json.RawMessage) *string {
	var doc struct {
		CoverImage struct {
			ImageURL string `json:"imageUrl"`
		} `json:"coverImage"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	if doc.CoverImage.ImageURL == "" {
		return nil
	}
	url := doc.CoverImage.ImageURL
	return &url
}

func toProjectResponse(project models.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:            project.ID,
		Name:          project.Name,
		Data:          json.RawMessage(project.Data),
		CoverImageURL: project.CoverImageURL,
		UpdatedAt:     project.UpdatedAt,
	}
}
