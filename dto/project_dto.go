package dto

import (
	"encoding/json"
	"time"
)

// SaveProjectRequest is the body of POST /projects. When ID is present the
// save is an update of that project; when absent a new id is generated.
type SaveProjectRequest struct {
	ID   *string         `json:"id"`
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

// ProjectResponse is the client-facing view of a project
type ProjectResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Data          json.RawMessage `json:"data"`
	CoverImageURL *string         `json:"coverImageUrl"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
