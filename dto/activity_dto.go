package dto

import (
	"time"
)

// CreateActivityTypeRequest represents the fields accepted when creating a
// catalog entry. Every field except Name and Title is optional; defaults are
// assigned by the service.
type CreateActivityTypeRequest struct {
	ID                    *string  `json:"id"`
	Name                  string   `json:"name"`
	Title                 string   `json:"title"`
	Description           *string  `json:"description"`
	InfoTooltip           *string  `json:"infoTooltip"`
	IconName              *string  `json:"iconName"`
	ColorValue            *int64   `json:"colorValue"`
	Order                 *int     `json:"order"`
	IsNew                 *bool    `json:"isNew"`
	IsHighlighted         *bool    `json:"isHighlighted"`
	IsEnabled             *bool    `json:"isEnabled"`
	Category              *string  `json:"category"`
	ActivityPictogramURL  *string  `json:"activityPictogramUrl"`
	MaterialPictogramURLs []string `json:"materialPictogramUrls"`
}

// UpdateActivityTypeRequest represents a partial update. Nil pointers keep
// the stored value, with one deliberate exception: Category,
// ActivityPictogramURL and MaterialPictogramURLs are always written with
// whatever was supplied, including nil to clear them.
type UpdateActivityTypeRequest struct {
	Name                  *string  `json:"name"`
	Title                 *string  `json:"title"`
	Description           *string  `json:"description"`
	InfoTooltip           *string  `json:"infoTooltip"`
	IconName              *string  `json:"iconName"`
	ColorValue            *int64   `json:"colorValue"`
	Order                 *int     `json:"order"`
	IsNew                 *bool    `json:"isNew"`
	IsHighlighted         *bool    `json:"isHighlighted"`
	IsEnabled             *bool    `json:"isEnabled"`
	Category              *string  `json:"category"`
	ActivityPictogramURL  *string  `json:"activityPictogramUrl"`
	MaterialPictogramURLs []string `json:"materialPictogramUrls"`
}

// ReorderEntry is one {id, order} pair of a reorder batch
type ReorderEntry struct {
	ID    string `json:"id"`
	Order *int   `json:"order"`
}

// ReorderRequest is the body of PUT /activity-types/reorder
type ReorderRequest struct {
	Activities []ReorderEntry `json:"activities"`
}

// ActivityTypeResponse is the camelCase contract emitted to clients
type ActivityTypeResponse struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	InfoTooltip           string    `json:"infoTooltip"`
	IconName              string    `json:"iconName"`
	ColorValue            int64     `json:"colorValue"`
	Order                 int       `json:"order"`
	IsNew                 bool      `json:"isNew"`
	IsHighlighted         bool      `json:"isHighlighted"`
	IsEnabled             bool      `json:"isEnabled"`
	Category              *string   `json:"category"`
	ActivityPictogramURL  *string   `json:"activityPictogramUrl"`
	MaterialPictogramURLs []string  `json:"materialPictogramUrls"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}
