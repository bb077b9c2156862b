package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringArray custom type for a list of URLs stored in a single column
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return errors.New("type assertion to []byte failed")
		}
	}

	return json.Unmarshal(bytes, a)
}

// ActivityType represents one entry of the shared activity catalog.
// Entries are global: they are not scoped to any user.
type ActivityType struct {
	ID                    string      `json:"id" gorm:"primaryKey"`
	Name                  string      `json:"name" gorm:"uniqueIndex;not null"`
	Title                 string      `json:"title" gorm:"not null"`
	Description           string      `json:"description" gorm:"not null;default:''"`
	InfoTooltip           string      `json:"infoTooltip" gorm:"not null;default:''"`
	IconName              string      `json:"iconName" gorm:"not null;default:'help_outline'"`
	ColorValue            int64       `json:"colorValue" gorm:"not null;default:4280391411"`
	Order                 int         `json:"order" gorm:"column:order;not null;default:999;index"`
	IsNew                 bool        `json:"isNew" gorm:"not null;default:false"`
	IsHighlighted         bool        `json:"isHighlighted" gorm:"not null;default:false"`
	IsEnabled             bool        `json:"isEnabled" gorm:"not null;default:true;index"`
	Category              *string     `json:"category" gorm:"default:null"`
	ActivityPictogramURL  *string     `json:"activityPictogramUrl" gorm:"default:null"`
	MaterialPictogramURLs StringArray `json:"materialPictogramUrls" gorm:"type:jsonb"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             time.Time   `json:"updatedAt"`
}

// TableName keeps the original schema's table name
func (ActivityType) TableName() string {
	return "activity_type"
}
