package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Document custom type for opaque JSON storage. The canvas state inside is
// owned by the client and stored verbatim.
type Document json.RawMessage

func (d Document) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	return string(d), nil
}

func (d *Document) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*d = append(Document(nil), v...)
		return nil
	case string:
		*d = Document(v)
		return nil
	}
	return errors.New("unsupported type for Document scan")
}

func (d Document) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	*d = append((*d)[0:0], data...)
	return nil
}

// Project represents a saved worksheet project, exclusively owned by one user
type Project struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID        string    `json:"-" gorm:"type:uuid;not null;index"`
	Name          string    `json:"name" gorm:"not null"`
	Data          Document  `json:"data" gorm:"type:jsonb"`
	CoverImageURL *string   `json:"coverImageUrl" gorm:"default:null"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the original schema's table name
func (Project) TableName() string {
	return "project"
}
