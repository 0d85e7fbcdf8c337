package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// PostType classifies a report: an item the poster lost, or one they found.
type PostType string

const (
	PostTypeLost  PostType = "lost"
	PostTypeFound PostType = "found"
)

// ImageURLList is stored as a JSON array column.
type ImageURLList []string

// Value implements driver.Valuer.
func (l ImageURLList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageURLList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal image urls: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *ImageURLList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageURLList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported image urls column type %T", value)
	}
	if len(data) == 0 {
		*l = ImageURLList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// Post represents one lost/found item report. The resolution secret is
// write-only: it never appears in JSON output.
type Post struct {
	ID           uint         `json:"id" gorm:"primaryKey;autoIncrement"`
	Type         PostType     `json:"type" gorm:"type:varchar(10);not null;index"`
	Title        string       `json:"title" gorm:"size:100;not null"`
	Description  string       `json:"description,omitempty" gorm:"size:500"`
	ImageURLs    ImageURLList `json:"imageUrls" gorm:"type:json"`
	ContactEmail string       `json:"contactEmail,omitempty" gorm:"size:255"`
	ContactPhone string       `json:"contactPhone,omitempty" gorm:"size:20"`
	Secret       string       `json:"-" gorm:"size:50"` // never expose in JSON
	IsResolved   bool         `json:"isResolved" gorm:"not null;default:false;index"`
	CreatedAt    time.Time    `json:"createdAt" gorm:"index"`
}
