package model

import "time"

// CD is one audio disc in the collection.
type CD struct {
	ID              string    `json:"id" gorm:"primaryKey;size:36"`
	Title           string    `json:"title" gorm:"size:255;not null"`
	Artist          string    `json:"artist" gorm:"size:255;not null"`
	Year            int       `json:"year" gorm:"not null"`
	Genre           string    `json:"genre" gorm:"size:100;not null"`
	Barcode         string    `json:"barcode,omitempty" gorm:"size:13;index"`
	CoverURL        string    `json:"coverUrl,omitempty" gorm:"size:767"`
	DurationMinutes int       `json:"duration,omitempty"` // total playing time in minutes
	Notes           string    `json:"notes,omitempty" gorm:"type:text"`
	DateAdded       time.Time `json:"dateAdded"`
}

// TableName maps the model onto the "cds" collection.
func (CD) TableName() string {
	return "cds"
}

// CDUpdate carries a partial update for a CD. Nil fields are left unchanged.
// ID and DateAdded are immutable and have no counterpart here.
type CDUpdate struct {
	Title           *string `json:"title,omitempty"`
	Artist          *string `json:"artist,omitempty"`
	Year            *int    `json:"year,omitempty"`
	Genre           *string `json:"genre,omitempty"`
	Barcode         *string `json:"barcode,omitempty"`
	CoverURL        *string `json:"coverUrl,omitempty"`
	DurationMinutes *int    `json:"duration,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}
