package model

import "time"

// DVD is one video disc in the collection.
type DVD struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	Title          string    `json:"title" gorm:"size:255;not null"`
	Director       string    `json:"director" gorm:"size:255;not null"`
	Year           int       `json:"year" gorm:"not null"`
	Genre          string    `json:"genre" gorm:"size:100;not null"`
	Barcode        string    `json:"barcode,omitempty" gorm:"size:13;index"`
	CoverURL       string    `json:"coverUrl,omitempty" gorm:"size:767"`
	RuntimeMinutes int       `json:"runtime,omitempty"`
	Rating         string    `json:"rating,omitempty" gorm:"size:10"` // BBFC classification, e.g. PG, 12A, 15
	Notes          string    `json:"notes,omitempty" gorm:"type:text"`
	DateAdded      time.Time `json:"dateAdded"`
}

// TableName maps the model onto the "dvds" collection.
func (DVD) TableName() string {
	return "dvds"
}

// DVDUpdate carries a partial update for a DVD. Nil fields are left unchanged.
// ID and DateAdded are immutable and have no counterpart here.
type DVDUpdate struct {
	Title          *string `json:"title,omitempty"`
	Director       *string `json:"director,omitempty"`
	Year           *int    `json:"year,omitempty"`
	Genre          *string `json:"genre,omitempty"`
	Barcode        *string `json:"barcode,omitempty"`
	CoverURL       *string `json:"coverUrl,omitempty"`
	RuntimeMinutes *int    `json:"runtime,omitempty"`
	Rating         *string `json:"rating,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}
