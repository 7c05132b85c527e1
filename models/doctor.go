package models

import "time"

type Doctor struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"size:100;not null;index"`
	ContactNo       string    `json:"contact_no" gorm:"size:15;uniqueIndex;not null"`
	Address         string    `json:"address" gorm:"size:255;not null"`
	Specialization  string    `json:"specialization" gorm:"size:32;not null;index"`
	ModeOfConsult   string    `json:"mode_of_consult" gorm:"size:16;not null;default:'Both'"`
	Experience      int       `json:"experience" gorm:"not null;default:0"`
	ConsultationFee float64   `json:"consultation_fee" gorm:"not null;default:0"`
	Languages       []string  `json:"languages" gorm:"serializer:json"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Offers reports whether the doctor can be consulted in the given mode.
// Doctors registered for both modes satisfy either single mode.
func (d Doctor) Offers(mode string) bool {
	return d.ModeOfConsult == mode || d.ModeOfConsult == ModeBoth
}

// Speaks reports whether lang is one of the doctor's languages
func (d Doctor) Speaks(lang string) bool {
	return OneOf(lang, d.Languages)
}
