package models

import "time"

type Medicine struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"size:255;not null;index"`
	Category    string     `json:"category" gorm:"size:32;not null;index"`
	Price       float64    `json:"price" gorm:"not null;default:0"`
	Rating      float64    `json:"rating" gorm:"not null;default:0"`
	Pack        string     `json:"pack" gorm:"size:120"`
	Description string     `json:"description"`
	Image       string     `json:"image" gorm:"size:255"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	Status      string     `json:"status" gorm:"size:16;not null;default:'available'"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
