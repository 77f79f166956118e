package models

import "time"

// Product is a catalog entry. Browsing and search live outside this core;
// products exist here so offerings have something to point at.
type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
