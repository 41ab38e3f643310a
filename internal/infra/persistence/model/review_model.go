// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// The composite unique index enforces one review per user per product at
// insert time.
type ReviewModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID   string    `gorm:"type:text;not null;uniqueIndex:idx_reviews_product_user;index"`
	ProductName string    `gorm:"type:text;not null"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_product_user"`
	UserName    string    `gorm:"type:text;not null"`
	Rating      int       `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Text        string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
