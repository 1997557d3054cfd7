package repository

import "time"

type CategoryEntity struct {
	ID        string    `bson:"_id"`
	Title     string    `bson:"title"`
	Image     string    `bson:"image,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
