package models

import "time"

type User struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Email      string    `json:"email" bson:"email"`
	FullName   string    `json:"full_name" bson:"fullName"`
	Password   string    `json:"-" bson:"password"`
	Role       StaffRole `json:"role" bson:"role"`
	Department string    `json:"department,omitempty" bson:"department,omitempty"`
	ExternalID string    `json:"external_id,omitempty" bson:"externalId,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updatedAt"`
}
