package models

import "time"

// Login is a credential record, stored separately from the profile it backs.
type Login struct {
	Code       string    `json:"code" bson:"code"`
	Email      string    `json:"email" bson:"email"`
	Password   string    `json:"password,omitempty" bson:"password"`
	Collection string    `json:"collection" bson:"collection"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}
