package models

import "time"

type Department struct {
	Code           string    `json:"code" bson:"code"`
	Name           string    `json:"name" bson:"name"`
	Description    string    `json:"description" bson:"description"`
	Location       string    `json:"location" bson:"location"`
	HeadDoctorId   string    `json:"headDoctorId" bson:"headDoctorId"`
	HeadDoctorName string    `json:"headDoctorName" bson:"headDoctorName"`
	Email          string    `json:"email" bson:"email"`
	PhoneNo        string    `json:"phoneNo" bson:"phoneNo"`
	Image          string    `json:"image" bson:"image"`
	FeePercentage  float64   `json:"feePercentage" bson:"feePercentage"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}
