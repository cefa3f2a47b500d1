package models

import "time"

type Doctor struct {
	Code           string    `json:"code" bson:"code"`
	Name           string    `json:"name" bson:"name"`
	Gender         string    `json:"gender" bson:"gender"`
	Age            int       `json:"age" bson:"age"`
	DepartmentId   string    `json:"departmentId" bson:"departmentId"`
	DepartmentName string    `json:"departmentName" bson:"departmentName"`
	Speciality     string    `json:"speciality" bson:"speciality"`
	Email          string    `json:"email" bson:"email"`
	Image          string    `json:"image" bson:"image"`
	FeePercentage  float64   `json:"feePercentage" bson:"feePercentage"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}
