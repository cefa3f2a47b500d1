package models

import "time"

type OrderedTest struct {
	Name  string  `json:"name" bson:"name"`
	Price float64 `json:"price" bson:"price"`
}

type LabTest struct {
	Code       string        `json:"code" bson:"code"`
	Tests      []OrderedTest `json:"tests" bson:"tests"`
	Date       interface{}   `json:"date" bson:"date"`
	Time       string        `json:"time" bson:"time"`
	Status     string        `json:"status" bson:"status"`
	TotalPrice float64       `json:"totalPrice" bson:"totalPrice"`
	PatientId  string        `json:"patientId" bson:"patientId"`
	CreatedAt  time.Time     `json:"createdAt" bson:"createdAt"`
}
