package models

import "time"

// SettingsCode is the code of the single application-settings document.
const SettingsCode = "APP_SETTINGS"

type Settings struct {
	Code      string    `json:"code" bson:"code"`
	BaseFee   float64   `json:"baseFee" bson:"baseFee"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy string    `json:"updatedBy" bson:"updatedBy"`
}
