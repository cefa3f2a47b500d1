package util

import "github.com/gin-gonic/gin"

// Collection names in the document store.
const (
	DepartmentCollection       = "departments"
	DoctorCollection           = "doctors"
	AppointmentCollection      = "appointments"
	LabTestCollection          = "labTests"
	SettingsCollection         = "settings"
	LoginCollection            = "login"
	EarningsSnapshotCollection = "earningsSnapshots"
)

// Cache key prefixes.
const (
	DepartmentKey = "DEPARTMENT:"
	DoctorKey     = "DOCTOR:"
	SettingsKey   = "SETTINGS:"
	EarningsKey   = "EARNINGS:"
)

// Defaults applied when a stored document is missing the field.
const (
	DefaultAppointmentStatus = "scheduled"
	DefaultLabTestStatus     = "pending"
)

const (
	NAME_IS_REQUIRED               = "name is required"
	DESCRIPTION_IS_REQUIRED        = "description is required"
	LOCATION_IS_REQUIRED           = "location is required"
	SPECIALITY_IS_REQUIRED         = "speciality is required"
	EMAIL_IS_REQUIRED              = "email is required"
	PHONE_NUMBER_IS_REQUIRED       = "phoneNo is required"
	HEAD_DOCTOR_IS_REQUIRED        = "a head doctor must be selected"
	DEPARTMENT_IS_REQUIRED         = "a department must be selected"
	PASSWORD_IS_REQUIRED           = "password is required"
	PASSWORD_TOO_SHORT             = "password must be at least 6 characters"
	EMAIL_OR_PASSWORD_NOT_PROVIDED = "please provide email and password"
	RECORD_NOT_FOUND               = "record not found"
	INVALID_CREDENTIALS            = "invalid email or password"
)

func SuccessResponse(data interface{}) gin.H {
	return gin.H{
		"success": true,
		"data":    data,
	}
}

func FailedResponse(err error) gin.H {
	return gin.H{
		"success": false,
		"kind":    ErrorKind(err),
		"error":   err.Error(),
	}
}
