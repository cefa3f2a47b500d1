package models

// Appointment documents predate any schema enforcement: Date has been written
// by several client generations in several encodings, so it stays untyped and
// is coerced at read time by the earnings service.
type Appointment struct {
	Code           string      `json:"code" bson:"code"`
	PatientName    string      `json:"patientName" bson:"patientName"`
	DoctorId       string      `json:"doctorId" bson:"doctorId"`
	DoctorName     string      `json:"doctorName" bson:"doctorName"`
	DepartmentId   string      `json:"departmentId" bson:"departmentId"`
	DepartmentName string      `json:"departmentName" bson:"departmentName"`
	Date           interface{} `json:"date" bson:"date"`
	Status         string      `json:"status" bson:"status"`
	BaseFee        float64     `json:"baseFee" bson:"baseFee"`
	TotalFee       float64     `json:"totalFee" bson:"totalFee"`
	PaymentStatus  string      `json:"paymentStatus" bson:"paymentStatus"`
}
