package models

import (
	"strconv"
	"time"
)

// EarningsSnapshot is one day of aggregated revenue, persisted by the daily
// scheduler so history survives recomputation.
type EarningsSnapshot struct {
	Date                string    `json:"date" bson:"date"`
	TotalEarnings       float64   `json:"totalEarnings" bson:"totalEarnings"`
	AppointmentEarnings float64   `json:"appointmentEarnings" bson:"appointmentEarnings"`
	LabTestEarnings     float64   `json:"labTestEarnings" bson:"labTestEarnings"`
	AppointmentCount    int       `json:"appointmentCount" bson:"appointmentCount"`
	DateWarnings        int       `json:"dateWarnings" bson:"dateWarnings"`
	CreatedAt           time.Time `json:"createdAt" bson:"createdAt"`
}

// NameAmount is one row of a per-doctor or per-department breakdown.
type NameAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// PeriodPoint is one month of a revenue series, labelled "Jan 2006".
type PeriodPoint struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// CombinedSeries reindexes the appointment and lab-test period series
// against the union of their labels so both share one chronological axis.
type CombinedSeries struct {
	Labels       []string  `json:"labels"`
	Appointments []float64 `json:"appointments"`
	LabTests     []float64 `json:"labTests"`
}

type EarningsReport struct {
	TotalEarnings       float64        `json:"totalEarnings"`
	AppointmentEarnings float64        `json:"appointmentEarnings"`
	LabTestEarnings     float64        `json:"labTestEarnings"`
	AppointmentCount    int            `json:"appointmentCount"`
	AverageFee          float64        `json:"averageFee"`
	AverageFeeAvailable bool           `json:"averageFeeAvailable"`
	ByDoctor            []NameAmount   `json:"byDoctor"`
	ByDepartment        []NameAmount   `json:"byDepartment"`
	AppointmentPeriods  []PeriodPoint  `json:"appointmentPeriods"`
	LabTestPeriods      []PeriodPoint  `json:"labTestPeriods"`
	Combined            CombinedSeries `json:"combined"`
	DateWarnings        int            `json:"dateWarnings"`
}

// AverageFeeDisplay renders the average for the dashboard; a range with no
// countable appointments has no average.
func (r *EarningsReport) AverageFeeDisplay() string {
	if !r.AverageFeeAvailable {
		return "not available"
	}
	return strconv.FormatFloat(r.AverageFee, 'f', -1, 64)
}
