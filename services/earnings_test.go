package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/models"
)

// toDoc round-trips a model through BSON so fixtures carry the same types
// the driver hands back when decoding into a map.
func toDoc(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	raw, err := bson.Marshal(v)
	require.NoError(t, err)
	doc := make(map[string]interface{})
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func TestCoerceDate_KnownShapes(t *testing.T) {
	want := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

	cases := map[string]interface{}{
		"time.Time":          want,
		"primitive.DateTime": primitive.NewDateTimeFromTime(want),
		"rfc3339 string":     "2024-01-15T10:30:00Z",
		"seconds map": map[string]interface{}{
			"seconds":     float64(want.Unix()),
			"nanoseconds": float64(0),
		},
		"underscored seconds map": map[string]interface{}{
			"_seconds": want.Unix(),
		},
	}
	for name, input := range cases {
		got, ok := CoerceDate(input)
		require.True(t, ok, name)
		assert.Equal(t, want.Unix(), got.Unix(), name)
	}
}

func TestCoerceDate_DateOnlyString(t *testing.T) {
	got, ok := CoerceDate("2024-01-15")
	require.True(t, ok)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 15, got.Day())
}

func TestCoerceDate_Timestamp(t *testing.T) {
	want := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	got, ok := CoerceDate(primitive.Timestamp{T: uint32(want.Unix())})
	require.True(t, ok)
	assert.Equal(t, want.Unix(), got.Unix())
}

func TestCoerceDate_UnrecognizedFallsBackToNow(t *testing.T) {
	before := time.Now()
	got, ok := CoerceDate(struct{ Junk int }{Junk: 7})
	after := time.Now()

	assert.False(t, ok)
	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestSortPeriodLabels_Chronological(t *testing.T) {
	labels := []string{"Jan 2024", "Dec 2023", "Feb 2024"}
	SortPeriodLabels(labels)
	assert.Equal(t, []string{"Dec 2023", "Jan 2024", "Feb 2024"}, labels)
}

func TestComputeTotalFee(t *testing.T) {
	// 1000 * (1 + 10/100 + 5/100) = 1150
	assert.Equal(t, float64(1150), ComputeTotalFee(1000, 10, 5))
	// rounding to a whole currency unit
	assert.Equal(t, float64(1003), ComputeTotalFee(1000, 0.25, 0))
}

func TestCombineSeries_UnionWithZeros(t *testing.T) {
	appointments := map[string]float64{"Jan 2024": 1200, "Mar 2024": 300}
	labTests := map[string]float64{"Dec 2023": 150, "Jan 2024": 500}

	combined := CombineSeries(appointments, labTests)

	require.Equal(t, []string{"Dec 2023", "Jan 2024", "Mar 2024"}, combined.Labels)
	require.Len(t, combined.Appointments, len(combined.Labels))
	require.Len(t, combined.LabTests, len(combined.Labels))
	assert.Equal(t, []float64{0, 1200, 300}, combined.Appointments)
	assert.Equal(t, []float64{150, 500, 0}, combined.LabTests)
}

func rangeDates(t *testing.T, start string, end string) (time.Time, time.Time) {
	t.Helper()
	s, err := time.Parse("2006-01-02", start)
	require.NoError(t, err)
	e, err := time.Parse("2006-01-02", end)
	require.NoError(t, err)
	return s, e
}

func TestAggregateEarnings_Scenario(t *testing.T) {
	appointments := []map[string]interface{}{
		toDoc(t, models.Appointment{
			Code:           "A1",
			PatientName:    "Ali",
			DoctorId:       "DOC-1",
			DoctorName:     "Dr. Ahmed",
			DepartmentId:   "DEP-1",
			DepartmentName: "Cardiology",
			Date:           "2024-01-15",
			Status:         "completed",
			TotalFee:       1200,
		}),
		toDoc(t, models.Appointment{
			Code:           "A2",
			PatientName:    "Sana",
			DoctorId:       "DOC-1",
			DoctorName:     "Dr. Ahmed",
			DepartmentId:   "DEP-1",
			DepartmentName: "Cardiology",
			Date:           "2024-02-10",
			Status:         "cancelled",
			TotalFee:       800,
		}),
	}
	labTests := []map[string]interface{}{
		toDoc(t, models.LabTest{
			Code:       "L1",
			Date:       "2024-01-20",
			Status:     "completed",
			TotalPrice: 500,
		}),
	}
	start, end := rangeDates(t, "2024-01-01", "2024-02-29")

	report := AggregateEarnings(appointments, labTests, nil, nil, 0, start, end)

	assert.Equal(t, float64(1700), report.TotalEarnings)
	assert.Equal(t, float64(1200), report.AppointmentEarnings)
	assert.Equal(t, float64(500), report.LabTestEarnings)
	assert.Equal(t, 1, report.AppointmentCount)
	require.True(t, report.AverageFeeAvailable)
	assert.Equal(t, float64(1200), report.AverageFee)
	assert.Equal(t, "1200", report.AverageFeeDisplay())
	assert.Equal(t, 0, report.DateWarnings)
}

func TestAggregateEarnings_AverageUnavailableOnZeroCount(t *testing.T) {
	start, end := rangeDates(t, "2024-01-01", "2024-01-31")

	report := AggregateEarnings(nil, nil, nil, nil, 0, start, end)

	assert.False(t, report.AverageFeeAvailable)
	assert.Equal(t, "not available", report.AverageFeeDisplay())
	assert.Equal(t, float64(0), report.TotalEarnings)
}

func TestAggregateEarnings_DerivesMissingTotalFee(t *testing.T) {
	doctors := []map[string]interface{}{
		{"code": "DOC-1", "feePercentage": float64(10)},
	}
	departments := []map[string]interface{}{
		{"code": "DEP-1", "feePercentage": float64(5)},
	}
	appointments := []map[string]interface{}{
		{
			"code":           "A1",
			"doctorId":       "DOC-1",
			"doctorName":     "Dr. Sara",
			"departmentId":   "DEP-1",
			"departmentName": "Neurology",
			"date":           "2024-01-10",
			"status":         "completed",
		},
	}
	start, end := rangeDates(t, "2024-01-01", "2024-01-31")

	report := AggregateEarnings(appointments, nil, doctors, departments, 1000, start, end)

	// 1000 * (1 + 0.10 + 0.05) = 1150, from the configured base fee
	assert.Equal(t, float64(1150), report.AppointmentEarnings)
}

func TestAggregateEarnings_RangeIsInclusive(t *testing.T) {
	appointments := []map[string]interface{}{
		{"doctorName": "Dr. A", "departmentName": "X", "date": "2024-01-01", "status": "completed", "totalFee": float64(100)},
		{"doctorName": "Dr. A", "departmentName": "X", "date": "2024-01-31", "status": "completed", "totalFee": float64(200)},
		{"doctorName": "Dr. A", "departmentName": "X", "date": "2024-02-01", "status": "completed", "totalFee": float64(400)},
	}
	start, end := rangeDates(t, "2024-01-01", "2024-01-31")

	report := AggregateEarnings(appointments, nil, nil, nil, 0, start, end)

	assert.Equal(t, float64(300), report.AppointmentEarnings)
	assert.Equal(t, 2, report.AppointmentCount)
}

func TestAggregateEarnings_BreakdownsSortedDescending(t *testing.T) {
	appointments := []map[string]interface{}{
		{"doctorName": "Dr. A", "departmentName": "Cardiology", "date": "2024-01-05", "status": "completed", "totalFee": float64(100)},
		{"doctorName": "Dr. B", "departmentName": "Neurology", "date": "2024-01-06", "status": "completed", "totalFee": float64(300)},
		{"doctorName": "Dr. C", "departmentName": "Oncology", "date": "2024-01-07", "status": "completed", "totalFee": float64(300)},
		{"doctorName": "Dr. A", "departmentName": "Cardiology", "date": "2024-01-08", "status": "completed", "totalFee": float64(50)},
	}
	start, end := rangeDates(t, "2024-01-01", "2024-01-31")

	report := AggregateEarnings(appointments, nil, nil, nil, 0, start, end)

	require.Len(t, report.ByDoctor, 3)
	// Dr. B ties Dr. C at 300 and was seen first, so keeps the higher rank.
	assert.Equal(t, "Dr. B", report.ByDoctor[0].Name)
	assert.Equal(t, "Dr. C", report.ByDoctor[1].Name)
	assert.Equal(t, "Dr. A", report.ByDoctor[2].Name)
	assert.Equal(t, float64(150), report.ByDoctor[2].Amount)
}

func TestAggregateEarnings_CountsDateWarnings(t *testing.T) {
	appointments := []map[string]interface{}{
		{"doctorName": "Dr. A", "departmentName": "X", "date": map[string]interface{}{"weird": true}, "status": "completed", "totalFee": float64(10)},
	}
	start := time.Now().AddDate(0, 0, -1)
	end := time.Now().AddDate(0, 0, 1)

	report := AggregateEarnings(appointments, nil, nil, nil, 0, start, end)

	assert.Equal(t, 1, report.DateWarnings)
}

func TestAggregateEarnings_LabTestPriceFallsBackToOrderedTests(t *testing.T) {
	labTests := []map[string]interface{}{
		toDoc(t, models.LabTest{
			Code:   "L1",
			Date:   "2024-01-10",
			Status: "completed",
			Tests: []models.OrderedTest{
				{Name: "CBC", Price: 120},
				{Name: "Lipid Panel", Price: 80},
			},
		}),
	}
	start, end := rangeDates(t, "2024-01-01", "2024-01-31")

	report := AggregateEarnings(nil, labTests, nil, nil, 0, start, end)

	assert.Equal(t, float64(200), report.LabTestEarnings)
}

func TestAggregateEarnings_PeriodSeriesChronological(t *testing.T) {
	appointments := []map[string]interface{}{
		{"doctorName": "Dr. A", "departmentName": "X", "date": "2024-02-10", "status": "completed", "totalFee": float64(100)},
		{"doctorName": "Dr. A", "departmentName": "X", "date": "2023-12-05", "status": "completed", "totalFee": float64(200)},
		{"doctorName": "Dr. A", "departmentName": "X", "date": "2024-01-20", "status": "completed", "totalFee": float64(300)},
	}
	start, end := rangeDates(t, "2023-12-01", "2024-02-29")

	report := AggregateEarnings(appointments, nil, nil, nil, 0, start, end)

	require.Len(t, report.AppointmentPeriods, 3)
	assert.Equal(t, "Dec 2023", report.AppointmentPeriods[0].Label)
	assert.Equal(t, "Jan 2024", report.AppointmentPeriods[1].Label)
	assert.Equal(t, "Feb 2024", report.AppointmentPeriods[2].Label)
}
