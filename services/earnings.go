package services

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/config/db"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/config/redis"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/models"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/util"
)

const periodLabelLayout = "Jan 2006"

type timeConvertible interface {
	Time() time.Time
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

/*
* Appointment dates have been written in several encodings over the life of
* the store: driver datetimes, plain times, ISO strings, seconds and
* nanoseconds pairs, and values that only expose a Time method
* Everything is coerced to one point in time here
* An unrecognized shape falls back to now and reports false so the caller
* can count and surface the substitution instead of hiding it
 */
func CoerceDate(v interface{}) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case *time.Time:
		if d != nil {
			return *d, true
		}
	case primitive.DateTime:
		return d.Time(), true
	case primitive.Timestamp:
		return time.Unix(int64(d.T), 0), true
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(d)); err == nil {
				return t, true
			}
		}
	}
	if doc, ok := asMap(v); ok {
		if t, ok := timeFromSecondsDoc(doc); ok {
			return t, true
		}
	}
	if tc, ok := v.(timeConvertible); ok {
		return tc.Time(), true
	}
	return time.Now(), false
}

func timeFromSecondsDoc(doc map[string]interface{}) (time.Time, bool) {
	for _, key := range []string{"seconds", "_seconds"} {
		raw, exists := doc[key]
		if !exists {
			continue
		}
		seconds, ok := toFloat64(raw)
		if !ok {
			continue
		}
		nanos := float64(0)
		for _, nkey := range []string{"nanoseconds", "_nanoseconds"} {
			if nraw, nexists := doc[nkey]; nexists {
				if n, nok := toFloat64(nraw); nok {
					nanos = n
				}
				break
			}
		}
		return time.Unix(int64(seconds), int64(nanos)), true
	}
	return time.Time{}, false
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func MonthLabel(t time.Time) string {
	return t.Format(periodLabelLayout)
}

/*
* Labels sort by reconstructed (year, month), never lexically
* Lexical order would scramble months across year boundaries
 */
func SortPeriodLabels(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		ti, erri := time.Parse(periodLabelLayout, labels[i])
		tj, errj := time.Parse(periodLabelLayout, labels[j])
		if erri != nil || errj != nil {
			return erri == nil
		}
		return ti.Before(tj)
	})
}

// ComputeTotalFee derives a missing appointment total: the base fee plus the
// doctor and department surcharges, rounded to a whole currency unit.
func ComputeTotalFee(baseFee float64, doctorPct float64, departmentPct float64) float64 {
	return math.Round(baseFee * (1 + doctorPct/100 + departmentPct/100))
}

func isCancelled(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), "cancelled")
}

func statusOrDefault(doc map[string]interface{}, fallback string) string {
	if s := getString(doc, "status"); s != "" {
		return s
	}
	return fallback
}

// grouped accumulates sums keyed by label while remembering the order in
// which labels were first seen, for stable tie-breaks.
type grouped struct {
	sums  map[string]float64
	order []string
}

func newGrouped() *grouped {
	return &grouped{sums: map[string]float64{}}
}

func (g *grouped) add(label string, amount float64) {
	if _, seen := g.sums[label]; !seen {
		g.order = append(g.order, label)
	}
	g.sums[label] += amount
}

func (g *grouped) rankedDescending() []models.NameAmount {
	rows := make([]models.NameAmount, 0, len(g.order))
	for _, name := range g.order {
		rows = append(rows, models.NameAmount{Name: name, Amount: g.sums[name]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Amount > rows[j].Amount })
	return rows
}

func (g *grouped) chronological() []models.PeriodPoint {
	labels := append([]string(nil), g.order...)
	SortPeriodLabels(labels)
	points := make([]models.PeriodPoint, 0, len(labels))
	for _, label := range labels {
		points = append(points, models.PeriodPoint{Label: label, Amount: g.sums[label]})
	}
	return points
}

// CombineSeries unions the month labels of both series chronologically;
// a month present in only one series contributes zero to the other.
func CombineSeries(appointments map[string]float64, labTests map[string]float64) models.CombinedSeries {
	seen := map[string]bool{}
	labels := []string{}
	for label := range appointments {
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	for label := range labTests {
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	SortPeriodLabels(labels)

	combined := models.CombinedSeries{
		Labels:       labels,
		Appointments: make([]float64, len(labels)),
		LabTests:     make([]float64, len(labels)),
	}
	for i, label := range labels {
		combined.Appointments[i] = appointments[label]
		combined.LabTests[i] = labTests[label]
	}
	return combined
}

func appointmentFee(doc map[string]interface{}, configuredBaseFee float64, doctorPct map[string]float64, departmentPct map[string]float64) float64 {
	if stored, ok := toFloat64(doc["totalFee"]); ok && stored > 0 {
		return stored
	}
	base, ok := toFloat64(doc["baseFee"])
	if !ok || base <= 0 {
		base = configuredBaseFee
	}
	return ComputeTotalFee(base, doctorPct[getString(doc, "doctorId")], departmentPct[getString(doc, "departmentId")])
}

func asSlice(v interface{}) ([]interface{}, bool) {
	switch s := v.(type) {
	case primitive.A:
		return []interface{}(s), true
	case []interface{}:
		return s, true
	}
	return nil, false
}

// asMap accepts the three document shapes the driver can hand back when the
// destination is untyped: a plain map, bson.M, or an ordered bson.D.
func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case bson.M:
		return map[string]interface{}(m), true
	case bson.D:
		out := make(map[string]interface{}, len(m))
		for _, e := range m {
			out[e.Key] = e.Value
		}
		return out, true
	}
	return nil, false
}

// labTestPrice prefers the stored total; a record without one is priced by
// summing its ordered tests.
func labTestPrice(doc map[string]interface{}) float64 {
	if stored, ok := toFloat64(doc["totalPrice"]); ok && stored > 0 {
		return stored
	}
	total := float64(0)
	if tests, ok := asSlice(doc["tests"]); ok {
		for _, t := range tests {
			if test, ok := asMap(t); ok {
				if price, ok := toFloat64(test["price"]); ok {
					total += price
				}
			}
		}
	}
	return total
}

func feePercentagesByCode(docs []map[string]interface{}) map[string]float64 {
	byCode := map[string]float64{}
	for _, d := range docs {
		if pct, ok := toFloat64(d["feePercentage"]); ok {
			byCode[getString(d, "code")] = ClampFeePercentage(pct)
		}
	}
	return byCode
}

/*
* Single pass over each collection, everything bucketed in memory
* Cancelled records are excluded from every sum and from the average count
* Records whose date could not be coerced are counted in DateWarnings
 */
func AggregateEarnings(
	appointments []map[string]interface{},
	labTests []map[string]interface{},
	doctors []map[string]interface{},
	departments []map[string]interface{},
	configuredBaseFee float64,
	start time.Time,
	end time.Time,
) *models.EarningsReport {
	rangeStart := StartOfDay(start)
	rangeEnd := EndOfDay(end)
	doctorPct := feePercentagesByCode(doctors)
	departmentPct := feePercentagesByCode(departments)

	report := &models.EarningsReport{}
	byDoctor := newGrouped()
	byDepartment := newGrouped()
	appointmentPeriods := newGrouped()
	labTestPeriods := newGrouped()

	for _, doc := range appointments {
		date, ok := CoerceDate(doc["date"])
		if !ok {
			report.DateWarnings++
		}
		if date.Before(rangeStart) || date.After(rangeEnd) {
			continue
		}
		if isCancelled(statusOrDefault(doc, util.DefaultAppointmentStatus)) {
			continue
		}
		fee := appointmentFee(doc, configuredBaseFee, doctorPct, departmentPct)
		report.AppointmentEarnings += fee
		report.AppointmentCount++
		byDoctor.add(getString(doc, "doctorName"), fee)
		byDepartment.add(getString(doc, "departmentName"), fee)
		appointmentPeriods.add(MonthLabel(date), fee)
	}

	for _, doc := range labTests {
		date, ok := CoerceDate(doc["date"])
		if !ok {
			report.DateWarnings++
		}
		if date.Before(rangeStart) || date.After(rangeEnd) {
			continue
		}
		if isCancelled(statusOrDefault(doc, util.DefaultLabTestStatus)) {
			continue
		}
		price := labTestPrice(doc)
		report.LabTestEarnings += price
		labTestPeriods.add(MonthLabel(date), price)
	}

	report.TotalEarnings = report.AppointmentEarnings + report.LabTestEarnings
	if report.AppointmentCount > 0 {
		report.AverageFee = report.AppointmentEarnings / float64(report.AppointmentCount)
		report.AverageFeeAvailable = true
	}
	report.ByDoctor = byDoctor.rankedDescending()
	report.ByDepartment = byDepartment.rankedDescending()
	report.AppointmentPeriods = appointmentPeriods.chronological()
	report.LabTestPeriods = labTestPeriods.chronological()
	report.Combined = CombineSeries(appointmentPeriods.sums, labTestPeriods.sums)

	if report.DateWarnings > 0 {
		log.Println("Earnings report substituted now for unparseable dates: ", report.DateWarnings)
	}
	return report
}

/*
* Fetch the four collections unfiltered and aggregate in memory
* Range filtering happens after date coercion, not in the query, because
* the stored date encodings are too inconsistent for a server-side range
 */
func BuildEarningsReport(ctx context.Context, start time.Time, end time.Time) (*models.EarningsReport, error) {
	appointments, err := db.FindAll(ctx, db.OpenCollections(util.AppointmentCollection), nil, nil)
	if err != nil {
		log.Println("Error from findAll on appointments: ", err)
		return nil, util.NewPersistenceError(err)
	}
	labTests, err := db.FindAll(ctx, db.OpenCollections(util.LabTestCollection), nil, nil)
	if err != nil {
		log.Println("Error from findAll on labTests: ", err)
		return nil, util.NewPersistenceError(err)
	}
	doctors, err := db.FindAll(ctx, db.OpenCollections(util.DoctorCollection), nil, nil)
	if err != nil {
		log.Println("Error from findAll on doctors: ", err)
		return nil, util.NewPersistenceError(err)
	}
	departments, err := db.FindAll(ctx, db.OpenCollections(util.DepartmentCollection), nil, nil)
	if err != nil {
		log.Println("Error from findAll on departments: ", err)
		return nil, util.NewPersistenceError(err)
	}
	baseFee, err := FetchBaseFee(ctx)
	if err != nil {
		log.Println("Error from fetchBaseFee, using 0: ", err)
		baseFee = 0
	}

	report := AggregateEarnings(appointments, labTests, doctors, departments, baseFee, start, end)

	key := util.EarningsKey + start.Format("2006-01-02") + ":" + end.Format("2006-01-02")
	if err := redis.SetCache(ctx, key, report); err != nil {
		log.Println("Error from setCache: ", err)
	}
	return report, nil
}
