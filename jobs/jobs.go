package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/config/db"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/models"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/services"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/util"
)

func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running Daily Earnings Snapshot...")
		SnapshotYesterday()
	})

	c.Start()
}

// SeedSettings makes sure the application-settings document exists before
// the first request needs the base fee.
func SeedSettings() {
	services.SeedSettings()
}

/*
* Aggregate the previous day and persist the result
* The snapshot collection gives the dashboard a history that survives the
* in-memory aggregation being recomputed
 */
func SnapshotYesterday() {
	yesterday := time.Now().AddDate(0, 0, -1)
	ctx := context.Background()

	report, err := services.BuildEarningsReport(ctx, yesterday, yesterday)
	if err != nil {
		log.Println("Error building earnings snapshot: ", err)
		return
	}

	snapshot := models.EarningsSnapshot{
		Date:                yesterday.Format("2006-01-02"),
		TotalEarnings:       report.TotalEarnings,
		AppointmentEarnings: report.AppointmentEarnings,
		LabTestEarnings:     report.LabTestEarnings,
		AppointmentCount:    report.AppointmentCount,
		DateWarnings:        report.DateWarnings,
		CreatedAt:           time.Now(),
	}
	collection := db.OpenCollections(util.EarningsSnapshotCollection)
	if _, err := db.CreateOne(ctx, collection, snapshot); err != nil {
		log.Println("Error inserting earnings snapshot: ", err)
		return
	}
	log.Println("Earnings snapshot stored for: ", snapshot.Date)
}
