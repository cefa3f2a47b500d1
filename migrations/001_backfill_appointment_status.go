package migrations

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/config/db"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/util"
)

// BackfillAppointmentStatus writes the default status into appointment
// documents that were saved without one.
func BackfillAppointmentStatus() {
	collection := db.OpenCollections(util.AppointmentCollection)
	filter := bson.M{"status": bson.M{"$in": []interface{}{nil, ""}}}
	update := bson.M{"$set": bson.M{"status": util.DefaultAppointmentStatus}}

	res, err := collection.UpdateMany(context.Background(), filter, update)
	if err != nil {
		log.Println("Error backfilling appointment status: ", err)
		return
	}
	log.Println("Appointment status backfilled: ", res.ModifiedCount)
}
