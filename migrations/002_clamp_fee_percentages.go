package migrations

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/config/db"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/util"
)

// ClampStoredFeePercentages pulls any out-of-range feePercentage back into
// [0,100]. Older admin builds did not clamp on write.
func ClampStoredFeePercentages() {
	for _, name := range []string{util.DoctorCollection, util.DepartmentCollection} {
		clampCollection(db.OpenCollections(name), name)
	}
}

func clampCollection(collection *mongo.Collection, name string) {
	ctx := context.Background()

	low, err := collection.UpdateMany(ctx,
		bson.M{"feePercentage": bson.M{"$lt": 0}},
		bson.M{"$set": bson.M{"feePercentage": 0}},
	)
	if err != nil {
		log.Println("Error clamping low feePercentage in ", name, ": ", err)
		return
	}
	high, err := collection.UpdateMany(ctx,
		bson.M{"feePercentage": bson.M{"$gt": 100}},
		bson.M{"$set": bson.M{"feePercentage": 100}},
	)
	if err != nil {
		log.Println("Error clamping high feePercentage in ", name, ": ", err)
		return
	}
	log.Println("Fee percentages clamped in ", name, ": ", low.ModifiedCount+high.ModifiedCount)
}
