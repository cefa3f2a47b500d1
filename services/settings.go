package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/config/db"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/config/redis"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/models"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/util"
)

// ClampBaseFee keeps the configured base fee non-negative.
func ClampBaseFee(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

/*
* Cache first, then the settings document
* A missing document reads as base fee 0, it is created on first update
 */
func FetchBaseFee(ctx context.Context) (float64, error) {
	key := util.SettingsKey + models.SettingsCode
	var cached models.Settings
	if found, err := redis.GetCache(ctx, key, &cached); err != nil {
		log.Println("Error from getCache: ", err)
	} else if found {
		return cached.BaseFee, nil
	}

	collection := db.OpenCollections(util.SettingsCollection)
	var settings models.Settings
	err := db.FindOne(ctx, collection, bson.M{"code": models.SettingsCode}, &settings)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		log.Println("Error from findOne on settings: ", err)
		return 0, util.NewPersistenceError(err)
	}
	if err := redis.SetCache(ctx, key, settings); err != nil {
		log.Println("Error from setCache: ", err)
	}
	return ClampBaseFee(settings.BaseFee), nil
}

/*
* Clamp, upsert the single settings document, drop the stale cache entry
* Updates are explicit, there is no autosave path
 */
func UpdateBaseFee(ctx context.Context, fee float64, updatedBy string) (float64, error) {
	fee = ClampBaseFee(fee)
	collection := db.OpenCollections(util.SettingsCollection)
	filter := bson.M{"code": models.SettingsCode}
	update := bson.M{"$set": bson.M{
		"baseFee":   fee,
		"updatedAt": time.Now(),
		"updatedBy": updatedBy,
	}}
	if _, err := db.UpsertOne(ctx, collection, filter, update); err != nil {
		log.Println("Error from upsertOne on settings: ", err)
		return 0, util.NewPersistenceError(err)
	}
	if err := redis.DeleteCache(ctx, util.SettingsKey+models.SettingsCode); err != nil {
		log.Println("Error from deleteCache: ", err)
	}
	return fee, nil
}

// SeedSettings inserts the default settings document when none exists yet.
func SeedSettings() {
	ctx := context.Background()
	collection := db.OpenCollections(util.SettingsCollection)
	var existing models.Settings
	err := db.FindOne(ctx, collection, bson.M{"code": models.SettingsCode}, &existing)
	if err == nil {
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Println("Error checking settings document: ", err)
		return
	}
	seed := models.Settings{
		Code:      models.SettingsCode,
		BaseFee:   0,
		UpdatedAt: time.Now(),
		UpdatedBy: "system",
	}
	if _, err := db.CreateOne(ctx, collection, seed); err != nil {
		log.Println("Error seeding settings document: ", err)
	}
}
