package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/config/db"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/config/redis"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/models"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/util"
)

/*
* Every required field must be present before any store call is made
* The head doctor is stored as a name and id pair captured at edit time
 */
func validateDepartmentInput(data map[string]interface{}) error {
	required := map[string]string{
		"name":           util.NAME_IS_REQUIRED,
		"description":    util.DESCRIPTION_IS_REQUIRED,
		"location":       util.LOCATION_IS_REQUIRED,
		"email":          util.EMAIL_IS_REQUIRED,
		"phoneNo":        util.PHONE_NUMBER_IS_REQUIRED,
		"headDoctorId":   util.HEAD_DOCTOR_IS_REQUIRED,
		"headDoctorName": util.HEAD_DOCTOR_IS_REQUIRED,
	}
	return requireFields(data, required)
}

/*
* Validate, clamp the fee percentage, resolve the image
* Generate a code, stamp timestamps, save and cache
 */
func CreateDepartment(ctx context.Context, data map[string]interface{}) (string, error) {
	if err := validateDepartmentInput(data); err != nil {
		return "", err
	}
	clampFeeField(data)
	applyImage(data, getString(data, "name"), util.DepartmentFallbackImages)

	fee, _ := toFloat64(data["feePercentage"])
	now := time.Now()
	department := models.Department{
		Code:           "DEP-" + uuid.NewString(),
		Name:           getString(data, "name"),
		Description:    getString(data, "description"),
		Location:       getString(data, "location"),
		HeadDoctorId:   getString(data, "headDoctorId"),
		HeadDoctorName: getString(data, "headDoctorName"),
		Email:          getString(data, "email"),
		PhoneNo:        getString(data, "phoneNo"),
		Image:          getString(data, "image"),
		FeePercentage:  ClampFeePercentage(fee),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	collection := db.OpenCollections(util.DepartmentCollection)
	if _, err := db.CreateOne(ctx, collection, department); err != nil {
		log.Println("Error from createOne: ", err)
		return "", util.NewPersistenceError(err)
	}
	if err := redis.SetCache(ctx, util.DepartmentKey+department.Code, department); err != nil {
		log.Println("Error from setCache: ", err)
	}
	return department.Code, nil
}

/*
* Partial update, only the supplied fields are written
* Refetch the updated document so the cache mirrors the store
 */
func UpdateDepartment(ctx context.Context, code string, data map[string]interface{}) (string, error) {
	for _, f := range []string{"name", "description", "location", "email", "phoneNo", "headDoctorId", "headDoctorName"} {
		if _, exists := data[f]; exists {
			trimmed := getString(data, f)
			if trimmed == "" {
				return "", util.NewValidationError(f + " cannot be empty")
			}
			data[f] = trimmed
		}
	}
	clampFeeField(data)
	applyImageUpdate(data, getString(data, "name")+code, util.DepartmentFallbackImages)
	data["updatedAt"] = time.Now()
	delete(data, "code")

	collection := db.OpenCollections(util.DepartmentCollection)
	filter := bson.M{"code": code}
	res, err := db.UpdateOne(ctx, collection, filter, bson.M{"$set": data})
	if err != nil {
		log.Println("Error from updateOne: ", err)
		return "", util.NewPersistenceError(err)
	}
	if res.MatchedCount == 0 {
		return "", util.NewPersistenceError(fmt.Errorf("%s: %s", util.RECORD_NOT_FOUND, code))
	}

	updated := make(map[string]interface{})
	if err := db.FindOne(ctx, collection, filter, &updated); err != nil {
		log.Println("Error from findOne after update: ", err)
		return "", util.NewPersistenceError(err)
	}
	key := util.DepartmentKey + code
	if err := redis.DeleteCache(ctx, key); err != nil {
		log.Println("Failed deleting stale department from cache: ", err)
	}
	if err := redis.SetCache(ctx, key, updated); err != nil {
		log.Println("Failed caching updated department: ", err)
	}
	return "Updated Successfully", nil
}

func FetchDepartmentByCode(ctx context.Context, code string) (map[string]interface{}, error) {
	key := util.DepartmentKey + code
	cached := make(map[string]interface{})
	if found, err := redis.GetCache(ctx, key, &cached); err != nil {
		log.Println("Error from getCache: ", err)
	} else if found {
		return cached, nil
	}

	collection := db.OpenCollections(util.DepartmentCollection)
	result := make(map[string]interface{})
	if err := db.FindOne(ctx, collection, bson.M{"code": code}, &result); err != nil {
		log.Println("Error from findOne: ", err)
		return nil, util.NewPersistenceError(err)
	}
	if err := redis.SetCache(ctx, key, result); err != nil {
		log.Println("Error from setCache: ", err)
	}
	return result, nil
}

func FetchAllDepartments(ctx context.Context) ([]map[string]interface{}, error) {
	collection := db.OpenCollections(util.DepartmentCollection)
	result, err := db.FindAll(ctx, collection, nil, nil)
	if err != nil {
		log.Println("Error from findAll: ", err)
		return nil, util.NewPersistenceError(err)
	}
	return result, nil
}

/*
* Delete is confirmed by the client before this is ever called
* Remove from the store first, then drop the cache entry
 */
func DeleteDepartment(ctx context.Context, code string) (string, error) {
	collection := db.OpenCollections(util.DepartmentCollection)
	filter := bson.M{"code": code}

	existing := make(map[string]interface{})
	if err := db.FindOne(ctx, collection, filter, &existing); err != nil {
		log.Println("Error from findOne: ", err)
		return "", util.NewPersistenceError(err)
	}
	deleted, err := db.DeleteOne(ctx, collection, filter)
	if err != nil {
		log.Println("Error from deleteOne: ", err)
		return "", util.NewPersistenceError(err)
	}
	log.Println("Deleted: ", deleted.DeletedCount)
	if err := redis.DeleteCache(ctx, util.DepartmentKey+code); err != nil {
		log.Println("Error from deleteCache: ", err)
	}
	return fmt.Sprintf("The department %s deleted", code), nil
}

/*
* Candidates for the head-doctor selector of a department form
* The currently assigned head stays in the list even if no longer part of
* the department, so an open edit never loses its selection
 */
func DoctorOptions(ctx context.Context, departmentCode string) ([]map[string]interface{}, error) {
	doctorColl := db.OpenCollections(util.DoctorCollection)
	filter := bson.M{}
	if departmentCode != "" {
		filter = bson.M{"departmentId": departmentCode}
	}
	options, err := db.FindAll(ctx, doctorColl, filter, nil)
	if err != nil {
		log.Println("Error from findAll on doctors: ", err)
		return nil, util.NewPersistenceError(err)
	}
	if departmentCode == "" {
		return options, nil
	}

	department, err := FetchDepartmentByCode(ctx, departmentCode)
	if err != nil {
		// A brand new department has no stored head yet.
		return options, nil
	}
	headId := getString(department, "headDoctorId")
	if headId == "" {
		return options, nil
	}
	for _, d := range options {
		if getString(d, "code") == headId {
			return options, nil
		}
	}
	head := make(map[string]interface{})
	if err := db.FindOne(ctx, doctorColl, bson.M{"code": headId}, &head); err != nil {
		log.Println("Current head doctor no longer exists: ", err)
		return options, nil
	}
	return append(options, head), nil
}
