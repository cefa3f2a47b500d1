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

func validateDoctorInput(data map[string]interface{}) error {
	required := map[string]string{
		"name":           util.NAME_IS_REQUIRED,
		"speciality":     util.SPECIALITY_IS_REQUIRED,
		"email":          util.EMAIL_IS_REQUIRED,
		"departmentId":   util.DEPARTMENT_IS_REQUIRED,
		"departmentName": util.DEPARTMENT_IS_REQUIRED,
	}
	return requireFields(data, required)
}

/*
* Validate, clamp the fee percentage, resolve the image
* Insert the profile, then create the credential account
* The two writes are not one transaction, so a failed account creation
* deletes the just-inserted profile instead of leaving an orphan
 */
func CreateDoctor(ctx context.Context, data map[string]interface{}) (string, error) {
	if err := validateDoctorInput(data); err != nil {
		return "", err
	}
	password := getString(data, "password")
	if err := ValidatePassword(password); err != nil {
		return "", err
	}
	delete(data, "password")

	clampFeeField(data)
	applyImage(data, getString(data, "name"), util.DoctorFallbackImages)

	fee, _ := toFloat64(data["feePercentage"])
	age, _ := toFloat64(data["age"])
	now := time.Now()
	doctor := models.Doctor{
		Code:           "DOC-" + uuid.NewString(),
		Name:           getString(data, "name"),
		Gender:         getString(data, "gender"),
		Age:            int(age),
		DepartmentId:   getString(data, "departmentId"),
		DepartmentName: getString(data, "departmentName"),
		Speciality:     getString(data, "speciality"),
		Email:          getString(data, "email"),
		Image:          getString(data, "image"),
		FeePercentage:  ClampFeePercentage(fee),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	collection := db.OpenCollections(util.DoctorCollection)
	if _, err := db.CreateOne(ctx, collection, doctor); err != nil {
		log.Println("Error from createOne: ", err)
		return "", util.NewPersistenceError(err)
	}

	if err := CreateAccount(ctx, doctor.Code, doctor.Email, password); err != nil {
		log.Println("Account creation failed, rolling back profile: ", err)
		if _, delErr := db.DeleteOne(ctx, collection, bson.M{"code": doctor.Code}); delErr != nil {
			log.Println("Compensating delete failed, orphaned profile: ", doctor.Code, delErr)
		}
		return "", err
	}

	if err := redis.SetCache(ctx, util.DoctorKey+doctor.Code, doctor); err != nil {
		log.Println("Error from setCache: ", err)
	}
	return doctor.Code, nil
}

/*
* A password change rides in on newPassword and is routed through the
* credential service, never through the profile update
* The profile fields are merged with a partial $set
 */
func UpdateDoctor(ctx context.Context, code string, data map[string]interface{}) (string, error) {
	if newPassword, exists := data["newPassword"]; exists {
		delete(data, "newPassword")
		if pw, _ := newPassword.(string); pw != "" {
			if err := UpdatePassword(ctx, code, pw); err != nil {
				return "", err
			}
		}
	}
	delete(data, "password")

	for _, f := range []string{"name", "speciality", "email", "gender", "departmentId", "departmentName"} {
		if _, exists := data[f]; exists {
			trimmed := getString(data, f)
			if trimmed == "" {
				return "", util.NewValidationError(f + " cannot be empty")
			}
			data[f] = trimmed
		}
	}
	clampFeeField(data)
	applyImageUpdate(data, getString(data, "name")+code, util.DoctorFallbackImages)
	data["updatedAt"] = time.Now()
	delete(data, "code")

	collection := db.OpenCollections(util.DoctorCollection)
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
	key := util.DoctorKey + code
	if err := redis.DeleteCache(ctx, key); err != nil {
		log.Println("Failed deleting stale doctor from cache: ", err)
	}
	if err := redis.SetCache(ctx, key, updated); err != nil {
		log.Println("Failed caching updated doctor: ", err)
	}
	return "Updated Successfully", nil
}

func FetchDoctorByCode(ctx context.Context, code string) (map[string]interface{}, error) {
	key := util.DoctorKey + code
	cached := make(map[string]interface{})
	if found, err := redis.GetCache(ctx, key, &cached); err != nil {
		log.Println("Error from getCache: ", err)
	} else if found {
		return cached, nil
	}

	collection := db.OpenCollections(util.DoctorCollection)
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

func FetchAllDoctors(ctx context.Context) ([]map[string]interface{}, error) {
	collection := db.OpenCollections(util.DoctorCollection)
	result, err := db.FindAll(ctx, collection, nil, nil)
	if err != nil {
		log.Println("Error from findAll: ", err)
		return nil, util.NewPersistenceError(err)
	}
	return result, nil
}

/*
* Remove the profile, the credential record and the cache entry
* Credential cleanup is best effort once the profile is gone
 */
func DeleteDoctor(ctx context.Context, code string) (string, error) {
	collection := db.OpenCollections(util.DoctorCollection)
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

	if err := DeleteAccount(ctx, code); err != nil {
		log.Println("Error removing credential record: ", err)
	}
	if err := redis.DeleteCache(ctx, util.DoctorKey+code); err != nil {
		log.Println("Error from deleteCache: ", err)
	}
	return fmt.Sprintf("The doctor %s deleted", code), nil
}

// DepartmentOptions feeds the department selector inside the doctor form.
func DepartmentOptions(ctx context.Context) ([]map[string]interface{}, error) {
	collection := db.OpenCollections(util.DepartmentCollection)
	departments, err := db.FindAll(ctx, collection, nil, nil)
	if err != nil {
		log.Println("Error from findAll on departments: ", err)
		return nil, util.NewPersistenceError(err)
	}
	options := make([]map[string]interface{}, 0, len(departments))
	for _, d := range departments {
		options = append(options, map[string]interface{}{
			"code": getString(d, "code"),
			"name": getString(d, "name"),
		})
	}
	return options, nil
}
