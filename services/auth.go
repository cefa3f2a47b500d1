package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/config/db"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/config/jwt"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/models"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/util"
)

const MinPasswordLength = 6

/*
* Generate a bcrypt hash for the password given
 */
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(dbPassword string, inputPassword string) error {
	if strings.TrimSpace(dbPassword) == "" {
		return util.NewCredentialError(bcrypt.ErrMismatchedHashAndPassword)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(dbPassword), []byte(inputPassword)); err != nil {
		return util.NewCredentialError(err)
	}
	return nil
}

// ValidatePassword enforces the minimum length; trimming happens before the
// check so whitespace padding cannot satisfy it.
func ValidatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return util.NewValidationError(util.PASSWORD_IS_REQUIRED)
	}
	if len(strings.TrimSpace(password)) < MinPasswordLength {
		return util.NewValidationError(util.PASSWORD_TOO_SHORT)
	}
	return nil
}

/*
* Hash the password and insert a credential record in the login collection
* Any store failure comes back as a CredentialError so the caller can tell
* this half of a two-step create failed, not the profile half
 */
func CreateAccount(ctx context.Context, code string, email string, password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	hashed, err := HashPassword(password)
	if err != nil {
		log.Println("Error from HashPassword: ", err)
		return util.NewCredentialError(err)
	}
	record := models.Login{
		Code:       code,
		Email:      email,
		Password:   hashed,
		Collection: util.DoctorCollection,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	collection := db.OpenCollections(util.LoginCollection)
	if _, err := db.CreateOne(ctx, collection, record); err != nil {
		log.Println("Error from createOne on login collection: ", err)
		return util.NewCredentialError(err)
	}
	return nil
}

/*
* Only called when a non-empty new password is supplied
* Updates the login collection alone, the profile document is untouched
 */
func UpdatePassword(ctx context.Context, code string, password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	hashed, err := HashPassword(password)
	if err != nil {
		log.Println("Error from HashPassword: ", err)
		return util.NewCredentialError(err)
	}
	collection := db.OpenCollections(util.LoginCollection)
	filter := bson.M{"code": code}
	update := bson.M{"$set": bson.M{"password": hashed, "updatedAt": time.Now()}}
	res, err := db.UpdateOne(ctx, collection, filter, update)
	if err != nil {
		log.Println("Error from updateOne on login collection: ", err)
		return util.NewCredentialError(err)
	}
	if res.MatchedCount == 0 {
		log.Println("No credential record for code: ", code)
		return util.NewCredentialError(errors.New("no credential record found"))
	}
	return nil
}

// DeleteAccount removes the credential record. Used on doctor delete and as
// the compensating action when profile creation succeeds but a later step
// fails.
func DeleteAccount(ctx context.Context, code string) error {
	collection := db.OpenCollections(util.LoginCollection)
	if _, err := db.DeleteOne(ctx, collection, bson.M{"code": code}); err != nil {
		log.Println("Error from deleteOne on login collection: ", err)
		return util.NewCredentialError(err)
	}
	return nil
}

/*
* Validate email and password presence
* Fetch the credential record, compare hashes
* Fetch the backing profile and issue a signed token
 */
func Login(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error) {
	email, _ := data["email"].(string)
	password, _ := data["password"].(string)
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, util.NewValidationError(util.EMAIL_OR_PASSWORD_NOT_PROVIDED)
	}

	collection := db.OpenCollections(util.LoginCollection)
	loginDoc := make(map[string]interface{})
	if err := db.FindOne(ctx, collection, bson.M{"email": strings.TrimSpace(email)}, &loginDoc); err != nil {
		log.Println("Error from findOne on login collection: ", err)
		return nil, util.NewCredentialError(errors.New(util.INVALID_CREDENTIALS))
	}

	dbPassword, _ := loginDoc["password"].(string)
	if err := verifyPassword(dbPassword, password); err != nil {
		log.Println("Password mismatch for: ", email)
		return nil, err
	}

	code, _ := loginDoc["code"].(string)
	profileCollection, _ := loginDoc["collection"].(string)
	if profileCollection == "" {
		profileCollection = util.DoctorCollection
	}
	profile := make(map[string]interface{})
	if err := db.FindOne(ctx, db.OpenCollections(profileCollection), bson.M{"code": code}, &profile); err != nil {
		log.Println("Error from findOne on profile collection: ", err)
		return nil, util.NewPersistenceError(err)
	}
	delete(profile, "password")

	token, err := jwt.GenerateJWT(code, email, profileCollection)
	if err != nil {
		log.Println("Error while generating the token: ", err)
		return nil, util.NewCredentialError(err)
	}
	return map[string]interface{}{
		"token": token,
		"user":  profile,
	}, nil
}
