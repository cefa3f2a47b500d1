package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client   *mongo.Client
	database *mongo.Database
)

/*
* Read the connection string and database name from the environment
* Connect and ping so a bad URI fails at startup, not on first request
 */
func Connect() error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = "carecoord"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cl, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Println("Error connecting to mongo: ", err)
		return err
	}
	if err := cl.Ping(ctx, nil); err != nil {
		log.Println("Error pinging mongo: ", err)
		return err
	}
	client = cl
	database = cl.Database(name)
	log.Println("Connected to database: ", name)
	return nil
}

func Disconnect() {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Println("Error disconnecting mongo: ", err)
	}
}

func OpenCollections(name string) *mongo.Collection {
	return database.Collection(name)
}

func FindOne(ctx context.Context, collection *mongo.Collection, filter bson.M, result interface{}) error {
	return collection.FindOne(ctx, filter).Decode(result)
}

func FindAll(ctx context.Context, collection *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]map[string]interface{}, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []map[string]interface{}{}
	for cursor.Next(ctx) {
		doc := make(map[string]interface{})
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		results = append(results, doc)
	}
	return results, cursor.Err()
}

func CreateOne(ctx context.Context, collection *mongo.Collection, document interface{}) (*mongo.InsertOneResult, error) {
	return collection.InsertOne(ctx, document)
}

func UpdateOne(ctx context.Context, collection *mongo.Collection, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	return collection.UpdateOne(ctx, filter, update)
}

func UpsertOne(ctx context.Context, collection *mongo.Collection, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	return collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
}

func DeleteOne(ctx context.Context, collection *mongo.Collection, filter bson.M) (*mongo.DeleteResult, error) {
	return collection.DeleteOne(ctx, filter)
}
