package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/utils"
)

// ConnectMongoDB establishes a connection to MongoDB and verifies it with a ping.
func ConnectMongoDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the unique indexes the uniqueness checks rely on.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)
	indexes := map[string]mongo.IndexModel{
		"admins":    {Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		"roles":     {Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		"countries": {Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		"players":   {Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	}
	for coll, model := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}
	return nil
}

// SeedDefaultRoles ensures the default roles exist, refreshing their permission
// sets when they already do.
func SeedDefaultRoles(db *mongo.Database, logger *zap.Logger) error {
	rolesCollection := db.Collection("roles")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, defaultRole := range models.DefaultRoles {
		filter := bson.M{"name": defaultRole.Name}
		var existing models.Role
		err := rolesCollection.FindOne(ctx, filter).Decode(&existing)

		switch {
		case err == mongo.ErrNoDocuments:
			defaultRole.CreatedAt = time.Now()
			defaultRole.UpdatedAt = time.Now()
			if _, err := rolesCollection.InsertOne(ctx, defaultRole); err != nil {
				return err
			}
			logger.Info("seeded default role", zap.String("role", defaultRole.Name))
		case err != nil:
			return err
		default:
			update := bson.M{"$set": bson.M{
				"permissions": defaultRole.Permissions,
				"updated_at":  time.Now(),
			}}
			if _, err := rolesCollection.UpdateOne(ctx, filter, update); err != nil {
				return err
			}
		}
	}
	return nil
}

// SeedSuperAdmin creates the initial super-admin account when the admins
// collection is empty and seed credentials are configured.
func SeedSuperAdmin(db *mongo.Database, email, password string, logger *zap.Logger) error {
	if password == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	admins := db.Collection("admins")
	count, err := admins.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var superRole models.Role
	if err := db.Collection("roles").FindOne(ctx, bson.M{"name": "Super Admin"}).Decode(&superRole); err != nil {
		return err
	}

	salt := utils.GenerateRandomString(16)
	hash, err := utils.HashPassword(password, salt)
	if err != nil {
		return err
	}

	admin := models.Admin{
		FirstName: "Super",
		LastName:  "Admin",
		Email:     email,
		Password:  hash,
		Salt:      salt,
		Roles:     []primitive.ObjectID{superRole.ID},
		Status:    models.StatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := admins.InsertOne(ctx, admin); err != nil {
		return err
	}
	logger.Info("seeded super admin", zap.String("email", email))
	return nil
}
