package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	autherrors "beautycabin/internal/auth/errors"
	"beautycabin/pkg/config"
	"beautycabin/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "admins"
)

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.AdminCredential, error)
	// Upsert creates the admin or rotates the password hash of an existing one.
	Upsert(ctx context.Context, username, passwordHash string) (*model.AdminCredential, error)
}

type mongoAdminRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoAdminRepository(cfg *config.Config) AdminRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoAdminRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
		now:        time.Now,
	}
}

func (r *mongoAdminRepository) FindByUsername(ctx context.Context, username string) (*model.AdminCredential, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var admin model.AdminCredential
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, autherrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &admin, nil
}

func (r *mongoAdminRepository) Upsert(ctx context.Context, username, passwordHash string) (*model.AdminCredential, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := r.now().UTC().Truncate(time.Millisecond)
	update := bson.M{
		"$set": bson.M{
			"passwordHash": passwordHash,
			"updatedAt":    now,
		},
		// username is seeded from the filter on insert
		"$setOnInsert": bson.M{
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var admin model.AdminCredential
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"username": username}, update, opts).Decode(&admin); err != nil {
		return nil, fmt.Errorf("failed to upsert admin: %w", err)
	}
	return &admin, nil
}
