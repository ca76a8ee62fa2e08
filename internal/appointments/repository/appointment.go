package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	appointmentserrors "beautycabin/internal/appointments/errors"
	"beautycabin/pkg/config"
	"beautycabin/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "appointments"
)

type Filter struct {
	// Search matches name case-insensitively or phone literally, as substrings.
	Search string
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	FindAll(ctx context.Context, filter Filter) ([]*model.Appointment, error)
	SetStatus(ctx context.Context, id string, status string) (*model.Appointment, error)
	Delete(ctx context.Context, id string) error
}

type mongoAppointmentRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoAppointmentRepository(cfg *config.Config) AppointmentRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoAppointmentRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// withTimeout bounds a store call by timeout without extending a shorter
// caller deadline.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithDeadline(ctx, deadline)
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoAppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	appointment.ID = ""
	result, err := r.collection.InsertOne(ctx, appointment)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		appointment.ID = oid.Hex()
	}
	return nil
}

func (r *mongoAppointmentRepository) FindAll(ctx context.Context, filter Filter) ([]*model.Appointment, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, BuildFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appointments := []*model.Appointment{}
	if err = cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}

	return appointments, nil
}

// SetStatus writes status and returns the post-update document. Writing the
// status it already has is a successful no-op.
func (r *mongoAppointmentRepository) SetStatus(ctx context.Context, id string, status string) (*model.Appointment, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", appointmentserrors.ErrInvalidID, id)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": bson.M{"status": status}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appointment model.Appointment
	err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appointmentserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}

	return &appointment, nil
}

func (r *mongoAppointmentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", appointmentserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	if result.DeletedCount == 0 {
		return appointmentserrors.ErrNotFound
	}

	return nil
}

func BuildFilter(filter Filter) bson.M {
	if filter.Search == "" {
		return bson.M{}
	}

	pattern := regexp.QuoteMeta(filter.Search)
	return bson.M{
		"$or": []bson.M{
			{"name": primitive.Regex{Pattern: pattern, Options: "i"}},
			{"phone": primitive.Regex{Pattern: pattern}},
		},
	}
}
