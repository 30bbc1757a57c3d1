package customers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const collectionName = "customers"

// Service performs customer CRUD against whichever tenant database the
// caller hands it. The database is an argument, not a field: the same
// service instance serves every tenant, and the guard decides which
// database a request may touch.
type Service struct{}

// NewService creates a customer service.
func NewService() *Service {
	return &Service{}
}

// List returns customers ordered by creation time, newest first.
func (s *Service) List(ctx context.Context, db *mongo.Database, limit int64) ([]Customer, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	cur, err := db.Collection(collectionName).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, err
	}

	customers := make([]Customer, 0)
	if err := cur.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// Create inserts a new customer and returns it with its generated ID.
func (s *Service) Create(ctx context.Context, db *mongo.Database, in CustomerInput) (*Customer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	customer := newCustomer(in)
	if _, err := db.Collection(collectionName).InsertOne(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Get fetches a single customer by ID.
func (s *Service) Get(ctx context.Context, db *mongo.Database, id string) (*Customer, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	var customer Customer
	err := db.Collection(collectionName).FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// Update replaces the mutable fields of an existing customer.
func (s *Service) Update(ctx context.Context, db *mongo.Database, id string, in CustomerInput) (*Customer, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"name":       in.Name,
		"email":      in.Email,
		"phone":      in.Phone,
		"company":    in.Company,
		"notes":      in.Notes,
		"updated_at": time.Now().UTC(),
	}}

	res, err := db.Collection(collectionName).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrCustomerNotFound
	}
	return s.Get(ctx, db, id)
}

// Delete removes a customer by ID.
func (s *Service) Delete(ctx context.Context, db *mongo.Database, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	res, err := db.Collection(collectionName).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.Join(ErrInvalidID, err)
	}
	return nil
}
