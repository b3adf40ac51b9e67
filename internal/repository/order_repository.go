package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"yellow-mart/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(collection *mongo.Collection) *OrderRepository {
	return &OrderRepository{
		collection: collection,
	}
}

// Insert stores an order exactly as the client materialized it (id and total
// are not recomputed) and stamps created_at for sorting.
func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	order.CreatedAt = time.Now()
	if order.Status == "" {
		order.Status = models.StatusPlaced
	}

	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// FindAll returns every order, newest first.
func (r *OrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	return r.find(ctx, bson.M{})
}

// FindByCustomer returns a customer's orders, newest first.
func (r *OrderRepository) FindByCustomer(ctx context.Context, email string) ([]models.Order, error) {
	return r.find(ctx, bson.M{"customer_email": email})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}
