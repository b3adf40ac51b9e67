package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"yellow-mart/internal/models"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) *ProductRepository {
	return &ProductRepository{
		collection: collection,
	}
}

// FindAll returns the whole catalog. The storefront is small enough that
// listing is unpaginated, matching the consumer's contract.
func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// ReplaceAll drops the current catalog and inserts the given set, returning
// the persisted products. Backs the seed endpoint.
func (r *ProductRepository) ReplaceAll(ctx context.Context, products []models.Product) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("failed to clear products: %w", err)
	}

	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = p
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return nil, fmt.Errorf("failed to insert products: %w", err)
	}

	return products, nil
}

// DecrementStock lowers a product's stock by qty, floored at zero. The
// read-modify-write is deliberately non-transactional; concurrent orders can
// both observe pre-decrement stock.
func (r *ProductRepository) DecrementStock(ctx context.Context, productID string, qty int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"id": productID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Unknown line item; the order still stands.
			return nil
		}
		return fmt.Errorf("failed to load product %s: %w", productID, err)
	}

	stock := product.Stock - qty
	if stock < 0 {
		stock = 0
	}

	_, err = r.collection.UpdateOne(ctx,
		bson.M{"id": productID},
		bson.M{"$set": bson.M{"stock": stock}},
	)
	if err != nil {
		return fmt.Errorf("failed to update stock for %s: %w", productID, err)
	}
	return nil
}
