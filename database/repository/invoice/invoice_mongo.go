package invoiceRepo

import (
	"context"
	"fmt"
	"time"

	"invoicely/database"
	"invoicely/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoInvoiceRepo implements InvoiceRepository using MongoDB.
type MongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo creates a new instance of InvoiceRepository using MongoDB.
func NewMongoInvoiceRepo() InvoiceRepository {
	coll := database.Database().Collection("invoices")
	repo := &MongoInvoiceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
// The unique invoiceNumber index backs the store-level uniqueness
// constraint; the compound index serves the per-owner listing.
func (r *MongoInvoiceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "invoiceNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "issueDate", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new invoice document.
func (r *MongoInvoiceRepo) Create(inv *models.Invoice) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, inv)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("invoice number %s: %w", inv.InvoiceNumber, ErrDuplicateInvoiceNumber)
		}
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// ListByOwner retrieves all invoices for ownerID, newest issue date first.
func (r *MongoInvoiceRepo) ListByOwner(ownerID string) ([]models.Invoice, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "issueDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve invoices for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	invoices := []models.Invoice{}
	for cursor.Next(ctx) {
		var inv models.Invoice
		if err := cursor.Decode(&inv); err != nil {
			return nil, fmt.Errorf("failed to decode invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error listing invoices: %w", err)
	}
	return invoices, nil
}

// GetByID retrieves an invoice by its unique ID, regardless of owner.
func (r *MongoInvoiceRepo) GetByID(id string) (*models.Invoice, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var inv models.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch invoice with id %s: %w", id, err)
	}
	return &inv, nil
}
