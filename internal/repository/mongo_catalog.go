package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"harmony-store/internal/models"
)

type productDoc struct {
	ID          string               `bson:"_id"`
	Name        string               `bson:"name"`
	Category    string               `bson:"category"`
	Price       primitive.Decimal128 `bson:"price"`
	Image       string               `bson:"image"`
	Description string               `bson:"description"`
	Stock       int                  `bson:"stock"`
}

func (d productDoc) toModel() (*models.Product, error) {
	price, err := fromDecimal128(d.Price)
	if err != nil {
		return nil, err
	}
	return &models.Product{
		ID:          d.ID,
		Name:        d.Name,
		Category:    d.Category,
		Price:       price,
		Image:       d.Image,
		Description: d.Description,
		Stock:       d.Stock,
	}, nil
}

func productToDoc(p models.Product) (productDoc, error) {
	price, err := toDecimal128(p.Price)
	if err != nil {
		return productDoc{}, err
	}
	return productDoc{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       price,
		Image:       p.Image,
		Description: p.Description,
		Stock:       p.Stock,
	}, nil
}

// MongoCatalog implements CatalogStore on a MongoDB collection.
type MongoCatalog struct {
	collection *mongo.Collection
}

func NewMongoCatalog(db *mongo.Database) *MongoCatalog {
	return &MongoCatalog{collection: db.Collection("products")}
}

func (r *MongoCatalog) List(ctx context.Context, category, search string) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if category != "" && category != "All" {
		filter["category"] = category
	}
	if search != "" {
		q := regexp.QuoteMeta(search)
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": q, "$options": "i"}},
			{"description": bson.M{"$regex": q, "$options": "i"}},
		}
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		p, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}

func (r *MongoCatalog) GetByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var doc productDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return doc.toModel()
}

func (r *MongoCatalog) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	product := newProduct(input)

	doc, err := productToDoc(product)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}
	p := product
	return &p, nil
}

func (r *MongoCatalog) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
