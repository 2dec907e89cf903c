package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"harmony-store/internal/models"
)

type orderItemDoc struct {
	ProductID string               `bson:"product_id"`
	Name      string               `bson:"name"`
	Quantity  int                  `bson:"quantity"`
	Price     primitive.Decimal128 `bson:"price"`
}

type orderDoc struct {
	OrderID   string                 `bson:"_id"`
	UserID    string                 `bson:"user_id"`
	Items     []orderItemDoc         `bson:"items"`
	Total     primitive.Decimal128   `bson:"total"`
	Shipping  models.ShippingDetails `bson:"shipping"`
	Timestamp time.Time              `bson:"timestamp"`
}

func orderToDoc(o *models.Order) (orderDoc, error) {
	total, err := toDecimal128(o.Total)
	if err != nil {
		return orderDoc{}, err
	}

	items := make([]orderItemDoc, 0, len(o.Items))
	for _, item := range o.Items {
		price, err := toDecimal128(item.Price)
		if err != nil {
			return orderDoc{}, err
		}
		items = append(items, orderItemDoc{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}

	return orderDoc{
		OrderID:   o.OrderID,
		UserID:    o.UserID,
		Items:     items,
		Total:     total,
		Shipping:  o.Shipping,
		Timestamp: o.Timestamp,
	}, nil
}

func (d orderDoc) toModel() (*models.Order, error) {
	total, err := fromDecimal128(d.Total)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		price, err := fromDecimal128(item.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}

	return &models.Order{
		OrderID:   d.OrderID,
		UserID:    d.UserID,
		Items:     items,
		Total:     total,
		Shipping:  d.Shipping,
		Timestamp: d.Timestamp,
	}, nil
}

// MongoOrders implements OrderStore on a MongoDB collection. Orders are
// only ever inserted, never updated.
type MongoOrders struct {
	collection *mongo.Collection
}

func NewMongoOrders(db *mongo.Database) *MongoOrders {
	return &MongoOrders{collection: db.Collection("orders")}
}

func (r *MongoOrders) Create(ctx context.Context, order *models.Order) error {
	doc, err := orderToDoc(order)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *MongoOrders) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	orders := make([]models.Order, 0, len(docs))
	for _, doc := range docs {
		o, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, nil
}
