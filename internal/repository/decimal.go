package repository

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Prices are stored as BSON Decimal128 so Mongo never sees a binary
// float; these convert to and from the decimal type the rest of the code
// uses.

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("invalid decimal %q: %w", d.String(), err)
	}
	return v, nil
}

func fromDecimal128(d primitive.Decimal128) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(d.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid decimal128 %q: %w", d.String(), err)
	}
	return v, nil
}
