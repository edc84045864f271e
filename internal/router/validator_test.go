package router

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"learnhub/internal/dto"
)

func TestCustomValidator_CoursePriceBound(t *testing.T) {
	v := NewCustomValidator()

	tests := []struct {
		name    string
		price   decimal.Decimal
		wantErr bool
	}{
		{name: "negative price rejected", price: decimal.NewFromFloat(-10), wantErr: true},
		{name: "free course allowed", price: decimal.NewFromInt(0)},
		{name: "positive price allowed", price: decimal.NewFromFloat(29.99)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CourseRequest{
				Title:       "Go Fundamentals",
				Description: "Types, interfaces and goroutines.",
				Price:       tt.price,
			}
			err := v.Validate(&req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomValidator_CourseUpdatePriceBound(t *testing.T) {
	v := NewCustomValidator()

	req := dto.CourseUpdateRequest{
		Title:       "Go Fundamentals",
		Description: "Types, interfaces and goroutines.",
		Price:       decimal.NewFromFloat(-0.01),
	}
	assert.Error(t, v.Validate(&req))

	req.Price = decimal.NewFromFloat(0.01)
	assert.NoError(t, v.Validate(&req))
}
