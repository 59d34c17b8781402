package models

import "time"

type Filament struct {
	Id         int64
	Name       string
	Color      *string
	Material   *string
	PricePerKg *float64
	StockGrams *float64
	Brand      *string
	CreatedAt  time.Time
}

type CreateFilamentInput struct {
	Name       string
	Color      *string
	Material   *string
	PricePerKg *float64
	StockGrams *float64
	Brand      *string
}

type UpdateFilamentInput struct {
	Id         int64
	Name       *string
	Color      *string
	Material   *string
	PricePerKg *float64
	StockGrams *float64
	Brand      *string
}
