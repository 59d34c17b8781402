package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/printfarm/printfarm-backend/models"
)

type APIFilament struct {
	Id         int64       `json:"id"`
	Name       string      `json:"name"`
	Color      null.String `json:"color"`
	Material   null.String `json:"material"`
	PricePerKg null.Float  `json:"price_per_kg"`
	StockGrams null.Float  `json:"stock_grams"`
	Brand      null.String `json:"brand"`
	CreatedAt  time.Time   `json:"created_at"`
}

func AdaptFilamentDto(f models.Filament) APIFilament {
	return APIFilament{
		Id:         f.Id,
		Name:       f.Name,
		Color:      null.StringFromPtr(f.Color),
		Material:   null.StringFromPtr(f.Material),
		PricePerKg: null.FloatFromPtr(f.PricePerKg),
		StockGrams: null.FloatFromPtr(f.StockGrams),
		Brand:      null.StringFromPtr(f.Brand),
		CreatedAt:  f.CreatedAt,
	}
}

type CreateFilamentBody struct {
	Name       string      `json:"name" binding:"required,max=120"`
	Color      null.String `json:"color" binding:"omitempty,max=50"`
	Material   null.String `json:"material" binding:"omitempty,max=50"`
	PricePerKg null.Float  `json:"price_per_kg" binding:"omitempty,gte=0"`
	StockGrams null.Float  `json:"stock_grams" binding:"omitempty,gte=0"`
	Brand      null.String `json:"brand" binding:"omitempty,max=120"`
}

func AdaptCreateFilamentInput(body CreateFilamentBody) models.CreateFilamentInput {
	return models.CreateFilamentInput{
		Name:       body.Name,
		Color:      body.Color.Ptr(),
		Material:   body.Material.Ptr(),
		PricePerKg: body.PricePerKg.Ptr(),
		StockGrams: body.StockGrams.Ptr(),
		Brand:      body.Brand.Ptr(),
	}
}

type UpdateFilamentBody struct {
	Name       null.String `json:"name" binding:"omitempty,max=120"`
	Color      null.String `json:"color" binding:"omitempty,max=50"`
	Material   null.String `json:"material" binding:"omitempty,max=50"`
	PricePerKg null.Float  `json:"price_per_kg" binding:"omitempty,gte=0"`
	StockGrams null.Float  `json:"stock_grams" binding:"omitempty,gte=0"`
	Brand      null.String `json:"brand" binding:"omitempty,max=120"`
}

func AdaptUpdateFilamentInput(filamentId int64, body UpdateFilamentBody) models.UpdateFilamentInput {
	return models.UpdateFilamentInput{
		Id:         filamentId,
		Name:       body.Name.Ptr(),
		Color:      body.Color.Ptr(),
		Material:   body.Material.Ptr(),
		PricePerKg: body.PricePerKg.Ptr(),
		StockGrams: body.StockGrams.Ptr(),
		Brand:      body.Brand.Ptr(),
	}
}
