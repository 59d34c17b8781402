package dbmodels

import (
	"time"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/utils"
)

type DBFilament struct {
	Id         int64     `db:"id"`
	Name       string    `db:"name"`
	Color      *string   `db:"color"`
	Material   *string   `db:"material"`
	PricePerKg *float64  `db:"price_per_kg"`
	StockGrams *float64  `db:"stock_grams"`
	Brand      *string   `db:"brand"`
	CreatedAt  time.Time `db:"created_at"`
}

const TABLE_FILAMENTS = "filaments"

var SelectFilamentColumn = utils.ColumnList[DBFilament]()

func AdaptFilament(db DBFilament) (models.Filament, error) {
	return models.Filament{
		Id:         db.Id,
		Name:       db.Name,
		Color:      db.Color,
		Material:   db.Material,
		PricePerKg: db.PricePerKg,
		StockGrams: db.StockGrams,
		Brand:      db.Brand,
		CreatedAt:  db.CreatedAt,
	}, nil
}
