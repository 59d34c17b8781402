package api

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printfarm/printfarm-backend/dto"
)

func TestValidators(t *testing.T) {
	require.NoError(t, RegisterValidators())
	require.NoError(t, RegisterValidators())

	tests := []struct {
		name  string
		body  any
		valid bool
	}{
		{"printer with url", dto.CreatePrinterBody{Name: "Voron", MoonrakerUrl: null.StringFrom("http://voron.local:7125")}, true},
		{"printer without url", dto.CreatePrinterBody{Name: "Voron"}, true},
		{"printer with empty url", dto.UpdatePrinterBody{MoonrakerUrl: null.StringFrom("")}, true},
		{"printer url without scheme", dto.CreatePrinterBody{Name: "Voron", MoonrakerUrl: null.StringFrom("voron.local")}, false},
		{"printer url with other scheme", dto.UpdatePrinterBody{MoonrakerUrl: null.StringFrom("ftp://voron.local")}, false},
		{"printer without name", dto.CreatePrinterBody{}, false},
		{"negative stock", dto.UpdateFilamentBody{StockGrams: null.FloatFrom(-1)}, false},
		{"null stock", dto.UpdateFilamentBody{StockGrams: null.Float{}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.body)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
