package inventory

import (
	"testing"

	"Distillery-Tracker/domain"
)

func TestStockStatus(t *testing.T) {
	tests := []struct {
		name      string
		quantity  float64
		threshold float64
		want      string
	}{
		{name: "plenty", quantity: 40, threshold: 10, want: domain.StockStatusInStock},
		{name: "at threshold", quantity: 10, threshold: 10, want: domain.StockStatusLowStock},
		{name: "below threshold", quantity: 3, threshold: 10, want: domain.StockStatusLowStock},
		{name: "empty", quantity: 0, threshold: 10, want: domain.StockStatusOutOfStock},
		{name: "zero threshold in stock", quantity: 1, threshold: 0, want: domain.StockStatusInStock},
		{name: "zero threshold empty", quantity: 0, threshold: 0, want: domain.StockStatusOutOfStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StockStatus(tt.quantity, tt.threshold); got != tt.want {
				t.Errorf("StockStatus(%v, %v) = %q, want %q", tt.quantity, tt.threshold, got, tt.want)
			}
		})
	}
}
