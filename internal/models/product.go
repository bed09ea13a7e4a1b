package models

type Product struct {
	ID            string  `json:"product_id"`
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	IsActive      bool    `json:"is_active"`
}

// InStock reports whether the product can currently be added to a cart.
func (p *Product) InStock() bool {
	return p.IsActive && p.StockQuantity > 0
}
