// Package view maps controller state to render-ready view models. It is the
// only place presentation formatting lives; any UI can consume these without
// touching business logic.
package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mo7amedgom3a/storefront/internal/models"
	"github.com/mo7amedgom3a/storefront/internal/utils"
)

type ProductView struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	InStock     bool   `json:"in_stock"`
}

type CartLineView struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type CartView struct {
	Lines     []CartLineView `json:"lines"`
	ItemCount int            `json:"item_count"`
	Subtotal  string         `json:"subtotal"`
	Empty     bool           `json:"empty"`
}

type OrderItemView struct {
	Label     string `json:"label"`
	LineTotal string `json:"line_total"`
}

type OrderView struct {
	OrderID     string          `json:"order_id"`
	Date        string          `json:"date"`
	Status      string          `json:"status"`
	StatusTag   string          `json:"status_tag"`
	TotalAmount string          `json:"total_amount"`
	Address     []string        `json:"address"`
	Items       []OrderItemView `json:"items"`
}

func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

func NewProductViews(products []models.Product) []ProductView {
	views := make([]ProductView, 0, len(products))

	for _, p := range products {
		views = append(views, ProductView{
			ProductID:   p.ID,
			Name:        utils.SanitizeText(p.Name),
			Description: utils.SanitizeText(p.Description),
			Price:       FormatMoney(p.Price),
			InStock:     p.InStock(),
		})
	}

	return views
}

func NewCartView(cart *models.Cart) CartView {
	cv := CartView{
		Lines:     make([]CartLineView, 0, len(cart.Lines)),
		ItemCount: cart.ItemCount(),
		Subtotal:  FormatMoney(cart.Subtotal()),
		Empty:     cart.IsEmpty(),
	}

	for _, line := range cart.Lines {
		cv.Lines = append(cv.Lines, CartLineView{
			ProductID: line.ProductID,
			Name:      utils.SanitizeText(line.Name),
			UnitPrice: FormatMoney(line.UnitPrice),
			Quantity:  line.Quantity,
			LineTotal: FormatMoney(line.UnitPrice * float64(line.Quantity)),
		})
	}

	sort.Slice(cv.Lines, func(i, j int) bool {
		return cv.Lines[i].ProductID < cv.Lines[j].ProductID
	})

	return cv
}

// NewOrderViews resolves product names through the given catalog, falling back
// to "Unknown Product" for ids the catalog no longer carries.
func NewOrderViews(orders []models.Order, products []models.Product) []OrderView {
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	views := make([]OrderView, 0, len(orders))

	for _, order := range orders {
		ov := OrderView{
			OrderID:     order.OrderID,
			Date:        order.OrderDate.Local().Format("1/2/2006, 3:04:05 PM"),
			Status:      string(order.OrderStatus),
			StatusTag:   "status-" + strings.ToLower(string(order.OrderStatus)),
			TotalAmount: FormatMoney(order.TotalAmount),
			Address: []string{
				utils.SanitizeText(order.ShippingAddress.Street),
				utils.SanitizeText(order.ShippingAddress.City) + ", " + utils.SanitizeText(order.ShippingAddress.ZipCode),
				utils.SanitizeText(order.ShippingAddress.Country),
			},
		}

		for _, item := range order.Items {
			name, ok := names[item.ProductID]
			if !ok {
				name = "Unknown Product"
			}

			ov.Items = append(ov.Items, OrderItemView{
				Label:     fmt.Sprintf("%s (x%d)", utils.SanitizeText(name), item.Quantity),
				LineTotal: FormatMoney(item.PricePerUnit * float64(item.Quantity)),
			})
		}

		views = append(views, ov)
	}

	return views
}
