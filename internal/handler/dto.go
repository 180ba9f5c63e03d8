package handler

import (
	"time"

	"github.com/codeop/store/internal/domain"
)

// Monetary amounts are rendered as fixed two-decimal strings, never JSON
// numbers, so clients are not exposed to float rounding.

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Currency    string    `json:"currency"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       domain.AmountString(p.Price),
		Currency:    p.Currency,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type cartLineResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	ImageURL    string `json:"image_url"`
	Quantity    int32  `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Currency    string `json:"currency"`
	LineTotal   string `json:"line_total"`
}

type cartResponse struct {
	ID       string             `json:"id"`
	UserID   string             `json:"user_id,omitempty"`
	Lines    []cartLineResponse `json:"lines"`
	Total    string             `json:"total"`
	Currency string             `json:"currency"`
}

func toCartResponse(s *domain.CartSummary) cartResponse {
	lines := make([]cartLineResponse, 0, len(s.Lines))
	for _, line := range s.Lines {
		lines = append(lines, cartLineResponse{
			ID:          line.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			ImageURL:    line.ImageURL,
			Quantity:    line.Quantity,
			UnitPrice:   domain.AmountString(line.UnitPrice),
			Currency:    line.Currency,
			LineTotal:   domain.AmountString(line.LineTotal),
		})
	}
	return cartResponse{
		ID:       s.Cart.ID,
		UserID:   s.Cart.UserID,
		Lines:    lines,
		Total:    domain.AmountString(s.Total),
		Currency: s.Currency,
	}
}

type orderLineResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int32  `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

type orderResponse struct {
	ID            string              `json:"id"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	Currency      string              `json:"currency"`
	Status        string              `json:"status"`
	TotalAmount   string              `json:"total_amount"`
	CreatedAt     time.Time           `json:"created_at"`
	Lines         []orderLineResponse `json:"lines,omitempty"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	lines := make([]orderLineResponse, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, orderLineResponse{
			ID:          line.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   domain.AmountString(line.UnitPrice),
			LineTotal:   domain.AmountString(line.LineTotal),
		})
	}
	return orderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Currency:      o.Currency,
		Status:        string(o.Status),
		TotalAmount:   domain.AmountString(o.TotalAmount),
		CreatedAt:     o.CreatedAt,
		Lines:         lines,
	}
}

type paymentResponse struct {
	ID                string    `json:"id"`
	OrderID           string    `json:"order_id"`
	Provider          string    `json:"provider"`
	ProviderReference string    `json:"provider_reference"`
	Amount            string    `json:"amount"`
	Currency          string    `json:"currency"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

func toPaymentResponse(p *domain.Payment) paymentResponse {
	return paymentResponse{
		ID:                p.ID,
		OrderID:           p.OrderID,
		Provider:          p.Provider,
		ProviderReference: p.ProviderReference,
		Amount:            domain.AmountString(p.Amount),
		Currency:          p.Currency,
		Status:            string(p.Status),
		CreatedAt:         p.CreatedAt,
	}
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

type gatewayOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func toGatewayOrderResponse(g *domain.GatewayOrder) gatewayOrderResponse {
	return gatewayOrderResponse{ID: g.ProviderOrderID, Status: g.Status}
}
