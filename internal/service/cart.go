package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/codeop/store/internal/domain"
	"github.com/codeop/store/internal/repository"
)

type cartService struct {
	queries repository.Querier
	logger  *slog.Logger
}

// NewCartService creates a cart service.
func NewCartService(queries repository.Querier, logger *slog.Logger) domain.CartService {
	return &cartService{queries: queries, logger: logger}
}

func (s *cartService) GetOrCreateForUser(ctx context.Context, userID string) (*domain.CartSummary, error) {
	const op = "cart.get_or_create"

	uid, err := parseID(op, "user", userID)
	if err != nil {
		return nil, err
	}

	row, err := s.queries.GetCartByUserID(ctx, uid)
	if err == nil {
		return s.summarize(ctx, op, row)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.Internal(err, op, "failed to look up cart")
	}

	row, err = s.queries.CreateCart(ctx, uid)
	if errors.Is(err, pgx.ErrNoRows) {
		// Lost the insert race against a concurrent first access; the
		// winner's cart is now readable.
		row, err = s.queries.GetCartByUserID(ctx, uid)
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to create cart")
	}
	return s.summarize(ctx, op, row)
}

func (s *cartService) CreateCart(ctx context.Context) (*domain.CartSummary, error) {
	const op = "cart.create"

	row, err := s.queries.CreateCart(ctx, pgtype.UUID{})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to create cart")
	}

	s.logger.Info("cart created", "cart_id", repository.UUIDString(row.ID))
	return s.summarize(ctx, op, row)
}

func (s *cartService) GetCart(ctx context.Context, cartID string) (*domain.CartSummary, error) {
	const op = "cart.get"

	row, err := s.getCartRow(ctx, op, cartID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, op, row)
}

func (s *cartService) AddItem(ctx context.Context, cartID, productID string, quantity int32) (*domain.CartSummary, error) {
	const op = "cart.add_item"

	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	cart, err := s.getCartRow(ctx, op, cartID)
	if err != nil {
		return nil, err
	}

	pid, err := parseID(op, "product", productID)
	if err != nil {
		return nil, err
	}
	product, err := s.queries.GetProductByID(ctx, pid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.Internal(err, op, "failed to get product")
	}

	// Unit price and currency are snapshotted here. A line that already
	// exists for this product keeps its original snapshot; only the
	// quantity is merged.
	_, err = s.queries.UpsertCartItem(ctx, repository.UpsertCartItemParams{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: product.Price,
		Currency:  product.Currency,
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to add cart item")
	}

	return s.summarize(ctx, op, cart)
}

func (s *cartService) UpdateItem(ctx context.Context, cartID, lineID string, quantity int32) (*domain.CartSummary, error) {
	const op = "cart.update_item"

	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	cart, err := s.getCartRow(ctx, op, cartID)
	if err != nil {
		return nil, err
	}
	itemID, err := parseID(op, "cart item", lineID)
	if err != nil {
		return nil, err
	}

	affected, err := s.queries.UpdateCartItemQuantity(ctx, repository.UpdateCartItemQuantityParams{
		CartID:   cart.ID,
		ItemID:   itemID,
		Quantity: quantity,
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to update cart item")
	}
	if affected == 0 {
		return nil, domain.ErrCartItemNotFound
	}

	return s.summarize(ctx, op, cart)
}

func (s *cartService) RemoveItem(ctx context.Context, cartID, lineID string) (*domain.CartSummary, error) {
	const op = "cart.remove_item"

	cart, err := s.getCartRow(ctx, op, cartID)
	if err != nil {
		return nil, err
	}
	itemID, err := parseID(op, "cart item", lineID)
	if err != nil {
		return nil, err
	}

	affected, err := s.queries.RemoveCartItem(ctx, repository.RemoveCartItemParams{
		CartID: cart.ID,
		ItemID: itemID,
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to remove cart item")
	}
	if affected == 0 {
		return nil, domain.ErrCartItemNotFound
	}

	return s.summarize(ctx, op, cart)
}

func (s *cartService) DeleteCart(ctx context.Context, cartID string) error {
	const op = "cart.delete"

	id, err := parseID(op, "cart", cartID)
	if err != nil {
		return err
	}

	affected, err := s.queries.DeleteCart(ctx, id)
	if err != nil {
		return domain.Internal(err, op, "failed to delete cart")
	}
	if affected == 0 {
		return domain.ErrCartNotFound
	}

	s.logger.Info("cart deleted", "cart_id", cartID)
	return nil
}

func (s *cartService) getCartRow(ctx context.Context, op, cartID string) (repository.Cart, error) {
	id, err := parseID(op, "cart", cartID)
	if err != nil {
		return repository.Cart{}, err
	}

	row, err := s.queries.GetCartByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.Cart{}, domain.ErrCartNotFound
		}
		return repository.Cart{}, domain.Internal(err, op, "failed to get cart")
	}
	return row, nil
}

// summarize loads the cart's lines and computes the aggregate view. The
// cart currency is the currency of the first line, DefaultCurrency when the
// cart is empty.
func (s *cartService) summarize(ctx context.Context, op string, cart repository.Cart) (*domain.CartSummary, error) {
	rows, err := s.queries.GetCartItems(ctx, cart.ID)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load cart items")
	}

	summary := &domain.CartSummary{
		Cart:     cartFromRow(cart),
		Lines:    make([]domain.CartLine, 0, len(rows)),
		Currency: domain.DefaultCurrency,
	}
	for i, row := range rows {
		line := cartLineFromRow(row)
		summary.Lines = append(summary.Lines, line)
		summary.Total = summary.Total.Add(line.LineTotal)
		if i == 0 && line.Currency != "" {
			summary.Currency = line.Currency
		}
	}
	return summary, nil
}
