// Package seed populates an empty database on first boot: the starter
// catalog and, when configured, the initial admin account.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/codeop/store/internal"
	"github.com/codeop/store/internal/domain"
	"github.com/codeop/store/internal/repository"
)

var catalog = []repository.CreateProductParams{
	{Name: "Lavender Soap", Description: "Cold-process bar soap with lavender essential oil.", Price: decimal.RequireFromString("8.90"), Currency: "USD", ImageUrl: "/images/lavender-soap.jpg"},
	{Name: "Bamboo Toothbrush", Description: "Biodegradable bamboo toothbrush, medium bristles.", Price: decimal.RequireFromString("2.40"), Currency: "USD", ImageUrl: "/images/bamboo-toothbrush.jpg"},
	{Name: "Shampoo Bar", Description: "Solid shampoo bar for all hair types.", Price: decimal.RequireFromString("11.50"), Currency: "USD", ImageUrl: "/images/shampoo-bar.jpg"},
	{Name: "Cotton Towel", Description: "Organic cotton bath towel.", Price: decimal.RequireFromString("19.00"), Currency: "USD", ImageUrl: "/images/cotton-towel.jpg"},
	{Name: "Dental Floss", Description: "Refillable glass dispenser with corn-fiber floss.", Price: decimal.RequireFromString("4.75"), Currency: "USD", ImageUrl: "/images/dental-floss.jpg"},
}

// Run seeds the catalog when empty and creates the configured admin
// account when it does not exist yet. It is safe to call on every boot.
func Run(ctx context.Context, queries repository.Querier, admin internal.AdminConfig, logger *slog.Logger) error {
	count, err := queries.CountProducts(ctx)
	if err != nil {
		return fmt.Errorf("seed: count products: %w", err)
	}
	if count == 0 {
		for _, p := range catalog {
			if _, err := queries.CreateProduct(ctx, p); err != nil {
				return fmt.Errorf("seed: create product %q: %w", p.Name, err)
			}
		}
		logger.Info("seeded product catalog", "products", len(catalog))
	}

	if admin.Username == "" || admin.Password == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash admin password: %w", err)
	}
	email := admin.Email
	if email == "" {
		email = admin.Username + "@hygiene-store.local"
	}
	_, err = queries.CreateUser(ctx, repository.CreateUserParams{
		Username:     admin.Username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		if repository.IsUniqueViolation(err, "") {
			return nil
		}
		return fmt.Errorf("seed: create admin user: %w", err)
	}
	logger.Info("created admin user", "username", admin.Username)
	return nil
}
