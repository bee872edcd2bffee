// Command seed migrates the schema and loads the development fixtures: one
// sign-in account, a handful of customers, their invoices, and a year of
// revenue figures. The account password comes from SEED_USER_PASSWORD or,
// when unset, is read from the terminal without echo.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/obolotin/ledgerboard/internal/dbx"
	"github.com/obolotin/ledgerboard/internal/server"
	"github.com/obolotin/ledgerboard/internal/server/config"
	"github.com/obolotin/ledgerboard/internal/server/models"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	app := server.NewApp(cfg)

	password, err := seedPassword()
	if err != nil {
		log.Fatalf("reading password: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hashing password: %v", err)
	}

	conn, err := app.Provider().Acquire(ctx)
	if err != nil {
		log.Fatalf("connecting: %v", err)
	}
	defer app.Provider().Release(conn)

	if err := app.Migrate(ctx, conn); err != nil {
		log.Fatalf("migrating: %v", err)
	}

	err = dbx.WithTx(ctx, conn, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return seed(ctx, app, tx, string(hash))
	})
	if err != nil {
		log.Fatalf("seeding: %v", err)
	}

	app.Logger().Info(ctx, "seed complete")
}

// seedPassword returns the password for the seeded account, preferring the
// SEED_USER_PASSWORD variable over an interactive prompt.
func seedPassword() ([]byte, error) {
	if pw := os.Getenv("SEED_USER_PASSWORD"); pw != "" {
		return []byte(pw), nil
	}
	fmt.Fprint(os.Stderr, "Password for user@nextmail.com: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	if len(pw) == 0 {
		return nil, fmt.Errorf("password must not be empty")
	}
	return pw, nil
}

type invoiceFixture struct {
	customer    int
	amountCents int64
	status      string
	date        string
}

func seed(ctx context.Context, app *server.App, tx dbx.DBTX, passwordHash string) error {
	repos := app.Repos()

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         "User",
		Email:        "user@nextmail.com",
		PasswordHash: passwordHash,
		ImageURL:     "/users/user.png",
	}
	if err := repos.Users(tx).Create(ctx, user); err != nil {
		return fmt.Errorf("users: %w", err)
	}

	customers := []*models.Customer{
		{ID: uuid.NewString(), Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
		{ID: uuid.NewString(), Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
		{ID: uuid.NewString(), Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
		{ID: uuid.NewString(), Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
		{ID: uuid.NewString(), Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
		{ID: uuid.NewString(), Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
	}
	for _, c := range customers {
		if err := repos.Customers(tx).Create(ctx, c); err != nil {
			return fmt.Errorf("customers: %w", err)
		}
	}

	fixtures := []invoiceFixture{
		{0, 15795, models.StatusPending, "2022-12-06"},
		{1, 20348, models.StatusPending, "2022-11-14"},
		{4, 3040, models.StatusPaid, "2022-10-29"},
		{3, 44800, models.StatusPaid, "2023-09-10"},
		{5, 34577, models.StatusPending, "2023-08-05"},
		{2, 54246, models.StatusPending, "2023-07-16"},
		{0, 666, models.StatusPending, "2023-06-27"},
		{3, 32545, models.StatusPaid, "2023-06-09"},
		{4, 1250, models.StatusPaid, "2023-06-17"},
		{5, 8546, models.StatusPaid, "2023-06-07"},
		{1, 500, models.StatusPaid, "2023-08-19"},
		{5, 8945, models.StatusPaid, "2023-06-03"},
		{2, 1000, models.StatusPaid, "2022-06-05"},
	}
	for _, f := range fixtures {
		date, err := time.Parse("2006-01-02", f.date)
		if err != nil {
			return fmt.Errorf("invoices: %w", err)
		}
		inv := &models.Invoice{
			ID:          uuid.NewString(),
			CustomerID:  customers[f.customer].ID,
			AmountCents: f.amountCents,
			Status:      f.status,
			Date:        date,
		}
		if err := repos.Invoices(tx).Create(ctx, inv); err != nil {
			return fmt.Errorf("invoices: %w", err)
		}
	}

	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	dollars := []int64{2000, 1800, 2200, 2500, 2300, 3200, 3500, 3700, 2500, 2800, 3000, 4800}
	for i, m := range months {
		rev := &models.Revenue{Month: m, RevenueCents: dollars[i] * 100}
		if err := repos.Dashboard(tx).InsertRevenue(ctx, rev); err != nil {
			return fmt.Errorf("revenue: %w", err)
		}
	}

	return nil
}
