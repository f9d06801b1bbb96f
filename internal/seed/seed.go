// Package seed fills an empty database with demo organizations, sponsor
// accounts and randomly generated deals.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"sponsortrack/internal/models"
	"sponsortrack/internal/services"
)

type accountSeed struct {
	name  string
	email string
	phone string
}

type orgSeed struct {
	name     string
	accounts []accountSeed
}

var catalog = []orgSeed{
	{"SponsorTech", []accountSeed{
		{"Amazon", "contact@amazon.com", "555-123-4567"},
		{"Google", "contact@google.com", "555-234-5678"},
		{"Microsoft", "contact@microsoft.com", "555-345-6789"},
	}},
	{"EventMasters", []accountSeed{
		{"Nike", "contact@nike.com", "555-456-7890"},
		{"Adidas", "contact@adidas.com", "555-567-8901"},
	}},
	{"SportsInc", []accountSeed{
		{"Coca-Cola", "contact@cocacola.com", "555-678-9012"},
		{"Pepsi", "contact@pepsi.com", "555-789-0123"},
	}},
	{"MediaGroup", []accountSeed{
		{"Ford", "contact@ford.com", "555-890-1234"},
		{"Toyota", "contact@toyota.com", "555-901-2345"},
		{"BMW", "contact@bmw.com", "555-012-3456"},
	}},
}

var dealValues = []int64{5000, 10000, 15000, 25000, 50000, 75000, 100000, 150000, 200000, 500000}

type Result struct {
	Organizations int
	Accounts      int
	Deals         int
}

type Seeder struct {
	Organizations *services.OrganizationService
	Accounts      *services.AccountService
	Deals         *services.DealService
	Rand          *rand.Rand
	Now           func() time.Time
	Log           *logrus.Logger
}

// Run создаёт организации, аккаунты и по 2–4 сделки на аккаунт.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result
	currentYear := s.Now().Year()

	for _, o := range catalog {
		org := &models.Organization{Name: o.name}
		if err := s.Organizations.Create(ctx, org); err != nil {
			return res, fmt.Errorf("seed organization %s: %w", o.name, err)
		}
		res.Organizations++
		s.Log.WithFields(logrus.Fields{"id": org.ID, "name": org.Name}).Info("Created organization")

		for _, a := range o.accounts {
			account := &models.Account{
				OrganizationID: org.ID,
				Name:           a.name,
				ContactEmail:   a.email,
				ContactPhone:   a.phone,
			}
			if err := s.Accounts.Create(ctx, account); err != nil {
				return res, fmt.Errorf("seed account %s: %w", a.name, err)
			}
			res.Accounts++

			for _, d := range RandomDeals(s.Rand, account.ID, currentYear) {
				deal := d
				if err := s.Deals.Create(ctx, &deal); err != nil {
					return res, fmt.Errorf("seed deal for %s: %w", a.name, err)
				}
				res.Deals++
				s.Log.WithFields(logrus.Fields{
					"account_id": deal.AccountID,
					"value":      deal.Value.String(),
					"status":     deal.Status,
				}).Debug("Created deal")
			}
		}
	}
	return res, nil
}

// RandomDeals генерирует 2–4 сделки: старт в одном из трёх последних лет,
// окончание в следующем году.
func RandomDeals(rng *rand.Rand, accountID, currentYear int) []models.Deal {
	n := rng.IntN(3) + 2
	deals := make([]models.Deal, 0, n)
	for i := 0; i < n; i++ {
		year := currentYear - rng.IntN(3)
		deals = append(deals, models.Deal{
			AccountID: accountID,
			StartDate: randomDate(rng, year),
			EndDate:   randomDate(rng, year+1),
			Value:     decimal.NewFromInt(dealValues[rng.IntN(len(dealValues))]),
			Status:    models.DealStatuses[rng.IntN(len(models.DealStatuses))],
		})
	}
	return deals
}

// день до 28, чтобы не думать о длине месяца
func randomDate(rng *rand.Rand, year int) string {
	return fmt.Sprintf("%d-%02d-%02d", year, rng.IntN(12)+1, rng.IntN(28)+1)
}
