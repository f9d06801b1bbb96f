package seed

import (
	"bytes"
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sponsortrack/internal/dealview"
	"sponsortrack/internal/logger"
	"sponsortrack/internal/repositories"
	"sponsortrack/internal/repositories/testutil"
	"sponsortrack/internal/services"
)

func TestRandomDeals(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	allowed := map[string]bool{}
	for _, v := range dealValues {
		allowed[decimal.NewFromInt(v).String()] = true
	}

	for i := 0; i < 200; i++ {
		deals := RandomDeals(rng, 7, 2025)
		require.GreaterOrEqual(t, len(deals), 2)
		require.LessOrEqual(t, len(deals), 4)

		for _, d := range deals {
			assert.Equal(t, 7, d.AccountID)
			assert.True(t, d.Status.Valid())
			assert.True(t, allowed[d.Value.String()], d.Value.String())

			start := dealview.YearOf(d.StartDate)
			end := dealview.YearOf(d.EndDate)
			require.True(t, start.Valid && end.Valid)
			assert.GreaterOrEqual(t, start.Value, 2023)
			assert.LessOrEqual(t, start.Value, 2025)
			assert.Equal(t, start.Value+1, end.Value)

			_, err := time.Parse("2006-01-02", d.StartDate)
			assert.NoError(t, err)
		}
	}
}

func TestSeeder_Run(t *testing.T) {
	tdb := testutil.SetupTestDatabase(t)
	ctx := context.Background()
	log := logger.New(&bytes.Buffer{}, "error")

	accountRepo := repositories.NewAccountRepository(tdb.DB)
	dealRepo := repositories.NewDealRepository(tdb.DB)
	s := &Seeder{
		Organizations: services.NewOrganizationService(repositories.NewOrganizationRepository(tdb.DB)),
		Accounts:      services.NewAccountService(accountRepo),
		Deals:         services.NewDealService(dealRepo, accountRepo, nil, log),
		Rand:          rand.New(rand.NewPCG(42, 42)),
		Now:           func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) },
		Log:           log,
	}

	res, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Organizations)
	assert.Equal(t, 10, res.Accounts)
	assert.GreaterOrEqual(t, res.Deals, 20)
	assert.LessOrEqual(t, res.Deals, 40)

	deals, err := dealRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, deals, res.Deals)

	years := dealview.DistinctYears(deals)
	assert.False(t, years.HasInvalid)
	for _, y := range years.Values {
		assert.True(t, y >= 2023 && y <= 2026, y)
	}
	assert.True(t, dealview.ActiveValue(deals).LessThanOrEqual(dealview.TotalValue(deals)))
}
