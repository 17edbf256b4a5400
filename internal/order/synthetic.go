package order

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

var (
	synthDescriptions = []string{
		"Laptop",
		"Mechanical keyboard",
		"Crate of glassware",
		"Industrial solvent drum",
		"Paperback box set",
	}
	synthOrigins  = []string{"IN", "US", "DE", "SG", "BR"}
	synthCarriers = []string{"CARR-1", "CARR-2", "CARR-3"}
	synthPackages = []string{PackageFragile, PackageSolid, PackageLiquid, PackageFlammable}
)

// Synthetic builds a valid demo order from a seeded source, so repeated runs
// produce the same dataset.
func Synthetic(rnd *rand.Rand, now time.Time, statuses []string) *Order {
	created := now.Add(-time.Duration(rnd.Intn(90*24)) * time.Hour)
	o := &Order{
		OrderID:           uuid.NewString(),
		OrderDesc:         synthDescriptions[rnd.Intn(len(synthDescriptions))],
		OrderPrice:        10 + rnd.Float64()*990,
		Weight:            rnd.Float64() * 25,
		Volume:            rnd.Float64() * 2,
		PackageType:       synthPackages[rnd.Intn(len(synthPackages))],
		OrderStatus:       statuses[rnd.Intn(len(statuses))],
		OrderCreateDate:   created,
		OrderUpdateDate:   created,
		DeliveryDate:      created.Add(time.Duration(24+rnd.Intn(96)) * time.Hour),
		CustomerID:        fmt.Sprintf("CUST-%04d", rnd.Intn(500)),
		CarrierID:         synthCarriers[rnd.Intn(len(synthCarriers))],
		OrderDiscount:     float64(rnd.Intn(20)) / 100,
		OrderAvailability: rnd.Float64() > 0.2,
		OrderOrigin:       synthOrigins[rnd.Intn(len(synthOrigins))],
		OrderBarcode:      uuid.NewString(),
	}
	return o
}

// Seed inserts n synthetic orders unless the store already holds records.
// Used for demos; gated by configuration.
func Seed(ctx context.Context, repo Repository, n int, statuses []string) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	existing, err := repo.GetLatest(ctx)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, nil
	}
	rnd := rand.New(rand.NewSource(42))
	now := time.Now().UTC()
	for i := 0; i < n; i++ {
		if _, err := repo.Create(ctx, Synthetic(rnd, now, statuses)); err != nil {
			return i, err
		}
	}
	return n, nil
}
