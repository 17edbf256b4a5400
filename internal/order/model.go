package order

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound = errors.New("order not found")
	ErrConflict = errors.New("order already exists")
	ErrInvalid  = errors.New("invalid order")
)

// Package types allowed on an order.
const (
	PackageFragile   = "FRAGILE"
	PackageSolid     = "SOLID"
	PackageLiquid    = "LIQUID"
	PackageFlammable = "FLAMMABLE"
)

var packageTypes = map[string]bool{
	PackageFragile:   true,
	PackageSolid:     true,
	PackageLiquid:    true,
	PackageFlammable: true,
}

const (
	maxDescLen       = 100
	maxCustomerIDLen = 12
)

// Order is the storage representation of an order row.
type Order struct {
	OrderID           string    `json:"order_id"`
	OrderDesc         string    `json:"order_desc"`
	OrderPrice        float64   `json:"order_price"`
	Weight            float64   `json:"weight"`
	Volume            float64   `json:"volume"`
	PackageType       string    `json:"package_type"`
	OrderStatus       string    `json:"order_status"`
	OrderCreateDate   time.Time `json:"order_create_date"`
	OrderUpdateDate   time.Time `json:"order_update_date"`
	DeliveryDate      time.Time `json:"delivery_date"`
	CustomerID        string    `json:"customer_id"`
	CarrierID         string    `json:"carrier_id"`
	OrderDiscount     float64   `json:"order_discount"`
	OrderAvailability bool      `json:"order_availability"`
	OrderOrigin       string    `json:"order_origin"`
	OrderBarcode      string    `json:"order_barcode"`
}

// Validate checks field constraints. statuses is the closed set of lifecycle
// tags the deployment accepts; an empty order_status is allowed (not yet tagged).
func (o *Order) Validate(statuses []string) error {
	if o.CustomerID == "" {
		return fmt.Errorf("%w: customer_id is required", ErrInvalid)
	}
	if len(o.CustomerID) > maxCustomerIDLen {
		return fmt.Errorf("%w: customer_id exceeds %d characters", ErrInvalid, maxCustomerIDLen)
	}
	if o.CarrierID == "" {
		return fmt.Errorf("%w: carrier_id is required", ErrInvalid)
	}
	if len(o.OrderDesc) > maxDescLen {
		return fmt.Errorf("%w: order_desc exceeds %d characters", ErrInvalid, maxDescLen)
	}
	if o.OrderPrice < 0 {
		return fmt.Errorf("%w: order_price must be non-negative", ErrInvalid)
	}
	if o.Weight < 0 {
		return fmt.Errorf("%w: weight must be non-negative", ErrInvalid)
	}
	if o.Volume < 0 {
		return fmt.Errorf("%w: volume must be non-negative", ErrInvalid)
	}
	if o.OrderDiscount < 0 || o.OrderDiscount > 1 {
		return fmt.Errorf("%w: order_discount must be a fraction between 0 and 1", ErrInvalid)
	}
	if o.PackageType != "" && !packageTypes[o.PackageType] {
		return fmt.Errorf("%w: unknown package_type %q", ErrInvalid, o.PackageType)
	}
	if o.OrderStatus != "" && !contains(statuses, o.OrderStatus) {
		return fmt.Errorf("%w: unknown order_status %q", ErrInvalid, o.OrderStatus)
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
