package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WireOrder is the JSON representation exchanged with clients. Every field is
// optional so partial projections stay representable; timestamps are rendered
// as RFC3339 strings.
// swagger:model WireOrder
type WireOrder struct {
	OrderID           string  `json:"order_id,omitempty"`
	OrderDesc         string  `json:"order_desc,omitempty"`
	OrderPrice        float64 `json:"order_price,omitempty"`
	Weight            float64 `json:"weight,omitempty"`
	Volume            float64 `json:"volume,omitempty"`
	PackageType       string  `json:"package_type,omitempty"`
	OrderStatus       string  `json:"order_status,omitempty"`
	OrderCreateDate   string  `json:"order_create_date,omitempty"`
	OrderUpdateDate   string  `json:"order_update_date,omitempty"`
	DeliveryDate      string  `json:"delivery_date,omitempty"`
	CustomerID        string  `json:"customer_id,omitempty"`
	CarrierID         string  `json:"carrier_id,omitempty"`
	OrderDiscount     float64 `json:"order_discount,omitempty"`
	OrderAvailability bool    `json:"order_availability,omitempty"`
	OrderOrigin       string  `json:"order_origin,omitempty"`
	OrderBarcode      string  `json:"order_barcode,omitempty"`
}

// CreateOrderRequest is the create payload. It binds from a JSON body or from
// query-style fields; order_price travels as a decimal string.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	OrderID           string  `json:"order_id" form:"order_id"`
	OrderDesc         string  `json:"order_desc" form:"order_desc" binding:"required" example:"Laptop"`
	OrderPrice        string  `json:"order_price" form:"order_price" binding:"required" example:"999.99"`
	CustomerID        string  `json:"customer_id" form:"customer_id" binding:"required" example:"CUST-1"`
	CarrierID         string  `json:"carrier_id" form:"carrier_id" binding:"required" example:"CARR-1"`
	Weight            float64 `json:"weight" form:"weight"`
	Volume            float64 `json:"volume" form:"volume"`
	PackageType       string  `json:"package_type" form:"package_type"`
	OrderStatus       string  `json:"order_status" form:"order_status"`
	DeliveryDate      string  `json:"delivery_date" form:"delivery_date"`
	OrderDiscount     float64 `json:"order_discount" form:"order_discount"`
	OrderAvailability bool    `json:"order_availability" form:"order_availability"`
	OrderOrigin       string  `json:"order_origin" form:"order_origin"`
}

// UpdateOrderRequest is the update payload; order_id names the record to replace.
// swagger:model UpdateOrderRequest
type UpdateOrderRequest struct {
	OrderID           string  `json:"order_id" binding:"required"`
	OrderDesc         string  `json:"order_desc" binding:"required"`
	OrderPrice        string  `json:"order_price" binding:"required"`
	CustomerID        string  `json:"customer_id" binding:"required"`
	CarrierID         string  `json:"carrier_id" binding:"required"`
	Weight            float64 `json:"weight"`
	Volume            float64 `json:"volume"`
	PackageType       string  `json:"package_type"`
	OrderStatus       string  `json:"order_status"`
	DeliveryDate      string  `json:"delivery_date"`
	OrderDiscount     float64 `json:"order_discount"`
	OrderAvailability bool    `json:"order_availability"`
	OrderOrigin       string  `json:"order_origin"`
	OrderBarcode      string  `json:"order_barcode"`
}

// ToOrder builds the storage record for a new order: server-side id and barcode
// when absent, create and update date both stamped to now.
func (r CreateOrderRequest) ToOrder(now time.Time, statuses []string) (*Order, error) {
	price, err := parsePrice(r.OrderPrice)
	if err != nil {
		return nil, err
	}
	delivery, err := parseDate("delivery_date", r.DeliveryDate)
	if err != nil {
		return nil, err
	}
	o := &Order{
		OrderID:           r.OrderID,
		OrderDesc:         r.OrderDesc,
		OrderPrice:        price,
		Weight:            r.Weight,
		Volume:            r.Volume,
		PackageType:       r.PackageType,
		OrderStatus:       r.OrderStatus,
		OrderCreateDate:   now,
		OrderUpdateDate:   now,
		DeliveryDate:      delivery,
		CustomerID:        r.CustomerID,
		CarrierID:         r.CarrierID,
		OrderDiscount:     r.OrderDiscount,
		OrderAvailability: r.OrderAvailability,
		OrderOrigin:       r.OrderOrigin,
		OrderBarcode:      uuid.NewString(),
	}
	if o.OrderID == "" {
		o.OrderID = uuid.NewString()
	}
	if err := o.Validate(statuses); err != nil {
		return nil, err
	}
	return o, nil
}

// ToOrder builds the storage record carrying the replacement field values.
// Timestamps are the repository's business: it refreshes order_update_date and
// never touches order_create_date.
func (r UpdateOrderRequest) ToOrder(statuses []string) (*Order, error) {
	price, err := parsePrice(r.OrderPrice)
	if err != nil {
		return nil, err
	}
	delivery, err := parseDate("delivery_date", r.DeliveryDate)
	if err != nil {
		return nil, err
	}
	o := &Order{
		OrderID:           r.OrderID,
		OrderDesc:         r.OrderDesc,
		OrderPrice:        price,
		Weight:            r.Weight,
		Volume:            r.Volume,
		PackageType:       r.PackageType,
		OrderStatus:       r.OrderStatus,
		DeliveryDate:      delivery,
		CustomerID:        r.CustomerID,
		CarrierID:         r.CarrierID,
		OrderDiscount:     r.OrderDiscount,
		OrderAvailability: r.OrderAvailability,
		OrderOrigin:       r.OrderOrigin,
		OrderBarcode:      r.OrderBarcode,
	}
	if err := o.Validate(statuses); err != nil {
		return nil, err
	}
	return o, nil
}

// ToWire renders a stored order for a response. Converting timestamps to their
// string form is the one accepted lossy step of the mapping.
func ToWire(o *Order) WireOrder {
	return WireOrder{
		OrderID:           o.OrderID,
		OrderDesc:         o.OrderDesc,
		OrderPrice:        o.OrderPrice,
		Weight:            o.Weight,
		Volume:            o.Volume,
		PackageType:       o.PackageType,
		OrderStatus:       o.OrderStatus,
		OrderCreateDate:   formatDate(o.OrderCreateDate),
		OrderUpdateDate:   formatDate(o.OrderUpdateDate),
		DeliveryDate:      formatDate(o.DeliveryDate),
		CustomerID:        o.CustomerID,
		CarrierID:         o.CarrierID,
		OrderDiscount:     o.OrderDiscount,
		OrderAvailability: o.OrderAvailability,
		OrderOrigin:       o.OrderOrigin,
		OrderBarcode:      o.OrderBarcode,
	}
}

// ToWireAll renders a collection.
func ToWireAll(orders []Order) []WireOrder {
	out := make([]WireOrder, 0, len(orders))
	for i := range orders {
		out = append(out, ToWire(&orders[i]))
	}
	return out
}

// parsePrice parses the string-typed price with decimal arithmetic so values
// like "999.99" survive exactly through validation.
func parsePrice(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: order_price %q is not a number", ErrInvalid, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: order_price must be non-negative", ErrInvalid)
	}
	return d.InexactFloat64(), nil
}

func parseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q is not an RFC3339 timestamp", ErrInvalid, field, s)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}
