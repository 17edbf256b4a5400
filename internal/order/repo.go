package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, o *Order) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	GetByCustomerID(ctx context.Context, customerID string) (*Order, error)
	GetLatest(ctx context.Context) (*Order, error)
	GetAll(ctx context.Context) ([]Order, error)
	Update(ctx context.Context, o *Order) (*Order, error)
	Delete(ctx context.Context, id string) (*Order, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const orderColumns = `
	order_id, order_desc, order_price, weight, volume, package_type,
	order_status, order_create_date, order_update_date, delivery_date,
	customer_id, carrier_id, order_discount, order_availability,
	order_origin, order_barcode`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.OrderID, &o.OrderDesc, &o.OrderPrice, &o.Weight, &o.Volume,
		&o.PackageType, &o.OrderStatus, &o.OrderCreateDate, &o.OrderUpdateDate,
		&o.DeliveryDate, &o.CustomerID, &o.CarrierID, &o.OrderDiscount,
		&o.OrderAvailability, &o.OrderOrigin, &o.OrderBarcode,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PGRepo) Create(ctx context.Context, o *Order) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING `+orderColumns+`
	`, o.OrderID, o.OrderDesc, o.OrderPrice, o.Weight, o.Volume,
		o.PackageType, o.OrderStatus, o.OrderCreateDate, o.OrderUpdateDate,
		o.DeliveryDate, o.CustomerID, o.CarrierID, o.OrderDiscount,
		o.OrderAvailability, o.OrderOrigin, o.OrderBarcode)

	stored, err := scanOrder(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrConflict
		}
		return nil, err
	}
	return stored, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `
		SELECT `+orderColumns+` FROM orders WHERE order_id=$1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}

// GetByCustomerID resolves multiple orders for one customer deterministically:
// the most recently created wins, ties broken on order_id.
func (r *PGRepo) GetByCustomerID(ctx context.Context, customerID string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `
		SELECT `+orderColumns+` FROM orders WHERE customer_id=$1
		ORDER BY order_create_date DESC, order_id DESC LIMIT 1
	`, customerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}

// GetLatest returns (nil, nil) on an empty store; "no order yet" is not an error.
func (r *PGRepo) GetLatest(ctx context.Context) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `
		SELECT `+orderColumns+` FROM orders
		ORDER BY order_create_date DESC, order_id DESC LIMIT 1
	`))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return o, err
}

func (r *PGRepo) GetAll(ctx context.Context) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		ORDER BY order_create_date ASC, order_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// Update replaces the mutable fields of an existing order in one statement, so
// the existence check and the write cannot interleave with a concurrent delete.
// order_create_date is never touched; order_update_date is refreshed.
func (r *PGRepo) Update(ctx context.Context, o *Order) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		UPDATE orders SET
			order_desc=$2, order_price=$3, weight=$4, volume=$5,
			package_type=$6, order_status=$7, delivery_date=$8,
			customer_id=$9, carrier_id=$10, order_discount=$11,
			order_availability=$12, order_origin=$13,
			order_update_date=$14
		WHERE order_id=$1
		RETURNING `+orderColumns+`
	`, o.OrderID, o.OrderDesc, o.OrderPrice, o.Weight, o.Volume,
		o.PackageType, o.OrderStatus, o.DeliveryDate,
		o.CustomerID, o.CarrierID, o.OrderDiscount,
		o.OrderAvailability, o.OrderOrigin,
		time.Now().UTC())

	stored, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return stored, err
}

// Delete removes the order and returns its final snapshot.
func (r *PGRepo) Delete(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `
		DELETE FROM orders WHERE order_id=$1
		RETURNING `+orderColumns+`
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}
