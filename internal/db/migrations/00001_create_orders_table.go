package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(UpOrdersTable, DownOrdersTable)
}

func UpOrdersTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS orders
(
    order_id           TEXT PRIMARY KEY,
    order_desc         VARCHAR(100) NOT NULL DEFAULT '',
    order_price        DOUBLE PRECISION NOT NULL DEFAULT 0,
    weight             DOUBLE PRECISION NOT NULL DEFAULT 0,
    volume             DOUBLE PRECISION NOT NULL DEFAULT 0,
    package_type       VARCHAR(16) NOT NULL DEFAULT '',
    order_status       VARCHAR(32) NOT NULL DEFAULT '',
    order_create_date  TIMESTAMPTZ NOT NULL,
    order_update_date  TIMESTAMPTZ NOT NULL,
    delivery_date      TIMESTAMPTZ NOT NULL DEFAULT '0001-01-01T00:00:00Z',
    customer_id        VARCHAR(12) NOT NULL,
    carrier_id         TEXT NOT NULL,
    order_discount     DOUBLE PRECISION NOT NULL DEFAULT 0,
    order_availability BOOLEAN NOT NULL DEFAULT false,
    order_origin       TEXT NOT NULL DEFAULT '',
    order_barcode      TEXT NOT NULL UNIQUE,
    INDEX orders_customer_id_idx (customer_id, order_create_date DESC),
    INDEX orders_create_date_idx (order_create_date DESC)
);`)
	return err
}

func DownOrdersTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE orders;")
	return err
}
