package postgres

import (
	"context"
	"fmt"
)

// schema DDL idempotente del sistema. Se aplica en orden dentro de una transacción.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS franchises (
		id             BIGSERIAL PRIMARY KEY,
		name           TEXT        NOT NULL,
		address        TEXT        NOT NULL,
		contact_number TEXT        NOT NULL,
		email          TEXT        NOT NULL,
		is_active      BOOLEAN     NOT NULL DEFAULT TRUE,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		first_name    TEXT        NOT NULL,
		last_name     TEXT        NOT NULL,
		username      TEXT        NOT NULL UNIQUE,
		password_hash TEXT        NOT NULL,
		email         TEXT        NOT NULL UNIQUE,
		role          TEXT        NOT NULL DEFAULT 'staff' CHECK (role IN ('admin', 'manager', 'staff')),
		franchise_id  BIGINT      REFERENCES franchises(id),
		is_active     BOOLEAN     NOT NULL DEFAULT TRUE,
		last_login    TIMESTAMPTZ,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id             BIGSERIAL PRIMARY KEY,
		franchise_id   BIGINT      NOT NULL REFERENCES franchises(id),
		first_name     TEXT        NOT NULL,
		last_name      TEXT        NOT NULL,
		address        TEXT        NOT NULL,
		contact_number TEXT        NOT NULL,
		email          TEXT,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_franchise ON customers (franchise_id)`,
	`CREATE TABLE IF NOT EXISTS products (
		pr_code               BIGINT PRIMARY KEY,
		category              TEXT          NOT NULL,
		manufacturer          TEXT          NOT NULL,
		name                  TEXT          NOT NULL,
		packing               TEXT          NOT NULL,
		mrp                   NUMERIC(14,2) NOT NULL CHECK (mrp >= 0),
		case_pack             INTEGER       NOT NULL DEFAULT 1,
		composition           TEXT,
		gst                   NUMERIC(5,2)  NOT NULL DEFAULT 0,
		discount              NUMERIC(5,2)  NOT NULL DEFAULT 0,
		expiry_date           DATE          NOT NULL,
		prescription_required BOOLEAN       NOT NULL DEFAULT FALSE,
		supplier              TEXT          NOT NULL,
		low_stock_threshold   INTEGER       NOT NULL DEFAULT 10 CHECK (low_stock_threshold >= 0),
		created_at            TIMESTAMPTZ   NOT NULL DEFAULT now(),
		updated_at            TIMESTAMPTZ   NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id                BIGSERIAL PRIMARY KEY,
		order_number      TEXT          NOT NULL UNIQUE,
		franchise_id      BIGINT        NOT NULL REFERENCES franchises(id),
		customer_id       BIGINT        NOT NULL REFERENCES customers(id),
		status            TEXT          NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'processing', 'shipped', 'completed', 'cancelled')),
		total_amount      NUMERIC(14,2) NOT NULL,
		discount_amount   NUMERIC(14,2) NOT NULL DEFAULT 0,
		tax_amount        NUMERIC(14,2) NOT NULL DEFAULT 0,
		final_amount      NUMERIC(14,2) NOT NULL,
		bill_data         JSONB,
		bill_generated_at TIMESTAMPTZ,
		notes             TEXT,
		idempotency_key   TEXT,
		created_by        BIGINT        NOT NULL REFERENCES users(id),
		created_at        TIMESTAMPTZ   NOT NULL DEFAULT now(),
		updated_at        TIMESTAMPTZ   NOT NULL DEFAULT now(),
		CONSTRAINT uq_orders_idempotency UNIQUE (franchise_id, idempotency_key)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_franchise_created ON orders (franchise_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id           BIGSERIAL PRIMARY KEY,
		order_id     BIGINT        NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id   BIGINT        NOT NULL REFERENCES products(pr_code),
		quantity     INTEGER       NOT NULL CHECK (quantity > 0),
		unit_price   NUMERIC(14,2) NOT NULL,
		discount     NUMERIC(14,2) NOT NULL DEFAULT 0,
		tax_rate     NUMERIC(5,2)  NOT NULL DEFAULT 0,
		tax_amount   NUMERIC(14,2) NOT NULL DEFAULT 0,
		total_amount NUMERIC(14,2) NOT NULL,
		created_at   TIMESTAMPTZ   NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ   NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items (order_id)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		id             BIGSERIAL PRIMARY KEY,
		franchise_id   BIGINT      NOT NULL REFERENCES franchises(id),
		product_id     BIGINT      NOT NULL REFERENCES products(pr_code) ON DELETE CASCADE,
		stock_quantity INTEGER     NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT uq_inventory_franchise_product UNIQUE (franchise_id, product_id),
		CONSTRAINT chk_inventory_stock_non_negative CHECK (stock_quantity >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_movements (
		id                 BIGSERIAL PRIMARY KEY,
		franchise_id       BIGINT      NOT NULL REFERENCES franchises(id),
		product_id         BIGINT      NOT NULL REFERENCES products(pr_code) ON DELETE CASCADE,
		type               TEXT        NOT NULL CHECK (type IN ('SALE', 'ADJUSTMENT', 'RESTOCK')),
		quantity           INTEGER     NOT NULL,
		resulting_quantity INTEGER     NOT NULL,
		order_id           BIGINT      REFERENCES orders(id),
		created_by         BIGINT      NOT NULL REFERENCES users(id),
		created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_movements_lookup ON inventory_movements (franchise_id, product_id, created_at DESC)`,
}

// Migrate aplica el esquema. defaultLowStockThreshold pasa a ser el DEFAULT de products.low_stock_threshold.
func Migrate(ctx context.Context, q TxBeginner, defaultLowStockThreshold int) error {
	tx, err := q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i, stmt := range schema {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	threshold := fmt.Sprintf(
		`ALTER TABLE products ALTER COLUMN low_stock_threshold SET DEFAULT %d`, defaultLowStockThreshold)
	if _, err := tx.Exec(ctx, threshold); err != nil {
		return fmt.Errorf("migration threshold default: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}
