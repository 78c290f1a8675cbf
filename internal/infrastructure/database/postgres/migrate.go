package postgres

import "github.com/jmoiron/sqlx"

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id BIGSERIAL PRIMARY KEY,
	external_id VARCHAR(26) NOT NULL UNIQUE,
	name VARCHAR(255) NOT NULL,
	description VARCHAR(1000) NOT NULL DEFAULT '',
	price NUMERIC(12,2) NOT NULL DEFAULT 0,
	quantity BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
	category VARCHAR(255) NOT NULL,
	photo_url VARCHAR(255),
	created_at BIGINT NOT NULL,
	updated_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_products_category ON products (category);
`

// Migrate applies the products schema. Statements are idempotent so it is
// safe to run on every startup.
func Migrate(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
