package domain

type Product struct {
	ID          int64   `db:"id"`
	ExternalID  string  `db:"external_id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Quantity    int64   `db:"quantity"`
	Category    string  `db:"category"`
	PhotoURL    *string `db:"photo_url"`
	CreatedAt   int64   `db:"created_at"`
	UpdatedAt   int64   `db:"updated_at"`
}
