package models

// Product price travels as a string ("10.00") to keep the 2-decimal precision
// out of float territory; the column is NUMERIC(10,2).
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Images      []string `json:"images"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	Featured    bool     `json:"featured"`
}
