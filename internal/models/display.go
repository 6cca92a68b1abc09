package models

// StatCard is one summary tile on the dashboard overview.
type StatCard struct {
	Title   string
	Value   string
	Caption string
	// Accent names the tile's icon color class (e.g. "text-green-500").
	Accent string
}

// Sale is one row of the Recent Sales list.
type Sale struct {
	Customer string
	Email    string
	Amount   string
}

// Product is one row of the products table.
type Product struct {
	Name   string
	Status string
	Price  string
	Date   string
}

// Transaction is one row of the transactions table.
type Transaction struct {
	Customer string
	Email    string
	Type     string
	Status   string
	Date     string
	Amount   string
}
