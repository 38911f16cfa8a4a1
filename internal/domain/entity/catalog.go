package entity

// Category groups products. Names are unique.
type Category struct {
	ID          uint64
	Name        string
	Description string
}

// Brand is a product manufacturer. Names are unique regardless of case.
type Brand struct {
	ID   uint64
	Name string
}
