package product

type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Stock       int64
	Image       *string
	Status      string
}

const StatusAvailable = "disponible"
