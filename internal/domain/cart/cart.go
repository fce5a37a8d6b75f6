package cart

type Item struct {
	ProductID int64
	Quantity  int64
}

type DetailedItem struct {
	Item
	ProductName  string
	ProductPrice float64
	ProductImage *string
}

// Row is one persisted carrito_items row. The schema has no composite
// unique constraint on (id_car, id_objeto), so several rows can exist
// for the same product until a mutating operation consolidates them.
type Row struct {
	ItemID   int64
	Quantity int64
}

// Consolidate merges duplicate rows for one (cart, product) pair into the
// first row, summing quantities. It returns the surviving row and the ids
// of the rows to delete. Callers pass rows ordered by item id.
func Consolidate(rows []Row) (Row, []int64) {
	if len(rows) == 0 {
		return Row{}, nil
	}
	keep := rows[0]
	var drop []int64
	for _, r := range rows[1:] {
		keep.Quantity += r.Quantity
		drop = append(drop, r.ItemID)
	}
	return keep, drop
}
