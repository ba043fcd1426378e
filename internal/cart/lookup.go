package cart

// QuantityOf returns the quantity of productID in lines, or 0 when absent.
func QuantityOf(lines []Line, productID string) int {
	for _, l := range lines {
		if l.Product.ID == productID {
			return l.Quantity
		}
	}
	return 0
}
