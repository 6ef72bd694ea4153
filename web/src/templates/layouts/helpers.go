package layouts

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title, brand string) string {
	switch {
	case title == "":
		return brand
	case brand == "":
		return title
	default:
		return title + " - " + brand
	}
}
