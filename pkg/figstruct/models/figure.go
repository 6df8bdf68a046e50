package models

// FigureRecord is the flat description of one figure.
type FigureRecord struct {
	// ID is the figure manager number.
	ID int `json:"id"`
	// Title is the figure suptitle, empty if none.
	Title string `json:"title"`
	// Axes lists the axes in declaration order.
	Axes []AxesRecord `json:"axes"`
}
