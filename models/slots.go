package models

// DateOption is a candidate booking date as presented to the user: a 1-based
// id, the date itself, and a localized weekday label.
type DateOption struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TimeOption is a candidate local wall-clock time (24h "HH:MM") for a chosen
// date.
type TimeOption struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
