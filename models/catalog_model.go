package models

// Seva is a bookable temple service with a fixed schedule and cost. The
// catalog is static data; Cost keeps the display string ("₹1,750",
// "Contact Office") exactly as published.
type Seva struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Cost        string `json:"cost"`
	Duration    string `json:"duration"`
	Category    string `json:"category"`
}

// Hall is a bookable venue from the static catalog.
type Hall struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Capacity    string   `json:"capacity"`
	Cost        string   `json:"cost"`
	Features    []string `json:"features"`
	Category    string   `json:"category"`
}
