package internal

// ShowtimeRecord is one venue + showtime pair pulled out of a buy-tickets page.
type ShowtimeRecord struct {
	VenueName  string     `json:"venueName"`
	VenueCode  string     `json:"venueCode"`
	Time       string     `json:"time"`
	SessionID  string     `json:"sessionId"`
	Categories []Category `json:"categories"`
}

type Category struct {
	SeatType string  `json:"seatType"`
	Price    float64 `json:"price"`
}

// Venue groups the shows of one venue for the venue-details payload.
type Venue struct {
	VenueName string `json:"venueName"`
	VenueCode string `json:"venueCode"`
	Shows     []Show `json:"shows"`
}

type Show struct {
	Time       string     `json:"time"`
	SessionID  string     `json:"sessionId"`
	Categories []Category `json:"categories"`
}

type VenueDetails struct {
	MovieID string  `json:"movieId"`
	Venues  []Venue `json:"venues"`
}

type Movie struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Overview string `json:"overview,omitempty"`
	Links    []Link `json:"links,omitempty"`
}

type Link struct {
	Href    string `json:"href"`
	Display string `json:"display"`
}

type MovieList struct {
	Movies []Movie `json:"movies"`
}

// Resolution is the identifier pair the resolver picked for a venue + time query.
type Resolution struct {
	VenueName string  `json:"venueName"`
	VenueCode string  `json:"venueCode"`
	SessionID string  `json:"sessionId"`
	Time      string  `json:"time"`
	Score     float64 `json:"score"`
}

// ResolvedBooking carries everything needed to build a seat-layout link.
type ResolvedBooking struct {
	MovieID   string `json:"movieId"`
	VenueCode string `json:"venueCode"`
	SessionID string `json:"sessionId"`
	Date      string `json:"date"`
}

type BookingLink struct {
	URL *string `json:"url"`
}

// Page is the raw result of fetching a URL through the fetch boundary.
type Page struct {
	URL        string
	StatusCode int
	Body       string
}
