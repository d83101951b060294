// Package showtimes pulls venue and showtime records out of the page state of a
// buy-tickets page.
package showtimes

import (
	"github.com/drewfead/bms-booker/internal"
)

// Schema locates every field the extractor reads. Venues is walked from the document
// root; the other paths are relative to the node the previous level produced.
type Schema struct {
	Venues     Path
	VenueName  Path
	VenueCode  Path
	Showtimes  Path
	Title      Path
	ShowTime   Path
	SessionID  Path
	Categories Path
	SeatType   Path
	Price      Path
}

// DateParam is the Param name Schema.Venues uses for the show date.
const DateParam = "date"

// BookMyShow is the page-state layout of in.bookmyshow.com buy-tickets pages. It is an
// unversioned contract with the site: when the site changes shape, update this value.
var BookMyShow = Schema{
	Venues: Path{
		Key("showtimesByEvent"), Key("showDates"), Param(DateParam),
		Key("dynamic"), Key("data"), Key("showtimeWidgets"), Each(),
		Where("type", "groupList"), Where("id", "List_1"),
		Key("data"), Each(),
		Where("type", "venueGroup"), Where("id", "Venue_GROUP_1"),
		Key("data"), Each(),
		Where("type", "venue-card"),
	},
	VenueName:  Path{Key("additionalData"), Key("venueName")},
	VenueCode:  Path{Key("additionalData"), Key("venueCode")},
	Showtimes:  Path{Key("showtimes"), Each()},
	Title:      Path{Key("title")},
	ShowTime:   Path{Key("showTime")},
	SessionID:  Path{Key("additionalData"), Key("sessionId")},
	Categories: Path{Key("additionalData"), Key("categories"), Each()},
	SeatType:   Path{Key("priceDesc")},
	Price:      Path{Key("curPrice")},
}

// ExtractStats counts what the extractor saw and what it had to drop.
type ExtractStats struct {
	Venues           int `json:"venues"`
	Showtimes        int `json:"showtimes"`
	SkippedVenues    int `json:"skippedVenues"`
	SkippedShowtimes int `json:"skippedShowtimes"`
}

// Skipped reports whether any venue or showtime was dropped for missing fields.
func (s ExtractStats) Skipped() bool {
	return s.SkippedVenues > 0 || s.SkippedShowtimes > 0
}

// ExtractShowtimes flattens the BookMyShow page state for targetDate into records.
func ExtractShowtimes(doc any, targetDate string) ([]internal.ShowtimeRecord, ExtractStats) {
	return BookMyShow.Extract(doc, targetDate)
}

// Extract never fails: absent or mistyped branches contribute no records. A record is
// emitted only when venue name, venue code, time and session id are all present.
// Venue order and showtime order within a venue follow the document.
func (s Schema) Extract(doc any, targetDate string) ([]internal.ShowtimeRecord, ExtractStats) {
	var (
		records []internal.ShowtimeRecord
		stats   ExtractStats
	)
	for _, venue := range s.Venues.Walk(doc, map[string]string{DateParam: targetDate}) {
		stats.Venues++
		shows := s.Showtimes.Walk(venue, nil)
		stats.Showtimes += len(shows)

		venueName, okName := stringAt(s.VenueName, venue)
		venueCode, okCode := stringAt(s.VenueCode, venue)
		if !okName || !okCode {
			stats.SkippedVenues++
			stats.SkippedShowtimes += len(shows)
			continue
		}

		for _, show := range shows {
			showTime, ok := stringAt(s.Title, show)
			if !ok {
				showTime, ok = stringAt(s.ShowTime, show)
			}
			sessionID, okSession := stringAt(s.SessionID, show)
			if !ok || !okSession {
				stats.SkippedShowtimes++
				continue
			}
			records = append(records, internal.ShowtimeRecord{
				VenueName:  venueName,
				VenueCode:  venueCode,
				Time:       showTime,
				SessionID:  sessionID,
				Categories: s.categories(show),
			})
		}
	}
	return records, stats
}

func (s Schema) categories(show any) []internal.Category {
	nodes := s.Categories.Walk(show, nil)
	out := make([]internal.Category, 0, len(nodes))
	for _, node := range nodes {
		seatType, _ := stringAt(s.SeatType, node)
		var price float64
		if v, ok := s.Price.First(node, nil); ok {
			price = scalarFloat(v)
		}
		out = append(out, internal.Category{SeatType: seatType, Price: price})
	}
	return out
}

func stringAt(p Path, node any) (string, bool) {
	v, ok := p.First(node, nil)
	if !ok {
		return "", false
	}
	return scalarString(v)
}

// GroupByVenue folds records back into per-venue show lists, keeping first-seen venue order.
func GroupByVenue(records []internal.ShowtimeRecord) []internal.Venue {
	venues := make([]internal.Venue, 0)
	index := make(map[[2]string]int)
	for _, r := range records {
		key := [2]string{r.VenueCode, r.VenueName}
		i, ok := index[key]
		if !ok {
			i = len(venues)
			index[key] = i
			venues = append(venues, internal.Venue{
				VenueName: r.VenueName,
				VenueCode: r.VenueCode,
				Shows:     []internal.Show{},
			})
		}
		venues[i].Shows = append(venues[i].Shows, internal.Show{
			Time:       r.Time,
			SessionID:  r.SessionID,
			Categories: r.Categories,
		})
	}
	return venues
}
