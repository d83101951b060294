// Package resolve matches a typed venue name and show time against extracted records.
package resolve

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/drewfead/bms-booker/internal"
)

// DefaultCutoff is the minimum venue similarity ratio accepted by Resolve.
const DefaultCutoff = 0.6

var (
	// ICU-formatted clocks put U+202F or U+00A0 before the meridiem.
	meridiemRE    = regexp.MustCompile(`[\s\x{85}\p{Z}]*(am|pm)$`)
	leadingZeroRE = regexp.MustCompile(`^0(\d)`)
)

// NormalizeVenue lower-cases and trims a venue name.
func NormalizeVenue(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeTime lower-cases and trims t, drops a trailing am/pm and a single leading
// zero on the hour, so "06:55 PM" and "6:55" both become "6:55".
func NormalizeTime(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	t = meridiemRE.ReplaceAllString(t, "")
	return leadingZeroRE.ReplaceAllString(t, "$1")
}

func meridiem(t string) string {
	m := meridiemRE.FindStringSubmatch(strings.ToLower(strings.TrimSpace(t)))
	if m == nil {
		return ""
	}
	return m[1]
}

type Option func(*options)

type options struct {
	cutoff float64
}

// WithCutoff overrides DefaultCutoff. Values outside [0, 1] are ignored; 0 accepts the
// closest venue whatever its score.
func WithCutoff(cutoff float64) Option {
	return func(o *options) {
		if cutoff >= 0 && cutoff <= 1 {
			o.cutoff = cutoff
		}
	}
}

// Resolve picks the single best venue for venueQuery among the records, then the first
// record at that venue whose normalized time equals timeQuery's. When both sides carry
// an explicit am/pm that disagree the record is passed over. ok is false when no venue
// clears the cutoff or no show at the matched venue has the requested time.
func Resolve(records []internal.ShowtimeRecord, venueQuery, timeQuery string, opts ...Option) (internal.Resolution, bool) {
	o := options{cutoff: DefaultCutoff}
	for _, opt := range opts {
		opt(&o)
	}

	seen := make(map[string]bool)
	var names []string
	for _, r := range records {
		n := NormalizeVenue(r.VenueName)
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}

	query := NormalizeVenue(venueQuery)
	venue, score, ok := CloseMatch(query, names, o.cutoff)
	if !ok {
		slog.Debug("resolve: no venue above cutoff", "query", query, "cutoff", o.cutoff, "venues", len(names))
		return internal.Resolution{}, false
	}

	wantTime := NormalizeTime(timeQuery)
	wantMeridiem := meridiem(timeQuery)
	var (
		hit     internal.Resolution
		found   bool
		matches int
	)
	for _, r := range records {
		if NormalizeVenue(r.VenueName) != venue || NormalizeTime(r.Time) != wantTime {
			continue
		}
		if m := meridiem(r.Time); wantMeridiem != "" && m != "" && m != wantMeridiem {
			continue
		}
		matches++
		if !found {
			hit = internal.Resolution{
				VenueName: r.VenueName,
				VenueCode: r.VenueCode,
				SessionID: r.SessionID,
				Time:      r.Time,
				Score:     score,
			}
			found = true
		}
	}
	if !found {
		slog.Debug("resolve: venue matched but no show at time", "venue", venue, "time", wantTime)
		return internal.Resolution{}, false
	}
	if matches > 1 {
		slog.Warn("resolve: several shows share the requested time; using the first",
			"venue", venue, "time", wantTime, "matches", matches)
	}
	return hit, true
}
