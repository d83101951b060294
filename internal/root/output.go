package root

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/drewfead/bms-booker/internal"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

// writeOutput renders v in the --output-format to --output, or to the command's writer.
func writeOutput(cmd *cli.Command, v any) (err error) {
	var w io.Writer = cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	if path := cmd.String("output"); path != "" {
		var f *os.File
		f, err = os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	switch format := strings.ToLower(cmd.String("output-format")); format {
	case formatJSON, "":
		return writeJSON(w, v)
	case formatTable:
		if renderTable(w, v) {
			return nil
		}
		return writeJSON(w, v)
	default:
		return fmt.Errorf("invalid --output-format %q (valid: json, table)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	var raw []byte
	switch x := v.(type) {
	case json.RawMessage:
		raw = x
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		raw = b
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

// renderTable prints the shapes that read well as tables and reports whether it did.
func renderTable(w io.Writer, v any) bool {
	rowConfigAutoMerge := table.RowConfig{AutoMerge: true}
	t := table.NewWriter()
	t.SetOutputMirror(w)

	switch x := v.(type) {
	case internal.MovieList:
		t.AppendHeader(table.Row{"ID", "Name", "Overview"})
		for _, m := range x.Movies {
			t.AppendRow(table.Row{m.ID, m.Name, m.Overview})
		}
		t.SetColumnConfigs([]table.ColumnConfig{{Number: 3, WidthMax: 60}})
	case internal.VenueDetails:
		t.SetTitle("Movie " + x.MovieID)
		t.AppendHeader(table.Row{"Venue", "Code", "Time", "Session", "Prices"}, rowConfigAutoMerge)
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, AutoMerge: true, WidthMax: 30},
			{Number: 2, AutoMerge: true},
		})
		for _, venue := range x.Venues {
			rows := make([]table.Row, 0, len(venue.Shows))
			for _, show := range venue.Shows {
				rows = append(rows, table.Row{venue.VenueName, venue.VenueCode, show.Time, show.SessionID, prices(show.Categories)})
			}
			t.AppendRows(rows, rowConfigAutoMerge)
			t.AppendSeparator()
		}
	case extractResult:
		t.AppendHeader(table.Row{"Venue", "Code", "Time", "Session", "Prices"}, rowConfigAutoMerge)
		t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, AutoMerge: true, WidthMax: 30}})
		for _, r := range x.Records {
			t.AppendRow(table.Row{r.VenueName, r.VenueCode, r.Time, r.SessionID, prices(r.Categories)}, rowConfigAutoMerge)
		}
		t.AppendFooter(table.Row{"", "", "", "skipped", fmt.Sprintf("%d venues, %d shows", x.Stats.SkippedVenues, x.Stats.SkippedShowtimes)})
	case internal.BookingLink:
		link := "no matching show"
		if x.URL != nil {
			link = *x.URL
		}
		t.AppendRow(table.Row{"Seat layout", link})
	default:
		return false
	}
	t.Render()
	return true
}

func prices(categories []internal.Category) string {
	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		parts = append(parts, c.SeatType+" "+strconv.FormatFloat(c.Price, 'f', -1, 64))
	}
	return strings.Join(parts, ", ")
}
