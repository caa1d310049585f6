package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mager/talentfinder/history"
	"github.com/mager/talentfinder/spotify"
	"github.com/mager/talentfinder/talent"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func renderTracks(out io.Writer, tracks []talent.TrackSummary) error {
	table := tablewriter.NewWriter(out)
	table.Header([]string{"#", "Track", "Artists"})
	for i, t := range tracks {
		if err := table.Append([]string{strconv.Itoa(i + 1), t.Name, spotify.ConcatArtists(t.Artists)}); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderReport(out io.Writer, r talent.Report) error {
	p := r.Prediction
	genres := strings.Join(r.Genres, ", ")
	if genres == "" {
		genres = "-"
	}

	table := tablewriter.NewWriter(out)
	table.Header([]string{"Metric", "Value"})
	rows := [][]string{
		{"Track", r.Track.Name},
		{"Artist", r.Track.ArtistName},
		{"Genres", genres},
		{"Popularity score", printer.Sprintf("%d", int(math.Round(p.Score)))},
		{"Monthly listeners", printer.Sprintf("%.0f", p.Revenue.MonthlyListeners)},
		{"Monthly streams", printer.Sprintf("%.0f", p.Revenue.MonthlyStreams)},
		{"Monthly revenue", printer.Sprintf("$%.2f", p.Revenue.MonthlyRevenue)},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintln(out, r.Recommendation)
	if r.Track.PreviewURL != "" {
		fmt.Fprintf(out, "Preview: %s\n", r.Track.PreviewURL)
	} else {
		fmt.Fprintln(out, "No audio preview available for this track.")
	}
	return nil
}

func renderHistory(out io.Writer, entries []history.Entry) error {
	table := tablewriter.NewWriter(out)
	table.Header([]string{"When", "Track", "Artist", "Score", "Monthly revenue"})
	for _, e := range entries {
		row := []string{
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.TrackName,
			e.ArtistName,
			printer.Sprintf("%d", int(math.Round(e.Score))),
			printer.Sprintf("$%.2f", e.MonthlyRevenue),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
