package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sbfarley/gauchowar/internal/stats"
)

// Row is one player's row from the season stats page.
type Row struct {
	Name    string
	ID      string
	Jersey  string
	BioURL  string
	Section stats.Section
	Cells   map[string]string // data-label → trimmed cell text
}

// ParseRoster extracts player rows from a season stats page. Relative bio
// links are resolved against siteURL (scheme + host, no trailing slash).
func ParseRoster(r io.Reader, siteURL string) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	rows := make([]Row, 0)

	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		class, _ := tr.Attr("class")
		if !strings.Contains(class, "stat_meets_min") && !strings.Contains(class, "stat_doesnt_meet_min") {
			return
		}

		row := Row{Cells: make(map[string]string)}

		row.Jersey = strings.TrimSpace(tr.Find("td.text-center.hide-on-medium-down").First().Text())

		nameCell := tr.Find("th.text-no-wrap").First()
		link := nameCell.Find("a.hide-on-medium-down").First()
		row.Name = strings.TrimSpace(link.Text())
		row.ID, _ = link.Attr("data-player-id")

		if bio := tr.Find(`a[href*="/roster/"]`).First(); bio.Length() > 0 {
			href, _ := bio.Attr("href")
			row.BioURL = resolveURL(siteURL, href)
		}

		tr.Find("td[data-label]").Each(func(_ int, td *goquery.Selection) {
			label, _ := td.Attr("data-label")
			row.Cells[label] = strings.TrimSpace(td.Text())
		})

		// Rows carrying an ERA column come from the pitching table.
		if _, ok := row.Cells["ERA"]; ok {
			row.Section = stats.Pitching
		} else {
			row.Section = stats.Batting
		}

		rows = append(rows, row)
	})

	return rows, nil
}

func resolveURL(siteURL, href string) string {
	if href == "" || strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return strings.TrimSuffix(siteURL, "/") + href
}

// Bio holds the fields extracted from a player bio page.
type Bio struct {
	RawPosition string
	Hometown    string
	State       string
}

// ParseBio extracts position and hometown from a player bio page. Hometown
// values are "City, State"; the state is everything after the first comma.
// Missing fields stay empty; the caller applies the enrichment defaults.
func ParseBio(r io.Reader) (Bio, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Bio{}, fmt.Errorf("parsing HTML: %w", err)
	}

	var bio Bio

	doc.Find("span.sidearm-roster-player-field-label").Each(func(_ int, label *goquery.Selection) {
		value := strings.TrimSpace(label.NextFiltered("span").Text())
		if value == "" {
			value = strings.TrimSpace(label.Next().Text())
		}

		switch strings.TrimSpace(label.Text()) {
		case "Position":
			if bio.RawPosition == "" {
				bio.RawPosition = value
			}
		case "Hometown":
			if bio.Hometown == "" {
				bio.Hometown, bio.State = splitHometown(value)
			}
		}
	})

	if bio.RawPosition == "" {
		bio.RawPosition = strings.TrimSpace(doc.Find(".sidearm-roster-player-position").First().Text())
	}

	return bio, nil
}

// splitHometown splits "City, State" on the first comma. A value without a
// comma is unusable as a location and yields nothing, leaving the enrichment
// defaults to apply.
func splitHometown(location string) (hometown, state string) {
	if i := strings.Index(location, ","); i >= 0 {
		return strings.TrimSpace(location[:i]), strings.TrimSpace(location[i+1:])
	}
	return "", ""
}
