package region

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const fetchTimeout = 10 * time.Second

// FetchFromURL retrieves region multipliers from an HTTP source. JSON
// bodies are parsed directly; anything else is treated as an HTML page
// carrying a two-column table of region name and multiplier (the usual
// shape of published country-risk tables).
func FetchFromURL(ctx context.Context, url string) (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, text/html")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("region source returned status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") || strings.HasPrefix(trimmed, "{") {
		return parseMultipliers(trimmed)
	}

	return parseHTMLTable(trimmed)
}

// parseHTMLTable extracts region -> multiplier pairs from the first two
// cells of every table row. Header rows and rows without a parseable
// number are skipped.
func parseHTMLTable(html string) (map[string]float64, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse region HTML: %w", err)
	}

	multipliers := make(map[string]float64)
	doc.Find("table tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		name := strings.TrimSpace(cells.Eq(0).Text())
		multText := strings.TrimSpace(cells.Eq(1).Text())
		if name == "" {
			return
		}
		mult, err := strconv.ParseFloat(multText, 64)
		if err != nil {
			return
		}
		multipliers[name] = mult
	})

	if len(multipliers) == 0 {
		return nil, fmt.Errorf("no region rows found in HTML table")
	}

	return multipliers, nil
}
