package generator

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"
)

// ReadPublishedSheet scrapes the sheet's "publish to web" HTML page into a
// raw string grid. This avoids service-account credentials entirely: the
// published page is plain HTML with one <table> row per sheet row.
func ReadPublishedSheet(url string) ([][]string, error) {
	var rows [][]string
	var scrapeErr error

	c := colly.NewCollector()
	c.UserAgent = "class-timetable-generator/1.0 (https://github.com/Muneer320/Class-Timetable)"

	c.OnHTML("table tbody tr", func(e *colly.HTMLElement) {
		var cells []string
		e.DOM.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, cellText(td))
		})
		rows = append(rows, cells)
	})

	c.OnError(func(_ *colly.Response, err error) {
		scrapeErr = err
	})

	if err := c.Visit(url); err != nil {
		return nil, fmt.Errorf("failed to fetch published sheet %s: %w", url, err)
	}
	if scrapeErr != nil {
		return nil, fmt.Errorf("failed to fetch published sheet %s: %w", url, scrapeErr)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no table rows found at %s", url)
	}

	return rows, nil
}

// cellText extracts a cell's text with <br> line breaks preserved, since
// class cells stack course/instructor/room on separate lines.
func cellText(td *goquery.Selection) string {
	td.Find("br").ReplaceWithHtml("\n")
	return strings.TrimSpace(td.Text())
}
