package content

import (
	"context"
	"fmt"
	"strings"

	"oxywell/models"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Column layout of the guides sheet. The first row is a header and is
// skipped.
const (
	colSlug = iota
	colTitle
	colSummary
	colBody
	colCategory
	colHeroImage
	colTags
	colPublishedAt
	guideColumns
)

// SheetsGuideSource reads guide articles from a Google Sheets spreadsheet,
// one article per row. Editors maintain the sheet; the service rebuilds
// articles on every fetch.
type SheetsGuideSource struct {
	svc           *sheets.Service
	spreadsheetID string
	readRange     string
}

// NewSheetsGuideSource builds a guide source for the given spreadsheet. The
// API key must have the Sheets API enabled.
func NewSheetsGuideSource(ctx context.Context, apiKey, spreadsheetID, readRange string) (*SheetsGuideSource, error) {
	svc, err := sheets.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}
	if readRange == "" {
		readRange = "Guides!A:H"
	}
	return &SheetsGuideSource{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}, nil
}

// FetchGuides reads the sheet and maps rows to articles. Rows missing a slug
// or title are skipped rather than failing the whole fetch.
func (s *SheetsGuideSource) FetchGuides(ctx context.Context) ([]models.GuideArticle, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read guides sheet: %w", err)
	}

	var guides []models.GuideArticle
	for i, row := range resp.Values {
		if i == 0 {
			continue // header
		}
		guide := guideFromRow(row)
		if guide.Slug == "" || guide.Title == "" {
			continue
		}
		guides = append(guides, guide)
	}
	return guides, nil
}

func guideFromRow(row []interface{}) models.GuideArticle {
	cell := func(i int) string {
		if i >= len(row) {
			return ""
		}
		s, _ := row[i].(string)
		return strings.TrimSpace(s)
	}

	var tags []string
	for _, t := range strings.Split(cell(colTags), ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	return models.GuideArticle{
		Slug:        cell(colSlug),
		Title:       cell(colTitle),
		Summary:     cell(colSummary),
		Body:        cell(colBody),
		Category:    cell(colCategory),
		HeroImage:   cell(colHeroImage),
		Tags:        tags,
		PublishedAt: cell(colPublishedAt),
	}
}
