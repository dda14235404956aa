package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/qyinm/modeldeck/types"
)

// ParseHTML parses a saved catalog page and returns its records in document order.
// Each model is an <article data-model-id="..."> card; fields are read from
// descendants tagged with data-field, e.g.
//
//	<article data-model-id="sora-2" data-category="Video" data-released="2025-09-30">
//	  <h3 data-field="name">Sora 2</h3>
//	  <span data-field="developer">OpenAI</span>
//	  <ul data-field="features"><li>Synchronized audio</li></ul>
//	  <a data-field="link" href="https://openai.com/sora">Visit Website</a>
//	</article>
func ParseHTML(reader io.Reader) ([]types.ModelRecord, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	var records []types.ModelRecord
	var parseErr error

	doc.Find("article[data-model-id]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		id, _ := s.Attr("data-model-id")
		category, _ := s.Attr("data-category")
		released, _ := s.Attr("data-released")

		raw := rawRecord{
			ID:          id,
			Name:        fieldText(s, "name"),
			Developer:   fieldText(s, "developer"),
			ReleaseDate: released,
			Category:    category,
			Price:       fieldText(s, "price"),
			APIPrice:    fieldText(s, "api-price"),
			Description: fieldText(s, "description"),
			Features:    fieldList(s, "features"),
			Tags:        fieldList(s, "tags"),
			Badge:       fieldText(s, "badge"),
		}
		if raw.ReleaseDate == "" {
			if t, ok := s.Find("time[datetime]").First().Attr("datetime"); ok {
				raw.ReleaseDate = t
			}
		}
		if href, ok := s.Find("a[data-field='link']").First().Attr("href"); ok {
			raw.Link = href
		}

		rec, err := raw.toRecord()
		if err != nil {
			parseErr = err
			return false
		}
		records = append(records, rec)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return records, nil
}

func fieldText(s *goquery.Selection, name string) string {
	return strings.TrimSpace(s.Find(fmt.Sprintf("[data-field='%s']", name)).First().Text())
}

// fieldList collects the non-empty <li> texts of a list field, keeping order.
func fieldList(s *goquery.Selection, name string) []string {
	var out []string
	s.Find(fmt.Sprintf("[data-field='%s'] li", name)).Each(func(_ int, li *goquery.Selection) {
		v := strings.TrimPrefix(strings.TrimSpace(li.Text()), "#")
		if v != "" {
			out = append(out, v)
		}
	})
	return out
}
