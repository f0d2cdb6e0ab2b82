package retrieval

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"lexbot/config"
	"lexbot/sources"
	"lexbot/types"

	"github.com/PuerkitoBio/goquery"
)

// searchSite runs one search against one configured site and normalizes the
// matching elements into SearchResults. At most MaxResultsPerSite elements
// are considered; elements without an href are skipped, and titles containing
// "search" are dropped as navigation artifacts.
func (r *Retriever) searchSite(ctx context.Context, site sources.SiteConfig, query string) ([]types.SearchResult, error) {
	searchURL := fmt.Sprintf(site.SearchURL, url.QueryEscape(query))

	resp, err := r.client.R().SetContext(ctx).Get(searchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", site.Key, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("HTTP error %d from %s", resp.StatusCode(), site.Key)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", site.Key, err)
	}

	base, err := url.Parse(site.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL for %s: %w", site.Key, err)
	}

	var results []types.SearchResult
	doc.Find(site.ContentSelector).EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= config.MaxResultsPerSite {
			return false
		}

		title := strings.TrimSpace(s.Text())
		href, ok := s.Attr("href")
		if !ok || title == "" {
			return true
		}
		if strings.Contains(strings.ToLower(title), "search") {
			return true
		}

		link := href
		if ref, err := url.Parse(href); err == nil {
			link = base.ResolveReference(ref).String()
		}

		results = append(results, types.SearchResult{
			Site:    site.Key,
			Title:   title,
			URL:     link,
			Snippet: title,
		})
		return true
	})

	return results, nil
}
