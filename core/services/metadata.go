// ABOUTME: Banner metadata extraction service for the reader's article header
// ABOUTME: Uses colly to scrape Open Graph tags and head fallbacks from article pages

package services

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"

	"wikireader-api/core/interfaces"
	htmlutil "wikireader-api/pkg/utils/html"
)

const (
	collyUserAgent  = "WikiReaderAPI/1.0 (reader view banner metadata)"
	metadataTimeout = 10 * time.Second
	metadataTTL     = 24 * time.Hour
)

// MetadataService scrapes banner metadata (title, description, lead image,
// favicon) from article pages. Results are memoized in the ancillary cache;
// the article content itself is never cached.
type MetadataService struct {
	deps interfaces.Dependencies
}

// NewMetadataService creates a new metadata service
func NewMetadataService(deps interfaces.Dependencies) *MetadataService {
	return &MetadataService{
		deps: deps,
	}
}

// ExtractMetadata extracts banner metadata from a single article URL
func (s *MetadataService) ExtractMetadata(ctx context.Context, targetURL string) (*interfaces.MetadataResult, error) {
	if s.deps.Cache != nil {
		cacheKey := "metadata:" + targetURL
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var result interfaces.MetadataResult
			if err := json.Unmarshal(data, &result); err == nil {
				return &result, nil
			}
		}
	}

	result := s.extractFromURL(targetURL)

	if s.deps.Cache != nil && result != nil {
		cacheKey := "metadata:" + targetURL
		if data, err := json.Marshal(result); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, metadataTTL)
		}
	}

	return result, nil
}

// extractFromURL performs the actual metadata scrape
func (s *MetadataService) extractFromURL(targetURL string) *interfaces.MetadataResult {
	if targetURL == "" || targetURL == "about:blank" {
		return nil
	}

	c := colly.NewCollector(
		colly.UserAgent(collyUserAgent),
		colly.MaxBodySize(5*1024*1024),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(metadataTimeout)

	result := &interfaces.MetadataResult{}

	// Open Graph tags carry Wikipedia's canonical article metadata
	c.OnHTML("meta", func(e *colly.HTMLElement) {
		content := e.Attr("content")
		if content == "" {
			return
		}
		switch e.Attr("property") {
		case "og:title":
			if result.Title == "" {
				result.Title = content
			}
		case "og:description":
			if result.Description == "" {
				result.Description = htmlutil.StripHTML(content)
			}
		case "og:image":
			if result.Thumbnail == "" {
				result.Thumbnail = content
			}
		}
	})

	// Head fallbacks when Open Graph tags are absent
	c.OnHTML("head", func(e *colly.HTMLElement) {
		if result.Title == "" {
			if title := e.DOM.Find("title").First().Text(); title != "" {
				result.Title = strings.TrimSuffix(strings.TrimSpace(title), " - Wikipedia")
			}
		}

		if result.Description == "" {
			e.DOM.Find("meta[name='description']").Each(func(_ int, sel *goquery.Selection) {
				if content, exists := sel.Attr("content"); exists && content != "" {
					result.Description = htmlutil.StripHTML(content)
				}
			})
		}

		e.DOM.Find("link[rel]").Each(func(_ int, sel *goquery.Selection) {
			rel := sel.AttrOr("rel", "")
			href := sel.AttrOr("href", "")
			for _, rv := range strings.Fields(rel) {
				if (rv == "icon" || rv == "shortcut" || rv == "apple-touch-icon") &&
					href != "" && result.Favicon == "" {
					result.Favicon = e.Request.AbsoluteURL(href)
				}
			}
		})
	})

	c.OnRequest(func(r *colly.Request) {
		if parsedURL, err := url.Parse(r.URL.String()); err == nil {
			result.Domain = parsedURL.Host
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		s.deps.Logger.Debug("Error visiting URL for metadata", map[string]interface{}{
			"url":    targetURL,
			"error":  err.Error(),
			"status": r.StatusCode,
		})
	})

	if err := c.Visit(targetURL); err != nil {
		s.deps.Logger.Debug("Failed to visit URL for metadata extraction", map[string]interface{}{
			"url":   targetURL,
			"error": err.Error(),
		})
		return result
	}

	return result
}
