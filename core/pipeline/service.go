// ABOUTME: Pipeline orchestrator that turns an article URL into a RenderModel
// ABOUTME: Runs fetch, parse, clean, extract and sanitize with a single failure state

package pipeline

import (
	"context"
	"fmt"
	stdhtml "html"
	"io"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"wikireader-api/core/domain"
	"wikireader-api/core/errors"
	"wikireader-api/core/interfaces"
	"wikireader-api/core/transform"
	"wikireader-api/pkg/featureflags"
)

// Options configures a pipeline service.
type Options struct {
	// Origin is the absolute origin relative references resolve against
	Origin string
}

// DefaultOptions returns the standard Wikipedia configuration.
func DefaultOptions() Options {
	return Options{
		Origin: "https://en.wikipedia.org",
	}
}

// Service runs the article transformation pipeline. Each invocation owns its
// fetched document exclusively; nothing is shared or cached across runs.
type Service struct {
	deps      interfaces.Dependencies
	opts      Options
	sanitizer *transform.Sanitizer
}

// NewService creates a new pipeline service.
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	if opts.Origin == "" {
		opts.Origin = DefaultOptions().Origin
	}
	return &Service{
		deps:      deps,
		opts:      opts,
		sanitizer: transform.NewSanitizer(),
	}
}

// Render produces the render model for the given article URL. It never
// returns an error: any failure in the pipeline yields the fallback model
// with Failed set and an explanatory HTML fragment.
func (s *Service) Render(ctx context.Context, url string) domain.RenderModel {
	model, err := s.run(ctx, url)
	if err != nil {
		s.deps.Logger.Error("Pipeline failed", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return fallbackModel(url, err)
	}
	return model
}

// run walks the pipeline states in order. The first failing step returns a
// typed error and no partial model is ever assembled.
func (s *Service) run(ctx context.Context, url string) (domain.RenderModel, error) {
	// Fetching
	raw, err := s.fetch(ctx, url)
	if err != nil {
		return domain.RenderModel{}, err
	}

	// Parsing
	doc, err := parseDocument(url, raw)
	if err != nil {
		return domain.RenderModel{}, err
	}

	// Cleaning
	transform.RemoveClutter(doc)
	transform.NormalizeURLs(doc, s.opts.Origin)

	root, ok := transform.LocateContent(doc)
	if !ok {
		return domain.RenderModel{}, &errors.NoContentError{URL: url}
	}

	// Extracting
	title := articleTitle(doc)
	readingTime := transform.ReadingTime(root.Text())
	sections := transform.ExtractTOC(root)
	leadImage, _ := root.Find("img").First().Attr("src")

	inner, err := root.Html()
	if err != nil {
		return domain.RenderModel{}, errors.WrapError(err, "serializing content root")
	}

	// Sanitizing
	sanitized := strings.TrimSpace(s.sanitizer.Sanitize(inner))
	if sanitized == "" {
		return domain.RenderModel{}, &errors.SanitizeEmptyError{URL: url}
	}

	markdown := ""
	if featureflags.IsEnabled(ctx, featureflags.MarkdownRendition) {
		markdown = s.markdown(url, sanitized)
	}

	// Done
	return domain.RenderModel{
		URL:                url,
		Title:              title,
		HTML:               sanitized,
		Markdown:           markdown,
		Sections:           sections,
		ReadingTimeMinutes: readingTime,
		LeadImage:          leadImage,
		Failed:             false,
	}, nil
}

// fetch performs the single GET attempt. Non-2xx responses and transport
// errors both surface as FetchError; there is no retry at any layer.
func (s *Service) fetch(ctx context.Context, url string) (string, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return "", &errors.FetchError{URL: url, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", &errors.FetchError{URL: url, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", &errors.FetchError{URL: url, Err: err}
	}
	return string(body), nil
}

// parseDocument builds the goquery document owned by this invocation.
func parseDocument(url, raw string) (*goquery.Document, error) {
	node, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, &errors.ParseError{URL: url, Err: err}
	}
	doc := goquery.NewDocumentFromNode(node)
	if doc.Find("body").Length() == 0 {
		return nil, &errors.ParseError{URL: url, Err: fmt.Errorf("document has no body")}
	}
	return doc, nil
}

// articleTitle prefers the page's first heading, falling back to the
// document title with Wikipedia's suffix trimmed.
func articleTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("#firstHeading").First().Text()); t != "" {
		return t
	}
	t := strings.TrimSpace(doc.Find("title").First().Text())
	return strings.TrimSuffix(t, " - Wikipedia")
}

// markdown converts the sanitized HTML to markdown. Conversion failure
// degrades to an empty rendition and never fails the pipeline.
func (s *Service) markdown(url, sanitized string) string {
	converter := md.NewConverter("", true, nil)
	out, err := converter.ConvertString(sanitized)
	if err != nil {
		s.deps.Logger.Debug("Markdown conversion failed", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return ""
	}
	return out
}

// fallbackModel builds the complete failure model. The fragment is composed
// of fixed trusted markup; the source URL and error text are escaped before
// interpolation, so no separate sanitization pass is needed.
func fallbackModel(url string, err error) domain.RenderModel {
	escapedURL := stdhtml.EscapeString(url)
	escapedErr := stdhtml.EscapeString(err.Error())

	fragment := fmt.Sprintf(
		`<div class="reader-error"><p>This article could not be loaded.</p>`+
			`<p><a href="%s">%s</a></p><p class="reader-error-detail">%s</p></div>`,
		escapedURL, escapedURL, escapedErr,
	)

	return domain.RenderModel{
		URL:                url,
		HTML:               fragment,
		Sections:           []domain.Section{},
		ReadingTimeMinutes: 0,
		Failed:             true,
	}
}
