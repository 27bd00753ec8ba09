// ABOUTME: Accent color extraction service for theming the reader chrome
// ABOUTME: Uses K-means clustering to find the prominent color of a lead image

package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp" // WebP support

	"wikireader-api/core/domain"
	"wikireader-api/core/interfaces"
)

const (
	defaultColorValue = 128
	imageHTTPTimeout  = 10 * time.Second
	imageUserAgent    = "WikiReaderAPI/1.0 (accent color extraction)"
	accentColorTTL    = 24 * time.Hour
)

// AccentColorService derives the reader's theme accent color from the
// article's lead image.
type AccentColorService struct {
	deps       interfaces.Dependencies
	httpClient *http.Client
}

// NewAccentColorService creates a new accent color service
func NewAccentColorService(deps interfaces.Dependencies) *AccentColorService {
	return &AccentColorService{
		deps: deps,
		httpClient: &http.Client{
			Timeout: imageHTTPTimeout,
		},
	}
}

// ExtractColor extracts the prominent color from an image URL. Any failure
// degrades to a neutral gray; theming never blocks rendering.
func (s *AccentColorService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return s.defaultColor(), nil
	}

	if s.deps.Cache != nil {
		cacheKey := "accentColor:" + imageURL
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var color domain.RGBColor
			if _, err := fmt.Sscanf(string(data), "%d,%d,%d", &color.R, &color.G, &color.B); err == nil {
				return &color, nil
			}
		}
	}

	color, err := s.extractColorFromURL(ctx, imageURL)
	if err != nil {
		s.deps.Logger.Debug("Failed to extract accent color", map[string]interface{}{
			"url":   imageURL,
			"error": err.Error(),
		})
		color = s.defaultColor()
	}
	if color == nil {
		color = s.defaultColor()
	}

	if s.deps.Cache != nil {
		cacheKey := "accentColor:" + imageURL
		cacheData := fmt.Sprintf("%d,%d,%d", color.R, color.G, color.B)
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(cacheData), accentColorTTL)
	}

	return color, nil
}

// extractColorFromURL downloads and extracts color from an image
func (s *AccentColorService) extractColorFromURL(ctx context.Context, imageURL string) (color *domain.RGBColor, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			s.deps.Logger.Debug("Recovered from panic in color extraction", map[string]interface{}{
				"url":   imageURL,
				"panic": fmt.Sprintf("%v", rec),
			})
			color = s.defaultColor()
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsedURL, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid image URL: %s", imageURL)
	}

	// SVG lead images (common on Wikipedia) cannot be decoded as raster
	if strings.HasSuffix(strings.ToLower(parsedURL.Path), ".svg") {
		return nil, fmt.Errorf("SVG images are not supported")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", imageUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has empty bounds")
	}
	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		imgNRGBA,
		prominentcolor.DefaultK,
		1,
		prominentcolor.GetDefaultMasks(),
	)
	if err != nil || len(colors) == 0 {
		// Masks can reject the whole image; retry unmasked
		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentDefault,
			imgNRGBA,
			prominentcolor.DefaultK,
			1,
			nil,
		)
		if err != nil || len(colors) == 0 {
			return nil, fmt.Errorf("no colors extracted from image")
		}
	}

	return &domain.RGBColor{
		R: uint8(colors[0].Color.R),
		G: uint8(colors[0].Color.G),
		B: uint8(colors[0].Color.B),
	}, nil
}

// defaultColor returns the neutral gray used when extraction fails
func (s *AccentColorService) defaultColor() *domain.RGBColor {
	return &domain.RGBColor{
		R: defaultColorValue,
		G: defaultColorValue,
		B: defaultColorValue,
	}
}
