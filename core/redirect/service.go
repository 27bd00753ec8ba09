// ABOUTME: Navigation redirector deciding which page loads get the reader view
// ABOUTME: Builds reader-view addresses and recovers the original URL from them

package redirect

import (
	"context"
	stderrors "errors"
	"net/url"
	"strings"

	"wikireader-api/core/domain"
	"wikireader-api/core/errors"
	"wikireader-api/core/interfaces"
)

// readerParam is the query parameter carrying the original article URL.
const readerParam = "url"

// developmentHosts are never intercepted regardless of preferences.
var developmentHosts = map[string]bool{
	"localhost": true,
	"127.0.0.1": true,
}

// Options configures the redirector.
type Options struct {
	// ContentHost is the host whose article pages qualify for interception
	ContentHost string

	// ReaderBase is the absolute base address of the reader view
	ReaderBase string
}

// DefaultOptions targets English Wikipedia with a locally served reader.
func DefaultOptions() Options {
	return Options{
		ContentHost: "en.wikipedia.org",
		ReaderBase:  "/reader",
	}
}

// Service implements the navigation redirector: interception decisions,
// reader-URL construction, original-URL recovery and the append-only
// blacklist preference operation.
type Service struct {
	storage interfaces.BlacklistStorage
	logger  interfaces.Logger
	opts    Options
}

// NewService creates a new redirector service.
func NewService(storage interfaces.BlacklistStorage, logger interfaces.Logger, opts Options) *Service {
	if opts.ContentHost == "" {
		opts.ContentHost = DefaultOptions().ContentHost
	}
	if opts.ReaderBase == "" {
		opts.ReaderBase = DefaultOptions().ReaderBase
	}
	return &Service{
		storage: storage,
		logger:  logger,
		opts:    opts,
	}
}

// ShouldIntercept reports whether a top-level navigation to rawURL should be
// redirected to the reader view. A URL qualifies when it is an article page
// on the content host, is not already a reader-view address, and its host is
// neither a development host nor blacklisted.
func (s *Service) ShouldIntercept(ctx context.Context, rawURL string) (bool, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false, errors.WrapError(err, "parsing navigation URL")
	}

	host := strings.ToLower(u.Hostname())
	if host != s.opts.ContentHost {
		return false, nil
	}
	if developmentHosts[host] {
		return false, nil
	}
	if !strings.HasPrefix(u.Path, "/wiki/") {
		return false, nil
	}
	if s.isReaderURL(u) {
		return false, nil
	}

	if s.storage != nil {
		blacklisted, err := s.storage.Contains(ctx, host)
		if err != nil {
			return false, errors.WrapError(err, "checking blacklist")
		}
		if blacklisted {
			return false, nil
		}
	}

	return true, nil
}

// ReaderURL constructs the reader-view address for an article URL, encoding
// the original as a query parameter.
func (s *Service) ReaderURL(original string) string {
	return s.opts.ReaderBase + "?" + readerParam + "=" + url.QueryEscape(original)
}

// OriginalURL recovers the exact original article URL from a reader-view
// address. The parameter value is returned URL-decoded and unmodified.
func (s *Service) OriginalURL(readerURL string) (string, error) {
	u, err := url.Parse(readerURL)
	if err != nil {
		return "", errors.WrapError(err, "parsing reader URL")
	}
	original := u.Query().Get(readerParam)
	if original == "" {
		return "", stderrors.New("reader URL carries no source parameter")
	}
	return original, nil
}

// AddToBlacklist appends a host to the preference blacklist. The operation
// is append-only; there is no removal path in the core.
func (s *Service) AddToBlacklist(ctx context.Context, host string) error {
	entry, err := domain.NewBlacklistEntry(host)
	if err != nil {
		return err
	}
	if err := s.storage.Add(ctx, entry); err != nil {
		return errors.WrapError(err, "persisting blacklist entry")
	}
	if s.logger != nil {
		s.logger.Info("Host blacklisted", map[string]interface{}{
			"host": entry.Host,
		})
	}
	return nil
}

// isReaderURL reports whether u already points at the reader view, either by
// path or by carrying the source parameter.
func (s *Service) isReaderURL(u *url.URL) bool {
	if base, err := url.Parse(s.opts.ReaderBase); err == nil && base.Path != "" {
		if strings.HasPrefix(u.Path, base.Path) {
			return true
		}
	}
	return u.Query().Get(readerParam) != ""
}
