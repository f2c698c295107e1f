package headline

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/rxtech-lab/argo-signals/internal/logger"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
	"go.uber.org/zap"
)

// DefaultRSSURLTemplate is the Google News search feed. %s receives the
// escaped search query.
const DefaultRSSURLTemplate = "https://news.google.com/rss/search?q=%s"

const defaultRSSTimeout = 15 * time.Second

// RSSProvider reads headlines from an RSS or Atom search feed.
type RSSProvider struct {
	parser      *gofeed.Parser
	urlTemplate string
	logger      *logger.Logger
}

// RSSOption configures an RSSProvider.
type RSSOption func(*RSSProvider)

// WithHTTPClient sets the client used to fetch feeds.
func WithHTTPClient(client *http.Client) RSSOption {
	return func(p *RSSProvider) {
		if client != nil {
			p.parser.Client = client
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with feed requests.
func WithUserAgent(userAgent string) RSSOption {
	return func(p *RSSProvider) {
		if userAgent != "" {
			p.parser.UserAgent = userAgent
		}
	}
}

// NewRSSProvider creates a provider for a search feed. An empty template
// uses Google News.
func NewRSSProvider(urlTemplate string, log *logger.Logger, opts ...RSSOption) *RSSProvider {
	if urlTemplate == "" {
		urlTemplate = DefaultRSSURLTemplate
	}

	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: defaultRSSTimeout}

	p := &RSSProvider{
		parser:      parser,
		urlTemplate: urlTemplate,
		logger:      log.Named("headline.rss"),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// FeedURL returns the feed address searched for symbol.
func (p *RSSProvider) FeedURL(symbol string) string {
	return fmt.Sprintf(p.urlTemplate, url.QueryEscape(SearchQuery(symbol)))
}

func (p *RSSProvider) Headlines(ctx context.Context, symbol string, limit int) ([]string, error) {
	feedURL := p.FeedURL(symbol)

	feed, err := p.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeHeadlineFetchFailed, err, "failed to read feed for %s", symbol)
	}

	headlines := make([]string, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}

		title := strings.TrimSpace(item.Title)
		if title != "" {
			headlines = append(headlines, title)
		}
	}

	headlines = capHeadlines(headlines, limit)

	p.logger.Debug("Fetched headlines",
		zap.String("symbol", symbol),
		zap.Int("headlines", len(headlines)),
	)

	return headlines, nil
}
