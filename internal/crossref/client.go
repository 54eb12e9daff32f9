// Package crossref retrieves journal-article metadata from the Crossref
// works API and normalizes it into Article records.
package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/ncomms-fetch/internal/httputil"
	"github.com/pdiddy/ncomms-fetch/internal/window"
	"github.com/pdiddy/ncomms-fetch/pkg/types"
)

// worksAPIBase is the Crossref works endpoint. Declared as a var so tests
// can substitute an httptest server.
var worksAPIBase = "https://api.crossref.org/works"

// JournalName is the journal whose articles are fetched, fixed at compile
// time.
const JournalName = "Nature Communications"

const (
	defaultRows = 100
	dateFmt     = "2006-01-02"
)

// Client fetches one month of journal articles from the works API.
type Client struct {
	HTTPClient *http.Client
	Config     types.FetchConfig
}

// FetchMonth pages through every journal article published in the month
// that carries an abstract and returns the normalized records in API
// order (ascending publication date requested). Pagination stops at the
// first page that yields no items. Per-page progress is written to w.
func (c *Client) FetchMonth(ctx context.Context, month window.Month, w io.Writer) ([]types.Article, error) {
	rows := c.Config.Rows
	if rows <= 0 {
		rows = defaultRows
	}

	var records []types.Article
	for offset := 0; ; offset += rows {
		page, err := c.fetchPage(ctx, month, rows, offset)
		if err != nil {
			return nil, err
		}
		if len(page.Message.Items) == 0 {
			break
		}
		for _, item := range page.Message.Items {
			records = append(records, normalizeItem(item))
		}
		fmt.Fprintf(w, "Fetched %d items (offset %d)\n", len(page.Message.Items), offset)
	}
	return records, nil
}

// fetchPage requests a single page of results. Rate-limited and transient
// gateway responses are retried by httputil.DoWithRetry; any other
// non-200 status is fatal.
func (c *Client) fetchPage(ctx context.Context, month window.Month, rows, offset int) (*worksResponse, error) {
	filter := "container-title:" + JournalName +
		",type:journal-article" +
		",from-pub-date:" + month.Start.Format(dateFmt) +
		",until-pub-date:" + month.End.Format(dateFmt) +
		",has-abstract:true"

	params := url.Values{
		"filter": {filter},
		"sort":   {"published"},
		"order":  {"asc"},
		"rows":   {strconv.Itoa(rows)},
		"offset": {strconv.Itoa(offset)},
	}
	if c.Config.Mailto != "" {
		params.Set("mailto", c.Config.Mailto)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, worksAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, req, c.Config.MaxAttempts, c.Config.Backoff)
	if err != nil {
		return nil, fmt.Errorf("fetching page at offset %d: %w", offset, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("crossref API returned HTTP %d", resp.StatusCode)
	}

	var wr worksResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return nil, fmt.Errorf("parsing crossref response: %w", err)
	}
	return &wr, nil
}

// Crossref works API JSON structures.
type worksResponse struct {
	Message worksMessage `json:"message"`
}

type worksMessage struct {
	Items []workItem `json:"items"`
}

type workItem struct {
	Title           []string     `json:"title"`
	Abstract        string       `json:"abstract"`
	DOI             string       `json:"DOI"`
	URL             string       `json:"URL"`
	Author          []workAuthor `json:"author"`
	PublishedOnline *workDate    `json:"published-online"`
	PublishedPrint  *workDate    `json:"published-print"`
	Issued          *workDate    `json:"issued"`
	Created         *workStamp   `json:"created"`
}

type workAuthor struct {
	Given   string `json:"given"`
	Family  string `json:"family"`
	Name    string `json:"name"`
	Literal string `json:"literal"`
	Prefix  string `json:"prefix"`
	Suffix  string `json:"suffix"`
}

type workDate struct {
	DateParts [][]int `json:"date-parts"`
}

type workStamp struct {
	DateTime string `json:"date-time"`
}
