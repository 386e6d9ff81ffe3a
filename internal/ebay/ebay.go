// Package ebay fetches sold-listing records for a search term. This is the
// pipeline's only upstream: given a term it returns zero or more raw
// (title, price, sold date, condition, url) tuples or a failure. Nothing
// here interprets the titles; extraction is downstream's job.
package ebay

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/brotli"
	"golang.org/x/time/rate"

	"github.com/guarzo/cardgap/internal/model"
)

const defaultBaseURL = "https://www.ebay.com"

// Client scrapes eBay's sold/completed search results.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New builds a client. An empty baseURL targets ebay.com; tests point it at
// a local server.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		// Keep well under anything that looks like scraping pressure.
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

// Search returns sold listings for the term, newest first as eBay ranks
// them. An empty result is not an error.
func (c *Client) Search(ctx context.Context, term string) ([]model.RawListing, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("_nkw", term)
	params.Set("LH_Sold", "1")
	params.Set("LH_Complete", "1")
	params.Set("_ipg", "60")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/sch/i.html?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")
	req.Header.Set("Accept", "text/html")
	req.Header.Set("Accept-Encoding", "gzip, br")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	body, err := decodeBody(resp)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse search results: %w", err)
	}
	return parseListings(doc), nil
}

func decodeBody(resp *http.Response) (io.Reader, error) {
	switch resp.Header.Get("Content-Encoding") {
	case "br":
		return brotli.NewReader(resp.Body), nil
	case "gzip":
		r, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return r, nil
	default:
		return resp.Body, nil
	}
}

func parseListings(doc *goquery.Document) []model.RawListing {
	var listings []model.RawListing

	doc.Find(".s-item").Each(func(i int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find(".s-item__title").Text())
		if title == "" || strings.EqualFold(title, "Shop on eBay") {
			return
		}

		listing := model.RawListing{Title: title}

		if price, ok := parsePrice(item.Find(".s-item__price").First().Text()); ok {
			listing.Price = &price
		}
		listing.SoldDate = parseSoldDate(item.Find(".s-item__caption").Text())
		listing.Condition = strings.TrimSpace(item.Find(".SECONDARY_INFO").First().Text())
		if href, ok := item.Find("a.s-item__link").Attr("href"); ok {
			listing.ItemURL = href
		}

		listings = append(listings, listing)
	})

	return listings
}

var priceRE = regexp.MustCompile(`[\d,]+\.?\d*`)

// parsePrice handles "$1,234.56" and takes the low end of a range like
// "$10.00 to $15.00".
func parsePrice(text string) (float64, bool) {
	m := priceRE.FindString(text)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

var soldDateRE = regexp.MustCompile(`(?i)sold\s+(.+)`)

func parseSoldDate(text string) string {
	m := soldDateRE.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// Grading buckets for price aggregation.
const (
	BucketPSA10 = "psa10"
	BucketPSA9  = "psa9"
	BucketRaw   = "raw"
	BucketOther = "other"
)

var (
	psa10RE  = regexp.MustCompile(`(?i)\bpsa[\s\-]*10\b`)
	psa9RE   = regexp.MustCompile(`(?i)\bpsa[\s\-]*9\b`)
	gradedRE = regexp.MustCompile(`(?i)\b(psa|bgs|cgc|sgc|csg|hga|beckett|graded|slab|slabbed)\b`)
)

// GradeBucket classifies a listing title for price averaging: PSA 10, PSA 9,
// raw (no grading vocabulary at all), or other graded material which is
// excluded from all three averages.
func GradeBucket(title string) string {
	switch {
	case psa10RE.MatchString(title):
		return BucketPSA10
	case psa9RE.MatchString(title):
		return BucketPSA9
	case gradedRE.MatchString(title):
		return BucketOther
	default:
		return BucketRaw
	}
}
