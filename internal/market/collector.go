package market

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"

	"resume-match/internal/domain/trending"
	"resume-match/internal/infrastructure/cache"
)

// trackedSkills is the fixed set of skills the collector measures. It covers
// every skill the gap analyzer can categorize plus the common adjacent ones.
var trackedSkills = []string{
	"python", "javascript", "typescript", "java", "go", "node.js", "react",
	"angular", "vue.js", "aws", "azure", "gcp", "docker", "kubernetes",
	"terraform", "jenkins", "gitlab", "ci/cd", "sql", "postgresql", "mongodb",
	"graphql", "machine learning", "data science", "microservices",
}

type Collector struct {
	repo        trending.Repository
	cache       *cache.Redis
	logger      *log.Logger
	baseURL     string
	allowedHost string
}

func NewCollector(repo trending.Repository, c *cache.Redis, logger *log.Logger, baseURL string) *Collector {
	if logger == nil {
		logger = log.Default()
	}
	s := &Collector{repo: repo, cache: c, logger: logger, baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
	s.allowedHost = hostFromBaseURL(s.baseURL)
	return s
}

// Refresh walks the board's listing pages, fetches each posting, tallies
// skill stats over the batch, and upserts the trending table. Individual
// posting failures are logged and skipped; the refresh fails only when no
// posting could be collected at all.
func (c *Collector) Refresh(ctx context.Context, pages, workers int) error {
	if c == nil || c.repo == nil {
		return fmt.Errorf("nil collector/repo")
	}
	if pages <= 0 {
		pages = 1
	}
	if workers <= 0 {
		workers = 4
	}

	links := make([]string, 0)
	for page := 1; page <= pages; page++ {
		pageLinks, err := c.listingLinks(ctx, page)
		if err != nil {
			c.logger.Printf("[Market] listing page %d: %v", page, err)
			continue
		}
		links = append(links, pageLinks...)
	}
	if len(links) == 0 {
		return fmt.Errorf("no postings found")
	}

	pool := NewWorkerPool(workers, workers*2)
	pool.SetRateLimit(4)
	results := pool.Run(ctx)

	var mu sync.Mutex
	postings := make([]Posting, 0, len(links))

	for _, link := range links {
		link := link
		pool.Submit(func(ctx context.Context) error {
			p, err := c.fetchPosting(ctx, link)
			if err != nil {
				return fmt.Errorf("posting %s: %w", link, err)
			}
			mu.Lock()
			postings = append(postings, p)
			mu.Unlock()
			return nil
		})
	}
	pool.Close()

	for res := range results {
		if res.Err != nil {
			c.logger.Printf("[Market] %v", res.Err)
		}
	}

	if len(postings) == 0 {
		return fmt.Errorf("no postings collected")
	}

	skills := Tally(postings, trackedSkills, time.Now().UTC())
	for _, s := range skills {
		s.Source = c.allowedHost
		if err := c.repo.Upsert(ctx, s); err != nil {
			return fmt.Errorf("upsert %s: %w", s.Name, err)
		}
	}

	if c.cache != nil {
		_ = c.cache.InvalidateTrending(ctx)
	}

	c.logger.Printf("[Market] refreshed %d skills from %d postings", len(skills), len(postings))
	return nil
}

func (c *Collector) listingLinks(ctx context.Context, page int) ([]string, error) {
	listURL := fmt.Sprintf("%s/jobs?page=%d", c.baseURL, page)

	links, err := c.listingLinksStatic(ctx, listURL)
	if err == nil && len(links) > 0 {
		return links, nil
	}
	// JS-rendered boards serve an empty shell to plain HTTP clients; retry
	// with a headless browser before giving up on the page.
	return c.listingLinksHeadless(ctx, listURL)
}

func (c *Collector) listingLinksStatic(ctx context.Context, listURL string) ([]string, error) {
	col := colly.NewCollector(
		colly.AllowedDomains(c.allowedHost),
	)
	_ = col.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 400 * time.Millisecond, RandomDelay: 600 * time.Millisecond})

	links := make([]string, 0)
	col.OnHTML("a", func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" || !strings.Contains(href, "/job/") {
			return
		}
		if abs := e.Request.AbsoluteURL(href); abs != "" {
			links = append(links, abs)
		}
	})

	var reqErr error
	col.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := col.Visit(listURL); err != nil {
		return nil, err
	}
	col.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	return dedupLinks(links), nil
}

var salaryRangeRe = regexp.MustCompile(`\$\s?(\d{1,3}(?:,\d{3})+|\d{4,6})\s*(?:-|–|to)\s*\$?\s?(\d{1,3}(?:,\d{3})+|\d{4,6})`)

func (c *Collector) fetchPosting(ctx context.Context, postURL string) (Posting, error) {
	col := colly.NewCollector(
		colly.AllowedDomains(c.allowedHost),
	)
	_ = col.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 400 * time.Millisecond, RandomDelay: 600 * time.Millisecond})

	var p Posting
	var reqErr error

	col.OnHTML("title", func(e *colly.HTMLElement) {
		if p.Title == "" {
			p.Title = strings.TrimSpace(e.Text)
		}
	})
	col.OnHTML("body", func(e *colly.HTMLElement) {
		text := strings.TrimSpace(e.Text)
		if len(text) > len(p.Description) {
			p.Description = text
		}
	})
	col.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return Posting{}, ctx.Err()
	}
	if err := col.Visit(postURL); err != nil {
		return Posting{}, err
	}
	col.Wait()
	if reqErr != nil {
		return Posting{}, reqErr
	}
	if p.Description == "" {
		return Posting{}, fmt.Errorf("empty posting body")
	}

	if m := salaryRangeRe.FindStringSubmatch(p.Description); len(m) == 3 {
		p.SalaryMin = parseMoney(m[1])
		p.SalaryMax = parseMoney(m[2])
	}
	return p, nil
}

func parseMoney(s string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0
	}
	return n
}

func dedupLinks(links []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(links))
	for _, l := range links {
		u := normalizeURL(l)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	u.Fragment = ""
	u.RawQuery = ""
	return u.String()
}

func hostFromBaseURL(base string) string {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Host
}
