package buildinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/matzehuels/wordmark/pkg/cache"
	"github.com/matzehuels/wordmark/pkg/errors"
	"github.com/matzehuels/wordmark/pkg/observability"
)

// DefaultAPIURL is the GitHub REST API root.
const DefaultAPIURL = "https://api.github.com"

const requestTimeout = 10 * time.Second

// Release is the subset of a GitHub release used by the update check.
type Release struct {
	Tag        string    `json:"tag_name"`
	Name       string    `json:"name"`
	URL        string    `json:"html_url"`
	Published  time.Time `json:"published_at"`
	Prerelease bool      `json:"prerelease"`
	Draft      bool      `json:"draft"`
}

// UpdateInfo is the outcome of an update check.
type UpdateInfo struct {
	Current   string
	Latest    string
	URL       string
	Available bool
	Cached    bool // release data came from cache
}

// Checker looks up the latest published release. It only reports; it
// never downloads or replaces the running binary.
type Checker struct {
	APIURL string
	Repo   string
	HTTP   *http.Client
	Cache  cache.Cache
	Keyer  cache.Keyer
}

// NewChecker creates a checker for [Repo] that caches lookups in c.
// If c is nil, a NullCache is used.
func NewChecker(c cache.Cache) *Checker {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Checker{
		APIURL: DefaultAPIURL,
		Repo:   Repo,
		HTTP:   &http.Client{Timeout: requestTimeout},
		Cache:  c,
		Keyer:  cache.NewDefaultKeyer(),
	}
}

// Check compares current against the latest release.
func (c *Checker) Check(ctx context.Context, current string) (*UpdateInfo, error) {
	rel, cached, err := c.Latest(ctx)
	if err != nil {
		return nil, err
	}
	return &UpdateInfo{
		Current:   current,
		Latest:    rel.Tag,
		URL:       rel.URL,
		Available: IsNewer(rel.Tag, current),
		Cached:    cached,
	}, nil
}

// Latest returns the latest release, from cache when fresh.
func (c *Checker) Latest(ctx context.Context) (*Release, bool, error) {
	key := c.Keyer.ReleaseKey(c.Repo)
	if data, hit, err := c.Cache.Get(ctx, key); err == nil && hit {
		var rel Release
		if err := json.Unmarshal(data, &rel); err == nil {
			observability.Cache().OnCacheHit(ctx, "release")
			return &rel, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "release")

	var rel *Release
	err := cache.RetryWithBackoff(ctx, func() error {
		var err error
		rel, err = c.fetch(ctx)
		return err
	})
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(rel); err == nil {
		if err := c.Cache.Set(ctx, key, data, cache.ReleaseTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "release", len(data))
		}
	}
	return rel, false, nil
}

func (c *Checker) fetch(ctx context.Context) (*Release, error) {
	endpoint := c.APIURL + "/repos/" + c.Repo + "/releases/latest"
	if err := errors.ValidateURL(endpoint); err != nil {
		return nil, err
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "release URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "wordmark/"+Version)

	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, u.Host, u.Path)
	start := time.Now()

	resp, err := c.HTTP.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, u.Host, u.Path, err)
		return nil, cache.Retryable(errors.Wrap(errors.ErrCodeNetwork, fmt.Errorf("%w: %v", cache.ErrNetwork, err), "fetch latest release"))
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, u.Host, u.Path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode release")
	}
	if rel.Tag == "" {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "release has no tag")
	}
	return &rel, nil
}

func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "no published release")
	case code == http.StatusTooManyRequests,
		code == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0":
		retry, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return &errors.RateLimitedError{RetryAfter: retry, Message: "GitHub API rate limit exceeded"}
	case code >= 500:
		return cache.Retryable(errors.Wrap(errors.ErrCodeNetwork, cache.ErrNetwork, "status %d", code))
	default:
		return errors.Wrap(errors.ErrCodeNetwork, cache.ErrNetwork, "status %d", code)
	}
}
