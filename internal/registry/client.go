package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/nonebot-go/nb/internal/branding"
)

// Hit is one search result from the package index.
type Hit struct {
	Name     string
	Version  string // latest release
	Summary  string
	Versions []string // all known releases, newest first
}

// Client queries a package index over its JSON lookup endpoint.
type Client struct {
	HTTPClient *http.Client
	Index      string
	UserAgent  string
}

// NewClient returns a Client for the given index URL. An empty index falls
// back to the branding default.
func NewClient(index string) *Client {
	if index == "" {
		index = branding.DefaultIndex()
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Index:      index,
		UserAgent:  branding.CLIName() + "-cli",
	}
}

// indexResponse mirrors the subset of the index's JSON document we consume.
type indexResponse struct {
	Info struct {
		Name    string `json:"name"`
		Version string `json:"version"`
		Summary string `json:"summary"`
	} `json:"info"`
	Releases map[string][]struct{} `json:"releases"`
}

// Search looks up the fully qualified plugin name for the given suffix and
// returns the matching hits. An unknown package yields an empty hit list,
// not an error.
func (c *Client) Search(ctx context.Context, suffix string) ([]Hit, error) {
	name := branding.QualifyPlugin(suffix)

	url := fmt.Sprintf("%s/%s/json", c.Index, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying package index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("package index returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading index response: %w", err)
	}

	var doc indexResponse
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parsing index response: %w", err)
	}

	versions := make([]string, 0, len(doc.Releases))
	for v := range doc.Releases {
		versions = append(versions, v)
	}
	SortVersionsDesc(versions)

	latest := doc.Info.Version
	if latest == "" && len(versions) > 0 {
		latest = versions[0]
	}

	return []Hit{{
		Name:     doc.Info.Name,
		Version:  latest,
		Summary:  doc.Info.Summary,
		Versions: versions,
	}}, nil
}

// SortVersionsDesc orders version strings newest-first. Versions that do not
// parse as semver sort after all parseable ones, lexically descending.
func SortVersionsDesc(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		vi, errI := semver.NewVersion(versions[i])
		vj, errJ := semver.NewVersion(versions[j])
		switch {
		case errI == nil && errJ == nil:
			return vi.GreaterThan(vj)
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return versions[i] > versions[j]
		}
	})
}
