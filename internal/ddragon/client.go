// Package ddragon fetches static game reference data from the Data Dragon and
// Community Dragon mirrors and serves it through a two-tier in-memory cache.
package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultDDragonBase = "https://ddragon.leagueoflegends.com"
	defaultCDragonBase = "https://raw.communitydragon.org"

	fetchTimeout = 15 * time.Second
)

// Client fetches version, item, and augment reference data.
type Client struct {
	httpClient  *http.Client
	ddragonBase string
	cdragonBase string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithDDragonBase overrides the Data Dragon base URL (useful for testing).
func WithDDragonBase(u string) ClientOption {
	return func(c *Client) { c.ddragonBase = u }
}

// WithCDragonBase overrides the Community Dragon base URL.
func WithCDragonBase(u string) ClientOption {
	return func(c *Client) { c.cdragonBase = u }
}

// NewClient creates a static-data client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: fetchTimeout},
		ddragonBase: defaultDDragonBase,
		cdragonBase: defaultCDragonBase,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LatestVersion returns the newest game version from versions.json.
func (c *Client) LatestVersion(ctx context.Context) (string, error) {
	var versions []string
	if err := c.getJSON(ctx, c.ddragonBase+"/api/versions.json", &versions); err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("versions.json returned an empty list")
	}
	return versions[0], nil
}

// itemFile is the minimal shape of Data Dragon's item.json.
type itemFile struct {
	Data map[string]struct {
		Name string `json:"name"`
	} `json:"data"`
}

// Items returns the itemID -> name table for a game version.
func (c *Client) Items(ctx context.Context, version string) (map[string]string, error) {
	u := fmt.Sprintf("%s/cdn/%s/data/en_US/item.json", c.ddragonBase, version)
	var file itemFile
	if err := c.getJSON(ctx, u, &file); err != nil {
		return nil, err
	}
	names := make(map[string]string, len(file.Data))
	for id, item := range file.Data {
		names[id] = item.Name
	}
	return names, nil
}

// Augment is one Arena augment entry from Community Dragon.
type Augment struct {
	ID        int    `json:"id"`
	APIName   string `json:"apiName"`
	Name      string `json:"name"`
	Rarity    int    `json:"rarity"`
	IconSmall string `json:"iconSmall"`
	IconLarge string `json:"iconLarge"`
}

// arenaFile is the Community Dragon cdragon/arena payload.
type arenaFile struct {
	Augments []Augment `json:"augments"`
}

// Augments returns the full Arena augment table.
func (c *Client) Augments(ctx context.Context) ([]Augment, error) {
	u := c.cdragonBase + "/latest/cdragon/arena/en_us.json"
	var file arenaFile
	if err := c.getJSON(ctx, u, &file); err != nil {
		return nil, err
	}
	return file.Augments, nil
}

func (c *Client) getJSON(ctx context.Context, url string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return fmt.Errorf("fetch %s: status %d: %s", url, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
