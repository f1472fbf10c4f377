package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/social360/social360"
	"github.com/social360/social360/internal/domain"
)

const defaultTimeout = 3 * time.Second

// Client is a typed HTTP client for a social360 node. Read-only lookups for
// users and insight reports are cached locally.
type Client struct {
	client   *http.Client
	cache    *cache.Cache
	baseURL  string
	identity string
}

// New builds a client for the node at baseURL. identity is sent with every
// request as the requester id; pass "" for anonymous read access.
func New(baseURL, identity string) *Client {
	return &Client{
		client:   &http.Client{Timeout: defaultTimeout},
		cache:    cache.New(10*time.Minute, 15*time.Minute),
		baseURL:  baseURL,
		identity: identity,
	}
}

func (c *Client) get(ctx context.Context, path string, response any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	return c.do(req, response)
}

func (c *Client) post(ctx context.Context, path string, body any, response any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %v", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, response)
}

func (c *Client) do(req *http.Request, response any) error {
	if c.identity != "" {
		req.Header.Set(domain.RequesterIdHeader, c.identity)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if response == nil {
		return nil
	}
	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}
	return nil
}

func (c *Client) Register(ctx context.Context, handle string) error {
	return c.post(ctx, "/api/v1/register", social360.RegisterRequest{Handle: handle}, nil)
}

func (c *Client) GetUser(ctx context.Context, identity string) (social360.Account, error) {
	cacheKey := "user:" + identity
	if x, found := c.cache.Get(cacheKey); found {
		return x.(social360.Account), nil
	}

	var account social360.Account
	err := c.get(ctx, "/api/v1/users/"+url.PathEscape(identity), &account)
	if err != nil {
		return social360.Account{}, fmt.Errorf("failed to get user: %v", err)
	}

	c.cache.Set(cacheKey, account, cache.DefaultExpiration)
	return account, nil
}

func (c *Client) SuspendUser(ctx context.Context, identity string, duration time.Duration) (bool, error) {
	var result social360.ResultResponse
	req := social360.SuspendRequest{DurationSeconds: int64(duration / time.Second)}
	err := c.post(ctx, "/api/v1/users/"+url.PathEscape(identity)+"/suspend", req, &result)
	if err != nil {
		return false, err
	}
	c.cache.Delete("user:" + identity)
	return result.OK, nil
}

func (c *Client) UnsuspendUser(ctx context.Context, identity string) (bool, error) {
	var result social360.ResultResponse
	err := c.post(ctx, "/api/v1/users/"+url.PathEscape(identity)+"/unsuspend", nil, &result)
	if err != nil {
		return false, err
	}
	c.cache.Delete("user:" + identity)
	return result.OK, nil
}

func (c *Client) VerifyUser(ctx context.Context, identity string) (bool, error) {
	var result social360.ResultResponse
	err := c.post(ctx, "/api/v1/users/"+url.PathEscape(identity)+"/verify", nil, &result)
	if err != nil {
		return false, err
	}
	c.cache.Delete("user:" + identity)
	return result.OK, nil
}

func (c *Client) Follow(ctx context.Context, identity string) error {
	return c.post(ctx, "/api/v1/follow", social360.FollowRequest{Identity: identity}, nil)
}

func (c *Client) Followers(ctx context.Context, identity string) ([]string, error) {
	var followers []string
	err := c.get(ctx, "/api/v1/users/"+url.PathEscape(identity)+"/followers", &followers)
	return followers, err
}

func (c *Client) Following(ctx context.Context, identity string) ([]string, error) {
	var following []string
	err := c.get(ctx, "/api/v1/users/"+url.PathEscape(identity)+"/following", &following)
	return following, err
}

func (c *Client) PostUpdate(ctx context.Context, content string) (int64, error) {
	var resp social360.IDResponse
	err := c.post(ctx, "/api/v1/updates", social360.PostRequest{Content: content}, &resp)
	return resp.ID, err
}

func (c *Client) Repost(ctx context.Context, updateID int64) (int64, error) {
	var resp social360.IDResponse
	err := c.post(ctx, updatePath(updateID, "repost"), nil, &resp)
	return resp.ID, err
}

func (c *Client) Quote(ctx context.Context, updateID int64, content string) (int64, error) {
	var resp social360.IDResponse
	err := c.post(ctx, updatePath(updateID, "quote"), social360.QuoteRequest{Content: content}, &resp)
	return resp.ID, err
}

func (c *Client) ToggleLike(ctx context.Context, updateID int64) (bool, error) {
	var resp social360.LikedResponse
	err := c.post(ctx, updatePath(updateID, "like"), nil, &resp)
	return resp.Liked, err
}

func (c *Client) HasLiked(ctx context.Context, updateID int64, identity string) (bool, error) {
	var resp social360.MembershipResponse
	err := c.get(ctx, updatePath(updateID, "liked")+"?identity="+url.QueryEscape(identity), &resp)
	return resp.Member, err
}

func (c *Client) HasReposted(ctx context.Context, updateID int64, identity string) (bool, error) {
	var resp social360.MembershipResponse
	err := c.get(ctx, updatePath(updateID, "reposted")+"?identity="+url.QueryEscape(identity), &resp)
	return resp.Member, err
}

func (c *Client) FlagUpdate(ctx context.Context, updateID int64, reason, severity string) (bool, error) {
	var resp social360.ResultResponse
	req := social360.FlagRequest{Reason: reason, Severity: severity}
	err := c.post(ctx, updatePath(updateID, "flag"), req, &resp)
	return resp.OK, err
}

func (c *Client) ResolveFlag(ctx context.Context, flagID int64) (bool, error) {
	var resp social360.ResultResponse
	err := c.post(ctx, "/api/v1/flags/"+strconv.FormatInt(flagID, 10)+"/resolve", nil, &resp)
	return resp.OK, err
}

func (c *Client) ModerateUpdate(ctx context.Context, updateID int64, reason string) (bool, error) {
	var resp social360.ResultResponse
	err := c.post(ctx, updatePath(updateID, "moderate"), social360.ModerateRequest{Reason: reason}, &resp)
	return resp.OK, err
}

func (c *Client) UnmoderateUpdate(ctx context.Context, updateID int64) (bool, error) {
	var resp social360.ResultResponse
	err := c.post(ctx, updatePath(updateID, "unmoderate"), nil, &resp)
	return resp.OK, err
}

func (c *Client) Warnings(ctx context.Context, identity string) ([]social360.Warning, error) {
	var warnings []social360.Warning
	err := c.get(ctx, "/api/v1/users/"+url.PathEscape(identity)+"/warnings", &warnings)
	return warnings, err
}

func (c *Client) FlaggedContent(ctx context.Context) ([]social360.ModerationFlag, error) {
	var flags []social360.ModerationFlag
	err := c.get(ctx, "/api/v1/moderation/flags", &flags)
	return flags, err
}

func (c *Client) ModeratedUpdates(ctx context.Context) ([]social360.Update, error) {
	var updates []social360.Update
	err := c.get(ctx, "/api/v1/moderation/updates", &updates)
	return updates, err
}

func (c *Client) Timeline(ctx context.Context, page, pageSize int) ([]social360.Update, error) {
	var updates []social360.Update
	err := c.get(ctx, fmt.Sprintf("/api/v1/timeline?page=%d&pageSize=%d", page, pageSize), &updates)
	return updates, err
}

func (c *Client) UserUpdates(ctx context.Context, identity string, page, pageSize int) ([]social360.Update, error) {
	var updates []social360.Update
	path := fmt.Sprintf("/api/v1/users/%s/updates?page=%d&pageSize=%d", url.PathEscape(identity), page, pageSize)
	err := c.get(ctx, path, &updates)
	return updates, err
}

func (c *Client) SearchUpdates(ctx context.Context, keyword string) ([]social360.Update, error) {
	var updates []social360.Update
	err := c.get(ctx, "/api/v1/search/updates?q="+url.QueryEscape(keyword), &updates)
	return updates, err
}

func (c *Client) SearchUsers(ctx context.Context, prefix string) ([]social360.Account, error) {
	var accounts []social360.Account
	err := c.get(ctx, "/api/v1/search/users?q="+url.QueryEscape(prefix), &accounts)
	return accounts, err
}

func (c *Client) AnalyzeContent(ctx context.Context, content string) (social360.Insights, error) {
	cacheKey := "insights:" + content
	if x, found := c.cache.Get(cacheKey); found {
		return x.(social360.Insights), nil
	}

	var insights social360.Insights
	err := c.post(ctx, "/api/v1/insights", social360.InsightRequest{Content: content}, &insights)
	if err != nil {
		return social360.Insights{}, fmt.Errorf("failed to analyze content: %v", err)
	}

	c.cache.Set(cacheKey, insights, cache.DefaultExpiration)
	return insights, nil
}

func (c *Client) GetServer(ctx context.Context) (social360.WellKnownSocial360, error) {
	if x, found := c.cache.Get("wellknown"); found {
		return x.(social360.WellKnownSocial360), nil
	}

	var wks social360.WellKnownSocial360
	err := c.get(ctx, "/.well-known/social360", &wks)
	if err != nil {
		return social360.WellKnownSocial360{}, fmt.Errorf("failed to get well-known social360: %v", err)
	}

	c.cache.Set("wellknown", wks, cache.DefaultExpiration)
	return wks, nil
}

func updatePath(id int64, suffix string) string {
	return "/api/v1/updates/" + strconv.FormatInt(id, 10) + "/" + suffix
}
