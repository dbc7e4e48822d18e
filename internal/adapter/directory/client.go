package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adbooks/internal/core/domain"
)

// Headers set by the platform's auth middleware and forwarded on
// internal calls so the directory can apply the requester's scope.
const (
	headerOrgID     = "X-Org-Id"
	headerScope     = "X-Org-Scope"
	headerRequestID = "X-Request-Id"
)

// Client implements port.Directory over the platform's internal HTTP
// API. The directory enforces org visibility and campaign ownership;
// this client only transports the requester identity and maps not-found
// responses to nil results.
type Client struct {
	base    url.URL
	httpCli *http.Client
}

// NewClient returns a directory client rooted at base. Timeout bounds
// each lookup; zero falls back to 5 seconds.
func NewClient(base url.URL, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		base:    base,
		httpCli: &http.Client{Timeout: timeout},
	}
}

type orgPayload struct {
	ID string `json:"id"`
}

type campaignPayload struct {
	ID      string  `json:"id"`
	Org     string  `json:"org"`
	Status  string  `json:"status"`
	Pricing *struct {
		Budget     *float64 `json:"budget"`
		DailyLimit *float64 `json:"dailyLimit"`
	} `json:"pricing"`
	UpdateRequest *string `json:"updateRequest"`
}

// FetchOrgs resolves the visible subset of the requested org ids.
func (c *Client) FetchOrgs(ctx context.Context, requester domain.Requester, orgIDs []string) ([]domain.Org, error) {
	if len(orgIDs) == 0 {
		return nil, nil
	}

	u := c.base.JoinPath("internal", "orgs")
	q := u.Query()
	q.Set("ids", strings.Join(orgIDs, ","))
	u.RawQuery = q.Encode()

	var payload []orgPayload
	if err := c.get(ctx, requester, u.String(), &payload); err != nil {
		return nil, err
	}

	orgs := make([]domain.Org, 0, len(payload))
	for _, p := range payload {
		orgs = append(orgs, domain.Org{ID: p.ID})
	}
	return orgs, nil
}

// FetchCampaign resolves a single campaign, nil when unknown or not
// visible to the requester.
func (c *Client) FetchCampaign(ctx context.Context, requester domain.Requester, campaignID string) (*domain.Campaign, error) {
	u := c.base.JoinPath("internal", "campaigns", campaignID)

	var payload campaignPayload
	if err := c.get(ctx, requester, u.String(), &payload); err != nil {
		if err == errNotFound {
			return nil, nil
		}
		return nil, err
	}

	campaign := &domain.Campaign{
		ID:              payload.ID,
		OrgID:           payload.Org,
		Status:          payload.Status,
		UpdateRequestID: payload.UpdateRequest,
	}
	if payload.Pricing != nil {
		campaign.Pricing = domain.Pricing{
			Budget:     toDecimal(payload.Pricing.Budget),
			DailyLimit: toDecimal(payload.Pricing.DailyLimit),
		}
	}
	return campaign, nil
}

var errNotFound = fmt.Errorf("directory: not found")

func (c *Client) get(ctx context.Context, requester domain.Requester, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("directory request: %w", err)
	}
	req.Header.Set(headerOrgID, requester.OrgID)
	req.Header.Set(headerScope, requester.Scope)
	// propagate the inbound correlation id, mint one for background calls
	reqID := middleware.GetReqID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set(headerRequestID, reqID)

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return fmt.Errorf("directory call: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("directory decode: %w", err)
		}
		return nil
	case http.StatusNotFound:
		return errNotFound
	default:
		return fmt.Errorf("directory status %d", resp.StatusCode)
	}
}

func toDecimal(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
