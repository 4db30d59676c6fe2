package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dhamakuldeep-lab/sukhverse-core/core/dashboard"
)

// AnalyticsClient talks to the analytics service.
type AnalyticsClient struct {
	client
}

func NewAnalyticsClient(base string, hc *http.Client, tokens TokenSource) *AnalyticsClient {
	return &AnalyticsClient{newClient("analytics", base, hc, tokens)}
}

func (c *AnalyticsClient) Dashboard(ctx context.Context, workshopID int) (dashboard.Snapshot, error) {
	query := url.Values{}
	query.Set("workshop_id", strconv.Itoa(workshopID))

	var snap dashboard.Snapshot
	err := c.doJSON(ctx, "getDashboard", http.MethodGet, "/dashboard", query, nil, &snap)
	return snap, err
}

func (c *AnalyticsClient) AtRisk(ctx context.Context) ([]dashboard.AtRiskEntry, error) {
	var entries []dashboard.AtRiskEntry
	err := c.doJSON(ctx, "getAtRisk", http.MethodGet, "/at-risk", nil, nil, &entries)
	return entries, err
}
