package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dhamakuldeep-lab/sukhverse-core/core/workshop"
)

// WorkshopClient talks to the workshop service.
type WorkshopClient struct {
	client
}

func NewWorkshopClient(base string, hc *http.Client, tokens TokenSource) *WorkshopClient {
	return &WorkshopClient{newClient("workshop", base, hc, tokens)}
}

func (c *WorkshopClient) Create(ctx context.Context, draft workshop.WorkshopDraft) (workshop.Workshop, error) {
	var ws workshop.Workshop
	err := c.doJSON(ctx, "create", http.MethodPost, "", nil, draft, &ws)
	return ws, err
}

func (c *WorkshopClient) Workshop(ctx context.Context, id int) (workshop.Workshop, error) {
	var ws workshop.Workshop
	err := c.doJSON(ctx, "get", http.MethodGet, fmt.Sprintf("/%d", id), nil, nil, &ws)
	return ws, err
}

func (c *WorkshopClient) UpdateProgress(ctx context.Context, ev workshop.ProgressEvent) error {
	return c.doJSON(ctx, "updateProgress", http.MethodPost, "/progress", nil, ev, nil)
}
