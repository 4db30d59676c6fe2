package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dhamakuldeep-lab/sukhverse-core/core/dashboard"
)

// CertificateClient talks to the certificate service.
type CertificateClient struct {
	client
}

func NewCertificateClient(base string, hc *http.Client, tokens TokenSource) *CertificateClient {
	return &CertificateClient{newClient("certificate", base, hc, tokens)}
}

func (c *CertificateClient) ListForUser(ctx context.Context, userID int) ([]dashboard.Certificate, error) {
	var certs []dashboard.Certificate
	err := c.doJSON(ctx, "listForUser", http.MethodGet, fmt.Sprintf("/user/%d", userID), nil, nil, &certs)
	return certs, err
}
