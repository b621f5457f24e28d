package ledger

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/go-service-errors/internal/domain"
	"github.com/jsamuelsen11/go-service-errors/internal/domain/account"
	"github.com/jsamuelsen11/go-service-errors/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-service-errors/internal/ports"
)

var _ ports.LedgerClient = (*Client)(nil)

// Client implements [ports.LedgerClient] over HTTP. The underlying
// [httpclient.Client] supplies circuit breaking, retries for reads, tracing,
// and ID propagation.
type Client struct {
	http *httpclient.Client
	req  *Requester
}

// NewClient creates a Client that sends requests through client. The
// client's BaseURL should point at the ledger API root.
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{
		http: client,
		req:  NewRequester(client, logger),
	}
}

// GetAccount fetches GET /api/v1/accounts/{id}. A 404 without a ledger error
// code becomes ACCOUNT_NOT_FOUND.
func (c *Client) GetAccount(ctx context.Context, id string) (*account.Account, error) {
	path := "/api/v1/accounts/" + url.PathEscape(id)

	var dto AccountDTO
	if err := c.req.Get(ctx, path, http.StatusOK, &dto); err != nil {
		return nil, accountNotFound(err, id)
	}
	return ToDomainAccount(&dto), nil
}

// PostTransfer books t with POST /api/v1/transfers. Ledger rejections keep
// their downstream error code.
func (c *Client) PostTransfer(ctx context.Context, t *account.Transfer) (*account.Transfer, error) {
	var dto TransferDTO
	if err := c.req.Post(ctx, "/api/v1/transfers", http.StatusCreated, ToTransferRequest(t), &dto); err != nil {
		return nil, err
	}
	return ToDomainTransfer(&dto), nil
}

// accountNotFound narrows the generic RESOURCE_NOT_FOUND to the account that
// was asked for. Other errors are returned unchanged.
func accountNotFound(err error, id string) error {
	var de domain.DomainError
	if !errors.As(err, &de) || de.Code() != domain.CodeResourceNotFound.Code() {
		return err
	}
	return domain.BusinessBuilderFor(domain.CodeAccountNotFound).
		Detail("accountId", id).
		Detail(domain.DetailCategory, domain.BusinessRule).
		Cause(err).
		Build()
}
