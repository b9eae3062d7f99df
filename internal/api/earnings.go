package api

import (
	"net/url"

	"github.com/mentorbridge/dashboard/internal/api/types"
)

// EarningsSummary fetches the professional's earnings totals
func (c *Client) EarningsSummary() (*types.EarningsSummary, error) {
	res, err := c.Get("/earnings/summary", nil)
	if err != nil {
		return nil, err
	}

	var summary types.EarningsSummary
	if err := res.Decode(&summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Transactions fetches the professional's transaction history, optionally filtered by kind
func (c *Client) Transactions(kind string) ([]types.Transaction, error) {
	query := url.Values{}
	if kind != "" {
		query.Set("kind", kind)
	}

	res, err := c.Get("/earnings/transactions", query)
	if err != nil {
		return nil, err
	}

	var transactions []types.Transaction
	if err := res.Decode(&transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
