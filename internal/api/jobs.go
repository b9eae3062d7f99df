package api

import (
	"fmt"
	"net/url"

	"github.com/mentorbridge/dashboard/internal/api/types"
)

// ListApplications fetches job applications matching the supplied filters
func (c *Client) ListApplications(filters types.ApplicationFilters) ([]types.JobApplication, error) {
	query := url.Values{}
	if filters.JobID != "" {
		query.Set("job_id", filters.JobID)
	}
	if filters.Status != "" {
		query.Set("status", filters.Status)
	}
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}

	res, err := c.Get("/applications/", query)
	if err != nil {
		return nil, err
	}

	var applications []types.JobApplication
	if err := res.Decode(&applications); err != nil {
		return nil, err
	}
	return applications, nil
}

// UpdateApplicationStatus moves an application through the pending -> accepted|rejected
// state machine. Transitions are validated by the backend, not here.
func (c *Client) UpdateApplicationStatus(id, status string) (*types.JobApplication, error) {
	res, err := c.Patch(
		fmt.Sprintf("/applications/%s/status", id),
		JSON(map[string]string{"status": status}),
	)
	if err != nil {
		return nil, err
	}

	var application types.JobApplication
	if err := res.Decode(&application); err != nil {
		return nil, err
	}
	return &application, nil
}

// ApplicantEmail is a message sent to an applicant through the platform
type ApplicantEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendApplicantEmail asks the platform to email the applicant
func (c *Client) SendApplicantEmail(id string, email ApplicantEmail) error {
	_, err := c.Post(fmt.Sprintf("/applications/%s/send-email", id), JSON(email))
	return err
}
