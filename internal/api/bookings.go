package api

import (
	"fmt"
	"net/url"
	"time"

	"github.com/mentorbridge/dashboard/internal/api/types"
)

// ListBookings fetches bookings matching the supplied filters
func (c *Client) ListBookings(filters types.BookingFilters) ([]types.Booking, error) {
	query := url.Values{}
	if filters.Status != "" {
		query.Set("status", filters.Status)
	}
	if filters.From != nil {
		query.Set("from", filters.From.UTC().Format(time.RFC3339))
	}
	if filters.To != nil {
		query.Set("to", filters.To.UTC().Format(time.RFC3339))
	}

	res, err := c.Get("/bookings/", query)
	if err != nil {
		return nil, err
	}

	var bookings []types.Booking
	if err := res.Decode(&bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking fetches a single booking by id
func (c *Client) GetBooking(id string) (*types.Booking, error) {
	res, err := c.Get(fmt.Sprintf("/bookings/%s", id), nil)
	if err != nil {
		return nil, err
	}

	var booking types.Booking
	if err := res.Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// BookingInput describes a new or rescheduled booking. All fields are optional on
// update so a PATCH carries only what changed; the create path requires the schedule.
type BookingInput struct {
	MentorID     string     `json:"mentor_id,omitempty"`
	Topic        string     `json:"topic,omitempty"`
	ScheduledAt  *time.Time `json:"scheduled_at,omitempty"`
	DurationMins int        `json:"duration_mins,omitempty"`
}

// CreateBooking books a session with a mentor
func (c *Client) CreateBooking(input BookingInput) (*types.Booking, error) {
	res, err := c.Post("/bookings/", JSON(input))
	if err != nil {
		return nil, err
	}

	var booking types.Booking
	if err := res.Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBooking applies a partial update (reschedule, topic change) to a booking
func (c *Client) UpdateBooking(id string, input BookingInput) (*types.Booking, error) {
	res, err := c.Patch(fmt.Sprintf("/bookings/%s", id), JSON(input))
	if err != nil {
		return nil, err
	}

	var booking types.Booking
	if err := res.Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking cancels a booking. Cancelling an already-removed booking surfaces the
// backend's 404 as a not-found APIError which callers may treat as "already gone".
func (c *Client) CancelBooking(id string) error {
	_, err := c.Delete(fmt.Sprintf("/bookings/%s", id))
	return err
}

// DownloadReceipt fetches the booking receipt as raw bytes for the caller to save.
// The content is not decoded or parsed.
func (c *Client) DownloadReceipt(id string) ([]byte, error) {
	res, err := c.Get(fmt.Sprintf("/bookings/%s/receipt", id), nil)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// BookingStatistics fetches the caller's booking counts by status
func (c *Client) BookingStatistics() (*types.BookingStats, error) {
	res, err := c.Get("/bookings/stats", nil)
	if err != nil {
		return nil, err
	}

	var stats types.BookingStats
	if err := res.Decode(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
