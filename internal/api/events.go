package api

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/mentorbridge/dashboard/internal/api/types"
)

// ListEvents fetches events matching the supplied filters.
// Each present filter becomes exactly one query parameter; absent filters are omitted.
func (c *Client) ListEvents(filters types.EventFilters) ([]types.Event, error) {
	query := url.Values{}
	if filters.Status != "" {
		query.Set("status", filters.Status)
	}
	if filters.IsVirtual != nil {
		query.Set("is_virtual", strconv.FormatBool(*filters.IsVirtual))
	}
	if filters.IsFeatured != nil {
		query.Set("is_featured", strconv.FormatBool(*filters.IsFeatured))
	}
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}

	res, err := c.Get("/events/", query)
	if err != nil {
		return nil, err
	}

	var events []types.Event
	if err := res.Decode(&events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent fetches a single event by id
func (c *Client) GetEvent(id string) (*types.Event, error) {
	res, err := c.Get(fmt.Sprintf("/events/%s", id), nil)
	if err != nil {
		return nil, err
	}

	var event types.Event
	if err := res.Decode(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

// EventInput describes a new or updated event. When Image is set the request is sent
// as a multipart form; otherwise it is plain JSON.
type EventInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsVirtual   bool      `json:"is_virtual"`
	IsFeatured  bool      `json:"is_featured"`
	Location    string    `json:"location,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`

	Image         io.Reader `json:"-"`
	ImageFilename string    `json:"-"`
}

func (in EventInput) payload() Payload {
	if in.Image == nil {
		return JSON(in)
	}
	return NewMultipart().
		AddField("title", in.Title).
		AddField("description", in.Description).
		AddBool("is_virtual", in.IsVirtual).
		AddBool("is_featured", in.IsFeatured).
		AddField("location", in.Location).
		AddTime("starts_at", in.StartsAt).
		AddTime("ends_at", in.EndsAt).
		AddFile("image", in.ImageFilename, in.Image)
}

// CreateEvent creates a new event
func (c *Client) CreateEvent(input EventInput) (*types.Event, error) {
	res, err := c.Post("/events/", input.payload())
	if err != nil {
		return nil, err
	}

	var event types.Event
	if err := res.Decode(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

// UpdateEvent replaces an event wholesale
func (c *Client) UpdateEvent(id string, input EventInput) (*types.Event, error) {
	res, err := c.Put(fmt.Sprintf("/events/%s", id), input.payload())
	if err != nil {
		return nil, err
	}

	var event types.Event
	if err := res.Decode(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

// DeleteEvent removes an event. Deleting an already-removed event surfaces the
// backend's 404 as a not-found APIError which callers may treat as "already gone".
func (c *Client) DeleteEvent(id string) error {
	_, err := c.Delete(fmt.Sprintf("/events/%s", id))
	return err
}

// RegisterForEvent registers the current user as an attendee
func (c *Client) RegisterForEvent(id string) error {
	_, err := c.Post(fmt.Sprintf("/events/%s/register", id), nil)
	return err
}

// AddEventTag attaches a tag to an event
func (c *Client) AddEventTag(id, tag string) error {
	_, err := c.Post(fmt.Sprintf("/events/%s/tags", id), JSON(map[string]string{"tag": tag}))
	return err
}

// ListAttendees fetches the attendees registered for an event
func (c *Client) ListAttendees(id string) ([]types.Attendee, error) {
	res, err := c.Get(fmt.Sprintf("/events/%s/attendees", id), nil)
	if err != nil {
		return nil, err
	}

	var attendees []types.Attendee
	if err := res.Decode(&attendees); err != nil {
		return nil, err
	}
	return attendees, nil
}

// UpdateAttendeeStatus moves an attendee through the pending -> accepted|rejected
// state machine. Transitions are validated by the backend, not here.
func (c *Client) UpdateAttendeeStatus(eventID, attendeeID, status string) (*types.Attendee, error) {
	res, err := c.Patch(
		fmt.Sprintf("/events/%s/attendees/%s", eventID, attendeeID),
		JSON(map[string]string{"status": status}),
	)
	if err != nil {
		return nil, err
	}

	var attendee types.Attendee
	if err := res.Decode(&attendee); err != nil {
		return nil, err
	}
	return &attendee, nil
}
