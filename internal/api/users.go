package api

import (
	"io"

	"github.com/mentorbridge/dashboard/internal/api/types"
)

// CurrentUser fetches the authenticated user's profile
func (c *Client) CurrentUser() (*types.UserProfile, error) {
	res, err := c.Get("/users/me", nil)
	if err != nil {
		return nil, err
	}

	var profile types.UserProfile
	if err := res.Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ProfileUpdate is the full-resource profile update. When Avatar is set the update is
// sent as a multipart form; otherwise it is plain JSON.
type ProfileUpdate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Bio      string `json:"bio,omitempty"`

	Avatar         io.Reader `json:"-"`
	AvatarFilename string    `json:"-"`
}

// UpdateProfile replaces the current user's profile wholesale
func (c *Client) UpdateProfile(update ProfileUpdate) (*types.UserProfile, error) {
	var payload Payload
	if update.Avatar != nil {
		payload = NewMultipart().
			AddField("name", update.Name).
			AddField("email", update.Email).
			AddField("phone", update.Phone).
			AddField("location", update.Location).
			AddField("bio", update.Bio).
			AddFile("avatar", update.AvatarFilename, update.Avatar)
	} else {
		payload = JSON(update)
	}

	res, err := c.Put("/users/me", payload)
	if err != nil {
		return nil, err
	}

	var profile types.UserProfile
	if err := res.Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
