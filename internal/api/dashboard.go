package api

import (
	"net/url"

	"github.com/mentorbridge/dashboard/internal/api/types"
)

// DashboardOverview fetches the professional dashboard's headline figures
func (c *Client) DashboardOverview() (*types.Overview, error) {
	res, err := c.Get("/dashboard/overview", nil)
	if err != nil {
		return nil, err
	}

	var overview types.Overview
	if err := res.Decode(&overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// DashboardCourses fetches the professional's courses
func (c *Client) DashboardCourses() ([]types.Course, error) {
	res, err := c.Get("/dashboard/courses", nil)
	if err != nil {
		return nil, err
	}

	var courses []types.Course
	if err := res.Decode(&courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// DashboardStudents fetches the students enrolled with the professional
func (c *Client) DashboardStudents() ([]types.Student, error) {
	res, err := c.Get("/dashboard/students", nil)
	if err != nil {
		return nil, err
	}

	var students []types.Student
	if err := res.Decode(&students); err != nil {
		return nil, err
	}
	return students, nil
}

// DashboardMentorships fetches the professional's active mentorships
func (c *Client) DashboardMentorships() ([]types.Mentorship, error) {
	res, err := c.Get("/dashboard/mentorships", nil)
	if err != nil {
		return nil, err
	}

	var mentorships []types.Mentorship
	if err := res.Decode(&mentorships); err != nil {
		return nil, err
	}
	return mentorships, nil
}

// DashboardExams fetches the exam summary rows shown on the professional dashboard.
// Full exam management lives on the /exams endpoints; this is the read-only digest.
func (c *Client) DashboardExams() ([]types.ExamOverview, error) {
	res, err := c.Get("/dashboard/exams", nil)
	if err != nil {
		return nil, err
	}

	var exams []types.ExamOverview
	if err := res.Decode(&exams); err != nil {
		return nil, err
	}
	return exams, nil
}

// DashboardFinances fetches the dashboard's financial summary panel
func (c *Client) DashboardFinances() (*types.Finances, error) {
	res, err := c.Get("/dashboard/finances", nil)
	if err != nil {
		return nil, err
	}

	var finances types.Finances
	if err := res.Decode(&finances); err != nil {
		return nil, err
	}
	return &finances, nil
}

// DashboardAnalytics fetches a time series for the requested data type
// (e.g. "earnings", "enrollments", "exam-scores")
func (c *Client) DashboardAnalytics(dataType string) (*types.Analytics, error) {
	query := url.Values{}
	if dataType != "" {
		query.Set("data_type", dataType)
	}

	res, err := c.Get("/dashboard/analytics", query)
	if err != nil {
		return nil, err
	}

	var analytics types.Analytics
	if err := res.Decode(&analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// ExportAnalytics fetches the analytics export as a CSV blob.
// The bytes are returned as-is for the caller to serve or save.
func (c *Client) ExportAnalytics(dataType string) ([]byte, error) {
	query := url.Values{}
	if dataType != "" {
		query.Set("data_type", dataType)
	}

	res, err := c.Get("/dashboard/export", query)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}
