package api

import (
	"fmt"
	"io"
	"time"

	"github.com/mentorbridge/dashboard/internal/api/types"
)

// ListExams fetches the caller's quick exams
func (c *Client) ListExams() ([]types.Exam, error) {
	res, err := c.Get("/exams/", nil)
	if err != nil {
		return nil, err
	}

	var exams []types.Exam
	if err := res.Decode(&exams); err != nil {
		return nil, err
	}
	return exams, nil
}

// GetExam fetches a single exam by id
func (c *Client) GetExam(id string) (*types.Exam, error) {
	res, err := c.Get(fmt.Sprintf("/exams/%s", id), nil)
	if err != nil {
		return nil, err
	}

	var exam types.Exam
	if err := res.Decode(&exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

// ExamInput describes a new or updated quick exam. The question and answer documents
// are PDFs; when either is present the request is sent as a multipart form.
type ExamInput struct {
	Title        string    `json:"title"`
	Subject      string    `json:"subject"`
	DurationMins int       `json:"duration_mins"`
	ScheduledAt  time.Time `json:"scheduled_at"`

	Questions         io.Reader `json:"-"`
	QuestionsFilename string    `json:"-"`
	Answers           io.Reader `json:"-"`
	AnswersFilename   string    `json:"-"`
}

func (in ExamInput) payload() Payload {
	if in.Questions == nil && in.Answers == nil {
		return JSON(in)
	}
	p := NewMultipart().
		AddField("title", in.Title).
		AddField("subject", in.Subject).
		AddInt("duration_mins", in.DurationMins).
		AddTime("scheduled_at", in.ScheduledAt)
	if in.Questions != nil {
		p.AddFile("questions", in.QuestionsFilename, in.Questions)
	}
	if in.Answers != nil {
		p.AddFile("answers", in.AnswersFilename, in.Answers)
	}
	return p
}

// CreateExam creates a new quick exam
func (c *Client) CreateExam(input ExamInput) (*types.Exam, error) {
	res, err := c.Post("/exams/", input.payload())
	if err != nil {
		return nil, err
	}

	var exam types.Exam
	if err := res.Decode(&exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

// UpdateExam replaces an exam wholesale
func (c *Client) UpdateExam(id string, input ExamInput) (*types.Exam, error) {
	res, err := c.Put(fmt.Sprintf("/exams/%s", id), input.payload())
	if err != nil {
		return nil, err
	}

	var exam types.Exam
	if err := res.Decode(&exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

// DeleteExam removes an exam
func (c *Client) DeleteExam(id string) error {
	_, err := c.Delete(fmt.Sprintf("/exams/%s", id))
	return err
}

// ExamStatistics fetches aggregate statistics for an exam
func (c *Client) ExamStatistics(id string) (*types.ExamStatistics, error) {
	res, err := c.Get(fmt.Sprintf("/exams/%s/statistics", id), nil)
	if err != nil {
		return nil, err
	}

	var stats types.ExamStatistics
	if err := res.Decode(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ExamResults fetches the per-student results for an exam
func (c *Client) ExamResults(id string) ([]types.ExamResult, error) {
	res, err := c.Get(fmt.Sprintf("/exams/%s/results", id), nil)
	if err != nil {
		return nil, err
	}

	var results []types.ExamResult
	if err := res.Decode(&results); err != nil {
		return nil, err
	}
	return results, nil
}
