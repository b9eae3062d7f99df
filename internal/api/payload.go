package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"time"
)

// Payload is a request body variant. The variant chosen by the caller determines the
// request content type: JSON(...) sends application/json, NewMultipart() sends
// multipart/form-data with the writer's boundary.
type Payload interface {
	contentType() string
	encode() (io.Reader, error)
}

// JSON wraps a JSON-serializable value as a request body
func JSON(v any) Payload {
	return jsonPayload{v: v}
}

type jsonPayload struct {
	v any
}

func (p jsonPayload) contentType() string {
	return "application/json"
}

func (p jsonPayload) encode() (io.Reader, error) {
	data, err := json.Marshal(p.v)
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON body: %w", err)
	}
	return bytes.NewReader(data), nil
}

// MultipartPayload builds a multipart/form-data request body mixing scalar fields and
// file parts. The platform API expects string-typed scalars in multipart bodies:
// booleans must be the literal strings "true"/"false" and timestamps must be ISO-8601.
type MultipartPayload struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error // first write error, surfaced on encode
}

func NewMultipart() *MultipartPayload {
	p := &MultipartPayload{}
	p.writer = multipart.NewWriter(&p.buf)
	return p
}

// AddField appends a scalar string field
func (p *MultipartPayload) AddField(name, value string) *MultipartPayload {
	if p.err == nil {
		p.err = p.writer.WriteField(name, value)
	}
	return p
}

// AddBool appends a boolean as the literal string "true" or "false"
func (p *MultipartPayload) AddBool(name string, value bool) *MultipartPayload {
	return p.AddField(name, strconv.FormatBool(value))
}

// AddInt appends an integer as its decimal string form
func (p *MultipartPayload) AddInt(name string, value int) *MultipartPayload {
	return p.AddField(name, strconv.Itoa(value))
}

// AddTime appends a timestamp as an ISO-8601 UTC string with millisecond precision
// (e.g. "2025-01-01T10:00:00.000Z")
func (p *MultipartPayload) AddTime(name string, value time.Time) *MultipartPayload {
	return p.AddField(name, value.UTC().Format("2006-01-02T15:04:05.000Z07:00"))
}

// AddFile appends a file part with the given field and file names
func (p *MultipartPayload) AddFile(name, filename string, content io.Reader) *MultipartPayload {
	if p.err != nil {
		return p
	}
	part, err := p.writer.CreateFormFile(name, filename)
	if err != nil {
		p.err = err
		return p
	}
	if _, err := io.Copy(part, content); err != nil {
		p.err = err
	}
	return p
}

func (p *MultipartPayload) contentType() string {
	return p.writer.FormDataContentType()
}

func (p *MultipartPayload) encode() (io.Reader, error) {
	if p.err != nil {
		return nil, fmt.Errorf("building multipart body: %w", p.err)
	}
	if err := p.writer.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart body: %w", err)
	}
	return &p.buf, nil
}
