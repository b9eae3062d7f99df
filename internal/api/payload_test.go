package api

import (
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
	"time"
)

func TestJSONPayload(t *testing.T) {
	payload := JSON(map[string]any{"title": "Intro to Go", "is_virtual": true})

	if got := payload.contentType(); got != "application/json" {
		t.Errorf("got content type %q, want application/json", got)
	}

	body, err := payload.encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	data, _ := io.ReadAll(body)
	if !strings.Contains(string(data), `"is_virtual":true`) {
		t.Errorf("JSON body should keep native boolean types, got %s", data)
	}
}

// multipart scalar fields are string-typed: booleans as literal "true"/"false" and
// timestamps as ISO-8601 UTC with millisecond precision.
func TestMultipartPayloadFields(t *testing.T) {
	scheduledAt := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	payload := NewMultipart().
		AddField("title", "Mock exam").
		AddBool("is_virtual", true).
		AddBool("is_featured", false).
		AddInt("duration_mins", 90).
		AddTime("scheduled_at", scheduledAt).
		AddFile("questions", "questions.pdf", strings.NewReader("%PDF-1.7 fake"))

	contentType := payload.contentType()
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("invalid content type %q: %v", contentType, err)
	}
	if mediaType != "multipart/form-data" {
		t.Errorf("got media type %q, want multipart/form-data", mediaType)
	}

	body, err := payload.encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	reader := multipart.NewReader(body, params["boundary"])
	form, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("could not parse multipart body: %v", err)
	}

	wantValues := map[string]string{
		"title":         "Mock exam",
		"is_virtual":    "true",
		"is_featured":   "false",
		"duration_mins": "90",
		"scheduled_at":  "2025-01-01T10:00:00.000Z",
	}
	for field, want := range wantValues {
		values := form.Value[field]
		if len(values) != 1 || values[0] != want {
			t.Errorf("field %q = %v, want [%q]", field, values, want)
		}
	}

	files := form.File["questions"]
	if len(files) != 1 {
		t.Fatalf("expected one file part, got %d", len(files))
	}
	if files[0].Filename != "questions.pdf" {
		t.Errorf("got filename %q, want questions.pdf", files[0].Filename)
	}
	file, err := files[0].Open()
	if err != nil {
		t.Fatalf("could not open file part: %v", err)
	}
	defer file.Close()
	content, _ := io.ReadAll(file)
	if string(content) != "%PDF-1.7 fake" {
		t.Errorf("file content mangled: %q", content)
	}
}

func TestMultipartTimeNonUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2025, 6, 15, 14, 30, 0, 0, loc)

	payload := NewMultipart().AddTime("starts_at", local)

	body, err := payload.encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	_, params, _ := mime.ParseMediaType(payload.contentType())
	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("could not parse multipart body: %v", err)
	}

	if got := form.Value["starts_at"][0]; got != "2025-06-15T12:30:00.000Z" {
		t.Errorf("timestamps must be normalized to UTC, got %q", got)
	}
}

func TestMultipartEncodeSurfacesWriteError(t *testing.T) {
	payload := NewMultipart().AddFile("image", "banner.png", failingReader{})

	if _, err := payload.encode(); err == nil {
		t.Error("expected encode to surface the file read error")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}
