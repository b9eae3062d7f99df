package handlers

import (
	"io"
	"testing"
)

type closerSpy struct {
	closed bool
}

func (c *closerSpy) Read([]byte) (int, error) { return 0, io.EOF }
func (c *closerSpy) Close() error             { c.closed = true; return nil }

func TestCloseUpload(t *testing.T) {
	spy := &closerSpy{}
	closeUpload(spy)
	if !spy.closed {
		t.Error("closeUpload did not close the upload")
	}

	// nil and non-closer readers are ignored
	closeUpload(nil)
	closeUpload(io.LimitReader(spy, 0))
}
