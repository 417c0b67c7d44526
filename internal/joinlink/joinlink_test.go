package joinlink

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
)

func TestURL(t *testing.T) {
	got := URL("http://localhost:3000", "ABC123")
	want := "http://localhost:3000?room=ABC123"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestImage(t *testing.T) {
	img, err := Image("http://localhost:3000?room=ABC123")
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(img, prefix) {
		t.Fatalf("Expected a PNG data URL, got %q", img[:32])
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(img, prefix))
	if err != nil {
		t.Fatalf("Payload is not valid base64: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("Decoded payload is not a PNG")
	}
}
