package elastic

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"stretched", "stretched"},
		{"drag-right", "drag-right"},
		{"frame.01", "frame.01"},
		{"past left edge", "past_left_edge"},
		{"a/b\\c", "a_b_c"},
		{"100%", "100_"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pix := []byte{
		50, 25, 0, 100, // half-ish alpha
		10, 20, 30, 255, // opaque, unchanged
		0, 0, 0, 0, // transparent, unchanged
	}
	unpremultiply(pix)
	want := []byte{127, 63, 0, 100, 10, 20, 30, 255, 0, 0, 0, 0}
	for i := range want {
		if pix[i] != want[i] {
			t.Fatalf("pix = %v, want %v", pix, want)
		}
	}
}

func TestPanelScreenshotQueue(t *testing.T) {
	p := NewPanel(RunConfig{})
	p.Screenshot("a")
	p.Screenshot("b")
	if len(p.shots) != 2 || p.shots[0] != "a" || p.shots[1] != "b" {
		t.Errorf("queue = %v, want [a b]", p.shots)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("PNG file is empty")
	}

	if err := writePNG(filepath.Join(t.TempDir(), "missing", "shot.png"), img); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
