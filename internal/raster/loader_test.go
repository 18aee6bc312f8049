package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestDecode_PNG(t *testing.T) {
	var buf bytes.Buffer
	src := createTestImage(12, 8, color.White)
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode: %v", err)
	}

	img, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 8 {
		t.Errorf("decoded dimensions = %dx%d, want 12x8", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected error decoding garbage bytes")
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, createTestImage(20, 10, color.White)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 20 {
		t.Errorf("width = %d, want 20", img.Bounds().Dx())
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error loading a missing file")
	}
}

func TestDownscale(t *testing.T) {
	src := createTestImage(1000, 500, color.White)

	small := Downscale(src, 100)
	if small.Bounds().Dx() > 100 || small.Bounds().Dy() > 100 {
		t.Errorf("downscaled to %dx%d, want both ≤ 100",
			small.Bounds().Dx(), small.Bounds().Dy())
	}

	// Aspect ratio preserved.
	if small.Bounds().Dx() != 100 || small.Bounds().Dy() != 50 {
		t.Errorf("downscaled to %dx%d, want 100x50",
			small.Bounds().Dx(), small.Bounds().Dy())
	}
}

func TestDownscale_NoOp(t *testing.T) {
	src := createTestImage(50, 50, color.White)

	if got := Downscale(src, 100); got != image.Image(src) {
		t.Error("image within the limit should be returned unchanged")
	}
	if got := Downscale(src, 0); got != image.Image(src) {
		t.Error("maxDim 0 should disable downscaling")
	}
}
