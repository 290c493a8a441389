package localdata

import (
	"archive/tar"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func buildTar(t *testing.T, entries map[string]string) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	for name, contents := range entries {
		if strings.HasSuffix(name, "/") {
			if err := tw.WriteHeader(&tar.Header{
				Name:     name,
				Typeflag: tar.TypeDir,
				Mode:     0755,
			}); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := tw.WriteHeader(&tar.Header{
			Name:     name,
			Typeflag: tar.TypeReg,
			Mode:     0644,
			Size:     int64(len(contents)),
		}); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(contents)); err != nil {
			t.Fatal(err)
		}
	}

	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestExtractTar(t *testing.T) {
	archive := buildTar(t, map[string]string{
		"VOCdevkit/":                           "",
		"VOCdevkit/VOC2012/":                   "",
		"VOCdevkit/VOC2012/JPEGImages/a.jpg":   "jpeg bytes",
		"VOCdevkit/VOC2012/ImageSets/Segmentation/train.txt": "a\n",
	})

	dest := t.TempDir()
	if err := extractTar(context.Background(), archive, dest); err != nil {
		t.Fatalf("extractTar() failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dest, "VOCdevkit", "VOC2012", "JPEGImages", "a.jpg"))
	if err != nil {
		t.Fatalf("extracted file missing: %v", err)
	}
	if string(got) != "jpeg bytes" {
		t.Errorf("extracted contents = %q", got)
	}
}

func TestExtractTarCreatesMissingParentDirs(t *testing.T) {
	// devkit tarballs don't always carry explicit directory entries.
	archive := buildTar(t, map[string]string{
		"VOCdevkit/VOC2012/SegmentationClass/a.png": "png bytes",
	})

	dest := t.TempDir()
	if err := extractTar(context.Background(), archive, dest); err != nil {
		t.Fatalf("extractTar() failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dest, "VOCdevkit", "VOC2012", "SegmentationClass", "a.png")); err != nil {
		t.Errorf("extracted file missing: %v", err)
	}
}

func TestExtractTarRefusesEscapingEntries(t *testing.T) {
	archive := buildTar(t, map[string]string{
		"../evil.txt": "oops",
	})

	dest := t.TempDir()
	err := extractTar(context.Background(), archive, dest)
	if err == nil {
		t.Fatal("extractTar() accepted an escaping entry")
	}
	if !strings.Contains(err.Error(), "escapes") {
		t.Errorf("unexpected error: %v", err)
	}

	if _, statErr := os.Stat(filepath.Join(filepath.Dir(dest), "evil.txt")); statErr == nil {
		t.Error("escaping entry was written outside the extraction root")
	}
}

func TestExtractTarHonoursCancellation(t *testing.T) {
	archive := buildTar(t, map[string]string{"a.txt": "x"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := extractTar(ctx, archive, t.TempDir()); err == nil {
		t.Error("extractTar() ignored a cancelled context")
	}
}
