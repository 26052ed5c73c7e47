package zip

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
)

func readArchive(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	out := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		out[f.Name] = content
	}
	return out
}

func TestArchive(t *testing.T) {
	data, err := Archive([]Entry{
		{Filename: "gen-1-0.png", Data: []byte("first")},
		{Filename: "generations/gen-1-1.png", Data: []byte("second")},
	})
	if err != nil {
		t.Fatalf("archive: %v", err)
	}

	files := readArchive(t, data)
	if len(files) != 2 {
		t.Fatalf("files = %d, want 2", len(files))
	}
	if string(files["gen-1-0.png"]) != "first" {
		t.Fatalf("gen-1-0.png = %q", files["gen-1-0.png"])
	}
	// Directory components are stripped.
	if string(files["gen-1-1.png"]) != "second" {
		t.Fatalf("gen-1-1.png = %q", files["gen-1-1.png"])
	}
}

func TestArchiveDisambiguatesDuplicates(t *testing.T) {
	data, err := Archive([]Entry{
		{Filename: "image.png", Data: []byte("a")},
		{Filename: "image.png", Data: []byte("b")},
		{Filename: "image.png", Data: []byte("c")},
		{Filename: "", Data: []byte("d")},
	})
	if err != nil {
		t.Fatalf("archive: %v", err)
	}

	files := readArchive(t, data)
	if len(files) != 4 {
		t.Fatalf("files = %d, want 4", len(files))
	}
	if string(files["image.png"]) != "a" || string(files["image-2.png"]) != "b" || string(files["image-3.png"]) != "c" {
		t.Fatalf("unexpected contents: %v", keys(files))
	}
	if string(files["file-4"]) != "d" {
		t.Fatalf("empty filename fallback missing: %v", keys(files))
	}
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
