package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path"
	"strings"
)

// Entry is one file to place in an archive.
type Entry struct {
	Filename string
	Data     []byte
}

// Archive packs the entries into an in-memory zip. Duplicate or empty
// filenames are disambiguated so no entry silently overwrites another.
func Archive(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	seen := make(map[string]struct{}, len(entries))
	for i, entry := range entries {
		base := path.Base(strings.TrimSpace(entry.Filename))
		if base == "" || base == "." || base == "/" {
			base = fmt.Sprintf("file-%d", i+1)
		}
		name := base
		ext := path.Ext(base)
		stem := strings.TrimSuffix(base, ext)
		for n := 2; ; n++ {
			if _, taken := seen[name]; !taken {
				break
			}
			name = fmt.Sprintf("%s-%d%s", stem, n, ext)
		}
		seen[name] = struct{}{}
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("zip: create %s: %w", name, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("zip: write %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: close archive: %w", err)
	}
	return buf.Bytes(), nil
}
