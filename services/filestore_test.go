// file: services/filestore_test.go
package services

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// makeFileHeader builds a real multipart.FileHeader whose Open works, by
// round-tripping a form through the multipart reader.
func makeFileHeader(t *testing.T, name, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="attachments"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r := multipart.NewReader(&buf, w.Boundary())
	form, err := r.ReadForm(32 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["attachments"][0]
}

func newTestStore(t *testing.T) *LocalFileStore {
	t.Helper()
	base := t.TempDir()
	return NewLocalFileStore(
		filepath.Join(base, "uploads"),
		filepath.Join(base, "staging"),
		1024,
		[]string{"application/pdf", "text/plain"},
		[]string{".pdf", ".txt"},
	)
}

func TestStageRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fileName    string
		contentType string
		content     []byte
		wantPart    string
	}{
		{"oversized", "big.pdf", "application/pdf", bytes.Repeat([]byte("x"), 2048), "maximum size"},
		{"bad extension", "tool.exe", "application/pdf", []byte("MZ"), "extension"},
		{"bad content type", "report.pdf", "application/x-msdownload", []byte("data"), "content type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := newTestStore(t)
			fh := makeFileHeader(t, tt.fileName, tt.contentType, tt.content)
			_, err := store.Stage(fh)
			if err == nil {
				t.Fatal("expected rejection")
			}
			if !strings.Contains(err.Error(), tt.wantPart) {
				t.Errorf("error %q does not mention %q", err, tt.wantPart)
			}
			if !strings.Contains(err.Error(), tt.fileName) {
				t.Errorf("error %q does not name the file %q", err, tt.fileName)
			}
		})
	}
}

func TestStageCommitDiscard(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	content := []byte("hello attachment")
	fh := makeFileHeader(t, "notes.txt", "text/plain; charset=utf-8", content)

	stored, err := store.Stage(fh)
	if err != nil {
		t.Fatalf("Stage failed: %v", err)
	}
	if stored.FileName != "notes.txt" {
		t.Errorf("FileName = %q", stored.FileName)
	}
	if stored.Size != uint64(len(content)) {
		t.Errorf("Size = %d, want %d", stored.Size, len(content))
	}
	if stored.ContentType != "text/plain" {
		t.Errorf("ContentType = %q, charset parameter should be stripped", stored.ContentType)
	}
	wantHash := sha256.Sum256(content)
	if stored.SHA256 != hex.EncodeToString(wantHash[:]) {
		t.Errorf("SHA256 = %q, want %q", stored.SHA256, hex.EncodeToString(wantHash[:]))
	}
	if !strings.HasSuffix(stored.StoredName, ".txt") {
		t.Errorf("StoredName = %q should keep the extension", stored.StoredName)
	}
	if stored.StoredName == "notes.txt" {
		t.Error("StoredName must not reuse the client filename")
	}
	if _, err := os.Stat(stored.Path); err != nil {
		t.Fatalf("staged file missing: %v", err)
	}

	final := store.FinalPath(stored, "challenges/7")
	if err := store.Commit([]*StoredFile{stored}, "challenges/7"); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if stored.Path != final {
		t.Errorf("Path after commit = %q, want %q", stored.Path, final)
	}
	got, err := os.ReadFile(stored.Path)
	if err != nil {
		t.Fatalf("committed file missing: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Error("committed content differs from upload")
	}

	store.Discard([]*StoredFile{stored})
	if _, err := os.Stat(stored.Path); !os.IsNotExist(err) {
		t.Error("Discard should remove the file")
	}
	// Discarding again must be harmless.
	store.Discard([]*StoredFile{stored})
}
