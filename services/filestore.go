// file: services/filestore.go
package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"InnoHub/config"
	"InnoHub/logger"

	"github.com/google/uuid"
)

// StoredFile is the metadata the file store returns for a validated and
// persisted upload.
type StoredFile struct {
	FileName    string
	StoredName  string
	Path        string
	Size        uint64
	ContentType string
	SHA256      string
	UploadedAt  time.Time
}

// FileStore validates and persists submission attachments. Files are
// staged first; Commit moves a whole batch into its final scope, Discard
// removes a batch that will never be committed.
type FileStore interface {
	MaxFileBytes() int64
	AllowedTypes() []string
	AllowedExts() []string

	Stage(fh *multipart.FileHeader) (*StoredFile, error)
	Commit(files []*StoredFile, scope string) error
	Discard(files []*StoredFile)

	// FinalPath is where a staged file will live once committed under the
	// given scope.
	FinalPath(f *StoredFile, scope string) string
}

// LocalFileStore keeps uploads on the local disk under a base directory,
// one subdirectory per scope (challenges/<id>).
type LocalFileStore struct {
	baseDir    string
	stagingDir string
	maxBytes   int64
	mimes      []string
	exts       []string
}

func NewLocalFileStore(baseDir, stagingDir string, maxBytes int64, mimes, exts []string) *LocalFileStore {
	return &LocalFileStore{
		baseDir:    baseDir,
		stagingDir: stagingDir,
		maxBytes:   maxBytes,
		mimes:      mimes,
		exts:       exts,
	}
}

func NewLocalFileStoreFromConfig() *LocalFileStore {
	return NewLocalFileStore(
		config.App.UploadDir,
		config.App.StagingDir,
		config.App.MaxUploadBytes,
		config.App.AllowedMIMEs,
		config.App.AllowedExts,
	)
}

func (s *LocalFileStore) MaxFileBytes() int64    { return s.maxBytes }
func (s *LocalFileStore) AllowedTypes() []string { return s.mimes }
func (s *LocalFileStore) AllowedExts() []string  { return s.exts }

// Stage validates one upload and writes it into the staging directory
// under a generated name. The returned Path points at the staged copy
// until Commit relocates it.
func (s *LocalFileStore) Stage(fh *multipart.FileHeader) (*StoredFile, error) {
	if fh.Size > s.maxBytes {
		return nil, fmt.Errorf("%s: file exceeds the maximum size of %d bytes", fh.Filename, s.maxBytes)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !containsString(s.exts, ext) {
		return nil, fmt.Errorf("%s: file extension %q is not allowed", fh.Filename, ext)
	}

	contentType := fh.Header.Get("Content-Type")
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	if !containsString(s.mimes, contentType) {
		return nil, fmt.Errorf("%s: content type %q is not allowed", fh.Filename, contentType)
	}

	if err := os.MkdirAll(s.stagingDir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: cannot prepare staging directory: %w", fh.Filename, err)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%s: cannot read upload: %w", fh.Filename, err)
	}
	defer src.Close()

	storedName := uuid.New().String() + ext
	staged := filepath.Join(s.stagingDir, storedName)
	dst, err := os.Create(staged)
	if err != nil {
		return nil, fmt.Errorf("%s: cannot store upload: %w", fh.Filename, err)
	}

	hasher := sha256.New()
	written, err := io.Copy(dst, io.TeeReader(src, hasher))
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(staged)
		return nil, fmt.Errorf("%s: cannot store upload: %w", fh.Filename, err)
	}

	return &StoredFile{
		FileName:    fh.Filename,
		StoredName:  storedName,
		Path:        staged,
		Size:        uint64(written),
		ContentType: contentType,
		SHA256:      hex.EncodeToString(hasher.Sum(nil)),
		UploadedAt:  time.Now(),
	}, nil
}

// Commit moves a staged batch into its final scope directory. On the
// first failure the whole batch is discarded so no partial set survives.
func (s *LocalFileStore) Commit(files []*StoredFile, scope string) error {
	dir := filepath.Join(s.baseDir, scope)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.Discard(files)
		return fmt.Errorf("cannot prepare upload directory: %w", err)
	}
	for _, f := range files {
		final := filepath.Join(dir, f.StoredName)
		if err := os.Rename(f.Path, final); err != nil {
			s.Discard(files)
			return fmt.Errorf("cannot finalize %s: %w", f.FileName, err)
		}
		f.Path = final
	}
	return nil
}

// Discard removes every file of a batch, staged or already moved.
func (s *LocalFileStore) Discard(files []*StoredFile) {
	for _, f := range files {
		if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
			logger.Warn("Failed to remove staged upload", "path", f.Path, "error", err)
		}
	}
}

// Recorded on the attachment row before the move happens.
func (s *LocalFileStore) FinalPath(f *StoredFile, scope string) string {
	return filepath.Join(s.baseDir, scope, f.StoredName)
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
