package mustache

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// FilesystemStorage stores each template as one file in a flat directory.
// The template name is the file name without the configured extension;
// files with any other extension and subdirectories are ignored.
//
// Directory structure:
//
//	<root>/
//	  layout.mustache   # template "layout"
//	  header.mustache   # template "header"
//	  notes.txt         # ignored
type FilesystemStorage struct {
	mu        sync.RWMutex
	root      string
	extension string
	closed    bool
}

// FilesystemStorageDriver is the driver for creating FilesystemStorage instances.
type FilesystemStorageDriver struct{}

func init() {
	RegisterStorageDriver(StorageDriverNameFilesystem, &FilesystemStorageDriver{})
}

// Open creates a new FilesystemStorage instance.
// The connection string is the root directory path.
func (d *FilesystemStorageDriver) Open(connectionString string) (TemplateStorage, error) {
	return NewFilesystemStorage(connectionString)
}

// NewFilesystemStorage creates a filesystem storage for .mustache files.
// The root directory will be created if it doesn't exist.
func NewFilesystemStorage(root string) (*FilesystemStorage, error) {
	return NewFilesystemStorageWithExtension(root, DefaultTemplateExtension)
}

// NewFilesystemStorageWithExtension creates a filesystem storage for files
// ending in extension. A missing leading dot is added.
func NewFilesystemStorageWithExtension(root, extension string) (*FilesystemStorage, error) {
	if root == "" {
		return nil, &StorageError{Message: ErrMsgInvalidStorageRoot}
	}
	if extension == "" {
		extension = DefaultTemplateExtension
	}
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	if err := os.MkdirAll(root, FilesystemDirPermissions); err != nil {
		return nil, &StorageError{
			Message: ErrMsgCreateStorageDir,
			Name:    root,
			Cause:   err,
		}
	}

	return &FilesystemStorage{
		root:      root,
		extension: extension,
	}, nil
}

// Root returns the storage directory
func (s *FilesystemStorage) Root() string {
	return s.root
}

// Extension returns the template file extension, including the dot
func (s *FilesystemStorage) Extension() string {
	return s.extension
}

// TemplateName returns the template name for a file path and whether the
// file holds a template at all.
func (s *FilesystemStorage) TemplateName(path string) (string, bool) {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, s.extension) {
		return "", false
	}
	name := strings.TrimSuffix(base, s.extension)
	if name == "" {
		return "", false
	}
	return name, true
}

// Get retrieves a template by name.
func (s *FilesystemStorage) Get(ctx context.Context, name string) (*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateTemplateNameForFilesystem(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	path := s.path(name)
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, NewTemplateNotFoundError(name)
	}
	if err != nil {
		return nil, &StorageError{Message: ErrMsgReadTemplateFile, Name: name, Cause: err}
	}
	if info.IsDir() {
		return nil, NewTemplateNotFoundError(name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StorageError{Message: ErrMsgReadTemplateFile, Name: name, Cause: err}
	}

	return &StoredTemplate{
		Name:      name,
		Source:    string(data),
		UpdatedAt: info.ModTime(),
	}, nil
}

// Save writes a template file, replacing any existing one.
func (s *FilesystemStorage) Save(ctx context.Context, tmpl *StoredTemplate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if tmpl == nil {
		return &StorageError{Message: ErrMsgInvalidTemplateName}
	}
	if err := validateTemplateNameForFilesystem(tmpl.Name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageClosedError()
	}

	path := s.path(tmpl.Name)
	if err := os.WriteFile(path, []byte(tmpl.Source), FilesystemFilePermissions); err != nil {
		return &StorageError{Message: ErrMsgWriteTemplateFile, Name: tmpl.Name, Cause: err}
	}
	if info, err := os.Stat(path); err == nil {
		tmpl.UpdatedAt = info.ModTime()
	}
	return nil
}

// Delete removes a template file.
func (s *FilesystemStorage) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateTemplateNameForFilesystem(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageClosedError()
	}

	err := os.Remove(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return NewTemplateNotFoundError(name)
	}
	if err != nil {
		return &StorageError{Message: ErrMsgDeleteTemplateFile, Name: name, Cause: err}
	}
	return nil
}

// List returns the names of all template files, sorted.
func (s *FilesystemStorage) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, &StorageError{Message: ErrMsgReadStorageDir, Name: s.root, Cause: err}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name, ok := s.TemplateName(entry.Name()); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Exists checks if a template file exists.
func (s *FilesystemStorage) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := validateTemplateNameForFilesystem(name); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false, NewStorageClosedError()
	}

	info, err := os.Stat(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, &StorageError{Message: ErrMsgReadTemplateFile, Name: name, Cause: err}
	}
	return !info.IsDir(), nil
}

// Close marks the storage as closed. Files are left in place.
func (s *FilesystemStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func (s *FilesystemStorage) path(name string) string {
	return filepath.Join(s.root, name+s.extension)
}

// validateTemplateNameForFilesystem validates a template name for filesystem safety.
// Prevents path traversal and invalid filesystem characters.
func validateTemplateNameForFilesystem(name string) error {
	if name == "" {
		return &StorageError{Message: ErrMsgInvalidTemplateName}
	}
	if strings.Contains(name, "..") {
		return &StorageError{Message: ErrMsgPathTraversalDetected, Name: name}
	}
	if strings.ContainsAny(name, "/\\:*?\"<>|") {
		return &StorageError{Message: ErrMsgInvalidTemplateName, Name: name}
	}
	return nil
}
