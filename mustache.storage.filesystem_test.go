package mustache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), FilesystemFilePermissions))
}

func TestNewFilesystemStorage(t *testing.T) {
	t.Run("creates root directory", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "nested", "templates")
		storage, err := NewFilesystemStorage(root)
		require.NoError(t, err)
		assert.Equal(t, root, storage.Root())
		assert.Equal(t, DefaultTemplateExtension, storage.Extension())

		info, err := os.Stat(root)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("empty root", func(t *testing.T) {
		_, err := NewFilesystemStorage("")
		require.Error(t, err)
		var storageErr *StorageError
		require.True(t, errors.As(err, &storageErr))
		assert.Equal(t, ErrMsgInvalidStorageRoot, storageErr.Message)
	})

	t.Run("extension gets a dot", func(t *testing.T) {
		storage, err := NewFilesystemStorageWithExtension(t.TempDir(), "html")
		require.NoError(t, err)
		assert.Equal(t, ".html", storage.Extension())
	})
}

func TestFilesystemStorage_TemplateName(t *testing.T) {
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		path string
		name string
		ok   bool
	}{
		{path: "layout.mustache", name: "layout", ok: true},
		{path: "/abs/dir/page.mustache", name: "page", ok: true},
		{path: "multi.part.mustache", name: "multi.part", ok: true},
		{path: "notes.txt", ok: false},
		{path: ".mustache", ok: false},
		{path: "page.mustache.bak", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			name, ok := storage.TemplateName(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestFilesystemStorage_ListIgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.mustache", "B")
	writeFile(t, root, "a.mustache", "A")
	writeFile(t, root, "readme.md", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub.mustache"), FilesystemDirPermissions))

	storage, err := NewFilesystemStorage(root)
	require.NoError(t, err)

	names, err := storage.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestFilesystemStorage_CRUD(t *testing.T) {
	root := t.TempDir()
	storage, err := NewFilesystemStorage(root)
	require.NoError(t, err)
	ctx := context.Background()

	tmpl := &StoredTemplate{Name: "page", Source: "{{title}}"}
	require.NoError(t, storage.Save(ctx, tmpl))
	assert.False(t, tmpl.UpdatedAt.IsZero())

	data, err := os.ReadFile(filepath.Join(root, "page.mustache"))
	require.NoError(t, err)
	assert.Equal(t, "{{title}}", string(data))

	got, err := storage.Get(ctx, "page")
	require.NoError(t, err)
	assert.Equal(t, "page", got.Name)
	assert.Equal(t, "{{title}}", got.Source)

	exists, err := storage.Exists(ctx, "page")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, storage.Delete(ctx, "page"))

	_, err = storage.Get(ctx, "page")
	assert.True(t, IsTemplateNotFoundError(err))
	assert.True(t, IsTemplateNotFoundError(storage.Delete(ctx, "page")))

	exists, err = storage.Exists(ctx, "page")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFilesystemStorage_InvalidNames(t *testing.T) {
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name string
		msg  string
	}{
		{name: "", msg: ErrMsgInvalidTemplateName},
		{name: "../escape", msg: ErrMsgPathTraversalDetected},
		{name: "dir/page", msg: ErrMsgInvalidTemplateName},
		{name: "a:b", msg: ErrMsgInvalidTemplateName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := storage.Get(ctx, tt.name)
			var storageErr *StorageError
			require.True(t, errors.As(err, &storageErr))
			assert.Equal(t, tt.msg, storageErr.Message)

			err = storage.Save(ctx, &StoredTemplate{Name: tt.name})
			require.True(t, errors.As(err, &storageErr))
			assert.Equal(t, tt.msg, storageErr.Message)
		})
	}
}

func TestFilesystemStorage_Closed(t *testing.T) {
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, storage.Close())

	_, err = storage.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, ErrMsgStorageClosed, err.Error())
}
