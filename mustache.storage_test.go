package mustache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageRegistry(t *testing.T) {
	t.Run("built-in drivers are registered", func(t *testing.T) {
		drivers := ListStorageDrivers()
		assert.Contains(t, drivers, StorageDriverNameMemory)
		assert.Contains(t, drivers, StorageDriverNameFilesystem)
		assert.Contains(t, drivers, StorageDriverNamePostgres)
	})

	t.Run("open memory storage", func(t *testing.T) {
		storage, err := OpenStorage(StorageDriverNameMemory, "")
		require.NoError(t, err)
		defer storage.Close()
		assert.IsType(t, &MemoryStorage{}, storage)
	})

	t.Run("open filesystem storage", func(t *testing.T) {
		storage, err := OpenStorage(StorageDriverNameFilesystem, t.TempDir())
		require.NoError(t, err)
		defer storage.Close()
		assert.IsType(t, &FilesystemStorage{}, storage)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := OpenStorage("nonexistent", "")
		require.Error(t, err)

		var storageErr *StorageError
		require.True(t, errors.As(err, &storageErr))
		assert.Equal(t, ErrMsgStorageDriverNotFound, storageErr.Message)
		assert.Equal(t, "nonexistent", storageErr.Name)
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		assert.Panics(t, func() {
			RegisterStorageDriver(StorageDriverNameMemory, &MemoryStorageDriver{})
		})
	})

	t.Run("nil driver panics", func(t *testing.T) {
		assert.Panics(t, func() {
			RegisterStorageDriver("nil-driver", nil)
		})
	})
}

func TestStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := &StorageError{Message: ErrMsgWriteTemplateFile, Name: "page", Cause: cause}

	assert.Equal(t, "failed to write template file: page: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrMsgStorageClosed, NewStorageClosedError().Error())
}

func TestCopyStoredTemplate(t *testing.T) {
	assert.Nil(t, copyStoredTemplate(nil))

	original := &StoredTemplate{Name: "a", Source: "x"}
	cp := copyStoredTemplate(original)
	cp.Source = "changed"
	assert.Equal(t, "x", original.Source)
}
