package mustache

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchOps are the file events that trigger a reload
const watchOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Watch reloads the set from a filesystem storage whenever a template file
// in its directory is created, written, removed or renamed. The watch is
// registered before Watch returns; reloading then runs in the background
// until ctx is cancelled or stop is called. A reload that fails to compile
// keeps the previous templates.
func (s *TemplateSet) Watch(ctx context.Context, storage TemplateStorage) (stop func() error, err error) {
	fsStorage, ok := storage.(*FilesystemStorage)
	if !ok {
		return nil, &StorageError{Message: ErrMsgWatchNotFilesystem}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &StorageError{Message: ErrMsgWatchFailed, Cause: err}
	}
	if err := watcher.Add(fsStorage.Root()); err != nil {
		watcher.Close()
		return nil, &StorageError{Message: ErrMsgWatchFailed, Name: fsStorage.Root(), Cause: err}
	}

	s.logger.Debug(LogMsgWatchStarted, zap.String(LogFieldDir, fsStorage.Root()))

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.watchLoop(ctx, watcher, fsStorage)
	}()

	return func() error {
		cancel()
		<-done
		return nil
	}, nil
}

func (s *TemplateSet) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, storage *FilesystemStorage) {
	defer func() {
		watcher.Close()
		s.logger.Debug(LogMsgWatchStopped, zap.String(LogFieldDir, storage.Root()))
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&watchOps == 0 {
				continue
			}
			if _, isTemplate := storage.TemplateName(event.Name); !isTemplate {
				continue
			}
			s.logger.Debug(LogMsgWatchEvent,
				zap.String(LogFieldFile, event.Name),
				zap.String(LogFieldOp, event.Op.String()))
			s.reload(ctx, storage)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn(LogMsgWatchError, zap.Error(err))
		}
	}
}

func (s *TemplateSet) reload(ctx context.Context, storage TemplateStorage) {
	if err := s.Load(ctx, storage); err != nil {
		s.logger.Warn(LogMsgSetReloadFailed, zap.Error(err))
		return
	}
	s.logger.Debug(LogMsgSetReloaded, zap.Int(LogFieldTemplates, s.Len()))
}
