package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dmitrijs2005/filedesk/internal/client/models"
)

var (
	errCommandFailed  = errors.New("command failed")
	errUsage          = errors.New("missing argument")
	errUnknownCommand = errors.New("unknown command")
)

type uploadFn func(ctx context.Context, name string, r io.Reader) (models.FileRecord, error)

// List fetches the file list and renders the store.
func (a *App) List(ctx context.Context) error {
	a.store.FetchFiles(ctx)
	return a.render()
}

func (a *App) Upload(ctx context.Context, path string) error {
	return a.upload(ctx, path, a.client.UploadFile)
}

func (a *App) Label(ctx context.Context, path string) error {
	return a.upload(ctx, path, a.client.UploadLabelFile)
}

func (a *App) upload(ctx context.Context, path string, send uploadFn) error {
	f, err := openFile(path)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	defer f.Close()

	name := filepath.Base(path)
	printlnFn("Uploading", name, "...")

	rec, err := send(ctx, name, f)
	if err != nil {
		a.logger.Error(ctx, "upload failed", "path", path, "error", err)
		printlnFn(colorize("Upload failed: "+err.Error(), ansiRed))
		return err
	}

	if id := rec.ID(); id != "" {
		printlnFn(fmt.Sprintf("Uploaded %s (id %s)", name, id))
	} else {
		printlnFn("Uploaded", name)
	}

	a.store.FetchFiles(ctx)
	return a.render()
}

// Delete removes id on the backend. The store refreshes the list on success.
func (a *App) Delete(ctx context.Context, id string) error {
	a.store.DeleteFile(ctx, id)
	return a.render()
}

// Status probes the backend now and prints the resulting mode.
func (a *App) Status(ctx context.Context) error {
	err := a.client.Ping(ctx)
	a.setMode(ctx, err == nil)

	printlnFn("Server:", a.config.BaseURL)
	printlnFn("Mode:", a.getStatus())
	if err != nil {
		a.logger.Warn(ctx, "ping failed", "error", err)
		return err
	}
	return nil
}

// render prints the store state and reports a failure when it holds an error.
func (a *App) render() error {
	a.mu.Lock()
	a.loadingShown = false
	a.mu.Unlock()

	st := a.store.Snapshot()
	renderState(st)
	if st.Err != "" {
		return fmt.Errorf("%w: %s", errCommandFailed, st.Err)
	}
	return nil
}
