package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/filedesk/internal/common"
	"github.com/dmitrijs2005/filedesk/internal/server/models"
	"github.com/dmitrijs2005/filedesk/internal/server/services"
	"github.com/labstack/echo/v4"
)

const formField = "file"

// FileService is what the handlers need from services.FileService.
type FileService interface {
	Upload(ctx context.Context, u services.Upload) (*models.File, error)
	List(ctx context.Context) ([]*models.File, error)
	Delete(ctx context.Context, id string) error
}

type handlers struct {
	svc FileService
}

// upload accepts a multipart body with the file in the "file" field.
func (h *handlers) upload(kind string) echo.HandlerFunc {
	return func(c echo.Context) error {
		fh, err := c.FormFile(formField)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				return NewBadRequestError("No file was submitted", err)
			}
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				return err
			}
			return NewBadRequestError("Invalid multipart body", err)
		}

		src, err := fh.Open()
		if err != nil {
			return NewBadRequestError("Cannot read uploaded file", err)
		}
		defer src.Close()

		f, err := h.svc.Upload(c.Request().Context(), services.Upload{
			Kind:        kind,
			Name:        fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Size:        fh.Size,
			Body:        src,
		})
		if err != nil {
			return err
		}

		return c.JSON(http.StatusCreated, f)
	}
}

func (h *handlers) list(c echo.Context) error {
	files, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, files)
}

func (h *handlers) delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return NewNotFoundError("file", id)
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *handlers) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
