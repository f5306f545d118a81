package handler

import (
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// pathID parses the named path parameter as a UUID.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrapf(domainerrors.ErrInvalidID, "%s %q", name, c.Param(name))
	}

	return id, nil
}

// pageQuery reads the page and limit query parameters.
func pageQuery(c echo.Context) (entity.Page, error) {
	number, limit := 1, entity.DefaultPageLimit

	err := echo.QueryParamsBinder(c).
		Int("page", &number).
		Int("limit", &limit).
		BindError()
	if err != nil {
		var bindErr *echo.BindingError
		if errors.As(err, &bindErr) && len(bindErr.Field) > 0 {
			return entity.Page{}, domainerrors.NewValidationError(bindErr.Field, "must be a number")
		}

		return entity.Page{}, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return entity.NewPage(number, limit), nil
}
