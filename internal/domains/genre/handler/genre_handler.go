package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	bookmodel "locallibrary/internal/domains/book/model"
	"locallibrary/internal/domains/genre/model"
	"locallibrary/internal/domains/genre/service"
	"locallibrary/internal/shared/apperror"
	"locallibrary/internal/shared/form"
	"locallibrary/internal/shared/utils"
)

const listURL = "/catalog/genres"

type GenreHandler struct {
	service service.ServiceInterface
}

func NewGenreHandler(svc service.ServiceInterface) *GenreHandler {
	return &GenreHandler{
		service: svc,
	}
}

// List - GET /catalog/genres
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "genre_list", gin.H{
		"title":      "Genre List",
		"genre_list": genres,
	})
}

// Detail - GET /catalog/genre/:id
func (h *GenreHandler) Detail(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		_ = c.Error(model.ErrGenreNotFound)
		return
	}

	genre, books, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "genre_detail", gin.H{
		"title":       "Genre Detail",
		"genre":       genre,
		"genre_books": books,
	})
}

// CreateForm - GET /catalog/genre/create
func (h *GenreHandler) CreateForm(c *gin.Context) {
	renderForm(c, "Create Genre", nil, nil)
}

// Create - POST /catalog/genre/create
func (h *GenreHandler) Create(c *gin.Context) {
	candidate, errs, ok := bindGenre(c)
	if !ok {
		return
	}
	if len(errs) > 0 {
		renderForm(c, "Create Genre", &candidate, errs)
		return
	}

	genre, _, err := h.service.CreateOrFind(c.Request.Context(), candidate)
	if err != nil {
		if fieldErrs := form.FromError(err, "name"); fieldErrs != nil {
			renderForm(c, "Create Genre", &candidate, fieldErrs)
			return
		}
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, genre.URL())
}

// DeleteForm - GET /catalog/genre/:id/delete
func (h *GenreHandler) DeleteForm(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		c.Redirect(http.StatusFound, listURL)
		return
	}
	h.renderDelete(c, id)
}

// Delete - POST /catalog/genre/delete, id in the "genreid" field
func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := utils.FormUUID(c, "genreid")
	if err != nil {
		c.Redirect(http.StatusFound, listURL)
		return
	}

	ctx := c.Request.Context()
	genre, books, err := h.service.Detail(ctx, id)
	switch {
	case errors.Is(err, model.ErrGenreNotFound):
		c.Redirect(http.StatusFound, listURL)
		return
	case err != nil:
		_ = c.Error(err)
		return
	case len(books) > 0:
		renderDelete(c, genre, books)
		return
	}

	err = h.service.Delete(ctx, id)
	switch {
	case err == nil, errors.Is(err, model.ErrGenreNotFound):
		c.Redirect(http.StatusFound, listURL)
	case errors.Is(err, model.ErrGenreHasBooks):
		// a book was added since the check above
		h.renderDelete(c, id)
	default:
		_ = c.Error(err)
	}
}

// UpdateForm - GET /catalog/genre/:id/update
func (h *GenreHandler) UpdateForm(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		_ = c.Error(model.ErrGenreNotFound)
		return
	}

	genre, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	renderForm(c, "Update Genre: "+genre.Name, genre, nil)
}

// Update - POST /catalog/genre/:id/update
func (h *GenreHandler) Update(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		_ = c.Error(model.ErrGenreNotFound)
		return
	}

	candidate, errs, ok := bindGenre(c)
	if !ok {
		return
	}
	candidate.ID = id

	if len(errs) > 0 {
		renderForm(c, "Update Genre: "+candidate.Name, &candidate, errs)
		return
	}

	genre, err := h.service.Update(c.Request.Context(), candidate)
	if err != nil {
		if fieldErrs := form.FromError(err, "name"); fieldErrs != nil {
			renderForm(c, "Update Genre: "+candidate.Name, &candidate, fieldErrs)
			return
		}
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, genre.URL())
}

func (h *GenreHandler) renderDelete(c *gin.Context, id uuid.UUID) {
	genre, books, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrGenreNotFound) {
			c.Redirect(http.StatusFound, listURL)
			return
		}
		_ = c.Error(err)
		return
	}
	renderDelete(c, genre, books)
}

// bindGenre decodes and sanitizes the posted form. ok is false when the
// error has already been attached to c.
func bindGenre(c *gin.Context) (model.Genre, []form.FieldError, bool) {
	var f model.GenreForm
	if err := c.ShouldBindWith(&f, binding.Form); err != nil {
		_ = c.Error(apperror.Validation("Malformed form submission"))
		return model.Genre{}, nil, false
	}

	errs, err := f.Sanitize()
	if err != nil {
		_ = c.Error(err)
		return model.Genre{}, nil, false
	}
	return f.Genre(), errs, true
}

func renderForm(c *gin.Context, title string, genre *model.Genre, errs []form.FieldError) {
	c.HTML(http.StatusOK, "genre_form", gin.H{
		"title":  title,
		"genre":  genre,
		"errors": errs,
	})
}

func renderDelete(c *gin.Context, genre *model.Genre, books []bookmodel.Book) {
	c.HTML(http.StatusOK, "genre_delete", gin.H{
		"title":       "Delete Genre",
		"genre":       genre,
		"genre_books": books,
	})
}
