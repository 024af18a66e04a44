package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"locallibrary/internal/domains/author/model"
	"locallibrary/internal/domains/author/service"
	bookmodel "locallibrary/internal/domains/book/model"
	"locallibrary/internal/shared/apperror"
	"locallibrary/internal/shared/form"
	"locallibrary/internal/shared/utils"
)

const listURL = "/catalog/authors"

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// READ
// ════════════════════════════════════════════════════════════════

// List - GET /catalog/authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "author_list", gin.H{
		"title":       "Author List",
		"author_list": authors,
	})
}

// Detail - GET /catalog/author/:id
func (h *AuthorHandler) Detail(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		_ = c.Error(model.ErrAuthorNotFound)
		return
	}

	author, books, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "author_detail", gin.H{
		"title":        "Author Detail",
		"author":       author,
		"author_books": books,
	})
}

// ════════════════════════════════════════════════════════════════
// CREATE
// ════════════════════════════════════════════════════════════════

// CreateForm - GET /catalog/author/create
func (h *AuthorHandler) CreateForm(c *gin.Context) {
	renderForm(c, "Create Author", nil, nil)
}

// Create - POST /catalog/author/create
func (h *AuthorHandler) Create(c *gin.Context) {
	f, errs, ok := bindAuthor(c)
	if !ok {
		return
	}
	if len(errs) > 0 {
		renderForm(c, "Create Author", &f, errs)
		return
	}

	author, _, err := h.service.CreateOrFind(c.Request.Context(), f.Author())
	if err != nil {
		if fieldErrs := fieldErrors(err); fieldErrs != nil {
			renderForm(c, "Create Author", &f, fieldErrs)
			return
		}
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, author.URL())
}

// ════════════════════════════════════════════════════════════════
// DELETE
// ════════════════════════════════════════════════════════════════

// DeleteForm - GET /catalog/author/:id/delete
func (h *AuthorHandler) DeleteForm(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		c.Redirect(http.StatusFound, listURL)
		return
	}
	h.renderDelete(c, id)
}

// Delete - POST /catalog/author/delete, id in the "authorid" field
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := utils.FormUUID(c, "authorid")
	if err != nil {
		c.Redirect(http.StatusFound, listURL)
		return
	}

	ctx := c.Request.Context()
	author, books, err := h.service.Detail(ctx, id)
	switch {
	case errors.Is(err, model.ErrAuthorNotFound):
		c.Redirect(http.StatusFound, listURL)
		return
	case err != nil:
		_ = c.Error(err)
		return
	case len(books) > 0:
		renderDelete(c, author, books)
		return
	}

	err = h.service.Delete(ctx, id)
	switch {
	case err == nil, errors.Is(err, model.ErrAuthorNotFound):
		c.Redirect(http.StatusFound, listURL)
	case errors.Is(err, model.ErrAuthorHasBooks):
		h.renderDelete(c, id)
	default:
		_ = c.Error(err)
	}
}

// ════════════════════════════════════════════════════════════════
// UPDATE
// ════════════════════════════════════════════════════════════════

// UpdateForm - GET /catalog/author/:id/update
func (h *AuthorHandler) UpdateForm(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		_ = c.Error(model.ErrAuthorNotFound)
		return
	}

	author, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	f := model.FormOf(*author)
	renderForm(c, "Update Author: "+author.Name(), &f, nil)
}

// Update - POST /catalog/author/:id/update
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		_ = c.Error(model.ErrAuthorNotFound)
		return
	}

	f, errs, ok := bindAuthor(c)
	if !ok {
		return
	}
	candidate := f.Author()
	candidate.ID = id
	title := "Update Author: " + candidate.Name()

	if len(errs) > 0 {
		renderForm(c, title, &f, errs)
		return
	}

	author, err := h.service.Update(c.Request.Context(), candidate)
	if err != nil {
		if fieldErrs := fieldErrors(err); fieldErrs != nil {
			renderForm(c, title, &f, fieldErrs)
			return
		}
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, author.URL())
}

func (h *AuthorHandler) renderDelete(c *gin.Context, id uuid.UUID) {
	author, books, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			c.Redirect(http.StatusFound, listURL)
			return
		}
		_ = c.Error(err)
		return
	}
	renderDelete(c, author, books)
}

// bindAuthor decodes and sanitizes the posted form. ok is false when the
// error has already been attached to c.
func bindAuthor(c *gin.Context) (model.AuthorForm, []form.FieldError, bool) {
	var f model.AuthorForm
	if err := c.ShouldBindWith(&f, binding.Form); err != nil {
		_ = c.Error(apperror.Validation("Malformed form submission"))
		return f, nil, false
	}

	errs, err := f.Sanitize()
	if err != nil {
		_ = c.Error(err)
		return f, nil, false
	}
	return f, errs, true
}

// fieldErrors maps schema violations from the service onto form fields.
func fieldErrors(err error) []form.FieldError {
	switch {
	case errors.Is(err, model.ErrInvalidFirstName):
		return form.FromError(err, "first_name")
	case errors.Is(err, model.ErrInvalidFamilyName):
		return form.FromError(err, "family_name")
	}
	return nil
}

func renderForm(c *gin.Context, title string, f *model.AuthorForm, errs []form.FieldError) {
	c.HTML(http.StatusOK, "author_form", gin.H{
		"title":  title,
		"author": f,
		"errors": errs,
	})
}

func renderDelete(c *gin.Context, author *model.Author, books []bookmodel.Book) {
	c.HTML(http.StatusOK, "author_delete", gin.H{
		"title":        "Delete Author",
		"author":       author,
		"author_books": books,
	})
}
