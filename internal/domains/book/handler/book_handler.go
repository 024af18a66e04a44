package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"locallibrary/internal/domains/book/model"
	"locallibrary/internal/domains/book/service"
	"locallibrary/internal/shared/apperror"
	"locallibrary/internal/shared/form"
	"locallibrary/internal/shared/utils"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// List - GET /catalog/books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "book_list", gin.H{
		"title":     "Book List",
		"book_list": books,
	})
}

// Detail - GET /catalog/book/:id
func (h *BookHandler) Detail(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		_ = c.Error(model.ErrBookNotFound)
		return
	}

	book, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "book_detail", gin.H{
		"title": book.Title,
		"book":  book,
	})
}

// CreateForm - GET /catalog/book/create
func (h *BookHandler) CreateForm(c *gin.Context) {
	h.renderForm(c, nil, nil)
}

// Create - POST /catalog/book/create
func (h *BookHandler) Create(c *gin.Context) {
	var f model.BookForm
	if err := c.ShouldBindWith(&f, binding.Form); err != nil {
		_ = c.Error(apperror.Validation("Malformed form submission"))
		return
	}

	errs, err := f.Sanitize()
	if err != nil {
		_ = c.Error(err)
		return
	}
	if len(errs) > 0 {
		h.renderForm(c, &f, errs)
		return
	}

	book, err := h.service.Create(c.Request.Context(), f.Book())
	if err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) && appErr.Kind == apperror.KindValidation {
			h.renderForm(c, &f, []form.FieldError{{Message: appErr.Message}})
			return
		}
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, book.URL())
}

// renderForm loads the author and genre choices and renders the form.
func (h *BookHandler) renderForm(c *gin.Context, f *model.BookForm, errs []form.FieldError) {
	authors, genres, err := h.service.FormOptions(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "book_form", gin.H{
		"title":   "Create Book",
		"authors": authors,
		"genres":  genres,
		"book":    f,
		"errors":  errs,
	})
}
