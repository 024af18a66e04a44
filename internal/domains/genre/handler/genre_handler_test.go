package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	bookmodel "locallibrary/internal/domains/book/model"
	"locallibrary/internal/domains/genre/handler"
	"locallibrary/internal/domains/genre/model"
	"locallibrary/internal/shared/apperror"
	"locallibrary/internal/shared/middleware"
	"locallibrary/internal/web"
)

// --- MOCK SERVICE ---

type MockGenreService struct {
	mock.Mock
}

func (m *MockGenreService) List(ctx context.Context) ([]model.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Genre), args.Error(1)
}

func (m *MockGenreService) Detail(ctx context.Context, id uuid.UUID) (*model.Genre, []bookmodel.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.Genre), args.Get(1).([]bookmodel.Book), args.Error(2)
}

func (m *MockGenreService) Get(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Genre), args.Error(1)
}

func (m *MockGenreService) CreateOrFind(ctx context.Context, g model.Genre) (*model.Genre, bool, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*model.Genre), args.Bool(1), args.Error(2)
}

func (m *MockGenreService) Update(ctx context.Context, g model.Genre) (*model.Genre, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Genre), args.Error(1)
}

func (m *MockGenreService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGenreService) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- SETUP ---

func setupRouter(svc *MockGenreService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(web.MustTemplates())
	r.Use(middleware.Recovery(), middleware.ErrorHandler(false))

	h := handler.NewGenreHandler(svc)
	catalog := r.Group("/catalog")
	{
		catalog.GET("/genres", h.List)
		catalog.GET("/genre/create", h.CreateForm)
		catalog.POST("/genre/create", h.Create)
		catalog.POST("/genre/delete", h.Delete)
		catalog.GET("/genre/:id", h.Detail)
		catalog.GET("/genre/:id/delete", h.DeleteForm)
		catalog.GET("/genre/:id/update", h.UpdateForm)
		catalog.POST("/genre/:id/update", h.Update)
	}
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func post(r *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- TESTS ---

func TestGenreHandler_List(t *testing.T) {
	svc := new(MockGenreService)
	r := setupRouter(svc)

	genres := []model.Genre{{ID: uuid.New(), Name: "Alpha"}, {ID: uuid.New(), Name: "Mono"}}
	svc.On("List", mock.Anything).Return(genres, nil)

	w := get(r, "/catalog/genres")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, genres[0].URL())
	assert.Less(t, strings.Index(body, "Alpha"), strings.Index(body, "Mono"))
}

func TestGenreHandler_List_StoreError(t *testing.T) {
	svc := new(MockGenreService)
	r := setupRouter(svc)

	svc.On("List", mock.Anything).Return(nil, apperror.Persistence("list genres", errors.New("down")))

	w := get(r, "/catalog/genres")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGenreHandler_Detail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		g := &model.Genre{ID: uuid.New(), Name: "Fantasy"}
		books := []bookmodel.Book{{ID: uuid.New(), Title: "The Hobbit", Summary: "There and back"}}
		svc.On("Detail", mock.Anything, g.ID).Return(g, books, nil)

		w := get(r, g.URL())
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Fantasy")
		assert.Contains(t, w.Body.String(), "The Hobbit")
	})

	t.Run("missing is 404", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		id := uuid.New()
		svc.On("Detail", mock.Anything, id).Return(nil, nil, model.ErrGenreNotFound)

		w := get(r, "/catalog/genre/"+id.String())
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Genre not found")
	})

	t.Run("malformed id is 404", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		w := get(r, "/catalog/genre/not-an-id")
		assert.Equal(t, http.StatusNotFound, w.Code)
		svc.AssertNotCalled(t, "Detail", mock.Anything, mock.Anything)
	})
}

func TestGenreHandler_CreateForm(t *testing.T) {
	r := setupRouter(new(MockGenreService))

	w := get(r, "/catalog/genre/create")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Create Genre")
}

func TestGenreHandler_Create(t *testing.T) {
	t.Run("new genre redirects to it", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		created := &model.Genre{ID: uuid.New(), Name: "Fantasy"}
		svc.On("CreateOrFind", mock.Anything, model.Genre{Name: "Fantasy"}).Return(created, true, nil)

		w := post(r, "/catalog/genre/create", url.Values{"name": {"  Fantasy  "}})
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, created.URL(), w.Header().Get("Location"))
	})

	t.Run("existing genre redirects to the existing record", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		existing := &model.Genre{ID: uuid.New(), Name: "Fantasy"}
		svc.On("CreateOrFind", mock.Anything, model.Genre{Name: "Fantasy"}).Return(existing, false, nil)

		w := post(r, "/catalog/genre/create", url.Values{"name": {"Fantasy"}})
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, existing.URL(), w.Header().Get("Location"))
	})

	t.Run("blank name re-renders the form", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		w := post(r, "/catalog/genre/create", url.Values{"name": {"   "}})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Genre name required")
		svc.AssertNotCalled(t, "CreateOrFind", mock.Anything, mock.Anything)
	})

	t.Run("schema violation re-renders the form", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		svc.On("CreateOrFind", mock.Anything, mock.Anything).Return(nil, false, model.ErrInvalidName)

		w := post(r, "/catalog/genre/create", url.Values{"name": {"Fantasy"}})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), model.ErrInvalidName.Message)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		svc.On("CreateOrFind", mock.Anything, mock.Anything).
			Return(nil, false, apperror.Persistence("create genre", errors.New("down")))

		w := post(r, "/catalog/genre/create", url.Values{"name": {"Fantasy"}})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGenreHandler_DeleteForm(t *testing.T) {
	t.Run("missing redirects to list", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		id := uuid.New()
		svc.On("Detail", mock.Anything, id).Return(nil, nil, model.ErrGenreNotFound)

		w := get(r, "/catalog/genre/"+id.String()+"/delete")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/catalog/genres", w.Header().Get("Location"))
	})

	t.Run("shows dependents", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		g := &model.Genre{ID: uuid.New(), Name: "Poetry"}
		books := []bookmodel.Book{{ID: uuid.New(), Title: "Odes"}}
		svc.On("Detail", mock.Anything, g.ID).Return(g, books, nil)

		w := get(r, g.URL()+"/delete")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Odes")
		assert.NotContains(t, w.Body.String(), `name="genreid"`)
	})
}

func TestGenreHandler_Delete(t *testing.T) {
	t.Run("with books never deletes", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		g := &model.Genre{ID: uuid.New(), Name: "Poetry"}
		books := []bookmodel.Book{{ID: uuid.New(), Title: "Odes"}}
		svc.On("Detail", mock.Anything, g.ID).Return(g, books, nil)

		w := post(r, "/catalog/genre/delete", url.Values{"genreid": {g.ID.String()}})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Odes")
		svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("without books deletes and redirects", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		g := &model.Genre{ID: uuid.New(), Name: "Poetry"}
		svc.On("Detail", mock.Anything, g.ID).Return(g, []bookmodel.Book{}, nil)
		svc.On("Delete", mock.Anything, g.ID).Return(nil)

		w := post(r, "/catalog/genre/delete", url.Values{"genreid": {g.ID.String()}})
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/catalog/genres", w.Header().Get("Location"))
		svc.AssertExpectations(t)
	})

	t.Run("book added concurrently re-renders confirmation", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		g := &model.Genre{ID: uuid.New(), Name: "Poetry"}
		svc.On("Detail", mock.Anything, g.ID).Return(g, []bookmodel.Book{}, nil).Once()
		svc.On("Delete", mock.Anything, g.ID).Return(model.ErrGenreHasBooks)
		svc.On("Detail", mock.Anything, g.ID).Return(g, []bookmodel.Book{{ID: uuid.New(), Title: "Late Odes"}}, nil).Once()

		w := post(r, "/catalog/genre/delete", url.Values{"genreid": {g.ID.String()}})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Late Odes")
	})

	t.Run("missing redirects to list", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		id := uuid.New()
		svc.On("Detail", mock.Anything, id).Return(nil, nil, model.ErrGenreNotFound)

		w := post(r, "/catalog/genre/delete", url.Values{"genreid": {id.String()}})
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/catalog/genres", w.Header().Get("Location"))
	})
}

func TestGenreHandler_UpdateForm(t *testing.T) {
	svc := new(MockGenreService)
	r := setupRouter(svc)

	g := &model.Genre{ID: uuid.New(), Name: "Drama"}
	svc.On("Get", mock.Anything, g.ID).Return(g, nil)
	missing := uuid.New()
	svc.On("Get", mock.Anything, missing).Return(nil, model.ErrGenreNotFound)

	w := get(r, g.URL()+"/update")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Update Genre: Drama")
	assert.Contains(t, w.Body.String(), `value="Drama"`)

	w = get(r, "/catalog/genre/"+missing.String()+"/update")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenreHandler_Update(t *testing.T) {
	t.Run("keeps the route id", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		id := uuid.New()
		updated := &model.Genre{ID: id, Name: "Comedy"}
		svc.On("Update", mock.Anything, model.Genre{ID: id, Name: "Comedy"}).Return(updated, nil)

		w := post(r, updated.URL()+"/update", url.Values{"name": {"Comedy"}})
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, updated.URL(), w.Header().Get("Location"))
		svc.AssertExpectations(t)
	})

	t.Run("invalid input re-renders", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		w := post(r, "/catalog/genre/"+uuid.NewString()+"/update", url.Values{"name": {""}})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Genre name required")
		svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("re-render keeps the genre name in the title", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		w := post(r, "/catalog/genre/"+uuid.NewString()+"/update", url.Values{"name": {"Sf"}})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Update Genre: Sf")
		svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing is 404", func(t *testing.T) {
		svc := new(MockGenreService)
		r := setupRouter(svc)

		id := uuid.New()
		svc.On("Update", mock.Anything, mock.Anything).Return(nil, model.ErrGenreNotFound)

		w := post(r, "/catalog/genre/"+id.String()+"/update", url.Values{"name": {"Comedy"}})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
