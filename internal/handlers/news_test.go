// internal/handlers/news_test.go
package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tab1k/tbd-back/internal/models"
	"github.com/tab1k/tbd-back/internal/services"
	"github.com/tab1k/tbd-back/internal/translation"
)

type noopTranslator struct{}

func (noopTranslator) Translate(ctx context.Context, text string, target translation.Language) translation.Result {
	return translation.Result{}
}

func newNewsTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.News{}))

	svc := services.NewContentService(db, translation.NewLifecycle(noopTranslator{}))
	h := NewNewsHandler(svc)

	r := gin.New()
	r.POST("/admin/news", h.Create)
	return r, db
}

func TestCreateNewsValidationErrorIsBadRequest(t *testing.T) {
	r, _ := newNewsTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/news", strings.NewReader(`{"title_ru": ""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title_ru is required")
}

func TestCreateNewsDatabaseErrorIsInternal(t *testing.T) {
	r, db := newNewsTestRouter(t)

	// A missing table stands in for a genuine database fault.
	require.NoError(t, db.Migrator().DropTable(&models.News{}))

	w := httptest.NewRecorder()
	body := `{"title_ru": "Новость", "image": "news/a.png"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/news", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
