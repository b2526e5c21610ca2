// internal/services/content_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tab1k/tbd-back/internal/models"
	"github.com/tab1k/tbd-back/internal/translation"
	"github.com/tab1k/tbd-back/internal/utils"
)

// echoTranslator marks translations instead of calling a real provider.
type echoTranslator struct {
	calls int
}

func (t *echoTranslator) Translate(ctx context.Context, text string, target translation.Language) translation.Result {
	t.calls++
	return translation.Result{Text: "[en] " + text}
}

// offlineTranslator behaves like a disabled provider: no text, no error.
type offlineTranslator struct{}

func (offlineTranslator) Translate(ctx context.Context, text string, target translation.Language) translation.Result {
	return translation.Result{}
}

func newContentService(db *gorm.DB, tr translation.Translator) *ContentService {
	return NewContentService(db, translation.NewLifecycle(tr))
}

func strptr(s string) *string { return &s }

func TestCreateNewsAutoTranslates(t *testing.T) {
	db := newTestDB(t)
	tr := &echoTranslator{}
	svc := newContentService(db, tr)

	item, err := svc.CreateNews(context.Background(), &NewsInput{
		TitleRu:       "Запуск проекта",
		DescriptionRu: "Описание запуска",
		Image:         "news/launch.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "[en] Запуск проекта", item.TitleEn)
	assert.Equal(t, "[en] Описание запуска", item.DescriptionEn)
	assert.Equal(t, translation.StatusAuto, item.Status)
	assert.Equal(t, 2, tr.calls)
}

func TestCreateNewsLegacyFieldsWriteRussian(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db, offlineTranslator{})

	item, err := svc.CreateNews(context.Background(), &NewsInput{
		Title:       "Старый клиент",
		Description: "Отправляет одно поле",
		Image:       "news/legacy.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "Старый клиент", item.TitleRu)
	assert.Equal(t, "Отправляет одно поле", item.DescriptionRu)
	assert.Empty(t, item.TitleEn)
	assert.Equal(t, translation.StatusNone, item.Status)
}

func TestCreateNewsExplicitEnglishIsManual(t *testing.T) {
	db := newTestDB(t)
	tr := &echoTranslator{}
	svc := newContentService(db, tr)

	item, err := svc.CreateNews(context.Background(), &NewsInput{
		TitleRu: "Новость",
		TitleEn: "Handwritten news",
		Image:   "news/manual.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "Handwritten news", item.TitleEn)
	assert.Equal(t, translation.StatusManual, item.Status)
	assert.Zero(t, tr.calls, "manual entities bypass the provider")
}

func TestCreateNewsRequiredFields(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db, offlineTranslator{})

	_, err := svc.CreateNews(context.Background(), &NewsInput{Image: "news/x.jpg"})
	assert.ErrorIs(t, err, ErrInvalidInput, "title_ru is required")

	_, err = svc.CreateNews(context.Background(), &NewsInput{TitleRu: "Без картинки"})
	assert.ErrorIs(t, err, ErrInvalidInput, "image is required")
}

func TestUpdateNewsManualStatusIsSticky(t *testing.T) {
	db := newTestDB(t)
	tr := &echoTranslator{}
	svc := newContentService(db, tr)

	item, err := svc.CreateNews(context.Background(), &NewsInput{
		TitleRu: "Новость",
		Image:   "news/x.jpg",
	})
	require.NoError(t, err)
	require.Equal(t, translation.StatusAuto, item.Status)

	// Editor rewrites the english title by hand
	item, err = svc.UpdateNews(context.Background(), item.ID, &NewsUpdate{
		TitleEn: strptr("Curated title"),
	})
	require.NoError(t, err)
	assert.Equal(t, translation.StatusManual, item.Status)

	// A later russian edit must not re-translate over the manual value
	callsBefore := tr.calls
	item, err = svc.UpdateNews(context.Background(), item.ID, &NewsUpdate{
		TitleRu: strptr("Новость (обновлено)"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Curated title", item.TitleEn)
	assert.Equal(t, translation.StatusManual, item.Status)
	assert.Equal(t, callsBefore, tr.calls)
}

func TestUpdateNewsClearingAllEnglishResetsStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db, offlineTranslator{})

	item, err := svc.CreateNews(context.Background(), &NewsInput{
		TitleRu: "Новость",
		TitleEn: "Manual title",
		Image:   "news/x.jpg",
	})
	require.NoError(t, err)
	require.Equal(t, translation.StatusManual, item.Status)

	item, err = svc.UpdateNews(context.Background(), item.ID, &NewsUpdate{
		TitleEn:       strptr(""),
		DescriptionEn: strptr(""),
	})
	require.NoError(t, err)
	assert.Empty(t, item.TitleEn)
	assert.Equal(t, translation.StatusNone, item.Status,
		"clearing every english field reopens the entity for auto-translation")
}

func TestUpdateNewsAbsentFieldsUntouched(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db, offlineTranslator{})

	item, err := svc.CreateNews(context.Background(), &NewsInput{
		TitleRu:       "Заголовок",
		DescriptionRu: "Описание",
		Image:         "news/x.jpg",
		URL:           "https://example.com",
	})
	require.NoError(t, err)

	item, err = svc.UpdateNews(context.Background(), item.ID, &NewsUpdate{
		TitleRu: strptr("Новый заголовок"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Новый заголовок", item.TitleRu)
	assert.Equal(t, "Описание", item.DescriptionRu)
	assert.Equal(t, "https://example.com", item.URL)
}

func TestCaseGalleryLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db, offlineTranslator{})

	cs, err := svc.CreateCase(context.Background(), &CaseInput{
		TitleRu: "Кейс",
		Images:  []string{"case_images/1.jpg", "case_images/2.jpg"},
	})
	require.NoError(t, err)
	require.Len(t, cs.Images, 2)

	// Adding an image leaves the case's text and status alone
	img, err := svc.AddCaseImage(cs.ID, "case_images/3.jpg")
	require.NoError(t, err)

	got, err := svc.GetCase(cs.ID)
	require.NoError(t, err)
	assert.Len(t, got.Images, 3)
	assert.Equal(t, translation.StatusNone, got.Status)

	// Deleting one image keeps the parent
	require.NoError(t, svc.DeleteCaseImage(cs.ID, img.ID))
	got, err = svc.GetCase(cs.ID)
	require.NoError(t, err)
	assert.Len(t, got.Images, 2)

	// Deleting the case removes the remaining images
	require.NoError(t, svc.DeleteCase(cs.ID))
	var imageCount int64
	db.Model(&models.CaseImage{}).Count(&imageCount)
	assert.Zero(t, imageCount, "gallery images cannot outlive their case")

	_, err = svc.GetCase(cs.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCaseImageWrongParent(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db, offlineTranslator{})

	a, err := svc.CreateCase(context.Background(), &CaseInput{TitleRu: "А", Images: []string{"x.jpg"}})
	require.NoError(t, err)
	b, err := svc.CreateCase(context.Background(), &CaseInput{TitleRu: "Б"})
	require.NoError(t, err)

	err = svc.DeleteCaseImage(b.ID, a.Images[0].ID)
	assert.ErrorIs(t, err, ErrNotFound, "image lookups are scoped to the parent case")
}

func TestListNewsPagination(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db, offlineTranslator{})

	for i := 0; i < 7; i++ {
		_, err := svc.CreateNews(context.Background(), &NewsInput{
			TitleRu: "Новость",
			Image:   "news/x.jpg",
		})
		require.NoError(t, err)
	}

	params := utils.PaginationParams{Page: 1, Limit: utils.ContentPageSize, Sort: "created_at", Order: "desc"}
	items, total, err := svc.ListNews(params)
	require.NoError(t, err)
	assert.EqualValues(t, 7, total)
	assert.Len(t, items, 5)

	params.Page = 2
	items, _, err = svc.ListNews(params)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestTeamLegacyFieldsAndUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db, offlineTranslator{})

	m, err := svc.CreateTeamMember(context.Background(), &TeamInput{
		Name: "Анна",
		Role: "Дизайнер",
	})
	require.NoError(t, err)
	assert.Equal(t, "Анна", m.NameRu)
	assert.Equal(t, "Дизайнер", m.RoleRu)

	m, err = svc.UpdateTeamMember(context.Background(), m.ID, &TeamUpdate{
		RoleEn: strptr("Designer"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Designer", m.RoleEn)
	assert.Equal(t, translation.StatusManual, m.Status)
}

func TestVideoRequiresFile(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db, offlineTranslator{})

	_, err := svc.CreateVideo(context.Background(), &VideoInput{Title: "Ролик"})
	assert.Error(t, err)

	v, err := svc.CreateVideo(context.Background(), &VideoInput{Title: "Ролик", Video: "videos/r.mp4"})
	require.NoError(t, err)
	assert.Equal(t, "Ролик", v.TitleRu)
}
