// internal/serializers/serializers_test.go
package serializers

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tab1k/tbd-back/internal/models"
	"github.com/tab1k/tbd-back/internal/translation"
)

func newTestCase() *models.Case {
	cs := &models.Case{
		TitleRu:       "Кейс для банка",
		TitleEn:       "Bank case",
		DescriptionRu: "Описание кейса",
		Status:        translation.StatusManual,
	}
	cs.ID = uuid.New()
	cs.Images = []models.CaseImage{
		{ID: uuid.New(), CaseID: cs.ID, Image: "case_images/a.jpg"},
		{ID: uuid.New(), CaseID: cs.ID, Image: "case_images/b.jpg"},
	}
	return cs
}

func TestCaseProjectionsDiffer(t *testing.T) {
	cs := newTestCase()

	public := NewCasePublic(cs, translation.LanguageEN)
	admin := NewCaseAdmin(cs)

	// Public view carries one resolved value per field
	assert.Equal(t, "Bank case", public.Title)
	assert.Equal(t, "Описание кейса", public.Description, "missing english falls back to russian")
	assert.Equal(t, translation.StatusManual, public.Status)

	// Admin view carries the raw pairs
	assert.Equal(t, "Кейс для банка", admin.TitleRu)
	assert.Equal(t, "Bank case", admin.TitleEn)
	assert.Equal(t, "Описание кейса", admin.DescriptionRu)
	assert.Empty(t, admin.DescriptionEn)

	// Both carry the same gallery
	assert.Len(t, public.Images, 2)
	assert.Len(t, admin.Images, 2)
	assert.Equal(t, "case_images/a.jpg", public.Images[0].Image)
}

func TestCasePublicRussianIgnoresEnglish(t *testing.T) {
	cs := newTestCase()

	public := NewCasePublic(cs, translation.LanguageRU)
	assert.Equal(t, "Кейс для банка", public.Title)
	assert.Equal(t, "Описание кейса", public.Description)
}

func TestNewsPublicFallbackLabel(t *testing.T) {
	n := &models.News{Image: "news/x.jpg"}
	n.ID = uuid.New()

	public := NewNewsPublic(n, translation.LanguageEN)
	assert.Equal(t, fmt.Sprintf("News %s", n.ID), public.Title, "empty titles resolve to a stable label")
	assert.Empty(t, public.Description, "descriptions fall back to empty, not a label")
}

func TestTeamPublicResolvesAllPairs(t *testing.T) {
	m := &models.Team{
		NameRu: "Анна",
		NameEn: "Anna",
		RoleRu: "Дизайнер",
		Status: translation.StatusAuto,
	}
	m.ID = uuid.New()

	public := NewTeamPublic(m, translation.LanguageEN)
	assert.Equal(t, "Anna", public.Name)
	assert.Equal(t, "Дизайнер", public.Role)
	assert.Empty(t, public.Description)
}

func TestListHelpersReturnEmptySlices(t *testing.T) {
	assert.NotNil(t, NewNewsPublicList(nil, translation.LanguageRU))
	assert.NotNil(t, NewCaseAdminList(nil))
	assert.NotNil(t, NewLogoPublicList(nil, translation.LanguageEN))
}
