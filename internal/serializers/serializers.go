// internal/serializers/serializers.go
//
// Every content kind has two projections built from the same stored entity:
// a public one with a single resolved value per translatable field, and an
// admin one exposing the raw ru/en pairs for editing. Which one a handler
// returns is decided by the caller's explicit role, never by the request
// shape.
package serializers

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tab1k/tbd-back/internal/models"
	"github.com/tab1k/tbd-back/internal/translation"
)

func fallbackLabel(kind string, id uuid.UUID) string {
	return fmt.Sprintf("%s %s", kind, id)
}

// CaseImageView is shared by both projections; images carry nothing to
// translate.
type CaseImageView struct {
	ID        uuid.UUID `json:"id"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCaseImageViews(images []models.CaseImage) []CaseImageView {
	views := make([]CaseImageView, 0, len(images))
	for _, img := range images {
		views = append(views, CaseImageView{
			ID:        img.ID,
			Image:     img.Image,
			CreatedAt: img.CreatedAt,
		})
	}
	return views
}

// News

type NewsPublic struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
	URL         string             `json:"url"`
	CreatedAt   time.Time          `json:"created_at"`
	Status      translation.Status `json:"translation_status"`
}

type NewsAdmin struct {
	ID            uuid.UUID          `json:"id"`
	TitleRu       string             `json:"title_ru"`
	TitleEn       string             `json:"title_en"`
	DescriptionRu string             `json:"description_ru"`
	DescriptionEn string             `json:"description_en"`
	Image         string             `json:"image"`
	URL           string             `json:"url"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	Status        translation.Status `json:"translation_status"`
}

func NewNewsPublic(n *models.News, lang translation.Language) NewsPublic {
	return NewsPublic{
		ID:          n.ID,
		Title:       translation.Resolve(n.TitleRu, n.TitleEn, lang, fallbackLabel("News", n.ID)),
		Description: translation.Resolve(n.DescriptionRu, n.DescriptionEn, lang, ""),
		Image:       n.Image,
		URL:         n.URL,
		CreatedAt:   n.CreatedAt,
		Status:      n.Status,
	}
}

func NewNewsAdmin(n *models.News) NewsAdmin {
	return NewsAdmin{
		ID:            n.ID,
		TitleRu:       n.TitleRu,
		TitleEn:       n.TitleEn,
		DescriptionRu: n.DescriptionRu,
		DescriptionEn: n.DescriptionEn,
		Image:         n.Image,
		URL:           n.URL,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
		Status:        n.Status,
	}
}

func NewNewsPublicList(items []models.News, lang translation.Language) []NewsPublic {
	views := make([]NewsPublic, 0, len(items))
	for i := range items {
		views = append(views, NewNewsPublic(&items[i], lang))
	}
	return views
}

func NewNewsAdminList(items []models.News) []NewsAdmin {
	views := make([]NewsAdmin, 0, len(items))
	for i := range items {
		views = append(views, NewNewsAdmin(&items[i]))
	}
	return views
}

// Case

type CasePublic struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Images      []CaseImageView    `json:"images"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Status      translation.Status `json:"translation_status"`
}

type CaseAdmin struct {
	ID            uuid.UUID          `json:"id"`
	TitleRu       string             `json:"title_ru"`
	TitleEn       string             `json:"title_en"`
	DescriptionRu string             `json:"description_ru"`
	DescriptionEn string             `json:"description_en"`
	Images        []CaseImageView    `json:"images"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	Status        translation.Status `json:"translation_status"`
}

func NewCasePublic(cs *models.Case, lang translation.Language) CasePublic {
	return CasePublic{
		ID:          cs.ID,
		Title:       translation.Resolve(cs.TitleRu, cs.TitleEn, lang, fallbackLabel("Case", cs.ID)),
		Description: translation.Resolve(cs.DescriptionRu, cs.DescriptionEn, lang, ""),
		Images:      NewCaseImageViews(cs.Images),
		CreatedAt:   cs.CreatedAt,
		UpdatedAt:   cs.UpdatedAt,
		Status:      cs.Status,
	}
}

func NewCaseAdmin(cs *models.Case) CaseAdmin {
	return CaseAdmin{
		ID:            cs.ID,
		TitleRu:       cs.TitleRu,
		TitleEn:       cs.TitleEn,
		DescriptionRu: cs.DescriptionRu,
		DescriptionEn: cs.DescriptionEn,
		Images:        NewCaseImageViews(cs.Images),
		CreatedAt:     cs.CreatedAt,
		UpdatedAt:     cs.UpdatedAt,
		Status:        cs.Status,
	}
}

func NewCasePublicList(items []models.Case, lang translation.Language) []CasePublic {
	views := make([]CasePublic, 0, len(items))
	for i := range items {
		views = append(views, NewCasePublic(&items[i], lang))
	}
	return views
}

func NewCaseAdminList(items []models.Case) []CaseAdmin {
	views := make([]CaseAdmin, 0, len(items))
	for i := range items {
		views = append(views, NewCaseAdmin(&items[i]))
	}
	return views
}

// Team

type TeamPublic struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Role        string             `json:"role"`
	Photo       string             `json:"photo"`
	Status      translation.Status `json:"translation_status"`
}

type TeamAdmin struct {
	ID            uuid.UUID          `json:"id"`
	NameRu        string             `json:"name_ru"`
	NameEn        string             `json:"name_en"`
	DescriptionRu string             `json:"description_ru"`
	DescriptionEn string             `json:"description_en"`
	RoleRu        string             `json:"role_ru"`
	RoleEn        string             `json:"role_en"`
	Photo         string             `json:"photo"`
	Status        translation.Status `json:"translation_status"`
}

func NewTeamPublic(t *models.Team, lang translation.Language) TeamPublic {
	return TeamPublic{
		ID:          t.ID,
		Name:        translation.Resolve(t.NameRu, t.NameEn, lang, fallbackLabel("Team", t.ID)),
		Description: translation.Resolve(t.DescriptionRu, t.DescriptionEn, lang, ""),
		Role:        translation.Resolve(t.RoleRu, t.RoleEn, lang, ""),
		Photo:       t.Photo,
		Status:      t.Status,
	}
}

func NewTeamAdmin(t *models.Team) TeamAdmin {
	return TeamAdmin{
		ID:            t.ID,
		NameRu:        t.NameRu,
		NameEn:        t.NameEn,
		DescriptionRu: t.DescriptionRu,
		DescriptionEn: t.DescriptionEn,
		RoleRu:        t.RoleRu,
		RoleEn:        t.RoleEn,
		Photo:         t.Photo,
		Status:        t.Status,
	}
}

func NewTeamPublicList(items []models.Team, lang translation.Language) []TeamPublic {
	views := make([]TeamPublic, 0, len(items))
	for i := range items {
		views = append(views, NewTeamPublic(&items[i], lang))
	}
	return views
}

func NewTeamAdminList(items []models.Team) []TeamAdmin {
	views := make([]TeamAdmin, 0, len(items))
	for i := range items {
		views = append(views, NewTeamAdmin(&items[i]))
	}
	return views
}

// Video

type VideoPublic struct {
	ID        uuid.UUID          `json:"id"`
	Title     string             `json:"title"`
	Video     string             `json:"video"`
	CreatedAt time.Time          `json:"created_at"`
	Status    translation.Status `json:"translation_status"`
}

type VideoAdmin struct {
	ID        uuid.UUID          `json:"id"`
	TitleRu   string             `json:"title_ru"`
	TitleEn   string             `json:"title_en"`
	Video     string             `json:"video"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	Status    translation.Status `json:"translation_status"`
}

func NewVideoPublic(v *models.Video, lang translation.Language) VideoPublic {
	return VideoPublic{
		ID:        v.ID,
		Title:     translation.Resolve(v.TitleRu, v.TitleEn, lang, fallbackLabel("Video", v.ID)),
		Video:     v.Video,
		CreatedAt: v.CreatedAt,
		Status:    v.Status,
	}
}

func NewVideoAdmin(v *models.Video) VideoAdmin {
	return VideoAdmin{
		ID:        v.ID,
		TitleRu:   v.TitleRu,
		TitleEn:   v.TitleEn,
		Video:     v.Video,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
		Status:    v.Status,
	}
}

func NewVideoPublicList(items []models.Video, lang translation.Language) []VideoPublic {
	views := make([]VideoPublic, 0, len(items))
	for i := range items {
		views = append(views, NewVideoPublic(&items[i], lang))
	}
	return views
}

func NewVideoAdminList(items []models.Video) []VideoAdmin {
	views := make([]VideoAdmin, 0, len(items))
	for i := range items {
		views = append(views, NewVideoAdmin(&items[i]))
	}
	return views
}

// Logo

type LogoPublic struct {
	ID     uuid.UUID          `json:"id"`
	Title  string             `json:"title"`
	Image  string             `json:"image"`
	Status translation.Status `json:"translation_status"`
}

type LogoAdmin struct {
	ID      uuid.UUID          `json:"id"`
	TitleRu string             `json:"title_ru"`
	TitleEn string             `json:"title_en"`
	Image   string             `json:"image"`
	Status  translation.Status `json:"translation_status"`
}

func NewLogoPublic(l *models.Logo, lang translation.Language) LogoPublic {
	return LogoPublic{
		ID:     l.ID,
		Title:  translation.Resolve(l.TitleRu, l.TitleEn, lang, fallbackLabel("Logo", l.ID)),
		Image:  l.Image,
		Status: l.Status,
	}
}

func NewLogoAdmin(l *models.Logo) LogoAdmin {
	return LogoAdmin{
		ID:      l.ID,
		TitleRu: l.TitleRu,
		TitleEn: l.TitleEn,
		Image:   l.Image,
		Status:  l.Status,
	}
}

func NewLogoPublicList(items []models.Logo, lang translation.Language) []LogoPublic {
	views := make([]LogoPublic, 0, len(items))
	for i := range items {
		views = append(views, NewLogoPublic(&items[i], lang))
	}
	return views
}

func NewLogoAdminList(items []models.Logo) []LogoAdmin {
	views := make([]LogoAdmin, 0, len(items))
	for i := range items {
		views = append(views, NewLogoAdmin(&items[i]))
	}
	return views
}
