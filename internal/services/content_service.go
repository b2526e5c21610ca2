// internal/services/content_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tab1k/tbd-back/internal/models"
	"github.com/tab1k/tbd-back/internal/translation"
	"github.com/tab1k/tbd-back/internal/utils"
)

// ContentService owns CRUD for every content kind. Writes accept either the
// raw ru/en pair shape or the legacy single-field shape (which targets the
// Russian column only), and run the translation lifecycle before committing.
type ContentService struct {
	db        *gorm.DB
	lifecycle *translation.Lifecycle
	log       *logrus.Entry
}

func NewContentService(db *gorm.DB, lifecycle *translation.Lifecycle) *ContentService {
	return &ContentService{
		db:        db,
		lifecycle: lifecycle,
		log:       logrus.WithField("component", "content_service"),
	}
}

// secondaryStatus applies the editor-driven status transitions after an
// update touched secondary fields: a non-empty value supplied directly makes
// the status manual (sticky from then on); clearing every secondary value
// resets it to none so the lifecycle may auto-fill again.
func secondaryStatus(e translation.Translatable, setNonEmpty, touched bool) {
	if setNonEmpty {
		e.SetTranslationStatus(translation.StatusManual)
		return
	}
	if !touched {
		return
	}
	for _, pair := range e.FieldPairs() {
		if *pair.Secondary != "" {
			return
		}
	}
	e.SetTranslationStatus(translation.StatusNone)
}

// assign copies an optional update field and reports whether it was present
// and whether it carried a non-empty value.
func assign(dst *string, src *string, touched, nonEmpty *bool) {
	if src == nil {
		return
	}
	*dst = *src
	*touched = true
	if *src != "" {
		*nonEmpty = true
	}
}

// News

type NewsInput struct {
	Title         string `json:"title"`       // legacy: writes the Russian title
	Description   string `json:"description"` // legacy: writes the Russian description
	TitleRu       string `json:"title_ru"`
	TitleEn       string `json:"title_en"`
	DescriptionRu string `json:"description_ru"`
	DescriptionEn string `json:"description_en"`
	Image         string `json:"image"`
	URL           string `json:"url"`
}

type NewsUpdate struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	TitleRu       *string `json:"title_ru"`
	TitleEn       *string `json:"title_en"`
	DescriptionRu *string `json:"description_ru"`
	DescriptionEn *string `json:"description_en"`
	Image         *string `json:"image"`
	URL           *string `json:"url"`
}

func (s *ContentService) ListNews(params utils.PaginationParams) ([]models.News, int64, error) {
	var total int64
	if err := s.db.Model(&models.News{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count news: %w", err)
	}

	var items []models.News
	query := utils.ApplyPagination(s.db.Order("created_at "+params.Order), params)
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list news: %w", err)
	}
	return items, total, nil
}

func (s *ContentService) GetNews(id uuid.UUID) (*models.News, error) {
	var item models.News
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &item, nil
}

func (s *ContentService) CreateNews(ctx context.Context, in *NewsInput) (*models.News, error) {
	if in.TitleRu == "" && in.Title != "" {
		in.TitleRu = in.Title
	}
	if in.DescriptionRu == "" && in.Description != "" {
		in.DescriptionRu = in.Description
	}

	if in.TitleRu == "" {
		return nil, fmt.Errorf("%w: title_ru is required", ErrInvalidInput)
	}
	if in.Image == "" {
		return nil, fmt.Errorf("%w: image is required for a new news item", ErrInvalidInput)
	}

	item := &models.News{
		TitleRu:       in.TitleRu,
		TitleEn:       in.TitleEn,
		DescriptionRu: in.DescriptionRu,
		DescriptionEn: in.DescriptionEn,
		Image:         in.Image,
		URL:           in.URL,
		Status:        translation.StatusNone,
	}

	if in.TitleEn != "" || in.DescriptionEn != "" {
		item.Status = translation.StatusManual
	}

	s.lifecycle.Apply(ctx, item)

	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create news: %w", err)
	}
	return item, nil
}

func (s *ContentService) UpdateNews(ctx context.Context, id uuid.UUID, in *NewsUpdate) (*models.News, error) {
	item, err := s.GetNews(id)
	if err != nil {
		return nil, err
	}

	var touched, nonEmpty bool
	if in.Title != nil && *in.Title != "" {
		item.TitleRu = *in.Title
	}
	if in.Description != nil && *in.Description != "" {
		item.DescriptionRu = *in.Description
	}
	if in.TitleRu != nil {
		item.TitleRu = *in.TitleRu
	}
	if in.DescriptionRu != nil {
		item.DescriptionRu = *in.DescriptionRu
	}
	assign(&item.TitleEn, in.TitleEn, &touched, &nonEmpty)
	assign(&item.DescriptionEn, in.DescriptionEn, &touched, &nonEmpty)
	if in.Image != nil && *in.Image != "" {
		item.Image = *in.Image
	}
	if in.URL != nil {
		item.URL = *in.URL
	}

	if item.TitleRu == "" {
		return nil, fmt.Errorf("%w: title_ru cannot be empty", ErrInvalidInput)
	}

	secondaryStatus(item, nonEmpty, touched)
	s.lifecycle.Apply(ctx, item)

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update news: %w", err)
	}
	return item, nil
}

func (s *ContentService) DeleteNews(id uuid.UUID) error {
	item, err := s.GetNews(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(item).Error; err != nil {
		return fmt.Errorf("failed to delete news: %w", err)
	}
	return nil
}

// Cases

type CaseInput struct {
	Title         string   `json:"title"`       // legacy: writes the Russian title
	Description   string   `json:"description"` // legacy: writes the Russian description
	TitleRu       string   `json:"title_ru"`
	TitleEn       string   `json:"title_en"`
	DescriptionRu string   `json:"description_ru"`
	DescriptionEn string   `json:"description_en"`
	Images        []string `json:"images"`
}

type CaseUpdate struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	TitleRu       *string  `json:"title_ru"`
	TitleEn       *string  `json:"title_en"`
	DescriptionRu *string  `json:"description_ru"`
	DescriptionEn *string  `json:"description_en"`
	Images        []string `json:"images"` // appended to the gallery
}

func (s *ContentService) ListCases() ([]models.Case, error) {
	var items []models.Case
	err := s.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("case_images.created_at ASC")
		}).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return items, nil
}

func (s *ContentService) GetCase(id uuid.UUID) (*models.Case, error) {
	var item models.Case
	err := s.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("case_images.created_at ASC")
		}).
		First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &item, nil
}

func (s *ContentService) CreateCase(ctx context.Context, in *CaseInput) (*models.Case, error) {
	if in.TitleRu == "" && in.Title != "" {
		in.TitleRu = in.Title
	}
	if in.DescriptionRu == "" && in.Description != "" {
		in.DescriptionRu = in.Description
	}

	item := &models.Case{
		TitleRu:       in.TitleRu,
		TitleEn:       in.TitleEn,
		DescriptionRu: in.DescriptionRu,
		DescriptionEn: in.DescriptionEn,
		Status:        translation.StatusNone,
	}

	if in.TitleEn != "" || in.DescriptionEn != "" {
		item.Status = translation.StatusManual
	}

	s.lifecycle.Apply(ctx, item)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		for _, image := range in.Images {
			img := &models.CaseImage{CaseID: item.ID, Image: image}
			if err := tx.Create(img).Error; err != nil {
				return err
			}
			item.Images = append(item.Images, *img)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}
	return item, nil
}

func (s *ContentService) UpdateCase(ctx context.Context, id uuid.UUID, in *CaseUpdate) (*models.Case, error) {
	item, err := s.GetCase(id)
	if err != nil {
		return nil, err
	}

	var touched, nonEmpty bool
	if in.Title != nil && *in.Title != "" {
		item.TitleRu = *in.Title
	}
	if in.Description != nil && *in.Description != "" {
		item.DescriptionRu = *in.Description
	}
	if in.TitleRu != nil {
		item.TitleRu = *in.TitleRu
	}
	if in.DescriptionRu != nil {
		item.DescriptionRu = *in.DescriptionRu
	}
	assign(&item.TitleEn, in.TitleEn, &touched, &nonEmpty)
	assign(&item.DescriptionEn, in.DescriptionEn, &touched, &nonEmpty)

	secondaryStatus(item, nonEmpty, touched)
	s.lifecycle.Apply(ctx, item)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Images").Save(item).Error; err != nil {
			return err
		}
		for _, image := range in.Images {
			img := &models.CaseImage{CaseID: item.ID, Image: image}
			if err := tx.Create(img).Error; err != nil {
				return err
			}
			item.Images = append(item.Images, *img)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update case: %w", err)
	}
	return item, nil
}

// DeleteCase removes the case together with its owned gallery images.
func (s *ContentService) DeleteCase(id uuid.UUID) error {
	item, err := s.GetCase(id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("case_id = ?", item.ID).Delete(&models.CaseImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete case images: %w", err)
		}
		if err := tx.Delete(item).Error; err != nil {
			return fmt.Errorf("failed to delete case: %w", err)
		}
		return nil
	})
}

// AddCaseImage attaches an image to an existing case without touching the
// case's own fields or translation status.
func (s *ContentService) AddCaseImage(caseID uuid.UUID, image string) (*models.CaseImage, error) {
	if image == "" {
		return nil, fmt.Errorf("%w: image is required", ErrInvalidInput)
	}
	if _, err := s.GetCase(caseID); err != nil {
		return nil, err
	}

	img := &models.CaseImage{CaseID: caseID, Image: image}
	if err := s.db.Create(img).Error; err != nil {
		return nil, fmt.Errorf("failed to create case image: %w", err)
	}
	return img, nil
}

// DeleteCaseImage removes a single gallery image; the parent case survives.
func (s *ContentService) DeleteCaseImage(caseID, imageID uuid.UUID) error {
	var img models.CaseImage
	if err := s.db.First(&img, "id = ? AND case_id = ?", imageID, caseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}
	if err := s.db.Delete(&img).Error; err != nil {
		return fmt.Errorf("failed to delete case image: %w", err)
	}
	return nil
}

// Team

type TeamInput struct {
	Name          string `json:"name"`        // legacy: writes the Russian name
	Description   string `json:"description"` // legacy
	Role          string `json:"role"`        // legacy
	NameRu        string `json:"name_ru"`
	NameEn        string `json:"name_en"`
	DescriptionRu string `json:"description_ru"`
	DescriptionEn string `json:"description_en"`
	RoleRu        string `json:"role_ru"`
	RoleEn        string `json:"role_en"`
	Photo         string `json:"photo"`
}

type TeamUpdate struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Role          *string `json:"role"`
	NameRu        *string `json:"name_ru"`
	NameEn        *string `json:"name_en"`
	DescriptionRu *string `json:"description_ru"`
	DescriptionEn *string `json:"description_en"`
	RoleRu        *string `json:"role_ru"`
	RoleEn        *string `json:"role_en"`
	Photo         *string `json:"photo"`
}

func (s *ContentService) ListTeam() ([]models.Team, error) {
	var items []models.Team
	if err := s.db.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list team: %w", err)
	}
	return items, nil
}

func (s *ContentService) GetTeamMember(id uuid.UUID) (*models.Team, error) {
	var item models.Team
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &item, nil
}

func (s *ContentService) CreateTeamMember(ctx context.Context, in *TeamInput) (*models.Team, error) {
	if in.NameRu == "" && in.Name != "" {
		in.NameRu = in.Name
	}
	if in.DescriptionRu == "" && in.Description != "" {
		in.DescriptionRu = in.Description
	}
	if in.RoleRu == "" && in.Role != "" {
		in.RoleRu = in.Role
	}

	item := &models.Team{
		NameRu:        in.NameRu,
		NameEn:        in.NameEn,
		DescriptionRu: in.DescriptionRu,
		DescriptionEn: in.DescriptionEn,
		RoleRu:        in.RoleRu,
		RoleEn:        in.RoleEn,
		Photo:         in.Photo,
		Status:        translation.StatusNone,
	}

	if in.NameEn != "" || in.DescriptionEn != "" || in.RoleEn != "" {
		item.Status = translation.StatusManual
	}

	s.lifecycle.Apply(ctx, item)

	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	return item, nil
}

func (s *ContentService) UpdateTeamMember(ctx context.Context, id uuid.UUID, in *TeamUpdate) (*models.Team, error) {
	item, err := s.GetTeamMember(id)
	if err != nil {
		return nil, err
	}

	var touched, nonEmpty bool
	if in.Name != nil && *in.Name != "" {
		item.NameRu = *in.Name
	}
	if in.Description != nil && *in.Description != "" {
		item.DescriptionRu = *in.Description
	}
	if in.Role != nil && *in.Role != "" {
		item.RoleRu = *in.Role
	}
	if in.NameRu != nil {
		item.NameRu = *in.NameRu
	}
	if in.DescriptionRu != nil {
		item.DescriptionRu = *in.DescriptionRu
	}
	if in.RoleRu != nil {
		item.RoleRu = *in.RoleRu
	}
	assign(&item.NameEn, in.NameEn, &touched, &nonEmpty)
	assign(&item.DescriptionEn, in.DescriptionEn, &touched, &nonEmpty)
	assign(&item.RoleEn, in.RoleEn, &touched, &nonEmpty)
	if in.Photo != nil {
		item.Photo = *in.Photo
	}

	secondaryStatus(item, nonEmpty, touched)
	s.lifecycle.Apply(ctx, item)

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	return item, nil
}

func (s *ContentService) DeleteTeamMember(id uuid.UUID) error {
	item, err := s.GetTeamMember(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(item).Error; err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return nil
}

// Videos

type VideoInput struct {
	Title   string `json:"title"` // legacy: writes the Russian title
	TitleRu string `json:"title_ru"`
	TitleEn string `json:"title_en"`
	Video   string `json:"video"`
}

type VideoUpdate struct {
	Title   *string `json:"title"`
	TitleRu *string `json:"title_ru"`
	TitleEn *string `json:"title_en"`
	Video   *string `json:"video"`
}

func (s *ContentService) ListVideos(params utils.PaginationParams) ([]models.Video, int64, error) {
	var total int64
	if err := s.db.Model(&models.Video{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count videos: %w", err)
	}

	var items []models.Video
	query := utils.ApplyPagination(s.db.Order("created_at "+params.Order), params)
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list videos: %w", err)
	}
	return items, total, nil
}

func (s *ContentService) GetVideo(id uuid.UUID) (*models.Video, error) {
	var item models.Video
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &item, nil
}

func (s *ContentService) CreateVideo(ctx context.Context, in *VideoInput) (*models.Video, error) {
	if in.TitleRu == "" && in.Title != "" {
		in.TitleRu = in.Title
	}
	if in.Video == "" {
		return nil, fmt.Errorf("%w: video file is required", ErrInvalidInput)
	}

	item := &models.Video{
		TitleRu: in.TitleRu,
		TitleEn: in.TitleEn,
		Video:   in.Video,
		Status:  translation.StatusNone,
	}

	if in.TitleEn != "" {
		item.Status = translation.StatusManual
	}

	s.lifecycle.Apply(ctx, item)

	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	return item, nil
}

func (s *ContentService) UpdateVideo(ctx context.Context, id uuid.UUID, in *VideoUpdate) (*models.Video, error) {
	item, err := s.GetVideo(id)
	if err != nil {
		return nil, err
	}

	var touched, nonEmpty bool
	if in.Title != nil && *in.Title != "" {
		item.TitleRu = *in.Title
	}
	if in.TitleRu != nil {
		item.TitleRu = *in.TitleRu
	}
	assign(&item.TitleEn, in.TitleEn, &touched, &nonEmpty)
	if in.Video != nil && *in.Video != "" {
		item.Video = *in.Video
	}

	secondaryStatus(item, nonEmpty, touched)
	s.lifecycle.Apply(ctx, item)

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}
	return item, nil
}

func (s *ContentService) DeleteVideo(id uuid.UUID) error {
	item, err := s.GetVideo(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(item).Error; err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	return nil
}

// Logos

type LogoInput struct {
	Title   string `json:"title"` // legacy: writes the Russian title
	TitleRu string `json:"title_ru"`
	TitleEn string `json:"title_en"`
	Image   string `json:"image"`
}

type LogoUpdate struct {
	Title   *string `json:"title"`
	TitleRu *string `json:"title_ru"`
	TitleEn *string `json:"title_en"`
	Image   *string `json:"image"`
}

func (s *ContentService) ListLogos() ([]models.Logo, error) {
	var items []models.Logo
	if err := s.db.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list logos: %w", err)
	}
	return items, nil
}

func (s *ContentService) GetLogo(id uuid.UUID) (*models.Logo, error) {
	var item models.Logo
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &item, nil
}

func (s *ContentService) CreateLogo(ctx context.Context, in *LogoInput) (*models.Logo, error) {
	if in.TitleRu == "" && in.Title != "" {
		in.TitleRu = in.Title
	}

	item := &models.Logo{
		TitleRu: in.TitleRu,
		TitleEn: in.TitleEn,
		Image:   in.Image,
		Status:  translation.StatusNone,
	}

	if in.TitleEn != "" {
		item.Status = translation.StatusManual
	}

	s.lifecycle.Apply(ctx, item)

	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create logo: %w", err)
	}
	return item, nil
}

func (s *ContentService) UpdateLogo(ctx context.Context, id uuid.UUID, in *LogoUpdate) (*models.Logo, error) {
	item, err := s.GetLogo(id)
	if err != nil {
		return nil, err
	}

	var touched, nonEmpty bool
	if in.Title != nil && *in.Title != "" {
		item.TitleRu = *in.Title
	}
	if in.TitleRu != nil {
		item.TitleRu = *in.TitleRu
	}
	assign(&item.TitleEn, in.TitleEn, &touched, &nonEmpty)
	if in.Image != nil && *in.Image != "" {
		item.Image = *in.Image
	}

	secondaryStatus(item, nonEmpty, touched)
	s.lifecycle.Apply(ctx, item)

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update logo: %w", err)
	}
	return item, nil
}

func (s *ContentService) DeleteLogo(id uuid.UUID) error {
	item, err := s.GetLogo(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(item).Error; err != nil {
		return fmt.Errorf("failed to delete logo: %w", err)
	}
	return nil
}
