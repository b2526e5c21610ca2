// internal/models/content.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tab1k/tbd-back/internal/translation"
)

// News is a bilingual news item. The Russian title and the image are
// required when a news item is created.
type News struct {
	BaseModel
	TitleRu       string             `json:"title_ru" gorm:"size:255;not null"`
	TitleEn       string             `json:"title_en" gorm:"size:255"`
	DescriptionRu string             `json:"description_ru" gorm:"type:text"`
	DescriptionEn string             `json:"description_en" gorm:"type:text"`
	Image         string             `json:"image" gorm:"size:512;not null"`
	URL           string             `json:"url" gorm:"size:512"`
	Status        translation.Status `json:"translation_status" gorm:"type:varchar(10);default:'none'"`
}

func (News) TableName() string { return "news" }

func (n *News) Kind() string { return "News" }

func (n *News) FieldPairs() []translation.FieldPair {
	return []translation.FieldPair{
		{Name: "title", Primary: &n.TitleRu, Secondary: &n.TitleEn},
		{Name: "description", Primary: &n.DescriptionRu, Secondary: &n.DescriptionEn},
	}
}

func (n *News) TranslationStatus() translation.Status     { return n.Status }
func (n *News) SetTranslationStatus(s translation.Status) { n.Status = s }

// Case is a portfolio case with an owned image gallery.
type Case struct {
	BaseModel
	TitleRu       string             `json:"title_ru" gorm:"size:255"`
	TitleEn       string             `json:"title_en" gorm:"size:255"`
	DescriptionRu string             `json:"description_ru" gorm:"type:text"`
	DescriptionEn string             `json:"description_en" gorm:"type:text"`
	Status        translation.Status `json:"translation_status" gorm:"type:varchar(10);default:'none'"`

	// Gallery images cannot outlive their case.
	Images []CaseImage `json:"images,omitempty" gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE"`
}

func (c *Case) Kind() string { return "Case" }

func (c *Case) FieldPairs() []translation.FieldPair {
	return []translation.FieldPair{
		{Name: "title", Primary: &c.TitleRu, Secondary: &c.TitleEn},
		{Name: "description", Primary: &c.DescriptionRu, Secondary: &c.DescriptionEn},
	}
}

func (c *Case) TranslationStatus() translation.Status     { return c.Status }
func (c *Case) SetTranslationStatus(s translation.Status) { c.Status = s }

// CaseImage carries no translatable fields of its own and is created and
// deleted independently of its parent's text.
type CaseImage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	CaseID    uuid.UUID `json:"case_id" gorm:"type:uuid;not null;index"`
	Image     string    `json:"image" gorm:"size:512;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (ci *CaseImage) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}

// Team is a single team member.
type Team struct {
	BaseModel
	NameRu        string             `json:"name_ru" gorm:"size:100"`
	NameEn        string             `json:"name_en" gorm:"size:100"`
	DescriptionRu string             `json:"description_ru" gorm:"type:text"`
	DescriptionEn string             `json:"description_en" gorm:"type:text"`
	RoleRu        string             `json:"role_ru" gorm:"size:100"`
	RoleEn        string             `json:"role_en" gorm:"size:100"`
	Photo         string             `json:"photo" gorm:"size:512"`
	Status        translation.Status `json:"translation_status" gorm:"type:varchar(10);default:'none'"`
}

func (Team) TableName() string { return "team" }

func (t *Team) Kind() string { return "Team" }

func (t *Team) FieldPairs() []translation.FieldPair {
	return []translation.FieldPair{
		{Name: "name", Primary: &t.NameRu, Secondary: &t.NameEn},
		{Name: "description", Primary: &t.DescriptionRu, Secondary: &t.DescriptionEn},
		{Name: "role", Primary: &t.RoleRu, Secondary: &t.RoleEn},
	}
}

func (t *Team) TranslationStatus() translation.Status     { return t.Status }
func (t *Team) SetTranslationStatus(s translation.Status) { t.Status = s }

type Video struct {
	BaseModel
	TitleRu string             `json:"title_ru" gorm:"size:200"`
	TitleEn string             `json:"title_en" gorm:"size:200"`
	Video   string             `json:"video" gorm:"size:512;not null"`
	Status  translation.Status `json:"translation_status" gorm:"type:varchar(10);default:'none'"`
}

func (v *Video) Kind() string { return "Video" }

func (v *Video) FieldPairs() []translation.FieldPair {
	return []translation.FieldPair{
		{Name: "title", Primary: &v.TitleRu, Secondary: &v.TitleEn},
	}
}

func (v *Video) TranslationStatus() translation.Status     { return v.Status }
func (v *Video) SetTranslationStatus(s translation.Status) { v.Status = s }

type Logo struct {
	BaseModel
	TitleRu string             `json:"title_ru" gorm:"size:200"`
	TitleEn string             `json:"title_en" gorm:"size:200"`
	Image   string             `json:"image" gorm:"size:512"`
	Status  translation.Status `json:"translation_status" gorm:"type:varchar(10);default:'none'"`
}

func (Logo) TableName() string { return "logo" }

func (l *Logo) Kind() string { return "Logo" }

func (l *Logo) FieldPairs() []translation.FieldPair {
	return []translation.FieldPair{
		{Name: "title", Primary: &l.TitleRu, Secondary: &l.TitleEn},
	}
}

func (l *Logo) TranslationStatus() translation.Status     { return l.Status }
func (l *Logo) SetTranslationStatus(s translation.Status) { l.Status = s }
