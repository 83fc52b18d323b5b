package models

import "time"

type ContentType string

const (
	TypeYoutube ContentType = "youtube"
	TypeTwitter ContentType = "twitter"
	TypeVideo   ContentType = "video"
	TypeArticle ContentType = "article"
	TypePodcast ContentType = "podcast"
	TypeBook    ContentType = "book"
	TypeCourse  ContentType = "course"
	TypeOther   ContentType = "other"
)

// ContentTypes lists every valid type, in route-registration order.
var ContentTypes = []ContentType{
	TypeTwitter,
	TypeYoutube,
	TypeVideo,
	TypeArticle,
	TypePodcast,
	TypeBook,
	TypeCourse,
	TypeOther,
}

func (t ContentType) IsValid() bool {
	for _, valid := range ContentTypes {
		if t == valid {
			return true
		}
	}
	return false
}

type Content struct {
	ID          uint        `json:"id" gorm:"primarykey"`
	UserID      uint        `json:"userId" gorm:"not null;index"`
	User        User        `json:"-" gorm:"foreignKey:UserID"`
	Title       string      `json:"title" gorm:"not null"`
	Description string      `json:"description" gorm:"not null"`
	Link        *string     `json:"link"`
	Type        ContentType `json:"type" gorm:"not null"`
	Tags        []Tag       `json:"tags" gorm:"many2many:content_tags;"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
