package models

import (
	"time"
)

// HeroContent defines the landing hero section based on the 'hero_content'
// table. At most one logically current row exists; saves go through a
// conditional upsert keyed by the fixed HeroContentID.
type HeroContent struct {
	ID            string    `json:"id" db:"id"`
	TitleEn       string    `json:"titleEn" db:"title_en"`
	TitleAr       string    `json:"titleAr" db:"title_ar"`
	SubtitleEn    string    `json:"subtitleEn" db:"subtitle_en"`
	SubtitleAr    string    `json:"subtitleAr" db:"subtitle_ar"`
	DescriptionEn string    `json:"descriptionEn" db:"description_en"`
	DescriptionAr string    `json:"descriptionAr" db:"description_ar"`
	VideoURL      *string   `json:"videoUrl,omitempty" db:"video_url"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// Fixed identifiers for singleton rows. Keying the upsert on a well-known
// id removes the read-then-write race of an exists-check.
const (
	HeroContentID  = "hero-1"
	SiteSettingsID = "settings-1"
	ContactInfoID  = "contact-1"
)

// Program defines a training program based on the 'programs' table
type Program struct {
	ID            string     `json:"id" db:"id"`
	TitleEn       string     `json:"titleEn" db:"title_en"`
	TitleAr       string     `json:"titleAr" db:"title_ar"`
	DescriptionEn string     `json:"descriptionEn" db:"description_en"`
	DescriptionAr string     `json:"descriptionAr" db:"description_ar"`
	Features      StringList `json:"features" db:"features"`
	ImageURL      *string    `json:"imageUrl,omitempty" db:"image_url"`
	IsActive      bool       `json:"isActive" db:"is_active"`
	Order         int        `json:"order" db:"order"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}

// Coach defines a coach profile based on the 'coaches' table
type Coach struct {
	ID          string     `json:"id" db:"id"`
	NameEn      string     `json:"nameEn" db:"name_en"`
	NameAr      string     `json:"nameAr" db:"name_ar"`
	TitleEn     string     `json:"titleEn" db:"title_en"`
	TitleAr     string     `json:"titleAr" db:"title_ar"`
	BioEn       string     `json:"bioEn" db:"bio_en"`
	BioAr       string     `json:"bioAr" db:"bio_ar"`
	Experience  int        `json:"experience" db:"experience"`
	Specialties StringList `json:"specialties" db:"specialties"`
	ImageURL    *string    `json:"imageUrl,omitempty" db:"image_url"`
	IsActive    bool       `json:"isActive" db:"is_active"`
	Order       int        `json:"order" db:"order"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// Testimonial defines a testimonial based on the 'testimonials' table
type Testimonial struct {
	ID        string    `json:"id" db:"id"`
	NameEn    string    `json:"nameEn" db:"name_en"`
	NameAr    string    `json:"nameAr" db:"name_ar"`
	TextEn    string    `json:"textEn" db:"text_en"`
	TextAr    string    `json:"textAr" db:"text_ar"`
	Rating    int       `json:"rating" db:"rating"`
	ImageURL  *string   `json:"imageUrl,omitempty" db:"image_url"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	Order     int       `json:"order" db:"order"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// GalleryImage defines a gallery entry based on the 'gallery_images' table.
// An image reference is required; a gallery row without a binary is invalid.
type GalleryImage struct {
	ID            string    `json:"id" db:"id"`
	TitleEn       string    `json:"titleEn" db:"title_en"`
	TitleAr       string    `json:"titleAr" db:"title_ar"`
	DescriptionEn *string   `json:"descriptionEn,omitempty" db:"description_en"`
	DescriptionAr *string   `json:"descriptionAr,omitempty" db:"description_ar"`
	ImageURL      string    `json:"imageUrl" db:"image_url"`
	IsActive      bool      `json:"isActive" db:"is_active"`
	Order         int       `json:"order" db:"order"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// SiteSettings defines sitewide configuration based on the 'site_settings'
// table; a singleton row with the same upsert lifecycle as HeroContent.
type SiteSettings struct {
	ID           string    `json:"id" db:"id"`
	SiteNameEn   string    `json:"siteNameEn" db:"site_name_en"`
	SiteNameAr   string    `json:"siteNameAr" db:"site_name_ar"`
	AboutEn      string    `json:"aboutEn" db:"about_en"`
	AboutAr      string    `json:"aboutAr" db:"about_ar"`
	FacebookURL  *string   `json:"facebookUrl,omitempty" db:"facebook_url"`
	InstagramURL *string   `json:"instagramUrl,omitempty" db:"instagram_url"`
	YoutubeURL   *string   `json:"youtubeUrl,omitempty" db:"youtube_url"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// ContactInfo defines contact details based on the 'contact_info' table;
// also a singleton.
type ContactInfo struct {
	ID             string    `json:"id" db:"id"`
	AddressEn      string    `json:"addressEn" db:"address_en"`
	AddressAr      string    `json:"addressAr" db:"address_ar"`
	Phone          string    `json:"phone" db:"phone"`
	Whatsapp       *string   `json:"whatsapp,omitempty" db:"whatsapp"`
	Email          string    `json:"email" db:"email"`
	MapURL         *string   `json:"mapUrl,omitempty" db:"map_url"`
	WorkingHoursEn *string   `json:"workingHoursEn,omitempty" db:"working_hours_en"`
	WorkingHoursAr *string   `json:"workingHoursAr,omitempty" db:"working_hours_ar"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
