package dto

// Content create/update requests bind from multipart form data because a
// media binary may ride along. The media file itself is read from the
// request separately (form fields "image" / "video").

// SaveHeroRequest represents the request to create or update hero content
type SaveHeroRequest struct {
	TitleEn       string `form:"titleEn" binding:"required"`
	TitleAr       string `form:"titleAr" binding:"required"`
	SubtitleEn    string `form:"subtitleEn" binding:"required"`
	SubtitleAr    string `form:"subtitleAr" binding:"required"`
	DescriptionEn string `form:"descriptionEn" binding:"required"`
	DescriptionAr string `form:"descriptionAr" binding:"required"`
	RemoveVideo   bool   `form:"removeVideo"`
}

// CreateProgramRequest represents the request to create a program
type CreateProgramRequest struct {
	TitleEn       string `form:"titleEn" binding:"required"`
	TitleAr       string `form:"titleAr" binding:"required"`
	DescriptionEn string `form:"descriptionEn" binding:"required"`
	DescriptionAr string `form:"descriptionAr" binding:"required"`
	Features      string `form:"features"` // serialized JSON array of strings
	IsActive      *bool  `form:"isActive"`
	Order         int    `form:"order"`
}

// UpdateProgramRequest represents the request to update a program
type UpdateProgramRequest struct {
	TitleEn       string `form:"titleEn" binding:"required"`
	TitleAr       string `form:"titleAr" binding:"required"`
	DescriptionEn string `form:"descriptionEn" binding:"required"`
	DescriptionAr string `form:"descriptionAr" binding:"required"`
	Features      string `form:"features"`
	IsActive      *bool  `form:"isActive"`
	Order         int    `form:"order"`
	RemoveImage   bool   `form:"removeImage"`
}

// CreateCoachRequest represents the request to create a coach
type CreateCoachRequest struct {
	NameEn      string `form:"nameEn" binding:"required"`
	NameAr      string `form:"nameAr" binding:"required"`
	TitleEn     string `form:"titleEn" binding:"required"`
	TitleAr     string `form:"titleAr" binding:"required"`
	BioEn       string `form:"bioEn" binding:"required"`
	BioAr       string `form:"bioAr" binding:"required"`
	Experience  int    `form:"experience" binding:"min=0"`
	Specialties string `form:"specialties"` // serialized JSON array of strings
	IsActive    *bool  `form:"isActive"`
	Order       int    `form:"order"`
}

// UpdateCoachRequest represents the request to update a coach
type UpdateCoachRequest struct {
	NameEn      string `form:"nameEn" binding:"required"`
	NameAr      string `form:"nameAr" binding:"required"`
	TitleEn     string `form:"titleEn" binding:"required"`
	TitleAr     string `form:"titleAr" binding:"required"`
	BioEn       string `form:"bioEn" binding:"required"`
	BioAr       string `form:"bioAr" binding:"required"`
	Experience  int    `form:"experience" binding:"min=0"`
	Specialties string `form:"specialties"`
	IsActive    *bool  `form:"isActive"`
	Order       int    `form:"order"`
	RemoveImage bool   `form:"removeImage"`
}

// CreateTestimonialRequest represents the request to create a testimonial
type CreateTestimonialRequest struct {
	NameEn   string `form:"nameEn" binding:"required"`
	NameAr   string `form:"nameAr" binding:"required"`
	TextEn   string `form:"textEn" binding:"required"`
	TextAr   string `form:"textAr" binding:"required"`
	Rating   int    `form:"rating" binding:"required,min=1,max=5"`
	IsActive *bool  `form:"isActive"`
	Order    int    `form:"order"`
}

// UpdateTestimonialRequest represents the request to update a testimonial
type UpdateTestimonialRequest struct {
	NameEn      string `form:"nameEn" binding:"required"`
	NameAr      string `form:"nameAr" binding:"required"`
	TextEn      string `form:"textEn" binding:"required"`
	TextAr      string `form:"textAr" binding:"required"`
	Rating      int    `form:"rating" binding:"required,min=1,max=5"`
	IsActive    *bool  `form:"isActive"`
	Order       int    `form:"order"`
	RemoveImage bool   `form:"removeImage"`
}

// CreateGalleryImageRequest represents the request to create a gallery
// image. The image binary itself is required and validated before any
// database write.
type CreateGalleryImageRequest struct {
	TitleEn       string  `form:"titleEn" binding:"required"`
	TitleAr       string  `form:"titleAr" binding:"required"`
	DescriptionEn *string `form:"descriptionEn"`
	DescriptionAr *string `form:"descriptionAr"`
	IsActive      *bool   `form:"isActive"`
	Order         int     `form:"order"`
}

// UpdateGalleryImageRequest represents the request to update a gallery image
type UpdateGalleryImageRequest struct {
	TitleEn       string  `form:"titleEn" binding:"required"`
	TitleAr       string  `form:"titleAr" binding:"required"`
	DescriptionEn *string `form:"descriptionEn"`
	DescriptionAr *string `form:"descriptionAr"`
	IsActive      *bool   `form:"isActive"`
	Order         int     `form:"order"`
}

// SaveSiteSettingsRequest represents the request to save site settings
type SaveSiteSettingsRequest struct {
	SiteNameEn   string  `json:"siteNameEn" binding:"required"`
	SiteNameAr   string  `json:"siteNameAr" binding:"required"`
	AboutEn      string  `json:"aboutEn" binding:"required"`
	AboutAr      string  `json:"aboutAr" binding:"required"`
	FacebookURL  *string `json:"facebookUrl" binding:"omitempty,url"`
	InstagramURL *string `json:"instagramUrl" binding:"omitempty,url"`
	YoutubeURL   *string `json:"youtubeUrl" binding:"omitempty,url"`
}

// SaveContactInfoRequest represents the request to save contact info
type SaveContactInfoRequest struct {
	AddressEn      string  `json:"addressEn" binding:"required"`
	AddressAr      string  `json:"addressAr" binding:"required"`
	Phone          string  `json:"phone" binding:"required"`
	Whatsapp       *string `json:"whatsapp"`
	Email          string  `json:"email" binding:"required,email"`
	MapURL         *string `json:"mapUrl" binding:"omitempty,url"`
	WorkingHoursEn *string `json:"workingHoursEn"`
	WorkingHoursAr *string `json:"workingHoursAr"`
}
