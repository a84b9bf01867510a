package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/app/repositories"
	"github.com/sd13/academy/internal/config"
	"github.com/sd13/academy/internal/pkg/auth"
	"github.com/sd13/academy/internal/pkg/validation"
)

// Default admin credentials, overridable through the environment. The
// password is hashed at seed time, never stored in clear.
const (
	defaultAdminEmail    = "admin@sd13academy.com"
	defaultAdminPassword = "ChangeMe123!"
)

func strPtr(s string) *string { return &s }

// CreateDefaultData inserts the starter content set. Every insert is
// keyed on a fixed ID and skips rows that already exist, so running the
// seed on every startup is safe: operator edits are never overwritten.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := repositories.NewRepositories(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	if err := seedAdminUser(ctx, repos.UserRepository, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedHero(ctx, repos.HeroRepository, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedPrograms(ctx, repos.ProgramRepository, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedCoaches(ctx, repos.CoachRepository, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedTestimonials(ctx, repos.TestimonialRepository, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedEvents(ctx, repos.EventRepository, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedSettings(ctx, repos.SettingsRepository, repos.ContactRepository, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedAdminUser(ctx context.Context, userRepo *repositories.UserRepository, lgr zerolog.Logger) error {
	email := config.GetEnv("ADMIN_EMAIL", defaultAdminEmail)
	if !validation.IsValidEmail(email) {
		if email != defaultAdminEmail {
			lgr.Warn().Str("email", email).Msg("ADMIN_EMAIL is not a valid address, using the default")
		}
		email = defaultAdminEmail
	}
	password := config.GetEnv("ADMIN_PASSWORD", defaultAdminPassword)

	hashed, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	inserted, err := userRepo.Insert(ctx, &models.User{
		ID:       "admin-1",
		Email:    email,
		Password: hashed,
		Name:     "Administrator",
		Role:     models.RoleAdmin,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		return err
	}
	if inserted {
		lgr.Info().Str("email", email).Msg("Default admin user created")
	}
	return nil
}

func seedHero(ctx context.Context, heroRepo *repositories.HeroRepository, lgr zerolog.Logger) error {
	inserted, err := heroRepo.Insert(ctx, &models.HeroContent{
		TitleEn:       "SD13 Basketball Academy",
		TitleAr:       "أكاديمية SD13 لكرة السلة",
		SubtitleEn:    "Where Champions Are Made",
		SubtitleAr:    "حيث يُصنع الأبطال",
		DescriptionEn: "Professional basketball training for all ages and skill levels.",
		DescriptionAr: "تدريب احترافي لكرة السلة لجميع الأعمار والمستويات.",
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error seeding hero content")
		return err
	}
	if inserted {
		lgr.Info().Msg("Default hero content created")
	}
	return nil
}

func seedPrograms(ctx context.Context, programRepo *repositories.ProgramRepository, lgr zerolog.Logger) error {
	programs := []*models.Program{
		{
			ID:            "program-1",
			TitleEn:       "Junior Development",
			TitleAr:       "تطوير الناشئين",
			DescriptionEn: "Fundamentals and fun for ages 6-12.",
			DescriptionAr: "الأساسيات والمتعة للأعمار من 6 إلى 12 سنة.",
			Features:      models.StringList{"Ball handling", "Footwork", "Team play"},
			IsActive:      true,
			Order:         1,
		},
		{
			ID:            "program-2",
			TitleEn:       "Elite Training",
			TitleAr:       "التدريب المتقدم",
			DescriptionEn: "Intensive training for competitive players aged 13-18.",
			DescriptionAr: "تدريب مكثف للاعبين التنافسيين من سن 13 إلى 18.",
			Features:      models.StringList{"Strength and conditioning", "Game strategy", "Video analysis"},
			IsActive:      true,
			Order:         2,
		},
		{
			ID:            "program-3",
			TitleEn:       "Adult League",
			TitleAr:       "دوري الكبار",
			DescriptionEn: "Recreational league and skills sessions for adults.",
			DescriptionAr: "دوري ترفيهي وجلسات مهارات للكبار.",
			Features:      models.StringList{"Weekly games", "Open gym"},
			IsActive:      true,
			Order:         3,
		},
	}

	for _, program := range programs {
		inserted, err := programRepo.Insert(ctx, program)
		if err != nil {
			lgr.Error().Err(err).Str("programID", program.ID).Msg("Error seeding program")
			return err
		}
		if inserted {
			lgr.Info().Str("programID", program.ID).Msg("Default program created")
		}
	}
	return nil
}

func seedCoaches(ctx context.Context, coachRepo *repositories.CoachRepository, lgr zerolog.Logger) error {
	coaches := []*models.Coach{
		{
			ID:          "coach-1",
			NameEn:      "Sami Darwish",
			NameAr:      "سامي درويش",
			TitleEn:     "Head Coach",
			TitleAr:     "المدرب الرئيسي",
			BioEn:       "Former professional player with 15 years of coaching experience.",
			BioAr:       "لاعب محترف سابق بخبرة تدريبية تمتد 15 عاماً.",
			Experience:  15,
			Specialties: models.StringList{"Offense", "Player development"},
			IsActive:    true,
			Order:       1,
		},
		{
			ID:          "coach-2",
			NameEn:      "Leila Haddad",
			NameAr:      "ليلى حداد",
			TitleEn:     "Youth Coach",
			TitleAr:     "مدربة الناشئين",
			BioEn:       "Specialist in youth fundamentals and motor skills.",
			BioAr:       "متخصصة في أساسيات الناشئين والمهارات الحركية.",
			Experience:  8,
			Specialties: models.StringList{"Fundamentals", "Conditioning"},
			IsActive:    true,
			Order:       2,
		},
	}

	for _, coach := range coaches {
		inserted, err := coachRepo.Insert(ctx, coach)
		if err != nil {
			lgr.Error().Err(err).Str("coachID", coach.ID).Msg("Error seeding coach")
			return err
		}
		if inserted {
			lgr.Info().Str("coachID", coach.ID).Msg("Default coach created")
		}
	}
	return nil
}

func seedTestimonials(ctx context.Context, testimonialRepo *repositories.TestimonialRepository, lgr zerolog.Logger) error {
	testimonials := []*models.Testimonial{
		{
			ID:       "testimonial-1",
			NameEn:   "Omar's father",
			NameAr:   "والد عمر",
			TextEn:   "My son improved tremendously in one season.",
			TextAr:   "تحسن ابني بشكل كبير خلال موسم واحد.",
			Rating:   5,
			IsActive: true,
			Order:    1,
		},
		{
			ID:       "testimonial-2",
			NameEn:   "Rana",
			NameAr:   "رنا",
			TextEn:   "Great coaches and a welcoming atmosphere.",
			TextAr:   "مدربون رائعون وأجواء مرحبة.",
			Rating:   5,
			IsActive: true,
			Order:    2,
		},
	}

	for _, testimonial := range testimonials {
		inserted, err := testimonialRepo.Insert(ctx, testimonial)
		if err != nil {
			lgr.Error().Err(err).Str("testimonialID", testimonial.ID).Msg("Error seeding testimonial")
			return err
		}
		if inserted {
			lgr.Info().Str("testimonialID", testimonial.ID).Msg("Default testimonial created")
		}
	}
	return nil
}

func seedEvents(ctx context.Context, eventRepo *repositories.EventRepository, lgr zerolog.Logger) error {
	// Seeding goes straight through the repository, so no notifications
	// fire for these rows.
	events := []*models.Event{
		{
			ID:            "event-1",
			TitleEn:       "Season Opening Tournament",
			TitleAr:       "بطولة افتتاح الموسم",
			DescriptionEn: strPtr("Friendly tournament to open the new season."),
			DescriptionAr: strPtr("بطولة ودية لافتتاح الموسم الجديد."),
			EventDate:     time.Now().UTC().AddDate(0, 1, 0).Truncate(time.Hour),
			LocationEn:    strPtr("Main Court"),
			LocationAr:    strPtr("الملعب الرئيسي"),
			EventType:     models.EventTypeTournament,
			IsActive:      true,
			IsFeatured:    true,
			OrderIndex:    1,
		},
	}

	for _, event := range events {
		inserted, err := eventRepo.Insert(ctx, event)
		if err != nil {
			lgr.Error().Err(err).Str("eventID", event.ID).Msg("Error seeding event")
			return err
		}
		if inserted {
			lgr.Info().Str("eventID", event.ID).Msg("Default event created")
		}
	}
	return nil
}

func seedSettings(ctx context.Context, settingsRepo *repositories.SettingsRepository, contactRepo *repositories.ContactRepository, lgr zerolog.Logger) error {
	inserted, err := settingsRepo.Insert(ctx, &models.SiteSettings{
		SiteNameEn: "SD13 Basketball Academy",
		SiteNameAr: "أكاديمية SD13 لكرة السلة",
		AboutEn:    "A basketball academy dedicated to developing young talent.",
		AboutAr:    "أكاديمية كرة سلة مكرسة لتطوير المواهب الشابة.",
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error seeding site settings")
		return err
	}
	if inserted {
		lgr.Info().Msg("Default site settings created")
	}

	inserted, err = contactRepo.Insert(ctx, &models.ContactInfo{
		AddressEn: "Sports City, Hall 3",
		AddressAr: "المدينة الرياضية، القاعة 3",
		Phone:     "+961 1 234 567",
		Email:     "info@sd13academy.com",
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error seeding contact info")
		return err
	}
	if inserted {
		lgr.Info().Msg("Default contact info created")
	}

	return nil
}
