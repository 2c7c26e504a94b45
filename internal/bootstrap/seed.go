package bootstrap

import (
	"errors"
	"fmt"

	"anoa.com/casetrack/internal/entity"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Participant{},
		&entity.CaseNote{},
		&entity.ServiceRecord{},
		&entity.Employer{},
		&entity.Provider{},
		&entity.Referral{},
		&entity.Assessment{},
		&entity.Employment{},
		&entity.Education{},
		&entity.Milestone{},
	)
}

// EnsureUser creates the user when the email is unused. It never overwrites an existing account.
func EnsureUser(db *gorm.DB, log *zap.Logger, email, password, role string) (created bool, err error) {
	email = entity.NormalizeEmail(email)
	if email == "" || password == "" {
		return false, errors.New("email and password are required")
	}
	if !entity.IsValidRole(role) {
		return false, fmt.Errorf("unknown role %q", role)
	}

	var count int64
	if err := db.Model(&entity.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}

	if count > 0 {
		log.Info("user already exists, skipping seed", zap.String("email", email))
		return false, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	user := entity.User{
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		return false, err
	}

	log.Info("user seeded", zap.String("email", email), zap.String("role", role))
	return true, nil
}
