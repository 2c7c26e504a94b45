package repository

import (
	"context"
	"time"

	"anoa.com/casetrack/internal/modules/report/dto"
	"anoa.com/casetrack/pkg/database"
	"gorm.io/gorm"
)

type Repository interface {
	// CountBetween counts rows of table whose column falls inside w.
	CountBetween(ctx context.Context, table, column string, w dto.Window) (int64, error)
	CountAll(ctx context.Context, table string) (int64, error)
	Enrollments(ctx context.Context, w dto.Window) ([]dto.DateCount, error)
	ServicesByType(ctx context.Context, w dto.Window) ([]dto.TypeCount, error)
	ServicesByTypeAndDate(ctx context.Context, w dto.Window) ([]dto.TypeDateCount, error)
	Referrals(ctx context.Context) ([]dto.ReferralCount, error)
	Outcomes(ctx context.Context) ([]dto.OutcomeCount, error)
	Services(ctx context.Context, w dto.Window) ([]ServiceExport, error)
}

// ServiceExport is a service joined with its participant's name.
type ServiceExport struct {
	ID            uint
	ParticipantID uint
	FirstName     string
	LastName      string
	ServiceType   string
	Note          *string
	StaffID       *uint
	ProvidedAt    time.Time
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountBetween(ctx context.Context, table, column string, w dto.Window) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table(table).
		Where(column+" >= ? AND "+column+" <= ?", w.From, w.To).
		Count(&n).Error
	return n, err
}

func (r *repository) CountAll(ctx context.Context, table string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table(table).Count(&n).Error
	return n, err
}

// Enrollments counts active participants per creation day.
func (r *repository) Enrollments(ctx context.Context, w dto.Window) ([]dto.DateCount, error) {
	day := database.DayExpr(r.db, "created_at")

	rows := []dto.DateCount{}
	err := r.db.WithContext(ctx).
		Table("participants").
		Select(day+" AS date, COUNT(id) AS count").
		Where("is_active = ?", true).
		Where("created_at >= ? AND created_at <= ?", w.From, w.To).
		Group(day).
		Order(day).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ServicesByType(ctx context.Context, w dto.Window) ([]dto.TypeCount, error) {
	rows := []dto.TypeCount{}
	err := r.db.WithContext(ctx).
		Table("services").
		Select("service_type, COUNT(id) AS count").
		Where("provided_at >= ? AND provided_at <= ?", w.From, w.To).
		Group("service_type").
		Order("count DESC").
		Order("service_type ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ServicesByTypeAndDate(ctx context.Context, w dto.Window) ([]dto.TypeDateCount, error) {
	day := database.DayExpr(r.db, "provided_at")

	rows := []dto.TypeDateCount{}
	err := r.db.WithContext(ctx).
		Table("services").
		Select("service_type, "+day+" AS date, COUNT(id) AS count").
		Where("provided_at >= ? AND provided_at <= ?", w.From, w.To).
		Group("service_type, " + day).
		Order(day).
		Order("service_type ASC").
		Scan(&rows).Error
	return rows, err
}

const (
	referralOrgName = "COALESCE(employers.name, providers.name)"
	referralKind    = "CASE WHEN referrals.employer_id IS NOT NULL THEN 'employer' ELSE 'provider' END"
)

// Referrals groups every referral by organization, kind and status.
func (r *repository) Referrals(ctx context.Context) ([]dto.ReferralCount, error) {
	rows := []dto.ReferralCount{}
	err := r.db.WithContext(ctx).
		Table("referrals").
		Select(referralOrgName + " AS org_name, " + referralKind + " AS kind, referrals.status AS status, COUNT(referrals.id) AS count").
		Joins("LEFT JOIN employers ON referrals.employer_id = employers.id").
		Joins("LEFT JOIN providers ON referrals.provider_id = providers.id").
		Group(referralOrgName + ", " + referralKind + ", referrals.status").
		Order(referralOrgName).
		Order("kind").
		Order("status").
		Scan(&rows).Error
	return rows, err
}

// Outcomes counts employment and education rows by status.
func (r *repository) Outcomes(ctx context.Context) ([]dto.OutcomeCount, error) {
	rows := []dto.OutcomeCount{}
	for _, kind := range []string{"employment", "education"} {
		var part []dto.OutcomeCount
		err := r.db.WithContext(ctx).
			Table(kind).
			Select("status, COUNT(id) AS count").
			Group("status").
			Order("status").
			Scan(&part).Error
		if err != nil {
			return nil, err
		}
		for i := range part {
			part[i].Kind = kind
		}
		rows = append(rows, part...)
	}
	return rows, nil
}

func (r *repository) Services(ctx context.Context, w dto.Window) ([]ServiceExport, error) {
	var rows []ServiceExport
	err := r.db.WithContext(ctx).
		Table("services").
		Select("services.id, services.participant_id, participants.first_name, participants.last_name, " +
			"services.service_type, services.note, services.staff_id, services.provided_at").
		Joins("JOIN participants ON participants.id = services.participant_id").
		Where("services.provided_at >= ? AND services.provided_at <= ?", w.From, w.To).
		Order("services.provided_at ASC").
		Order("services.id ASC").
		Scan(&rows).Error
	return rows, err
}
