package dao

import (
	"context"
	"strings"
	"time"

	"github.com/pofo-ai/pofo/internal/pkg/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=./admin.go -package=daomocks -destination=mocks/admin.mock.go AdminDAO
type AdminDAO interface {
	CountUsers(ctx context.Context) (int64, error)
	CountPortfolios(ctx context.Context) (int64, error)
	// CountTodayPortfolios 오늘 0시 이후 만들어진 수
	CountTodayPortfolios(ctx context.Context) (int64, error)
	// CountActiveUsers 최근 30일 안에 포트폴리오를 고친 소유자 수
	CountActiveUsers(ctx context.Context) (int64, error)

	ListUsers(ctx context.Context, skip, limit int, search string) ([]UserProfile, error)
	// PortfolioCounts 사용자별 포트폴리오 개수
	PortfolioCounts(ctx context.Context, userIds []string) (map[string]int64, error)
	// DeleteUsers 포트폴리오 먼저, 사용자 나중. 트랜잭션 없음
	DeleteUsers(ctx context.Context, userIds []string) (deletedPortfolios, deletedUsers int64, err error)

	ListPortfolios(ctx context.Context, skip, limit int, search string) ([]Portfolio, int64, error)
	FindProfiles(ctx context.Context, userIds []string) ([]UserProfile, error)

	TemplateConfigs(ctx context.Context) ([]TemplateConfig, error)
	UpsertTemplateConfig(ctx context.Context, key string, active bool) error
}

type GORMAdminDAO struct {
	db *database.Managed
}

func NewGORMAdminDAO(db *database.Managed) AdminDAO {
	return &GORMAdminDAO{db: db}
}

func (d *GORMAdminDAO) CountUsers(ctx context.Context) (int64, error) {
	var cnt int64
	err := d.db.Admin.WithContext(ctx).Model(&UserProfile{}).Count(&cnt).Error
	return cnt, err
}

func (d *GORMAdminDAO) CountPortfolios(ctx context.Context) (int64, error) {
	var cnt int64
	err := d.db.Admin.WithContext(ctx).Model(&Portfolio{}).Count(&cnt).Error
	return cnt, err
}

func (d *GORMAdminDAO) CountTodayPortfolios(ctx context.Context) (int64, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var cnt int64
	err := d.db.Admin.WithContext(ctx).Model(&Portfolio{}).
		Where("ctime >= ?", midnight.UnixMilli()).Count(&cnt).Error
	return cnt, err
}

func (d *GORMAdminDAO) CountActiveUsers(ctx context.Context) (int64, error) {
	since := time.Now().AddDate(0, 0, -30).UnixMilli()
	var cnt int64
	err := d.db.Admin.WithContext(ctx).Model(&Portfolio{}).
		Where("utime >= ?", since).
		Distinct("user_id").Count(&cnt).Error
	return cnt, err
}

func (d *GORMAdminDAO) ListUsers(ctx context.Context, skip, limit int, search string) ([]UserProfile, error) {
	query := d.db.Admin.WithContext(ctx).Model(&UserProfile{})
	if search != "" {
		pat := "%" + strings.ToLower(search) + "%"
		query = query.Where("lower(email) LIKE ? OR lower(name) LIKE ?", pat, pat)
	}
	var res []UserProfile
	err := query.Order("ctime desc, id desc").Offset(skip).Limit(limit).Find(&res).Error
	return res, err
}

func (d *GORMAdminDAO) PortfolioCounts(ctx context.Context, userIds []string) (map[string]int64, error) {
	if len(userIds) == 0 {
		return map[string]int64{}, nil
	}
	var rows []struct {
		UserId string
		Cnt    int64
	}
	err := d.db.Admin.WithContext(ctx).Model(&Portfolio{}).
		Select("user_id, COUNT(*) AS cnt").
		Where("user_id IN ?", userIds).
		Group("user_id").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make(map[string]int64, len(rows))
	for _, r := range rows {
		res[r.UserId] = r.Cnt
	}
	return res, nil
}

func (d *GORMAdminDAO) DeleteUsers(ctx context.Context, userIds []string) (int64, int64, error) {
	if len(userIds) == 0 {
		return 0, 0, nil
	}
	// 순서 고정: 포트폴리오를 먼저 지워야 중간에 죽어도 고아 행이 안 남는다
	pf := d.db.Admin.WithContext(ctx).
		Where("user_id IN ?", userIds).Delete(&Portfolio{})
	if pf.Error != nil {
		return 0, 0, pf.Error
	}
	us := d.db.Admin.WithContext(ctx).
		Where("id IN ?", userIds).Delete(&UserProfile{})
	if us.Error != nil {
		return pf.RowsAffected, 0, us.Error
	}
	return pf.RowsAffected, us.RowsAffected, nil
}

func (d *GORMAdminDAO) ListPortfolios(ctx context.Context, skip, limit int, search string) ([]Portfolio, int64, error) {
	query := d.db.Admin.WithContext(ctx).Model(&Portfolio{})
	if search != "" {
		query = query.Where("lower(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	var res []Portfolio
	err := query.Order("ctime desc, id desc").Offset(skip).Limit(limit).Find(&res).Error
	if err != nil {
		return nil, 0, err
	}
	var total int64
	err = d.db.Admin.WithContext(ctx).Model(&Portfolio{}).Count(&total).Error
	return res, total, err
}

func (d *GORMAdminDAO) FindProfiles(ctx context.Context, userIds []string) ([]UserProfile, error) {
	if len(userIds) == 0 {
		return nil, nil
	}
	var res []UserProfile
	err := d.db.Admin.WithContext(ctx).Find(&res, "id IN ?", userIds).Error
	return res, err
}

func (d *GORMAdminDAO) TemplateConfigs(ctx context.Context) ([]TemplateConfig, error) {
	var res []TemplateConfig
	err := d.db.Admin.WithContext(ctx).Find(&res).Error
	return res, err
}

func (d *GORMAdminDAO) UpsertTemplateConfig(ctx context.Context, key string, active bool) error {
	return d.db.Admin.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"active", "utime"}),
		}).Create(&TemplateConfig{
		Key:    key,
		Active: active,
		Utime:  time.Now().UnixMilli(),
	}).Error
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&UserProfile{}, &Portfolio{}, &TemplateConfig{})
}

// UserProfile 관리형 스토어 쪽 사용자 프로필.
// 행 생성은 프런트가 하고 백엔드는 조회와 삭제만 한다.
type UserProfile struct {
	Id    string `gorm:"primaryKey;type:varchar(64)"`
	Email string `gorm:"type:varchar(256);index:idx_profile_email"`
	Name  string `gorm:"type:varchar(128)"`
	Ctime int64
	Utime int64
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

type Portfolio struct {
	Id       string `gorm:"primaryKey;type:varchar(64)"`
	UserId   string `gorm:"type:varchar(64);index:idx_portfolio_user_id"`
	Title    string `gorm:"type:varchar(256)"`
	Job      string `gorm:"type:varchar(128)"`
	Template string `gorm:"type:varchar(128)"`
	Ctime    int64
	Utime    int64
}

func (Portfolio) TableName() string {
	return "portfolios"
}

type TemplateConfig struct {
	Key string `gorm:"primaryKey;type:varchar(128)"`
	// default 태그를 걸면 gorm 이 false 를 INSERT 에서 빼버린다
	Active bool `gorm:"not null"`
	Utime  int64
}

func (TemplateConfig) TableName() string {
	return "template_config"
}
