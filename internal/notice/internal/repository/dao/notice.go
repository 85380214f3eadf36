package dao

import (
	"context"
	"time"

	"github.com/pofo-ai/pofo/internal/pkg/database"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./notice.go -package=daomocks -destination=mocks/notice.mock.go NoticeDAO
type NoticeDAO interface {
	// List 관리자용. 최신순으로 skip/limit 페이지네이션
	List(ctx context.Context, skip, limit int) ([]Notice, error)
	// ListActive 공개용. 활성 공지만 최신순
	ListActive(ctx context.Context) ([]Notice, error)
	Create(ctx context.Context, n Notice) (Notice, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}

type GORMNoticeDAO struct {
	db *database.Managed
}

func NewGORMNoticeDAO(db *database.Managed) NoticeDAO {
	return &GORMNoticeDAO{db: db}
}

func (d *GORMNoticeDAO) List(ctx context.Context, skip, limit int) ([]Notice, error) {
	var res []Notice
	err := d.db.Admin.WithContext(ctx).
		Order("ctime desc, id desc").Offset(skip).Limit(limit).Find(&res).Error
	return res, err
}

func (d *GORMNoticeDAO) ListActive(ctx context.Context) ([]Notice, error) {
	var res []Notice
	// 공개 조회라서 익명 핸들을 쓴다
	err := d.db.Anon.WithContext(ctx).
		Where("active = ?", true).Order("ctime desc, id desc").Find(&res).Error
	return res, err
}

func (d *GORMNoticeDAO) Create(ctx context.Context, n Notice) (Notice, error) {
	now := time.Now().UnixMilli()
	n.Ctime = now
	n.Utime = now
	err := d.db.Admin.WithContext(ctx).Create(&n).Error
	return n, err
}

func (d *GORMNoticeDAO) Update(ctx context.Context, id int64, fields map[string]any) error {
	fields["utime"] = time.Now().UnixMilli()
	return d.db.Admin.WithContext(ctx).Model(&Notice{}).
		Where("id = ?", id).Updates(fields).Error
}

func (d *GORMNoticeDAO) Delete(ctx context.Context, id int64) error {
	return d.db.Admin.WithContext(ctx).Delete(&Notice{}, id).Error
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&Notice{})
}

type Notice struct {
	Id      int64  `gorm:"primaryKey;autoIncrement"`
	Title   string `gorm:"type:varchar(256);not null"`
	Content string `gorm:"type:text;not null"`
	// default 태그를 걸면 gorm 이 false 를 INSERT 에서 빼버린다
	Active bool `gorm:"not null;index:idx_notice_active"`
	Ctime   int64
	Utime   int64
}

func (Notice) TableName() string {
	return "notices"
}
