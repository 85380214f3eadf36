package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LLMRecordDAO interface {
	Save(ctx context.Context, r AILog) (int64, error)
	// Recent 최신순으로 limit 건. 통계는 전체 집계가 아니라 이 근사치를 쓴다
	Recent(ctx context.Context, limit int) ([]AILog, error)
}

type GORMLLMRecordDAO struct {
	db *gorm.DB
}

func NewGORMLLMRecordDAO(db *gorm.DB) LLMRecordDAO {
	return &GORMLLMRecordDAO{db: db}
}

func (g *GORMLLMRecordDAO) Save(ctx context.Context, r AILog) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := g.db.WithContext(ctx).Model(&AILog{}).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tid"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "utime"}),
		}).Create(&r).Error
	return r.Id, err
}

func (g *GORMLLMRecordDAO) Recent(ctx context.Context, limit int) ([]AILog, error) {
	var res []AILog
	err := g.db.WithContext(ctx).
		Order("id desc").Limit(limit).Find(&res).Error
	return res, err
}

type AILog struct {
	Id         int64                     `gorm:"primaryKey;autoIncrement"`
	Tid        string                    `gorm:"type:varchar(256);not null;uniqueIndex:unq_ai_log_tid"`
	Uid        sql.NullInt64             `gorm:"index:idx_ai_log_uid"`
	PromptType string                    `gorm:"type:varchar(128);not null;index:idx_ai_log_prompt_type"`
	ModelName  string                    `gorm:"type:varchar(128);not null"`
	Status     uint8                     `gorm:"not null;default:0"`
	Input      sqlx.JsonColumn[[]string] `gorm:"type:text"`
	Answer     sql.NullString            `gorm:"type:text"`
	Ctime      int64
	Utime      int64
}

func (AILog) TableName() string {
	return "ai_logs"
}
