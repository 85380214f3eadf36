package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Managed 관리형 저장소(Supabase)의 핸들 한 쌍.
// Anon 은 익명 키, Admin 은 서비스 롤 키로 연 커넥션이다.
type Managed struct {
	Anon  *gorm.DB
	Admin *gorm.DB
}

// OpenManaged 관리형 DSN 이 비어 있으면 기본 DB 로 대체한다.
// 로컬 개발 환경에서는 Supabase 없이도 전체 기능이 돌아야 한다.
func OpenManaged(dsn, adminDSN string, fallback *gorm.DB) (*Managed, error) {
	if dsn == "" {
		return &Managed{Anon: fallback, Admin: fallback}, nil
	}
	anon, err := gorm.Open(postgres.Open(dsn))
	if err != nil {
		return nil, err
	}
	admin := anon
	if adminDSN != "" && adminDSN != dsn {
		admin, err = gorm.Open(postgres.Open(adminDSN))
		if err != nil {
			return nil, err
		}
	}
	return &Managed{Anon: anon, Admin: admin}, nil
}
