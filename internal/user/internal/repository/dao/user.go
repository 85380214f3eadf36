package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrDataNotFound = gorm.ErrRecordNotFound
	// ErrUserDuplicate 이메일 유일 인덱스 위반
	ErrUserDuplicate = errors.New("이미 등록된 사용자입니다")
)

//go:generate mockgen -source=./user.go -package=daomocks -destination=mocks/user.mock.go UserDAO
type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	// UpdatePortfolio 마지막에 쓴 쪽이 이긴다. 잠금 없음
	UpdatePortfolio(ctx context.Context, email string, data string) error
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) UpdatePortfolio(ctx context.Context, email string, data string) error {
	res := ud.db.WithContext(ctx).Model(&User{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"portfolio_data": data,
			"utime":          time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

type User struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Email    string `gorm:"type:varchar(256);not null;uniqueIndex:unq_user_email"`
	Password string `gorm:"type:varchar(256);not null"`
	Name     string `gorm:"type:varchar(128);not null"`
	// PortfolioData 직렬화 블롭. DB 입장에서는 불투명한 문자열이다
	PortfolioData sql.NullString `gorm:"type:text"`
	Ctime         int64
	Utime         int64
}

func (User) TableName() string {
	return "users"
}
