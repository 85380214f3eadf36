package ioc

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/pofo-ai/pofo/internal/pkg/database"
)

func InitDB() *egorm.Component {
	WaitForDBSetup(econf.GetString("mysql.dsn"))
	db := egorm.Load("mysql").Build()
	err := database.NewGormTracingPlugin().Initialize(db)
	if err != nil {
		panic(err)
	}
	return db
}

// InitManagedDB 관리형 스토어(Supabase) 핸들.
// DSN 이 없으면 기본 DB 를 그대로 쓴다.
func InitManagedDB(db *egorm.Component) *database.Managed {
	type config struct {
		DSN      string `yaml:"dsn"`
		AdminDSN string `yaml:"adminDSN"`
	}
	var cfg config
	if err := econf.UnmarshalKey("managed", &cfg); err != nil {
		panic(err)
	}
	res, err := database.OpenManaged(cfg.DSN, cfg.AdminDSN, db)
	if err != nil {
		panic(err)
	}
	return res
}

func WaitForDBSetup(dsn string) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	const maxInterval = 10 * time.Second
	const maxRetries = 10
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}

	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			break
		}
		next, ok := strategy.Next()
		if !ok {
			panic("DB 연결 실패")
		}
		time.Sleep(next)
	}
}
