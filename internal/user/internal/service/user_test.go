package service

import (
	"context"
	"testing"

	"github.com/pofo-ai/pofo/internal/user/internal/domain"
	"github.com/pofo-ai/pofo/internal/user/internal/repository"
	repomocks "github.com/pofo-ai/pofo/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Signup(t *testing.T) {
	t.Run("신규 이메일이면 해시 저장", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockUserRepository(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "a@b.com").
			Return(domain.User{}, repository.ErrUserNotFound)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
				assert.Equal(t, "a@b.com", u.Email)
				assert.Equal(t, "김포포", u.Name)
				// 평문이 그대로 저장되면 안 된다
				assert.NotEqual(t, "pw1234", u.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("pw1234")))
				return 1, nil
			})

		svc := NewUserService(repo)
		err := svc.Signup(context.Background(), "a@b.com", "pw1234", "김포포")
		require.NoError(t, err)
	})

	t.Run("중복 이메일이면 거절", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockUserRepository(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "a@b.com").
			Return(domain.User{Id: 1, Email: "a@b.com"}, nil)

		svc := NewUserService(repo)
		err := svc.Signup(context.Background(), "a@b.com", "pw1234", "김포포")
		assert.ErrorIs(t, err, ErrUserDuplicate)
	})
}

func TestUserService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw1234"), bcrypt.DefaultCost)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		stored   domain.User
		findErr  error
		password string
		wantErr  error
	}{
		{
			name:     "정상 로그인",
			stored:   domain.User{Id: 1, Email: "a@b.com", Password: string(hash), Name: "김포포"},
			password: "pw1234",
		},
		{
			name:     "비밀번호 불일치",
			stored:   domain.User{Id: 1, Email: "a@b.com", Password: string(hash)},
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "없는 계정",
			findErr:  repository.ErrUserNotFound,
			password: "pw1234",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "소셜 전용 계정은 로컬 로그인 불가",
			stored:   domain.User{Id: 1, Email: "a@b.com", Password: "SOCIAL_KAKAO"},
			password: "SOCIAL_KAKAO",
			wantErr:  ErrInvalidCredentials,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockUserRepository(ctrl)
			repo.EXPECT().FindByEmail(gomock.Any(), "a@b.com").
				Return(tc.stored, tc.findErr)

			svc := NewUserService(repo)
			u, err := svc.Login(context.Background(), "a@b.com", tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.stored.Name, u.Name)
			assert.Equal(t, tc.stored.Email, u.Email)
		})
	}
}

func TestUserService_SocialLogin(t *testing.T) {
	info := domain.SocialInfo{
		Provider: domain.ProviderKakao,
		Email:    "kakao@b.com",
		Name:     "카카오유저",
	}

	t.Run("기존 계정 재사용, 이름 갱신 없음", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockUserRepository(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "kakao@b.com").
			Return(domain.User{Id: 3, Email: "kakao@b.com", Name: "원래이름"}, nil)

		svc := NewUserService(repo)
		u, err := svc.SocialLogin(context.Background(), info)
		require.NoError(t, err)
		assert.Equal(t, "원래이름", u.Name)
	})

	t.Run("처음 보는 계정은 표식 비밀번호로 생성", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockUserRepository(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "kakao@b.com").
			Return(domain.User{}, repository.ErrUserNotFound)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
				assert.Equal(t, "SOCIAL_KAKAO", u.Password)
				assert.Equal(t, "카카오유저", u.Name)
				return 7, nil
			})

		svc := NewUserService(repo)
		u, err := svc.SocialLogin(context.Background(), info)
		require.NoError(t, err)
		assert.Equal(t, int64(7), u.Id)
	})

	t.Run("동시 가입 경합에서 지면 기존 행을 읽는다", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockUserRepository(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "kakao@b.com").
			Return(domain.User{}, repository.ErrUserNotFound)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(int64(0), repository.ErrUserDuplicate)
		repo.EXPECT().FindByEmail(gomock.Any(), "kakao@b.com").
			Return(domain.User{Id: 3, Email: "kakao@b.com"}, nil)

		svc := NewUserService(repo)
		u, err := svc.SocialLogin(context.Background(), info)
		require.NoError(t, err)
		assert.Equal(t, int64(3), u.Id)
	})
}

func TestUserService_Portfolio(t *testing.T) {
	t.Run("저장된 문서 반환", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockUserRepository(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "a@b.com").
			Return(domain.User{Id: 1, PortfolioData: `{"hero":{}}`}, nil)

		svc := NewUserService(repo)
		data, err := svc.Portfolio(context.Background(), "a@b.com")
		require.NoError(t, err)
		assert.Equal(t, `{"hero":{}}`, data)
	})

	t.Run("문서가 없으면 전용 에러", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockUserRepository(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "a@b.com").
			Return(domain.User{Id: 1}, nil)

		svc := NewUserService(repo)
		_, err := svc.Portfolio(context.Background(), "a@b.com")
		assert.ErrorIs(t, err, ErrPortfolioNotFound)
	})
}
