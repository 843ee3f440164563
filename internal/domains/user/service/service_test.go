package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"concierge/config"
	"concierge/infras/otel/mocks"
	userMocks "concierge/internal/domains/user/mocks"
	"concierge/internal/domains/user/model"
	"concierge/internal/domains/user/model/dto"
	"concierge/internal/domains/user/service"
	cacheMocks "concierge/shared/cache/mocks"
	"concierge/shared/constant"
	"concierge/shared/failure"
)

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func TestStaffService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := userMocks.NewMockUser(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), "user:gets:hotel-1", gomock.Any()).Return(errors.New("miss"))
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.User{
		{ID: "admin-1", HotelID: "hotel-1", Email: "a@x.com", Name: "Asha", Role: constant.RoleAdmin, Active: true},
		{ID: "staff-1", HotelID: "hotel-1", Email: "b@x.com", Name: "Bala", Role: constant.RoleStaff, Active: true},
	}, nil)
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(repo, &config.Config{}, cache, mocks.NewOtel())

	res, err := svc.GetAll(adminContext(), "hotel-1")

	assert.NoError(t, err)
	assert.Len(t, res.Users, 2)
	assert.Equal(t, constant.RoleStaff, res.Users[1].Role)
}

func TestStaffService_Create(t *testing.T) {
	req := dto.CreateUserRequest{
		Email:    "Desk@SeaView.com",
		Password: "password123",
		Name:     "Front Desk",
	}

	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "creates staff with default role",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) error {
						assert.Equal(t, "hotel-1", user.HotelID)
						assert.Equal(t, "desk@seaview.com", user.Email)
						assert.Equal(t, constant.RoleStaff, user.Role)
						assert.NotEqual(t, req.Password, user.Password)

						return nil
					})
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "duplicate email",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "unique violation on insert",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "insert error",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := userMocks.NewMockUser(ctrl)
			cache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(repo, cache)

			svc := service.New(repo, &config.Config{}, cache, mocks.NewOtel())

			res, err := svc.Create(adminContext(), "hotel-1", req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "desk@seaview.com", res.Email)
			assert.Equal(t, "admin-1", res.CreatedBy)
		})
	}
}

func TestStaffService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		userID    string
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantCode  int
		wantErr   bool
	}{
		{
			name:   "deletes staff of the same hotel",
			userID: "staff-1",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name:      "cannot delete own account",
			userID:    "admin-1",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "user of another hotel is not found",
			userID: "staff-9",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:   "delete error",
			userID: "staff-1",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := userMocks.NewMockUser(ctrl)
			cache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(repo, cache)

			svc := service.New(repo, &config.Config{}, cache, mocks.NewOtel())

			err := svc.Delete(adminContext(), "hotel-1", tt.userID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
