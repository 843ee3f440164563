package store_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "concierge/infras/otel/mocks"
	"concierge/internal/domains/request/mocks"
	"concierge/internal/domains/request/model"
	"concierge/internal/domains/request/store"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
)

func newStore(t *testing.T) (store.Store, *mocks.MockRequest) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRequest(ctrl)

	return store.New(repo, otelMocks.NewOtel()), repo
}

func validRecord() model.ServiceRequest {
	return model.ServiceRequest{
		HotelID:    "H1",
		RoomID:     "room-1",
		RoomNumber: "101",
		GuestPhone: "+911234567890",
		Type:       model.TypeCustomMessage,
		Message:    "Message: extra towels",
	}
}

func TestStore_ListByTenant(t *testing.T) {
	older := model.ServiceRequest{ID: "r1", HotelID: "H1", CreatedAt: time.Now().Add(-time.Hour)}
	newer := model.ServiceRequest{ID: "r2", HotelID: "H1", CreatedAt: time.Now()}

	tests := []struct {
		name      string
		setupMock func(repo *mocks.MockRequest)
		want      []model.ServiceRequest
		wantErr   bool
	}{
		{
			name: "newest first",
			setupMock: func(repo *mocks.MockRequest) {
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.ServiceRequest, error) {
						assert.Equal(t, "service_requests.created_at", params.SortBy)
						assert.Equal(t, gDto.SortDirDesc, params.SortDir)
						assert.Zero(t, params.Limit)

						where, args := filter.GetWhereClause()
						assert.Contains(t, where, "service_requests.hotel_id")
						assert.Equal(t, "H1", args["hotel_id"])

						return []model.ServiceRequest{newer, older}, nil
					})
			},
			want: []model.ServiceRequest{newer, older},
		},
		{
			name: "empty tenant yields empty slice",
			setupMock: func(repo *mocks.MockRequest) {
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			want: []model.ServiceRequest{},
		},
		{
			name: "repository error",
			setupMock: func(repo *mocks.MockRequest) {
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newStore(t)
			tt.setupMock(repo)

			res, err := s.ListByTenant(context.Background(), "H1")

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, res)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestStore_Create(t *testing.T) {
	tests := []struct {
		name      string
		record    func() model.ServiceRequest
		setupMock func(repo *mocks.MockRequest)
		check     func(t *testing.T, res model.ServiceRequest)
		wantCode  int
	}{
		{
			name:   "applies defaults and generates id",
			record: validRecord,
			setupMock: func(repo *mocks.MockRequest) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(1).Return(nil)
			},
			check: func(t *testing.T, res model.ServiceRequest) {
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, model.StatusPending, res.Status)
				assert.Equal(t, model.PriorityMedium, res.Priority)
				assert.False(t, res.CreatedAt.IsZero())
				assert.Equal(t, res.CreatedAt, res.UpdatedAt)
			},
		},
		{
			name: "keeps given priority",
			record: func() model.ServiceRequest {
				r := validRecord()
				r.Priority = model.PriorityHigh

				return r
			},
			setupMock: func(repo *mocks.MockRequest) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, res model.ServiceRequest) {
				assert.Equal(t, model.PriorityHigh, res.Priority)
			},
		},
		{
			name: "missing guest phone",
			record: func() model.ServiceRequest {
				r := validRecord()
				r.GuestPhone = ""

				return r
			},
			setupMock: func(_ *mocks.MockRequest) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "missing message",
			record: func() model.ServiceRequest {
				r := validRecord()
				r.Message = ""

				return r
			},
			setupMock: func(_ *mocks.MockRequest) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown type",
			record: func() model.ServiceRequest {
				r := validRecord()
				r.Type = "laundry"

				return r
			},
			setupMock: func(_ *mocks.MockRequest) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "room deleted before insert",
			record: validRecord,
			setupMock: func(repo *mocks.MockRequest) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("failed to insert data (request): %w", &pq.Error{Code: "23503", Message: "violates foreign key constraint"}))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "insert failure",
			record: validRecord,
			setupMock: func(repo *mocks.MockRequest) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newStore(t)
			tt.setupMock(repo)

			res, err := s.Create(context.Background(), tt.record())

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestStore_Update(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	existing := validRecord()
	existing.ID = "req-1"
	existing.Status = model.StatusPending
	existing.Priority = model.PriorityMedium
	existing.CreatedAt = created
	existing.UpdatedAt = created

	completed := model.StatusCompleted

	t.Run("status update returns the full record", func(t *testing.T) {
		s, repo := newStore(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, columns map[string]any, filter gDto.FilterGroup) error {
				assert.Equal(t, model.StatusCompleted, columns["status"])
				assert.Contains(t, columns, "updated_at")
				assert.NotContains(t, columns, "priority")

				_, args := filter.GetWhereClause()
				assert.Equal(t, "H1", args["hotel_id"])
				assert.Equal(t, "req-1", args["id"])

				return nil
			})

		res, err := s.Update(context.Background(), "H1", "req-1", model.Fields{Status: &completed})

		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, res.Status)
		assert.Equal(t, existing.Message, res.Message)
		assert.Equal(t, existing.GuestPhone, res.GuestPhone)
		assert.True(t, res.UpdatedAt.After(created))
		assert.Equal(t, created, res.CreatedAt)
	})

	t.Run("unknown id in tenant", func(t *testing.T) {
		s, repo := newStore(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ServiceRequest{}, nil)

		_, err := s.Update(context.Background(), "H2", "req-1", model.Fields{Status: &completed})

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("update failure", func(t *testing.T) {
		s, repo := newStore(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := s.Update(context.Background(), "H1", "req-1", model.Fields{Status: &completed})

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}
