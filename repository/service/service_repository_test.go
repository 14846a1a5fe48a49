package service_test

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/muhammadheryan/home-service/constant"
	"github.com/muhammadheryan/home-service/model"
	servicerepo "github.com/muhammadheryan/home-service/repository/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) servicerepo.ServiceRepository {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	schema, err := os.ReadFile("testdata/schema_sqlite.sql")
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	return servicerepo.NewServiceRepository(db)
}

func seed(t *testing.T, repo servicerepo.ServiceRepository, mutate func(s *model.ServiceEntity)) *model.ServiceEntity {
	t.Helper()

	s := &model.ServiceEntity{
		ID:        uuid.NewString(),
		Email:     "owner@example.com",
		Locale:    "en",
		Status:    constant.ServiceStatusPending,
		CreatedAt: base,
		UpdatedAt: base,
	}
	if mutate != nil {
		mutate(s)
	}
	created, err := repo.Create(context.Background(), s)
	require.NoError(t, err)
	return created
}

func strPtr(s string) *string { return &s }

func TestSQL_CreateAndGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	period := base.Add(72 * time.Hour)
	s := seed(t, repo, func(s *model.ServiceEntity) {
		s.FullName = "Layla Haddad"
		s.PeriodDate = &period
	})

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Layla Haddad", got.FullName)
	assert.Equal(t, constant.ServiceStatusPending, got.Status)
	assert.False(t, got.HasActiveOTP())
	assert.Nil(t, got.ServiceCodeHash)
	require.NotNil(t, got.PeriodDate)
	assert.True(t, period.Equal(*got.PeriodDate))
	assert.True(t, base.Equal(got.CreatedAt))

	missing, err := repo.GetByID(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSQL_GetLatestByContact(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	seed(t, repo, nil)
	newest := seed(t, repo, func(s *model.ServiceEntity) { s.CreatedAt = base.Add(time.Hour) })
	seed(t, repo, func(s *model.ServiceEntity) {
		s.Email = ""
		s.PhoneNumber = "+12015550123"
		s.ISD = "+1"
	})

	got, err := repo.GetLatestByContact(ctx, &model.ContactFilter{Email: "owner@example.com"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, newest.ID, got.ID)

	byPhone, err := repo.GetLatestByContact(ctx, &model.ContactFilter{PhoneNumber: "+12015550123"})
	require.NoError(t, err)
	require.NotNil(t, byPhone)
	assert.Equal(t, "+1", byPhone.ISD)

	none, err := repo.GetLatestByContact(ctx, &model.ContactFilter{})
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestSQL_ConsumeOTP(t *testing.T) {
	ctx := context.Background()
	expires := base.Add(10 * time.Minute)

	tests := []struct {
		name       string
		hash       string
		channel    constant.Channel
		now        time.Time
		want       bool
		wantEmail  bool
		wantActive bool
	}{
		{
			name:      "success: matching digest before expiry",
			hash:      "digest-1",
			channel:   constant.ChannelEmail,
			now:       base.Add(time.Minute),
			want:      true,
			wantEmail: true,
		},
		{
			name:       "no match: other digest",
			hash:       "digest-2",
			channel:    constant.ChannelEmail,
			now:        base.Add(time.Minute),
			wantActive: true,
		},
		{
			name:       "no match: other channel",
			hash:       "digest-1",
			channel:    constant.ChannelPhone,
			now:        base.Add(time.Minute),
			wantActive: true,
		},
		{
			name:       "no match: at expiry",
			hash:       "digest-1",
			channel:    constant.ChannelEmail,
			now:        expires,
			wantActive: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo(t)
			s := seed(t, repo, nil)

			ok, err := repo.SetOTP(ctx, s.ID, "digest-1", constant.ChannelEmail, expires, base)
			require.NoError(t, err)
			require.True(t, ok)

			got, err := repo.ConsumeOTP(ctx, s.ID, tt.hash, tt.channel, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			stored, err := repo.GetByID(ctx, s.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, stored.EmailVerified)
			assert.False(t, stored.PhoneVerified)
			assert.Equal(t, tt.wantActive, stored.HasActiveOTP())
			if !tt.wantActive {
				assert.Nil(t, stored.OTPCodeHash)
				assert.Nil(t, stored.OTPCodeExpiresAt)
				assert.Nil(t, stored.OTPChannel)
			}
		})
	}
}

func TestSQL_ConsumeOTP_Replay(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	s := seed(t, repo, nil)

	_, err := repo.SetOTP(ctx, s.ID, "digest", constant.ChannelEmail, base.Add(10*time.Minute), base)
	require.NoError(t, err)

	first, err := repo.ConsumeOTP(ctx, s.ID, "digest", constant.ChannelEmail, base.Add(time.Minute))
	require.NoError(t, err)
	second, err := repo.ConsumeOTP(ctx, s.ID, "digest", constant.ChannelEmail, base.Add(time.Minute))
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}

func TestSQL_ConsumeOTP_Concurrent(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	s := seed(t, repo, nil)

	_, err := repo.SetOTP(ctx, s.ID, "digest", constant.ChannelPhone, base.Add(10*time.Minute), base)
	require.NoError(t, err)

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.ConsumeOTP(ctx, s.ID, "digest", constant.ChannelPhone, base.Add(time.Minute))
			if err == nil && ok {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
	stored, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, stored.PhoneVerified)
	assert.False(t, stored.EmailVerified)
}

func TestSQL_ClearOTP(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	s := seed(t, repo, nil)

	_, err := repo.SetOTP(ctx, s.ID, "newer", constant.ChannelEmail, base.Add(10*time.Minute), base)
	require.NoError(t, err)

	// a stale rollback must not wipe a newer code
	ok, err := repo.ClearOTP(ctx, s.ID, "older", base)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.ClearOTP(ctx, s.ID, "newer", base)
	require.NoError(t, err)
	assert.True(t, ok)

	stored, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, stored.HasActiveOTP())
}

func TestSQL_Update(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	s := seed(t, repo, func(s *model.ServiceEntity) { s.City = "Amman" })

	pending := constant.ServiceStatusPending
	inProgress := constant.ServiceStatusInProgress

	ok, err := repo.Update(ctx, s.ID, &model.ServiceUpdate{
		FullName:  strPtr("Omar"),
		Status:    &inProgress,
		UpdatedAt: base.Add(time.Minute),
	})
	require.NoError(t, err)
	assert.True(t, ok)

	// guarded on a status the record no longer holds
	ok, err = repo.Update(ctx, s.ID, &model.ServiceUpdate{
		Message:     strPtr("on the way"),
		WhereStatus: &pending,
		UpdatedAt:   base.Add(2 * time.Minute),
	})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Update(ctx, uuid.NewString(), &model.ServiceUpdate{FullName: strPtr("ghost"), UpdatedAt: base})
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Omar", stored.FullName)
	assert.Equal(t, "Amman", stored.City)
	assert.Equal(t, constant.ServiceStatusInProgress, stored.Status)
	assert.Empty(t, stored.Message)
	assert.True(t, base.Add(time.Minute).Equal(stored.UpdatedAt))
}

func TestSQL_InquiryCode(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	first := seed(t, repo, nil)
	second := seed(t, repo, nil)

	ok, err := repo.SetInquiryCode(ctx, first.ID, "code-hash", base)
	require.NoError(t, err)
	assert.True(t, ok)

	// already minted
	ok, err = repo.SetInquiryCode(ctx, first.ID, "other-hash", base)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.SetInquiryCode(ctx, second.ID, "code-hash", base)
	assert.ErrorIs(t, err, servicerepo.ErrDuplicate)

	got, err := repo.GetByInquiryCodeHash(ctx, "code-hash")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)

	ok, err = repo.ClearInquiryCode(ctx, first.ID, "code-hash", base)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = repo.GetByInquiryCodeHash(ctx, "code-hash")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQL_FindByStatus(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		i := i
		seed(t, repo, func(s *model.ServiceEntity) {
			s.Status = constant.ServiceStatusFinished
			s.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		})
	}
	seed(t, repo, nil)

	items, total, err := repo.FindByStatus(ctx, constant.ServiceStatusFinished, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, items, 2)
	assert.True(t, base.Add(2*time.Minute).Equal(items[0].CreatedAt))

	items, total, err = repo.FindByStatus(ctx, constant.ServiceStatusCancelled, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, items)
}

func TestSQL_DeleteWhere(t *testing.T) {
	ctx := context.Background()
	cutoff := base.Add(24 * time.Hour)

	tests := []struct {
		name    string
		filter  model.DeleteFilter
		want    int64
		wantErr error
	}{
		{
			name:    "error: empty filter",
			filter:  model.DeleteFilter{},
			wantErr: servicerepo.ErrEmptyFilter,
		},
		{
			name: "success: stale terminal records",
			filter: model.DeleteFilter{
				Statuses:      []constant.ServiceStatus{constant.ServiceStatusFinished, constant.ServiceStatusCancelled},
				UpdatedBefore: &cutoff,
			},
			want: 2,
		},
		{
			name:   "success: unverified records created before cutoff",
			filter: model.DeleteFilter{UnverifiedOnly: true, CreatedBefore: &cutoff},
			want:   2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo(t)
			seed(t, repo, func(s *model.ServiceEntity) { s.Status = constant.ServiceStatusFinished })
			seed(t, repo, func(s *model.ServiceEntity) { s.Status = constant.ServiceStatusCancelled })
			seed(t, repo, func(s *model.ServiceEntity) {
				s.Status = constant.ServiceStatusFinished
				s.EmailVerified = true
				s.UpdatedAt = cutoff.Add(time.Hour)
			})
			seed(t, repo, func(s *model.ServiceEntity) { s.EmailVerified = true })

			got, err := repo.DeleteWhere(ctx, tt.filter)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSQL_DeleteByID(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	s := seed(t, repo, nil)

	n, err := repo.DeleteWhere(ctx, model.DeleteFilter{ID: s.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.DeleteWhere(ctx, model.DeleteFilter{ID: s.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
