package lifecycle_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/muhammadheryan/home-service/application/lifecycle"
	"github.com/muhammadheryan/home-service/constant"
	servicemocks "github.com/muhammadheryan/home-service/mocks/repository/service"
	notificationmocks "github.com/muhammadheryan/home-service/mocks/thirdparty/notification"
	"github.com/muhammadheryan/home-service/model"
	"github.com/muhammadheryan/home-service/templates"
	cerr "github.com/muhammadheryan/home-service/utils/errors"
	"github.com/muhammadheryan/home-service/utils/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testID = "svc-1"

type fields struct {
	serviceRepo *servicemocks.ServiceRepository
	dispatcher  *notificationmocks.Dispatcher
}

func record(status constant.ServiceStatus, locale string) *model.ServiceEntity {
	return &model.ServiceEntity{
		ID:            testID,
		Email:         "layla@example.com",
		EmailVerified: true,
		FullName:      "Layla",
		Locale:        locale,
		Status:        status,
	}
}

func TestLifecycleApp_Transition(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.TransitionRequest
		mockCall func(f fields)
		want     *model.TransitionResult
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: finished back to pending without notify",
			req:  &model.TransitionRequest{Kind: constant.TransitionStatus, Target: constant.ServiceStatusPending},
			mockCall: func(f fields) {
				f.serviceRepo.On("GetByID", mock.Anything, testID).Return(record(constant.ServiceStatusFinished, "en"), nil).Once()
				f.serviceRepo.
					On("Update", mock.Anything, testID, mock.MatchedBy(func(upd *model.ServiceUpdate) bool {
						return *upd.Status == constant.ServiceStatusPending &&
							*upd.Message == "Your service request is under review." &&
							upd.WhereStatus == nil
					})).
					Return(true, nil).
					Once()
				f.serviceRepo.On("GetByID", mock.Anything, testID).Return(record(constant.ServiceStatusPending, "en"), nil).Once()
			},
			want: &model.TransitionResult{Service: record(constant.ServiceStatusPending, "en")},
		},
		{
			name: "success: cancel with arabic notification",
			req:  &model.TransitionRequest{Kind: constant.TransitionStatus, Target: constant.ServiceStatusCancelled, Notify: true},
			mockCall: func(f fields) {
				f.serviceRepo.On("GetByID", mock.Anything, testID).Return(record(constant.ServiceStatusInProgress, "ar"), nil).Once()
				f.serviceRepo.
					On("Update", mock.Anything, testID, mock.MatchedBy(func(upd *model.ServiceUpdate) bool {
						return *upd.Message == "تم إلغاء طلب الخدمة الخاص بك وستتم مراجعته."
					})).
					Return(true, nil).
					Once()
				f.serviceRepo.On("GetByID", mock.Anything, testID).Return(record(constant.ServiceStatusCancelled, "ar"), nil).Once()
				f.dispatcher.
					On("Dispatch", mock.Anything, mock.MatchedBy(func(n model.Notification) bool {
						return n.Channel == constant.ChannelEmail &&
							n.Subject == "تحديث حالة الخدمة" &&
							strings.Contains(n.Body, `dir="rtl"`)
					})).
					Return(nil).
					Once()
			},
			want: &model.TransitionResult{Service: record(constant.ServiceStatusCancelled, "ar"), Notified: true},
		},
		{
			name: "success: delivery failure keeps the new status",
			req:  &model.TransitionRequest{Kind: constant.TransitionStatus, Target: constant.ServiceStatusFinished, Notify: true},
			mockCall: func(f fields) {
				f.serviceRepo.On("GetByID", mock.Anything, testID).Return(record(constant.ServiceStatusInProgress, "en"), nil).Once()
				f.serviceRepo.On("Update", mock.Anything, testID, mock.Anything).Return(true, nil).Once()
				f.serviceRepo.On("GetByID", mock.Anything, testID).Return(record(constant.ServiceStatusFinished, "en"), nil).Once()
				f.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(cerr.SetCustomError(constant.ErrDeliveryFailure)).Once()
			},
			want: &model.TransitionResult{
				Service: record(constant.ServiceStatusFinished, "en"),
				Warning: constant.ErrorTypeMessage[constant.ErrDeliveryFailure],
			},
		},
		{
			name: "success: field update while in progress always notifies",
			req:  &model.TransitionRequest{Kind: constant.TransitionFieldUpdate, Action: constant.FieldActionEnRoute},
			mockCall: func(f fields) {
				f.serviceRepo.On("GetByID", mock.Anything, testID).Return(record(constant.ServiceStatusInProgress, "en"), nil).Twice()
				f.serviceRepo.
					On("Update", mock.Anything, testID, mock.MatchedBy(func(upd *model.ServiceUpdate) bool {
						return *upd.WhereStatus == constant.ServiceStatusInProgress &&
							upd.Status == nil &&
							*upd.Message == "Our technician is on the way to your location."
					})).
					Return(true, nil).
					Once()
				f.dispatcher.
					On("Dispatch", mock.Anything, mock.MatchedBy(func(n model.Notification) bool {
						return n.Subject == "Service in-progress update" && n.Destination == "layla@example.com"
					})).
					Return(nil).
					Once()
			},
			want: &model.TransitionResult{Service: record(constant.ServiceStatusInProgress, "en"), Notified: true},
		},
		{
			name: "error: field update on pending request",
			req:  &model.TransitionRequest{Kind: constant.TransitionFieldUpdate, Action: constant.FieldActionArrived},
			mockCall: func(f fields) {
				f.serviceRepo.On("GetByID", mock.Anything, testID).Return(record(constant.ServiceStatusPending, "en"), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
		{
			name: "error: status changed before the guarded update",
			req:  &model.TransitionRequest{Kind: constant.TransitionFieldUpdate, Action: constant.FieldActionArrived},
			mockCall: func(f fields) {
				f.serviceRepo.On("GetByID", mock.Anything, testID).Return(record(constant.ServiceStatusInProgress, "en"), nil).Once()
				f.serviceRepo.On("Update", mock.Anything, testID, mock.Anything).Return(false, nil).Once()
				f.serviceRepo.On("GetByID", mock.Anything, testID).Return(record(constant.ServiceStatusFinished, "en"), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
		{
			name: "error: record deleted before the guarded update",
			req:  &model.TransitionRequest{Kind: constant.TransitionFieldUpdate, Action: constant.FieldActionArrived},
			mockCall: func(f fields) {
				f.serviceRepo.On("GetByID", mock.Anything, testID).Return(record(constant.ServiceStatusInProgress, "en"), nil).Once()
				f.serviceRepo.On("Update", mock.Anything, testID, mock.Anything).Return(false, nil).Once()
				f.serviceRepo.On("GetByID", mock.Anything, testID).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:     "error: unknown action",
			req:      &model.TransitionRequest{Kind: constant.TransitionFieldUpdate, Action: "teleported"},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name:     "error: unknown status",
			req:      &model.TransitionRequest{Kind: constant.TransitionStatus, Target: "archived"},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown record",
			req:  &model.TransitionRequest{Kind: constant.TransitionStatus, Target: constant.ServiceStatusFinished},
			mockCall: func(f fields) {
				f.serviceRepo.On("GetByID", mock.Anything, testID).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: store failure",
			req:  &model.TransitionRequest{Kind: constant.TransitionStatus, Target: constant.ServiceStatusFinished},
			mockCall: func(f fields) {
				f.serviceRepo.On("GetByID", mock.Anything, testID).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				serviceRepo: servicemocks.NewServiceRepository(t),
				dispatcher:  notificationmocks.NewDispatcher(t),
			}
			tt.mockCall(f)
			renderer, err := templates.New("en")
			require.NoError(t, err)
			s := lifecycle.NewLifecycleApp(f.serviceRepo, f.dispatcher, renderer, metrics.Noop())

			got, err := s.Transition(context.Background(), testID, tt.req)
			if tt.wantErr {
				var ce cerr.CustomError
				require.True(t, errors.As(err, &ce))
				assert.Equal(t, constant.ErrorTypeCode[tt.errCode], ce.ErrorCode())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
