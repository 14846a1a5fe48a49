package transport_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/home-service/constant"
	lifecyclemocks "github.com/muhammadheryan/home-service/mocks/application/lifecycle"
	otpmocks "github.com/muhammadheryan/home-service/mocks/application/otp"
	servicemocks "github.com/muhammadheryan/home-service/mocks/application/service"
	usermocks "github.com/muhammadheryan/home-service/mocks/application/user"
	"github.com/muhammadheryan/home-service/model"
	"github.com/muhammadheryan/home-service/transport"
	cerr "github.com/muhammadheryan/home-service/utils/errors"
	"github.com/muhammadheryan/home-service/utils/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	internalKey = "internal-key"
	serviceID   = "6f1c2a9e-3b4d-4e5f-8a7b-9c0d1e2f3a4b"
)

type fields struct {
	userApp      *usermocks.UserApp
	otpApp       *otpmocks.OTPApp
	serviceApp   *servicemocks.ServiceApp
	lifecycleApp *lifecyclemocks.LifecycleApp
}

type envelope struct {
	Success bool              `json:"success"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Warning string            `json:"warning"`
	Errors  map[string]string `json:"errors"`
}

func newFields(t *testing.T) fields {
	return fields{
		userApp:      usermocks.NewUserApp(t),
		otpApp:       otpmocks.NewOTPApp(t),
		serviceApp:   servicemocks.NewServiceApp(t),
		lifecycleApp: lifecyclemocks.NewLifecycleApp(t),
	}
}

func (f fields) handler() http.Handler {
	return transport.NewTransport(internalKey, prometheus.NewRegistry(), f.userApp, f.otpApp, f.serviceApp, f.lifecycleApp)
}

func asAdmin(f fields) {
	f.userApp.
		On("ValidateToken", mock.Anything, "admin-token").
		Return(&model.Principal{ID: 1, Email: "admin@example.com", Role: constant.RoleAdmin, SessionID: "jti-1"}, nil).
		Once()
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestNewTransport_Intake(t *testing.T) {
	expiresAt := time.Date(2026, 3, 14, 9, 10, 0, 0, time.UTC)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		headers    map[string]string
		mockCall   func(f fields)
		wantStatus int
		errCode    constant.ErrorType
		wantErrors map[string]string
		wantWarn   string
	}{
		{
			name:    "success: email otp carries the request locale",
			method:  http.MethodPost,
			path:    "/api/v1/services/otp/email",
			body:    `{"email":"layla@example.com"}`,
			headers: map[string]string{"Accept-Language": "ar"},
			mockCall: func(f fields) {
				f.otpApp.
					On("IssueCode", mock.Anything, &model.IssueOTPRequest{
						Channel: constant.ChannelEmail,
						Email:   "layla@example.com",
						Locale:  "ar",
					}).
					Return(&model.IssueOTPResponse{ServiceID: serviceID, Channel: constant.ChannelEmail, Destination: "layla@example.com", ExpiresAt: expiresAt}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			errCode:    constant.Successful,
		},
		{
			name:       "error: invalid email is rejected before the app",
			method:     http.MethodPost,
			path:       "/api/v1/services/otp/email",
			body:       `{"email":"not-an-email"}`,
			mockCall:   func(f fields) {},
			wantStatus: http.StatusBadRequest,
			errCode:    constant.ErrInvalidRequest,
			wantErrors: map[string]string{"email": "must be a valid email"},
		},
		{
			name:       "error: malformed json",
			method:     http.MethodPost,
			path:       "/api/v1/services/otp/email",
			body:       `{"email":`,
			mockCall:   func(f fields) {},
			wantStatus: http.StatusBadRequest,
			errCode:    constant.ErrInvalidRequest,
		},
		{
			name:   "error: phone otp inside resend cooldown",
			method: http.MethodPost,
			path:   "/api/v1/services/otp/phone",
			body:   `{"phoneNumber":"2015550123","ISD":"+1"}`,
			mockCall: func(f fields) {
				f.otpApp.
					On("IssueCode", mock.Anything, &model.IssueOTPRequest{
						Channel:     constant.ChannelPhone,
						PhoneNumber: "2015550123",
						ISD:         "+1",
					}).
					Return(nil, cerr.SetCustomError(constant.ErrTooManyRequests)).
					Once()
			},
			wantStatus: http.StatusTooManyRequests,
			errCode:    constant.ErrTooManyRequests,
		},
		{
			name:       "error: phone otp with malformed dialing code",
			method:     http.MethodPost,
			path:       "/api/v1/services/otp/phone",
			body:       `{"phoneNumber":"2015550123","ISD":"1"}`,
			mockCall:   func(f fields) {},
			wantStatus: http.StatusBadRequest,
			errCode:    constant.ErrInvalidRequest,
			wantErrors: map[string]string{"ISD": "must be a dialing code like +966"},
		},
		{
			name:   "error: verify with expired code",
			method: http.MethodPost,
			path:   "/api/v1/services/otp/verify",
			body:   `{"serviceId":"` + serviceID + `","channel":"email","otpCode":"482913"}`,
			mockCall: func(f fields) {
				f.otpApp.
					On("VerifyCode", mock.Anything, &model.VerifyOTPRequest{ServiceID: serviceID, Channel: constant.ChannelEmail, Code: "482913"}).
					Return(nil, cerr.SetCustomError(constant.ErrOTPExpired)).
					Once()
			},
			wantStatus: http.StatusBadRequest,
			errCode:    constant.ErrOTPExpired,
		},
		{
			name:       "error: verify with short code",
			method:     http.MethodPost,
			path:       "/api/v1/services/otp/verify",
			body:       `{"serviceId":"` + serviceID + `","channel":"email","otpCode":"4829"}`,
			mockCall:   func(f fields) {},
			wantStatus: http.StatusBadRequest,
			errCode:    constant.ErrInvalidRequest,
			wantErrors: map[string]string{"otpCode": "must be a 6 digit code"},
		},
		{
			name:   "success: follow-up reports delivery warning",
			method: http.MethodPost,
			path:   "/api/v1/services/" + serviceID + "/follow-up",
			body:   `{"fullName":"Layla Haddad"}`,
			mockCall: func(f fields) {
				f.serviceApp.
					On("ApplyFollowUp", mock.Anything, serviceID, mock.MatchedBy(func(req *model.FollowUpRequest) bool {
						return req.FullName != nil && *req.FullName == "Layla Haddad"
					})).
					Return(&model.FollowUpResponse{
						Service: &model.ServiceEntity{ID: serviceID},
						Warning: constant.ErrorTypeMessage[constant.ErrDeliveryFailure],
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			errCode:    constant.Successful,
			wantWarn:   constant.ErrorTypeMessage[constant.ErrDeliveryFailure],
		},
		{
			name:   "error: follow-up before verification",
			method: http.MethodPost,
			path:   "/api/v1/services/" + serviceID + "/follow-up",
			body:   `{}`,
			mockCall: func(f fields) {
				f.serviceApp.
					On("ApplyFollowUp", mock.Anything, serviceID, &model.FollowUpRequest{}).
					Return(nil, cerr.SetCustomError(constant.ErrUnverified)).
					Once()
			},
			wantStatus: http.StatusForbidden,
			errCode:    constant.ErrUnverified,
		},
		{
			name:   "error: unknown inquiry code",
			method: http.MethodGet,
			path:   "/api/v1/services/inquiry/deadbeef",
			mockCall: func(f fields) {
				f.serviceApp.
					On("GetByInquiryCode", mock.Anything, "deadbeef").
					Return(nil, cerr.SetCustomError(constant.ErrNotFound)).
					Once()
			},
			wantStatus: http.StatusNotFound,
			errCode:    constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			rec, env := do(t, f.handler(), tt.method, tt.path, tt.body, tt.headers)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, constant.ErrorTypeCode[tt.errCode], env.Code)
			assert.Equal(t, tt.errCode == constant.Successful, env.Success)
			assert.Equal(t, tt.wantErrors, env.Errors)
			assert.Equal(t, tt.wantWarn, env.Warning)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestNewTransport_Admin(t *testing.T) {
	bearer := map[string]string{"Authorization": "Bearer admin-token"}
	svc := &model.ServiceEntity{ID: serviceID, Status: constant.ServiceStatusInProgress}

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		headers    map[string]string
		mockCall   func(f fields)
		wantStatus int
		errCode    constant.ErrorType
		wantWarn   string
	}{
		{
			name:       "error: missing token",
			method:     http.MethodGet,
			path:       "/api/v1/admin/services?status=pending",
			mockCall:   func(f fields) {},
			wantStatus: http.StatusUnauthorized,
			errCode:    constant.ErrUnauthorize,
		},
		{
			name:    "error: revoked session",
			method:  http.MethodGet,
			path:    "/api/v1/admin/services?status=pending",
			headers: map[string]string{"Authorization": "Bearer stale-token"},
			mockCall: func(f fields) {
				f.userApp.On("ValidateToken", mock.Anything, "stale-token").Return(nil, errors.New("invalid or expired session")).Once()
			},
			wantStatus: http.StatusUnauthorized,
			errCode:    constant.ErrUnauthorize,
		},
		{
			name:    "error: non-admin role",
			method:  http.MethodGet,
			path:    "/api/v1/admin/services?status=pending",
			headers: map[string]string{"Authorization": "Bearer user-token"},
			mockCall: func(f fields) {
				f.userApp.
					On("ValidateToken", mock.Anything, "user-token").
					Return(&model.Principal{ID: 2, Role: constant.RoleUser, SessionID: "jti-2"}, nil).
					Once()
			},
			wantStatus: http.StatusForbidden,
			errCode:    constant.ErrForbidden,
		},
		{
			name:    "success: list by status with paging",
			method:  http.MethodGet,
			path:    "/api/v1/admin/services?status=pending&page=2&limit=5",
			headers: bearer,
			mockCall: func(f fields) {
				asAdmin(f)
				f.serviceApp.
					On("ListByStatus", mock.Anything, &model.ServiceListRequest{Status: constant.ServiceStatusPending, Page: 2, Limit: 5}).
					Return(&model.ServiceListResponse{Results: []model.ServiceEntity{}, CurrentPage: 2, TotalPages: 2, TotalResults: 6}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			errCode:    constant.Successful,
		},
		{
			name:       "error: list with non-numeric page",
			method:     http.MethodGet,
			path:       "/api/v1/admin/services?status=pending&page=two",
			headers:    bearer,
			mockCall:   asAdmin,
			wantStatus: http.StatusBadRequest,
			errCode:    constant.ErrInvalidRequest,
		},
		{
			name:       "error: list with unknown status",
			method:     http.MethodGet,
			path:       "/api/v1/admin/services?status=archived",
			headers:    bearer,
			mockCall:   asAdmin,
			wantStatus: http.StatusBadRequest,
			errCode:    constant.ErrInvalidRequest,
		},
		{
			name:    "success: detail",
			method:  http.MethodGet,
			path:    "/api/v1/admin/services/" + serviceID,
			headers: bearer,
			mockCall: func(f fields) {
				asAdmin(f)
				f.serviceApp.On("GetByID", mock.Anything, serviceID).Return(svc, nil).Once()
			},
			wantStatus: http.StatusOK,
			errCode:    constant.Successful,
		},
		{
			name:    "error: delete unknown record",
			method:  http.MethodDelete,
			path:    "/api/v1/admin/services/" + serviceID,
			headers: bearer,
			mockCall: func(f fields) {
				asAdmin(f)
				f.serviceApp.On("Delete", mock.Anything, serviceID).Return(cerr.SetCustomError(constant.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			errCode:    constant.ErrNotFound,
		},
		{
			name:    "success: status change with failed notification",
			method:  http.MethodPatch,
			path:    "/api/v1/admin/services/" + serviceID + "/status",
			body:    `{"status":"cancelled","notify":true}`,
			headers: bearer,
			mockCall: func(f fields) {
				asAdmin(f)
				f.lifecycleApp.
					On("Transition", mock.Anything, serviceID, &model.TransitionRequest{
						Kind:   constant.TransitionStatus,
						Target: constant.ServiceStatusCancelled,
						Notify: true,
					}).
					Return(&model.TransitionResult{Service: svc, Warning: constant.ErrorTypeMessage[constant.ErrDeliveryFailure]}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			errCode:    constant.Successful,
			wantWarn:   constant.ErrorTypeMessage[constant.ErrDeliveryFailure],
		},
		{
			name:    "error: field update outside in-progress",
			method:  http.MethodPost,
			path:    "/api/v1/admin/services/" + serviceID + "/field-update",
			body:    `{"action":"arrived"}`,
			headers: bearer,
			mockCall: func(f fields) {
				asAdmin(f)
				f.lifecycleApp.
					On("Transition", mock.Anything, serviceID, &model.TransitionRequest{
						Kind:   constant.TransitionFieldUpdate,
						Action: constant.FieldActionArrived,
					}).
					Return(nil, cerr.SetCustomError(constant.ErrInvalidState)).
					Once()
			},
			wantStatus: http.StatusConflict,
			errCode:    constant.ErrInvalidState,
		},
		{
			name:       "error: field update with unknown action",
			method:     http.MethodPost,
			path:       "/api/v1/admin/services/" + serviceID + "/field-update",
			body:       `{"action":"teleported"}`,
			headers:    bearer,
			mockCall:   asAdmin,
			wantStatus: http.StatusBadRequest,
			errCode:    constant.ErrInvalidRequest,
		},
		{
			name:    "success: notes",
			method:  http.MethodPut,
			path:    "/api/v1/admin/services/" + serviceID + "/notes",
			body:    `{"adminNote":"Bring a ladder"}`,
			headers: bearer,
			mockCall: func(f fields) {
				asAdmin(f)
				f.serviceApp.
					On("UpdateNotes", mock.Anything, serviceID, mock.MatchedBy(func(req *model.NotesRequest) bool {
						return req.AdminNote != nil && *req.AdminNote == "Bring a ladder" && req.AdminInternalNote == nil
					})).
					Return(svc, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			errCode:    constant.Successful,
		},
		{
			name:    "success: admin message",
			method:  http.MethodPost,
			path:    "/api/v1/admin/services/" + serviceID + "/message",
			body:    `{"message":"We will call you shortly."}`,
			headers: bearer,
			mockCall: func(f fields) {
				asAdmin(f)
				f.serviceApp.
					On("SendAdminMessage", mock.Anything, serviceID, &model.AdminMessageRequest{Message: "We will call you shortly."}).
					Return(&model.AdminMessageResult{Service: svc, Notified: true}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			errCode:    constant.Successful,
		},
		{
			name:    "success: sign out revokes the caller session",
			method:  http.MethodPost,
			path:    "/api/v1/auth/signout",
			headers: bearer,
			mockCall: func(f fields) {
				asAdmin(f)
				f.userApp.
					On("Logout", mock.Anything, &model.Principal{ID: 1, Email: "admin@example.com", Role: constant.RoleAdmin, SessionID: "jti-1"}).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusOK,
			errCode:    constant.Successful,
		},
		{
			name:   "error: sign in with wrong password",
			method: http.MethodPost,
			path:   "/api/v1/auth/signin",
			body:   `{"email":"admin@example.com","password":"wrong"}`,
			mockCall: func(f fields) {
				f.userApp.
					On("Login", mock.Anything, &model.LoginRequest{Email: "admin@example.com", Password: "wrong"}).
					Return(nil, cerr.SetCustomError(constant.ErrInvalidPassword)).
					Once()
			},
			wantStatus: http.StatusBadRequest,
			errCode:    constant.ErrInvalidPassword,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			rec, env := do(t, f.handler(), tt.method, tt.path, tt.body, tt.headers)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, constant.ErrorTypeCode[tt.errCode], env.Code)
			assert.Equal(t, tt.wantWarn, env.Warning)
		})
	}
}

func TestNewTransport_Internal(t *testing.T) {
	tests := []struct {
		name       string
		auth       string
		mockCall   func(f fields)
		wantStatus int
		wantData   string
	}{
		{
			name:       "error: missing key",
			mockCall:   func(f fields) {},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "error: wrong key",
			auth:       "Bearer nope",
			mockCall:   func(f fields) {},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "success: expire unverified record",
			auth: "Bearer " + internalKey,
			mockCall: func(f fields) {
				f.serviceApp.On("ExpireUnverified", mock.Anything, serviceID).Return(true, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantData:   `{"deleted":true}`,
		},
		{
			name: "success: verified record is kept",
			auth: "Bearer " + internalKey,
			mockCall: func(f fields) {
				f.serviceApp.On("ExpireUnverified", mock.Anything, serviceID).Return(false, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantData:   `{"deleted":false}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			headers := map[string]string{}
			if tt.auth != "" {
				headers["Authorization"] = tt.auth
			}
			rec, env := do(t, f.handler(), http.MethodPost, "/internal/v1/services/"+serviceID+"/expire", "", headers)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantData != "" {
				assert.JSONEq(t, tt.wantData, string(env.Data))
			}
		})
	}
}

func TestNewTransport_DisabledInternalKey(t *testing.T) {
	f := newFields(t)
	h := transport.NewTransport("", prometheus.NewRegistry(), f.userApp, f.otpApp, f.serviceApp, f.lifecycleApp)

	rec, env := do(t, h, http.MethodPost, "/internal/v1/services/"+serviceID+"/expire", "", map[string]string{"Authorization": "Bearer "})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrForbidden], env.Code)
}

func TestNewTransport_UnexpectedErrorIsHidden(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	prev := logger.Get()
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(prev) })

	f := newFields(t)
	f.serviceApp.On("GetByInquiryCode", mock.Anything, "deadbeef").Return(nil, errors.New("dial tcp: connection refused")).Once()

	rec, env := do(t, f.handler(), http.MethodGet, "/api/v1/services/inquiry/deadbeef", "", map[string]string{"X-Request-ID": serviceID})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInternal], env.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Equal(t, serviceID, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, 1, logs.FilterMessage("[writeError] unexpected error").Len())
}

func TestNewTransport_Probes(t *testing.T) {
	f := newFields(t)
	h := f.handler()

	rec, env := do(t, h, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))

	rec, _ = do(t, h, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
