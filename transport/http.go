package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	lifecycleapp "github.com/muhammadheryan/home-service/application/lifecycle"
	otpapp "github.com/muhammadheryan/home-service/application/otp"
	serviceapp "github.com/muhammadheryan/home-service/application/service"
	userapp "github.com/muhammadheryan/home-service/application/user"
	"github.com/muhammadheryan/home-service/constant"
	"github.com/muhammadheryan/home-service/model"
	utilsContext "github.com/muhammadheryan/home-service/utils/context"
	"github.com/muhammadheryan/home-service/utils/errors"
	validatorx "github.com/muhammadheryan/home-service/utils/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	OTPApp       otpapp.OTPApp
	ServiceApp   serviceapp.ServiceApp
	LifecycleApp lifecycleapp.LifecycleApp
}

// ExpireResponse reports whether the delayed purge removed the record.
type ExpireResponse struct {
	Deleted bool `json:"deleted"`
}

func NewTransport(
	internalAPIKey string,
	gatherer prometheus.Gatherer,
	UserApp userapp.UserApp,
	OTPApp otpapp.OTPApp,
	ServiceApp serviceapp.ServiceApp,
	LifecycleApp lifecycleapp.LifecycleApp,
) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:      UserApp,
		OTPApp:       OTPApp,
		ServiceApp:   ServiceApp,
		LifecycleApp: LifecycleApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// probes
	mux.HandleFunc("/healthz", rh.Healthz).Methods(http.MethodGet)
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// Public routes
	mux.HandleFunc("/api/v1/services/otp/email", rh.IssueEmailOTP).Methods(http.MethodPost)
	mux.HandleFunc("/api/v1/services/otp/phone", rh.IssuePhoneOTP).Methods(http.MethodPost)
	mux.HandleFunc("/api/v1/services/otp/verify", rh.VerifyOTP).Methods(http.MethodPost)
	mux.HandleFunc("/api/v1/services/inquiry/{code}", rh.GetInquiry).Methods(http.MethodGet)
	mux.HandleFunc("/api/v1/services/{id}/follow-up", rh.FollowUp).Methods(http.MethodPost)
	mux.HandleFunc("/api/v1/auth/signin", rh.SignIn).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/api/v1/auth/signout", rh.SignOut).Methods(http.MethodPost)

	admin := mux.PathPrefix("/api/v1/admin").Subrouter()
	admin.Use(RequireRole(constant.RoleAdmin))
	admin.HandleFunc("/services", rh.ListServices).Methods(http.MethodGet)
	admin.HandleFunc("/services/{id}", rh.GetService).Methods(http.MethodGet)
	admin.HandleFunc("/services/{id}", rh.DeleteService).Methods(http.MethodDelete)
	admin.HandleFunc("/services/{id}/status", rh.ChangeStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/services/{id}/field-update", rh.FieldUpdate).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}/notes", rh.UpdateNotes).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}/message", rh.SendMessage).Methods(http.MethodPost)

	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/services/{id}/expire", rh.ExpireService).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

func (s *RestHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

// IssueEmailOTP handler
// @Summary Start a service request by email
// @Description Sends a one-time code to the email address and returns the request id
// @Tags Intake
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Preferred locale (en, ar)"
// @Param request body model.EmailOTPRequest true "Email OTP Request"
// @Success 200 {object} model.IssueOTPResponse
// @Failure 400 {object} Response
// @Failure 429 {object} Response
// @Failure 502 {object} Response
// @Router /api/v1/services/otp/email [post]
func (s *RestHandler) IssueEmailOTP(w http.ResponseWriter, r *http.Request) {
	var req model.EmailOTPRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.OTPApp.IssueCode(r.Context(), &model.IssueOTPRequest{
		Channel: constant.ChannelEmail,
		Email:   req.Email,
		Locale:  r.Header.Get("Accept-Language"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// IssuePhoneOTP handler
// @Summary Start a service request by phone
// @Description Sends a one-time code by SMS and returns the request id
// @Tags Intake
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Preferred locale (en, ar)"
// @Param request body model.PhoneOTPRequest true "Phone OTP Request"
// @Success 200 {object} model.IssueOTPResponse
// @Failure 400 {object} Response
// @Failure 429 {object} Response
// @Failure 502 {object} Response
// @Router /api/v1/services/otp/phone [post]
func (s *RestHandler) IssuePhoneOTP(w http.ResponseWriter, r *http.Request) {
	var req model.PhoneOTPRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.OTPApp.IssueCode(r.Context(), &model.IssueOTPRequest{
		Channel:     constant.ChannelPhone,
		PhoneNumber: req.PhoneNumber,
		ISD:         req.ISD,
		Locale:      r.Header.Get("Accept-Language"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// VerifyOTP handler
// @Summary Verify a one-time code
// @Tags Intake
// @Accept json
// @Produce json
// @Param request body model.VerifyOTPRequest true "Verify OTP Request"
// @Success 200 {object} model.VerifyOTPResponse
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 429 {object} Response
// @Router /api/v1/services/otp/verify [post]
func (s *RestHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyOTPRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	res, err := s.OTPApp.VerifyCode(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// FollowUp handler
// @Summary Submit service request details
// @Description Requires a verified contact. The first submission issues an inquiry code.
// @Tags Intake
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body model.FollowUpRequest true "Follow-up Request"
// @Success 200 {object} model.FollowUpResponse
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/services/{id}/follow-up [post]
func (s *RestHandler) FollowUp(w http.ResponseWriter, r *http.Request) {
	var req model.FollowUpRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.ServiceApp.ApplyFollowUp(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccessWithWarning(w, res, res.Warning)
}

// GetInquiry handler
// @Summary Look up a service request by inquiry code
// @Tags Intake
// @Produce json
// @Param code path string true "Inquiry code"
// @Success 200 {object} model.InquiryView
// @Failure 404 {object} Response
// @Router /api/v1/services/inquiry/{code} [get]
func (s *RestHandler) GetInquiry(w http.ResponseWriter, r *http.Request) {
	res, err := s.ServiceApp.GetByInquiryCode(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SignIn handler
// @Summary Admin sign in
// @Description Login with email and password and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} Response
// @Router /api/v1/auth/signin [post]
func (s *RestHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SignOut handler
// @Summary Sign out
// @Description Revokes the session behind the bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /api/v1/auth/signout [post]
func (s *RestHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	principal, _ := utilsContext.GetPrincipal(r.Context())
	if err := s.UserApp.Logout(r.Context(), principal); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListServices handler
// @Summary List service requests by status
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string true "pending, in-progress, finished or cancelled"
// @Param page query int false "Page, starting at 1"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {object} model.ServiceListResponse
// @Failure 400 {object} Response
// @Router /api/v1/admin/services [get]
func (s *RestHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := model.ServiceListRequest{Status: constant.ServiceStatus(query.Get("status"))}

	var err error
	if raw := query.Get("page"); raw != "" {
		if req.Page, err = strconv.Atoi(raw); err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
	}
	if raw := query.Get("limit"); raw != "" {
		if req.Limit, err = strconv.Atoi(raw); err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	res, err := s.ServiceApp.ListByStatus(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetService handler
// @Summary Service request detail
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 200 {object} model.ServiceEntity
// @Failure 404 {object} Response
// @Router /api/v1/admin/services/{id} [get]
func (s *RestHandler) GetService(w http.ResponseWriter, r *http.Request) {
	res, err := s.ServiceApp.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteService handler
// @Summary Delete a service request
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/admin/services/{id} [delete]
func (s *RestHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := s.ServiceApp.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ChangeStatus handler
// @Summary Change service status
// @Description Any status can be set from any status. Notification failures are reported as a warning.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body model.StatusRequest true "Status Request"
// @Success 200 {object} model.TransitionResult
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/admin/services/{id}/status [patch]
func (s *RestHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req model.StatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.LifecycleApp.Transition(r.Context(), mux.Vars(r)["id"], &model.TransitionRequest{
		Kind:   constant.TransitionStatus,
		Target: req.Status,
		Notify: req.Notify,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccessWithWarning(w, res, res.Warning)
}

// FieldUpdate handler
// @Summary Send a field progress update
// @Description Only allowed while the request is in progress. The customer is always notified.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body model.FieldUpdateRequest true "Field Update Request"
// @Success 200 {object} model.TransitionResult
// @Failure 409 {object} Response
// @Router /api/v1/admin/services/{id}/field-update [post]
func (s *RestHandler) FieldUpdate(w http.ResponseWriter, r *http.Request) {
	var req model.FieldUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.LifecycleApp.Transition(r.Context(), mux.Vars(r)["id"], &model.TransitionRequest{
		Kind:   constant.TransitionFieldUpdate,
		Action: req.Action,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccessWithWarning(w, res, res.Warning)
}

// UpdateNotes handler
// @Summary Update admin notes
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body model.NotesRequest true "Notes Request"
// @Success 200 {object} model.ServiceEntity
// @Failure 404 {object} Response
// @Router /api/v1/admin/services/{id}/notes [put]
func (s *RestHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	var req model.NotesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.ServiceApp.UpdateNotes(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SendMessage handler
// @Summary Message the customer
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body model.AdminMessageRequest true "Admin Message Request"
// @Success 200 {object} model.AdminMessageResult
// @Failure 404 {object} Response
// @Router /api/v1/admin/services/{id}/message [post]
func (s *RestHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req model.AdminMessageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.ServiceApp.SendAdminMessage(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccessWithWarning(w, res, res.Warning)
}

// ExpireService handler
// @Summary Purge an unverified service request
// @Description Called by the expiry consumer once the verification grace period has passed
// @Tags Internal
// @Produce json
// @Param Authorization header string true "Bearer internal API key"
// @Param id path string true "Service ID"
// @Success 200 {object} ExpireResponse
// @Failure 403 {object} Response
// @Router /internal/v1/services/{id}/expire [post]
func (s *RestHandler) ExpireService(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.ServiceApp.ExpireUnverified(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, ExpireResponse{Deleted: deleted})
}
