package service

import (
	"context"
	"strings"
	"time"

	"github.com/muhammadheryan/home-service/application/inquiry"
	"github.com/muhammadheryan/home-service/application/verification"
	"github.com/muhammadheryan/home-service/cmd/config"
	"github.com/muhammadheryan/home-service/constant"
	"github.com/muhammadheryan/home-service/model"
	servicerepo "github.com/muhammadheryan/home-service/repository/service"
	"github.com/muhammadheryan/home-service/templates"
	"github.com/muhammadheryan/home-service/thirdparty/notification"
	"github.com/muhammadheryan/home-service/thirdparty/phone"
	"github.com/muhammadheryan/home-service/utils/errors"
	"github.com/muhammadheryan/home-service/utils/logger"
	"github.com/muhammadheryan/home-service/utils/metrics"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	// delayed expiry messages may be delivered slightly ahead of schedule
	expireSkew = 5 * time.Second
)

type ServiceApp interface {
	GetByID(ctx context.Context, id string) (*model.ServiceEntity, error)
	GetByInquiryCode(ctx context.Context, code string) (*model.InquiryView, error)
	ApplyFollowUp(ctx context.Context, id string, req *model.FollowUpRequest) (*model.FollowUpResponse, error)
	ListByStatus(ctx context.Context, req *model.ServiceListRequest) (*model.ServiceListResponse, error)
	UpdateNotes(ctx context.Context, id string, req *model.NotesRequest) (*model.ServiceEntity, error)
	SendAdminMessage(ctx context.Context, id string, req *model.AdminMessageRequest) (*model.AdminMessageResult, error)
	Delete(ctx context.Context, id string) error
	ExpireUnverified(ctx context.Context, id string) (bool, error)
	Purge(ctx context.Context, now time.Time) (*model.PurgeResult, error)
}

type ServiceAppImpl struct {
	config      *config.Config
	policy      constant.VerificationPolicy
	serviceRepo servicerepo.ServiceRepository
	inquiryApp  inquiry.InquiryApp
	dispatcher  notification.Dispatcher
	renderer    *templates.Renderer
	normalizer  phone.Normalizer
	metrics     *metrics.Metrics

	now func() time.Time
}

func NewServiceApp(
	config *config.Config,
	policy constant.VerificationPolicy,
	serviceRepo servicerepo.ServiceRepository,
	inquiryApp inquiry.InquiryApp,
	dispatcher notification.Dispatcher,
	renderer *templates.Renderer,
	normalizer phone.Normalizer,
	m *metrics.Metrics,
) ServiceApp {
	if m == nil {
		m = metrics.Noop()
	}
	return &ServiceAppImpl{
		config:      config,
		policy:      policy,
		serviceRepo: serviceRepo,
		inquiryApp:  inquiryApp,
		dispatcher:  dispatcher,
		renderer:    renderer,
		normalizer:  normalizer,
		metrics:     m,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *ServiceAppImpl) GetByID(ctx context.Context, id string) (*model.ServiceEntity, error) {
	entity, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("[GetByID] err serviceRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *ServiceAppImpl) GetByInquiryCode(ctx context.Context, code string) (*model.InquiryView, error) {
	entity, err := s.inquiryApp.Resolve(ctx, code)
	if err != nil {
		return nil, err
	}

	return &model.InquiryView{
		FullName:  entity.FullName,
		Type:      entity.Type,
		Status:    entity.Status,
		Message:   entity.Message,
		AdminNote: entity.AdminNote,
		UpdatedAt: entity.UpdatedAt,
	}, nil
}

func (s *ServiceAppImpl) ApplyFollowUp(ctx context.Context, id string, req *model.FollowUpRequest) (*model.FollowUpResponse, error) {
	log := logger.FromContext(ctx)

	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !verification.CanProceed(s.policy, rec) {
		return nil, errors.SetCustomError(constant.ErrUnverified)
	}

	now := s.now()
	upd, err := s.mergeFollowUp(rec, req, now)
	if err != nil {
		return nil, err
	}

	firstSubmission := rec.ServiceCodeHash == nil
	if firstSubmission {
		narrative := s.renderer.Narrative(rec.Locale, constant.ServiceStatusPending)
		upd.Message = &narrative
	}

	found, err := s.serviceRepo.Update(ctx, id, upd)
	if err != nil {
		log.Error("[ApplyFollowUp] err serviceRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !found {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	updated, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &model.FollowUpResponse{Service: updated}
	if !firstSubmission {
		return resp, nil
	}

	code, minted, err := s.inquiryApp.Mint(ctx, id)
	if err != nil {
		return nil, err
	}
	if !minted {
		// a concurrent submission minted first and delivers its own code
		return resp, nil
	}

	channel, destination, ok := updated.PreferredContact(true)
	if ok {
		var msg templates.Message
		msg, err = s.renderer.InquiryCode(updated.Locale, channel, updated.FullName, code)
		if err == nil {
			err = s.dispatcher.Dispatch(ctx, model.Notification{
				Channel:     channel,
				Destination: destination,
				Subject:     msg.Subject,
				Body:        msg.Body,
			})
		}
	}
	if !ok || err != nil {
		if err != nil {
			log.Warn("[ApplyFollowUp] err dispatch inquiry code", zap.String("error", err.Error()))
		}
		// an undelivered code is cleared so the next submission mints again
		if revokeErr := s.inquiryApp.Revoke(ctx, id, code); revokeErr != nil {
			return nil, revokeErr
		}
		resp.Warning = constant.ErrorTypeMessage[constant.ErrDeliveryFailure]
		return resp, nil
	}

	resp.InquiryCodeIssued = true
	return resp, nil
}

// mergeFollowUp copies the provided fields onto an update, normalizing
// contacts and resetting the verified flag of a changed contact.
func (s *ServiceAppImpl) mergeFollowUp(rec *model.ServiceEntity, req *model.FollowUpRequest, now time.Time) (*model.ServiceUpdate, error) {
	upd := &model.ServiceUpdate{
		AddressLineOne: trimmed(req.AddressLineOne),
		AddressLineTwo: trimmed(req.AddressLineTwo),
		Country:        trimmed(req.Country),
		City:           trimmed(req.City),
		Area:           trimmed(req.Area),
		Street:         trimmed(req.Street),
		BuildingNum:    trimmed(req.BuildingNum),
		FlatNum:        trimmed(req.FlatNum),
		Type:           trimmed(req.Type),
		UserNote:       trimmed(req.UserNote),
		PeriodFullTime: trimmed(req.PeriodFullTime),
		UpdatedAt:      now,
	}

	if req.FullName != nil {
		name := norm.NFC.String(strings.TrimSpace(*req.FullName))
		upd.FullName = &name
	}

	if req.PeriodDate != nil {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if req.PeriodDate.UTC().Before(today) {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		date := req.PeriodDate.UTC()
		upd.PeriodDate = &date
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != rec.Email {
			upd.Email = &email
			upd.EmailVerified = boolPtr(false)
		}
	}

	if req.PhoneNumber != nil || req.ISD != nil {
		raw, isd := rec.PhoneNumber, rec.ISD
		if req.PhoneNumber != nil {
			raw = *req.PhoneNumber
		}
		if req.ISD != nil {
			isd = strings.TrimSpace(*req.ISD)
			if !strings.HasPrefix(isd, "+") {
				isd = "+" + isd
			}
		}

		normalized, err := s.normalizer.Normalize(isd, raw)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidPhone)
		}
		code, err := phone.CountryCode(normalized)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidPhone)
		}
		// a stored number already carries its country code
		if req.ISD != nil && isd != code {
			return nil, errors.SetCustomError(constant.ErrInvalidPhone)
		}
		if normalized != rec.PhoneNumber {
			upd.PhoneNumber = &normalized
			upd.PhoneVerified = boolPtr(false)
		}
		if code != rec.ISD {
			upd.ISD = &code
		}
	}

	return upd, nil
}

func (s *ServiceAppImpl) ListByStatus(ctx context.Context, req *model.ServiceListRequest) (*model.ServiceListResponse, error) {
	page, limit := req.Page, req.Limit
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	items, total, err := s.serviceRepo.FindByStatus(ctx, req.Status, page, limit)
	if err != nil {
		logger.FromContext(ctx).Error("[ListByStatus] err serviceRepo.FindByStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if items == nil {
		items = []model.ServiceEntity{}
	}

	return &model.ServiceListResponse{
		Results:      items,
		CurrentPage:  page,
		TotalPages:   int((total + int64(limit) - 1) / int64(limit)),
		ResultsCount: len(items),
		TotalResults: total,
	}, nil
}

func (s *ServiceAppImpl) UpdateNotes(ctx context.Context, id string, req *model.NotesRequest) (*model.ServiceEntity, error) {
	if req.AdminNote == nil && req.AdminInternalNote == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	found, err := s.serviceRepo.Update(ctx, id, &model.ServiceUpdate{
		AdminNote:         trimmed(req.AdminNote),
		AdminInternalNote: trimmed(req.AdminInternalNote),
		UpdatedAt:         s.now(),
	})
	if err != nil {
		logger.FromContext(ctx).Error("[UpdateNotes] err serviceRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !found {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return s.GetByID(ctx, id)
}

func (s *ServiceAppImpl) SendAdminMessage(ctx context.Context, id string, req *model.AdminMessageRequest) (*model.AdminMessageResult, error) {
	log := logger.FromContext(ctx)

	body := strings.TrimSpace(req.Message)
	found, err := s.serviceRepo.Update(ctx, id, &model.ServiceUpdate{
		AdminMessage: &body,
		UpdatedAt:    s.now(),
	})
	if err != nil {
		log.Error("[SendAdminMessage] err serviceRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !found {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	updated, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &model.AdminMessageResult{Service: updated}
	if err := s.notify(ctx, updated, func(channel constant.Channel) (templates.Message, error) {
		return s.renderer.AdminMessage(updated.Locale, channel, updated.FullName, body)
	}); err != nil {
		log.Warn("[SendAdminMessage] err notify", zap.String("error", err.Error()))
		result.Warning = constant.ErrorTypeMessage[constant.ErrDeliveryFailure]
		return result, nil
	}

	result.Notified = true
	return result, nil
}

// notify renders and dispatches a message to the record's preferred contact.
func (s *ServiceAppImpl) notify(ctx context.Context, rec *model.ServiceEntity, render func(constant.Channel) (templates.Message, error)) error {
	channel, destination, ok := rec.PreferredContact(false)
	if !ok {
		return errors.SetCustomError(constant.ErrDeliveryFailure)
	}

	msg, err := render(channel)
	if err != nil {
		return err
	}
	return s.dispatcher.Dispatch(ctx, model.Notification{
		Channel:     channel,
		Destination: destination,
		Subject:     msg.Subject,
		Body:        msg.Body,
	})
}

func (s *ServiceAppImpl) Delete(ctx context.Context, id string) error {
	deleted, err := s.serviceRepo.DeleteWhere(ctx, model.DeleteFilter{ID: id})
	if err != nil {
		logger.FromContext(ctx).Error("[Delete] err serviceRepo.DeleteWhere", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if deleted == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

// ExpireUnverified deletes the record if it is still pending with no verified
// channel once the grace period has passed. Reports whether anything was deleted.
func (s *ServiceAppImpl) ExpireUnverified(ctx context.Context, id string) (bool, error) {
	cutoff := s.now().Add(-s.config.Service.UnverifiedGrace).Add(expireSkew)
	deleted, err := s.serviceRepo.DeleteWhere(ctx, model.DeleteFilter{
		ID:             id,
		Statuses:       []constant.ServiceStatus{constant.ServiceStatusPending},
		CreatedBefore:  &cutoff,
		UnverifiedOnly: true,
	})
	if err != nil {
		logger.FromContext(ctx).Error("[ExpireUnverified] err serviceRepo.DeleteWhere", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if deleted > 0 {
		s.metrics.Purged.WithLabelValues("expired").Add(float64(deleted))
	}
	return deleted > 0, nil
}

// Purge applies both retention rules relative to now.
func (s *ServiceAppImpl) Purge(ctx context.Context, now time.Time) (*model.PurgeResult, error) {
	log := logger.FromContext(ctx)

	terminalCutoff := now.Add(-s.config.Service.TerminalRetention)
	terminal, err := s.serviceRepo.DeleteWhere(ctx, model.DeleteFilter{
		Statuses:      []constant.ServiceStatus{constant.ServiceStatusFinished, constant.ServiceStatusCancelled},
		UpdatedBefore: &terminalCutoff,
	})
	if err != nil {
		log.Error("[Purge] err serviceRepo.DeleteWhere terminal", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	s.metrics.Purged.WithLabelValues("terminal").Add(float64(terminal))

	unverifiedCutoff := now.Add(-s.config.Service.UnverifiedGrace)
	unverified, err := s.serviceRepo.DeleteWhere(ctx, model.DeleteFilter{
		Statuses:       []constant.ServiceStatus{constant.ServiceStatusPending},
		CreatedBefore:  &unverifiedCutoff,
		UnverifiedOnly: true,
	})
	if err != nil {
		log.Error("[Purge] err serviceRepo.DeleteWhere unverified", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	s.metrics.Purged.WithLabelValues("unverified").Add(float64(unverified))

	log.Info("[Purge] retention sweep done",
		zap.Int64("terminal", terminal),
		zap.Int64("unverified", unverified),
	)

	return &model.PurgeResult{Terminal: terminal, Unverified: unverified}, nil
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

func boolPtr(b bool) *bool {
	return &b
}
