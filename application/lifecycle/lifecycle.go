// Package lifecycle moves service requests between statuses and records
// field progress while a request is in progress.
package lifecycle

import (
	"context"
	"time"

	"github.com/muhammadheryan/home-service/constant"
	"github.com/muhammadheryan/home-service/model"
	servicerepo "github.com/muhammadheryan/home-service/repository/service"
	"github.com/muhammadheryan/home-service/templates"
	"github.com/muhammadheryan/home-service/thirdparty/notification"
	"github.com/muhammadheryan/home-service/utils/errors"
	"github.com/muhammadheryan/home-service/utils/logger"
	"github.com/muhammadheryan/home-service/utils/metrics"
	"go.uber.org/zap"
)

type LifecycleApp interface {
	Transition(ctx context.Context, id string, req *model.TransitionRequest) (*model.TransitionResult, error)
}

type LifecycleAppImpl struct {
	serviceRepo servicerepo.ServiceRepository
	dispatcher  notification.Dispatcher
	renderer    *templates.Renderer
	metrics     *metrics.Metrics

	now func() time.Time
}

func NewLifecycleApp(
	serviceRepo servicerepo.ServiceRepository,
	dispatcher notification.Dispatcher,
	renderer *templates.Renderer,
	m *metrics.Metrics,
) LifecycleApp {
	if m == nil {
		m = metrics.Noop()
	}
	return &LifecycleAppImpl{
		serviceRepo: serviceRepo,
		dispatcher:  dispatcher,
		renderer:    renderer,
		metrics:     m,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *LifecycleAppImpl) Transition(ctx context.Context, id string, req *model.TransitionRequest) (*model.TransitionResult, error) {
	switch req.Kind {
	case constant.TransitionStatus:
		return s.changeStatus(ctx, id, req.Target, req.Notify)
	case constant.TransitionFieldUpdate:
		return s.fieldUpdate(ctx, id, req.Action)
	default:
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
}

// changeStatus accepts any target from any current status.
func (s *LifecycleAppImpl) changeStatus(ctx context.Context, id string, target constant.ServiceStatus, notify bool) (*model.TransitionResult, error) {
	log := logger.FromContext(ctx)

	if !target.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	rec, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	narrative := s.renderer.Narrative(rec.Locale, target)
	found, err := s.serviceRepo.Update(ctx, id, &model.ServiceUpdate{
		Status:    &target,
		Message:   &narrative,
		UpdatedAt: s.now(),
	})
	if err != nil {
		log.Error("[Transition] err serviceRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !found {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	s.metrics.Transitions.WithLabelValues(string(constant.TransitionStatus), string(target)).Inc()

	updated, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &model.TransitionResult{Service: updated}
	if !notify {
		return result, nil
	}

	// the status change stands even when the customer cannot be reached
	if err := s.notify(ctx, updated, func(channel constant.Channel) (templates.Message, error) {
		return s.renderer.StatusUpdate(updated.Locale, channel, updated.FullName, target)
	}); err != nil {
		log.Warn("[Transition] err notify status update", zap.String("error", err.Error()))
		result.Warning = constant.ErrorTypeMessage[constant.ErrDeliveryFailure]
		return result, nil
	}

	result.Notified = true
	return result, nil
}

// fieldUpdate is only legal while the request is in progress. The status
// guard is part of the update so a concurrent status change wins.
func (s *LifecycleAppImpl) fieldUpdate(ctx context.Context, id string, action constant.FieldAction) (*model.TransitionResult, error) {
	log := logger.FromContext(ctx)

	if !action.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	rec, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Status != constant.ServiceStatusInProgress {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}

	inProgress := constant.ServiceStatusInProgress
	narrative := s.renderer.ActionNarrative(rec.Locale, action)
	found, err := s.serviceRepo.Update(ctx, id, &model.ServiceUpdate{
		Message:     &narrative,
		WhereStatus: &inProgress,
		UpdatedAt:   s.now(),
	})
	if err != nil {
		log.Error("[Transition] err serviceRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !found {
		if _, err := s.get(ctx, id); err != nil {
			return nil, err
		}
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}
	s.metrics.Transitions.WithLabelValues(string(constant.TransitionFieldUpdate), string(action)).Inc()

	updated, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &model.TransitionResult{Service: updated}
	if err := s.notify(ctx, updated, func(channel constant.Channel) (templates.Message, error) {
		return s.renderer.FieldUpdate(updated.Locale, channel, updated.FullName, action)
	}); err != nil {
		log.Warn("[Transition] err notify field update", zap.String("error", err.Error()))
		result.Warning = constant.ErrorTypeMessage[constant.ErrDeliveryFailure]
		return result, nil
	}

	result.Notified = true
	return result, nil
}

func (s *LifecycleAppImpl) get(ctx context.Context, id string) (*model.ServiceEntity, error) {
	rec, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("[Transition] err serviceRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if rec == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return rec, nil
}

func (s *LifecycleAppImpl) notify(ctx context.Context, rec *model.ServiceEntity, render func(constant.Channel) (templates.Message, error)) error {
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
