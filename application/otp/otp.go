package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/home-service/cmd/config"
	"github.com/muhammadheryan/home-service/constant"
	"github.com/muhammadheryan/home-service/model"
	redisrepo "github.com/muhammadheryan/home-service/repository/redis"
	servicerepo "github.com/muhammadheryan/home-service/repository/service"
	"github.com/muhammadheryan/home-service/templates"
	"github.com/muhammadheryan/home-service/thirdparty/notification"
	"github.com/muhammadheryan/home-service/thirdparty/phone"
	"github.com/muhammadheryan/home-service/thirdparty/rabbitmq"
	"github.com/muhammadheryan/home-service/utils/errors"
	"github.com/muhammadheryan/home-service/utils/hash"
	"github.com/muhammadheryan/home-service/utils/logger"
	"github.com/muhammadheryan/home-service/utils/metrics"
	"go.uber.org/zap"
)

const codeDigits = 6

type OTPApp interface {
	IssueCode(ctx context.Context, req *model.IssueOTPRequest) (*model.IssueOTPResponse, error)
	VerifyCode(ctx context.Context, req *model.VerifyOTPRequest) (*model.VerifyOTPResponse, error)
}

type OTPAppImpl struct {
	config      *config.Config
	serviceRepo servicerepo.ServiceRepository
	redisRepo   redisrepo.RedisRepository
	dispatcher  notification.Dispatcher
	renderer    *templates.Renderer
	normalizer  phone.Normalizer
	publisher   rabbitmq.ExpirationPublisher
	metrics     *metrics.Metrics

	now     func() time.Time
	newCode func() (string, error)
	newID   func() string
}

func NewOTPApp(
	config *config.Config,
	serviceRepo servicerepo.ServiceRepository,
	redisRepo redisrepo.RedisRepository,
	dispatcher notification.Dispatcher,
	renderer *templates.Renderer,
	normalizer phone.Normalizer,
	publisher rabbitmq.ExpirationPublisher,
	m *metrics.Metrics,
) OTPApp {
	if m == nil {
		m = metrics.Noop()
	}
	return &OTPAppImpl{
		config:      config,
		serviceRepo: serviceRepo,
		redisRepo:   redisRepo,
		dispatcher:  dispatcher,
		renderer:    renderer,
		normalizer:  normalizer,
		publisher:   publisher,
		metrics:     m,
		now:         func() time.Time { return time.Now().UTC() },
		newCode:     generateCode,
		newID:       uuid.NewString,
	}
}

// contact is a normalized destination for one channel.
type contact struct {
	channel constant.Channel
	value   string
	isd     string
}

func (c contact) filter() *model.ContactFilter {
	if c.channel == constant.ChannelPhone {
		return &model.ContactFilter{PhoneNumber: c.value}
	}
	return &model.ContactFilter{Email: c.value}
}

func (s *OTPAppImpl) resolveContact(channel constant.Channel, email, phoneNumber, isd string) (contact, error) {
	switch channel {
	case constant.ChannelEmail:
		value := strings.ToLower(strings.TrimSpace(email))
		if value == "" {
			return contact{}, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		return contact{channel: channel, value: value}, nil
	case constant.ChannelPhone:
		value, err := s.normalizer.Normalize(isd, phoneNumber)
		if err != nil {
			return contact{}, errors.SetCustomError(constant.ErrInvalidPhone)
		}
		code, err := phone.CountryCode(value)
		if err != nil {
			return contact{}, errors.SetCustomError(constant.ErrInvalidPhone)
		}
		return contact{channel: channel, value: value, isd: code}, nil
	default:
		return contact{}, errors.SetCustomError(constant.ErrInvalidRequest)
	}
}

func (s *OTPAppImpl) IssueCode(ctx context.Context, req *model.IssueOTPRequest) (resp *model.IssueOTPResponse, err error) {
	log := logger.FromContext(ctx)

	c, err := s.resolveContact(req.Channel, req.Email, req.PhoneNumber, req.ISD)
	if err != nil {
		return nil, err
	}

	cooldownKey := redisrepo.CooldownKey(string(c.channel) + ":" + c.value)
	if s.config.OTP.ResendCooldown > 0 {
		allowed, setErr := s.redisRepo.SetIfAbsent(ctx, cooldownKey, "1", s.config.OTP.ResendCooldown)
		if setErr != nil {
			log.Error("[IssueCode] err redisRepo.SetIfAbsent", zap.String("error", setErr.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if !allowed {
			return nil, errors.SetCustomError(constant.ErrTooManyRequests)
		}

		// a request that sent nothing must not hold the contact
		defer func() {
			if err == nil {
				return
			}
			if delErr := s.redisRepo.Delete(ctx, cooldownKey); delErr != nil {
				log.Warn("[IssueCode] err redisRepo.Delete", zap.String("error", delErr.Error()))
			}
		}()
	}

	now := s.now()
	locale := s.renderer.Locale(req.Locale)

	rec, err := s.serviceRepo.GetLatestByContact(ctx, c.filter())
	if err != nil {
		log.Error("[IssueCode] err serviceRepo.GetLatestByContact", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if !reusable(rec) {
		rec, err = s.createRecord(ctx, c, locale, now)
		if err != nil {
			return nil, err
		}
	}

	code, err := s.newCode()
	if err != nil {
		log.Error("[IssueCode] err newCode", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	digest := hash.Digest(s.config.OTP.CodeSecret, rec.ID+":"+code)
	expiresAt := now.Add(s.config.OTP.TTL)

	found, err := s.serviceRepo.SetOTP(ctx, rec.ID, digest, c.channel, expiresAt, now)
	if err != nil {
		log.Error("[IssueCode] err serviceRepo.SetOTP", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !found {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	msg, err := s.renderer.Verification(locale, c.channel, code, s.config.OTP.TTL)
	if err == nil {
		err = s.dispatcher.Dispatch(ctx, model.Notification{
			Channel:     c.channel,
			Destination: c.value,
			Subject:     msg.Subject,
			Body:        msg.Body,
		})
	}
	if err != nil {
		log.Error("[IssueCode] err dispatch verification code", zap.String("error", err.Error()))
		// roll back only if no newer code replaced ours in the meantime
		if _, clearErr := s.serviceRepo.ClearOTP(ctx, rec.ID, digest, now); clearErr != nil {
			log.Error("[IssueCode] err serviceRepo.ClearOTP", zap.String("error", clearErr.Error()))
		}
		return nil, errors.SetCustomError(constant.ErrDeliveryFailure)
	}

	s.metrics.OTPIssued.WithLabelValues(string(c.channel)).Inc()

	return &model.IssueOTPResponse{
		ServiceID:   rec.ID,
		Channel:     c.channel,
		Destination: c.value,
		ExpiresAt:   expiresAt,
	}, nil
}

// reusable reports whether a new code may be attached to the latest record
// for a contact. Only a pending request nobody has verified yet qualifies:
// handing out the id of a verified record would let the caller edit it.
func reusable(rec *model.ServiceEntity) bool {
	if rec == nil || rec.Status != constant.ServiceStatusPending {
		return false
	}
	return rec.ServiceCodeHash == nil && !rec.EmailVerified && !rec.PhoneVerified
}

func (s *OTPAppImpl) createRecord(ctx context.Context, c contact, locale string, now time.Time) (*model.ServiceEntity, error) {
	log := logger.FromContext(ctx)

	entity := &model.ServiceEntity{
		ID:        s.newID(),
		Locale:    locale,
		Status:    constant.ServiceStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if c.channel == constant.ChannelPhone {
		entity.PhoneNumber = c.value
		entity.ISD = c.isd
	} else {
		entity.Email = c.value
	}

	entity, err := s.serviceRepo.Create(ctx, entity)
	if err != nil {
		log.Error("[IssueCode] err serviceRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// the sweep also purges unverified records, a lost message is not fatal
	err = s.publisher.PublishServiceExpiration(rabbitmq.ServiceExpirationMessage{
		ServiceID: entity.ID,
		ExpiresAt: now.Add(s.config.Service.UnverifiedGrace),
	})
	if err != nil {
		log.Warn("[IssueCode] err publisher.PublishServiceExpiration", zap.String("error", err.Error()))
	}

	return entity, nil
}

func (s *OTPAppImpl) VerifyCode(ctx context.Context, req *model.VerifyOTPRequest) (*model.VerifyOTPResponse, error) {
	log := logger.FromContext(ctx)

	rec, err := s.lookup(ctx, req)
	if err != nil {
		return nil, err
	}

	if rec == nil || !rec.HasActiveOTP() || *rec.OTPChannel != req.Channel {
		s.metrics.OTPRejected.WithLabelValues("not_found").Inc()
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	now := s.now()
	if !now.Before(*rec.OTPCodeExpiresAt) {
		s.metrics.OTPRejected.WithLabelValues("expired").Inc()
		return nil, errors.SetCustomError(constant.ErrOTPExpired)
	}

	// the counter is bound to the stored code, a fresh code starts over
	if s.config.OTP.MaxAttempts > 0 {
		key := redisrepo.AttemptsKey(rec.ID + ":" + *rec.OTPCodeHash)
		attempts, err := s.redisRepo.Increment(ctx, key, rec.OTPCodeExpiresAt.Sub(now))
		if err != nil {
			log.Error("[VerifyCode] err redisRepo.Increment", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if attempts > int64(s.config.OTP.MaxAttempts) {
			s.metrics.OTPRejected.WithLabelValues("locked").Inc()
			return nil, errors.SetCustomError(constant.ErrTooManyRequests)
		}
	}

	digest := hash.Digest(s.config.OTP.CodeSecret, rec.ID+":"+req.Code)
	if !hash.Equal(digest, *rec.OTPCodeHash) {
		s.metrics.OTPRejected.WithLabelValues("mismatch").Inc()
		return nil, errors.SetCustomError(constant.ErrOTPMismatch)
	}

	consumed, err := s.serviceRepo.ConsumeOTP(ctx, rec.ID, digest, req.Channel, now)
	if err != nil {
		log.Error("[VerifyCode] err serviceRepo.ConsumeOTP", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !consumed {
		// another request consumed or replaced the code first
		s.metrics.OTPRejected.WithLabelValues("consumed").Inc()
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	s.metrics.OTPVerified.WithLabelValues(string(req.Channel)).Inc()

	return &model.VerifyOTPResponse{
		ServiceID: rec.ID,
		Channel:   req.Channel,
		Verified:  true,
	}, nil
}

func (s *OTPAppImpl) lookup(ctx context.Context, req *model.VerifyOTPRequest) (*model.ServiceEntity, error) {
	log := logger.FromContext(ctx)

	if req.ServiceID != "" {
		rec, err := s.serviceRepo.GetByID(ctx, req.ServiceID)
		if err != nil {
			log.Error("[VerifyCode] err serviceRepo.GetByID", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		return rec, nil
	}

	c, err := s.resolveContact(req.Channel, req.Email, req.PhoneNumber, req.ISD)
	if err != nil {
		return nil, err
	}

	rec, err := s.serviceRepo.GetLatestByContact(ctx, c.filter())
	if err != nil {
		log.Error("[VerifyCode] err serviceRepo.GetLatestByContact", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rec, nil
}

// generateCode returns a uniformly random zero-padded decimal code.
func generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", codeDigits, n.Int64()), nil
}
