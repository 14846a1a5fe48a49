package inquiry

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	stderrors "errors"
	"io"
	"strings"
	"time"

	"github.com/muhammadheryan/home-service/cmd/config"
	"github.com/muhammadheryan/home-service/constant"
	"github.com/muhammadheryan/home-service/model"
	servicerepo "github.com/muhammadheryan/home-service/repository/service"
	"github.com/muhammadheryan/home-service/utils/errors"
	"github.com/muhammadheryan/home-service/utils/hash"
	"github.com/muhammadheryan/home-service/utils/logger"
	"go.uber.org/zap"
)

const (
	codeBytes    = 4
	mintAttempts = 3
	digestPrefix = "inquiry:"
)

type InquiryApp interface {
	// Mint attaches a fresh code to the record. minted is false when the
	// record already carries one or no longer exists.
	Mint(ctx context.Context, serviceID string) (code string, minted bool, err error)
	Resolve(ctx context.Context, code string) (*model.ServiceEntity, error)
	Revoke(ctx context.Context, serviceID, code string) error
}

type InquiryAppImpl struct {
	config      *config.Config
	serviceRepo servicerepo.ServiceRepository

	random io.Reader
	now    func() time.Time
}

func NewInquiryApp(config *config.Config, serviceRepo servicerepo.ServiceRepository) InquiryApp {
	return &InquiryAppImpl{
		config:      config,
		serviceRepo: serviceRepo,
		random:      rand.Reader,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *InquiryAppImpl) digest(code string) string {
	return hash.Digest(s.config.OTP.CodeSecret, digestPrefix+code)
}

func (s *InquiryAppImpl) Mint(ctx context.Context, serviceID string) (string, bool, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= mintAttempts; attempt++ {
		buf := make([]byte, codeBytes)
		if _, err := io.ReadFull(s.random, buf); err != nil {
			log.Error("[Mint] err read random", zap.String("error", err.Error()))
			return "", false, errors.SetCustomError(constant.ErrInternal)
		}
		code := hex.EncodeToString(buf)

		minted, err := s.serviceRepo.SetInquiryCode(ctx, serviceID, s.digest(code), s.now())
		if stderrors.Is(err, servicerepo.ErrDuplicate) {
			log.Warn("[Mint] inquiry code collision", zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			log.Error("[Mint] err serviceRepo.SetInquiryCode", zap.String("error", err.Error()))
			return "", false, errors.SetCustomError(constant.ErrInternal)
		}
		if !minted {
			return "", false, nil
		}
		return code, true, nil
	}

	return "", false, errors.SetCustomError(constant.ErrConflict)
}

func (s *InquiryAppImpl) Resolve(ctx context.Context, code string) (*model.ServiceEntity, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if !wellFormed(code) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	entity, err := s.serviceRepo.GetByInquiryCodeHash(ctx, s.digest(code))
	if err != nil {
		logger.FromContext(ctx).Error("[Resolve] err serviceRepo.GetByInquiryCodeHash", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *InquiryAppImpl) Revoke(ctx context.Context, serviceID, code string) error {
	if _, err := s.serviceRepo.ClearInquiryCode(ctx, serviceID, s.digest(code), s.now()); err != nil {
		logger.FromContext(ctx).Error("[Revoke] err serviceRepo.ClearInquiryCode", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// wellFormed accepts exactly 8 lowercase hex characters.
func wellFormed(code string) bool {
	if len(code) != codeBytes*2 {
		return false
	}
	for _, r := range code {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
