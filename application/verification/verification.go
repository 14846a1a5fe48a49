// Package verification decides whether a service request has proven ownership
// of enough contact channels to continue.
package verification

import (
	"fmt"

	"github.com/muhammadheryan/home-service/constant"
	"github.com/muhammadheryan/home-service/model"
)

// ParsePolicy reads a configured policy, an empty value means any.
func ParsePolicy(raw string) (constant.VerificationPolicy, error) {
	switch p := constant.VerificationPolicy(raw); p {
	case "":
		return constant.VerificationAny, nil
	case constant.VerificationAny, constant.VerificationEmail, constant.VerificationPhone, constant.VerificationAll:
		return p, nil
	default:
		return "", fmt.Errorf("unknown verification policy %q", raw)
	}
}

// CanProceed evaluates the verification gate against the record as it is now.
func CanProceed(policy constant.VerificationPolicy, rec *model.ServiceEntity) bool {
	if rec == nil {
		return false
	}

	switch policy {
	case constant.VerificationEmail:
		return rec.EmailVerified
	case constant.VerificationPhone:
		return rec.PhoneVerified
	case constant.VerificationAll:
		return rec.EmailVerified && rec.PhoneVerified
	default:
		return rec.EmailVerified || rec.PhoneVerified
	}
}
