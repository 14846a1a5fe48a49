package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/home-service/constant"
	"github.com/muhammadheryan/home-service/utils/errors"
	"github.com/muhammadheryan/home-service/utils/logger"
	validatorx "github.com/muhammadheryan/home-service/utils/validator"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Response is the envelope of every API reply.
type Response struct {
	Success bool              `json:"success"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Warning string            `json:"warning,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] err encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeSuccessWithWarning(w, data, "")
}

func writeSuccessWithWarning(w http.ResponseWriter, data interface{}, warning string) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
		Warning: warning,
	})
}

// writeError renders a CustomError; anything else is reported as a generic internal error.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.Error(err))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), Response{
		Success: false,
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}

func writeValidationError(w http.ResponseWriter, err error) {
	ce := errors.SetCustomError(constant.ErrInvalidRequest)
	writeJSON(w, ce.ErrorHTTPCode(), Response{
		Success: false,
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
		Errors:  validatorx.FieldErrors(err),
	})
}

// decodeAndValidate reads a JSON body into dst and runs struct validation,
// writing the error response itself when either step fails.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return false
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		writeValidationError(w, err)
		return false
	}
	return true
}
