package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/utils/errors"
	"github.com/muhammadheryan/food-storefront/utils/logger"
	validatorx "github.com/muhammadheryan/food-storefront/utils/validator"
	"go.uber.org/zap"
)

type successResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type errorResponse struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Category  string            `json:"category,omitempty"`
	Retryable bool              `json:"retryable"`
	Fields    map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, successResponse{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, successResponse{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

// writeError renders any error; anything that is not a CustomError becomes ErrInternal.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !errors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), errorResponse{
		Code:      ce.ErrorCode(),
		Message:   ce.Error(),
		Category:  string(ce.Category()),
		Retryable: ce.Retryable(),
		Fields:    ce.Fields(),
	})
}

// decodeAndValidate reads a JSON body into dst and runs struct validation.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest).WithFields(map[string]string{"body": "malformed JSON"})
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest).WithFields(validatorx.FieldErrors(err))
	}
	return nil
}
