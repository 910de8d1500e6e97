package reply

import (
	"context"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"numclass/pkg/contextx"
	"numclass/pkg/failurex"
	"numclass/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	messageInternalServerError = "Internal server error"
)

// errorResponse is the only error shape clients ever see. Number is set for
// unparsable input and echoes it back verbatim.
type errorResponse struct {
	Number  *string `json:"number,omitempty"`
	Error   bool    `json:"error"`
	Message string  `json:"message,omitempty"`
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	response := errorResponse{Error: true}

	switch {
	case failure.IsInvalidArgumentError(err):
		logger(ctx).Warn("invalid argument", logx.Error(err))

		if input, ok := failurex.Input(err); ok {
			response.Number = &input
		} else {
			response.Message = failure.Description(err)
		}

		JSON(ctx, w, http.StatusBadRequest, response)
	default:
		logger(ctx).Error("error", logx.Error(err))

		InternalServerError(ctx, w)
	}
}

// InternalServerError writes the generic 500 body; nothing about the cause is
// exposed.
func InternalServerError(ctx context.Context, w http.ResponseWriter) {
	JSON(ctx, w, http.StatusInternalServerError, errorResponse{
		Error:   true,
		Message: messageInternalServerError,
	})
}
