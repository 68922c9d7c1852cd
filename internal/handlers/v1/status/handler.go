package status

import (
	"errors"
	"net/http"

	"github.com/carson-networks/budget-coach/internal/logging"
)

// writeQueue is satisfied by *operator.OperatorDelegator.
type writeQueue interface {
	Stopped() bool
}

type Handler struct {
	Operator writeQueue
}

func NewHandler(op writeQueue) Handler {
	return Handler{Operator: op}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.Operator != nil && h.Operator.Stopped() {
		logData.AddData("operator", "stopped")
		w.WriteHeader(http.StatusServiceUnavailable)
		return errors.New("status: operator stopped")
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
