package nexthire

import (
	"encoding/json"
	"net/http"

	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
)

type Error struct {
	Message string `json:"message"`
	Retry   bool   `json:"retry,omitempty"`
}

func WriteHTTPError(rw http.ResponseWriter, code int, err error) {
	rw.WriteHeader(code)
	astilog.Error(err)
	if err := json.NewEncoder(rw).Encode(Error{
		Message: errors.Cause(err).Error(),
		Retry:   IsTurnError(err),
	}); err != nil {
		astilog.Error(errors.Wrap(err, "nexthire: marshaling failed"))
	}
}

func WriteHTTPData(rw http.ResponseWriter, data interface{}) {
	if err := json.NewEncoder(rw).Encode(data); err != nil {
		WriteHTTPError(rw, http.StatusInternalServerError, errors.Wrap(err, "nexthire: json encoding failed"))
		return
	}
}
