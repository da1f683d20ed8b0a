//go:build unit

package httperr

import (
	"net/http"
	"testing"

	"mrbs/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "authentication", err: errs.NewKind(errs.ErrAuthentication, "invalid session"), wantStatus: http.StatusUnauthorized, wantMsg: "Authentication required"},
		{name: "validation reason", err: errs.Validation("title must not be empty"), wantStatus: http.StatusBadRequest, wantMsg: "title must not be empty"},
		{name: "wrapped validation", err: errs.Wrap(errs.Validation("bad"), "create"), wantStatus: http.StatusBadRequest, wantMsg: "bad"},
		{name: "conflict", err: errs.NewKind(errs.ErrConflict, "room is already booked"), wantStatus: http.StatusConflict, wantMsg: "room is already booked"},
		{name: "not found", err: errs.NewKind(errs.ErrNotFound, "room not found"), wantStatus: http.StatusNotFound, wantMsg: "room not found"},
		{name: "storage", err: errs.Storage(errs.New("dial tcp 10.0.0.1:5432"), "failed"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
		{name: "unclassified", err: errs.New("boom"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := Classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
