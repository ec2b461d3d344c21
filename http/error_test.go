package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/innermond/greet"
	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	for code, status := range codes {
		assert.Equal(t, status, errorStatusFromCode(code))
		assert.Equal(t, code, codeFromErrorStatus(status))
	}

	assert.Equal(t, http.StatusInternalServerError, errorStatusFromCode("unknown"))
	assert.Equal(t, greet.EINTERNAL, codeFromErrorStatus(http.StatusTeapot))
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/", nil)

	Error(w, r, greet.Errorf(greet.ENOTIMPLEMENTED, "Unsupported method (%q)", r.Method))

	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
	assert.Equal(t, `Unsupported method ("DELETE")`, w.Body.String())
}
