package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind failure.Kind
	}{
		{name: "precondition", err: failure.Precondition("room 101 has not been inspected"), code: http.StatusPreconditionFailed, kind: failure.KindPrecondition},
		{name: "state", err: failure.State("task is completed"), code: http.StatusConflict, kind: failure.KindState},
		{name: "not found", err: failure.NotFound("room"), code: http.StatusNotFound, kind: failure.KindNotFound},
		{name: "foreign error", err: assert.AnError, code: http.StatusInternalServerError, kind: failure.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.code, recorder.Code)
			assert.Equal(t, constant.ContentTypeJSON, recorder.Header().Get(constant.RequestHeaderContentType))

			var body struct {
				Error string       `json:"error"`
				Kind  failure.Kind `json:"kind"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.err.Error(), body.Error)
			assert.Equal(t, tt.kind, body.Kind)
		})
	}
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusCreated, map[string]string{"id": "101"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"data":{"id":"101"}}`, recorder.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithRequestLimitExceeded(recorder)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, recorder.Body.String())
}
