package mux

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"liarspoker-server/pkg/room"
	"liarspoker-server/pkg/session"

	"github.com/stretchr/testify/assert"
)

func testMux() *Mux {
	service := session.NewService(session.NewMemoryStore(), nil, false)
	return NewMux("test", service, room.NewHub())
}

func Test_writeError(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, session.ErrSessionNotFound)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	writeError(w, session.ErrNotYourTurn)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errObj errorResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&errObj))
	assert.Equal(t, "it is not your turn", errObj.Message)

	// internal errors must not leak their message
	w = httptest.NewRecorder()
	writeError(w, errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&errObj))
	assert.Equal(t, "Internal Server Error", errObj.Message)
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := ioutil.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	assertDo(t, req, respObj, statusCode)
}
