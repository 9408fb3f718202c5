package mux

import (
	"net/http"
	"strings"

	"liarspoker-server/pkg/declaration"
	"liarspoker-server/pkg/session"

	gmux "github.com/gorilla/mux"
)

func sessionCode(r *http.Request) string {
	return strings.ToUpper(gmux.Vars(r)["code"])
}

type createSessionPayload struct {
	Code    string `json:"code"`
	HostUID string `json:"hostUid"`
}

func (m *Mux) postSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createSessionPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		s, err := m.service.CreateSession(r.Context(), payload.Code, payload.HostUID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, s.Redacted(s.HostUID))
	}
}

func (m *Mux) getSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := m.service.GetSession(r.Context(), sessionCode(r))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, s.Redacted(r.FormValue("uid")))
	}
}

type intentPayload struct {
	UID      string `json:"uid"`
	Nickname string `json:"nickname"`
}

// intentHandler wraps the common decode/apply/respond shape of the player
// intent endpoints
func (m *Mux) intentHandler(apply func(r *http.Request, code string, payload intentPayload) (*session.Session, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload intentPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		s, err := apply(r, sessionCode(r), payload)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, s.Redacted(payload.UID))
	}
}

func (m *Mux) postSessionJoin() http.HandlerFunc {
	return m.intentHandler(func(r *http.Request, code string, payload intentPayload) (*session.Session, error) {
		return m.service.JoinSession(r.Context(), code, payload.UID, payload.Nickname)
	})
}

func (m *Mux) postSessionLeave() http.HandlerFunc {
	return m.intentHandler(func(r *http.Request, code string, payload intentPayload) (*session.Session, error) {
		return m.service.LeaveSession(r.Context(), code, payload.UID)
	})
}

func (m *Mux) postSessionReady() http.HandlerFunc {
	return m.intentHandler(func(r *http.Request, code string, payload intentPayload) (*session.Session, error) {
		return m.service.ToggleReady(r.Context(), code, payload.UID)
	})
}

func (m *Mux) postSessionCall() http.HandlerFunc {
	return m.intentHandler(func(r *http.Request, code string, payload intentPayload) (*session.Session, error) {
		return m.service.CallBluff(r.Context(), code, payload.UID)
	})
}

func (m *Mux) postSessionAck() http.HandlerFunc {
	return m.intentHandler(func(r *http.Request, code string, payload intentPayload) (*session.Session, error) {
		return m.service.Acknowledge(r.Context(), code, payload.UID)
	})
}

type declarePayload struct {
	UID         string                  `json:"uid"`
	Declaration declaration.Declaration `json:"declaration"`
}

func (m *Mux) postSessionDeclare() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload declarePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		s, err := m.service.Declare(r.Context(), sessionCode(r), payload.UID, payload.Declaration)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, s.Redacted(payload.UID))
	}
}
