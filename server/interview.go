package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	nexthire "github.com/nexthire/go-nexthire"
	"github.com/nexthire/go-nexthire/interview"

	"github.com/asticode/go-astilog"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// Statuses reported to the front end
const (
	inactiveStatus = "inactive"
	successStatus  = "success"
)

// sessionID resolves the session the request targets, defaulting to the
// single pinned session for callers that don't manage several interviews.
func sessionID(r *http.Request) string {
	if id := r.URL.Query().Get("session"); id != "" {
		return id
	}
	return interview.DefaultSessionID
}

// writeError maps the error taxonomy to status codes: usage errors are the
// caller's bug, resource errors mean the audio device is unavailable, turn
// errors are recoverable and should be retried.
func writeError(rw http.ResponseWriter, err error) {
	switch {
	case nexthire.IsUsageError(err):
		nexthire.WriteHTTPError(rw, http.StatusBadRequest, err)
	case nexthire.IsResourceError(err):
		nexthire.WriteHTTPError(rw, http.StatusServiceUnavailable, err)
	case nexthire.IsTurnError(err):
		nexthire.WriteHTTPError(rw, http.StatusBadGateway, err)
	default:
		nexthire.WriteHTTPError(rw, http.StatusInternalServerError, err)
	}
}

func encodeAudio(b []byte) *string {
	if len(b) == 0 {
		return nil
	}
	e := base64.StdEncoding.EncodeToString(b)
	return &e
}

type StartBody struct {
	Resume  string `json:"resume"`
	Session string `json:"session,omitempty"`
}

type StartResponse struct {
	Audio          *string `json:"audio"`
	Question       string  `json:"question"`
	QuestionNumber int     `json:"question_number"`
	SessionID      string  `json:"session_id"`
	Status         string  `json:"status"`
}

func (s *Server) start(rw http.ResponseWriter, r *http.Request, p httprouter.Params) {
	// Parse body
	var b StartBody
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		nexthire.WriteHTTPError(rw, http.StatusBadRequest, errors.Wrap(err, "server: parsing start body failed"))
		return
	}

	// Get session id
	id := b.Session
	if id == "" {
		id = sessionID(r)
	}

	// Start
	res, err := s.c.Start(r.Context(), id, b.Resume)
	if err != nil {
		writeError(rw, errors.Wrap(err, "server: starting interview failed"))
		return
	}

	// Write
	nexthire.WriteHTTPData(rw, StartResponse{
		Audio:          encodeAudio(res.Audio),
		Question:       res.Question,
		QuestionNumber: res.QuestionNumber,
		SessionID:      id,
		Status:         successStatus,
	})
}

type ListenResponse struct {
	AIResponse      string  `json:"ai_response"`
	Audio           *string `json:"audio"`
	CandidateAnswer string  `json:"candidate_answer"`
	InterviewEnd    bool    `json:"interview_end"`
	QuestionNumber  int     `json:"question_number"`
}

type ListenError struct {
	CandidateAnswer string `json:"candidate_answer,omitempty"`
	Message         string `json:"message"`
	QuestionNumber  int    `json:"question_number,omitempty"`
	Retry           bool   `json:"retry"`
}

func (s *Server) listen(rw http.ResponseWriter, r *http.Request, p httprouter.Params) {
	// Listen
	res, err := s.c.Listen(r.Context(), sessionID(r))
	if err != nil {
		// The transcribed answer must not be dropped on a turn-level
		// failure, it's reported alongside the error.
		if nexthire.IsTurnError(err) {
			astilog.Error(errors.Wrap(err, "server: listening failed"))
			rw.WriteHeader(http.StatusBadGateway)
			if err := json.NewEncoder(rw).Encode(ListenError{
				CandidateAnswer: res.CandidateAnswer,
				Message:         errors.Cause(err).Error(),
				QuestionNumber:  res.QuestionNumber,
				Retry:           true,
			}); err != nil {
				astilog.Error(errors.Wrap(err, "server: marshaling failed"))
			}
			return
		}
		writeError(rw, errors.Wrap(err, "server: listening failed"))
		return
	}

	// Write
	nexthire.WriteHTTPData(rw, ListenResponse{
		AIResponse:      res.AIResponse,
		Audio:           encodeAudio(res.Audio),
		CandidateAnswer: res.CandidateAnswer,
		InterviewEnd:    res.InterviewEnd,
		QuestionNumber:  res.QuestionNumber,
	})
}

type StatusResponse struct {
	CurrentQuestionNumber int    `json:"current_question_number"`
	IsActive              bool   `json:"is_active"`
	SessionStatus         string `json:"session_status"`
}

func (s *Server) status(rw http.ResponseWriter, r *http.Request, p httprouter.Params) {
	st := s.c.Status(sessionID(r))
	nexthire.WriteHTTPData(rw, StatusResponse{
		CurrentQuestionNumber: st.CurrentQuestionNumber,
		IsActive:              st.IsActive,
		SessionStatus:         st.SessionStatus,
	})
}

type EndResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (s *Server) end(rw http.ResponseWriter, r *http.Request, p httprouter.Params) {
	// End forces the session to conclude: a session that was never started
	// is already as ended as it gets.
	if err := s.c.End(sessionID(r)); err != nil && !nexthire.IsUsageError(err) {
		writeError(rw, errors.Wrap(err, "server: ending interview failed"))
		return
	}
	nexthire.WriteHTTPData(rw, EndResponse{
		Message: "Interview ended successfully",
		Status:  inactiveStatus,
	})
}

type StopResponse struct {
	Stopped bool `json:"stopped"`
}

func (s *Server) stopCapture(rw http.ResponseWriter, r *http.Request, p httprouter.Params) {
	nexthire.WriteHTTPData(rw, StopResponse{Stopped: s.c.StopCapture()})
}
