package server

import (
	"encoding/json"
	"net/http"

	nexthire "github.com/nexthire/go-nexthire"
	"github.com/nexthire/go-nexthire/gen"
	"github.com/nexthire/go-nexthire/score"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

type ScoreResumeBody struct {
	Resume       string `json:"resume"`
	TargetDomain string `json:"target_domain"`
}

func (s *Server) scoreResume(rw http.ResponseWriter, r *http.Request, p httprouter.Params) {
	// Parse body
	var b ScoreResumeBody
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		nexthire.WriteHTTPError(rw, http.StatusBadRequest, errors.Wrap(err, "server: parsing score resume body failed"))
		return
	}

	// Validate
	if b.Resume == "" || b.TargetDomain == "" {
		nexthire.WriteHTTPError(rw, http.StatusBadRequest, errors.New("server: resume and target_domain are mandatory"))
		return
	}

	// Evaluate
	ev, err := score.EvaluateResume(r.Context(), s.g, b.Resume, b.TargetDomain)
	if err != nil {
		if errors.Cause(err) == gen.ErrMalformedModelOutput {
			nexthire.WriteHTTPError(rw, http.StatusBadGateway, errors.Wrap(err, "server: evaluating resume failed"))
			return
		}
		writeError(rw, errors.Wrap(err, "server: evaluating resume failed"))
		return
	}

	// Write
	nexthire.WriteHTTPData(rw, ev)
}

type ScoreTotalBody struct {
	CodingMarks  float64 `json:"coding_marks"`
	MCQMarks     float64 `json:"mcq_marks"`
	Resume       string  `json:"resume"`
	TargetDomain string  `json:"target_domain"`
}

func (s *Server) scoreTotal(rw http.ResponseWriter, r *http.Request, p httprouter.Params) {
	// Parse body
	var b ScoreTotalBody
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		nexthire.WriteHTTPError(rw, http.StatusBadRequest, errors.Wrap(err, "server: parsing score total body failed"))
		return
	}

	// Validate
	if b.Resume == "" || b.TargetDomain == "" {
		nexthire.WriteHTTPError(rw, http.StatusBadRequest, errors.New("server: resume and target_domain are mandatory"))
		return
	}

	// Evaluate
	ev, err := score.EvaluateResume(r.Context(), s.g, b.Resume, b.TargetDomain)
	if err != nil {
		if errors.Cause(err) == gen.ErrMalformedModelOutput {
			nexthire.WriteHTTPError(rw, http.StatusBadGateway, errors.Wrap(err, "server: evaluating resume failed"))
			return
		}
		writeError(rw, errors.Wrap(err, "server: evaluating resume failed"))
		return
	}

	// Write
	nexthire.WriteHTTPData(rw, score.Total(ev, b.MCQMarks, b.CodingMarks))
}

type MCQsBody struct {
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
	TargetDomain string `json:"target_domain"`
}

type MCQsResponse struct {
	MCQs []score.MCQ `json:"mcqs"`
}

func (s *Server) mcqs(rw http.ResponseWriter, r *http.Request, p httprouter.Params) {
	// Parse body
	var b MCQsBody
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		nexthire.WriteHTTPError(rw, http.StatusBadRequest, errors.Wrap(err, "server: parsing mcqs body failed"))
		return
	}

	// Validate
	if b.TargetDomain == "" {
		nexthire.WriteHTTPError(rw, http.StatusBadRequest, errors.New("server: target_domain is mandatory"))
		return
	}

	// Generate
	ms, err := score.GenerateMCQs(r.Context(), s.g, b.TargetDomain, b.NumQuestions, b.Difficulty)
	if err != nil {
		if errors.Cause(err) == gen.ErrMalformedModelOutput {
			nexthire.WriteHTTPError(rw, http.StatusBadGateway, errors.Wrap(err, "server: generating mcqs failed"))
			return
		}
		writeError(rw, errors.Wrap(err, "server: generating mcqs failed"))
		return
	}

	// Write
	nexthire.WriteHTTPData(rw, MCQsResponse{MCQs: ms})
}
