// Package contract is the single source of truth for the HTTP surface:
// method, path and the request/response shapes of every endpoint, shared by
// the server (route mounting) and any Go client. Paths use :param
// placeholders; BuildURL substitutes them with literal values.
package contract

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/courtwatchhq/courtwatch-api/internal/api/handler/v1/request"
	"github.com/courtwatchhq/courtwatch-api/internal/domain"
)

// Endpoint describes one route. Input and Responses hold zero-value prototypes
// of the wire types; Responses maps each HTTP status to the body shape it
// carries.
type Endpoint struct {
	Method    string
	Path      string
	Input     interface{}
	Responses map[int]interface{}
}

// ErrorBody is the error shape every non-2xx response carries. Fields is only
// populated for validation failures.
type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

var (
	JudgesList = Endpoint{
		Method: http.MethodGet,
		Path:   "/api/judges",
		Responses: map[int]interface{}{
			http.StatusOK: []domain.Judge{},
		},
	}

	JudgesGet = Endpoint{
		Method: http.MethodGet,
		Path:   "/api/judges/:id",
		Responses: map[int]interface{}{
			http.StatusOK:       domain.Judge{},
			http.StatusNotFound: ErrorBody{},
		},
	}

	JudgesCreate = Endpoint{
		Method: http.MethodPost,
		Path:   "/api/judges",
		Input:  request.CreateJudgeRequest{},
		Responses: map[int]interface{}{
			http.StatusCreated:    domain.Judge{},
			http.StatusBadRequest: ErrorBody{},
		},
	}

	CasesList = Endpoint{
		Method: http.MethodGet,
		Path:   "/api/cases",
		Responses: map[int]interface{}{
			http.StatusOK: []domain.CaseWithJudge{},
		},
	}

	CasesGet = Endpoint{
		Method: http.MethodGet,
		Path:   "/api/cases/:id",
		Responses: map[int]interface{}{
			http.StatusOK:       domain.CaseWithJudge{},
			http.StatusNotFound: ErrorBody{},
		},
	}

	CasesCreate = Endpoint{
		Method: http.MethodPost,
		Path:   "/api/cases",
		Input:  request.CreateCaseRequest{},
		Responses: map[int]interface{}{
			http.StatusCreated:    domain.Case{},
			http.StatusBadRequest: ErrorBody{},
		},
	}

	CasesAnalyze = Endpoint{
		Method: http.MethodPost,
		Path:   "/api/cases/:id/analyze",
		Responses: map[int]interface{}{
			http.StatusOK:       domain.CaseWithJudge{},
			http.StatusNotFound: ErrorBody{},
		},
	}

	AttendanceMark = Endpoint{
		Method: http.MethodPost,
		Path:   "/api/attendance",
		Input:  request.MarkAttendanceRequest{},
		Responses: map[int]interface{}{
			http.StatusCreated:      domain.Attendance{},
			http.StatusBadRequest:   ErrorBody{},
			http.StatusUnauthorized: ErrorBody{},
			http.StatusForbidden:    ErrorBody{},
		},
	}

	AttendanceMine = Endpoint{
		Method: http.MethodGet,
		Path:   "/api/attendance/me",
		Responses: map[int]interface{}{
			http.StatusOK:           []domain.AttendanceWithCase{},
			http.StatusUnauthorized: ErrorBody{},
		},
	}

	Leaderboard = Endpoint{
		Method: http.MethodGet,
		Path:   "/api/leaderboard",
		Responses: map[int]interface{}{
			http.StatusOK: []domain.LeaderboardEntry{},
		},
	}
)

// Param is a single :name -> value substitution for BuildURL.
type Param struct {
	Name  string
	Value interface{}
}

// BuildURL replaces :param placeholders in path with the given values.
// Placeholders without a matching param are left untouched.
func BuildURL(path string, params ...Param) string {
	url := path
	for _, p := range params {
		placeholder := ":" + p.Name

		var value string
		switch v := p.Value.(type) {
		case string:
			value = v
		case int:
			value = strconv.Itoa(v)
		case uint:
			value = strconv.FormatUint(uint64(v), 10)
		case int64:
			value = strconv.FormatInt(v, 10)
		case uint64:
			value = strconv.FormatUint(v, 10)
		default:
			continue
		}

		url = strings.Replace(url, placeholder, value, 1)
	}

	return url
}
