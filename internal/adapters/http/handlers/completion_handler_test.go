package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/progress"
	"github.com/jsamuelsen11/discovery-dashboard/internal/ports"
	"github.com/jsamuelsen11/discovery-dashboard/mocks"
)

func newCompletionHandler(t *testing.T) (*handlers.CompletionHandler, *mocks.MockCompletionService) {
	t.Helper()
	svc := mocks.NewMockCompletionService(t)
	return handlers.NewCompletionHandler(svc), svc
}

func TestEvaluate_Success(t *testing.T) {
	t.Parallel()
	h, svc := newCompletionHandler(t)

	payload := `{"questions":{"total":10,"by_status":{"answered":10}}}`
	svc.EXPECT().Evaluate(mock.Anything, []byte(payload)).Return(&ports.Evaluation{
		Completion: completion.DefaultPolicy().Score(progress.Breakdown{Total: 10, Answered: 10}),
		Policy:     completion.DefaultPolicy(),
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/completion", strings.NewReader(payload))
	h.Evaluate(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EvaluationResponse](t, rec)
	if resp.Completion.Status != "completed" || resp.Completion.Percentage != 100 {
		t.Errorf("Completion = %+v", resp.Completion)
	}
	if !resp.Validation.Valid {
		t.Error("Validation.Valid = false, want true")
	}
}

func TestEvaluate_MalformedPayloadIsNotAnError(t *testing.T) {
	t.Parallel()
	h, svc := newCompletionHandler(t)

	svc.EXPECT().Evaluate(mock.Anything, []byte(`{nope`)).Return(&ports.Evaluation{
		Completion: completion.DefaultResult(),
		Policy:     completion.DefaultPolicy(),
		Validation: progress.Validation{Errors: []string{"invalid JSON: invalid character 'n'"}},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/completion", strings.NewReader(`{nope`))
	h.Evaluate(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EvaluationResponse](t, rec)
	if resp.Validation.Valid || len(resp.Validation.Errors) != 1 {
		t.Errorf("Validation = %+v", resp.Validation)
	}
	if resp.Completion.Status != "unknown" {
		t.Errorf("Completion.Status = %q, want unknown", resp.Completion.Status)
	}
}

func TestEvaluate_BodyTooLarge(t *testing.T) {
	t.Parallel()
	h, _ := newCompletionHandler(t)

	big := bytes.Repeat([]byte("x"), (1<<20)+1)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/completion", bytes.NewReader(big))
	h.Evaluate(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestEvaluate_InvalidPolicy(t *testing.T) {
	t.Parallel()
	h, svc := newCompletionHandler(t)

	svc.EXPECT().Evaluate(mock.Anything, []byte(`{}`), mock.Anything).
		Return(nil, &domain.ValidationError{Fields: map[string]string{"answered_weight": "must be between 0 and 1, got 3"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/completion?answered_weight=3", strings.NewReader(`{}`))
	h.Evaluate(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestPolicy_Success(t *testing.T) {
	t.Parallel()
	h, svc := newCompletionHandler(t)

	svc.EXPECT().Policy(mock.Anything).Return(completion.DefaultPolicy(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/completion/policy", nil)
	h.Policy(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.PolicyResponse](t, rec)
	if resp.CompletedThreshold != 95 || resp.PartialWeight != 0.6 {
		t.Errorf("got %+v", resp)
	}
}
