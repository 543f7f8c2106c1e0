package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/tapp-eng/campaign-core/apperror"
	"github.com/tapp-eng/campaign-core/model"
	"github.com/tapp-eng/campaign-core/repository"
	"github.com/tapp-eng/campaign-core/service/analytics"
	"github.com/tapp-eng/campaign-core/service/campaignmgmt"
	"github.com/tapp-eng/campaign-core/service/lifecycle"
	"github.com/tapp-eng/campaign-core/service/roster"
	"github.com/tapp-eng/campaign-core/service/submission"
)

type providerStub struct{}

func (providerStub) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (providerStub) Readonly(ctx context.Context) context.Context { return ctx }

type apiTest struct {
	campaigns   *campaignmgmt.IServiceMock
	lifecycles  *lifecycle.IServiceMock
	rosters     *roster.IServiceMock
	submissions *submission.IServiceMock
	analytic    *analytics.IServiceMock
	activities  *repository.ActivityMock

	router http.Handler
}

func newAPITest() *apiTest {
	at := &apiTest{
		campaigns:   &campaignmgmt.IServiceMock{},
		lifecycles:  &lifecycle.IServiceMock{},
		rosters:     &roster.IServiceMock{},
		submissions: &submission.IServiceMock{},
		analytic:    &analytics.IServiceMock{},
		activities:  &repository.ActivityMock{},
	}
	server := NewServer(at.campaigns, at.lifecycles, at.rosters,
		at.submissions, at.analytic, providerStub{}, at.activities, zap.NewNop())
	at.router = server.Router()
	return at
}

func (at *apiTest) do(method, target string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	at.router.ServeHTTP(recorder, req)
	return recorder
}

func asUser(userID string) map[string]string {
	return map[string]string{"X-User-ID": userID}
}

func asManager(userID string) map[string]string {
	return map[string]string{"X-User-ID": userID, "X-User-Role": "manager"}
}

func TestAPI_Healthz(t *testing.T) {
	at := newAPITest()

	resp := at.do(http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"ok"`)
}

func TestAPI_Submit(t *testing.T) {
	at := newAPITest()
	at.submissions.SubmitFunc = func(
		ctx context.Context, campaignID, actorID int64, lines []submission.LineItem,
	) (int, error) {
		assert.Equal(t, int64(21), campaignID)
		assert.Equal(t, int64(9), actorID)
		assert.Equal(t, 1, len(lines))
		assert.Equal(t, int64(71), lines[0].ProductID)
		return 1, nil
	}

	resp := at.do(http.MethodPost, "/api/v1/campaigns/21/responses", map[string]interface{}{
		"lines": []map[string]interface{}{
			{"product_id": 71, "quantity": 2},
		},
	}, asUser("9"))

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"version":1`)
}

func TestAPI_Submit_Selection_Invalid(t *testing.T) {
	at := newAPITest()
	at.submissions.SubmitFunc = func(
		ctx context.Context, campaignID, actorID int64, lines []submission.LineItem,
	) (int, error) {
		return 0, apperror.SelectionInvalid(apperror.ReasonTooManyItems, "limit exceeded")
	}

	resp := at.do(http.MethodPost, "/api/v1/campaigns/21/responses",
		map[string]interface{}{"lines": []map[string]interface{}{{"product_id": 71}}},
		asUser("9"))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), `"reason":"too_many_items"`)
}

func TestAPI_Submit_Busy(t *testing.T) {
	at := newAPITest()
	at.submissions.SubmitFunc = func(
		ctx context.Context, campaignID, actorID int64, lines []submission.LineItem,
	) (int, error) {
		return 0, apperror.New(apperror.KindBusy, "participant row is locked")
	}

	resp := at.do(http.MethodPost, "/api/v1/campaigns/21/responses",
		map[string]interface{}{"lines": []map[string]interface{}{{"product_id": 71}}},
		asUser("9"))

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	assert.Equal(t, "1", resp.Header().Get("Retry-After"))
}

func TestAPI_Submit_Not_A_Participant(t *testing.T) {
	at := newAPITest()
	at.submissions.SubmitFunc = func(
		ctx context.Context, campaignID, actorID int64, lines []submission.LineItem,
	) (int, error) {
		return 0, apperror.New(apperror.KindNotAParticipant, "not invited")
	}

	resp := at.do(http.MethodPost, "/api/v1/campaigns/21/responses",
		map[string]interface{}{"lines": []map[string]interface{}{{"product_id": 71}}},
		asUser("9"))

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestAPI_SubmitOnBehalf_Requires_Manager(t *testing.T) {
	at := newAPITest()

	resp := at.do(http.MethodPost, "/api/v1/campaigns/21/responses/9",
		map[string]interface{}{"lines": []map[string]interface{}{{"product_id": 71}}},
		asUser("9"))

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Equal(t, 0, len(at.submissions.SubmitOnBehalfCalls()))
}

func TestAPI_DeleteResponse_Manager(t *testing.T) {
	at := newAPITest()
	at.submissions.DeleteResponseFunc = func(
		ctx context.Context, campaignID, targetUserID, actorID int64, authorized bool,
	) error {
		assert.Equal(t, true, authorized)
		assert.Equal(t, int64(500), actorID)
		return nil
	}

	resp := at.do(http.MethodDelete, "/api/v1/campaigns/21/responses/9", nil, asManager("500"))
	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestAPI_DeleteResponse_Non_Manager(t *testing.T) {
	at := newAPITest()
	at.submissions.DeleteResponseFunc = func(
		ctx context.Context, campaignID, targetUserID, actorID int64, authorized bool,
	) error {
		assert.Equal(t, false, authorized)
		return submission.ErrNotAuthorized
	}

	resp := at.do(http.MethodDelete, "/api/v1/campaigns/21/responses/9", nil, asUser("9"))
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestAPI_Campaign_Not_Found(t *testing.T) {
	at := newAPITest()
	at.campaigns.GetFunc = func(ctx context.Context, campaignID int64) (model.Campaign, error) {
		return model.Campaign{}, apperror.Newf(apperror.KindNotFound, "campaign %d not found", campaignID)
	}

	resp := at.do(http.MethodGet, "/api/v1/campaigns/21", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestAPI_Create_Campaign(t *testing.T) {
	at := newAPITest()
	at.campaigns.CreateFunc = func(ctx context.Context, input campaignmgmt.Input) (model.Campaign, error) {
		assert.Equal(t, "Spring Kit", input.Name)
		assert.Equal(t, int64(500), input.CreatorID)
		return model.Campaign{ID: 41, Name: input.Name, Slug: "spring-kit"}, nil
	}

	resp := at.do(http.MethodPost, "/api/v1/campaigns", map[string]interface{}{
		"name":       "Spring Kit",
		"start_date": time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		"end_date":   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}, asManager("500"))

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"slug":"spring-kit"`)
}

func TestAPI_Invalid_Transition(t *testing.T) {
	at := newAPITest()
	at.lifecycles.ScheduleFunc = func(ctx context.Context, campaignID int64) error {
		return lifecycle.ErrInvalidTransition
	}

	resp := at.do(http.MethodPost, "/api/v1/campaigns/21/schedule", nil, asManager("500"))
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestAPI_IsOpen(t *testing.T) {
	at := newAPITest()
	at.lifecycles.IsOpenFunc = func(ctx context.Context, campaignID int64) (bool, error) {
		return true, nil
	}

	resp := at.do(http.MethodGet, "/api/v1/campaigns/21/is-open", nil, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"is_open":true`)
}

func TestAPI_Invite_Requires_Manager(t *testing.T) {
	at := newAPITest()

	resp := at.do(http.MethodPost, "/api/v1/campaigns/21/participants",
		map[string]interface{}{"invites": []map[string]interface{}{{"user_id": 9, "email": "a@example.com"}}},
		asUser("9"))

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Equal(t, 0, len(at.rosters.InviteManyCalls()))
}

func TestAPI_Invite(t *testing.T) {
	at := newAPITest()
	at.rosters.InviteManyFunc = func(ctx context.Context, campaignID int64, invites []roster.Invite) (int, error) {
		assert.Equal(t, 2, len(invites))
		return 1, nil
	}

	resp := at.do(http.MethodPost, "/api/v1/campaigns/21/participants",
		map[string]interface{}{"invites": []map[string]interface{}{
			{"user_id": 9, "email": "a@example.com"},
			{"user_id": 10, "email": "b@example.com"},
		}},
		asManager("500"))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"added":1`)
}

func TestAPI_Stats(t *testing.T) {
	at := newAPITest()
	at.analytic.StatsFunc = func(ctx context.Context, campaignID int64) (analytics.CampaignStats, error) {
		return analytics.CampaignStats{
			CampaignID:     21,
			Status:         model.CampaignStatusActive,
			IsOpen:         true,
			TotalInvited:   3,
			TotalSubmitted: 2,
			PendingCount:   1,
			TotalItems:     7,
		}, nil
	}

	resp := at.do(http.MethodGet, "/api/v1/campaigns/21/stats", nil, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total_invited":3`)
	assert.Contains(t, resp.Body.String(), `"is_open":true`)
}

func TestAPI_List_Responses(t *testing.T) {
	at := newAPITest()
	at.analytic.ListResponsesFunc = func(
		ctx context.Context, campaignID int64, latestOnly bool,
	) ([]model.Response, error) {
		assert.Equal(t, true, latestOnly)
		return []model.Response{
			{UserID: 9, ProductID: 71, Quantity: 2, Version: 2, IsLatest: true},
		}, nil
	}

	resp := at.do(http.MethodGet, "/api/v1/campaigns/21/responses", nil, asManager("500"))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"user_id":9`)
	assert.Contains(t, resp.Body.String(), `"product_id":71`)
}

func TestAPI_Malformed_Body(t *testing.T) {
	at := newAPITest()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/21/responses",
		bytes.NewReader([]byte("{not json")))
	req.Header.Set("X-User-ID", "9")
	recorder := httptest.NewRecorder()
	at.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
