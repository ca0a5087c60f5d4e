package wordpress

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"HairJourneyCompanion/internal/model"
)

func newTestClient(serverURL string) *HTTPClient {
	return NewHTTPClient(Config{
		AjaxURL: serverURL,
		Nonce:   "test-nonce",
		Timeout: 2 * time.Second,
	})
}

func TestFetchStatsSendsActionAndNonce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, ActionGetStats, r.PostFormValue("action"))
		assert.Equal(t, "test-nonce", r.PostFormValue("security"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Write([]byte(`{"success":true,"data":{"total_points":120,"current_streak":5,"badges_earned":3,"level":2,"checked_in_today":true}}`))
	}))
	defer server.Close()

	stats, err := newTestClient(server.URL).FetchStats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 120, stats.TotalPoints)
	assert.Equal(t, 5, stats.CurrentStreak)
	assert.True(t, stats.CheckedInToday)
}

func TestSubmitCheckInSendsMood(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, ActionDailyCheckIn, r.PostFormValue("action"))
		assert.Equal(t, "good", r.PostFormValue("mood"))

		w.Write([]byte(`{"success":true,"data":{"points_earned":10,"streak":3,"milestone":null,"new_badges":[{"name":"Consistency","description":"3 days in a row","rarity":"common","points_reward":5}]}}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).SubmitCheckIn(context.Background(), model.MoodGood)
	assert.NoError(t, err)
	assert.Equal(t, 10, result.PointsEarned)
	assert.Equal(t, 3, result.Streak)
	assert.Nil(t, result.Milestone)
	assert.Len(t, result.NewBadges, 1)
	assert.Equal(t, model.RarityCommon, result.NewBadges[0].Rarity)
}

func TestFailureEnvelopeBecomesRejectedError(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		message string
	}{
		{"string data", `{"success":false,"data":"Already checked in today"}`, "Already checked in today"},
		{"object data", `{"success":false,"data":{"message":"Invalid nonce"}}`, "Invalid nonce"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).SubmitCheckIn(context.Background(), model.MoodOkay)
			assert.Error(t, err)
			assert.True(t, IsRejected(err))

			rejected := err.(*RejectedError)
			assert.Equal(t, tc.message, rejected.Message)
		})
	}
}

func TestTransportErrorIsNotRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // 立即关掉，制造连接失败

	_, err := newTestClient(server.URL).SubmitCheckIn(context.Background(), model.MoodAmazing)
	assert.Error(t, err)
	assert.False(t, IsRejected(err))
}

func TestNon200StatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchStats(context.Background())
	assert.Error(t, err)
	assert.False(t, IsRejected(err))
}
