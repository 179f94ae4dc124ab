package tourapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/tour-microservice/internal/pkg/errors"
)

// fakeSleeper записывает задержки вместо реального ожидания
type fakeSleeper struct {
	delays []time.Duration
}

func (s *fakeSleeper) Sleep(_ context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return nil
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "request timed out" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func newTestCaller(maxRetries int, retry5xx bool, recorder *CallRecorder) (*caller, *fakeSleeper) {
	c := newCaller(100*time.Millisecond, maxRetries, retry5xx, recorder, zap.NewNop())
	sleeper := &fakeSleeper{}
	c.sleeper = sleeper
	return c, sleeper
}

func okEnvelope(itemsJSON string) string {
	return fmt.Sprintf(`{"response":{"header":{"resultCode":"0000","resultMsg":"OK"},"body":{"items":%s,"totalCount":2,"pageNo":1,"numOfRows":10}}}`, itemsJSON)
}

func TestCaller_RetryCeilingOnTimeout(t *testing.T) {
	c, sleeper := newTestCaller(3, false, nil)

	var attempts int32
	c.httpClient = &http.Client{
		Transport: roundTripperFunc(func(_ *http.Request) (*http.Response, error) {
			atomic.AddInt32(&attempts, 1)
			return nil, timeoutError{}
		}),
	}

	_, err := c.Call(context.Background(), "areaBasedList2", "http://upstream.test/areaBasedList2")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTimeout))
	assert.True(t, apperrors.IsRetryable(err))
	// Ровно maxRetries+1 попыток с задержками 1s, 2s, 4s
	assert.Equal(t, int32(4), atomic.LoadInt32(&attempts))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, sleeper.delays)
}

func TestCaller_NetworkErrorAfterRetries(t *testing.T) {
	c, sleeper := newTestCaller(2, false, nil)

	var attempts int32
	c.httpClient = &http.Client{
		Transport: roundTripperFunc(func(_ *http.Request) (*http.Response, error) {
			atomic.AddInt32(&attempts, 1)
			return nil, errors.New("connection refused")
		}),
	}

	_, err := c.Call(context.Background(), "areaCode2", "http://upstream.test/areaCode2")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNetwork))
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
	assert.Len(t, sleeper.delays, 2)
}

func TestCaller_NoRetryOnTerminalUpstreamCode(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"response":{"header":{"resultCode":"22","resultMsg":"LIMITED NUMBER OF SERVICE REQUESTS EXCEEDS ERROR"},"body":""}}`)
	}))
	defer server.Close()

	c, sleeper := newTestCaller(3, false, nil)

	_, err := c.Call(context.Background(), "areaBasedList2", server.URL)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrQuotaExceeded))
	assert.False(t, apperrors.IsRetryable(err))
	// Квота - постоянная проблема: ровно одна попытка
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	assert.Empty(t, sleeper.delays)
}

func TestCaller_ResultCodeClassification(t *testing.T) {
	cases := []struct {
		code     string
		expected *apperrors.AppError
	}{
		{"10", apperrors.ErrInvalidParameter},
		{"11", apperrors.ErrMissingParameter},
		{"20", apperrors.ErrAccessDenied},
		{"30", apperrors.ErrAccessDenied},
		{"22", apperrors.ErrQuotaExceeded},
		{"12", apperrors.ErrServiceUnavailable},
		{"99", apperrors.ErrUpstreamGeneric},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			appErr := classifyResultCode(tc.code, "msg")
			assert.Equal(t, tc.expected.Code, appErr.Code)
		})
	}
}

func TestCaller_NoRetryOn4xx(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c, _ := newTestCaller(3, false, nil)

	_, err := c.Call(context.Background(), "detailCommon2", server.URL)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUpstreamNotFound))
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestCaller_ServerErrorRetryIsConfigurable(t *testing.T) {
	t.Run("5xx not retried by default", func(t *testing.T) {
		var attempts int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			atomic.AddInt32(&attempts, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c, _ := newTestCaller(3, false, nil)

		_, err := c.Call(context.Background(), "areaBasedList2", server.URL)

		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrUpstreamServer))
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	})

	t.Run("5xx retried with flag enabled", func(t *testing.T) {
		var attempts int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			atomic.AddInt32(&attempts, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c, sleeper := newTestCaller(2, true, nil)

		_, err := c.Call(context.Background(), "areaBasedList2", server.URL)

		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrUpstreamServer))
		assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
		assert.Len(t, sleeper.delays, 2)
	})
}

func TestCaller_SuccessRecordsOutcome(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, okEnvelope(`{"item":[{"contentid":"1"},{"contentid":"2"}]}`))
	}))
	defer server.Close()

	recorder := NewCallRecorder(10)
	c, _ := newTestCaller(3, false, recorder)

	body, err := c.Call(context.Background(), "areaBasedList2", server.URL)

	require.NoError(t, err)
	assert.NotEmpty(t, body)

	records := recorder.Snapshot()
	require.Len(t, records, 1)
	assert.Equal(t, "areaBasedList2", records[0].Endpoint)
	assert.Equal(t, 1, records[0].Attempts)
	assert.Equal(t, OutcomeOK, records[0].Outcome)
}

func TestBackoffDelay(t *testing.T) {
	assert.Equal(t, time.Second, backoffDelay(0))
	assert.Equal(t, 2*time.Second, backoffDelay(1))
	assert.Equal(t, 4*time.Second, backoffDelay(2))
}
