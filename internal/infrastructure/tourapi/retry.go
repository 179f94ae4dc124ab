package tourapi

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	apperrors "github.com/tour-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

const baseBackoff = time.Second

// Sleeper абстрагирует ожидание между попытками;
// в тестах подменяется фейком, чтобы не ждать реального времени.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type defaultSleeper struct{}

func (defaultSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// callState - явное состояние повторов одного вызова.
// Вместо замыкания с мутируемым счётчиком: прогресс инспектируем в тестах.
type callState struct {
	Attempt   int           // номер текущей попытки, с нуля
	NextDelay time.Duration // задержка перед следующей попыткой
}

func (s *callState) advance() {
	s.Attempt++
	s.NextDelay = backoffDelay(s.Attempt)
}

// backoffDelay возвращает экспоненциальную задержку: 1s, 2s, 4s, ...
func backoffDelay(attempt int) time.Duration {
	return baseBackoff << attempt
}

// caller выполняет один upstream-вызов с таймаутом на попытку,
// экспоненциальным backoff и классификацией ошибок в точке возникновения.
type caller struct {
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int
	retry5xx   bool
	sleeper    Sleeper
	recorder   *CallRecorder
	logger     *zap.Logger
}

func newCaller(timeout time.Duration, maxRetries int, retry5xx bool, recorder *CallRecorder, logger *zap.Logger) *caller {
	return &caller{
		// Таймаут задаётся контекстом на каждую попытку, не клиентом
		httpClient: &http.Client{},
		timeout:    timeout,
		maxRetries: maxRetries,
		retry5xx:   retry5xx,
		sleeper:    defaultSleeper{},
		recorder:   recorder,
		logger:     logger,
	}
}

// Call выполняет GET с повторами. Возвращает сырое тело успешного ответа
// (resultCode уже проверен) либо типизированную ошибку.
func (c *caller) Call(ctx context.Context, endpoint, url string) ([]byte, error) {
	started := time.Now()
	state := callState{NextDelay: backoffDelay(0)}

	var finalErr *apperrors.AppError

	for {
		body, attemptErr, retryable := c.attempt(ctx, url)
		if attemptErr == nil {
			c.record(endpoint, state.Attempt+1, started, OutcomeOK)
			return body, nil
		}

		finalErr = attemptErr
		if !retryable || state.Attempt >= c.maxRetries {
			break
		}

		c.logger.Warn("Upstream call failed, retrying",
			zap.String("endpoint", endpoint),
			zap.String("error_code", attemptErr.Code),
			zap.Int("attempt", state.Attempt+1),
			zap.Duration("delay", state.NextDelay))

		if err := c.sleeper.Sleep(ctx, state.NextDelay); err != nil {
			// Контекст вызова отменён - дальше не повторяем
			break
		}
		state.advance()
	}

	c.record(endpoint, state.Attempt+1, started, finalErr.Code)
	c.logger.Error("Upstream call failed",
		zap.String("endpoint", endpoint),
		zap.String("error_code", finalErr.Code),
		zap.Int("attempts", state.Attempt+1))

	return nil, finalErr.WithDetails(map[string]interface{}{
		"endpoint": endpoint,
		"attempts": state.Attempt + 1,
	})
}

// attempt выполняет одну попытку. Возвращает тело, ошибку попытки
// и признак того, что попытку имеет смысл повторить.
func (c *caller) attempt(ctx context.Context, url string) ([]byte, *apperrors.AppError, bool) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.ErrInvalidRequest.WithMessage("failed to build upstream request"), false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, apperrors.ErrTimeout, true
		}
		return nil, apperrors.ErrNetwork, true
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		appErr := classifyStatus(resp.StatusCode)
		// 4xx не повторяется; 5xx - только при включённом флаге
		retryable := resp.StatusCode >= 500 && c.retry5xx
		return nil, appErr, retryable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.ErrNetwork, true
	}

	env, err := parseEnvelope(body)
	if err != nil {
		return nil, apperrors.ErrUpstreamGeneric.WithMessage("Upstream returned a malformed envelope"), false
	}

	if env.Response.Header.ResultCode != resultCodeOK {
		// Ошибочный resultCode при HTTP 200 - постоянная проблема
		// запроса или квоты, повторы бессмысленны
		return nil, classifyResultCode(env.Response.Header.ResultCode, env.Response.Header.ResultMsg), false
	}

	return body, nil, false
}

func (c *caller) record(endpoint string, attempts int, started time.Time, outcome string) {
	if c.recorder == nil {
		return
	}
	c.recorder.Record(CallRecord{
		Endpoint: endpoint,
		Attempts: attempts,
		Duration: time.Since(started),
		Outcome:  outcome,
		At:       time.Now(),
	})
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func classifyStatus(status int) *apperrors.AppError {
	switch {
	case status == http.StatusBadRequest:
		return apperrors.ErrUpstreamBadRequest
	case status == http.StatusUnauthorized:
		return apperrors.ErrUpstreamUnauthorized
	case status == http.StatusForbidden:
		return apperrors.ErrUpstreamForbidden
	case status == http.StatusNotFound:
		return apperrors.ErrUpstreamNotFound
	case status >= 500:
		return apperrors.ErrUpstreamServer
	default:
		return apperrors.ErrUpstreamHTTP.WithDetails(map[string]interface{}{
			"status": status,
		})
	}
}

// Коды ошибок публичного портала данных. Upstream отдаёт их то числом,
// то символическим именем - маппинг покрывает оба варианта.
var resultCodeErrors = map[string]*apperrors.AppError{
	"10": apperrors.ErrInvalidParameter,
	"INVALID_REQUEST_PARAMETER_ERROR": apperrors.ErrInvalidParameter,

	"11": apperrors.ErrMissingParameter,
	"NO_MANDATORY_REQUEST_PARAMETERS_ERROR": apperrors.ErrMissingParameter,

	"20": apperrors.ErrAccessDenied,
	"SERVICE_ACCESS_DENIED_ERROR": apperrors.ErrAccessDenied,
	"30": apperrors.ErrAccessDenied,
	"SERVICE_KEY_IS_NOT_REGISTERED_ERROR": apperrors.ErrAccessDenied,

	"22": apperrors.ErrQuotaExceeded,
	"LIMITED_NUMBER_OF_SERVICE_REQUESTS_EXCEEDS_ERROR": apperrors.ErrQuotaExceeded,

	"12": apperrors.ErrServiceUnavailable,
	"NO_OPENAPI_SERVICE_ERROR": apperrors.ErrServiceUnavailable,
}

func classifyResultCode(code, msg string) *apperrors.AppError {
	details := map[string]interface{}{
		"result_code": code,
		"result_msg":  msg,
	}
	if appErr, ok := resultCodeErrors[code]; ok {
		return appErr.WithDetails(details)
	}
	return apperrors.ErrUpstreamGeneric.WithDetails(details)
}
