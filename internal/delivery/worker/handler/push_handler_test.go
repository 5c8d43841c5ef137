package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kalado/config"
	"kalado/internal/domain/constants"
	"kalado/internal/domain/entity"
	domainerrors "kalado/internal/domain/errors"
	"kalado/internal/domain/service"
	mockUC "kalado/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockIndexerUsecase) {
	t.Helper()

	indexer := mockUC.NewMockIndexerUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config: &config.Config{
			PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
		},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		IndexerUsecase: indexer,
	})

	return h, indexer
}

func pushEnvelope(t *testing.T, event *service.ProductEvent) string {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	envelope := map[string]any{
		"message": map[string]any{
			"data":       base64.StdEncoding.EncodeToString(payload),
			"messageId":  "m-1",
			"attributes": map[string]string{"request_id": "req-1"},
		},
		"subscription": "projects/test/subscriptions/product-events",
	}
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_AppliesEvent(t *testing.T) {
	h, indexer := newTestPushHandler(t)

	indexer.EXPECT().
		ApplyEvent(mock.Anything, mock.AnythingOfType("*service.ProductEvent")).
		Return(nil)

	body := pushEnvelope(t, &service.ProductEvent{
		EventType: service.ProductCreated,
		Product:   &entity.Product{ID: 10, Title: "Mountain bike"},
	})

	rec := doPush(h, body)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedEnvelopeIsNotRetried(t *testing.T) {
	h, _ := newTestPushHandler(t)

	rec := doPush(h, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_BadBase64IsNotRetried(t *testing.T) {
	h, _ := newTestPushHandler(t)

	rec := doPush(h, `{"message":{"data":"%%%not-base64%%%","messageId":"m-1"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_EventWithoutProductIsAcked(t *testing.T) {
	// Acking keeps the broker from redelivering an unusable event forever.
	h, _ := newTestPushHandler(t)

	body := pushEnvelope(t, &service.ProductEvent{EventType: service.ProductCreated})

	rec := doPush(h, body)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_ValidationFailureIsAcked(t *testing.T) {
	h, indexer := newTestPushHandler(t)

	indexer.EXPECT().
		ApplyEvent(mock.Anything, mock.AnythingOfType("*service.ProductEvent")).
		Return(domainerrors.ErrValidationFailed.WrapMessage("事件缺少商品內容"))

	body := pushEnvelope(t, &service.ProductEvent{
		EventType: service.ProductCreated,
		Product:   &entity.Product{ID: 10},
	})

	rec := doPush(h, body)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_IndexFailureTriggersRetry(t *testing.T) {
	h, indexer := newTestPushHandler(t)

	indexer.EXPECT().
		ApplyEvent(mock.Anything, mock.AnythingOfType("*service.ProductEvent")).
		Return(errors.New("index unavailable"))

	body := pushEnvelope(t, &service.ProductEvent{
		EventType: service.ProductUpdated,
		Product:   &entity.Product{ID: 10},
	})

	rec := doPush(h, body)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
