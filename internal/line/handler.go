package line

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	signatureHeader = "X-Line-Signature"
	maxBodyBytes    = 1 << 20
	eventTimeout    = 30 * time.Second
)

type Handler struct {
	svc           Service
	channelSecret string
	logger        *zap.Logger

	wg sync.WaitGroup
}

func NewHandler(svc Service, channelSecret string, logger *zap.Logger) *Handler {
	return &Handler{
		svc:           svc,
		channelSecret: channelSecret,
		logger:        logger,
	}
}

type webhookRequest struct {
	Events []Event `json:"events"`
}

// HandleWebhook accepts a batch of events from the LINE platform. The raw
// body is captured before parsing so the signature is computed over exactly
// the bytes the platform signed. A valid batch is acknowledged with 200
// immediately; the events are then processed independently of the response.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	signature := r.Header.Get(signatureHeader)
	if signature == "" {
		http.Error(w, "missing signature", http.StatusUnauthorized)
		return
	}
	if !ValidSignature(h.channelSecret, body, signature) {
		h.logger.Warn("webhook signature mismatch")
		http.Error(w, "invalid signature", http.StatusForbidden)
		return
	}

	var payload webhookRequest
	if err := json.Unmarshal(body, &payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if len(payload.Events) == 0 {
		http.Error(w, "no events", http.StatusBadRequest)
		return
	}

	// LINE expects a fast ack regardless of how long downstream takes.
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))

	for _, event := range payload.Events {
		h.wg.Add(1)
		go h.processEvent(event)
	}
}

// processEvent runs one event's pipeline on its own goroutine with its own
// timeout. Failures (including panics) are contained here so sibling events
// in the batch are unaffected.
func (h *Handler) processEvent(event Event) {
	defer h.wg.Done()

	logger := h.logger.With(zap.String("event_id", uuid.NewString()))
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("event pipeline panicked", zap.Any("panic", rec))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	if err := h.svc.HandleEvent(ctx, event); err != nil {
		logger.Error("event pipeline failed", zap.Error(err))
	}
}

// Wait blocks until every in-flight event pipeline has finished. Used to
// drain processing on shutdown.
func (h *Handler) Wait() {
	h.wg.Wait()
}
