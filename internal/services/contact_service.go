package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"aicloudmania.dev/internal/cache"
	"aicloudmania.dev/internal/contact"
	"aicloudmania.dev/internal/content"
	xglog "aicloudmania.dev/internal/log"
	"aicloudmania.dev/internal/metrics"
	"aicloudmania.dev/internal/models"
)

// ErrDeliveryFailed wraps any error returned by the delivery backend.
var ErrDeliveryFailed = errors.New("contact delivery failed")

// ContactConfig tunes ContactService.
type ContactConfig struct {
	// DedupTTL is how long an identical submission is answered with the
	// original receipt instead of being delivered again. Zero disables it.
	DedupTTL time.Duration
	// Timeout bounds a single delivery attempt. Zero means no extra bound.
	Timeout time.Duration
}

// ContactService validates contact requests and hands them to a Deliverer
type ContactService struct {
	store     *content.Store
	deliverer contact.Deliverer
	dedup     cache.Cache
	cfg       ContactConfig
	now       func() time.Time
	newID     func() string
	logger    zerolog.Logger
	inflight  singleflight.Group
}

// NewContactService creates a new ContactService. dedup may be nil.
func NewContactService(store *content.Store, deliverer contact.Deliverer, dedup cache.Cache, cfg ContactConfig) *ContactService {
	return &ContactService{
		store:     store,
		deliverer: deliverer,
		dedup:     dedup,
		cfg:       cfg,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
		logger:    xglog.WithComponent("contact"),
	}
}

// Options returns the allowed enum values for the optional select fields.
func (s *ContactService) Options() contact.Options {
	c := s.store.Get().Contact
	return contact.Options{Services: c.Services, Budgets: c.Budgets}
}

// Submit validates req and delivers it. Invalid input yields a
// *contact.ValidationError; backend failures wrap ErrDeliveryFailed.
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) (*models.Receipt, error) {
	logger := xglog.WithContext(ctx, s.logger)
	req = contact.Normalize(req)

	if errs := contact.Validate(req, s.Options()); errs != nil {
		for _, field := range errs.Fields() {
			metrics.RecordValidationError(field)
		}
		metrics.RecordContactSubmission(metrics.OutcomeInvalid)
		logger.Debug().
			Strs("fields", errs.Fields()).
			Str(xglog.FieldEvent, "contact.invalid").
			Msg("contact request rejected")
		return nil, &contact.ValidationError{Fields: errs}
	}

	key := dedupKey(req)
	if !s.dedupEnabled() {
		return s.deliver(ctx, logger, key, req)
	}

	// Identical submissions arriving while the first is still being
	// delivered share its outcome.
	leader := false
	v, err, _ := s.inflight.Do(key, func() (any, error) {
		leader = true
		return s.deliver(ctx, logger, key, req)
	})
	if err != nil {
		return nil, err
	}
	receipt := v.(*models.Receipt)
	if !leader {
		s.recordDuplicate(logger, receipt)
	}
	return receipt, nil
}

// deliver hands req to the backend unless a receipt for key is already cached.
func (s *ContactService) deliver(ctx context.Context, logger zerolog.Logger, key string, req models.ContactRequest) (*models.Receipt, error) {
	if receipt, ok := s.lookupDuplicate(ctx, key); ok {
		s.recordDuplicate(logger, receipt)
		return receipt, nil
	}

	sub := models.Submission{
		ID:         s.newID(),
		ReceivedAt: s.now().UTC(),
		Request:    req,
	}

	deliverCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		deliverCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	err := s.deliverer.Deliver(deliverCtx, sub)
	metrics.ObserveDelivery(s.deliverer.Name(), time.Since(start).Seconds())
	if err != nil {
		metrics.RecordContactSubmission(metrics.OutcomeFailed)
		logger.Error().
			Err(err).
			Str(xglog.FieldSubmissionID, sub.ID).
			Str("backend", s.deliverer.Name()).
			Str(xglog.FieldEvent, "contact.delivery_failed").
			Msg("contact delivery failed")
		return nil, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	receipt := &models.Receipt{ID: sub.ID, ReceivedAt: sub.ReceivedAt}
	s.rememberReceipt(ctx, key, receipt)

	metrics.RecordContactSubmission(metrics.OutcomeDelivered)
	logger.Info().
		Str(xglog.FieldSubmissionID, sub.ID).
		Str("backend", s.deliverer.Name()).
		Bool("has_service", req.Service != "").
		Bool("has_budget", req.Budget != "").
		Str(xglog.FieldEvent, "contact.delivered").
		Msg("contact request delivered")
	return receipt, nil
}

func (s *ContactService) recordDuplicate(logger zerolog.Logger, receipt *models.Receipt) {
	metrics.RecordContactSubmission(metrics.OutcomeDuplicate)
	logger.Info().
		Str(xglog.FieldSubmissionID, receipt.ID).
		Str(xglog.FieldEvent, "contact.duplicate").
		Msg("duplicate contact request, returning original receipt")
}

func (s *ContactService) dedupEnabled() bool {
	return s.dedup != nil && s.cfg.DedupTTL > 0
}

func (s *ContactService) lookupDuplicate(ctx context.Context, key string) (*models.Receipt, bool) {
	if !s.dedupEnabled() {
		return nil, false
	}
	raw, ok := s.dedup.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var receipt models.Receipt
	if err := json.Unmarshal(raw, &receipt); err != nil {
		s.dedup.Delete(ctx, key)
		return nil, false
	}
	return &receipt, true
}

func (s *ContactService) rememberReceipt(ctx context.Context, key string, receipt *models.Receipt) {
	if !s.dedupEnabled() {
		return
	}
	raw, err := json.Marshal(receipt)
	if err != nil {
		return
	}
	s.dedup.Set(ctx, key, raw, s.cfg.DedupTTL)
}

// dedupKey identifies a submission by sender and message so the email
// address itself never reaches the cache.
func dedupKey(req models.ContactRequest) string {
	h := sha256.New()
	h.Write([]byte(strings.ToLower(req.Email)))
	h.Write([]byte{0})
	h.Write([]byte(req.Message))
	return "contact:dedup:" + hex.EncodeToString(h.Sum(nil))
}
