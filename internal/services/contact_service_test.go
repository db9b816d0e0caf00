package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicloudmania.dev/internal/cache"
	"aicloudmania.dev/internal/contact"
	"aicloudmania.dev/internal/models"
)

type recordingDeliverer struct {
	mu   sync.Mutex
	subs []models.Submission
	err  error
}

func (d *recordingDeliverer) Deliver(_ context.Context, sub models.Submission) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subs = append(d.subs, sub)
	return d.err
}

func (d *recordingDeliverer) Name() string { return "recording" }

func (d *recordingDeliverer) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subs)
}

func newContactService(t *testing.T, d contact.Deliverer, cfg ContactConfig) *ContactService {
	t.Helper()
	c := cache.NewMemoryCache(0)
	t.Cleanup(func() { _ = c.Close() })

	svc := NewContactService(newTestStore(), d, c, cfg)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	ids := 0
	svc.newID = func() string { ids++; return fmt.Sprintf("sub-%d", ids) }
	return svc
}

func goodRequest() models.ContactRequest {
	return models.ContactRequest{
		Name:    " Meera Iyer ",
		Email:   "meera@example.com",
		Service: "devops",
		Budget:  "50k-100k",
		Message: "Please help us set up CI/CD for our platform.",
	}
}

func TestContactService_SubmitDelivers(t *testing.T) {
	d := &recordingDeliverer{}
	svc := newContactService(t, d, ContactConfig{})

	receipt, err := svc.Submit(context.Background(), goodRequest())
	require.NoError(t, err)
	assert.Equal(t, "sub-1", receipt.ID)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), receipt.ReceivedAt)

	require.Equal(t, 1, d.count())
	assert.Equal(t, "Meera Iyer", d.subs[0].Request.Name, "input is normalized before delivery")
}

func TestContactService_SubmitInvalid(t *testing.T) {
	d := &recordingDeliverer{}
	svc := newContactService(t, d, ContactConfig{})

	req := goodRequest()
	req.Name = ""
	req.Email = "not-an-email"
	req.Message = "short"

	_, err := svc.Submit(context.Background(), req)
	var verr *contact.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, contact.MsgNameTooShort, verr.Fields[contact.FieldName])
	assert.Equal(t, contact.MsgInvalidEmail, verr.Fields[contact.FieldEmail])
	assert.Equal(t, contact.MsgMessageTooShort, verr.Fields[contact.FieldMessage])
	assert.Equal(t, 0, d.count(), "invalid requests never reach the backend")
}

func TestContactService_RejectsUnknownBudget(t *testing.T) {
	svc := newContactService(t, &recordingDeliverer{}, ContactConfig{})

	req := goodRequest()
	req.Budget = "free"
	_, err := svc.Submit(context.Background(), req)

	var verr *contact.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{contact.FieldBudget}, verr.Fields.Fields())
}

func TestContactService_DeliveryFailure(t *testing.T) {
	backendErr := errors.New("smtp relay unreachable")
	svc := newContactService(t, &recordingDeliverer{err: backendErr}, ContactConfig{})

	_, err := svc.Submit(context.Background(), goodRequest())
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.ErrorIs(t, err, backendErr)
}

func TestContactService_DeduplicatesWithinTTL(t *testing.T) {
	d := &recordingDeliverer{}
	svc := newContactService(t, d, ContactConfig{DedupTTL: time.Minute})

	first, err := svc.Submit(context.Background(), goodRequest())
	require.NoError(t, err)

	again := goodRequest()
	again.Email = "MEERA@example.com"
	second, err := svc.Submit(context.Background(), again)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, d.count())

	other := goodRequest()
	other.Message = "A completely different project brief."
	third, err := svc.Submit(context.Background(), other)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
	assert.Equal(t, 2, d.count())
}

func TestContactService_FailedDeliveryIsNotRemembered(t *testing.T) {
	d := &recordingDeliverer{err: errors.New("down")}
	svc := newContactService(t, d, ContactConfig{DedupTTL: time.Minute})

	_, err := svc.Submit(context.Background(), goodRequest())
	require.Error(t, err)

	d.err = nil
	_, err = svc.Submit(context.Background(), goodRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, d.count())
}

func TestContactService_TimeoutBoundsDelivery(t *testing.T) {
	svc := newContactService(t, contact.NewSimulatedDeliverer(time.Hour), ContactConfig{Timeout: 20 * time.Millisecond})

	_, err := svc.Submit(context.Background(), goodRequest())
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type gatedDeliverer struct {
	recordingDeliverer
	entered chan struct{}
	release chan struct{}
}

func (d *gatedDeliverer) Deliver(ctx context.Context, sub models.Submission) error {
	d.entered <- struct{}{}
	<-d.release
	return d.recordingDeliverer.Deliver(ctx, sub)
}

func TestContactService_ConcurrentDuplicatesDeliverOnce(t *testing.T) {
	d := &gatedDeliverer{entered: make(chan struct{}, 2), release: make(chan struct{})}
	svc := newContactService(t, d, ContactConfig{DedupTTL: time.Minute})

	receipts := make([]*models.Receipt, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	submit := func(i int) {
		defer wg.Done()
		receipts[i], errs[i] = svc.Submit(context.Background(), goodRequest())
	}

	wg.Add(2)
	go submit(0)
	<-d.entered
	go submit(1)
	// Let the second submit reach the in-flight delivery before it completes.
	time.Sleep(50 * time.Millisecond)
	close(d.release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, receipts[0].ID, receipts[1].ID)
	assert.Equal(t, 1, d.count())
}

func TestContactService_Options(t *testing.T) {
	svc := newContactService(t, &recordingDeliverer{}, ContactConfig{})

	opts := svc.Options()
	assert.Len(t, opts.Services, 8)
	assert.Len(t, opts.Budgets, 5)
}
