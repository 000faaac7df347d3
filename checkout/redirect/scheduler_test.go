package redirect

import (
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/consts"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/domain"
)

func TestDelayFor(t *testing.T) {
	assert.Equal(t, consts.RedirectDelayImmediate, DelayFor(domain.OutcomeImmediate, false))
	assert.Equal(t, consts.RedirectDelayImmediate, DelayFor(domain.OutcomeAsyncPending, false))
	assert.Equal(t, consts.RedirectDelayVoucher, DelayFor(domain.OutcomeAsyncPending, true))
}

func TestBuildDestinationURL(t *testing.T) {
	got, err := BuildDestinationURL("https://cafecomvendas.com/obrigado", Destination{
		AuthorizationID: "pi_123",
		Status:          domain.AuthorizationStatusProcessing,
		PaymentMethod:   "multibanco",
		LeadID:          "lead-1",
		Voucher: &domain.VoucherDetails{
			Entity:    "12345",
			Reference: "123456789",
			Amount:    18000,
		},
	})
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "pi_123", q.Get("payment_intent"))
	assert.Equal(t, "processing", q.Get("status"))
	assert.Equal(t, "multibanco", q.Get("payment_method"))
	assert.Equal(t, "lead-1", q.Get("lead_id"))
	assert.Equal(t, "12345", q.Get("mb_entity"))
	assert.Equal(t, "123456789", q.Get("mb_reference"), "reference digits embedded raw")
	assert.Equal(t, "18000", q.Get("mb_amount"))
}

func TestBuildDestinationURLWithoutVoucher(t *testing.T) {
	got, err := BuildDestinationURL("https://cafecomvendas.com/obrigado", Destination{
		AuthorizationID: "pi_123",
		Status:          domain.AuthorizationStatusSucceeded,
		PaymentMethod:   "card",
		LeadID:          "lead-1",
	})
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Empty(t, u.Query().Get("mb_reference"))
}

func TestSchedulerFiresOnce(t *testing.T) {
	var (
		mu    sync.Mutex
		fired []string
	)

	done := make(chan struct{})

	s := NewScheduler(func(sessionID string) {
		mu.Lock()
		fired = append(fired, sessionID)
		mu.Unlock()

		close(done)
	})

	s.Schedule("s1", 10*time.Millisecond)
	assert.True(t, s.Pending("s1"))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled navigation never fired")
	}

	mu.Lock()
	defer mu.Unlock()

	assert.Equal(t, []string{"s1"}, fired)
	assert.False(t, s.Pending("s1"))
}

func TestSchedulerReplacePriorTimer(t *testing.T) {
	fired := make(chan string, 2)

	s := NewScheduler(func(sessionID string) {
		fired <- sessionID
	})

	s.Schedule("s1", time.Hour)
	s.Schedule("s1", 10*time.Millisecond)

	select {
	case id := <-fired:
		assert.Equal(t, "s1", id)
	case <-time.After(time.Second):
		t.Fatal("replacement timer never fired")
	}

	select {
	case <-fired:
		t.Fatal("prior timer fired after replacement")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler(func(sessionID string) {
		t.Errorf("cancelled navigation fired for %s", sessionID)
	})

	s.Schedule("s1", 20*time.Millisecond)
	assert.True(t, s.Cancel("s1"))
	assert.False(t, s.Pending("s1"))
	assert.False(t, s.Cancel("s1"))

	time.Sleep(60 * time.Millisecond)
}
