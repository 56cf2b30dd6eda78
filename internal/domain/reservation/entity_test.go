//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"github.com/Atsu2017-hub/web-ramen/internal/domain/menu"
	"github.com/Atsu2017-hub/web-ramen/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeOfDay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		errIs    error
	}{
		{name: "時分OK", input: "18:00", expected: "18:00"},
		{name: "時分秒は秒を落とす", input: "18:30:00", expected: "18:30"},
		{name: "前後の空白はトリム", input: " 19:00 ", expected: "19:00"},
		{name: "不正な形式NG", input: "6pm", errIs: reservation.ErrInvalidTime},
		{name: "範囲外の時刻NG", input: "25:00", errIs: reservation.ErrInvalidTime},
		{name: "空文字NG", input: "", errIs: reservation.ErrInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := reservation.NewTimeOfDay(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.Value())
		})
	}
}

func TestNewReservation(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	timeOfDay, err := reservation.NewTimeOfDay("18:00")
	require.NoError(t, err)

	line, err := menu.NewOrderLine(uuid.New(), 2)
	require.NoError(t, err)
	lines := []menu.OrderLine{line}

	t.Run("支払いなしで作成", func(t *testing.T) {
		r, err := reservation.NewReservation(userID, date, timeOfDay, 4, reservation.NewNote(""), lines, nil)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.Equal(t, reservation.PaymentPending, r.PaymentStatus())
		assert.Nil(t, r.PaymentIntentID())
		assert.Nil(t, r.Amount())
		assert.True(t, r.Note().IsEmpty())

		if diff := cmp.Diff(lines, r.Lines(), cmpopts.IgnoreUnexported(menu.OrderLine{})); diff != "" {
			t.Errorf("Lines mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("支払い確定済みで作成", func(t *testing.T) {
		capture := &reservation.PaymentCapture{IntentID: "pi_test_123", Amount: 1700}
		r, err := reservation.NewReservation(userID, date, timeOfDay, 2, reservation.NewNote("窓際の席希望"), lines, capture)
		require.NoError(t, err)

		assert.Equal(t, reservation.PaymentSucceeded, r.PaymentStatus())
		require.NotNil(t, r.PaymentIntentID())
		assert.Equal(t, "pi_test_123", *r.PaymentIntentID())
		require.NotNil(t, r.Amount())
		assert.Equal(t, int64(1700), *r.Amount())
		assert.Equal(t, "窓際の席希望", r.Note().Value())
	})

	t.Run("人数0はNG", func(t *testing.T) {
		_, err := reservation.NewReservation(userID, date, timeOfDay, 0, reservation.NewNote(""), lines, nil)
		assert.ErrorIs(t, err, reservation.ErrInvalidPartySize)
	})

	t.Run("負の人数はNG", func(t *testing.T) {
		_, err := reservation.NewReservation(userID, date, timeOfDay, -2, reservation.NewNote(""), lines, nil)
		assert.ErrorIs(t, err, reservation.ErrInvalidPartySize)
	})
}
