package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/recero-inc/recero/internal/domain/billing/valueobjects"
)

func newStandbyRecord(t *testing.T) *Record {
	t.Helper()
	record, err := NewRecord(1, 20240101120000, "tok-1", 2500, vo.RecordStatusStandby, vo.EmptyRefundAccount(), 99)
	require.NoError(t, err)
	return record
}

func TestNewRecordRequiresOpenStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  vo.RecordStatus
		wantErr bool
	}{
		{"pending is allowed", vo.RecordStatusPending, false},
		{"standby is allowed", vo.RecordStatusStandby, false},
		{"complete is rejected", vo.RecordStatusComplete, true},
		{"fail is rejected", vo.RecordStatusFail, true},
		{"canceled is rejected", vo.RecordStatusCanceled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecord(1, 20240101120000, "tok-1", 2500, tt.status, vo.EmptyRefundAccount(), 99)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecordCompleteOnlyFromStandby(t *testing.T) {
	record := newStandbyRecord(t)

	require.NoError(t, record.Complete("approved", []byte(`{"result_code":"OK"}`)))
	assert.Equal(t, vo.RecordStatusComplete, record.Status())
	assert.Equal(t, "approved", record.ResultMessage())
	assert.Equal(t, []byte(`{"result_code":"OK"}`), record.GatewayPayload())
	require.NotNil(t, record.SettledAt())

	// Terminal records are immutable.
	assert.Error(t, record.Complete("again", nil))
	assert.Error(t, record.Fail("late failure", "X", nil))
	assert.Error(t, record.Cancel())
}

func TestRecordCompleteRejectsPending(t *testing.T) {
	record, err := NewRecord(1, 20240101120000, "tok-1", 2500, vo.RecordStatusPending, vo.EmptyRefundAccount(), 99)
	require.NoError(t, err)

	assert.Error(t, record.Complete("approved", nil))
	assert.Equal(t, vo.RecordStatusPending, record.Status())
	assert.Nil(t, record.SettledAt())
}

func TestRecordFailPreservesGatewayOutcome(t *testing.T) {
	record := newStandbyRecord(t)

	require.NoError(t, record.Fail("card expired", "E1234", []byte(`{"result_code":"NOTOK","error_code":"E1234"}`)))
	assert.Equal(t, vo.RecordStatusFail, record.Status())
	assert.Equal(t, "card expired", record.ResultMessage())
	assert.Equal(t, "E1234", record.ErrorCode())
	assert.Equal(t, []byte(`{"result_code":"NOTOK","error_code":"E1234"}`), record.GatewayPayload())
	assert.Nil(t, record.SettledAt())

	assert.Error(t, record.Complete("too late", nil))
}

func TestRecordCancelOnlyWhileOpen(t *testing.T) {
	pending, err := NewRecord(1, 20240101120000, "tok-1", 2500, vo.RecordStatusPending, vo.EmptyRefundAccount(), 99)
	require.NoError(t, err)
	require.NoError(t, pending.Cancel())
	assert.Equal(t, vo.RecordStatusCanceled, pending.Status())

	standby := newStandbyRecord(t)
	require.NoError(t, standby.Cancel())

	settled := newStandbyRecord(t)
	require.NoError(t, settled.Complete("approved", nil))
	assert.Error(t, settled.Cancel())
}

func TestRecordMarkStandbyOnlyFromPending(t *testing.T) {
	record, err := NewRecord(1, 20240101120000, "tok-1", 2500, vo.RecordStatusPending, vo.EmptyRefundAccount(), 99)
	require.NoError(t, err)

	require.NoError(t, record.MarkStandby())
	assert.Equal(t, vo.RecordStatusStandby, record.Status())

	// Already standby; promoting again is a bug.
	assert.Error(t, record.MarkStandby())

	require.NoError(t, record.Complete("approved", nil))
	assert.Error(t, record.MarkStandby())
}
