package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchStatus_String(t *testing.T) {
	assert.Equal(t, "idle", FetchIdle.String())
	assert.Equal(t, "pending", FetchPending.String())
	assert.Equal(t, "resolved", FetchResolved.String())
	assert.Equal(t, "rejected", FetchRejected.String())
	assert.Equal(t, "superseded", FetchSuperseded.String())
	assert.Equal(t, "unknown", FetchStatus(42).String())
}

func TestParseFetchStatus(t *testing.T) {
	for _, st := range []FetchStatus{FetchIdle, FetchPending, FetchResolved, FetchRejected, FetchSuperseded} {
		assert.Equal(t, st, ParseFetchStatus(st.String()))
	}
	assert.Equal(t, FetchIdle, ParseFetchStatus("bogus"))
}

func TestFetchState_Indicators(t *testing.T) {
	tests := []struct {
		status  FetchStatus
		loading bool
		failed  bool
	}{
		{FetchIdle, false, false},
		{FetchPending, true, false},
		{FetchResolved, false, false},
		{FetchRejected, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			s := FetchState{Status: tt.status}
			assert.Equal(t, tt.loading, s.Loading())
			assert.Equal(t, tt.failed, s.Failed())
		})
	}
}

func TestFetchState_ZeroValueIsIdle(t *testing.T) {
	var s FetchState

	assert.Equal(t, FetchIdle, s.Status)
	assert.Zero(t, s.Seq)
	assert.NoError(t, s.Err)
}

func TestErrors_AreDistinct(t *testing.T) {
	errs := []error{
		ErrNotFound, ErrInvalidInput, ErrUnknownSortKey,
		ErrTransport, ErrMalformedResponse, ErrSourceUnavailable, ErrHistoryUnavailable,
	}
	for i, a := range errs {
		for j, b := range errs {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}
