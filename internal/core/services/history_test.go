package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

func TestHistoryService_Recent(t *testing.T) {
	store := &mockHistoryStore{records: []domain.SearchRecord{
		{ID: "1", Term: "react"},
		{ID: "2", Term: "redux"},
		{ID: "3", Term: "vue"},
	}}
	svc := NewHistoryService(store)

	recs, err := svc.Recent(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "vue", recs[0].Term)
	assert.Equal(t, "redux", recs[1].Term)
}

func TestHistoryService_Clear(t *testing.T) {
	store := &mockHistoryStore{records: []domain.SearchRecord{{ID: "1"}}}
	svc := NewHistoryService(store)

	require.NoError(t, svc.Clear(context.Background()))

	recs, err := svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestHistoryService_NilStore(t *testing.T) {
	svc := NewHistoryService(nil)

	_, err := svc.Recent(context.Background(), 10)
	assert.True(t, errors.Is(err, domain.ErrHistoryUnavailable))

	err = svc.Clear(context.Background())
	assert.True(t, errors.Is(err, domain.ErrHistoryUnavailable))
}
