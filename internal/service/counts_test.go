package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/georeads/georeads/internal/metrics"
	"github.com/georeads/georeads/internal/service/mocks"
)

func TestCountsService_NationalityCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockNationalityStore(ctrl)
	m := metrics.New()
	svc := NewCountsService(st, m, slog.New(slog.NewTextHandler(io.Discard, nil)))

	st.EXPECT().NationalityCounts(gomock.Any()).Return(map[string]int{
		"United Kingdom":           2,
		"Kingdom of Great Britain": 1,
		"England":                  1,
		"Japan":                    3,
		"Ruritania":                4,
	}, nil)

	counts, err := svc.NationalityCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"GBR": 4, "JPN": 3}, counts)
	assert.InDelta(t, 1, testutil.ToFloat64(m.UnmappedNationalities), 0)
}

func TestCountsService_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockNationalityStore(ctrl)
	svc := NewCountsService(st, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	boom := errors.New("boom")
	st.EXPECT().NationalityCounts(gomock.Any()).Return(nil, boom)

	_, err := svc.NationalityCounts(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestCountsService_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockNationalityStore(ctrl)
	svc := NewCountsService(st, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	st.EXPECT().NationalityCounts(gomock.Any()).Return(map[string]int{}, nil)

	counts, err := svc.NationalityCounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, counts)
}
