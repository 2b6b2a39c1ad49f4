package auditlog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(service string) Record {
	now := time.Now()
	return Record{
		UniqueKey:         "uk-1",
		TraceID:           "tr-1",
		ServiceName:       service,
		VendorRequest:     "http://supplier.example/?action=get_schedule_v2",
		VendorResponse:    `{"err_code":"0"}`,
		RequestTimestamp:  now,
		ResponseTimestamp: now.Add(120 * time.Millisecond),
		Status:            StatusSuccess,
	}
}

func TestMemoryStore_Save(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Save(context.Background(), sampleRecord(ServiceSearch)))
	require.NoError(t, store.Save(context.Background(), sampleRecord(ServiceAirBooking)))

	records := store.Records()
	require.Len(t, records, 2)
	assert.Equal(t, ServiceSearch, records[0].ServiceName)
	assert.Equal(t, ServiceAirBooking, records[1].ServiceName)
}

func TestRecorder_PersistsInBackground(t *testing.T) {
	store := NewMemoryStore()
	rec := NewRecorder(store, nil)

	rec.Record(sampleRecord(ServiceSearch))

	require.Eventually(t, func() bool {
		return len(store.Records()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, StatusSuccess, store.Records()[0].Status)
}

// failingStore always rejects saves.
type failingStore struct {
	mu    sync.Mutex
	calls int
}

func (s *failingStore) Save(context.Context, Record) error {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return errors.New("connection refused")
}

func (s *failingStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestRecorder_SaveFailureIsSwallowed(t *testing.T) {
	store := &failingStore{}
	rec := NewRecorder(store, nil)

	assert.NotPanics(t, func() {
		rec.Record(sampleRecord(ServiceTicketing))
	})

	require.Eventually(t, func() bool {
		return store.callCount() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestRecorder_NilSafe(t *testing.T) {
	var rec *Recorder
	assert.NotPanics(t, func() {
		rec.Record(sampleRecord(ServiceSearch))
	})

	empty := NewRecorder(nil, nil)
	assert.NotPanics(t, func() {
		empty.Record(sampleRecord(ServiceSearch))
	})
}
