package tourapi

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallRecorder_RingBuffer(t *testing.T) {
	r := NewCallRecorder(3)

	for i := 1; i <= 5; i++ {
		r.Record(CallRecord{
			Endpoint: fmt.Sprintf("endpoint-%d", i),
			Attempts: 1,
			Outcome:  OutcomeOK,
			At:       time.Now(),
		})
	}

	// Ёмкость 3: остаются только три последних, новые первыми
	assert.Equal(t, 3, r.Len())

	records := r.Snapshot()
	require.Len(t, records, 3)
	assert.Equal(t, "endpoint-5", records[0].Endpoint)
	assert.Equal(t, "endpoint-4", records[1].Endpoint)
	assert.Equal(t, "endpoint-3", records[2].Endpoint)
}

func TestCallRecorder_PartiallyFilled(t *testing.T) {
	r := NewCallRecorder(10)

	r.Record(CallRecord{Endpoint: "a", Outcome: OutcomeOK})
	r.Record(CallRecord{Endpoint: "b", Outcome: "TIMEOUT"})

	records := r.Snapshot()
	require.Len(t, records, 2)
	assert.Equal(t, "b", records[0].Endpoint)
	assert.Equal(t, "a", records[1].Endpoint)
}

func TestCallRecorder_DefaultCapacity(t *testing.T) {
	r := NewCallRecorder(0)
	r.Record(CallRecord{Endpoint: "a"})
	assert.Equal(t, 1, r.Len())
}
