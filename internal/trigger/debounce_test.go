package trigger

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type firingRecorder struct {
	mu   sync.Mutex
	seqs []uint64
}

func (r *firingRecorder) record(seq uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seqs = append(r.seqs, seq)
}

func (r *firingRecorder) fired() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint64, len(r.seqs))
	copy(out, r.seqs)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestDebouncerFiresAfterQuietPeriod(t *testing.T) {
	rec := &firingRecorder{}
	d := NewDebouncer(20*time.Millisecond, rec.record)
	defer d.Stop()

	seq := d.Notify()
	assert.Equal(t, uint64(1), seq)

	waitFor(t, func() bool { return len(rec.fired()) == 1 })
	assert.Equal(t, []uint64{1}, rec.fired())
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	rec := &firingRecorder{}
	d := NewDebouncer(50*time.Millisecond, rec.record)
	defer d.Stop()

	for i := 0; i < 5; i++ {
		d.Notify()
		time.Sleep(5 * time.Millisecond)
	}

	waitFor(t, func() bool { return len(rec.fired()) >= 1 })
	time.Sleep(100 * time.Millisecond)

	// One firing for the whole burst, carrying the last sequence.
	require.Equal(t, []uint64{5}, rec.fired())
	assert.Equal(t, uint64(5), d.Seq())
}

func TestDebouncerSequencesDetectStaleness(t *testing.T) {
	rec := &firingRecorder{}
	d := NewDebouncer(10*time.Millisecond, rec.record)
	defer d.Stop()

	first := d.Notify()
	waitFor(t, func() bool { return len(rec.fired()) == 1 })

	second := d.Notify()
	waitFor(t, func() bool { return len(rec.fired()) == 2 })

	assert.Less(t, first, second)
	// A result computed under the first sequence is stale now.
	assert.NotEqual(t, first, d.Seq())
	assert.Equal(t, second, d.Seq())
}

func TestDebouncerFlushFiresImmediately(t *testing.T) {
	rec := &firingRecorder{}
	d := NewDebouncer(time.Hour, rec.record)
	defer d.Stop()

	d.Notify()
	d.Flush()

	assert.Equal(t, []uint64{1}, rec.fired())

	// Flush with nothing notified is a no-op.
	d2 := NewDebouncer(time.Hour, rec.record)
	defer d2.Stop()
	d2.Flush()
	assert.Equal(t, []uint64{1}, rec.fired())
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	rec := &firingRecorder{}
	d := NewDebouncer(20*time.Millisecond, rec.record)

	d.Notify()
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.fired())

	// Notify after Stop is ignored.
	d.Notify()
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.fired())
}
