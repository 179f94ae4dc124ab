package tourapi

import (
	"sync"
	"time"
)

// CallRecord - итог одного вызова upstream (после всех попыток)
type CallRecord struct {
	Endpoint string        `json:"endpoint"`
	Attempts int           `json:"attempts"`
	Duration time.Duration `json:"duration_ns"`
	Outcome  string        `json:"outcome"`
	At       time.Time     `json:"at"`
}

// OutcomeOK - значение Outcome для успешного вызова;
// для ошибок записывается код типизированной ошибки.
const OutcomeOK = "OK"

// CallRecorder хранит последние N записей о вызовах в кольцевом буфере.
// Конструируется явно и внедряется в клиент - без глобального состояния.
type CallRecorder struct {
	mu      sync.Mutex
	records []CallRecord
	next    int
	filled  bool
}

// NewCallRecorder создает recorder с фиксированной ёмкостью
func NewCallRecorder(capacity int) *CallRecorder {
	if capacity <= 0 {
		capacity = 100
	}
	return &CallRecorder{
		records: make([]CallRecord, capacity),
	}
}

// Record добавляет запись, вытесняя самую старую при переполнении
func (r *CallRecorder) Record(rec CallRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[r.next] = rec
	r.next++
	if r.next == len(r.records) {
		r.next = 0
		r.filled = true
	}
}

// Snapshot возвращает копию записей, новые первыми
func (r *CallRecorder) Snapshot() []CallRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := r.next
	if r.filled {
		size = len(r.records)
	}

	out := make([]CallRecord, 0, size)
	for i := 1; i <= size; i++ {
		idx := (r.next - i + len(r.records)) % len(r.records)
		out = append(out, r.records[idx])
	}
	return out
}

// Len возвращает количество сохранённых записей
func (r *CallRecorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.filled {
		return len(r.records)
	}
	return r.next
}
