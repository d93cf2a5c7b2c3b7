package ringbuffer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks buffer operation counts and derived rates. Counters are
// atomic so a monitoring goroutine may read them while the single owner
// mutates the buffer.
type Statistics struct {
	// Atomic counters
	puts  int64
	gets  int64
	peeks int64
	drops int64

	// Protected by mutex
	mu          sync.RWMutex
	startTime   time.Time
	currentSize int64
	maxSize     int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Put records a successful insertion.
func (s *Statistics) Put() {
	atomic.AddInt64(&s.puts, 1)
}

// Get records a consuming read.
func (s *Statistics) Get() {
	atomic.AddInt64(&s.gets, 1)
}

// Peek records a non-consuming access.
func (s *Statistics) Peek() {
	atomic.AddInt64(&s.peeks, 1)
}

// Drop records a value rejected by a saturated Put.
func (s *Statistics) Drop() {
	atomic.AddInt64(&s.drops, 1)
}

// UpdateSize updates the current buffer size.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	if size > s.maxSize {
		s.maxSize = size
	}
	s.mu.Unlock()
}

// Puts returns the total number of successful insertions.
func (s *Statistics) Puts() int64 {
	return atomic.LoadInt64(&s.puts)
}

// Gets returns the total number of consuming reads.
func (s *Statistics) Gets() int64 {
	return atomic.LoadInt64(&s.gets)
}

// Peeks returns the total number of non-consuming accesses.
func (s *Statistics) Peeks() int64 {
	return atomic.LoadInt64(&s.peeks)
}

// Drops returns the total number of values rejected by saturated Puts.
func (s *Statistics) Drops() int64 {
	return atomic.LoadInt64(&s.drops)
}

// CurrentSize returns the current number of elements in the buffer.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// MaxSize returns the maximum number of elements the buffer has held.
func (s *Statistics) MaxSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxSize
}

// Throughput returns the average number of insertions per second.
func (s *Statistics) Throughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Puts()) / elapsed.Seconds()
}

// DropRate returns the fraction of insertion attempts that were dropped
// (0.0 to 1.0).
func (s *Statistics) DropRate() float64 {
	puts := s.Puts()
	drops := s.Drops()

	attempts := puts + drops
	if attempts == 0 {
		return 0.0
	}

	return float64(drops) / float64(attempts)
}

// Utilization returns the current buffer utilization relative to capacity
// (0.0 to 1.0).
func (s *Statistics) Utilization(capacity int64) float64 {
	if capacity == 0 {
		return 0.0
	}

	return float64(s.CurrentSize()) / float64(capacity)
}

// Uptime returns how long the buffer has existed.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.puts, 0)
	atomic.StoreInt64(&s.gets, 0)
	atomic.StoreInt64(&s.peeks, 0)
	atomic.StoreInt64(&s.drops, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.currentSize = 0
	s.maxSize = 0
	s.mu.Unlock()
}

// StatsSummary is a point-in-time snapshot of all statistics.
type StatsSummary struct {
	Puts        int64         `json:"puts"`
	Gets        int64         `json:"gets"`
	Peeks       int64         `json:"peeks"`
	Drops       int64         `json:"drops"`
	CurrentSize int64         `json:"current_size"`
	MaxSize     int64         `json:"max_size"`
	Throughput  float64       `json:"throughput"`
	DropRate    float64       `json:"drop_rate"`
	Uptime      time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Puts:        s.Puts(),
		Gets:        s.Gets(),
		Peeks:       s.Peeks(),
		Drops:       s.Drops(),
		CurrentSize: s.CurrentSize(),
		MaxSize:     s.MaxSize(),
		Throughput:  s.Throughput(),
		DropRate:    s.DropRate(),
		Uptime:      s.Uptime(),
	}
}
