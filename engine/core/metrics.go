package core

import (
	"sync"
	"time"
)

// AVG_COUNT is the number of samples in the rolling average.
const AVG_COUNT uint8 = 30

// Metrics keeps a rolling average of operation times and a per second rate.
type Metrics struct {
	mu sync.Mutex

	avgCounter    uint8
	filled        bool
	msTimes       [AVG_COUNT]float64
	msAvg         float64
	count         int64
	ops           int32
	accumulatedMS float64
	rate          float64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

var onceMetrics sync.Once
var metricsState *Metrics = nil

// MetricsInitialize sets up the process wide metrics used by the Metrics* helpers.
func MetricsInitialize() error {
	onceMetrics.Do(func() {
		metricsState = NewMetrics()
	})
	return nil
}

func MetricsUpdate(elapsed time.Duration) {
	metricsState.Update(elapsed)
}

func MetricsRate() float64 {
	return metricsState.Rate()
}

func MetricsAverage() time.Duration {
	return metricsState.Average()
}

// Update records one operation that took elapsed.
func (m *Metrics) Update(elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ms := float64(elapsed) / float64(time.Millisecond)
	m.msTimes[m.avgCounter] = ms
	m.avgCounter++
	if m.avgCounter == AVG_COUNT {
		m.filled = true
		m.avgCounter = 0
	}

	n := int(m.avgCounter)
	if m.filled {
		n = int(AVG_COUNT)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += m.msTimes[i]
	}
	m.msAvg = sum / float64(n)

	// operations per second, refreshed every accumulated second
	m.accumulatedMS += ms
	m.ops++
	if m.accumulatedMS >= 1000 {
		m.rate = float64(m.ops) * 1000 / m.accumulatedMS
		m.accumulatedMS = 0
		m.ops = 0
	}
	m.count++
}

// Average returns the mean of the last AVG_COUNT samples.
func (m *Metrics) Average() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return time.Duration(m.msAvg * float64(time.Millisecond))
}

// Rate returns operations per second over the last full second of samples,
// or an estimate from the partial window before one has elapsed.
func (m *Metrics) Rate() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rate == 0 && m.accumulatedMS > 0 {
		return float64(m.ops) * 1000 / m.accumulatedMS
	}
	return m.rate
}

func (m *Metrics) Count() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}
