package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProviderAdvance(t *testing.T) {
	start := time.Date(2025, 12, 24, 18, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Fatalf("Expected %v, got %v", start, mock.Now())
	}

	mock.Advance(16 * time.Millisecond)
	mock.Advance(time.Second)
	if want := start.Add(time.Second + 16*time.Millisecond); !mock.Now().Equal(want) {
		t.Errorf("Expected %v, got %v", want, mock.Now())
	}
}

func TestMockTimeProviderStepFrames(t *testing.T) {
	start := time.Unix(0, 0)
	mock := NewMockTimeProvider(start)
	loop := NewFrameLoop(mock)

	ran := 0
	var chain func()
	chain = func() {
		ran++
		loop.RequestFrame(chain)
	}
	loop.RequestFrame(chain)

	total := mock.StepFrames(loop, 16*time.Millisecond, 5)
	if total != 5 || ran != 5 {
		t.Errorf("Expected 5 callbacks, got total=%d ran=%d", total, ran)
	}
	if want := start.Add(80 * time.Millisecond); !mock.Now().Equal(want) {
		t.Errorf("Expected clock at %v, got %v", want, mock.Now())
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	start := time.Unix(0, 0)
	mock := NewMockTimeProvider(start)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if want := start.Add(250 * time.Millisecond); !mock.Now().Equal(want) {
		t.Errorf("Expected %v after concurrent advances, got %v", want, mock.Now())
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
