package event

import (
	"sync"
	"testing"
)

func TestBus_Subscribe(t *testing.T) {
	bus := NewBus()

	called := false
	id := bus.Subscribe(TypeFrameResized, func(e Event) {
		called = true
	})

	if id == "" {
		t.Error("Subscribe should return a non-empty ID")
	}
	if bus.SubscriptionCount() != 1 {
		t.Errorf("Expected 1 subscription, got %d", bus.SubscriptionCount())
	}
	if called {
		t.Error("Handler should not be called until an event is published")
	}
}

func TestBus_Publish(t *testing.T) {
	bus := NewBus()

	var received Event
	bus.Subscribe(TypeFrameResized, func(e Event) {
		received = e
	})

	bus.Publish(NewFrameResizedEvent(200, true))

	if received == nil {
		t.Fatal("handler was not called")
	}
	resized, ok := received.(FrameResizedEvent)
	if !ok {
		t.Fatalf("received event has type %T, want FrameResizedEvent", received)
	}
	if resized.Width != 200 || !resized.SizeChanged {
		t.Errorf("received %+v, want Width=200 SizeChanged=true", resized)
	}
}

func TestBus_PublishDoesNotCrossTypes(t *testing.T) {
	bus := NewBus()

	resizes, reconfigs := 0, 0
	bus.Subscribe(TypeFrameResized, func(e Event) { resizes++ })
	bus.Subscribe(TypeWindowReconfigured, func(e Event) { reconfigs++ })

	bus.Publish(NewWindowReconfiguredEvent())

	if resizes != 0 {
		t.Errorf("frame.resized handler called %d times, want 0", resizes)
	}
	if reconfigs != 1 {
		t.Errorf("window.reconfigured handler called %d times, want 1", reconfigs)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()

	calls := 0
	id := bus.Subscribe(TypeWindowReconfigured, func(e Event) { calls++ })

	bus.Publish(NewWindowReconfiguredEvent())
	if !bus.Unsubscribe(id) {
		t.Error("Unsubscribe should report the subscription existed")
	}
	bus.Publish(NewWindowReconfiguredEvent())

	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
	if bus.Unsubscribe(id) {
		t.Error("second Unsubscribe should report no subscription")
	}
}

func TestBus_HandlerOrder(t *testing.T) {
	bus := NewBus()

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		bus.Subscribe(TypeFrameResized, func(e Event) {
			order = append(order, i)
		})
	}

	bus.Publish(NewFrameResizedEvent(80, false))

	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("handlers ran in order %v, want [0 1 2]", order)
	}
}

func TestBus_PanickedHandlerDoesNotBlockOthers(t *testing.T) {
	bus := NewBus()

	called := false
	bus.Subscribe(TypeFrameResized, func(e Event) {
		panic("boom")
	})
	bus.Subscribe(TypeFrameResized, func(e Event) {
		called = true
	})

	bus.Publish(NewFrameResizedEvent(120, true))

	if !called {
		t.Error("handler after the panicking one was not called")
	}
}

func TestBus_ConcurrentSubscribePublish(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			bus.Subscribe(TypeFrameResized, func(e Event) {})
		}()
		go func() {
			defer wg.Done()
			bus.Publish(NewFrameResizedEvent(100, true))
		}()
	}
	wg.Wait()

	if bus.SubscriptionCount() != 8 {
		t.Errorf("SubscriptionCount() = %d, want 8", bus.SubscriptionCount())
	}
}
