package sse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func next(t *testing.T, ch chan []byte) string {
	t.Helper()
	select {
	case msg := <-ch:
		return string(msg)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
		return ""
	}
}

func TestSubscribeUnsubscribe(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients")
	}
	ch := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client")
	}
	b.Unsubscribe(ch)
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after unsub")
	}
}

func TestPublish_WireFormat(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.Publish(Event{ID: "42", Type: "topic.learned", Data: map[string]string{"topic": "gamma"}})
	want := "id: 42\nevent: topic.learned\ndata: {\"topic\":\"gamma\"}\n\n"
	if got := next(t, ch); got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestPublish_GeneratesIDs(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.Publish(Event{Type: "ping", Data: 1})
	b.Publish(Event{Type: "ping", Data: 2})

	id := func(msg string) string {
		line, _, _ := strings.Cut(msg, "\n")
		return strings.TrimPrefix(line, "id: ")
	}
	first, second := id(next(t, ch)), id(next(t, ch))
	if len(first) != 36 || first == second {
		t.Errorf("ids = %q, %q; want distinct UUIDs", first, second)
	}
}

func TestPublishTopicEvent_ListThrottle(t *testing.T) {
	b := NewBroker(500 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.TopicLearned("gamma")
	b.PublishTopicEvent(KindReloaded, "")
	b.PublishTopicEvent("bogus", "x")

	time.Sleep(50 * time.Millisecond)
	counts := map[string]int{}
loop:
	for {
		select {
		case msg := <-ch:
			for _, kind := range []string{"topic.learned", "topics.reloaded", "topics.updated"} {
				if strings.Contains(string(msg), "event: "+kind+"\n") {
					counts[kind]++
				}
			}
		default:
			break loop
		}
	}

	if counts["topic.learned"] != 1 || counts["topics.reloaded"] != 1 {
		t.Errorf("change events = %v", counts)
	}
	if counts["topics.updated"] != 1 {
		t.Errorf("topics.updated = %d, want 1 (throttled)", counts["topics.updated"])
	}
}

func TestSSEHandler(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		b.ServeHTTP(w, req)
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for b.ClientCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("handler never subscribed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	b.TopicLearned("yield")
	time.Sleep(50 * time.Millisecond)

	cancel()
	<-done

	body := w.Body.String()
	if !strings.Contains(body, "event: topic.learned") || !strings.Contains(body, `"topic":"yield"`) {
		t.Errorf("handler output missing event: %q", body)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q", ct)
	}

	time.Sleep(50 * time.Millisecond)
	if b.ClientCount() != 0 {
		t.Errorf("client not cleaned up after disconnect")
	}
}

func TestPublishDropsOnFullBuffer(t *testing.T) {
	b := NewBroker(time.Second)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	for i := 0; i < 70; i++ {
		b.Publish(Event{Type: "test", Data: map[string]int{"i": i}})
	}
}

func TestConcurrentPublishers(t *testing.T) {
	b := NewBroker(time.Millisecond)
	defer b.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				b.TopicLearned("t")
			}
		}()
	}
	wg.Wait()
}

func TestCloseClosesSubscribersAndStopsOperations(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	ch := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client")
	}

	b.Close()
	b.Close()

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("expected subscriber channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for channel close")
	}

	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after close")
	}

	b.Publish(Event{Type: "topic.learned", Data: map[string]string{"topic": "x"}})
	b.TopicLearned("x")
	if ch := b.Subscribe(); ch == nil {
		t.Fatal("Subscribe after close returned nil")
	}
}
