package winnerfeed

import (
	"testing"
	"time"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	feed := New()
	a := feed.Subscribe()
	b := feed.Subscribe()
	defer a.Close()
	defer b.Close()

	feed.Publish(Event{Kind: Inserted, Category: "song-of-the-year", Nominee: "huntrx-golden"})

	for _, sub := range []*Subscription{a, b} {
		select {
		case ev := <-sub.Events():
			if ev.Category != "song-of-the-year" || ev.Nominee != "huntrx-golden" {
				t.Errorf("got event %+v", ev)
			}
			if ev.ID == "" {
				t.Error("event delivered without an id")
			}
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestPerCategoryOrdering(t *testing.T) {
	feed := New()
	sub := feed.Subscribe()
	defer sub.Close()

	feed.Publish(Event{Kind: Inserted, Category: "best-new-artist", Nominee: "katseye"})
	feed.Publish(Event{Kind: Updated, Category: "best-new-artist", Nominee: "lola-young"})
	feed.Publish(Event{Kind: Deleted, Category: "best-new-artist"})

	want := []EventKind{Inserted, Updated, Deleted}
	for i, kind := range want {
		select {
		case ev := <-sub.Events():
			if ev.Kind != kind {
				t.Errorf("event %d kind = %q, want %q", i, ev.Kind, kind)
			}
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestCloseUnregisters(t *testing.T) {
	feed := New()
	sub := feed.Subscribe()

	if feed.SubscriberCount() != 1 {
		t.Fatalf("SubscriberCount() = %d, want 1", feed.SubscriberCount())
	}

	sub.Close()
	if feed.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount() = %d after close, want 0", feed.SubscriberCount())
	}

	if _, ok := <-sub.Events(); ok {
		t.Error("events channel still open after close")
	}

	// Publishing after close must not panic or block.
	feed.Publish(Event{Kind: Inserted, Category: "song-of-the-year", Nominee: "huntrx-golden"})
}

func TestCloseIsIdempotent(t *testing.T) {
	feed := New()
	sub := feed.Subscribe()

	sub.Close()
	sub.Close()
}

func TestSlowSubscriberDoesNotBlockPublisher(t *testing.T) {
	feed := New()
	sub := feed.Subscribe()
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*2; i++ {
			feed.Publish(Event{Kind: Updated, Category: "song-of-the-year", Nominee: "huntrx-golden"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}
