package audit

import (
	"context"
	"testing"
)

func TestDispatcherDeliversToSink(t *testing.T) {
	sink := NewMemorySink(10)
	d := NewDispatcher(sink)

	d.Dispatch(Event{Action: "reservation_created", Entity: "reservation", EntityID: "r1"})
	d.Dispatch(Event{Action: "reservation_status_changed", Entity: "reservation", EntityID: "r1", Metadata: map[string]string{"to": "confirmed"}})
	d.Close()

	logs, err := sink.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
	if logs[0].Action != "reservation_status_changed" || logs[0].Metadata != `{"to":"confirmed"}` {
		t.Fatalf("unexpected newest log %+v", logs[0])
	}
	if logs[1].CreatedAt.IsZero() {
		t.Fatalf("dispatch should stamp the event time")
	}
}

func TestMemorySinkKeepsNewest(t *testing.T) {
	sink := NewMemorySink(2)
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		_ = sink.Write(ctx, Event{Action: "product_updated", EntityID: id})
	}

	logs, _ := sink.Recent(ctx, 5)
	if len(logs) != 2 || logs[0].EntityID != "c" || logs[1].EntityID != "b" {
		t.Fatalf("unexpected logs %+v", logs)
	}
}
