package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/tbourn/closet-backend/internal/domain"
	"github.com/tbourn/closet-backend/internal/repo"
)

func countWearLogs(t *testing.T, e *testEnv, owner uint) int64 {
	t.Helper()
	n, err := repo.CountWearLogs(context.Background(), e.db, owner, repo.WearLogRange{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestWearLog_Create_BothIDShapes(t *testing.T) {
	e := newEnv(t, nil)
	key, u := e.register(t, "alice")
	a := e.mkItem(t, u.ID, "Tee", domain.SuitabilityHot)
	b := e.mkItem(t, u.ID, "Shorts", domain.SuitabilityHot)

	w := e.do(t, http.MethodPost, "/api/wear-logs/", key, map[string]any{
		"item_ids":  []uint{a.ID},
		"items":     []map[string]uint{{"id": b.ID}, {"id": a.ID}},
		"date_worn": "2025-06-10",
		"notes":     "  beach  ",
		"weather_log": map[string]any{
			"date": "2025-06-10", "temp_high": 88, "temp_low": 72,
			"precipitation_chance": 10, "humidity": 40,
		},
	})
	expectStatus(t, w, http.StatusCreated)
	wl := decode[domain.WearLog](t, w)
	if len(wl.Items) != 2 || wl.DateWorn != "2025-06-10" || wl.Notes != "beach" {
		t.Fatalf("unexpected wear log: %+v", wl)
	}
	if wl.WeatherLog == nil || wl.WeatherLog.Conditions.Primary == "" {
		t.Fatalf("weather snapshot must carry derived conditions: %+v", wl.WeatherLog)
	}
	if w.Header().Get(HeaderIdempotencyReplayed) != "" {
		t.Fatalf("fresh create must not be marked replayed")
	}

	for _, id := range []uint{a.ID, b.ID} {
		it, err := repo.GetItem(context.Background(), e.db, id, u.ID)
		if err != nil || it.LastWorn == nil {
			t.Fatalf("item %d last_worn not set: %+v %v", id, it, err)
		}
	}
}

func TestWearLog_Create_ExplicitConditionsKept(t *testing.T) {
	e := newEnv(t, nil)
	key, u := e.register(t, "alice")
	a := e.mkItem(t, u.ID, "Tee", domain.SuitabilityHot)

	w := e.do(t, http.MethodPost, "/api/wear-logs/", key, fmt.Sprintf(`{
		"item_ids": [%d], "date_worn": "2025-06-10",
		"weather_log": {"date": "2025-06-10", "temp_high": 60, "temp_low": 50,
			"precipitation_chance": 0, "humidity": 0,
			"conditions": {"primary": "Custom", "all": ["Custom"]}}}`, a.ID))
	expectStatus(t, w, http.StatusCreated)
	if wl := decode[domain.WearLog](t, w); wl.WeatherLog == nil || wl.WeatherLog.Conditions.Primary != "Custom" {
		t.Fatalf("explicit conditions dropped: %+v", wl.WeatherLog)
	}

	// A non-object conditions value falls back to derivation.
	w = e.do(t, http.MethodPost, "/api/wear-logs/", key, fmt.Sprintf(`{
		"item_ids": [%d], "date_worn": "2025-06-11",
		"weather_log": {"date": "2025-06-11", "temp_high": 60, "temp_low": 50,
			"precipitation_chance": 0, "humidity": 0, "conditions": "sunny"}}`, a.ID))
	expectStatus(t, w, http.StatusCreated)
	if wl := decode[domain.WearLog](t, w); wl.WeatherLog == nil || wl.WeatherLog.Conditions.Primary == "sunny" || wl.WeatherLog.Conditions.Primary == "" {
		t.Fatalf("expected derived conditions: %+v", wl.WeatherLog)
	}
}

func TestWearLog_Create_RejectsForeignAndMissing(t *testing.T) {
	e := newEnv(t, nil)
	key, alice := e.register(t, "alice")
	_, bob := e.register(t, "bob")
	mine := e.mkItem(t, alice.ID, "Tee", domain.SuitabilityHot)
	theirs := e.mkItem(t, bob.ID, "Coat", domain.SuitabilityCold)

	w := e.do(t, http.MethodPost, "/api/wear-logs/", key, map[string]any{
		"item_ids": []uint{mine.ID, theirs.ID}, "date_worn": "2025-06-10",
	})
	expectStatus(t, w, http.StatusForbidden)
	if er := decode[ErrorResponse](t, w); er.Code != ErrCodeForbidden {
		t.Fatalf("unexpected code %+v", er)
	}

	w = e.do(t, http.MethodPost, "/api/wear-logs/", key, map[string]any{
		"item_ids": []uint{mine.ID, 9999}, "date_worn": "2025-06-10",
	})
	expectStatus(t, w, http.StatusNotFound)

	if n := countWearLogs(t, e, alice.ID); n != 0 {
		t.Fatalf("nothing may be written on rejection; got %d wear logs", n)
	}
	it, _ := repo.GetItem(context.Background(), e.db, mine.ID, alice.ID)
	if it.LastWorn != nil {
		t.Fatalf("last_worn must stay unset on rejection")
	}
}

func TestWearLog_Create_Validation(t *testing.T) {
	e := newEnv(t, nil)
	key, u := e.register(t, "alice")
	a := e.mkItem(t, u.ID, "Tee", domain.SuitabilityHot)

	w := e.do(t, http.MethodPost, "/api/wear-logs/", key, map[string]any{"date_worn": "2025-06-10"})
	expectStatus(t, w, http.StatusBadRequest)
	if er := decode[ErrorResponse](t, w); er.Details["item_ids"] == "" {
		t.Fatalf("expected item_ids detail: %+v", er)
	}

	w = e.do(t, http.MethodPost, "/api/wear-logs/", key, map[string]any{"item_ids": []uint{a.ID}, "date_worn": "June 10"})
	expectStatus(t, w, http.StatusBadRequest)
	if er := decode[ErrorResponse](t, w); er.Details["date_worn"] == "" {
		t.Fatalf("expected date_worn detail: %+v", er)
	}

	expectStatus(t, e.do(t, http.MethodPost, "/api/wear-logs/", key, `{"item_ids": "1"}`), http.StatusBadRequest)
}

func TestWearLog_IdempotentReplay(t *testing.T) {
	e := newEnv(t, nil)
	key, u := e.register(t, "alice")
	a := e.mkItem(t, u.ID, "Tee", domain.SuitabilityHot)
	body := map[string]any{"item_ids": []uint{a.ID}, "date_worn": "2025-06-10"}

	first := e.do(t, http.MethodPost, "/api/wear-logs/", key, body, "Idempotency-Key", "outfit-2025-06-10")
	expectStatus(t, first, http.StatusCreated)
	second := e.do(t, http.MethodPost, "/api/wear-logs/", key, body, "Idempotency-Key", "outfit-2025-06-10")
	expectStatus(t, second, http.StatusCreated)

	if second.Header().Get(HeaderIdempotencyReplayed) != "true" {
		t.Fatalf("replay header missing")
	}
	if decode[domain.WearLog](t, first).ID != decode[domain.WearLog](t, second).ID {
		t.Fatalf("replay must return the original wear log")
	}
	if n := countWearLogs(t, e, u.ID); n != 1 {
		t.Fatalf("want 1 wear log, got %d", n)
	}

	expectStatus(t, e.do(t, http.MethodPost, "/api/wear-logs/", key, body, "Idempotency-Key", "bad key!"), http.StatusBadRequest)
}

func TestWearLog_ListGetDelete(t *testing.T) {
	e := newEnv(t, nil)
	key, u := e.register(t, "alice")
	otherKey, _ := e.register(t, "bob")
	a := e.mkItem(t, u.ID, "Tee", domain.SuitabilityHot)

	var ids []uint
	for _, d := range []string{"2025-06-01", "2025-06-05", "2025-06-09"} {
		w := e.do(t, http.MethodPost, "/api/wear-logs/", key, map[string]any{"item_ids": []uint{a.ID}, "date_worn": d})
		expectStatus(t, w, http.StatusCreated)
		ids = append(ids, decode[domain.WearLog](t, w).ID)
	}

	w := e.do(t, http.MethodGet, "/api/wear-logs/", key, nil)
	expectStatus(t, w, http.StatusOK)
	all := decode[[]domain.WearLog](t, w)
	if len(all) != 3 || all[0].DateWorn != "2025-06-09" || all[2].DateWorn != "2025-06-01" {
		t.Fatalf("want newest date first: %+v", all)
	}
	etag := w.Header().Get("ETag")
	if !strings.HasPrefix(etag, `W/"wear_logs:`) {
		t.Fatalf("missing ETag: %q", etag)
	}
	expectStatus(t, e.do(t, http.MethodGet, "/api/wear-logs/", key, nil, "If-None-Match", etag), http.StatusNotModified)

	// The list embeds its items, so editing a worn item invalidates the tag.
	w = e.do(t, http.MethodPatch, fmt.Sprintf("/api/clothing-items/%d/", a.ID), key, map[string]any{"name": "Renamed"})
	expectStatus(t, w, http.StatusOK)
	w = e.do(t, http.MethodGet, "/api/wear-logs/", key, nil, "If-None-Match", etag)
	expectStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `"name":"Renamed"`) || w.Header().Get("ETag") == etag {
		t.Fatalf("stale wear log list after item edit: etag=%q body=%s", w.Header().Get("ETag"), w.Body.String())
	}
	etag = w.Header().Get("ETag")

	extra := e.mkItem(t, u.ID, "Scarf", domain.SuitabilityCold)
	expectStatus(t, e.do(t, http.MethodPost, "/api/wear-logs/", key, map[string]any{"item_ids": []uint{a.ID, extra.ID}, "date_worn": "2025-06-03"}), http.StatusCreated)
	w = e.do(t, http.MethodGet, "/api/wear-logs/", key, nil)
	etag = w.Header().Get("ETag")
	expectStatus(t, e.do(t, http.MethodDelete, fmt.Sprintf("/api/clothing-items/%d/", extra.ID), key, nil), http.StatusNoContent)
	w = e.do(t, http.MethodGet, "/api/wear-logs/", key, nil, "If-None-Match", etag)
	expectStatus(t, w, http.StatusOK)
	if w.Header().Get("ETag") == etag {
		t.Fatalf("etag unchanged after deleting a worn item")
	}
	// Drop the extra log so the assertions below see the original three.
	extraLogs := decode[[]domain.WearLog](t, w)
	for _, l := range extraLogs {
		if l.DateWorn == "2025-06-03" {
			expectStatus(t, e.do(t, http.MethodDelete, fmt.Sprintf("/api/wear-logs/%d/", l.ID), key, nil), http.StatusNoContent)
		}
	}

	w = e.do(t, http.MethodGet, "/api/wear-logs/?from=2025-06-02&to=2025-06-09", key, nil)
	expectStatus(t, w, http.StatusOK)
	if got := decode[[]domain.WearLog](t, w); len(got) != 2 || w.Header().Get(HeaderTotalCount) != "2" {
		t.Fatalf("range filter wrong: %+v", got)
	}
	expectStatus(t, e.do(t, http.MethodGet, "/api/wear-logs/?from=yesterday", key, nil), http.StatusBadRequest)

	path := fmt.Sprintf("/api/wear-logs/%d/", ids[0])
	w = e.do(t, http.MethodGet, path, key, nil)
	expectStatus(t, w, http.StatusOK)
	if got := decode[domain.WearLog](t, w); len(got.Items) != 1 || got.Items[0].ID != a.ID {
		t.Fatalf("items not loaded: %+v", got)
	}
	expectStatus(t, e.do(t, http.MethodGet, path, otherKey, nil), http.StatusNotFound)
	expectStatus(t, e.do(t, http.MethodDelete, path, otherKey, nil), http.StatusNotFound)

	expectStatus(t, e.do(t, http.MethodDelete, path, key, nil), http.StatusNoContent)
	expectStatus(t, e.do(t, http.MethodGet, path, key, nil), http.StatusNotFound)
	expectStatus(t, e.do(t, http.MethodGet, "/api/wear-logs/x/", key, nil), http.StatusNotFound)

	// The item keeps the stamp set by its wear logs.
	it, _ := repo.GetItem(context.Background(), e.db, a.ID, u.ID)
	if it.LastWorn == nil {
		t.Fatalf("last_worn must survive wear log deletion")
	}
}
