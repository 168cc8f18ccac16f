package outbound

import (
	"context"
	"net/http"
	"testing"
)

// These tests swap the process-wide client and must not run in parallel.

func TestPackageFunctions_BeforeInit(t *testing.T) {
	defaultClient.Store(nil)

	ctx := context.Background()
	results := []Result{
		Identify(ctx, StringID("u1"), UserInfo{}),
		Alias(ctx, StringID("u1"), StringID("u0")),
		Track(ctx, Event{UserID: StringID("u1"), Name: "purchase"}),
		Register(ctx, APNS, StringID("u1"), "token"),
		Disable(ctx, APNS, StringID("u1"), "token"),
		DisableAll(ctx, APNS, StringID("u1")),
		Subscribe(ctx, StringID("u1"), true, nil),
		Unsubscribe(ctx, StringID("u1"), true, nil),
	}

	for i, res := range results {
		if !res.InitError() {
			t.Errorf("call %d: expected init error, got %v", i, res.Err)
		}
	}
}

func TestPackageFunctions_AfterInit(t *testing.T) {
	server, captured, calls := newTestServer(t, http.StatusOK, "")
	t.Cleanup(func() { defaultClient.Store(nil) })

	Init("pkg-key", LevelOff, WithBaseURL(server.URL))

	if Default() == nil || Default().BaseURL() != server.URL {
		t.Fatal("expected Init to install a client for the test server")
	}

	ctx := context.Background()

	if res := Track(ctx, Event{UserID: IDFrom([]int{1, 2}), Name: "purchase"}); !res.UserIDError() {
		t.Errorf("expected user ID error, got %v", res.Err)
	}

	if calls.Load() != 0 {
		t.Fatal("expected invalid call not to reach the server")
	}

	res := Identify(ctx, StringID("u1"), UserInfo{})
	if !res.Success() {
		t.Fatalf("expected success, got %v", res.Err)
	}

	if captured.header.Get("X-Outbound-Key") != "pkg-key" {
		t.Errorf("expected API key from Init, got %s", captured.header.Get("X-Outbound-Key"))
	}

	Init("second-key", LevelOff, WithBaseURL(server.URL))

	if res := Subscribe(ctx, StringID("u1"), true, nil); !res.Success() {
		t.Fatalf("expected success, got %v", res.Err)
	}

	if captured.header.Get("X-Outbound-Key") != "second-key" {
		t.Errorf("expected re-initialized API key, got %s", captured.header.Get("X-Outbound-Key"))
	}
}
