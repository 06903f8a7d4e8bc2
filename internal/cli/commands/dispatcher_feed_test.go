package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Closetly/internal/config"
)

func TestDispatcher_HelpAndUnknown(t *testing.T) {
	// зарегистрированы login/register/feed/offer и прочие из init()
	out := withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{}) })
	if !strings.Contains(out, "Closetly CLI") {
		t.Fatalf("global help expected")
	}

	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"help"}) })
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("usage expected")
	}

	code := Dispatch(context.Background(), &config.Config{}, []string{"help", "login"})
	if code != 0 {
		t.Fatalf("expected 0 for help login, got %d", code)
	}

	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"help", "nope"}) })
	if !strings.Contains(out, "Unknown command") {
		t.Fatalf("unknown command message expected")
	}

	code = Dispatch(context.Background(), &config.Config{}, []string{"no-such"})
	if code != 2 {
		t.Fatalf("expected 2 for unknown command, got %d", code)
	}
}

func TestDispatcher_RunPaths(t *testing.T) {
	// зарегистрируем временную команду
	cmdOK := fakeCmd{name: "x", usage: "x", desc: "", run: func(_ context.Context, _ *config.Config, _ []string) error { return nil }}
	RegisterCmd(cmdOK)
	if code := Dispatch(context.Background(), &config.Config{}, []string{"x"}); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	cmdUsage := fakeCmd{name: "u", usage: "u <arg>", desc: "", run: func(_ context.Context, _ *config.Config, _ []string) error { return ErrUsage }}
	RegisterCmd(cmdUsage)
	out := withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"u"}) })
	if !strings.Contains(out, "Usage: u <arg>") {
		t.Fatalf("usage text expected")
	}

	cmdErr := fakeCmd{name: "e", usage: "e", desc: "", run: func(_ context.Context, _ *config.Config, _ []string) error { return fmt.Errorf("boom") }}
	RegisterCmd(cmdErr)
	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"e"}) })
	if !strings.Contains(out, "Error: boom") {
		t.Fatalf("error line expected, got: %s", out)
	}
}

func TestFeed_Run(t *testing.T) {
	withTempConfig(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/feed") {
			t.Fatalf("path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("scope") != "friends" || r.URL.Query().Get("mode") != "chronological" {
			t.Fatalf("query: %s", r.URL.RawQuery)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"posts":[{"id":"p1","item_id":"i1","giver":"amy","story":"куртка нашла дом","likes":3,"comments_count":1}]}`))
	}))
	defer ts.Close()

	cfg := &config.Config{ServerURL: ts.URL}
	out := withStdoutCapture(t, func() {
		if err := (feedCmd{}).Run(context.Background(), cfg, []string{"-scope", "friends"}); err != nil {
			t.Fatalf("feed failed: %v", err)
		}
	})
	if !strings.Contains(out, "p1") || !strings.Contains(out, "Всего: 1") {
		t.Fatalf("feed output unexpected: %s", out)
	}

	// 401 без токена трактуем как «не залогинен»
	ts401 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer ts401.Close()
	if err := (feedCmd{}).Run(context.Background(), &config.Config{ServerURL: ts401.URL}, nil); err == nil {
		t.Fatalf("feed should fail when not logged in")
	}
}

func TestOffer_UsageErrors(t *testing.T) {
	withTempConfig(t)
	cfg := &config.Config{ServerURL: "http://127.0.0.1:0"}

	if err := (offerCmd{}).Run(context.Background(), cfg, nil); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
	// lend без срока
	if err := (offerCmd{}).Run(context.Background(), cfg, []string{"item-1", "lend"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage for lend without duration, got %v", err)
	}
	// swap без встречной вещи
	if err := (offerCmd{}).Run(context.Background(), cfg, []string{"item-1", "swap"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage for swap without item, got %v", err)
	}
}
