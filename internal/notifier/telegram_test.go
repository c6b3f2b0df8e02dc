package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type sentMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type fakeTelegram struct {
	mu       sync.Mutex
	sent     []sentMessage
	failures int
	failAt   int // fail the failAt-th sendMessage request once
	requests int
	updates  string
	served   bool
}

func (f *fakeTelegram) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		switch {
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			f.requests++
			if f.failures > 0 || f.requests == f.failAt {
				if f.failures > 0 {
					f.failures--
				}
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"ok":false}`))
				return
			}
			var m sentMessage
			if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
				t.Errorf("decode sendMessage: %v", err)
			}
			f.sent = append(f.sent, m)
			w.Write([]byte(`{"ok":true}`))
		case strings.HasSuffix(r.URL.Path, "/getUpdates"):
			if f.served {
				w.Write([]byte(`{"ok":true,"result":[]}`))
				return
			}
			f.served = true
			w.Write([]byte(f.updates))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func (f *fakeTelegram) messages() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.sent...)
}

func newTestNotifier(t *testing.T, fake *fakeTelegram) *TelegramNotifier {
	t.Helper()
	srv := httptest.NewServer(fake.handler(t))
	t.Cleanup(srv.Close)
	n := NewTelegramNotifier("TOKEN", "100", "", zerolog.Nop())
	n.APIBase = srv.URL
	return n
}

func TestSend_DefaultChat(t *testing.T) {
	fake := &fakeTelegram{}
	n := newTestNotifier(t, fake)

	if err := n.Send(context.Background(), "<b>hi</b>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := fake.messages()
	if len(got) != 1 || got[0].ChatID != "100" || got[0].ParseMode != "HTML" || got[0].Text != "<b>hi</b>" {
		t.Errorf("unexpected messages: %+v", got)
	}
}

func TestSendTo_RequiresChat(t *testing.T) {
	n := newTestNotifier(t, &fakeTelegram{})
	if err := n.SendTo(context.Background(), "", "x"); err == nil {
		t.Error("expected error without chat id")
	}
}

func TestSendWithRetry_RecoversAfterFailure(t *testing.T) {
	fake := &fakeTelegram{failures: 1}
	n := newTestNotifier(t, fake)

	start := time.Now()
	if err := n.SendWithRetry(context.Background(), "7", "retry me", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Since(start) < time.Second {
		t.Error("expected one backoff before the retry")
	}
	if got := fake.messages(); len(got) != 1 || got[0].ChatID != "7" {
		t.Errorf("unexpected messages: %+v", got)
	}
}

func TestSendWithRetry_Exhausted(t *testing.T) {
	fake := &fakeTelegram{failures: 5}
	n := newTestNotifier(t, fake)
	if err := n.SendWithRetry(context.Background(), "7", "nope", 0); err == nil {
		t.Error("expected error after exhausting retries")
	}
}

func TestSendWithRetry_ResendsOnlyFailedChunk(t *testing.T) {
	fake := &fakeTelegram{failAt: 2}
	n := newTestNotifier(t, fake)

	first := strings.Repeat("a", 3000)
	second := strings.Repeat("b", 3000)
	if err := n.SendWithRetry(context.Background(), "7", first+"\n\n"+second, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := fake.messages()
	if len(got) != 2 {
		t.Fatalf("expected 2 delivered chunks, got %d", len(got))
	}
	if got[0].Text != first || got[1].Text != second {
		t.Errorf("chunks delivered out of order or duplicated")
	}
}

func TestSplitMessage(t *testing.T) {
	para := strings.Repeat("a", 30)
	text := para + "\n\n" + para + "\n\n" + para
	parts := splitMessage(text, 70)
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d: %q", len(parts), parts)
	}
	if parts[0] != para+"\n\n"+para || parts[1] != para {
		t.Errorf("expected split on paragraph boundary, got %q", parts)
	}

	long := strings.Repeat("₹", 10) // 3 bytes each
	for _, p := range splitMessage(long, 8) {
		if !strings.HasPrefix(p, "₹") || len(p)%3 != 0 {
			t.Errorf("split inside a rune: %q", p)
		}
	}

	if got := splitMessage("short", 4096); len(got) != 1 || got[0] != "short" {
		t.Errorf("short text should not be split: %q", got)
	}
}

func TestStartPolling_RepliesToOriginatingChat(t *testing.T) {
	fake := &fakeTelegram{updates: `{"ok":true,"result":[
		{"update_id":5,"message":{"text":"  price AAPL ","chat":{"id":-9001}}},
		{"update_id":6,"message":{"text":"","chat":{"id":1}}}]}`}
	n := newTestNotifier(t, fake)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var gotChat, gotText string
	done := make(chan struct{})
	go func() {
		n.StartPolling(ctx, func(_ context.Context, chatID, text string) string {
			gotChat, gotText = chatID, text
			return "answer"
		})
		close(done)
	}()

	deadline := time.After(3 * time.Second)
	for len(fake.messages()) == 0 {
		select {
		case <-deadline:
			t.Fatal("no reply sent")
		case <-time.After(10 * time.Millisecond):
		}
	}
	cancel()
	<-done

	if gotChat != "-9001" || gotText != "price AAPL" {
		t.Errorf("handler got chat %q text %q", gotChat, gotText)
	}
	if m := fake.messages()[0]; m.ChatID != "-9001" || m.Text != "answer" {
		t.Errorf("reply went to the wrong chat: %+v", m)
	}
}
