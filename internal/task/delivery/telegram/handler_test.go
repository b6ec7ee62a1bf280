package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/task"
	pkgTelegram "task-tracker/pkg/telegram"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// mockUseCase echoes each line back and records what it was given.
type mockUseCase struct {
	mu    sync.Mutex
	lines []string
	err   error
}

func (m *mockUseCase) Start(ctx context.Context) task.StartOutput { return task.StartOutput{} }

func (m *mockUseCase) Execute(ctx context.Context, input task.ExecuteInput) (task.ExecuteOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return task.ExecuteOutput{}, m.err
	}
	m.lines = append(m.lines, input.Line)
	return task.ExecuteOutput{Reply: "ok: " + input.Line}, nil
}

func (m *mockUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	return task.ListOutput{}, nil
}

func (m *mockUseCase) received() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.lines...)
}

// sentMessages collects sendMessage payloads from the fake Telegram API.
type sentMessages struct {
	mu   sync.Mutex
	text []string
}

func (s *sentMessages) add(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = append(s.text, text)
}

func (s *sentMessages) wait(t *testing.T, atLeast int) []string {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for {
		s.mu.Lock()
		got := append([]string(nil), s.text...)
		s.mu.Unlock()
		if len(got) >= atLeast || time.Now().After(deadline) {
			return got
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func newTestEnv(t *testing.T, uc task.UseCase) (*gin.Engine, *sentMessages) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sent := &sentMessages{}
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			var payload pkgTelegram.SendMessageRequest
			_ = json.NewDecoder(r.Body).Decode(&payload)
			sent.add(payload.Text)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	engine := gin.New()
	h := New(&mockLogger{}, uc, bot)
	engine.POST("/webhook/telegram", h.HandleWebhook)
	return engine, sent
}

func sendWebhook(engine *gin.Engine, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func textUpdate(text string) []byte {
	body, _ := json.Marshal(pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456},
			Text:      text,
		},
	})
	return body
}

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	engine, _ := newTestEnv(t, &mockUseCase{})

	w := sendWebhook(engine, []byte("{bad json"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	engine, _ := newTestEnv(t, &mockUseCase{})

	body, _ := json.Marshal(pkgTelegram.Update{UpdateID: 1})
	w := sendWebhook(engine, body)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ignored") {
		t.Errorf("expected ignored status, got %s", w.Body.String())
	}
}

func TestHandleWebhook_Help(t *testing.T) {
	for _, cmd := range []string{"/start", "/help"} {
		t.Run(cmd, func(t *testing.T) {
			uc := &mockUseCase{}
			engine, sent := newTestEnv(t, uc)

			if w := sendWebhook(engine, textUpdate(cmd)); w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			msgs := sent.wait(t, 1)
			if len(msgs) != 1 || !strings.Contains(msgs[0], "deadline <description> /by <date>") {
				t.Errorf("expected help text, got %v", msgs)
			}
			if len(uc.received()) != 0 {
				t.Errorf("help must not reach the session")
			}
		})
	}
}

func TestHandleWebhook_RunsEachLine(t *testing.T) {
	uc := &mockUseCase{}
	engine, sent := newTestEnv(t, uc)

	sendWebhook(engine, textUpdate("todo read book\r\n\n  \nmark 1"))

	msgs := sent.wait(t, 1)
	if len(msgs) != 1 {
		t.Fatalf("expected one reply message, got %v", msgs)
	}
	if msgs[0] != "ok: todo read book\n\nok: mark 1" {
		t.Errorf("unexpected reply %q", msgs[0])
	}
	got := uc.received()
	if len(got) != 2 || got[0] != "todo read book" || got[1] != "mark 1" {
		t.Errorf("unexpected lines %q", got)
	}
}

func TestHandleWebhook_UseCaseFailure(t *testing.T) {
	engine, sent := newTestEnv(t, &mockUseCase{err: context.Canceled})

	sendWebhook(engine, textUpdate("list"))

	msgs := sent.wait(t, 1)
	if len(msgs) != 1 || msgs[0] != failureText {
		t.Errorf("expected failure notice, got %v", msgs)
	}
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name string
		text string
		size int
		want []string
	}{
		{name: "fits", text: "abc", size: 5, want: []string{"abc"}},
		{name: "cut at newline", text: "ab\ncd\nef", size: 6, want: []string{"ab\ncd", "ef"}},
		{name: "hard cut", text: "abcdefgh", size: 3, want: []string{"abc", "def", "gh"}},
		{name: "multibyte", text: "ééééé", size: 2, want: []string{"éé", "éé", "é"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chunk(tt.text, tt.size)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("chunk(%q, %d) = %q, want %q", tt.text, tt.size, got, tt.want)
			}
		})
	}
}
