package importer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flashrecipe/internal/domain"
	"flashrecipe/internal/logger"
)

// fakeChat records the messages it was sent and returns a canned reply.
type fakeChat struct {
	reply    string
	err      error
	messages []Message
}

func (f *fakeChat) Chat(_ context.Context, messages []Message) (string, error) {
	f.messages = messages
	return f.reply, f.err
}

func newImporter(t *testing.T, chat ChatClient) *Importer {
	t.Helper()
	return New(chat, logger.New(logger.LevelOff, nil))
}

func TestImportFencedJSON(t *testing.T) {
	chat := &fakeChat{reply: "```json\n{\"title\":\"X\",\"servings\":2}\n```"}
	imp := newImporter(t, chat)

	draft, err := imp.Import(context.Background(), Input{Text: "some recipe"})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if draft.Title != "X" {
		t.Fatalf("expected title X, got %q", draft.Title)
	}
	if draft.Servings == nil || *draft.Servings != 2 {
		t.Fatalf("expected servings 2, got %v", draft.Servings)
	}
	if draft.PrepMin != nil || draft.Description != nil || len(draft.Steps) != 0 {
		t.Fatalf("unspecified fields should stay absent: %+v", draft)
	}
}

func TestImportTextOnlyPrompt(t *testing.T) {
	chat := &fakeChat{reply: `{"title":"Soup"}`}
	imp := newImporter(t, chat)

	if _, err := imp.Import(context.Background(), Input{Text: "tomato soup"}); err != nil {
		t.Fatalf("import: %v", err)
	}

	if len(chat.messages) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(chat.messages))
	}
	if chat.messages[0].Role != RoleSystem {
		t.Fatalf("expected system message first, got %q", chat.messages[0].Role)
	}
	user := chat.messages[1]
	if len(user.Content) != 1 || !strings.HasPrefix(user.Content[0].Text, "Recipe Text:") {
		t.Fatalf("unexpected user content: %+v", user.Content)
	}
}

func TestImportFailures(t *testing.T) {
	tests := []struct {
		name  string
		chat  *fakeChat
		input Input
	}{
		{"collaborator error", &fakeChat{err: errors.New("boom")}, Input{Text: "x"}},
		{"non-JSON reply", &fakeChat{reply: "Sorry, I can't do that."}, Input{Text: "x"}},
		{"empty input", &fakeChat{reply: "{}"}, Input{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imp := newImporter(t, tt.chat)
			_, err := imp.Import(context.Background(), tt.input)
			if !errors.Is(err, domain.ErrImportFailed) {
				t.Fatalf("expected ErrImportFailed, got %v", err)
			}
		})
	}
}

func TestImportSkipsUnreachableImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "bad") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("not-really-a-png"))
	}))
	defer srv.Close()

	chat := &fakeChat{reply: `{"title":"From Photo"}`}
	imp := newImporter(t, chat)

	draft, err := imp.Import(context.Background(), Input{
		Text:   "extra notes",
		Images: []string{srv.URL + "/good.png", srv.URL + "/bad.png", "/no/such/file.jpg"},
	})
	if err != nil {
		t.Fatalf("import should tolerate per-image failures: %v", err)
	}
	if draft.Title != "From Photo" {
		t.Fatalf("unexpected draft: %+v", draft)
	}

	// Exactly one image survived, and the text became appended notes.
	user := chat.messages[1]
	var images, notes int
	for _, c := range user.Content {
		switch {
		case c.Type == "image_url":
			images++
			if !strings.HasPrefix(c.ImageURL.URL, "data:image/png;base64,") {
				t.Fatalf("expected inline data URL, got %q", c.ImageURL.URL[:30])
			}
		case strings.HasPrefix(c.Text, "Additional notes:"):
			notes++
		}
	}
	if images != 1 || notes != 1 {
		t.Fatalf("expected 1 image + 1 notes part, got %d/%d: %+v", images, notes, user.Content)
	}
}

func TestImportAllImagesFailWithoutText(t *testing.T) {
	chat := &fakeChat{reply: `{}`}
	imp := newImporter(t, chat)

	_, err := imp.Import(context.Background(), Input{Images: []string{"/nope.png"}})
	if !errors.Is(err, domain.ErrImportFailed) {
		t.Fatalf("expected ErrImportFailed when nothing is usable, got %v", err)
	}
}

func TestImportDropsCollaboratorID(t *testing.T) {
	chat := &fakeChat{reply: `{"id":"evil-override","title":"X"}`}
	imp := newImporter(t, chat)

	draft, err := imp.Import(context.Background(), Input{Text: "x"})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if draft.ID != "" {
		t.Fatalf("collaborator-supplied ID must be discarded, got %q", draft.ID)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFence(tt.in); got != tt.want {
				t.Fatalf("StripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
