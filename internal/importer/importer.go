package importer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"flashrecipe/internal/domain"
	"flashrecipe/internal/logger"
)

// Input is the raw material for one import: free text, image
// references, or both. An image reference is an http(s) URL or a local
// file path.
type Input struct {
	Text   string
	Images []string
}

// ChatClient is the slice of Client the importer needs. Tests swap in a
// canned implementation.
type ChatClient interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

// Option configures the Importer.
type Option func(*Importer)

// WithImageTimeout bounds each individual image fetch.
func WithImageTimeout(d time.Duration) Option {
	return func(i *Importer) { i.fetchClient.Timeout = d }
}

// WithImageFetcher replaces the HTTP client used for image URLs.
func WithImageFetcher(c *http.Client) Option {
	return func(i *Importer) { i.fetchClient = c }
}

// Importer produces a RecipeDraft from raw input via the generation
// collaborator. It persists nothing; the caller decides what to do with
// the draft.
type Importer struct {
	client      ChatClient
	log         *logger.Logger
	fetchClient *http.Client
}

// New creates an importer backed by the given chat client.
func New(client ChatClient, log *logger.Logger, opts ...Option) *Importer {
	imp := &Importer{
		client:      client,
		log:         log,
		fetchClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// Import runs a single parse attempt. Individual images that cannot be
// fetched or read are skipped; the operation only fails when the
// collaborator call fails or its reply is not valid JSON. Every failure
// wraps domain.ErrImportFailed.
func (i *Importer) Import(ctx context.Context, input Input) (*domain.RecipeDraft, error) {
	parts := i.imageParts(ctx, input.Images)

	switch {
	case len(parts) > 0 && input.Text != "":
		parts = append(parts, TextContent("Additional notes: "+input.Text))
	case len(parts) > 0:
		// Images only.
	case input.Text != "":
		parts = append(parts, TextContent("Recipe Text:\n"+input.Text))
	default:
		return nil, fmt.Errorf("%w: no text and no readable images", domain.ErrImportFailed)
	}

	messages := []Message{
		{Role: RoleSystem, Content: []Content{TextContent(ParsePrompt)}},
		{Role: RoleUser, Content: parts},
	}

	reply, err := i.client.Chat(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFailed, err)
	}

	raw := StripCodeFence(reply)
	var draft domain.RecipeDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		i.log.Error("importer: unparseable reply: %v", err)
		return nil, fmt.Errorf("%w: parsing reply: %v", domain.ErrImportFailed, err)
	}

	// The collaborator has no business assigning identity.
	draft.ID = ""
	i.log.Info("imported draft %q (%d ingredients, %d steps)",
		draft.Title, len(draft.Ingredients), len(draft.Steps))
	return &draft, nil
}

// imageParts loads each image reference independently. Failures are
// logged and the image skipped; a missing photo should not kill the
// whole import.
func (i *Importer) imageParts(ctx context.Context, refs []string) []Content {
	var parts []Content
	for _, ref := range refs {
		mime, data, err := i.loadImage(ctx, ref)
		if err != nil {
			i.log.Warn("importer: skipping image %s: %v", ref, err)
			continue
		}
		parts = append(parts, InlineImageContent(mime, data))
	}
	return parts
}

func (i *Importer) loadImage(ctx context.Context, ref string) (string, []byte, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return i.fetchImage(ctx, ref)
	}
	return readImageFile(ref)
}

func (i *Importer) fetchImage(ctx context.Context, url string) (string, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", nil, err
	}
	resp, err := i.fetchClient.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, errors.New(resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, err
	}

	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = "image/jpeg"
	}
	return mime, data, nil
}

func readImageFile(path string) (string, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	return sniffMIME(path, data), data, nil
}

func sniffMIME(path string, data []byte) string {
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".png"):
		return "image/png"
	case strings.HasSuffix(strings.ToLower(path), ".webp"):
		return "image/webp"
	case strings.HasSuffix(strings.ToLower(path), ".gif"):
		return "image/gif"
	default:
		return http.DetectContentType(data)
	}
}

func dataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// StripCodeFence removes markdown code-fence wrappers the model often
// puts around JSON, leaving the raw payload.
func StripCodeFence(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
