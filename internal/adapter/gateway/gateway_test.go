package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"study-assistant/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

func TestNewGeminiGateway_Validation(t *testing.T) {
	_, err := NewGeminiGateway(context.Background(), "", "gemini-2.5-flash", 0)
	assert.Error(t, err)
	_, err = NewGeminiGateway(context.Background(), "k", "", 0)
	assert.Error(t, err)
}

type fakeModel struct {
	resp     *llms.ContentResponse
	err      error
	block    bool
	messages []llms.MessageContent
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.resp, f.err
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestLangchainGateway_Generate(t *testing.T) {
	model := &fakeModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "answer"}}}}
	gw := NewLangchainGateway(model)

	out, err := gw.Generate(context.Background(), "question")
	require.NoError(t, err)
	assert.Equal(t, "answer", out)
	require.Len(t, model.messages, 1)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.messages[0].Role)
}

func TestLangchainGateway_EmptyAndError(t *testing.T) {
	gw := NewLangchainGateway(&fakeModel{resp: &llms.ContentResponse{}})
	out, err := gw.Generate(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "", out)

	boom := errors.New("connection refused")
	gw = NewLangchainGateway(&fakeModel{err: boom})
	_, err = gw.Generate(context.Background(), "q")
	assert.ErrorIs(t, err, boom)
}

func TestLangchainGateway_NoContentResponse(t *testing.T) {
	gw := NewLangchainGateway(&fakeModel{})
	out, err := gw.Generate(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestLangchainGateway_Timeout(t *testing.T) {
	gw := NewLangchainGateway(&fakeModel{block: true}).WithTimeout(50 * time.Millisecond)

	_, err := gw.Generate(context.Background(), "q")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNew_SelectsProvider(t *testing.T) {
	ctx := context.Background()

	gw, err := New(ctx, config.LLMConfig{Provider: "gemini", APIKey: "k", Model: "gemini-2.5-flash"})
	require.NoError(t, err)
	assert.IsType(t, &LangchainGateway{}, gw)

	gw, err = New(ctx, config.LLMConfig{Provider: "ollama", Model: "llama3", OllamaURL: "http://localhost:11434", Timeout: time.Second})
	require.NoError(t, err)
	require.IsType(t, &LangchainGateway{}, gw)
	assert.Equal(t, time.Second, gw.(*LangchainGateway).timeout)

	gw, err = New(ctx, config.LLMConfig{Provider: "gemini", Model: "gemini-2.5-flash"})
	assert.Error(t, err)
	assert.Nil(t, gw)

	_, err = New(ctx, config.LLMConfig{Provider: "unknown"})
	assert.Error(t, err)
}
