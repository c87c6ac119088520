package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := DefaultClientConfig("test-token")
	config.BaseURL = server.URL
	config.Timeout = 5 * time.Second
	config.RetryAttempts = 0
	return NewClient(config)
}

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":     true,
			"result": map[string]any{"message_id": 7, "chat": map[string]any{"id": 99}},
		})
	})

	msg, err := client.SendMessage(context.Background(), SendMessageParams{
		ChatID: 99,
		Text:   "salom",
		ReplyMarkup: &InlineKeyboardMarkup{
			InlineKeyboard: [][]InlineKeyboardButton{
				{{Text: "📊 Statistika", CallbackData: "statistics"}},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "salom", gotBody["text"])
	assert.Equal(t, int64(7), msg.MessageID)
	assert.NotNil(t, gotBody["reply_markup"])
}

func TestAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":          false,
			"error_code":  400,
			"description": "Bad Request: message not found",
		})
	})

	_, err := client.EditMessageText(context.Background(), 1, 2, "text", "", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.Code)
}

func TestCallAPIRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"ok": false, "error_code": 502, "description": "Bad Gateway",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok": true, "result": map[string]any{"id": 1, "is_bot": true, "first_name": "grupa247"},
		})
	}))
	t.Cleanup(server.Close)

	config := DefaultClientConfig("test-token")
	config.BaseURL = server.URL
	config.RetryAttempts = 3
	config.RetryDelay = time.Millisecond
	client := NewClient(config)

	user, err := client.GetMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, "grupa247", user.FirstName)
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(&APIError{Code: 429}))
	assert.True(t, isRetryableError(&APIError{Code: 500}))
	assert.True(t, isRetryableError(&APIError{Code: 502}))
	assert.False(t, isRetryableError(&APIError{Code: 400}))
	assert.False(t, isRetryableError(&APIError{Code: 403}))
	assert.True(t, isRetryableError(errors.New("dial tcp: connection refused")))
	assert.False(t, isRetryableError(nil))
}

func TestExtractCommand(t *testing.T) {
	msg := &Message{
		Text: "/start",
		Entities: []MessageEntity{
			{Type: "bot_command", Offset: 0, Length: 6},
		},
	}
	assert.Equal(t, "start", ExtractCommand(msg))

	withBotName := &Message{
		Text: "/start@grupa247_bot",
		Entities: []MessageEntity{
			{Type: "bot_command", Offset: 0, Length: 19},
		},
	}
	assert.Equal(t, "start", ExtractCommand(withBotName))

	assert.Equal(t, "", ExtractCommand(&Message{Text: "salom"}))
	assert.Equal(t, "", ExtractCommand(nil))
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "aida_k", (&User{Username: "aida_k", FirstName: "Aida"}).DisplayName())
	assert.Equal(t, "Aida K", (&User{FirstName: "Aida", LastName: "K"}).DisplayName())
	assert.Equal(t, "Aida", (&User{FirstName: "Aida"}).DisplayName())
}
