package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/translate-service/internal/domain/dto"
	"github.com/guttosm/translate-service/internal/mocks"
	"github.com/guttosm/translate-service/internal/translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouterWithMock(t *testing.T) (*gin.Engine, *mocks.MockTranslationService) {
	mockService := mocks.NewMockTranslationService(t)
	handler := NewHandler(mockService)
	healthHandler := NewHealthHandler()
	return NewRouter(handler, healthHandler, DefaultRouterConfig()), mockService
}

func postTranslate(router *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/translate/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTranslate_Success(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		sentence    string
		direction   bool
		translation string
	}{
		{
			name:        "choice true translates to secondary",
			body:        `{"sentence": "Hello", "choice": true}`,
			sentence:    "Hello",
			direction:   true,
			translation: "สวัสดี",
		},
		{
			name:        "choice false translates to primary",
			body:        `{"sentence": "สวัสดี", "choice": false}`,
			sentence:    "สวัสดี",
			direction:   false,
			translation: "Hello",
		},
		{
			name:        "empty sentence is forwarded",
			body:        `{"sentence": "", "choice": true}`,
			sentence:    "",
			direction:   true,
			translation: "",
		},
		{
			name:        "unknown fields are ignored",
			body:        `{"sentence": "Hi", "choice": true, "extra": 1}`,
			sentence:    "Hi",
			direction:   true,
			translation: "หวัดดี",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := setupRouterWithMock(t)
			mockService.On("Translate", mock.Anything, tt.sentence, tt.direction).
				Return(translator.Result{TranslatedText: tt.translation}, nil).Once()

			w := postTranslate(router, tt.body, nil)

			require.Equal(t, http.StatusOK, w.Code)
			var resp dto.TranslationResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.translation, resp.Translation)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestTranslate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantLocs [][]string
		wantType string
	}{
		{
			name:     "missing sentence",
			body:     `{"choice": true}`,
			wantLocs: [][]string{{"body", "sentence"}},
			wantType: dto.ErrTypeMissing,
		},
		{
			name:     "missing choice",
			body:     `{"sentence": "Hello"}`,
			wantLocs: [][]string{{"body", "choice"}},
			wantType: dto.ErrTypeMissing,
		},
		{
			name:     "missing both fields",
			body:     `{}`,
			wantLocs: [][]string{{"body", "sentence"}, {"body", "choice"}},
			wantType: dto.ErrTypeMissing,
		},
		{
			name:     "null body",
			body:     `null`,
			wantLocs: [][]string{{"body", "sentence"}, {"body", "choice"}},
			wantType: dto.ErrTypeMissing,
		},
		{
			name:     "choice is not a boolean",
			body:     `{"sentence": "Hello", "choice": "yes"}`,
			wantLocs: [][]string{{"body", "choice"}},
			wantType: dto.ErrTypeBool,
		},
		{
			name:     "sentence is not a string",
			body:     `{"sentence": 42, "choice": true}`,
			wantLocs: [][]string{{"body", "sentence"}},
			wantType: dto.ErrTypeString,
		},
		{
			name:     "malformed JSON",
			body:     `{"sentence": "Hello", "choice": tru`,
			wantLocs: [][]string{{"body"}},
			wantType: dto.ErrTypeJSONDecode,
		},
		{
			name:     "invalid JSON syntax",
			body:     `{sentence: Hello}`,
			wantLocs: [][]string{{"body"}},
			wantType: dto.ErrTypeJSONDecode,
		},
		{
			name:     "empty body",
			body:     ``,
			wantLocs: [][]string{{"body"}},
			wantType: dto.ErrTypeJSONDecode,
		},
		{
			name:     "body is not an object",
			body:     `["Hello", true]`,
			wantLocs: [][]string{{"body"}},
			wantType: dto.ErrTypeInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any call to the service fails the test.
			router, _ := setupRouterWithMock(t)

			w := postTranslate(router, tt.body, nil)

			require.Equal(t, http.StatusUnprocessableEntity, w.Code)
			var resp dto.ValidationErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Len(t, resp.Detail, len(tt.wantLocs))

			locs := make([][]string, 0, len(resp.Detail))
			for _, fe := range resp.Detail {
				locs = append(locs, fe.Loc)
				assert.Equal(t, tt.wantType, fe.Type)
				assert.NotEmpty(t, fe.Msg)
			}
			assert.ElementsMatch(t, tt.wantLocs, locs)
		})
	}
}

func TestTranslate_ValidationMessagesLocalized(t *testing.T) {
	tests := []struct {
		name           string
		acceptLanguage string
		wantMsg        string
	}{
		{name: "default locale", acceptLanguage: "", wantMsg: "field required"},
		{name: "english", acceptLanguage: "en-US,en;q=0.9", wantMsg: "field required"},
		{name: "thai", acceptLanguage: "th-TH,th;q=0.9", wantMsg: "จำเป็นต้องระบุฟิลด์นี้"},
		{name: "unsupported falls back to english", acceptLanguage: "fr", wantMsg: "field required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupRouterWithMock(t)

			headers := map[string]string{}
			if tt.acceptLanguage != "" {
				headers["Accept-Language"] = tt.acceptLanguage
			}
			w := postTranslate(router, `{"choice": false}`, headers)

			require.Equal(t, http.StatusUnprocessableEntity, w.Code)
			var resp dto.ValidationErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Len(t, resp.Detail, 1)
			assert.Equal(t, tt.wantMsg, resp.Detail[0].Msg)
		})
	}
}

func TestTranslate_GatewayFailure(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantDetail string
	}{
		{
			name:       "failure from gateway",
			err:        &translator.Failure{Err: errors.New("google: connection refused")},
			wantDetail: "Translation failed: google: connection refused",
		},
		{
			name:       "wrapped failure",
			err:        errors.Join(&translator.Failure{Err: errors.New("rate limited")}),
			wantDetail: "Translation failed: rate limited",
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantDetail: "Translation failed: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := setupRouterWithMock(t)
			mockService.On("Translate", mock.Anything, "Hello", true).
				Return(translator.Result{}, tt.err).Once()

			w := postTranslate(router, `{"sentence": "Hello", "choice": true}`, nil)

			require.Equal(t, http.StatusInternalServerError, w.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantDetail, resp.Detail)
		})
	}
}

func TestTranslate_RecoversAfterFailure(t *testing.T) {
	router, mockService := setupRouterWithMock(t)
	mockService.On("Translate", mock.Anything, "first", true).
		Return(translator.Result{}, &translator.Failure{Err: errors.New("upstream down")}).Once()
	mockService.On("Translate", mock.Anything, "second", true).
		Return(translator.Result{TranslatedText: "ที่สอง"}, nil).Once()

	w := postTranslate(router, `{"sentence": "first", "choice": true}`, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = postTranslate(router, `{"sentence": "second", "choice": true}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"translation": "ที่สอง"}`, w.Body.String())
}

func TestTranslate_IdenticalRequests(t *testing.T) {
	router, mockService := setupRouterWithMock(t)
	mockService.On("Translate", mock.Anything, "Hello", false).
		Return(translator.Result{TranslatedText: "Hello"}, nil).Times(2)

	first := postTranslate(router, `{"sentence": "Hello", "choice": false}`, nil)
	second := postTranslate(router, `{"sentence": "Hello", "choice": false}`, nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestTranslate_ConcurrentRequests(t *testing.T) {
	router, mockService := setupRouterWithMock(t)
	mockService.On("Translate", mock.Anything, "Hello", true).
		Return(translator.Result{TranslatedText: "สวัสดี"}, nil)

	const n = 20
	var wg sync.WaitGroup
	codes := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = postTranslate(router, `{"sentence": "Hello", "choice": true}`, nil).Code
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
	mockService.AssertNumberOfCalls(t, "Translate", n)
}

func TestTranslate_WithGateway(t *testing.T) {
	provider := mocks.NewMockProvider(t)
	provider.On("Translate", mock.Anything, "Hello", "th").Return("สวัสดี", nil).Once()
	provider.On("Translate", mock.Anything, "Hello", "en").Return("", errors.New("quota exceeded")).Once()

	gateway := translator.NewGateway(provider, translator.DefaultLanguageTable())
	router := NewRouter(NewHandler(gateway), NewHealthHandler(), DefaultRouterConfig())

	w := postTranslate(router, `{"sentence": "Hello", "choice": true}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"translation": "สวัสดี"}`, w.Body.String())

	w = postTranslate(router, `{"sentence": "Hello", "choice": false}`, nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Detail, "quota exceeded")
}

func Test_statusForError(t *testing.T) {
	status, body := statusForError(&translator.Failure{Err: errors.New("timeout")})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, dto.ErrorResponse{Detail: "Translation failed: timeout"}, body)
}
