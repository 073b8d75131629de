package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"idea-copilot-api/internal/client"
	"idea-copilot-api/internal/domain"
	"idea-copilot-api/internal/dto"
	"idea-copilot-api/internal/response"
)

func TestAIService_GenerateSuggestions(t *testing.T) {
	ideaID := uuid.New()
	ownerID := uuid.New()
	otherID := uuid.New()

	ownedIdea := func(m *MockIdeaRepository) {
		m.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
			return &domain.Idea{
				BaseModel:   domain.BaseModel{ID: ideaID},
				UserID:      ownerID,
				Title:       "Meal planner",
				Description: "Weekly meal plans from pantry contents",
			}, nil
		}
	}

	tests := []struct {
		name        string
		userID      uuid.UUID
		req         *dto.GenerateSuggestionsRequest
		mockIdea    func(*MockIdeaRepository)
		mockGemini  func(*MockGeminiClient)
		wantContent string
		wantRaw     bool
		wantErr     bool
		wantErrCode string
	}{
		{
			name:     "성공: features 제안 생성",
			userID:   ownerID,
			req:      &dto.GenerateSuggestionsRequest{IdeaID: ideaID, SuggestionType: "features"},
			mockIdea: ownedIdea,
			mockGemini: func(m *MockGeminiClient) {
				m.GenerateContentFunc = func(ctx context.Context, prompt string) (*client.GenerateResult, error) {
					if !strings.Contains(prompt, "Meal planner") {
						t.Errorf("prompt should embed the idea title, got %q", prompt[:80])
					}
					return &client.GenerateResult{
						Text:  "```json\n[{\"title\":\"Pantry scan\"}]\n```",
						Model: "gemini-2.0-flash",
					}, nil
				}
			},
			wantContent: `[{"title":"Pantry scan"}]`,
		},
		{
			name:     "성공: JSON 아닌 응답은 raw_response로 감쌈",
			userID:   ownerID,
			req:      &dto.GenerateSuggestionsRequest{IdeaID: ideaID, SuggestionType: "validation"},
			mockIdea: ownedIdea,
			mockGemini: func(m *MockGeminiClient) {
				m.GenerateContentFunc = func(ctx context.Context, prompt string) (*client.GenerateResult, error) {
					return &client.GenerateResult{Text: "Sounds promising overall.", Model: "gemini-2.0-flash"}, nil
				}
			},
			wantRaw: true,
		},
		{
			name:        "실패: 잘못된 제안 타입",
			userID:      ownerID,
			req:         &dto.GenerateSuggestionsRequest{IdeaID: ideaID, SuggestionType: "branding"},
			mockIdea:    ownedIdea,
			mockGemini:  func(m *MockGeminiClient) {},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:     "실패: API 키 미설정",
			userID:   ownerID,
			req:      &dto.GenerateSuggestionsRequest{IdeaID: ideaID, SuggestionType: "features"},
			mockIdea: ownedIdea,
			mockGemini: func(m *MockGeminiClient) {
				m.GenerateContentFunc = func(ctx context.Context, prompt string) (*client.GenerateResult, error) {
					return nil, client.ErrGeminiNotConfigured
				}
			},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:        "실패: 소유자 아님",
			userID:      otherID,
			req:         &dto.GenerateSuggestionsRequest{IdeaID: ideaID, SuggestionType: "features"},
			mockIdea:    ownedIdea,
			mockGemini:  func(m *MockGeminiClient) {},
			wantErr:     true,
			wantErrCode: response.ErrCodeForbidden,
		},
		{
			name:   "실패: 아이디어 없음",
			userID: ownerID,
			req:    &dto.GenerateSuggestionsRequest{IdeaID: ideaID, SuggestionType: "features"},
			mockIdea: func(m *MockIdeaRepository) {
				m.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
					return nil, gorm.ErrRecordNotFound
				}
			},
			mockGemini:  func(m *MockGeminiClient) {},
			wantErr:     true,
			wantErrCode: response.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIdeaRepo := &MockIdeaRepository{}
			mockGemini := &MockGeminiClient{}
			tt.mockIdea(mockIdeaRepo)
			tt.mockGemini(mockGemini)

			var stored *domain.AISuggestion
			var loggedQuery *domain.AIQueryLog
			mockAIRepo := &MockAIRepository{
				CreateSuggestionFunc: func(ctx context.Context, sg *domain.AISuggestion) error {
					stored = sg
					return nil
				},
				CreateQueryLogFunc: func(ctx context.Context, log *domain.AIQueryLog) error {
					loggedQuery = log
					return nil
				},
			}

			service := NewAIService(mockAIRepo, mockIdeaRepo, mockGemini, nil, newTestMetrics(), zap.NewNop())

			got, err := service.GenerateSuggestions(context.Background(), tt.userID, tt.req)

			if tt.wantErr {
				if err == nil {
					t.Errorf("GenerateSuggestions() error = nil, wantErr true")
					return
				}
				var appErr *response.AppError
				if errors.As(err, &appErr) && appErr.Code != tt.wantErrCode {
					t.Errorf("GenerateSuggestions() error code = %v, want %v", appErr.Code, tt.wantErrCode)
				}
				return
			}
			if err != nil {
				t.Errorf("GenerateSuggestions() unexpected error = %v", err)
				return
			}

			if tt.wantRaw {
				var wrapped map[string]string
				if jsonErr := json.Unmarshal([]byte(got.Content), &wrapped); jsonErr != nil || wrapped["raw_response"] == "" {
					t.Errorf("non-JSON model output should be wrapped as raw_response, got %q", got.Content)
				}
			} else if got.Content != tt.wantContent {
				t.Errorf("Content = %q, want %q", got.Content, tt.wantContent)
			}

			if got.ConfidenceScore == nil || *got.ConfidenceScore != 0.85 {
				t.Errorf("ConfidenceScore = %v, want 0.85", got.ConfidenceScore)
			}
			if stored == nil || stored.PromptUsed == nil {
				t.Fatal("suggestion row not stored with its prompt")
			}
			if len(*stored.PromptUsed) > promptStoredLimit {
				t.Errorf("stored prompt length = %d, want <= %d", len(*stored.PromptUsed), promptStoredLimit)
			}
			if loggedQuery == nil {
				t.Fatal("query log row not created")
			}
			if loggedQuery.QueryType != "suggestion_"+tt.req.SuggestionType {
				t.Errorf("QueryType = %q, want %q", loggedQuery.QueryType, "suggestion_"+tt.req.SuggestionType)
			}
			if loggedQuery.TokensUsed == nil || *loggedQuery.TokensUsed == 0 {
				t.Error("tokens should be estimated when the API omits usage metadata")
			}
		})
	}
}

func TestAIService_ApplySuggestion(t *testing.T) {
	suggestionID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name         string
		mockAI       func(*MockAIRepository)
		wantErr      bool
		wantErrCode  string
		wantRecorded bool
	}{
		{
			name: "성공: 적용 및 게이미피케이션 훅",
			mockAI: func(m *MockAIRepository) {
				m.MarkSuggestionAppliedFunc = func(ctx context.Context, sID, uID uuid.UUID) (*domain.AISuggestion, error) {
					return &domain.AISuggestion{
						ID:        sID,
						UserID:    uID,
						IsApplied: true,
					}, nil
				}
			},
			wantRecorded: true,
		},
		{
			name: "실패: 없거나 이미 적용됨",
			mockAI: func(m *MockAIRepository) {
				m.MarkSuggestionAppliedFunc = func(ctx context.Context, sID, uID uuid.UUID) (*domain.AISuggestion, error) {
					return nil, gorm.ErrRecordNotFound
				}
			},
			wantErr:     true,
			wantErrCode: response.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAIRepo := &MockAIRepository{}
			tt.mockAI(mockAIRepo)

			recorded := false
			recorder := &MockSuggestionRecorder{
				RecordSuggestionAppliedFunc: func(ctx context.Context, uID uuid.UUID) {
					recorded = true
				},
			}

			service := NewAIService(mockAIRepo, &MockIdeaRepository{}, &MockGeminiClient{}, recorder, newTestMetrics(), zap.NewNop())

			got, err := service.ApplySuggestion(context.Background(), suggestionID, userID)

			if tt.wantErr {
				var appErr *response.AppError
				if !errors.As(err, &appErr) || appErr.Code != tt.wantErrCode {
					t.Errorf("ApplySuggestion() error = %v, want code %v", err, tt.wantErrCode)
				}
				if recorded {
					t.Error("recorder must not run on failure")
				}
				return
			}
			if err != nil {
				t.Errorf("ApplySuggestion() unexpected error = %v", err)
				return
			}
			if !got.IsApplied {
				t.Error("ApplySuggestion() IsApplied = false, want true")
			}
			if recorded != tt.wantRecorded {
				t.Errorf("recorder ran = %v, want %v", recorded, tt.wantRecorded)
			}
		})
	}
}

func TestAIService_ListSuggestions(t *testing.T) {
	ideaID := uuid.New()
	ownerID := uuid.New()

	mockIdeaRepo := &MockIdeaRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
			return &domain.Idea{BaseModel: domain.BaseModel{ID: ideaID}, UserID: ownerID}, nil
		},
	}
	mockAIRepo := &MockAIRepository{
		FindSuggestionsByIdeaIDFunc: func(ctx context.Context, iID uuid.UUID) ([]*domain.AISuggestion, error) {
			return []*domain.AISuggestion{
				{ID: uuid.New(), IdeaID: iID, SuggestionType: "features"},
				{ID: uuid.New(), IdeaID: iID, SuggestionType: "marketing"},
			}, nil
		},
	}

	service := NewAIService(mockAIRepo, mockIdeaRepo, &MockGeminiClient{}, nil, newTestMetrics(), zap.NewNop())

	got, err := service.ListSuggestions(context.Background(), ideaID, ownerID)
	if err != nil {
		t.Fatalf("ListSuggestions() unexpected error = %v", err)
	}
	if got.Total != 2 || len(got.Suggestions) != 2 {
		t.Errorf("ListSuggestions() Total = %d, len = %d, want 2/2", got.Total, len(got.Suggestions))
	}

	// 타인의 아이디어는 Forbidden
	_, err = service.ListSuggestions(context.Background(), ideaID, uuid.New())
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != response.ErrCodeForbidden {
		t.Errorf("ListSuggestions() for non-owner should be FORBIDDEN, got %v", err)
	}
}

func TestAIService_ListQueryLogs(t *testing.T) {
	userID := uuid.New()
	ideaID := uuid.New()

	mockAIRepo := &MockAIRepository{
		FindQueryLogsByUserIDFunc: func(ctx context.Context, uID uuid.UUID, limit int) ([]*domain.AIQueryLog, error) {
			if limit != 20 {
				t.Errorf("limit = %d, want 20", limit)
			}
			return []*domain.AIQueryLog{
				{ID: uuid.New(), UserID: uID, IdeaID: &ideaID, QueryType: "suggestion_features"},
			}, nil
		},
	}

	service := NewAIService(mockAIRepo, &MockIdeaRepository{}, &MockGeminiClient{}, nil, newTestMetrics(), zap.NewNop())

	got, err := service.ListQueryLogs(context.Background(), userID, 20)
	if err != nil {
		t.Fatalf("ListQueryLogs() unexpected error = %v", err)
	}
	if len(got) != 1 || got[0].QueryType != "suggestion_features" {
		t.Errorf("ListQueryLogs() = %+v, want one suggestion_features entry", got)
	}
}
