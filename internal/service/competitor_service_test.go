package service

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"idea-copilot-api/internal/client"
	"idea-copilot-api/internal/domain"
	"idea-copilot-api/internal/dto"
	"idea-copilot-api/internal/response"
)

func TestCompetitorService_ScrapeAndAnalyze(t *testing.T) {
	ideaID := uuid.New()
	ownerID := uuid.New()

	ownedIdea := &MockIdeaRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
			return &domain.Idea{
				BaseModel:   domain.BaseModel{ID: ideaID},
				UserID:      ownerID,
				Title:       "Meal planner",
				Description: "Weekly meal plans from pantry contents",
			}, nil
		},
	}

	t.Run("성공: 분석 결과 저장", func(t *testing.T) {
		mockScraper := &MockScraperClient{
			ScrapeFunc: func(ctx context.Context, pageURL string) (*client.ScrapedPage, error) {
				return &client.ScrapedPage{
					URL:     pageURL,
					Title:   "CookPlan",
					Excerpt: "Meal planning for busy families",
					Content: "CookPlan generates weekly menus...",
				}, nil
			},
		}
		mockGemini := &MockGeminiClient{
			GenerateContentFunc: func(ctx context.Context, prompt string) (*client.GenerateResult, error) {
				return &client.GenerateResult{
					Text: `{"competitor_name":"CookPlan","description":"Family meal planning app","strengths":["brand"],"weaknesses":["price"],"differentiation_opportunities":["pantry-first flow"],"market_position":"challenger","confidence_score":0.9}`,
				}, nil
			},
		}
		var stored *domain.CompetitorResearch
		mockCompetitorRepo := &MockCompetitorRepository{
			CreateFunc: func(ctx context.Context, research *domain.CompetitorResearch) error {
				stored = research
				return nil
			},
		}

		service := NewCompetitorService(mockCompetitorRepo, ownedIdea, &MockAccessService{}, mockScraper, mockGemini, zap.NewNop())

		got, err := service.ScrapeAndAnalyze(context.Background(), ownerID, &dto.ScrapeCompetitorsRequest{
			IdeaID: ideaID,
			URLs:   []string{"https://cookplan.example.com"},
		})
		if err != nil {
			t.Fatalf("ScrapeAndAnalyze() unexpected error = %v", err)
		}
		if len(got.Competitors) != 1 || len(got.Failures) != 0 {
			t.Fatalf("got %d competitors, %d failures, want 1/0", len(got.Competitors), len(got.Failures))
		}
		if got.Competitors[0].CompetitorName != "CookPlan" {
			t.Errorf("CompetitorName = %q, want CookPlan", got.Competitors[0].CompetitorName)
		}
		if got.Competitors[0].MarketPosition == nil || *got.Competitors[0].MarketPosition != "challenger" {
			t.Errorf("MarketPosition = %v, want challenger", got.Competitors[0].MarketPosition)
		}
		if stored == nil || stored.ConfidenceScore == nil || *stored.ConfidenceScore != 0.9 {
			t.Errorf("stored confidence = %v, want 0.9", stored.ConfidenceScore)
		}
	})

	t.Run("성공: 분석 실패 시 스크랩 메타데이터로 대체", func(t *testing.T) {
		mockScraper := &MockScraperClient{
			ScrapeFunc: func(ctx context.Context, pageURL string) (*client.ScrapedPage, error) {
				return &client.ScrapedPage{URL: pageURL, Title: "CookPlan", Excerpt: "Meal planning app"}, nil
			},
		}
		mockGemini := &MockGeminiClient{
			GenerateContentFunc: func(ctx context.Context, prompt string) (*client.GenerateResult, error) {
				return nil, client.ErrGeminiNotConfigured
			},
		}

		service := NewCompetitorService(&MockCompetitorRepository{}, ownedIdea, &MockAccessService{}, mockScraper, mockGemini, zap.NewNop())

		got, err := service.ScrapeAndAnalyze(context.Background(), ownerID, &dto.ScrapeCompetitorsRequest{
			IdeaID: ideaID,
			URLs:   []string{"https://cookplan.example.com"},
		})
		if err != nil {
			t.Fatalf("ScrapeAndAnalyze() unexpected error = %v", err)
		}
		if len(got.Competitors) != 1 {
			t.Fatalf("got %d competitors, want 1 (fallback to scraped metadata)", len(got.Competitors))
		}
		if got.Competitors[0].CompetitorName != "CookPlan" {
			t.Errorf("CompetitorName = %q, want page title as fallback", got.Competitors[0].CompetitorName)
		}
	})

	t.Run("성공: 일부 URL 실패는 배치를 중단하지 않음", func(t *testing.T) {
		mockScraper := &MockScraperClient{
			ScrapeFunc: func(ctx context.Context, pageURL string) (*client.ScrapedPage, error) {
				if pageURL == "https://down.example.com" {
					return nil, errors.New("connection refused")
				}
				return &client.ScrapedPage{URL: pageURL, Title: "CookPlan"}, nil
			},
		}

		service := NewCompetitorService(&MockCompetitorRepository{}, ownedIdea, &MockAccessService{}, mockScraper, &MockGeminiClient{}, zap.NewNop())

		got, err := service.ScrapeAndAnalyze(context.Background(), ownerID, &dto.ScrapeCompetitorsRequest{
			IdeaID: ideaID,
			URLs:   []string{"https://down.example.com", "https://cookplan.example.com"},
		})
		if err != nil {
			t.Fatalf("ScrapeAndAnalyze() unexpected error = %v", err)
		}
		if len(got.Competitors) != 1 || len(got.Failures) != 1 {
			t.Fatalf("got %d competitors, %d failures, want 1/1", len(got.Competitors), len(got.Failures))
		}
		if got.Failures[0].URL != "https://down.example.com" {
			t.Errorf("failed URL = %q, want the unreachable one", got.Failures[0].URL)
		}
	})

	t.Run("실패: 소유자 아님", func(t *testing.T) {
		service := NewCompetitorService(&MockCompetitorRepository{}, ownedIdea, &MockAccessService{}, &MockScraperClient{}, &MockGeminiClient{}, zap.NewNop())

		_, err := service.ScrapeAndAnalyze(context.Background(), uuid.New(), &dto.ScrapeCompetitorsRequest{
			IdeaID: ideaID,
			URLs:   []string{"https://cookplan.example.com"},
		})
		var appErr *response.AppError
		if !errors.As(err, &appErr) || appErr.Code != response.ErrCodeForbidden {
			t.Errorf("ScrapeAndAnalyze() for non-owner should be FORBIDDEN, got %v", err)
		}
	})

	t.Run("실패: 아이디어 없음", func(t *testing.T) {
		missingIdea := &MockIdeaRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		service := NewCompetitorService(&MockCompetitorRepository{}, missingIdea, &MockAccessService{}, &MockScraperClient{}, &MockGeminiClient{}, zap.NewNop())

		_, err := service.ScrapeAndAnalyze(context.Background(), ownerID, &dto.ScrapeCompetitorsRequest{
			IdeaID: ideaID,
			URLs:   []string{"https://cookplan.example.com"},
		})
		var appErr *response.AppError
		if !errors.As(err, &appErr) || appErr.Code != response.ErrCodeNotFound {
			t.Errorf("ScrapeAndAnalyze() on missing idea should be NOT_FOUND, got %v", err)
		}
	})
}

func TestCompetitorService_ListResearch(t *testing.T) {
	ideaID := uuid.New()
	userID := uuid.New()

	mockCompetitorRepo := &MockCompetitorRepository{
		FindByIdeaIDFunc: func(ctx context.Context, iID uuid.UUID) ([]*domain.CompetitorResearch, error) {
			return []*domain.CompetitorResearch{
				{IdeaID: iID, UserID: userID, CompetitorName: "CookPlan"},
			}, nil
		},
	}

	service := NewCompetitorService(mockCompetitorRepo, &MockIdeaRepository{}, &MockAccessService{}, &MockScraperClient{}, &MockGeminiClient{}, zap.NewNop())

	got, err := service.ListResearch(context.Background(), ideaID, userID)
	if err != nil {
		t.Fatalf("ListResearch() unexpected error = %v", err)
	}
	if got.Total != 1 || got.Competitors[0].CompetitorName != "CookPlan" {
		t.Errorf("ListResearch() = %+v, want one CookPlan entry", got)
	}
}

func TestCompetitorService_ListResearch_AccessDenied(t *testing.T) {
	mockAccess := &MockAccessService{
		RequireRoleFunc: func(ctx context.Context, iID, uID uuid.UUID, write bool) (*domain.Idea, error) {
			return nil, response.NewForbiddenError("You do not have access to this idea")
		},
	}

	service := NewCompetitorService(&MockCompetitorRepository{}, &MockIdeaRepository{}, mockAccess, &MockScraperClient{}, &MockGeminiClient{}, zap.NewNop())

	_, err := service.ListResearch(context.Background(), uuid.New(), uuid.New())
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != response.ErrCodeForbidden {
		t.Errorf("ListResearch() without access should be FORBIDDEN, got %v", err)
	}
}

func TestCompetitorService_DeleteResearch(t *testing.T) {
	tests := []struct {
		name        string
		repoErr     error
		wantErrCode string
	}{
		{"성공: 리서치 삭제", nil, ""},
		{"실패: 리서치 없음", gorm.ErrRecordNotFound, response.ErrCodeNotFound},
		{"실패: DB 에러", errors.New("database error"), response.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCompetitorRepo := &MockCompetitorRepository{
				DeleteByOwnerFunc: func(ctx context.Context, rID, uID uuid.UUID) error {
					return tt.repoErr
				},
			}
			service := NewCompetitorService(mockCompetitorRepo, &MockIdeaRepository{}, &MockAccessService{}, &MockScraperClient{}, &MockGeminiClient{}, zap.NewNop())

			err := service.DeleteResearch(context.Background(), uuid.New(), uuid.New())

			if tt.wantErrCode == "" {
				if err != nil {
					t.Errorf("DeleteResearch() unexpected error = %v", err)
				}
				return
			}
			var appErr *response.AppError
			if !errors.As(err, &appErr) || appErr.Code != tt.wantErrCode {
				t.Errorf("DeleteResearch() error = %v, want code %v", err, tt.wantErrCode)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"성공: 제한 이내 문자열 유지", "CookPlan", 255, "CookPlan"},
		{"성공: ASCII 바이트 경계 절단", "abcdef", 4, "abcd"},
		{"성공: 한글 룬 경계 보존", "쿡플랜 식단관리", 7, "쿡플"},
		{"성공: 룬 중간 절단 회피", "가나다", 4, "가"},
		{"성공: 빈 문자열", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.input, tt.max)
			}
			if len(got) > tt.max {
				t.Errorf("truncate(%q, %d) length = %d, exceeds limit", tt.input, tt.max, len(got))
			}
		})
	}
}
