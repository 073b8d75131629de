package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"idea-copilot-api/internal/dto"
	"idea-copilot-api/internal/response"
	"idea-copilot-api/internal/service"
)

type CompetitorHandler struct {
	competitorService service.CompetitorService
}

func NewCompetitorHandler(competitorService service.CompetitorService) *CompetitorHandler {
	return &CompetitorHandler{
		competitorService: competitorService,
	}
}

// ScrapeCompetitors godoc
// @Summary      경쟁사 분석 실행
// @Description  경쟁사 URL을 스크랩하고 AI 분석 결과를 저장합니다. URL 일부 실패는 결과에 포함되며 전체를 중단시키지 않습니다
// @Tags         competitors
// @Accept       json
// @Produce      json
// @Param        request body dto.ScrapeCompetitorsRequest true "경쟁사 분석 요청 (URL 1~5개)"
// @Success      200 {object} response.SuccessResponse{data=dto.ScrapeCompetitorsResponse} "경쟁사 분석 완료"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "소유자가 아님"
// @Failure      404 {object} response.ErrorResponse "아이디어를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /competitors/scrape [post]
func (h *CompetitorHandler) ScrapeCompetitors(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	var req dto.ScrapeCompetitorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.competitorService.ScrapeAndAnalyze(c.Request.Context(), auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Competitor research completed", result)
}

// ListResearch godoc
// @Summary      경쟁사 분석 조회
// @Description  아이디어에 저장된 경쟁사 분석을 최신순으로 조회합니다
// @Tags         competitors
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.CompetitorListResponse} "경쟁사 분석 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "아이디어를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ideas/{id}/competitors [get]
func (h *CompetitorHandler) ListResearch(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid idea ID")
		return
	}

	research, err := h.competitorService.ListResearch(c.Request.Context(), ideaID, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Competitor research retrieved successfully", research)
}

// DeleteResearch godoc
// @Summary      경쟁사 분석 삭제
// @Description  저장된 경쟁사 분석 하나를 삭제합니다 (소유자만)
// @Tags         competitors
// @Produce      json
// @Param        id path string true "Research ID (UUID)"
// @Success      200 {object} response.SuccessResponse "경쟁사 분석 삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "분석을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /competitors/{id} [delete]
func (h *CompetitorHandler) DeleteResearch(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	researchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid research ID")
		return
	}

	if err := h.competitorService.DeleteResearch(c.Request.Context(), researchID, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Competitor research deleted successfully", nil)
}
