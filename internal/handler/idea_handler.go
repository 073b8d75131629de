package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"idea-copilot-api/internal/dto"
	"idea-copilot-api/internal/response"
	"idea-copilot-api/internal/service"
)

type IdeaHandler struct {
	ideaService service.IdeaService
}

func NewIdeaHandler(ideaService service.IdeaService) *IdeaHandler {
	return &IdeaHandler{
		ideaService: ideaService,
	}
}

// CreateIdea godoc
// @Summary      아이디어 생성
// @Description  새로운 아이디어를 생성합니다
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateIdeaRequest true "아이디어 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.IdeaResponse} "아이디어 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 실패"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ideas [post]
func (h *IdeaHandler) CreateIdea(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	var req dto.CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	idea, err := h.ideaService.CreateIdea(c.Request.Context(), auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, "Idea created successfully", idea)
}

// ListIdeas godoc
// @Summary      아이디어 목록 조회
// @Description  필터와 정렬 조건으로 내 아이디어를 조회합니다
// @Tags         ideas
// @Produce      json
// @Param        category_id query string false "카테고리 ID (UUID)"
// @Param        priority query string false "우선순위 (low/medium/high)"
// @Param        status query string false "상태 (new/in_progress/completed/archived)"
// @Param        search query string false "제목/설명 검색어"
// @Param        sort_by query string false "정렬 기준" default(created_at)
// @Param        sort_order query string false "정렬 방향 (asc/desc)" default(desc)
// @Param        limit query int false "페이지 크기" default(20)
// @Param        offset query int false "오프셋" default(0)
// @Success      200 {object} response.SuccessResponse{data=dto.PaginatedIdeaResponse} "아이디어 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ideas [get]
func (h *IdeaHandler) ListIdeas(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	var filters dto.IdeaFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query parameters")
		return
	}

	ideas, err := h.ideaService.ListIdeas(c.Request.Context(), auth.UserID, &filters)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Ideas retrieved successfully", ideas)
}

// GetIdea godoc
// @Summary      아이디어 상세 조회
// @Description  아이디어 하나를 단계/기능과 함께 조회합니다 (소유자 또는 공유받은 사용자)
// @Tags         ideas
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.IdeaDetailResponse} "아이디어 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "아이디어를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ideas/{id} [get]
func (h *IdeaHandler) GetIdea(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid idea ID")
		return
	}

	idea, err := h.ideaService.GetIdea(c.Request.Context(), ideaID, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Idea retrieved successfully", idea)
}

// UpdateIdea godoc
// @Summary      아이디어 수정
// @Description  아이디어 필드를 수정합니다 (편집 권한 필요)
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Param        request body dto.UpdateIdeaRequest true "아이디어 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.IdeaResponse} "아이디어 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "아이디어를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ideas/{id} [put]
func (h *IdeaHandler) UpdateIdea(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid idea ID")
		return
	}

	var req dto.UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	idea, err := h.ideaService.UpdateIdea(c.Request.Context(), ideaID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Idea updated successfully", idea)
}

// DeleteIdea godoc
// @Summary      아이디어 삭제
// @Description  아이디어와 하위 데이터를 삭제합니다 (소유자만)
// @Tags         ideas
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Success      200 {object} response.SuccessResponse "아이디어 삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "아이디어를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ideas/{id} [delete]
func (h *IdeaHandler) DeleteIdea(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid idea ID")
		return
	}

	if err := h.ideaService.DeleteIdea(c.Request.Context(), ideaID, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Idea deleted successfully", nil)
}

// CreateCategory godoc
// @Summary      카테고리 생성
// @Description  아이디어 분류용 카테고리를 생성합니다
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCategoryRequest true "카테고리 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.CategoryResponse} "카테고리 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      409 {object} response.ErrorResponse "이미 존재하는 카테고리"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /categories [post]
func (h *IdeaHandler) CreateCategory(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	category, err := h.ideaService.CreateCategory(c.Request.Context(), auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, "Category created successfully", category)
}

// ListCategories godoc
// @Summary      카테고리 목록 조회
// @Description  내 카테고리 전체를 조회합니다
// @Tags         categories
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.CategoryResponse} "카테고리 목록 조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /categories [get]
func (h *IdeaHandler) ListCategories(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	categories, err := h.ideaService.ListCategories(c.Request.Context(), auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// UpdateCategory godoc
// @Summary      카테고리 수정
// @Description  카테고리 이름/색상을 수정합니다
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id path string true "Category ID (UUID)"
// @Param        request body dto.UpdateCategoryRequest true "카테고리 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.CategoryResponse} "카테고리 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "카테고리를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /categories/{id} [put]
func (h *IdeaHandler) UpdateCategory(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid category ID")
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	category, err := h.ideaService.UpdateCategory(c.Request.Context(), categoryID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory godoc
// @Summary      카테고리 삭제
// @Description  카테고리를 삭제합니다. 연결된 아이디어는 분류만 해제됩니다
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID (UUID)"
// @Success      200 {object} response.SuccessResponse "카테고리 삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "카테고리를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /categories/{id} [delete]
func (h *IdeaHandler) DeleteCategory(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid category ID")
		return
	}

	if err := h.ideaService.DeleteCategory(c.Request.Context(), categoryID, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Category deleted successfully", nil)
}
