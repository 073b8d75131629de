package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"idea-copilot-api/internal/dto"
	"idea-copilot-api/internal/response"
	"idea-copilot-api/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// pagination reads limit/offset query parameters with sane defaults
func pagination(c *gin.Context) (int, int) {
	limit := 20
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}

// CreateIdeaComment godoc
// @Summary      아이디어 댓글 작성
// @Description  아이디어에 댓글 또는 대댓글을 작성합니다 (편집 권한 필요)
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Param        request body dto.CreateCommentRequest true "댓글 작성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse} "댓글 작성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "아이디어를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ideas/{id}/comments [post]
func (h *CommentHandler) CreateIdeaComment(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid idea ID")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.CreateIdeaComment(c.Request.Context(), ideaID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, "Comment created successfully", comment)
}

// GetIdeaComments godoc
// @Summary      아이디어 댓글 조회
// @Description  아이디어의 댓글을 스레드 구조로 조회합니다. 페이지네이션은 최상위 댓글 기준입니다
// @Tags         comments
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Param        limit query int false "최상위 댓글 페이지 크기" default(20)
// @Param        offset query int false "오프셋" default(0)
// @Success      200 {object} response.SuccessResponse{data=dto.CommentListResponse} "댓글 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "아이디어를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ideas/{id}/comments [get]
func (h *CommentHandler) GetIdeaComments(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid idea ID")
		return
	}

	limit, offset := pagination(c)
	comments, err := h.commentService.GetIdeaComments(c.Request.Context(), ideaID, auth.UserID, limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Comments retrieved successfully", comments)
}

// CreateFeatureComment godoc
// @Summary      기능 댓글 작성
// @Description  기능에 댓글 또는 대댓글을 작성합니다 (편집 권한 필요)
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Feature ID (UUID)"
// @Param        request body dto.CreateCommentRequest true "댓글 작성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse} "댓글 작성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "기능을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /features/{id}/comments [post]
func (h *CommentHandler) CreateFeatureComment(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	featureID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid feature ID")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.CreateFeatureComment(c.Request.Context(), featureID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, "Comment created successfully", comment)
}

// GetFeatureComments godoc
// @Summary      기능 댓글 조회
// @Description  기능의 댓글을 스레드 구조로 조회합니다
// @Tags         comments
// @Produce      json
// @Param        id path string true "Feature ID (UUID)"
// @Param        limit query int false "최상위 댓글 페이지 크기" default(20)
// @Param        offset query int false "오프셋" default(0)
// @Success      200 {object} response.SuccessResponse{data=dto.CommentListResponse} "댓글 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "기능을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /features/{id}/comments [get]
func (h *CommentHandler) GetFeatureComments(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	featureID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid feature ID")
		return
	}

	limit, offset := pagination(c)
	comments, err := h.commentService.GetFeatureComments(c.Request.Context(), featureID, auth.UserID, limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Comments retrieved successfully", comments)
}

// UpdateComment godoc
// @Summary      댓글 수정
// @Description  본인이 작성한 댓글의 내용을 수정합니다. 삭제된 댓글은 수정할 수 없습니다
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Comment ID (UUID)"
// @Param        request body dto.UpdateCommentRequest true "댓글 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "댓글 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid comment ID")
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), commentID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Comment updated successfully", comment)
}

// DeleteComment godoc
// @Summary      댓글 삭제
// @Description  본인이 작성한 댓글을 소프트 삭제합니다. 대댓글은 유지됩니다
// @Tags         comments
// @Produce      json
// @Param        id path string true "Comment ID (UUID)"
// @Success      204 "댓글 삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid comment ID")
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), commentID, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
