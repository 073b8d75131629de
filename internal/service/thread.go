package service

import (
	"sort"

	"idea-copilot-api/internal/domain"
	"idea-copilot-api/internal/dto"
)

// BuildCommentForest turns a flat comment list into a paginated reply forest.
//
// Comments are ordered by created_at with the id as tiebreak, so two comments
// written in the same instant always come back in the same order. A comment
// whose parent is missing from the input is promoted to a root rather than
// dropped. Pagination applies to roots only; a page always carries each root's
// full reply subtree. The returned total counts roots, not all comments.
func BuildCommentForest(comments []*domain.Comment, limit, offset int) ([]*dto.CommentResponse, int) {
	sorted := make([]*domain.Comment, len(comments))
	copy(sorted, comments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].ID.String() < sorted[j].ID.String()
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	nodes := make(map[string]*dto.CommentResponse, len(sorted))
	for _, c := range sorted {
		nodes[c.ID.String()] = toCommentResponse(c)
	}

	var roots []*dto.CommentResponse
	for _, c := range sorted {
		node := nodes[c.ID.String()]
		if c.ParentCommentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[c.ParentCommentID.String()]
		if !ok {
			// orphaned reply: parent was hard-removed or belongs elsewhere
			roots = append(roots, node)
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}

	total := len(roots)
	if limit <= 0 || offset >= total {
		return []*dto.CommentResponse{}, total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	if offset < 0 {
		offset = 0
	}
	return roots[offset:end], total
}

func toCommentResponse(c *domain.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:              c.ID,
		AuthorID:        c.AuthorID,
		IdeaID:          c.IdeaID,
		FeatureID:       c.FeatureID,
		ParentCommentID: c.ParentCommentID,
		Content:         c.Content,
		IsAIGenerated:   c.IsAIGenerated,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		Replies:         []*dto.CommentResponse{},
	}
}
