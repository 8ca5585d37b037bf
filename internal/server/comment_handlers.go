package server

import (
	"bloghub/internal/models"
	"bloghub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddCommentRequest creates a comment, or a reply when replying_to is set.
type AddCommentRequest struct {
	PostID         uint   `json:"_id" validate:"required"`
	Comment        string `json:"comment"`
	ReplyingTo     *uint  `json:"replying_to,omitempty"`
	BlogAuthor     uint   `json:"blog_author" validate:"required"`
	NotificationID *uint  `json:"notification_id,omitempty"`
}

// AddCommentResponse is the created comment as the client renders it.
type AddCommentResponse struct {
	ID          uint   `json:"_id"`
	Comment     string `json:"comment"`
	CommentedAt string `json:"commentedAt"`
	UserID      uint   `json:"user_id"`
	Children    []uint `json:"children"`
}

// BlogCommentsRequest pages top-level comments of a post.
type BlogCommentsRequest struct {
	PostID uint `json:"blog_id" validate:"required"`
	Skip   int  `json:"skip" validate:"gte=0"`
}

// RepliesRequest pages the replies of a comment.
type RepliesRequest struct {
	CommentID uint `json:"_id" validate:"required"`
	Skip      int  `json:"skip" validate:"gte=0"`
}

// CommentRefRequest names a comment by id.
type CommentRefRequest struct {
	CommentID uint `json:"_id" validate:"required"`
}

// AddComment godoc
// @Summary Add a comment or reply
// @Tags comments
// @Accept json
// @Produce json
// @Param request body AddCommentRequest true "Comment"
// @Success 200 {object} AddCommentResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /add-comment [post]
// @Security BearerAuth
func (s *Server) AddComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	var req AddCommentRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	created, err := s.commentService.CreateComment(ctx, service.CreateCommentInput{
		PostID:         req.PostID,
		PostAuthorID:   req.BlogAuthor,
		ActorID:        userID,
		Body:           req.Comment,
		ParentID:       req.ReplyingTo,
		NotificationID: req.NotificationID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(newAddCommentResponse(created))
}

func newAddCommentResponse(comment *models.Comment) AddCommentResponse {
	children := comment.Children
	if children == nil {
		children = []uint{}
	}
	return AddCommentResponse{
		ID:          comment.ID,
		Comment:     comment.Body,
		CommentedAt: comment.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		UserID:      comment.AuthorID,
		Children:    children,
	}
}

// GetBlogComments godoc
// @Summary List top-level comments
// @Tags comments
// @Accept json
// @Produce json
// @Param request body BlogCommentsRequest true "Post and offset"
// @Success 200 {array} models.Comment
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /get-blog-comments [post]
func (s *Server) GetBlogComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req BlogCommentsRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(ctx, req.PostID, req.Skip)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

// GetReplies godoc
// @Summary List replies of a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param request body RepliesRequest true "Comment and offset"
// @Success 200 {object} map[string][]models.Comment
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /get-replies [post]
func (s *Server) GetReplies(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req RepliesRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	replies, err := s.commentService.GetReplies(ctx, req.CommentID, req.Skip)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"replies": replies})
}

// DeleteComment godoc
// @Summary Delete a comment and its replies
// @Description Allowed for the comment author and the post author.
// @Tags comments
// @Accept json
// @Produce json
// @Param request body CommentRefRequest true "Comment"
// @Success 200 {object} map[string]string
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /delete-comment [post]
// @Security BearerAuth
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	var req CommentRefRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	if _, err := s.commentService.DeleteComment(ctx, service.DeleteCommentInput{
		CommentID:   req.CommentID,
		RequesterID: userID,
	}); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "done"})
}
