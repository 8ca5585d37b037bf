package server

import (
	"bloghub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// LikeBlogRequest toggles the caller's like on a post.
type LikeBlogRequest struct {
	PostID        uint `json:"_id" validate:"required"`
	IsLikedByUser bool `json:"isLikedByUser"`
}

// PostRefRequest names a post by id.
type PostRefRequest struct {
	PostID uint `json:"_id" validate:"required"`
}

// LikeBlog godoc
// @Summary Toggle a like
// @Description Likes the post when isLikedByUser is false, removes the like otherwise.
// @Tags likes
// @Accept json
// @Produce json
// @Param request body LikeBlogRequest true "Like toggle"
// @Success 200 {object} service.LikeResult
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /like-blog [post]
// @Security BearerAuth
func (s *Server) LikeBlog(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	var req LikeBlogRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	result, err := s.likeService.ToggleLike(ctx, service.ToggleLikeInput{
		PostID:         req.PostID,
		ActorID:        userID,
		CurrentlyLiked: req.IsLikedByUser,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// IsLikedByUser godoc
// @Summary Check the caller's like
// @Tags likes
// @Accept json
// @Produce json
// @Param request body PostRefRequest true "Post"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /isliked-by-user [post]
// @Security BearerAuth
func (s *Server) IsLikedByUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	var req PostRefRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	liked, err := s.likeService.IsLiked(ctx, req.PostID, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"result": liked})
}
