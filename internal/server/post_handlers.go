// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"

	"gsvblog/internal/models"
	"gsvblog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts?search=&author=&limit=&offset=
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 20)
	userID, _ := s.optionalUserID(c)

	posts, err := s.postService.ListPosts(ctx, service.ListPostsInput{
		Search:        c.Query("search"),
		Author:        c.Query("author"),
		Limit:         page.Limit,
		Offset:        page.Offset,
		CurrentUserID: userID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(posts)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	username, ok := c.Locals("username").(string)
	if !ok || username == "" {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		Author:  username,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}
	userID, _ := s.optionalUserID(c)

	post, err := s.postService.GetPost(ctx, id, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	post, err := s.requireAuthorship(ctx, c, id)
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	updated, err := s.postService.UpdatePost(ctx, service.UpdatePostInput{
		PostID:  post.ID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(updated)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if _, err := s.requireAuthorship(ctx, c, id); err != nil {
		return respondError(c, err)
	}

	if err := s.postService.DeletePost(ctx, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}

// requireAuthorship loads the post and checks that the authenticated user
// wrote it. Mutating a post is allowed only for its author.
func (s *Server) requireAuthorship(ctx context.Context, c *fiber.Ctx, postID uint) (*models.Post, error) {
	username, ok := c.Locals("username").(string)
	if !ok || username == "" {
		return nil, models.NewUnauthorizedError("Authentication required")
	}

	post, err := s.postService.GetPost(ctx, postID, 0)
	if err != nil {
		return nil, err
	}
	if post.Author != username {
		return nil, models.NewUnauthorizedError("You can only modify your own posts")
	}
	return post, nil
}

// LikePost handles POST /api/posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.postService.LikePost(ctx, userID, postID); err != nil {
		return respondError(c, err)
	}

	post, err := s.postService.GetPost(ctx, postID, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// UnlikePost handles DELETE /api/posts/:id/like
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.postService.UnlikePost(ctx, userID, postID); err != nil {
		return respondError(c, err)
	}

	post, err := s.postService.GetPost(ctx, postID, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// GetPostLikes handles GET /api/posts/:id/likes
func (s *Server) GetPostLikes(c *fiber.Ctx) error {
	ctx := c.Context()
	postID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	count, err := s.postService.LikeCount(ctx, postID)
	if err != nil {
		return respondError(c, err)
	}

	resp := fiber.Map{
		"post_id":     postID,
		"likes_count": count,
	}
	if userID, ok := s.optionalUserID(c); ok {
		liked, err := s.postService.HasLiked(ctx, userID, postID)
		if err != nil {
			return respondError(c, err)
		}
		resp["liked"] = liked
	}

	return c.JSON(resp)
}
