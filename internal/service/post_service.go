package service

import (
	"context"
	"strings"

	"gsvblog/internal/models"
	"gsvblog/internal/observability"
	"gsvblog/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	Author  string
	Title   string
	Content string
}

type ListPostsInput struct {
	Search        string
	Author        string
	Limit         int
	Offset        int
	CurrentUserID uint
}

type UpdatePostInput struct {
	PostID  uint
	Title   string
	Content string
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

const (
	maxTitleLen   = 300
	maxContentLen = 50000
)

func validatePostBody(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" {
		return "", "", models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return "", "", models.NewValidationError("Title too long (max 300 characters)")
	}
	if content == "" {
		return "", "", models.NewValidationError("Content is required")
	}
	if len(content) > maxContentLen {
		return "", "", models.NewValidationError("Content too long (max 50000 characters)")
	}
	return title, content, nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	title, content, err := validatePostBody(in.Title, in.Content)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Author:  in.Author,
		Title:   title,
		Content: content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	observability.PostsCreatedTotal.Inc()
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	filter := repository.ListPostsFilter{
		Search: strings.TrimSpace(in.Search),
		Author: strings.TrimSpace(in.Author),
		Limit:  in.Limit,
		Offset: in.Offset,
	}
	return s.postRepo.List(ctx, filter, in.CurrentUserID)
}

func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

// UpdatePost rewrites the title and content of an existing post. Author
// checks happen at the transport layer, where the caller identity lives.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	title, content, err := validatePostBody(in.Title, in.Content)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:      in.PostID,
		Title:   title,
		Content: content,
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, in.PostID, 0)
}

// DeletePost removes the post and everything hanging off it, comments and
// likes included.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}
	observability.PostsDeletedTotal.Inc()
	return nil
}

// LikePost records a like by userID on postID. Liking an already-liked post
// is rejected rather than silently absorbed.
func (s *PostService) LikePost(ctx context.Context, userID, postID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		observability.LikeTransitionsTotal.WithLabelValues("like", "rejected").Inc()
		return err
	}
	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		observability.LikeTransitionsTotal.WithLabelValues("like", "rejected").Inc()
		return err
	}
	observability.LikeTransitionsTotal.WithLabelValues("like", "ok").Inc()
	return nil
}

func (s *PostService) UnlikePost(ctx context.Context, userID, postID uint) error {
	if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
		observability.LikeTransitionsTotal.WithLabelValues("unlike", "rejected").Inc()
		return err
	}
	observability.LikeTransitionsTotal.WithLabelValues("unlike", "ok").Inc()
	return nil
}

func (s *PostService) LikeCount(ctx context.Context, postID uint) (int64, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return 0, err
	}
	return s.postRepo.LikeCount(ctx, postID)
}

func (s *PostService) HasLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.postRepo.HasLiked(ctx, userID, postID)
}
