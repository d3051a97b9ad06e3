package service

import (
	"context"
	"xss-labs/internal/domain"
)

type CommentRepository interface {
	CreateComment(ctx context.Context, comment *domain.Comment) error
	ListComments(ctx context.Context) ([]*domain.Comment, error)
	CountComments(ctx context.Context) (int, error)
}
