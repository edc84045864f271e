package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"learnhub/internal/cache"
	"learnhub/internal/dto"
	apperrors "learnhub/internal/errors"
	"learnhub/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes user profile lookups.
type UserService interface {
	Get(ctx context.Context, id uint) (*dto.UserResponse, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) Get(ctx context.Context, id uint) (*dto.UserResponse, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached dto.UserResponse
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	resp := dto.ToUserResponse(user)
	if payload, err := json.Marshal(resp); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return &resp, nil
}
