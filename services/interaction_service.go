//go:generate go run go.uber.org/mock/mockgen -source=interaction_service.go -destination=../mocks/mock_interaction_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"recipe-live/contract"
	"recipe-live/domain/interaction"
	"recipe-live/errors"
	"recipe-live/infrastructure/storage"
	"recipe-live/observability"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const DefaultMaxCommentLength = 2000

type IInteractionService interface {
	CreateRating(ctx context.Context, cmd interaction.CreateRatingCommand) (interaction.Rating, error)
	GetRating(ctx context.Context, ratingID uuid.UUID) (interaction.Rating, error)
	UpdateRating(ctx context.Context, cmd interaction.UpdateRatingCommand) (interaction.Rating, error)
	DeleteRating(ctx context.Context, ratingID uuid.UUID) error
	ListRatings(ctx context.Context, recipeID string) ([]interaction.Rating, error)

	AddFavorite(ctx context.Context, cmd interaction.FavoriteCommand) (interaction.Favorite, error)
	RemoveFavorite(ctx context.Context, cmd interaction.FavoriteCommand) error
	ListFavorites(ctx context.Context, recipeID string) ([]interaction.Favorite, error)
	ListUserFavorites(ctx context.Context, userID string) ([]interaction.Favorite, error)

	AddComment(ctx context.Context, cmd interaction.AddCommentCommand) (interaction.Comment, error)
	EditComment(ctx context.Context, cmd interaction.EditCommentCommand) (interaction.Comment, error)
	DeleteComment(ctx context.Context, cmd interaction.DeleteCommentCommand) error
	ListComments(ctx context.Context, recipeID string) ([]interaction.Comment, error)

	LikesCount(ctx context.Context, recipeID string) (int, error)
	AverageRating(ctx context.Context, recipeID string) (float64, error)
	FavoritesCount(ctx context.Context, recipeID string) (int, error)
	CommentsCount(ctx context.Context, recipeID string) (int, error)
	Summary(ctx context.Context, recipeID string) (interaction.Stats, error)
}

// InteractionService validates commands before they reach the store and derives
// the per-recipe aggregates from the live records on every call.
type InteractionService struct {
	log              *slog.Logger
	ratings          storage.IRatingRepository
	favorites        storage.IFavoriteRepository
	comments         storage.ICommentRepository
	moderator        contract.IModerator
	validate         *validator.Validate
	maxCommentLength int
}

func NewInteractionService(
	log *slog.Logger,
	ratings storage.IRatingRepository,
	favorites storage.IFavoriteRepository,
	comments storage.ICommentRepository,
	moderator contract.IModerator,
	maxCommentLength int,
) *InteractionService {
	if maxCommentLength <= 0 {
		maxCommentLength = DefaultMaxCommentLength
	}
	return &InteractionService{
		log:              log,
		ratings:          ratings,
		favorites:        favorites,
		comments:         comments,
		moderator:        moderator,
		validate:         validator.New(),
		maxCommentLength: maxCommentLength,
	}
}

func (s *InteractionService) CreateRating(ctx context.Context, cmd interaction.CreateRatingCommand) (rating interaction.Rating, err error) {
	defer observe("create_rating", time.Now(), &err)
	cmd.UserID, cmd.RecipeID = strings.TrimSpace(cmd.UserID), strings.TrimSpace(cmd.RecipeID)
	if err = s.validate.Struct(cmd); err != nil {
		return interaction.Rating{}, err
	}
	rating, err = s.ratings.CreateRating(ctx, cmd)
	if err != nil {
		return interaction.Rating{}, err
	}
	s.log.Debug("Rating created", "rating", rating.ID, "recipe", rating.RecipeID, "user", rating.UserID)
	return rating, nil
}

func (s *InteractionService) GetRating(ctx context.Context, ratingID uuid.UUID) (rating interaction.Rating, err error) {
	defer observe("get_rating", time.Now(), &err)
	return s.ratings.GetRating(ctx, ratingID)
}

func (s *InteractionService) UpdateRating(ctx context.Context, cmd interaction.UpdateRatingCommand) (rating interaction.Rating, err error) {
	defer observe("update_rating", time.Now(), &err)
	if err = s.validate.Struct(cmd); err != nil {
		return interaction.Rating{}, err
	}
	return s.ratings.UpdateRating(ctx, cmd)
}

func (s *InteractionService) DeleteRating(ctx context.Context, ratingID uuid.UUID) (err error) {
	defer observe("delete_rating", time.Now(), &err)
	if err = s.ratings.SoftDeleteRating(ctx, ratingID); err != nil {
		return err
	}
	s.log.Debug("Rating deleted", "rating", ratingID)
	return nil
}

func (s *InteractionService) ListRatings(ctx context.Context, recipeID string) (ratings []interaction.Rating, err error) {
	defer observe("list_ratings", time.Now(), &err)
	return s.ratings.ListRatings(ctx, recipeID)
}

func (s *InteractionService) AddFavorite(ctx context.Context, cmd interaction.FavoriteCommand) (favorite interaction.Favorite, err error) {
	defer observe("add_favorite", time.Now(), &err)
	cmd.UserID, cmd.RecipeID = strings.TrimSpace(cmd.UserID), strings.TrimSpace(cmd.RecipeID)
	if err = s.validate.Struct(cmd); err != nil {
		return interaction.Favorite{}, err
	}
	return s.favorites.AddFavorite(ctx, cmd)
}

func (s *InteractionService) RemoveFavorite(ctx context.Context, cmd interaction.FavoriteCommand) (err error) {
	defer observe("remove_favorite", time.Now(), &err)
	cmd.UserID, cmd.RecipeID = strings.TrimSpace(cmd.UserID), strings.TrimSpace(cmd.RecipeID)
	if err = s.validate.Struct(cmd); err != nil {
		return err
	}
	return s.favorites.RemoveFavorite(ctx, cmd)
}

func (s *InteractionService) ListFavorites(ctx context.Context, recipeID string) (favorites []interaction.Favorite, err error) {
	defer observe("list_favorites", time.Now(), &err)
	return s.favorites.ListFavorites(ctx, recipeID)
}

func (s *InteractionService) ListUserFavorites(ctx context.Context, userID string) (favorites []interaction.Favorite, err error) {
	defer observe("list_user_favorites", time.Now(), &err)
	return s.favorites.ListUserFavorites(ctx, userID)
}

func (s *InteractionService) AddComment(ctx context.Context, cmd interaction.AddCommentCommand) (comment interaction.Comment, err error) {
	defer observe("add_comment", time.Now(), &err)
	cmd.UserID, cmd.RecipeID = strings.TrimSpace(cmd.UserID), strings.TrimSpace(cmd.RecipeID)
	if cmd.Text, err = s.prepareText(cmd.UserID, cmd.Text); err != nil {
		return interaction.Comment{}, err
	}
	if err = s.validate.Struct(cmd); err != nil {
		return interaction.Comment{}, err
	}
	return s.comments.AddComment(ctx, cmd)
}

func (s *InteractionService) EditComment(ctx context.Context, cmd interaction.EditCommentCommand) (comment interaction.Comment, err error) {
	defer observe("edit_comment", time.Now(), &err)
	cmd.UserID = strings.TrimSpace(cmd.UserID)
	if cmd.Text, err = s.prepareText(cmd.UserID, cmd.Text); err != nil {
		return interaction.Comment{}, err
	}
	if err = s.validate.Struct(cmd); err != nil {
		return interaction.Comment{}, err
	}
	return s.comments.EditComment(ctx, cmd)
}

func (s *InteractionService) DeleteComment(ctx context.Context, cmd interaction.DeleteCommentCommand) (err error) {
	defer observe("delete_comment", time.Now(), &err)
	cmd.UserID = strings.TrimSpace(cmd.UserID)
	if err = s.validate.Struct(cmd); err != nil {
		return err
	}
	return s.comments.DeleteComment(ctx, cmd)
}

func (s *InteractionService) ListComments(ctx context.Context, recipeID string) (comments []interaction.Comment, err error) {
	defer observe("list_comments", time.Now(), &err)
	return s.comments.ListComments(ctx, recipeID)
}

func (s *InteractionService) LikesCount(ctx context.Context, recipeID string) (int, error) {
	ratings, err := s.ListRatings(ctx, recipeID)
	if err != nil {
		return 0, err
	}
	return lo.CountBy(ratings, func(r interaction.Rating) bool { return r.IsLiked }), nil
}

// AverageRating is 0 for a recipe without any live rating.
func (s *InteractionService) AverageRating(ctx context.Context, recipeID string) (float64, error) {
	ratings, err := s.ListRatings(ctx, recipeID)
	if err != nil {
		return 0, err
	}
	return average(ratings), nil
}

func (s *InteractionService) FavoritesCount(ctx context.Context, recipeID string) (count int, err error) {
	defer observe("count_favorites", time.Now(), &err)
	return s.favorites.CountFavorites(ctx, recipeID)
}

func (s *InteractionService) CommentsCount(ctx context.Context, recipeID string) (count int, err error) {
	defer observe("count_comments", time.Now(), &err)
	return s.comments.CountComments(ctx, recipeID)
}

// Summary reads the ratings once and derives both likes and average from them.
func (s *InteractionService) Summary(ctx context.Context, recipeID string) (interaction.Stats, error) {
	ratings, err := s.ListRatings(ctx, recipeID)
	if err != nil {
		return interaction.Stats{}, err
	}
	favorites, err := s.FavoritesCount(ctx, recipeID)
	if err != nil {
		return interaction.Stats{}, err
	}
	comments, err := s.CommentsCount(ctx, recipeID)
	if err != nil {
		return interaction.Stats{}, err
	}
	return interaction.Stats{
		RecipeID:      recipeID,
		Likes:         lo.CountBy(ratings, func(r interaction.Rating) bool { return r.IsLiked }),
		AverageRating: average(ratings),
		Favorites:     favorites,
		Comments:      comments,
	}, nil
}

// prepareText trims and censors a comment. Blank text is left for the validator to reject.
func (s *InteractionService) prepareText(author, text string) (string, error) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > s.maxCommentLength {
		return "", fmt.Errorf("%w: comment longer than %d characters", errors.ErrInvalidPayload, s.maxCommentLength)
	}
	if text == "" || s.moderator == nil {
		return text, nil
	}
	return s.moderator.Moderate(author, text).Content, nil
}

func average(ratings []interaction.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	total := lo.SumBy(ratings, func(r interaction.Rating) int { return r.Rating })
	return float64(total) / float64(len(ratings))
}

func observe(operation string, start time.Time, err *error) {
	observability.RecordStoreOperation(operation, start, *err)
}
