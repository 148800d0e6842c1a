//go:generate go run go.uber.org/mock/mockgen -source=rating_repository.go -destination=../../mocks/mock_rating_repository.go -package=mocks
package storage

import (
	"context"
	"errors"
	"fmt"
	"recipe-live/domain/interaction"
	apperrors "recipe-live/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IRatingRepository interface {
	CreateRating(ctx context.Context, cmd interaction.CreateRatingCommand) (interaction.Rating, error)
	GetRating(ctx context.Context, ratingID uuid.UUID) (interaction.Rating, error)
	UpdateRating(ctx context.Context, cmd interaction.UpdateRatingCommand) (interaction.Rating, error)
	SoftDeleteRating(ctx context.Context, ratingID uuid.UUID) error
	ListRatings(ctx context.Context, recipeID string) ([]interaction.Rating, error)
}

type RatingRepository struct {
	store Store
}

func NewRatingRepository(store Store) RatingRepository {
	return RatingRepository{store: store}
}

func ratingKey(id uuid.UUID) []byte {
	return []byte("rating:" + id.String())
}

// activeRatingKey is the uniqueness constraint: present while the pair has a non-deleted rating.
func activeRatingKey(userID, recipeID string) []byte {
	return []byte(fmt.Sprintf("idx:rating:active:%s:%s", escape(userID), escape(recipeID)))
}

func recipeRatingsPrefix(recipeID string) []byte {
	return []byte(fmt.Sprintf("idx:rating:recipe:%s:", escape(recipeID)))
}

func recipeRatingKey(recipeID string, id uuid.UUID) []byte {
	return append(recipeRatingsPrefix(recipeID), id.String()...)
}

// CreateRating inserts a rating unless the user already has a live one for the recipe.
func (r RatingRepository) CreateRating(ctx context.Context, cmd interaction.CreateRatingCommand) (interaction.Rating, error) {
	now := time.Now().UTC()
	rating := interaction.Rating{
		ID:          uuid.New(),
		UserID:      cmd.UserID,
		RecipeID:    cmd.RecipeID,
		Rating:      cmd.Rating,
		IsLiked:     cmd.IsLiked,
		CreatedAt:   now,
		LastUpdated: now,
	}

	err := r.store.update(ctx, func(txn *badger.Txn) error {
		activeKey := activeRatingKey(cmd.UserID, cmd.RecipeID)
		found, err := exists(txn, activeKey)
		if err != nil {
			return err
		}
		if found {
			return apperrors.ErrConflict
		}
		if err = setJSON(txn, ratingKey(rating.ID), rating); err != nil {
			return err
		}
		if err = txn.Set(activeKey, []byte(rating.ID.String())); err != nil {
			return err
		}
		return txn.Set(recipeRatingKey(rating.RecipeID, rating.ID), nil)
	})
	if err != nil {
		return interaction.Rating{}, fmt.Errorf("create rating for user %s on recipe %s: %w", cmd.UserID, cmd.RecipeID, err)
	}
	return rating, nil
}

// GetRating returns the rating even when it has been soft-deleted.
func (r RatingRepository) GetRating(ctx context.Context, ratingID uuid.UUID) (interaction.Rating, error) {
	var rating interaction.Rating
	err := r.store.view(ctx, func(txn *badger.Txn) error {
		return getRating(txn, ratingID, &rating)
	})
	if err != nil {
		return interaction.Rating{}, err
	}
	return rating, nil
}

func (r RatingRepository) UpdateRating(ctx context.Context, cmd interaction.UpdateRatingCommand) (interaction.Rating, error) {
	var rating interaction.Rating
	err := r.store.update(ctx, func(txn *badger.Txn) error {
		if err := getLiveRating(txn, cmd.RatingID, &rating); err != nil {
			return err
		}
		rating.Rating = cmd.Rating
		rating.IsLiked = cmd.IsLiked
		rating.LastUpdated = time.Now().UTC()
		return setJSON(txn, ratingKey(rating.ID), rating)
	})
	if err != nil {
		return interaction.Rating{}, fmt.Errorf("update rating %s: %w", cmd.RatingID, err)
	}
	return rating, nil
}

// SoftDeleteRating flags the rating and frees the (user, recipe) pair for a new rating.
func (r RatingRepository) SoftDeleteRating(ctx context.Context, ratingID uuid.UUID) error {
	err := r.store.update(ctx, func(txn *badger.Txn) error {
		var rating interaction.Rating
		if err := getLiveRating(txn, ratingID, &rating); err != nil {
			return err
		}
		rating.IsDeleted = true
		if err := setJSON(txn, ratingKey(rating.ID), rating); err != nil {
			return err
		}
		return txn.Delete(activeRatingKey(rating.UserID, rating.RecipeID))
	})
	if err != nil {
		return fmt.Errorf("delete rating %s: %w", ratingID, err)
	}
	return nil
}

// ListRatings returns the non-deleted ratings of a recipe in no particular order.
func (r RatingRepository) ListRatings(ctx context.Context, recipeID string) ([]interaction.Rating, error) {
	var ratings []interaction.Rating
	err := r.store.view(ctx, func(txn *badger.Txn) error {
		for _, key := range scanKeys(txn, recipeRatingsPrefix(recipeID)) {
			id, err := uuid.Parse(lastSegment(key))
			if err != nil {
				return fmt.Errorf("corrupted rating index %q: %w", key, err)
			}
			var rating interaction.Rating
			if err = getRating(txn, id, &rating); err != nil {
				return err
			}
			ratings = append(ratings, rating)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list ratings of recipe %s: %w", recipeID, err)
	}
	return lo.Filter(ratings, func(item interaction.Rating, _ int) bool {
		return !item.IsDeleted
	}), nil
}

func getRating(txn *badger.Txn, id uuid.UUID, rating *interaction.Rating) error {
	err := getJSON(txn, ratingKey(id), rating)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return apperrors.ErrNotFound
	}
	return err
}

func getLiveRating(txn *badger.Txn, id uuid.UUID, rating *interaction.Rating) error {
	if err := getRating(txn, id, rating); err != nil {
		return err
	}
	if rating.IsDeleted {
		return apperrors.ErrNotFound
	}
	return nil
}
