//go:generate go run go.uber.org/mock/mockgen -source=favorite_repository.go -destination=../../mocks/mock_favorite_repository.go -package=mocks
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"recipe-live/domain/interaction"
	apperrors "recipe-live/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IFavoriteRepository interface {
	AddFavorite(ctx context.Context, cmd interaction.FavoriteCommand) (interaction.Favorite, error)
	RemoveFavorite(ctx context.Context, cmd interaction.FavoriteCommand) error
	ListFavorites(ctx context.Context, recipeID string) ([]interaction.Favorite, error)
	ListUserFavorites(ctx context.Context, userID string) ([]interaction.Favorite, error)
	CountFavorites(ctx context.Context, recipeID string) (int, error)
}

type FavoriteRepository struct {
	store Store
}

func NewFavoriteRepository(store Store) FavoriteRepository {
	return FavoriteRepository{store: store}
}

func recipeFavoritesPrefix(recipeID string) []byte {
	return []byte(fmt.Sprintf("favorite:%s:", escape(recipeID)))
}

// favoriteKey is both the record and its uniqueness constraint.
func favoriteKey(userID, recipeID string) []byte {
	return append(recipeFavoritesPrefix(recipeID), escape(userID)...)
}

func userFavoritesPrefix(userID string) []byte {
	return []byte(fmt.Sprintf("idx:favorite:user:%s:", escape(userID)))
}

func userFavoriteKey(userID, recipeID string) []byte {
	return append(userFavoritesPrefix(userID), escape(recipeID)...)
}

func (f FavoriteRepository) AddFavorite(ctx context.Context, cmd interaction.FavoriteCommand) (interaction.Favorite, error) {
	favorite := interaction.Favorite{
		ID:        uuid.New(),
		UserID:    cmd.UserID,
		RecipeID:  cmd.RecipeID,
		CreatedAt: time.Now().UTC(),
	}
	err := f.store.update(ctx, func(txn *badger.Txn) error {
		key := favoriteKey(cmd.UserID, cmd.RecipeID)
		found, err := exists(txn, key)
		if err != nil {
			return err
		}
		if found {
			return apperrors.ErrConflict
		}
		if err = setJSON(txn, key, favorite); err != nil {
			return err
		}
		return txn.Set(userFavoriteKey(cmd.UserID, cmd.RecipeID), nil)
	})
	if err != nil {
		return interaction.Favorite{}, fmt.Errorf("add favorite for user %s on recipe %s: %w", cmd.UserID, cmd.RecipeID, err)
	}
	return favorite, nil
}

// RemoveFavorite succeeds whether or not the favorite existed.
func (f FavoriteRepository) RemoveFavorite(ctx context.Context, cmd interaction.FavoriteCommand) error {
	err := f.store.update(ctx, func(txn *badger.Txn) error {
		if err := txn.Delete(favoriteKey(cmd.UserID, cmd.RecipeID)); err != nil {
			return err
		}
		return txn.Delete(userFavoriteKey(cmd.UserID, cmd.RecipeID))
	})
	if err != nil {
		return fmt.Errorf("remove favorite for user %s on recipe %s: %w", cmd.UserID, cmd.RecipeID, err)
	}
	return nil
}

func (f FavoriteRepository) ListFavorites(ctx context.Context, recipeID string) ([]interaction.Favorite, error) {
	favorites := make([]interaction.Favorite, 0)
	err := f.store.view(ctx, func(txn *badger.Txn) error {
		prefix := recipeFavoritesPrefix(recipeID)
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var favorite interaction.Favorite
			if err := decodeItem(it.Item(), &favorite); err != nil {
				return err
			}
			favorites = append(favorites, favorite)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list favorites of recipe %s: %w", recipeID, err)
	}
	return favorites, nil
}

// ListUserFavorites walks the per-user index, ordered by recipe id.
func (f FavoriteRepository) ListUserFavorites(ctx context.Context, userID string) ([]interaction.Favorite, error) {
	favorites := make([]interaction.Favorite, 0)
	err := f.store.view(ctx, func(txn *badger.Txn) error {
		for _, key := range scanKeys(txn, userFavoritesPrefix(userID)) {
			recipeID, err := url.QueryUnescape(lastSegment(key))
			if err != nil {
				return fmt.Errorf("corrupted favorite index %q: %w", key, err)
			}
			var favorite interaction.Favorite
			err = getJSON(txn, favoriteKey(userID, recipeID), &favorite)
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			favorites = append(favorites, favorite)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list favorites of user %s: %w", userID, err)
	}
	return favorites, nil
}

func (f FavoriteRepository) CountFavorites(ctx context.Context, recipeID string) (int, error) {
	var count int
	err := f.store.view(ctx, func(txn *badger.Txn) error {
		count = countKeys(txn, recipeFavoritesPrefix(recipeID))
		return nil
	})
	return count, err
}
