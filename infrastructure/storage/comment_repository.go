//go:generate go run go.uber.org/mock/mockgen -source=comment_repository.go -destination=../../mocks/mock_comment_repository.go -package=mocks
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
)

type ICommentRepository interface {
	AddComment(ctx context.Context, cmd interaction.AddCommentCommand) (interaction.Comment, error)
	GetComment(ctx context.Context, commentID uuid.UUID) (interaction.Comment, error)
	EditComment(ctx context.Context, cmd interaction.EditCommentCommand) (interaction.Comment, error)
	DeleteComment(ctx context.Context, cmd interaction.DeleteCommentCommand) error
	ListComments(ctx context.Context, recipeID string) ([]interaction.Comment, error)
	CountComments(ctx context.Context, recipeID string) (int, error)
}

type CommentRepository struct {
	store Store
}

func NewCommentRepository(store Store) CommentRepository {
	return CommentRepository{store: store}
}

func commentKey(id uuid.UUID) []byte {
	return []byte("comment:" + id.String())
}

func recipeCommentsPrefix(recipeID string) []byte {
	return []byte(fmt.Sprintf("idx:comment:recipe:%s:", escape(recipeID)))
}

// recipeCommentKey sorts comments chronologically thanks to the 19-digit zero padding.
func recipeCommentKey(comment interaction.Comment) []byte {
	return append(recipeCommentsPrefix(comment.RecipeID),
		fmt.Sprintf("%019d:%s", comment.CreatedAt.UnixNano(), comment.ID)...)
}

func (c CommentRepository) AddComment(ctx context.Context, cmd interaction.AddCommentCommand) (interaction.Comment, error) {
	now := time.Now().UTC()
	comment := interaction.Comment{
		ID:          uuid.New(),
		UserID:      cmd.UserID,
		RecipeID:    cmd.RecipeID,
		Text:        cmd.Text,
		CreatedAt:   now,
		LastUpdated: now,
	}
	err := c.store.update(ctx, func(txn *badger.Txn) error {
		if err := setJSON(txn, commentKey(comment.ID), comment); err != nil {
			return err
		}
		return txn.Set(recipeCommentKey(comment), nil)
	})
	if err != nil {
		return interaction.Comment{}, fmt.Errorf("add comment on recipe %s: %w", cmd.RecipeID, err)
	}
	return comment, nil
}

func (c CommentRepository) GetComment(ctx context.Context, commentID uuid.UUID) (interaction.Comment, error) {
	var comment interaction.Comment
	err := c.store.view(ctx, func(txn *badger.Txn) error {
		return getComment(txn, commentID, &comment)
	})
	if err != nil {
		return interaction.Comment{}, err
	}
	return comment, nil
}

// EditComment replaces the text when the requester is the author.
func (c CommentRepository) EditComment(ctx context.Context, cmd interaction.EditCommentCommand) (interaction.Comment, error) {
	var comment interaction.Comment
	err := c.store.update(ctx, func(txn *badger.Txn) error {
		if err := getOwnedComment(txn, cmd.CommentID, cmd.UserID, &comment); err != nil {
			return err
		}
		comment.Text = cmd.Text
		comment.LastUpdated = time.Now().UTC()
		return setJSON(txn, commentKey(comment.ID), comment)
	})
	if err != nil {
		return interaction.Comment{}, fmt.Errorf("edit comment %s: %w", cmd.CommentID, err)
	}
	return comment, nil
}

func (c CommentRepository) DeleteComment(ctx context.Context, cmd interaction.DeleteCommentCommand) error {
	err := c.store.update(ctx, func(txn *badger.Txn) error {
		var comment interaction.Comment
		if err := getOwnedComment(txn, cmd.CommentID, cmd.UserID, &comment); err != nil {
			return err
		}
		if err := txn.Delete(commentKey(comment.ID)); err != nil {
			return err
		}
		return txn.Delete(recipeCommentKey(comment))
	})
	if err != nil {
		return fmt.Errorf("delete comment %s: %w", cmd.CommentID, err)
	}
	return nil
}

// ListComments returns the comments of a recipe, oldest first.
func (c CommentRepository) ListComments(ctx context.Context, recipeID string) ([]interaction.Comment, error) {
	comments := make([]interaction.Comment, 0)
	err := c.store.view(ctx, func(txn *badger.Txn) error {
		for _, key := range scanKeys(txn, recipeCommentsPrefix(recipeID)) {
			id, err := uuid.Parse(lastSegment(key))
			if err != nil {
				return fmt.Errorf("corrupted comment index %q: %w", key, err)
			}
			var comment interaction.Comment
			if err = getComment(txn, id, &comment); err != nil {
				return err
			}
			comments = append(comments, comment)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list comments of recipe %s: %w", recipeID, err)
	}
	return comments, nil
}

func (c CommentRepository) CountComments(ctx context.Context, recipeID string) (int, error) {
	var count int
	err := c.store.view(ctx, func(txn *badger.Txn) error {
		count = countKeys(txn, recipeCommentsPrefix(recipeID))
		return nil
	})
	return count, err
}

func getComment(txn *badger.Txn, id uuid.UUID, comment *interaction.Comment) error {
	err := getJSON(txn, commentKey(id), comment)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return apperrors.ErrNotFound
	}
	return err
}

func getOwnedComment(txn *badger.Txn, id uuid.UUID, userID string, comment *interaction.Comment) error {
	if err := getComment(txn, id, comment); err != nil {
		return err
	}
	if comment.UserID != userID {
		return apperrors.ErrForbidden
	}
	return nil
}
