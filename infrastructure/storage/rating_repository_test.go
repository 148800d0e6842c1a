package storage

import (
	"context"
	"recipe-live/domain/interaction"
	apperrors "recipe-live/errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRatingRepository_CreateAndList(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewRatingRepository(SetupTestStore(t))

	// Given two users rating the same recipe
	alice, err := repository.CreateRating(ctx, interaction.CreateRatingCommand{
		UserID: "alice", RecipeID: "adobo", Rating: 5, IsLiked: true})
	req.NoError(err)
	_, err = repository.CreateRating(ctx, interaction.CreateRatingCommand{
		UserID: "bob", RecipeID: "adobo", Rating: 3})
	req.NoError(err)

	// And a rating on another recipe
	_, err = repository.CreateRating(ctx, interaction.CreateRatingCommand{
		UserID: "alice", RecipeID: "sinigang", Rating: 4})
	req.NoError(err)

	// When listing the ratings of the first recipe
	ratings, err := repository.ListRatings(ctx, "adobo")

	// Then only its ratings are returned
	req.NoError(err)
	req.Len(ratings, 2)
	req.NotEqual(uuid.Nil, alice.ID)
	req.False(alice.IsDeleted)
	req.Equal(alice.CreatedAt, alice.LastUpdated)
}

func TestRatingRepository_DuplicateIsConflict(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewRatingRepository(SetupTestStore(t))
	cmd := interaction.CreateRatingCommand{UserID: "alice", RecipeID: "adobo", Rating: 5, IsLiked: true}

	// Given a rating exists
	first, err := repository.CreateRating(ctx, cmd)
	req.NoError(err)

	// When the same user rates the recipe again
	_, err = repository.CreateRating(ctx, interaction.CreateRatingCommand{
		UserID: "alice", RecipeID: "adobo", Rating: 1})

	// Then the creation fails and the store is unchanged
	req.ErrorIs(err, apperrors.ErrConflict)
	ratings, err := repository.ListRatings(ctx, "adobo")
	req.NoError(err)
	req.Len(ratings, 1)
	req.Equal(first.ID, ratings[0].ID)
	req.Equal(5, ratings[0].Rating)
}

func TestRatingRepository_ConcurrentCreate(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewRatingRepository(SetupTestStore(t))
	cmd := interaction.CreateRatingCommand{UserID: "alice", RecipeID: "adobo", Rating: 4}

	// Given many requests for the same pair released at the same time
	const attempts = 8
	var wg sync.WaitGroup
	start := make(chan struct{})
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := repository.CreateRating(ctx, cmd)
			errs <- err
		}()
	}
	close(start)
	wg.Wait()
	close(errs)

	// Then exactly one insert succeeds and the others conflict
	succeeded, conflicts := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			req.ErrorIs(err, apperrors.ErrConflict)
			conflicts++
		}
	}
	req.Equal(1, succeeded)
	req.Equal(attempts-1, conflicts)

	ratings, err := repository.ListRatings(ctx, "adobo")
	req.NoError(err)
	req.Len(ratings, 1)
}

func TestRatingRepository_Update(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewRatingRepository(SetupTestStore(t))

	created, err := repository.CreateRating(ctx, interaction.CreateRatingCommand{
		UserID: "alice", RecipeID: "adobo", Rating: 2})
	req.NoError(err)
	time.Sleep(2 * time.Millisecond)

	// When the rating is updated
	updated, err := repository.UpdateRating(ctx, interaction.UpdateRatingCommand{
		RatingID: created.ID, Rating: 4, IsLiked: true})

	// Then value, like and lastUpdated change
	req.NoError(err)
	req.Equal(4, updated.Rating)
	req.True(updated.IsLiked)
	req.True(created.CreatedAt.Equal(updated.CreatedAt))
	req.True(updated.LastUpdated.After(created.LastUpdated))

	// And an unknown rating is not found
	_, err = repository.UpdateRating(ctx, interaction.UpdateRatingCommand{RatingID: uuid.New(), Rating: 1})
	req.ErrorIs(err, apperrors.ErrNotFound)
}

func TestRatingRepository_SoftDelete(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewRatingRepository(SetupTestStore(t))

	created, err := repository.CreateRating(ctx, interaction.CreateRatingCommand{
		UserID: "alice", RecipeID: "adobo", Rating: 5, IsLiked: true})
	req.NoError(err)

	// When the rating is soft-deleted
	req.NoError(repository.SoftDeleteRating(ctx, created.ID))

	// Then it disappears from the listing
	ratings, err := repository.ListRatings(ctx, "adobo")
	req.NoError(err)
	req.Empty(ratings)

	// But it can still be inspected by id
	stored, err := repository.GetRating(ctx, created.ID)
	req.NoError(err)
	req.True(stored.IsDeleted)

	// And it cannot be updated nor deleted again
	_, err = repository.UpdateRating(ctx, interaction.UpdateRatingCommand{RatingID: created.ID, Rating: 1})
	req.ErrorIs(err, apperrors.ErrNotFound)
	req.ErrorIs(repository.SoftDeleteRating(ctx, created.ID), apperrors.ErrNotFound)
	req.ErrorIs(repository.SoftDeleteRating(ctx, uuid.New()), apperrors.ErrNotFound)

	// And the pair is free for a new rating
	again, err := repository.CreateRating(ctx, interaction.CreateRatingCommand{
		UserID: "alice", RecipeID: "adobo", Rating: 3})
	req.NoError(err)
	req.NotEqual(created.ID, again.ID)
}

func TestRatingRepository_CanceledContext(t *testing.T) {
	req := require.New(t)
	repository := NewRatingRepository(SetupTestStore(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When the client is gone before the call
	_, err := repository.CreateRating(ctx, interaction.CreateRatingCommand{
		UserID: "alice", RecipeID: "adobo", Rating: 5})

	// Then nothing is written
	req.ErrorIs(err, context.Canceled)
	ratings, err := repository.ListRatings(context.Background(), "adobo")
	req.NoError(err)
	req.Empty(ratings)
}
