package interaction

import "github.com/google/uuid"

type CreateRatingCommand struct {
	UserID   string `json:"userId" validate:"required"`
	RecipeID string `json:"recipeId" validate:"required"`
	Rating   int    `json:"rating" validate:"min=1,max=5"`
	IsLiked  bool   `json:"isLiked"`
}

type UpdateRatingCommand struct {
	RatingID uuid.UUID `json:"-"`
	Rating   int       `json:"rating" validate:"min=1,max=5"`
	IsLiked  bool      `json:"isLiked"`
}

type FavoriteCommand struct {
	UserID   string `json:"userId" validate:"required"`
	RecipeID string `json:"recipeId" validate:"required"`
}

type AddCommentCommand struct {
	UserID   string `json:"userId" validate:"required"`
	RecipeID string `json:"recipeId" validate:"required"`
	Text     string `json:"text" validate:"required"`
}

type EditCommentCommand struct {
	CommentID uuid.UUID `json:"-"`
	UserID    string    `json:"userId" validate:"required"`
	Text      string    `json:"text" validate:"required"`
}

type DeleteCommentCommand struct {
	CommentID uuid.UUID `json:"-"`
	UserID    string    `json:"userId" validate:"required"`
}
