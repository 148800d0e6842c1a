// Package interaction defines the records users attach to a recipe:
// ratings and likes, favorites and comments.
// No storage, network or UI logic should be added here.
package interaction

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Rating carries both the 1-5 score and the like flag of one user for one recipe.
// A soft-deleted rating stays readable by id but no longer counts anywhere.
type Rating struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"userId"`
	RecipeID    string    `json:"recipeId"`
	Rating      int       `json:"rating"`
	IsLiked     bool      `json:"isLiked"`
	IsDeleted   bool      `json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type Favorite struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"userId"`
	RecipeID  string    `json:"recipeId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment is owned by UserID, the only user allowed to edit or delete it.
type Comment struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"userId"`
	RecipeID    string    `json:"recipeId"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"createdAt"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Stats are derived from the live records on every read.
type Stats struct {
	RecipeID      string  `json:"recipeId"`
	Likes         int     `json:"likes"`
	AverageRating float64 `json:"averageRating"`
	Favorites     int     `json:"favorites"`
	Comments      int     `json:"comments"`
}
