package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"recipe-live/domain/interaction"
	"recipe-live/errors"
	"recipe-live/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Handler serves the interaction and chat REST endpoints.
type Handler struct {
	log          *slog.Logger
	interactions services.IInteractionService
	chat         services.IChatService
}

func NewHandler(log *slog.Logger, interactions services.IInteractionService, chat services.IChatService) *Handler {
	return &Handler{log: log, interactions: interactions, chat: chat}
}

// pathID parses a record id. An id that is not a uuid cannot match any record.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q is not a valid id", errors.ErrNotFound, raw)
	}
	return id, nil
}

func (h *Handler) CreateRating(w http.ResponseWriter, r *http.Request) {
	var cmd interaction.CreateRatingCommand
	if err := decode(r, &cmd); err != nil {
		respondError(w, h.log, err)
		return
	}
	rating, err := h.interactions.CreateRating(r.Context(), cmd)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, h.log, http.StatusCreated, rating)
}

func (h *Handler) ListRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.interactions.ListRatings(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, h.log, http.StatusOK, ratings)
}

func (h *Handler) LikesCount(w http.ResponseWriter, r *http.Request) {
	likes, err := h.interactions.LikesCount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, h.log, http.StatusOK, map[string]int{"likes": likes})
}

func (h *Handler) AverageRating(w http.ResponseWriter, r *http.Request) {
	average, err := h.interactions.AverageRating(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, h.log, http.StatusOK, map[string]float64{"averageRating": average})
}

func (h *Handler) GetRating(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "ratingId")
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	rating, err := h.interactions.GetRating(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, h.log, http.StatusOK, rating)
}

func (h *Handler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "ratingId")
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	var cmd interaction.UpdateRatingCommand
	if err := decode(r, &cmd); err != nil {
		respondError(w, h.log, err)
		return
	}
	cmd.RatingID = id
	rating, err := h.interactions.UpdateRating(r.Context(), cmd)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, h.log, http.StatusOK, rating)
}

func (h *Handler) DeleteRating(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "ratingId")
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	if err := h.interactions.DeleteRating(r.Context(), id); err != nil {
		respondError(w, h.log, err)
		return
	}
	respondMessage(w, h.log, http.StatusOK, "Rating deleted")
}

func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var cmd interaction.FavoriteCommand
	if err := decode(r, &cmd); err != nil {
		respondError(w, h.log, err)
		return
	}
	favorite, err := h.interactions.AddFavorite(r.Context(), cmd)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, h.log, http.StatusCreated, favorite)
}

func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	var cmd interaction.FavoriteCommand
	if err := decode(r, &cmd); err != nil {
		respondError(w, h.log, err)
		return
	}
	if err := h.interactions.RemoveFavorite(r.Context(), cmd); err != nil {
		respondError(w, h.log, err)
		return
	}
	respondMessage(w, h.log, http.StatusOK, "Favorite removed")
}

func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.interactions.ListFavorites(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, h.log, http.StatusOK, favorites)
}

func (h *Handler) FavoritesCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.interactions.FavoritesCount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, h.log, http.StatusOK, map[string]int{"favorites": count})
}

func (h *Handler) ListUserFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.interactions.ListUserFavorites(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, h.log, http.StatusOK, favorites)
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	var cmd interaction.AddCommentCommand
	if err := decode(r, &cmd); err != nil {
		respondError(w, h.log, err)
		return
	}
	comment, err := h.interactions.AddComment(r.Context(), cmd)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, h.log, http.StatusCreated, comment)
}

func (h *Handler) EditComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "commentId")
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	var cmd interaction.EditCommentCommand
	if err := decode(r, &cmd); err != nil {
		respondError(w, h.log, err)
		return
	}
	cmd.CommentID = id
	comment, err := h.interactions.EditComment(r.Context(), cmd)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, h.log, http.StatusOK, comment)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "commentId")
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	var cmd interaction.DeleteCommentCommand
	if err := decode(r, &cmd); err != nil {
		respondError(w, h.log, err)
		return
	}
	cmd.CommentID = id
	if err := h.interactions.DeleteComment(r.Context(), cmd); err != nil {
		respondError(w, h.log, err)
		return
	}
	respondMessage(w, h.log, http.StatusOK, "Comment deleted")
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.interactions.ListComments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, h.log, http.StatusOK, comments)
}

func (h *Handler) RecipeStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.interactions.Summary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, h.log, http.StatusOK, stats)
}

func (h *Handler) ChatStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.chat.Stats(r.Context())
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, h.log, http.StatusOK, stats)
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, h.log, http.StatusOK, map[string]string{"status": "ok"})
}
