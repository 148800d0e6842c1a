package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"recipe-live/domain/chat"
	"recipe-live/domain/interaction"
	"recipe-live/errors"
	"recipe-live/mocks"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	interactions *mocks.MockIInteractionService
	chat         *mocks.MockIChatService
	router       http.Handler
}

func newRouterFixture(t *testing.T, config RouterConfig) routerFixture {
	ctrl := gomock.NewController(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := routerFixture{
		interactions: mocks.NewMockIInteractionService(ctrl),
		chat:         mocks.NewMockIChatService(ctrl),
	}
	f.router = NewRouter(log, config, NewHandler(log, f.interactions, f.chat), nil)
	return f
}

func (f routerFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var body T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestRouter_CreateRating(t *testing.T) {
	t.Run("should return 201 with the record", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t, RouterConfig{})
		expected := interaction.Rating{ID: uuid.New(), UserID: "u1", RecipeID: "r1", Rating: 5, IsLiked: true}
		f.interactions.EXPECT().
			CreateRating(gomock.Any(), interaction.CreateRatingCommand{UserID: "u1", RecipeID: "r1", Rating: 5, IsLiked: true}).
			Return(expected, nil)

		recorder := f.do(http.MethodPost, "/api/ratings", `{"userId":"u1","recipeId":"r1","rating":5,"isLiked":true}`)

		req.Equal(http.StatusCreated, recorder.Code)
		req.Equal("application/json", recorder.Header().Get("Content-Type"))
		got := decodeBody[interaction.Rating](t, recorder)
		req.Equal(expected.ID, got.ID)
		req.True(got.IsLiked)
	})

	t.Run("should return 400 on a duplicate", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t, RouterConfig{})
		f.interactions.EXPECT().CreateRating(gomock.Any(), gomock.Any()).Return(interaction.Rating{}, errors.ErrConflict)

		recorder := f.do(http.MethodPost, "/api/ratings", `{"userId":"u1","recipeId":"r1","rating":5}`)

		req.Equal(http.StatusBadRequest, recorder.Code)
		req.Equal(errors.ErrConflict.Error(), decodeBody[messageResponse](t, recorder).Message)
	})

	t.Run("should return 400 on a malformed body", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t, RouterConfig{})
		f.interactions.EXPECT().CreateRating(gomock.Any(), gomock.Any()).Times(0)

		recorder := f.do(http.MethodPost, "/api/ratings", `{"userId":`)

		req.Equal(http.StatusBadRequest, recorder.Code)
	})
}

func TestRouter_Rating_By_Id(t *testing.T) {
	t.Run("should return 404 for an unknown rating", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t, RouterConfig{})
		id := uuid.New()
		f.interactions.EXPECT().GetRating(gomock.Any(), id).Return(interaction.Rating{}, errors.ErrNotFound)

		recorder := f.do(http.MethodGet, "/api/ratings/"+id.String(), "")

		req.Equal(http.StatusNotFound, recorder.Code)
	})

	t.Run("should return 404 for an id that is not a uuid", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t, RouterConfig{})

		recorder := f.do(http.MethodDelete, "/api/ratings/not-an-id", "")

		req.Equal(http.StatusNotFound, recorder.Code)
	})

	t.Run("should update with the path id", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t, RouterConfig{})
		id := uuid.New()
		f.interactions.EXPECT().
			UpdateRating(gomock.Any(), interaction.UpdateRatingCommand{RatingID: id, Rating: 2, IsLiked: false}).
			Return(interaction.Rating{ID: id, Rating: 2}, nil)

		recorder := f.do(http.MethodPut, "/api/ratings/"+id.String(), `{"rating":2,"isLiked":false}`)

		req.Equal(http.StatusOK, recorder.Code)
		req.Equal(2, decodeBody[interaction.Rating](t, recorder).Rating)
	})

	t.Run("should soft delete", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t, RouterConfig{})
		id := uuid.New()
		f.interactions.EXPECT().DeleteRating(gomock.Any(), id).Return(nil)

		recorder := f.do(http.MethodDelete, "/api/ratings/"+id.String(), "")

		req.Equal(http.StatusOK, recorder.Code)
		req.Equal("Rating deleted", decodeBody[messageResponse](t, recorder).Message)
	})
}

func TestRouter_Aggregates(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, RouterConfig{})
	f.interactions.EXPECT().LikesCount(gomock.Any(), "r1").Return(3, nil)
	f.interactions.EXPECT().AverageRating(gomock.Any(), "r1").Return(4.5, nil)
	f.interactions.EXPECT().FavoritesCount(gomock.Any(), "r1").Return(2, nil)
	f.interactions.EXPECT().Summary(gomock.Any(), "r1").
		Return(interaction.Stats{RecipeID: "r1", Likes: 3, AverageRating: 4.5, Favorites: 2, Comments: 1}, nil)

	likes := f.do(http.MethodGet, "/api/ratings/likes/r1", "")
	average := f.do(http.MethodGet, "/api/ratings/average/r1", "")
	favorites := f.do(http.MethodGet, "/api/favorites/count/r1", "")
	stats := f.do(http.MethodGet, "/api/recipes/r1/stats", "")

	req.Equal(map[string]int{"likes": 3}, decodeBody[map[string]int](t, likes))
	req.Equal(map[string]float64{"averageRating": 4.5}, decodeBody[map[string]float64](t, average))
	req.Equal(map[string]int{"favorites": 2}, decodeBody[map[string]int](t, favorites))
	req.Equal(interaction.Stats{RecipeID: "r1", Likes: 3, AverageRating: 4.5, Favorites: 2, Comments: 1},
		decodeBody[interaction.Stats](t, stats))
}

func TestRouter_Favorites(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, RouterConfig{})
	cmd := interaction.FavoriteCommand{UserID: "u1", RecipeID: "r1"}
	f.interactions.EXPECT().AddFavorite(gomock.Any(), cmd).Return(interaction.Favorite{UserID: "u1", RecipeID: "r1"}, nil)
	f.interactions.EXPECT().RemoveFavorite(gomock.Any(), cmd).Return(nil)
	f.interactions.EXPECT().ListUserFavorites(gomock.Any(), "u1").Return([]interaction.Favorite{}, nil)

	added := f.do(http.MethodPost, "/api/favorites", `{"userId":"u1","recipeId":"r1"}`)
	removed := f.do(http.MethodDelete, "/api/favorites", `{"userId":"u1","recipeId":"r1"}`)
	listed := f.do(http.MethodGet, "/api/favorites/userId/u1", "")

	req.Equal(http.StatusCreated, added.Code)
	req.Equal(http.StatusOK, removed.Code)
	req.Equal(http.StatusOK, listed.Code)
	req.JSONEq(`[]`, listed.Body.String())
}

func TestRouter_Comments(t *testing.T) {
	t.Run("should refuse an edit from another user", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t, RouterConfig{})
		id := uuid.New()
		f.interactions.EXPECT().
			EditComment(gomock.Any(), interaction.EditCommentCommand{CommentID: id, UserID: "intruder", Text: "hi"}).
			Return(interaction.Comment{}, errors.ErrForbidden)

		recorder := f.do(http.MethodPut, "/api/comments/"+id.String(), `{"userId":"intruder","text":"hi"}`)

		req.Equal(http.StatusForbidden, recorder.Code)
	})

	t.Run("should delete with the author in the body", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t, RouterConfig{})
		id := uuid.New()
		f.interactions.EXPECT().
			DeleteComment(gomock.Any(), interaction.DeleteCommentCommand{CommentID: id, UserID: "u1"}).
			Return(nil)

		recorder := f.do(http.MethodDelete, "/api/comments/"+id.String(), `{"userId":"u1"}`)

		req.Equal(http.StatusOK, recorder.Code)
	})

	t.Run("should hide internal errors", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t, RouterConfig{})
		f.interactions.EXPECT().ListComments(gomock.Any(), "r1").Return(nil, io.ErrUnexpectedEOF)

		recorder := f.do(http.MethodGet, "/api/comments/recipeId/r1", "")

		req.Equal(http.StatusInternalServerError, recorder.Code)
		req.Equal(http.StatusText(http.StatusInternalServerError), decodeBody[messageResponse](t, recorder).Message)
	})
}

func TestRouter_ChatStats_And_Health(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, RouterConfig{})
	f.chat.EXPECT().Stats(gomock.Any()).Return(chat.RoomStats{Connections: 2, Messages: 5}, nil)

	stats := f.do(http.MethodGet, "/api/chat/stats", "")
	health := f.do(http.MethodGet, "/health", "")
	metrics := f.do(http.MethodGet, "/metrics", "")

	req.Equal(chat.RoomStats{Connections: 2, Messages: 5}, decodeBody[chat.RoomStats](t, stats))
	req.Equal(http.StatusOK, health.Code)
	req.Equal(http.StatusOK, metrics.Code)
	req.Contains(metrics.Body.String(), "api_request_duration_seconds")
}

func TestRouter_RateLimit(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, RouterConfig{RateLimitPerMinute: 1})
	f.interactions.EXPECT().LikesCount(gomock.Any(), "r1").Return(0, nil).Times(1)

	first := f.do(http.MethodGet, "/api/ratings/likes/r1", "")
	second := f.do(http.MethodGet, "/api/ratings/likes/r1", "")

	req.Equal(http.StatusOK, first.Code)
	req.Equal(http.StatusTooManyRequests, second.Code)
}

func TestRouter_Canceled_Request_Reaches_Service(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, RouterConfig{})
	f.interactions.EXPECT().
		CreateRating(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ interaction.CreateRatingCommand) (interaction.Rating, error) {
			return interaction.Rating{}, ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	request := httptest.NewRequest(http.MethodPost, "/api/ratings",
		strings.NewReader(`{"userId":"u1","recipeId":"r1","rating":5}`)).WithContext(ctx)
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)

	req.Equal(http.StatusInternalServerError, recorder.Code)
}
