package handler

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"mood-movie-recommender/internal/models"
	"mood-movie-recommender/internal/service"
	"mood-movie-recommender/internal/youtube"
)

// RecommendationHandler handles HTTP requests for the recommender.
type RecommendationHandler struct {
	svc     *service.RecommendationService
	youtube *youtube.Client
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(svc *service.RecommendationService, yt *youtube.Client) *RecommendationHandler {
	return &RecommendationHandler{svc: svc, youtube: yt}
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health returns service health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *RecommendationHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "mood-movie-recommender",
	})
}

// Recommend analyzes mood text and returns ranked movie recommendations.
// @Summary Recommend movies for a mood
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body models.RecommendRequest true "Mood input"
// @Success 200 {object} models.RecommendResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recommend [post]
func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	var req models.RecommendRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	resp, err := h.svc.Recommend(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyInput):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrNoRecommendations):
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
		default:
			slog.Error("recommendation pipeline failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
				Error: "something went wrong, please try again",
			})
		}
	}

	return c.JSON(resp)
}

// Trailer returns the first matching YouTube trailer for a movie title.
// Lookup failures are not errors; the client gets a null videoId.
// @Summary Find a movie trailer
// @Tags trailers
// @Produce json
// @Param title query string true "Movie title"
// @Param year query string false "Release year"
// @Success 200 {object} models.TrailerResponse
// @Failure 400 {object} ErrorResponse
// @Router /trailer [get]
func (h *RecommendationHandler) Trailer(c fiber.Ctx) error {
	title := strings.TrimSpace(c.Query("title"))
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "missing title"})
	}
	year := strings.TrimSpace(c.Query("year"))

	videoID, err := h.youtube.FindTrailer(c.Context(), title, year)
	if err != nil {
		slog.Warn("trailer lookup failed", "title", title, "error", err)
		return c.JSON(models.TrailerResponse{})
	}
	if videoID == "" {
		return c.JSON(models.TrailerResponse{})
	}
	return c.JSON(models.TrailerResponse{VideoID: &videoID})
}

// ListMoods returns the mood categories with their emoji and search phrase.
// @Summary List mood categories
// @Tags recommendations
// @Produce json
// @Success 200 {object} map[string][]models.MoodInfo
// @Router /moods [get]
func (h *RecommendationHandler) ListMoods(c fiber.Ctx) error {
	infos := make([]models.MoodInfo, 0, len(models.AllMoods))
	for _, m := range models.AllMoods {
		infos = append(infos, models.MoodInfo{
			Mood:         m,
			Emoji:        m.Emoji(),
			SearchPhrase: m.SearchPhrase(),
		})
	}
	return c.JSON(fiber.Map{"moods": infos})
}
