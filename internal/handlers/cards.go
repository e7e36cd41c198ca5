package handlers

import (
	"net/http"

	"card-shuffler-go/internal/game/common"
	"card-shuffler-go/internal/models"
	"card-shuffler-go/internal/tracing"

	"github.com/gin-gonic/gin"
)

type cardView struct {
	Card        common.Card `json:"card"`
	Code        string      `json:"code"`
	Description string      `json:"description"`
	Hash        int32       `json:"hash"`
}

// CompareCardsHandler orders ?a= against ?b=. Both accept "QH" or "Queen of Hearts".
func CompareCardsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span := tracing.StartSpan(c.Request.Context(), "handlers.CompareCardsHandler")
		defer span.End()

		resp, err := models.CompareCards(c.Query("a"), c.Query("b"))
		if err != nil {
			writeAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func DescribeCardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span := tracing.StartSpan(c.Request.Context(), "handlers.DescribeCardHandler")
		defer span.End()

		raw := c.Query("card")
		if raw == "" {
			writeAPIError(c, models.ErrMissingCard)
			return
		}
		card, err := common.ParseCard(raw)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, cardView{
			Card:        card,
			Code:        card.Code(),
			Description: card.String(),
			Hash:        card.Hash(),
		})
	}
}
