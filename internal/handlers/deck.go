package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"card-shuffler-go/internal/models"
	"card-shuffler-go/internal/tracing"

	"github.com/gin-gonic/gin"
)

// SeedHeader carries the shuffle seed on text responses.
const SeedHeader = "X-Deck-Seed"

var errNoRoute = fmt.Errorf("route: %w", models.ErrNotFound)

// DeckHandler serves a freshly built deck in the given order. Every request
// gets its own deck, so handlers never share one across goroutines.
//
// Query: format=json|text, seed=<int32> (shuffle only; omitted means a
// fresh seed, which is returned).
func DeckHandler(order string) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span := tracing.StartSpan(c.Request.Context(), "handlers.DeckHandler")
		defer span.End()

		format, err := models.ParseFormat(c.Query("format"))
		if err != nil {
			writeAPIError(c, err)
			return
		}

		req := models.DeckRequest{Order: order}
		if s, ok := c.GetQuery("seed"); ok {
			if order != models.OrderShuffled {
				writeAPIError(c, fmt.Errorf("%w: seed given for %s deck", models.ErrInvalidSeed, order))
				return
			}
			seed, err := models.ParseSeed(s)
			if err != nil {
				writeAPIError(c, err)
				return
			}
			req.Seed = &seed
		}

		d, resp, err := models.BuildDeck(req)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		tracing.SetDeckAttributes(span, resp.Order, resp.Seed)

		if format == models.FormatText {
			if resp.Seed != nil {
				c.Header(SeedHeader, strconv.FormatInt(int64(*resp.Seed), 10))
			}
			c.String(http.StatusOK, d.String()+"\n")
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
