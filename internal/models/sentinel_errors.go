package models

import (
	"errors"

	"card-shuffler-go/internal/game/common"
)

var (
	ErrInvalidSeed   = errors.New("invalid seed")
	ErrInvalidFormat = errors.New("invalid format")
	ErrInvalidOrder  = errors.New("invalid order")
	ErrMissingCard   = errors.New("missing card")

	// ErrInvalidCard is returned by common.ParseCard.
	ErrInvalidCard = common.ErrInvalidCard
)
