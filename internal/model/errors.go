package model

import "errors"

var (
	ErrInvalidPinCount = errors.New("pin count must be between 0 and 10")
	ErrFrameOverflow   = errors.New("rolls in a frame cannot exceed 10 pins")
	ErrFrameComplete   = errors.New("frame is already complete")
	ErrPlayerComplete  = errors.New("player has already finished the game")
	ErrInvalidPlayers  = errors.New("invalid player list")
	ErrNotFound        = errors.New("entity not found")
)
