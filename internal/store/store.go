package store

import (
	"context"

	"github.com/edvart/padel-americano/internal/scheduler"
)

// Store persists the tournament: roster, saved rounds and settings. The
// tournament actor never touches it directly; the round recorder writes
// through it and cmd/server reads it once at boot.
type Store interface {
	CreatePlayer(ctx context.Context, player scheduler.Player) error
	RenamePlayer(ctx context.Context, playerID, name string) error
	DeletePlayer(ctx context.Context, playerID string) error
	ListPlayers(ctx context.Context) ([]scheduler.Player, error)

	SaveRound(ctx context.Context, seq int, round scheduler.Round) error
	DeleteRound(ctx context.Context, seq int) error
	ListRounds(ctx context.Context) ([]scheduler.Round, error)

	GetCourts(ctx context.Context) (int, error)
	SetCourts(ctx context.Context, courts int) error

	Close() error
}
