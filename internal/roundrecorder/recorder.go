package roundrecorder

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/edvart/padel-americano/internal/store"
	"github.com/edvart/padel-americano/internal/tournament"
)

// Recorder persists tournament changes to the database. It is the only
// writer; the tournament actor itself stays storage-free.
type Recorder struct {
	store store.Store
	log   *logrus.Logger
}

// New creates a new round recorder.
func New(s store.Store, log *logrus.Logger) *Recorder {
	return &Recorder{store: s, log: log}
}

// Run listens for tournament events and records them. It blocks until ctx is
// cancelled or the event channel closes.
func (r *Recorder) Run(ctx context.Context, events <-chan tournament.Event) {
	r.log.Info("Round recorder started")
	for {
		select {
		case <-ctx.Done():
			r.log.Info("Round recorder shutting down")
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			r.handleEvent(ctx, event)
		}
	}
}

func (r *Recorder) handleEvent(ctx context.Context, event tournament.Event) {
	switch e := event.(type) {
	case tournament.PlayerAdded:
		if err := r.store.CreatePlayer(ctx, e.Player); err != nil {
			r.log.WithError(err).WithField("player", e.Player.Name).Error("Failed to persist player")
		}
	case tournament.PlayerRenamed:
		if err := r.store.RenamePlayer(ctx, e.Player.ID, e.Player.Name); err != nil {
			r.log.WithError(err).WithField("player", e.Player.Name).Error("Failed to persist rename")
		}
	case tournament.PlayerRemoved:
		if err := r.store.DeletePlayer(ctx, e.PlayerID); err != nil {
			r.log.WithError(err).WithField("player", e.PlayerID).Error("Failed to persist removal")
		}
	case tournament.CourtsChanged:
		if err := r.store.SetCourts(ctx, e.Courts); err != nil {
			r.log.WithError(err).Error("Failed to persist court count")
		}
	case tournament.RoundSaved:
		if err := r.store.SaveRound(ctx, e.Seq, e.Round); err != nil {
			r.log.WithError(err).WithField("round", e.Seq).Error("Failed to persist round")
		} else {
			r.log.WithField("round", e.Seq).Info("Round recorded")
		}
	case tournament.RoundDeleted:
		if err := r.store.DeleteRound(ctx, e.Seq); err != nil {
			r.log.WithError(err).WithField("round", e.Seq).Error("Failed to delete round")
		}
	}
}
