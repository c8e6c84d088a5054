// Command americano is a small CLI around the scheduling core: it prints
// round recommendations and simulates tournaments to show how fast partner
// coverage converges.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/edvart/padel-americano/internal/scheduler"
)

func main() {
	root := &cobra.Command{
		Use:   "americano",
		Short: "Americano padel scheduling tools",
	}
	root.AddCommand(recommendCmd(), simulateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func recommendCmd() *cobra.Command {
	var players, courts int

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Print the recommended number of rounds for full partner coverage",
		RunE: func(cmd *cobra.Command, args []string) error {
			rounds := scheduler.RecommendRounds(players, courts)
			if rounds == 0 {
				return fmt.Errorf("a tournament needs at least 4 players (got %d)", players)
			}

			totalPairs := players * (players - 1) / 2
			fmt.Printf("%d players on %d court(s): %d partnerships to cover, at least %d rounds\n",
				players, courts, totalPairs, rounds)
			return nil
		},
	}

	cmd.Flags().IntVarP(&players, "players", "p", 8, "roster size")
	cmd.Flags().IntVarP(&courts, "courts", "c", 2, "number of courts")
	return cmd
}

func simulateCmd() *cobra.Command {
	var players, courts, rounds int
	var seed int64

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a tournament and report partner coverage per round",
		RunE: func(cmd *cobra.Command, args []string) error {
			if players < 4 {
				return fmt.Errorf("a tournament needs at least 4 players (got %d)", players)
			}

			roster := make([]scheduler.Player, players)
			for i := range roster {
				roster[i] = scheduler.Player{
					ID:   fmt.Sprintf("p%02d", i+1),
					Name: fmt.Sprintf("Player %d", i+1),
				}
			}

			if rounds == 0 {
				rounds = scheduler.RecommendRounds(players, courts) * 2
			}
			rnd := rand.New(rand.NewSource(seed))

			var history []scheduler.Round
			for i := 1; i <= rounds; i++ {
				plan := scheduler.GenerateFairRound(roster, courts, history, rnd)
				if len(plan.Matches) == 0 {
					return fmt.Errorf("no matches possible for %d players on %d courts", players, courts)
				}
				history = append(history, scheduler.Round{Matches: plan.Matches})

				cov := scheduler.PartnerCoverage(roster, history)
				fmt.Printf("round %2d: %3d%% coverage (%d/%d partnerships, %d on bench)\n",
					i, cov.Percent, cov.SeenPairs, cov.TotalPairs, len(plan.Bench))
				if cov.Complete {
					fmt.Printf("full partner coverage after %d rounds (lower bound was %d)\n",
						i, scheduler.RecommendRounds(players, courts))
					return nil
				}
			}

			cov := scheduler.PartnerCoverage(roster, history)
			fmt.Printf("coverage incomplete after %d rounds: %d partnerships missing\n",
				rounds, cov.MissingPairs)
			return nil
		},
	}

	cmd.Flags().IntVarP(&players, "players", "p", 8, "roster size")
	cmd.Flags().IntVarP(&courts, "courts", "c", 2, "number of courts")
	cmd.Flags().IntVarP(&rounds, "rounds", "r", 0, "rounds to simulate (0 = twice the recommendation)")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 1, "random seed")
	return cmd
}
