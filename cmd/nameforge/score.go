package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nameforge/nameforge-go/candidates"
	"github.com/nameforge/nameforge-go/score"
)

func newScoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "score <name>...",
		Short: "Score candidate names for brandability",
		Long: `Score rates one or more candidate names the way the resolver does
when ranking is enabled: length, pronounceability, keywords, and
penalties for dashes and digits. Names are normalized first, so
"Shoply.com" and "shoply" score identically.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(args))
			for _, arg := range args {
				names = append(names, candidates.Normalize(arg))
			}

			for _, name := range score.Rank(names) {
				r := score.Evaluate(name)
				fmt.Printf("%-24s %.3f  (length %.2f, pronounce %.2f, keyword %.2f)\n",
					r.Name, r.Total, r.Length, r.Pronounceable, r.Keyword)
			}
			return nil
		},
	}
}
