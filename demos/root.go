package demos

import "github.com/spf13/cobra"

var (
	episodes int
	horizon  int
	savePath string
	seed     uint64
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{Use: "env-wrappers"}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 100, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 200, "Horizon of each episode")
	rootCommand.PersistentFlags().StringVarP(&savePath, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed for the environment task")
	// adding the subcommands here
	rootCommand.AddCommand(NoiseCommand())
	return rootCommand
}
