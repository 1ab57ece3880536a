package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/realtydesk/estate-notify/internal/console"
)

type Commands []console.Command

func main() {
	slog.Info("starting console command")

	commands := initCommands()
	if len(os.Args) > 1 {
		runCommand(commands, os.Args[1])
	} else {
		printHelp(commands)
	}

	slog.Info("command finished")
}

func initCommands() *Commands {
	return &Commands{
		console.NewHelpCommand(),
		console.NewDemoCommand(),
		console.NewListingSeedCommand(),
		console.NewListingFinishCommand(),
		console.NewListingReportCommand(),
		console.NewListingAnnounceCommand(),
		console.NewMigrateCommand(),
	}
}

func runCommand(commands *Commands, arg string) {
	found := false
	for _, cmd := range *commands {
		if arg == cmd.Name() {
			slog.Info("command found", "command", cmd.Name())
			found = true
			if err := cmd.Run(); err != nil {
				slog.Error(err.Error())
				os.Exit(1)
			}
			break
		}
	}
	if !found {
		fmt.Printf("command '%s' not found\n", arg)
	}
}

func printHelp(commands *Commands) {
	fmt.Println("Usage: estate_console <command>")
	for _, cmd := range *commands {
		fmt.Printf("\t%s - %s\n", cmd.Name(), cmd.Description())
	}
}
