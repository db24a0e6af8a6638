package config

import (
	"flag"
	"io"
	"os"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-driver        database driver ("sqlite3" or "pgx")
//	-d             database DSN (file path for sqlite3, URI for pgx)
//	-c/-config     json file path with configs
//	-goal          default calorie goal for the progress view
//	-bcrypt-cost   bcrypt work factor for password hashing
//	-log-file      structured log file path
func ParseFlags() (*StructuredConfig, error) {
	return parseFlagsFrom(os.Args[1:])
}

func parseFlagsFrom(args []string) (*StructuredConfig, error) {
	var driver string
	var databaseDSN string
	var jsonConfigPath string
	var calorieGoal int
	var bcryptCost int
	var logFilePath string

	fs := flag.NewFlagSet("fitness-tracker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&driver, "driver", "", "Database driver (sqlite3 or pgx)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&calorieGoal, "goal", 0, "Default calorie goal")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	fs.StringVar(&logFilePath, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			DefaultCalorieGoal: calorieGoal,
			BcryptCost:         bcryptCost,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Logs: Logs{
			FilePath: logFilePath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
