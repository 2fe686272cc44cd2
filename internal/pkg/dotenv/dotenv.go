package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

type override struct {
	flag  string
	env   string
	usage string
}

// overrides флаги командной строки, перекрывающие одноимённые переменные окружения.
var overrides = []override{
	{flag: "port", env: "PORT", usage: "Server port (overrides PORT environment variable)"},
	{flag: "log-level", env: "LOG_LEVEL", usage: "Log level: debug, info, warn, error"},
	{flag: "strict-transitions", env: "LIFECYCLE_STRICT_TRANSITIONS", usage: "Enforce forward-only delivery status transitions"},
}

// Load подгружает .env, если он есть. Переменные окружения процесса приоритетнее файла,
// флаги командной строки приоритетнее всего.
func Load() error {
	return load(".env", os.Args[1:])
}

func load(path string, args []string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}

	flags := flag.NewFlagSet("quickparcel", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	values := make([]*string, len(overrides))
	for i, o := range overrides {
		values[i] = flags.String(o.flag, "", o.usage)
	}
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	for i, o := range overrides {
		if *values[i] == "" {
			continue
		}
		if err := os.Setenv(o.env, *values[i]); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", o.env, err)
		}
	}
	return nil
}
