package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подхватывает .env, если он есть, и флаги командной строки.
// Флаги сильнее переменных окружения.
func Load() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	var (
		portFlag    string
		storageFlag string
	)
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.StringVar(&storageFlag, "storage", "", "Storage driver: postgres or memory (overrides STORAGE_DRIVER)")
	flag.Parse()

	overrides := map[string]string{
		"PORT":           portFlag,
		"STORAGE_DRIVER": storageFlag,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
