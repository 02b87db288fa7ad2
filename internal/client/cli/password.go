package cli

import (
	"fmt"
	"os"
	"strings"
)

// Passwords источники пароля из флагов
type Passwords struct {
	FromFile string
	FromArgs string
}

// readPassword returns the password from, in priority order:
// 1. the KHUTWA_PASSWORD environment variable
// 2. the file given by --password-file
// 3. the --password flag
// 4. an interactive prompt
func (c *Cli) readPassword(passwords Passwords, prompt string) (string, error) {
	// Priority 1: Environment variable
	if envPassword, ok := c.lookupEnv(PasswordEnv); ok && envPassword != "" {
		return envPassword, nil
	}

	// Priority 2: File
	if passwords.FromFile != "" {
		content, err := os.ReadFile(passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	// Priority 3: CLI parameter
	if passwords.FromArgs != "" {
		return passwords.FromArgs, nil
	}

	// Priority 4: Interactive prompt (fallback)
	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}

// readValue возвращает значение флага или запрашивает его интерактивно
func (c *Cli) readValue(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return input, nil
}
