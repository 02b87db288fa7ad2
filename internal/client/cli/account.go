package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	clientapi "github.com/iudanet/khutwa/internal/client/api"
	"github.com/iudanet/khutwa/internal/client/auth"
	"github.com/iudanet/khutwa/internal/models"
)

func (c *Cli) signUpCommand() *cobra.Command {
	var (
		in        auth.SignUpInput
		role      string
		passwords Passwords
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		Long: `Create a new Khutwa account and sign in to it.

Missing values are asked for interactively. The password is read from
KHUTWA_PASSWORD, --password-file, --password or a prompt, in that order.

  khutwa signup --name "Ann Lee" --email ann@example.com
  khutwa signup --role doctor`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if in.Name, err = c.readValue(in.Name, "Full name: "); err != nil {
				return err
			}
			if in.Email, err = c.readValue(in.Email, "Email: "); err != nil {
				return err
			}
			if in.Password, err = c.readPassword(passwords, "Password: "); err != nil {
				return err
			}
			in.Role = models.Role(role)

			user, err := c.auth.SignUp(cmd.Context(), in)
			if err != nil {
				return err
			}

			if c.flags.json {
				return c.printJSON(user)
			}
			c.io.Println("✓ Account created.")
			c.io.Printf("Welcome, %s!\n", user.Name)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "Full name")
	f.StringVar(&in.Email, "email", "", "Email address")
	f.StringVar(&in.Phone, "phone", "", "Phone number (optional)")
	f.StringVar(&in.DateOfBirth, "dob", "", "Date of birth, YYYY-MM-DD (optional)")
	f.StringVar(&role, "role", string(models.RolePatient), "Account type: patient or doctor")
	f.StringVar(&passwords.FromArgs, "password", "", "Password (not recommended, use KHUTWA_PASSWORD or --password-file)")
	f.StringVar(&passwords.FromFile, "password-file", "", "Path to a file containing the password")

	return cmd
}

func (c *Cli) signInCommand() *cobra.Command {
	var (
		email     string
		passwords Passwords
	)

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in to your account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email, err = c.readValue(email, "Email: "); err != nil {
				return err
			}
			password, err := c.readPassword(passwords, "Password: ")
			if err != nil {
				return err
			}

			user, err := c.auth.SignIn(cmd.Context(), email, password)
			if err != nil {
				if clientapi.IsKind(err, clientapi.KindNotFound) {
					c.io.Println(`Run "khutwa signup" to create an account.`)
				}
				return err
			}

			if c.flags.json {
				return c.printJSON(user)
			}
			c.io.Println("✓ Signed in.")
			c.io.Printf("Welcome back, %s!\n", user.Name)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&email, "email", "", "Email address")
	f.StringVar(&passwords.FromArgs, "password", "", "Password (not recommended, use KHUTWA_PASSWORD or --password-file)")
	f.StringVar(&passwords.FromFile, "password-file", "", "Path to a file containing the password")

	return cmd
}

func (c *Cli) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.auth.Logout(cmd.Context()); err != nil {
				return err
			}
			c.io.Println("✓ Signed out.")
			return nil
		},
	}
}

func (c *Cli) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user := c.session.Current()
			if user == nil {
				if c.flags.json {
					return c.printJSON(map[string]any{"authenticated": false})
				}
				c.io.Println("Not signed in.")
				return nil
			}

			if c.flags.json {
				return c.printJSON(user)
			}
			c.printUser(user)
			return nil
		},
	}
}

func (c *Cli) profileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View or update your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			user, err := c.auth.RefreshProfile(cmd.Context())
			if err != nil {
				return err
			}
			if c.flags.json {
				return c.printJSON(user)
			}
			c.printUser(user)
			return nil
		},
	}

	var (
		upd   auth.ProfileUpdate
		photo string
	)
	update := &cobra.Command{
		Use:   "update",
		Short: "Update name, phone, date of birth or photo",
		Long: `Update your profile. Only the given fields change.

  khutwa profile update --phone "+971 50 123 4567"
  khutwa profile update --photo ./me.jpg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}

			if photo != "" {
				part, closeFn, err := openPhoto(photo)
				if err != nil {
					return err
				}
				defer closeFn()
				upd.Photo = part
			}

			user, err := c.auth.UpdateProfile(cmd.Context(), upd)
			if err != nil {
				return err
			}
			if c.flags.json {
				return c.printJSON(user)
			}
			c.io.Println("✓ Profile updated.")
			c.printUser(user)
			return nil
		},
	}
	f := update.Flags()
	f.StringVar(&upd.Name, "name", "", "Full name")
	f.StringVar(&upd.Phone, "phone", "", "Phone number")
	f.StringVar(&upd.DateOfBirth, "dob", "", "Date of birth, YYYY-MM-DD")
	f.StringVar(&photo, "photo", "", "Path to a profile photo")

	cmd.AddCommand(update)
	return cmd
}

// openPhoto открывает файл для multipart загрузки
func openPhoto(path string) (*clientapi.FilePart, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open photo: %w", err)
	}
	part := &clientapi.FilePart{
		Field:    "photo",
		FileName: filepath.Base(path),
		Content:  f,
	}
	return part, func() { _ = f.Close() }, nil
}
