package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hackplatform/client-go/internal/api"
	"github.com/hackplatform/client-go/internal/navigation"
	"github.com/hackplatform/client-go/internal/platform"
	pkgcmd "github.com/hackplatform/client-go/pkg/cmd"
)

const appName = "hackctl"

func main() {
	ctx := context.Background()
	logger := pkgcmd.InitLogger()
	defer pkgcmd.HandleAppPanic(ctx, logger)

	if err := pkgcmd.LoadDotEnv(); err != nil {
		panic(err)
	}

	navigator := navigation.NewMemoryNavigator(navigation.PathHome, func(path string) {
		fmt.Fprintf(os.Stderr, "-> %s\n", path)
	})

	container := platform.MustInitDependencyContainer(platform.Config{
		CookieJarPath: pkgcmd.MustInitCookieJarPath(appName),
		Logger:        logger,
		Navigator:     navigator,
	})

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	err := runCommand(ctx, container, os.Args[1], os.Args[2:])
	if err != nil {
		logger.WithError(err).Error(ctx, "command failed")
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, c *platform.DependencyContainer, name string, args []string) error {
	switch name {
	case "login":
		return runLogin(ctx, c, args)
	case "admin-login":
		return runAdminLogin(ctx, c, args)
	case "logout":
		c.Sessions.Logout()
		return nil
	case "whoami":
		return runWhoami(ctx, c)
	case "hackathons":
		return runHackathons(ctx, c, args)
	case "register":
		return runRegister(ctx, c, args)
	case "teams":
		return runTeams(ctx, c, args)
	case "invitations":
		return runInvitations(ctx, c, args)
	case "profile":
		return runProfile(ctx, c, args)
	case "analytics":
		return runAnalytics(ctx, c, args)
	case "export":
		return runExport(ctx, c, args)
	case "goto":
		return runGoto(c, args)
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", name)
	}
}

func runLogin(ctx context.Context, c *platform.DependencyContainer, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	telegramID := fs.Int64("telegram-id", 0, "telegram account identifier")
	username := fs.String("username", "", "telegram username")
	fullName := fs.String("name", "", "full name")
	_ = fs.Parse(args)

	token, err := c.Auth.LoginWithTelegram(ctx, api.TelegramAuthRequest{
		TelegramID:       *telegramID,
		TelegramUsername: *username,
		FullName:         *fullName,
	})
	if err != nil {
		return err
	}

	fmt.Printf("logged in as user %d\n", token.UserID)
	return flushCookies(c)
}

func runAdminLogin(ctx context.Context, c *platform.DependencyContainer, args []string) error {
	fs := flag.NewFlagSet("admin-login", flag.ExitOnError)
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	_ = fs.Parse(args)

	if _, err := c.Auth.AdminLogin(ctx, api.AdminLoginRequest{
		Email:    *email,
		Password: *password,
	}); err != nil {
		return err
	}

	fmt.Println("admin session established")
	return flushCookies(c)
}

func runWhoami(ctx context.Context, c *platform.DependencyContainer) error {
	user, err := c.Auth.FetchCurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("not logged in")
		return nil
	}

	return printJSON(user)
}

func runHackathons(ctx context.Context, c *platform.DependencyContainer, args []string) error {
	fs := flag.NewFlagSet("hackathons", flag.ExitOnError)
	hackathonID := fs.Int64("id", 0, "show a single hackathon")
	_ = fs.Parse(args)

	if *hackathonID != 0 {
		detail, err := c.Hackathons.FetchHackathon(ctx, *hackathonID)
		if err != nil {
			return err
		}
		return printJSON(detail)
	}

	hackathons, err := c.Hackathons.FetchHackathons(ctx)
	if err != nil {
		return err
	}
	return printJSON(hackathons)
}

func runRegister(ctx context.Context, c *platform.DependencyContainer, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	hackathonID := fs.Int64("id", 0, "hackathon to register for")
	_ = fs.Parse(args)

	if err := c.Hackathons.RegisterForHackathon(ctx, *hackathonID); err != nil {
		return err
	}

	fmt.Printf("registered for hackathon %d\n", *hackathonID)
	return nil
}

func runTeams(ctx context.Context, c *platform.DependencyContainer, args []string) error {
	fs := flag.NewFlagSet("teams", flag.ExitOnError)
	hackathonID := fs.Int64("hackathon", 0, "list teams of a hackathon")
	teamID := fs.Int64("id", 0, "show a single team")
	mine := fs.Bool("mine", false, "list own teams")
	_ = fs.Parse(args)

	switch {
	case *teamID != 0:
		team, err := c.Teams.FetchTeam(ctx, *teamID)
		if err != nil {
			return err
		}
		return printJSON(team)
	case *mine:
		teams, err := c.Teams.FetchMyTeams(ctx)
		if err != nil {
			return err
		}
		return printJSON(teams)
	default:
		teams, err := c.Teams.FetchTeamsByHackathon(ctx, *hackathonID, "")
		if err != nil {
			return err
		}
		return printJSON(teams)
	}
}

func runInvitations(ctx context.Context, c *platform.DependencyContainer, args []string) error {
	fs := flag.NewFlagSet("invitations", flag.ExitOnError)
	respondTo := fs.Int64("respond", 0, "invitation to respond to")
	accept := fs.Bool("accept", false, "accept instead of decline")
	_ = fs.Parse(args)

	if *respondTo != 0 {
		if err := c.Invitations.RespondToInvitation(ctx, *respondTo, *accept); err != nil {
			return err
		}
	}

	// A failed refresh keeps the message in the store state instead of
	// aborting the command, the way the list screen behaves.
	if _, err := c.Invitations.FetchInvitations(ctx, api.InvitationStatusPending); err != nil {
		fmt.Fprintln(os.Stderr, c.Invitations.Err())
		return nil
	}
	return printJSON(c.Invitations.State().Invitations)
}

func runProfile(ctx context.Context, c *platform.DependencyContainer, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	userID := fs.Int64("id", 0, "look up another participant")
	bio := fs.String("bio", "", "update own bio")
	_ = fs.Parse(args)

	if *bio != "" {
		user, err := c.Users.UpdateProfile(ctx, api.UserUpdateRequest{Bio: bio})
		if err != nil {
			return err
		}
		return printJSON(user)
	}

	if *userID != 0 {
		user, err := c.Users.FetchProfile(ctx, *userID)
		if err != nil {
			return err
		}
		return printJSON(user)
	}

	user, err := c.Users.FetchMyProfile(ctx)
	if err != nil {
		return err
	}
	return printJSON(user)
}

func runAnalytics(ctx context.Context, c *platform.DependencyContainer, args []string) error {
	fs := flag.NewFlagSet("analytics", flag.ExitOnError)
	hackathonID := fs.Int64("id", 0, "hackathon to report on")
	_ = fs.Parse(args)

	analytics, err := c.Admin.FetchAnalytics(ctx, *hackathonID)
	if err != nil {
		return err
	}
	return printJSON(analytics)
}

func runExport(ctx context.Context, c *platform.DependencyContainer, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	hackathonID := fs.Int64("id", 0, "hackathon to export")
	kind := fs.String("kind", "participants", "participants or teams")
	_ = fs.Parse(args)

	var (
		csv []byte
		err error
	)
	switch *kind {
	case "participants":
		csv, err = c.Admin.ExportParticipants(ctx, *hackathonID)
	case "teams":
		csv, err = c.Admin.ExportTeams(ctx, *hackathonID)
	default:
		return fmt.Errorf("unknown export kind %q", *kind)
	}
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(csv)
	return err
}

func runGoto(c *platform.DependencyContainer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s goto <path>", appName)
	}

	c.Navigator.Go(args[0])
	fmt.Println(c.Navigator.Location())
	return nil
}

func flushCookies(c *platform.DependencyContainer) error {
	if err := c.CookieJar.Flush(); err != nil {
		return fmt.Errorf("persist session cookies: %w", err)
	}
	return nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `usage: %s <command> [flags]

commands:
  login          authenticate with telegram account data
  admin-login    authenticate as an administrator
  logout         drop the user session
  whoami         show the current user
  hackathons     list hackathons or show one with -id
  register       register for a hackathon
  teams          list or inspect teams
  invitations    list pending invitations, respond with -respond
  profile        show or update a profile
  analytics      show hackathon analytics (admin)
  export         download participant or team CSV (admin)
  goto           navigate to a path through the route guard
`, appName)
}
